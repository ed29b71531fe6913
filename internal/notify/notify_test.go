package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"quiz-assign/internal/adapter"
	"quiz-assign/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	calls []domain.Notification
	err   error
}

func (r *recordingNotifier) Notify(ctx context.Context, actorID string, n domain.Notification) error {
	r.calls = append(r.calls, n)
	return r.err
}

func TestLogNotifier_Notify(t *testing.T) {
	n := NewLogNotifier()
	assert.NoError(t, n.Notify(context.Background(), "t1", domain.Notification{Severity: domain.SeverityDestructive, Title: "x"}))
	assert.NoError(t, n.Notify(context.Background(), "t1", domain.Notification{Severity: domain.SeveritySuccess, Title: "y"}))
}

func TestCacheNotifier_FeedKeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	n := NewCacheNotifier(adapter.NewMemoryCacheAdapter())

	for i := 0; i < FeedSize+5; i++ {
		require.NoError(t, n.Notify(ctx, "t1", domain.Notification{
			Severity: domain.SeverityDefault,
			Title:    fmt.Sprintf("n%d", i),
		}))
	}

	got, err := n.Recent(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, FeedSize)
	assert.Equal(t, fmt.Sprintf("n%d", FeedSize+4), got[0].Title)
	assert.Equal(t, "n5", got[FeedSize-1].Title)

	other, err := n.Recent(ctx, "t2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCacheNotifier_RedisCommands(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	n := NewCacheNotifier(adapter.NewRedisCacheAdapter(db))

	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	payload := `{"severity":"success","title":"Quiz assigned successfully","description":"d","createdAt":"2024-01-01T08:00:00Z"}`
	key := "quizassign:notification:feed:t1"

	mock.ExpectLPush(key, payload).SetVal(1)
	mock.ExpectLTrim(key, 0, FeedSize-1).SetVal("OK")
	mock.ExpectExpire(key, FeedTTL).SetVal(true)

	err := n.Notify(ctx, "t1", domain.Notification{
		Severity:    domain.SeveritySuccess,
		Title:       "Quiz assigned successfully",
		Description: "d",
		CreatedAt:   created,
	})
	require.NoError(t, err)

	mock.ExpectLRange(key, 0, FeedSize-1).SetVal([]string{payload, "garbage"})
	got, err := n.Recent(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, created.Equal(got[0].CreatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheNotifier_PushError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	n := NewCacheNotifier(adapter.NewRedisCacheAdapter(db))

	mock.ExpectLPush("quizassign:notification:feed:t1",
		`{"severity":"","title":"x","description":"","createdAt":"0001-01-01T00:00:00Z"}`).SetErr(errors.New("down"))
	err := n.Notify(context.Background(), "t1", domain.Notification{Title: "x"})
	assert.Error(t, err)
}

func TestMultiNotifier_CallsAllAndJoinsErrors(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("feed unavailable")}
	ok := &recordingNotifier{}
	m := NewMultiNotifier(failing, ok)

	err := m.Notify(context.Background(), "t1", domain.Notification{Title: "x"})

	assert.ErrorIs(t, err, failing.err)
	assert.Len(t, failing.calls, 1)
	assert.Len(t, ok.calls, 1)
}
