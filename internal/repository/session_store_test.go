package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-assign/internal/adapter"
	"quiz-assign/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSessionStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewCacheSessionStore(adapter.NewMemoryCacheAdapter(), time.Hour)

	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	session := domain.NewAssignmentSession("s1", "teacher-1", now)
	session.SelectTemplate(1, domain.QuizTemplate{Title: "T", TimeLimit: 25})
	session.Draft = session.Draft.WithBranch("ece")

	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "teacher-1", got.TeacherID)
	require.NotNil(t, got.TemplateIndex)
	assert.Equal(t, 1, *got.TemplateIndex)
	assert.Equal(t, "T", got.Draft.Title)
	assert.Equal(t, 25, got.Draft.TimeLimit)
	assert.Equal(t, []string{"ece"}, got.Draft.TargetAudience.Branch)
	assert.True(t, got.CreatedAt.Equal(now))

	require.NoError(t, store.Delete(ctx, "s1"))
	got, err = store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheSessionStore_GetMissing(t *testing.T) {
	store := NewCacheSessionStore(adapter.NewMemoryCacheAdapter(), 0)
	got, err := store.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheSessionStore_SubmitLock(t *testing.T) {
	ctx := context.Background()
	store := NewCacheSessionStore(adapter.NewMemoryCacheAdapter(), time.Hour)

	ok, err := store.AcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.AcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while the lock is held")

	require.NoError(t, store.ReleaseSubmitLock(ctx, "s1"))

	ok, err = store.AcquireSubmitLock(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCacheSessionStore_RedisKeysAndTTL(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	store := NewCacheSessionStore(adapter.NewRedisCacheAdapter(db), 0)

	mock.ExpectSetNX("quizassign:assignment:lock:s9", "1", 5*time.Minute).SetVal(true)
	ok, err := store.AcquireSubmitLock(ctx, "s9")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectGet("quizassign:assignment:session:s9").SetErr(errors.New("connection reset"))
	_, err = store.Get(ctx, "s9")
	assert.Error(t, err)

	mock.ExpectGet("quizassign:assignment:session:s10").RedisNil()
	got, err := store.Get(ctx, "s10")
	assert.NoError(t, err)
	assert.Nil(t, got)

	mock.ExpectGet("quizassign:assignment:session:s11").SetVal("{not json")
	_, err = store.Get(ctx, "s11")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
