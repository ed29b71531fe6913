package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"quiz-assign/internal/adapter"
	"quiz-assign/internal/domain"
	"quiz-assign/internal/dto"
	"quiz-assign/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pausingSessionStore holds the first AcquireSubmitLock call until release is closed.
type pausingSessionStore struct {
	domain.SessionStore
	paused  atomic.Bool
	reached chan struct{}
	release chan struct{}
}

func (p *pausingSessionStore) AcquireSubmitLock(ctx context.Context, id string) (bool, error) {
	if p.paused.CompareAndSwap(false, true) {
		close(p.reached)
		<-p.release
	}
	return p.SessionStore.AcquireSubmitLock(ctx, id)
}

func newStoreBackedService(t *testing.T, store domain.SessionStore) (*assignmentService, *assignmentTestDeps) {
	t.Helper()
	svc, deps := newTestAssignmentService(t)
	svc.sessions = store
	return svc, deps
}

func openWithTemplate(t *testing.T, svc *assignmentService) string {
	t.Helper()
	ctx := context.Background()
	opened, err := svc.OpenSession(ctx, teacher())
	require.NoError(t, err)
	_, err = svc.SelectTemplate(ctx, opened.ID, teacher(), 0)
	require.NoError(t, err)
	return opened.ID
}

func TestAssignmentService_Submit_WaitingSubmitDoesNotCreateTwice(t *testing.T) {
	store := &pausingSessionStore{
		SessionStore: repository.NewCacheSessionStore(adapter.NewMemoryCacheAdapter(), time.Hour),
		reached:      make(chan struct{}),
		release:      make(chan struct{}),
	}
	svc, deps := newStoreBackedService(t, store)
	deps.repo.On("CreateQuiz", mock.Anything, mock.Anything).Return(nil)
	deps.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	id := openWithTemplate(t, svc)

	type result struct {
		resp *dto.SubmitAssignmentResponse
		err  error
	}
	second := make(chan result, 1)
	go func() {
		resp, err := svc.Submit(context.Background(), id, teacher(), nil)
		second <- result{resp, err}
	}()
	<-store.reached

	first, err := svc.Submit(context.Background(), id, teacher(), nil)
	require.NoError(t, err)
	assert.Equal(t, dto.SubmitStatusCreated, first.Status)

	close(store.release)
	r := <-second

	assert.Nil(t, r.resp)
	assertDomainCode(t, r.err, domain.CodeSessionNotFound)
	deps.repo.AssertNumberOfCalls(t, "CreateQuiz", 1)
	deps.notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestAssignmentService_Submit_LoadingVisibleAndEditsKeptOnFailure(t *testing.T) {
	store := repository.NewCacheSessionStore(adapter.NewMemoryCacheAdapter(), time.Hour)
	svc, deps := newStoreBackedService(t, store)
	deps.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	id := openWithTemplate(t, svc)
	ctx := context.Background()

	deps.repo.On("CreateQuiz", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			during, err := svc.GetSession(ctx, id, teacher())
			require.NoError(t, err)
			assert.True(t, during.Loading)
			assert.False(t, during.CanSubmit)

			title := "edited during submit"
			_, err = svc.UpdateDetails(ctx, id, teacher(), &dto.UpdateDetailsRequest{Title: &title})
			require.NoError(t, err)
		}).
		Return(errors.New("ORA-03113: end-of-file on communication channel"))

	_, err := svc.Submit(ctx, id, teacher(), nil)
	assertDomainCode(t, err, domain.CodeQuizCreationFailed)

	after, err := svc.GetSession(ctx, id, teacher())
	require.NoError(t, err)
	assert.True(t, after.Open)
	assert.False(t, after.Loading)
	assert.True(t, after.CanSubmit)
	assert.Equal(t, "edited during submit", after.Draft.Title)

	locked, err := store.AcquireSubmitLock(ctx, id)
	require.NoError(t, err)
	assert.True(t, locked, "submit lock must be released after a failed submit")
}
