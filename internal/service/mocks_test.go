package service

import (
	"context"
	"os"
	"testing"

	"quiz-assign/internal/config"
	"quiz-assign/internal/domain"
	"quiz-assign/internal/logger"

	"github.com/stretchr/testify/mock"
)

// TestMain initializes the logger for all tests in this package
func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "error"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}

// --- MockSessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.AssignmentSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*domain.AssignmentSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssignmentSession), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionStore) AcquireSubmitLock(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionStore) ReleaseSubmitLock(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- MockQuizRecordRepository ---
type MockQuizRecordRepository struct {
	mock.Mock
}

func (m *MockQuizRecordRepository) CreateQuiz(ctx context.Context, record *domain.QuizRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockQuizRecordRepository) ListQuizzesByTeacher(ctx context.Context, teacherID string) ([]*domain.QuizRecord, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizRecord), args.Error(1)
}

// --- MockNotifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, actorID string, n domain.Notification) error {
	args := m.Called(ctx, actorID, n)
	return args.Error(0)
}

// --- MockNotificationFeed ---
type MockNotificationFeed struct {
	mock.Mock
}

func (m *MockNotificationFeed) Recent(ctx context.Context, actorID string) ([]domain.Notification, error) {
	args := m.Called(ctx, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
