package domain

import (
	"context"
	"time"
)

// TemplateCatalog is the read-only, ordered list of quiz templates.
type TemplateCatalog interface {
	// All returns every template in catalog order.
	All() []QuizTemplate

	// Get returns the template at index, or a TEMPLATE_NOT_FOUND error.
	Get(index int) (QuizTemplate, error)

	// Len returns the number of templates.
	Len() int
}

// QuizRecordRepository persists assigned quizzes.
type QuizRecordRepository interface {
	// CreateQuiz stores a new quiz and sets record.ID.
	CreateQuiz(ctx context.Context, record *QuizRecord) error

	// ListQuizzesByTeacher returns the teacher's quizzes, newest first.
	ListQuizzesByTeacher(ctx context.Context, teacherID string) ([]*QuizRecord, error)
}

// SessionStore keeps in-progress assignment sessions.
type SessionStore interface {
	Save(ctx context.Context, session *AssignmentSession) error
	// Get returns nil, nil when the session does not exist.
	Get(ctx context.Context, id string) (*AssignmentSession, error)
	Delete(ctx context.Context, id string) error

	// AcquireSubmitLock sets the loading flag; it reports false when a submit is
	// already outstanding for the session.
	AcquireSubmitLock(ctx context.Context, id string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, id string) error
}

// TransactionManager runs fn inside a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Severity of a user-facing notification.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)

// Notification is a user-facing message about the outcome of an operation.
type Notification struct {
	Severity    Severity  `json:"severity"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notifier delivers notifications to a teacher.
type Notifier interface {
	Notify(ctx context.Context, actorID string, n Notification) error
}

// NotificationFeed returns notifications previously delivered to a teacher.
type NotificationFeed interface {
	Recent(ctx context.Context, actorID string) ([]Notification, error)
}
