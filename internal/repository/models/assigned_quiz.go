package models

import (
	"database/sql"
	"time"
)

// AssignedQuiz is a row of the assigned_quizzes table.
type AssignedQuiz struct {
	ID             string         `db:"id"`           // ULID
	TeacherID      string         `db:"teacher_id"`   // uid of the assigning teacher
	TeacherName    string         `db:"teacher_name"` // display name at creation time
	Title          sql.NullString `db:"title"` // Oracle stores '' as NULL
	Description    sql.NullString `db:"description"`
	TimeLimit      int            `db:"time_limit"` // minutes
	StartTime      sql.NullTime   `db:"start_time"`
	EndTime        sql.NullTime   `db:"end_time"`
	TargetAudience Audience       `db:"target_audience"` // JSON CLOB
	IsLive         int            `db:"is_live"`         // 0 or 1
	CreatedAt      time.Time      `db:"created_at"`
}

// AssignedQuizQuestion is a row of the assigned_quiz_questions table. Position keeps
// the template order.
type AssignedQuizQuestion struct {
	ID            string         `db:"id"`
	QuizID        string         `db:"quiz_id"`
	Position      int            `db:"position"`
	QuestionType  string         `db:"question_type"`
	QuestionText  string         `db:"question_text"`
	Options       StringSlice    `db:"options"` // JSON CLOB
	CorrectAnswer sql.NullString `db:"correct_answer"`
	Points        int            `db:"points"`
}
