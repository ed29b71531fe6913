package domain

import (
	"strings"
	"time"
)

// datetimeLayouts are the formats produced by an HTML datetime-local input.
var datetimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// QuizRecord is the payload persisted for a newly assigned quiz. ID is assigned by
// the repository.
type QuizRecord struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	TimeLimit      int            `json:"timeLimit"`
	StartTime      *time.Time     `json:"startTime"`
	EndTime        *time.Time     `json:"endTime"`
	TargetAudience TargetAudience `json:"targetAudience"`
	TeacherID      string         `json:"teacherId"`
	TeacherName    string         `json:"teacherName"`
	Questions      []Question     `json:"questions"`
	IsLive         bool           `json:"isLive"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// NewQuizRecord merges the draft with the fixed creation fields.
func NewQuizRecord(draft QuizDraft, template QuizTemplate, actor *Actor, now time.Time, loc *time.Location) *QuizRecord {
	d := draft.copy()
	return &QuizRecord{
		Title:          d.Title,
		Description:    d.Description,
		TimeLimit:      d.TimeLimit,
		StartTime:      ParseDateTimeLocal(d.StartTime, loc),
		EndTime:        ParseDateTimeLocal(d.EndTime, loc),
		TargetAudience: d.TargetAudience,
		TeacherID:      actor.UID,
		TeacherName:    actor.TeacherName(),
		Questions:      CloneQuestions(template.Questions),
		IsLive:         false,
		CreatedAt:      now,
	}
}

// ParseDateTimeLocal converts datetime-local text to an absolute time in loc.
// Empty or unparseable text yields nil.
func ParseDateTimeLocal(value string, loc *time.Location) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return &t
		}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	return nil
}
