package domain

import "time"

// AssignmentSession is one teacher's pass through the assign-quiz flow: it is opened,
// a template is picked, the draft is edited, and it is either submitted or closed.
type AssignmentSession struct {
	ID            string    `json:"id"`
	TeacherID     string    `json:"teacherId"`
	Open          bool      `json:"open"`
	TemplateIndex *int      `json:"templateIndex,omitempty"`
	Draft         QuizDraft `json:"draft"`
	Loading       bool      `json:"loading"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// NewAssignmentSession opens a session with an empty draft.
func NewAssignmentSession(id, teacherID string, now time.Time) *AssignmentSession {
	return &AssignmentSession{
		ID:        id,
		TeacherID: teacherID,
		Open:      true,
		Draft:     NewQuizDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectTemplate makes catalog entry index the active template and merges its defaults
// into the draft.
func (s *AssignmentSession) SelectTemplate(index int, t QuizTemplate) {
	idx := index
	s.TemplateIndex = &idx
	s.Draft = s.Draft.WithTemplate(t)
}

// HasTemplate reports whether a template has been selected.
func (s *AssignmentSession) HasTemplate() bool {
	return s.TemplateIndex != nil
}

// CanSubmit mirrors the disabled state of the submit action.
func (s *AssignmentSession) CanSubmit() bool {
	return s.Open && s.HasTemplate() && !s.Loading
}

// Close discards the session; a closed session is never persisted again.
func (s *AssignmentSession) Close() {
	s.Open = false
	s.Loading = false
}

// Touch records a modification.
func (s *AssignmentSession) Touch(now time.Time) {
	s.UpdatedAt = now
}
