package dto

import "time"

// TemplateSummary describes one catalog entry.
// @Description Quiz template available for assignment
type TemplateSummary struct {
	Index         int    `json:"index"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Subject       string `json:"subject"`
	TimeLimit     int    `json:"time_limit"`
	QuestionCount int    `json:"question_count"`
}

// AudienceOption is a selectable audience code with its display label.
type AudienceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TemplatesResponse lists the catalog and the fixed audience choices.
// @Description Template catalog and audience options
type TemplatesResponse struct {
	Templates  []TemplateSummary `json:"templates"`
	Programmes []AudienceOption  `json:"programmes"`
	Branches   []AudienceOption  `json:"branches"`
}

// TargetAudience groups the audience codes of a quiz.
type TargetAudience struct {
	Programme []string `json:"programme"`
	Branch    []string `json:"branch"`
	Section   []string `json:"section"`
	Group     []string `json:"group"`
}

// QuizDraft is the editable form state of a session.
type QuizDraft struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	TimeLimit      int            `json:"time_limit"`
	StartTime      string         `json:"start_time"`
	EndTime        string         `json:"end_time"`
	TargetAudience TargetAudience `json:"target_audience"`
}

// AssignmentSessionResponse is the state of an assign-quiz session.
// @Description Assignment session state
type AssignmentSessionResponse struct {
	ID            string    `json:"id"`
	Open          bool      `json:"open"`
	TemplateIndex *int      `json:"template_index,omitempty"`
	Draft         QuizDraft `json:"draft"`
	Loading       bool      `json:"loading"`
	CanSubmit     bool      `json:"can_submit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SelectTemplateRequest selects a catalog entry by position.
// @Description Request body for selecting a template
type SelectTemplateRequest struct {
	Index *int `json:"index"`
}

// UpdateDetailsRequest edits draft fields. Absent fields are left unchanged.
// @Description Request body for editing quiz details
type UpdateDetailsRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	// TimeLimit is the raw text of the minutes input; unparseable text becomes 30.
	TimeLimit *string `json:"time_limit,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

// SetAudienceRequest assigns single audience codes. Absent fields are left unchanged.
// @Description Request body for choosing the target audience
type SetAudienceRequest struct {
	Programme *string `json:"programme,omitempty"`
	Branch    *string `json:"branch,omitempty"`
	Section   *string `json:"section,omitempty"`
	Group     *string `json:"group,omitempty"`
}

// QuestionResponse is a question copied into an assigned quiz.
type QuestionResponse struct {
	Type          string   `json:"type"`
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Points        int      `json:"points"`
}

// AssignedQuizResponse is a persisted quiz.
// @Description Assigned quiz
type AssignedQuizResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	TimeLimit      int                `json:"time_limit"`
	StartTime      *time.Time         `json:"start_time"`
	EndTime        *time.Time         `json:"end_time"`
	TargetAudience TargetAudience     `json:"target_audience"`
	TeacherID      string             `json:"teacher_id"`
	TeacherName    string             `json:"teacher_name"`
	Questions      []QuestionResponse `json:"questions"`
	IsLive         bool               `json:"is_live"`
	CreatedAt      time.Time          `json:"created_at"`
}

// QuizListResponse lists a teacher's quizzes, newest first.
type QuizListResponse struct {
	Quizzes []AssignedQuizResponse `json:"quizzes"`
}

// Submit outcomes.
const (
	SubmitStatusCreated = "created"
	SubmitStatusSkipped = "skipped"
)

// SubmitAssignmentResponse reports the outcome of a submit.
// @Description Result of submitting an assignment session
type SubmitAssignmentResponse struct {
	Status string                `json:"status"`
	Quiz   *AssignedQuizResponse `json:"quiz,omitempty"`
	// RefreshQuizzes tells the caller that its quiz list is stale.
	RefreshQuizzes bool `json:"refresh_quizzes"`
}

// NotificationResponse is a toast shown to the teacher.
type NotificationResponse struct {
	Severity    string    `json:"severity"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NotificationListResponse is the teacher's notification feed, newest first.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}
