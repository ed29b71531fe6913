package domain

// Question is a single entry of a template's question list. It is copied verbatim
// into every quiz created from the template.
type Question struct {
	Type          string   `json:"type" yaml:"type"`
	Text          string   `json:"text" yaml:"text"`
	Options       []string `json:"options,omitempty" yaml:"options"`
	CorrectAnswer string   `json:"correctAnswer" yaml:"correct_answer"`
	Points        int      `json:"points,omitempty" yaml:"points"`
}

// QuizTemplate is a predefined quiz offered as a starting point.
type QuizTemplate struct {
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Subject     string     `json:"subject" yaml:"subject"`
	TimeLimit   int        `json:"timeLimit" yaml:"time_limit"` // minutes
	Questions   []Question `json:"questions" yaml:"questions"`
}

// Clone returns a deep copy so callers cannot mutate catalog entries.
func (t QuizTemplate) Clone() QuizTemplate {
	out := t
	out.Questions = CloneQuestions(t.Questions)
	return out
}

// CloneQuestions deep-copies a question list.
func CloneQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q
		if q.Options != nil {
			out[i].Options = append([]string(nil), q.Options...)
		}
	}
	return out
}

// Validate checks a template loaded from a catalog file.
func (t QuizTemplate) Validate() error {
	if t.Title == "" {
		return NewValidationError("template title is required")
	}
	if t.TimeLimit <= 0 {
		return NewValidationError("template time limit must be positive")
	}
	if len(t.Questions) == 0 {
		return NewValidationError("template must contain at least one question")
	}
	return nil
}

// simpleValidationError is returned by entity Validate methods.
type simpleValidationError struct {
	message string
}

func (e *simpleValidationError) Error() string {
	return e.message
}

// NewValidationError creates an entity validation error.
func NewValidationError(message string) error {
	return &simpleValidationError{message: message}
}
