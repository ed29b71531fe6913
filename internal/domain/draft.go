package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultTimeLimit is used for new drafts and whenever time limit text cannot be parsed.
const DefaultTimeLimit = 30

// TargetAudience holds the selected codes per audience category. Each category is a
// set, but the setters below only ever store a single code.
type TargetAudience struct {
	Programme []string `json:"programme"`
	Branch    []string `json:"branch"`
	Section   []string `json:"section"`
	Group     []string `json:"group"`
}

func (a TargetAudience) clone() TargetAudience {
	return TargetAudience{
		Programme: cloneCodes(a.Programme),
		Branch:    cloneCodes(a.Branch),
		Section:   cloneCodes(a.Section),
		Group:     cloneCodes(a.Group),
	}
}

func cloneCodes(codes []string) []string {
	if codes == nil {
		return []string{}
	}
	return append([]string{}, codes...)
}

// QuizDraft is the in-progress quiz configuration. StartTime and EndTime keep the raw
// datetime-local text entered by the teacher; they are converted on submit.
//
// All With* methods return an updated copy and leave the receiver untouched.
type QuizDraft struct {
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	TimeLimit      int            `json:"timeLimit"`
	StartTime      string         `json:"startTime"`
	EndTime        string         `json:"endTime"`
	TargetAudience TargetAudience `json:"targetAudience"`
}

// NewQuizDraft returns the empty draft a session starts with.
func NewQuizDraft() QuizDraft {
	return QuizDraft{
		TimeLimit: DefaultTimeLimit,
		TargetAudience: TargetAudience{
			Programme: []string{},
			Branch:    []string{},
			Section:   []string{},
			Group:     []string{},
		},
	}
}

func (d QuizDraft) copy() QuizDraft {
	out := d
	out.TargetAudience = d.TargetAudience.clone()
	return out
}

// WithTemplate overwrites title, description and time limit with the template defaults.
func (d QuizDraft) WithTemplate(t QuizTemplate) QuizDraft {
	out := d.copy()
	out.Title = t.Title
	out.Description = t.Description
	out.TimeLimit = t.TimeLimit
	return out
}

func (d QuizDraft) WithTitle(title string) QuizDraft {
	out := d.copy()
	out.Title = title
	return out
}

func (d QuizDraft) WithDescription(description string) QuizDraft {
	out := d.copy()
	out.Description = description
	return out
}

// WithTimeLimitText parses user-entered text; see ParseTimeLimit.
func (d QuizDraft) WithTimeLimitText(text string) QuizDraft {
	out := d.copy()
	out.TimeLimit = ParseTimeLimit(text)
	return out
}

func (d QuizDraft) WithStartTime(value string) QuizDraft {
	out := d.copy()
	out.StartTime = value
	return out
}

func (d QuizDraft) WithEndTime(value string) QuizDraft {
	out := d.copy()
	out.EndTime = value
	return out
}

func (d QuizDraft) WithProgramme(code string) QuizDraft {
	out := d.copy()
	out.TargetAudience.Programme = audienceCodes(code)
	return out
}

func (d QuizDraft) WithBranch(code string) QuizDraft {
	out := d.copy()
	out.TargetAudience.Branch = audienceCodes(code)
	return out
}

func (d QuizDraft) WithSection(code string) QuizDraft {
	out := d.copy()
	out.TargetAudience.Section = audienceCodes(code)
	return out
}

func (d QuizDraft) WithGroup(code string) QuizDraft {
	out := d.copy()
	out.TargetAudience.Group = audienceCodes(code)
	return out
}

// audienceCodes stores a single selection; an empty code clears it.
func audienceCodes(code string) []string {
	if code == "" {
		return []string{}
	}
	return []string{code}
}

// ParseTimeLimit reads a leading integer from text, ignoring leading whitespace and
// anything after the digits. Text without a leading integer, or a value of zero,
// yields DefaultTimeLimit.
func ParseTimeLimit(text string) int {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return DefaultTimeLimit
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return DefaultTimeLimit
	}
	return n
}
