package domain

// AnonymousTeacherName is recorded when the authenticated teacher has no display name.
const AnonymousTeacherName = "Anonymous Teacher"

// Actor is the authenticated teacher performing an operation.
type Actor struct {
	UID         string
	DisplayName string
}

// TeacherName returns the name stored on created quizzes.
func (a *Actor) TeacherName() string {
	if a.DisplayName == "" {
		return AnonymousTeacherName
	}
	return a.DisplayName
}
