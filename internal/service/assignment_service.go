package service

import (
	"context"
	"time"

	"quiz-assign/internal/catalog"
	"quiz-assign/internal/domain"
	"quiz-assign/internal/dto"
	"quiz-assign/internal/logger"
	"quiz-assign/internal/util"

	"go.uber.org/zap"
)

// Notification texts shown after a submit.
const (
	successTitle       = "Quiz assigned successfully"
	successDescription = "The quiz has been created and is ready to be published."
	failureTitle       = "Error assigning quiz"
	failureDescription = "There was a problem creating the quiz. Please try again."
)

// AssignmentService drives the assign-quiz flow: a teacher opens a session, picks a
// template, edits the draft and submits it as a new quiz.
type AssignmentService interface {
	Templates() *dto.TemplatesResponse
	TemplateCount() int
	OpenSession(ctx context.Context, actor *domain.Actor) (*dto.AssignmentSessionResponse, error)
	GetSession(ctx context.Context, sessionID string, actor *domain.Actor) (*dto.AssignmentSessionResponse, error)
	SelectTemplate(ctx context.Context, sessionID string, actor *domain.Actor, index int) (*dto.AssignmentSessionResponse, error)
	UpdateDetails(ctx context.Context, sessionID string, actor *domain.Actor, req *dto.UpdateDetailsRequest) (*dto.AssignmentSessionResponse, error)
	SetAudience(ctx context.Context, sessionID string, actor *domain.Actor, req *dto.SetAudienceRequest) (*dto.AssignmentSessionResponse, error)
	CloseSession(ctx context.Context, sessionID string, actor *domain.Actor) error
	Submit(ctx context.Context, sessionID string, actor *domain.Actor, onAssigned func()) (*dto.SubmitAssignmentResponse, error)
	ListQuizzes(ctx context.Context, actor *domain.Actor) (*dto.QuizListResponse, error)
	ListNotifications(ctx context.Context, actor *domain.Actor) (*dto.NotificationListResponse, error)
}

// assignmentService implements AssignmentService
type assignmentService struct {
	catalog  domain.TemplateCatalog
	sessions domain.SessionStore
	repo     domain.QuizRecordRepository
	notifier domain.Notifier
	feed     domain.NotificationFeed
	loc      *time.Location
	now      func() time.Time
	newID    func() string
}

// NewAssignmentService creates a new instance of assignmentService. loc is the
// timezone datetime-local values are interpreted in; nil means time.Local.
func NewAssignmentService(
	templateCatalog domain.TemplateCatalog,
	sessions domain.SessionStore,
	repo domain.QuizRecordRepository,
	notifier domain.Notifier,
	feed domain.NotificationFeed,
	loc *time.Location,
) AssignmentService {
	if loc == nil {
		loc = time.Local
	}
	return &assignmentService{
		catalog:  templateCatalog,
		sessions: sessions,
		repo:     repo,
		notifier: notifier,
		feed:     feed,
		loc:      loc,
		now:      time.Now,
		newID:    util.NewULID,
	}
}

// Templates implements AssignmentService
func (s *assignmentService) Templates() *dto.TemplatesResponse {
	templates := s.catalog.All()
	summaries := make([]dto.TemplateSummary, 0, len(templates))
	for i, t := range templates {
		summaries = append(summaries, dto.TemplateSummary{
			Index:         i,
			Title:         t.Title,
			Description:   t.Description,
			Subject:       t.Subject,
			TimeLimit:     t.TimeLimit,
			QuestionCount: len(t.Questions),
		})
	}
	return &dto.TemplatesResponse{
		Templates:  summaries,
		Programmes: toAudienceOptions(catalog.ProgrammeOptions),
		Branches:   toAudienceOptions(catalog.BranchOptions),
	}
}

// TemplateCount implements AssignmentService
func (s *assignmentService) TemplateCount() int {
	return s.catalog.Len()
}

// OpenSession implements AssignmentService
func (s *assignmentService) OpenSession(ctx context.Context, actor *domain.Actor) (*dto.AssignmentSessionResponse, error) {
	if actor == nil {
		return nil, domain.NewUnauthorizedError("Authentication required")
	}
	session := domain.NewAssignmentSession(s.newID(), actor.UID, s.now())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to open assignment session", err)
	}
	return toSessionResponse(session), nil
}

// GetSession implements AssignmentService
func (s *assignmentService) GetSession(ctx context.Context, sessionID string, actor *domain.Actor) (*dto.AssignmentSessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// SelectTemplate implements AssignmentService
func (s *assignmentService) SelectTemplate(ctx context.Context, sessionID string, actor *domain.Actor, index int) (*dto.AssignmentSessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}
	template, err := s.catalog.Get(index)
	if err != nil {
		return nil, err
	}

	session.SelectTemplate(index, template)
	return s.saveSession(ctx, session)
}

// UpdateDetails implements AssignmentService
func (s *assignmentService) UpdateDetails(ctx context.Context, sessionID string, actor *domain.Actor, req *dto.UpdateDetailsRequest) (*dto.AssignmentSessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}

	draft := session.Draft
	if req.Title != nil {
		draft = draft.WithTitle(*req.Title)
	}
	if req.Description != nil {
		draft = draft.WithDescription(*req.Description)
	}
	if req.TimeLimit != nil {
		draft = draft.WithTimeLimitText(*req.TimeLimit)
	}
	if req.StartTime != nil {
		draft = draft.WithStartTime(*req.StartTime)
	}
	if req.EndTime != nil {
		draft = draft.WithEndTime(*req.EndTime)
	}
	session.Draft = draft

	return s.saveSession(ctx, session)
}

// SetAudience implements AssignmentService
func (s *assignmentService) SetAudience(ctx context.Context, sessionID string, actor *domain.Actor, req *dto.SetAudienceRequest) (*dto.AssignmentSessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}

	draft := session.Draft
	if req.Programme != nil {
		draft = draft.WithProgramme(*req.Programme)
	}
	if req.Branch != nil {
		draft = draft.WithBranch(*req.Branch)
	}
	if req.Section != nil {
		draft = draft.WithSection(*req.Section)
	}
	if req.Group != nil {
		draft = draft.WithGroup(*req.Group)
	}
	session.Draft = draft

	return s.saveSession(ctx, session)
}

// CloseSession implements AssignmentService. The draft is discarded.
func (s *assignmentService) CloseSession(ctx context.Context, sessionID string, actor *domain.Actor) error {
	session, err := s.loadSession(ctx, sessionID, actor)
	if err != nil {
		return err
	}
	session.Close()
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return domain.NewInternalError("Failed to close assignment session", err)
	}
	return nil
}

// Submit implements AssignmentService.
//
// Without an actor or a selected template nothing happens and a skipped result is
// returned. Otherwise exactly one quiz is created and exactly one notification is
// sent. On success the session is closed and onAssigned is called once; on failure
// the session is kept for a retry.
//
// The session is read again after the submit lock is taken, so a submit that waited
// on another one sees the closed session and stops.
func (s *assignmentService) Submit(ctx context.Context, sessionID string, actor *domain.Actor, onAssigned func()) (*dto.SubmitAssignmentResponse, error) {
	appLogger := logger.Get()
	skipped := &dto.SubmitAssignmentResponse{Status: dto.SubmitStatusSkipped}

	if actor == nil {
		return skipped, nil
	}
	session, err := s.loadSession(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}
	if !session.HasTemplate() {
		return skipped, nil
	}

	acquired, err := s.sessions.AcquireSubmitLock(ctx, session.ID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to start submit", err)
	}
	if !acquired {
		return nil, domain.NewSubmitInProgressError(session.ID)
	}
	defer func() {
		// 요청이 취소되어도 잠금은 해제
		if err := s.sessions.ReleaseSubmitLock(context.WithoutCancel(ctx), session.ID); err != nil {
			appLogger.Error("Failed to release submit lock", zap.String("session_id", session.ID), zap.Error(err))
		}
	}()

	session, err = s.loadSession(ctx, sessionID, actor)
	if err != nil {
		return nil, err
	}
	if !session.HasTemplate() {
		return skipped, nil
	}
	template, err := s.catalog.Get(*session.TemplateIndex)
	if err != nil {
		return nil, err
	}

	session.Loading = true
	if _, err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	record := domain.NewQuizRecord(session.Draft, template, actor, s.now(), s.loc)
	if err := s.repo.CreateQuiz(ctx, record); err != nil {
		appLogger.Error("Error assigning quiz",
			zap.String("session_id", session.ID),
			zap.String("teacher_id", actor.UID),
			zap.Error(err))
		s.notify(ctx, actor.UID, domain.SeverityDestructive, failureTitle, failureDescription)
		s.clearLoading(ctx, session.ID)
		return nil, domain.NewQuizCreationFailedError(err)
	}

	appLogger.Info("Quiz assigned",
		zap.String("quiz_id", record.ID),
		zap.String("session_id", session.ID),
		zap.String("teacher_id", actor.UID))
	s.notify(ctx, actor.UID, domain.SeveritySuccess, successTitle, successDescription)

	session.Close()
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		appLogger.Error("Failed to close assignment session after submit",
			zap.String("session_id", session.ID), zap.Error(err))
	}
	if onAssigned != nil {
		onAssigned()
	}

	quiz := toAssignedQuizResponse(record)
	return &dto.SubmitAssignmentResponse{Status: dto.SubmitStatusCreated, Quiz: &quiz}, nil
}

// clearLoading keeps the session open for a retry after a failed submit. The stored
// copy is read again so edits made during the call are kept.
func (s *assignmentService) clearLoading(ctx context.Context, sessionID string) {
	ctx = context.WithoutCancel(ctx)
	current, err := s.sessions.Get(ctx, sessionID)
	if err == nil && current == nil {
		return
	}
	if err == nil {
		current.Loading = false
		_, err = s.saveSession(ctx, current)
	}
	if err != nil {
		logger.Get().Error("Failed to keep assignment session after failed submit",
			zap.String("session_id", sessionID), zap.Error(err))
	}
}

// ListQuizzes implements AssignmentService
func (s *assignmentService) ListQuizzes(ctx context.Context, actor *domain.Actor) (*dto.QuizListResponse, error) {
	if actor == nil {
		return nil, domain.NewUnauthorizedError("Authentication required")
	}
	records, err := s.repo.ListQuizzesByTeacher(ctx, actor.UID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	quizzes := make([]dto.AssignedQuizResponse, 0, len(records))
	for _, r := range records {
		quizzes = append(quizzes, toAssignedQuizResponse(r))
	}
	return &dto.QuizListResponse{Quizzes: quizzes}, nil
}

// ListNotifications implements AssignmentService
func (s *assignmentService) ListNotifications(ctx context.Context, actor *domain.Actor) (*dto.NotificationListResponse, error) {
	if actor == nil {
		return nil, domain.NewUnauthorizedError("Authentication required")
	}
	out := &dto.NotificationListResponse{Notifications: []dto.NotificationResponse{}}
	if s.feed == nil {
		return out, nil
	}

	notifications, err := s.feed.Recent(ctx, actor.UID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load notifications", err)
	}
	for _, n := range notifications {
		out.Notifications = append(out.Notifications, dto.NotificationResponse{
			Severity:    string(n.Severity),
			Title:       n.Title,
			Description: n.Description,
			CreatedAt:   n.CreatedAt,
		})
	}
	return out, nil
}

// loadSession returns the session if it exists and belongs to actor. Sessions of
// other teachers are reported as missing.
func (s *assignmentService) loadSession(ctx context.Context, sessionID string, actor *domain.Actor) (*domain.AssignmentSession, error) {
	if actor == nil {
		return nil, domain.NewUnauthorizedError("Authentication required")
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load assignment session", err)
	}
	if session == nil || session.TeacherID != actor.UID || !session.Open {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return session, nil
}

func (s *assignmentService) saveSession(ctx context.Context, session *domain.AssignmentSession) (*dto.AssignmentSessionResponse, error) {
	session.Touch(s.now())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, domain.NewInternalError("Failed to save assignment session", err)
	}
	return toSessionResponse(session), nil
}

// notify delivers a notification; delivery failures are logged and never change the
// outcome of the operation.
func (s *assignmentService) notify(ctx context.Context, actorID string, severity domain.Severity, title, description string) {
	n := domain.Notification{
		Severity:    severity,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := s.notifier.Notify(ctx, actorID, n); err != nil {
		logger.Get().Warn("Failed to deliver notification",
			zap.String("actor_id", actorID),
			zap.String("title", title),
			zap.Error(err))
	}
}

func toAudienceOptions(opts []catalog.Option) []dto.AudienceOption {
	out := make([]dto.AudienceOption, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.AudienceOption{Value: o.Value, Label: o.Label})
	}
	return out
}

func toAudienceDTO(a domain.TargetAudience) dto.TargetAudience {
	return dto.TargetAudience{
		Programme: nonNilCodes(a.Programme),
		Branch:    nonNilCodes(a.Branch),
		Section:   nonNilCodes(a.Section),
		Group:     nonNilCodes(a.Group),
	}
}

func nonNilCodes(codes []string) []string {
	if codes == nil {
		return []string{}
	}
	return append([]string(nil), codes...)
}

func toSessionResponse(s *domain.AssignmentSession) *dto.AssignmentSessionResponse {
	resp := &dto.AssignmentSessionResponse{
		ID:   s.ID,
		Open: s.Open,
		Draft: dto.QuizDraft{
			Title:          s.Draft.Title,
			Description:    s.Draft.Description,
			TimeLimit:      s.Draft.TimeLimit,
			StartTime:      s.Draft.StartTime,
			EndTime:        s.Draft.EndTime,
			TargetAudience: toAudienceDTO(s.Draft.TargetAudience),
		},
		Loading:   s.Loading,
		CanSubmit: s.CanSubmit(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.TemplateIndex != nil {
		idx := *s.TemplateIndex
		resp.TemplateIndex = &idx
	}
	return resp
}

func toAssignedQuizResponse(r *domain.QuizRecord) dto.AssignedQuizResponse {
	questions := make([]dto.QuestionResponse, 0, len(r.Questions))
	for _, q := range r.Questions {
		questions = append(questions, dto.QuestionResponse{
			Type:          q.Type,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		})
	}
	return dto.AssignedQuizResponse{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		TimeLimit:      r.TimeLimit,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		TargetAudience: toAudienceDTO(r.TargetAudience),
		TeacherID:      r.TeacherID,
		TeacherName:    r.TeacherName,
		Questions:      questions,
		IsLive:         r.IsLive,
		CreatedAt:      r.CreatedAt,
	}
}
