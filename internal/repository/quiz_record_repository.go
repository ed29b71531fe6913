package repository

import (
	"context"
	"fmt"

	"quiz-assign/internal/domain"
	"quiz-assign/internal/repository/models"
	"quiz-assign/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	insertAssignedQuizQuery = `INSERT INTO assigned_quizzes
		(id, teacher_id, teacher_name, title, description, time_limit, start_time, end_time, target_audience, is_live, created_at)
		VALUES (:id, :teacher_id, :teacher_name, :title, :description, :time_limit, :start_time, :end_time, :target_audience, :is_live, :created_at)`

	insertAssignedQuizQuestionQuery = `INSERT INTO assigned_quiz_questions
		(id, quiz_id, position, question_type, question_text, options, correct_answer, points)
		VALUES (:id, :quiz_id, :position, :question_type, :question_text, :options, :correct_answer, :points)`

	// Oracle은 따옴표 없는 컬럼명을 대문자로 반환하므로 소문자 별칭을 사용
	selectQuizzesByTeacherQuery = `SELECT
		id "id",
		teacher_id "teacher_id",
		teacher_name "teacher_name",
		title "title",
		description "description",
		time_limit "time_limit",
		start_time "start_time",
		end_time "end_time",
		target_audience "target_audience",
		is_live "is_live",
		created_at "created_at"
	FROM assigned_quizzes
	WHERE teacher_id = :1
	ORDER BY created_at DESC`

	selectQuestionsByTeacherQuery = `SELECT
		q.id "id",
		q.quiz_id "quiz_id",
		q.position "position",
		q.question_type "question_type",
		q.question_text "question_text",
		q.options "options",
		q.correct_answer "correct_answer",
		q.points "points"
	FROM assigned_quiz_questions q
	JOIN assigned_quizzes z ON z.id = q.quiz_id
	WHERE z.teacher_id = :1
	ORDER BY q.quiz_id, q.position`
)

// QuizRecordDatabaseAdapter implements domain.QuizRecordRepository using sqlx.
type QuizRecordDatabaseAdapter struct {
	db DBTX
	tx domain.TransactionManager
}

// NewQuizRecordDatabaseAdapter creates a new instance of QuizRecordDatabaseAdapter.
func NewQuizRecordDatabaseAdapter(db *sqlx.DB, tx domain.TransactionManager) domain.QuizRecordRepository {
	return &QuizRecordDatabaseAdapter{db: db, tx: tx}
}

// CreateQuiz implements domain.QuizRecordRepository
func (a *QuizRecordDatabaseAdapter) CreateQuiz(ctx context.Context, record *domain.QuizRecord) error {
	if record == nil {
		return fmt.Errorf("quiz record is nil")
	}

	id := record.ID
	if id == "" {
		id = util.NewULID()
	}
	quizModel := fromDomainQuizRecord(record, id)
	questionModels := fromDomainQuestions(id, record.Questions)

	err := a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		if _, err := exec.NamedExecContext(ctx, insertAssignedQuizQuery, quizModel); err != nil {
			return fmt.Errorf("failed to insert assigned quiz: %w", err)
		}
		for i := range questionModels {
			if _, err := exec.NamedExecContext(ctx, insertAssignedQuizQuestionQuery, &questionModels[i]); err != nil {
				return fmt.Errorf("failed to insert question %d of assigned quiz: %w", questionModels[i].Position, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	record.ID = id
	return nil
}

// ListQuizzesByTeacher implements domain.QuizRecordRepository
func (a *QuizRecordDatabaseAdapter) ListQuizzesByTeacher(ctx context.Context, teacherID string) ([]*domain.QuizRecord, error) {
	exec := GetExecutor(ctx, a.db)

	var quizModels []models.AssignedQuiz
	if err := exec.SelectContext(ctx, &quizModels, selectQuizzesByTeacherQuery, teacherID); err != nil {
		return nil, fmt.Errorf("failed to list assigned quizzes: %w", err)
	}
	if len(quizModels) == 0 {
		return []*domain.QuizRecord{}, nil
	}

	var questionModels []models.AssignedQuizQuestion
	if err := exec.SelectContext(ctx, &questionModels, selectQuestionsByTeacherQuery, teacherID); err != nil {
		return nil, fmt.Errorf("failed to list assigned quiz questions: %w", err)
	}

	questionsByQuiz := make(map[string][]domain.Question, len(quizModels))
	for _, q := range questionModels {
		questionsByQuiz[q.QuizID] = append(questionsByQuiz[q.QuizID], toDomainQuestion(q))
	}

	records := make([]*domain.QuizRecord, 0, len(quizModels))
	for i := range quizModels {
		rec := toDomainQuizRecord(&quizModels[i])
		if qs, ok := questionsByQuiz[rec.ID]; ok {
			rec.Questions = qs
		}
		records = append(records, rec)
	}
	return records, nil
}

func fromDomainQuizRecord(r *domain.QuizRecord, id string) *models.AssignedQuiz {
	isLive := 0
	if r.IsLive {
		isLive = 1
	}
	return &models.AssignedQuiz{
		ID:          id,
		TeacherID:   r.TeacherID,
		TeacherName: r.TeacherName,
		Title:       util.StringToNullString(r.Title),
		Description: util.StringToNullString(r.Description),
		TimeLimit:   r.TimeLimit,
		StartTime:   util.TimePtrToNullTime(r.StartTime),
		EndTime:     util.TimePtrToNullTime(r.EndTime),
		TargetAudience: models.Audience{
			Programme: r.TargetAudience.Programme,
			Branch:    r.TargetAudience.Branch,
			Section:   r.TargetAudience.Section,
			Group:     r.TargetAudience.Group,
		},
		IsLive:    isLive,
		CreatedAt: r.CreatedAt,
	}
}

func fromDomainQuestions(quizID string, questions []domain.Question) []models.AssignedQuizQuestion {
	out := make([]models.AssignedQuizQuestion, 0, len(questions))
	for i, q := range questions {
		out = append(out, models.AssignedQuizQuestion{
			ID:            util.NewULID(),
			QuizID:        quizID,
			Position:      i,
			QuestionType:  q.Type,
			QuestionText:  q.Text,
			Options:       models.StringSlice(q.Options),
			CorrectAnswer: util.StringToNullString(q.CorrectAnswer),
			Points:        q.Points,
		})
	}
	return out
}

func toDomainQuizRecord(m *models.AssignedQuiz) *domain.QuizRecord {
	if m == nil {
		return nil
	}
	return &domain.QuizRecord{
		ID:          m.ID,
		Title:       m.Title.String,
		Description: m.Description.String,
		TimeLimit:   m.TimeLimit,
		StartTime:   util.NullTimeToTimePtr(m.StartTime),
		EndTime:     util.NullTimeToTimePtr(m.EndTime),
		TargetAudience: domain.TargetAudience{
			Programme: nonNil(m.TargetAudience.Programme),
			Branch:    nonNil(m.TargetAudience.Branch),
			Section:   nonNil(m.TargetAudience.Section),
			Group:     nonNil(m.TargetAudience.Group),
		},
		TeacherID:   m.TeacherID,
		TeacherName: m.TeacherName,
		Questions:   []domain.Question{},
		IsLive:      m.IsLive != 0,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainQuestion(m models.AssignedQuizQuestion) domain.Question {
	var options []string
	if len(m.Options) > 0 {
		options = []string(m.Options)
	}
	return domain.Question{
		Type:          m.QuestionType,
		Text:          m.QuestionText,
		Options:       options,
		CorrectAnswer: m.CorrectAnswer.String,
		Points:        m.Points,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
