package repository

import (
	"context"
	"fmt"
	"time"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/repository/models"
	"career-accelerator/internal/util"

	"github.com/jmoiron/sqlx"
)

const attemptColumns = `id, user_id, skill, role, difficulty, total_questions, correct_answers, accuracy, score, level_name, strengths, weaknesses, created_at`

// sqlxQuizAttemptRepository implements domain.QuizAttemptRepository using sqlx.
type sqlxQuizAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizAttemptRepository creates a new instance of sqlxQuizAttemptRepository.
func NewSQLXQuizAttemptRepository(db *sqlx.DB) domain.QuizAttemptRepository {
	return &sqlxQuizAttemptRepository{db: db}
}

func toDomainQuizAttempt(m *models.QuizAttempt) domain.QuizAttempt {
	return domain.QuizAttempt{
		ID:             m.ID,
		UserID:         m.UserID,
		Skill:          m.Skill.String,
		Role:           domain.Role(m.Role.String),
		Difficulty:     domain.Difficulty(m.Difficulty.String),
		TotalQuestions: m.TotalQuestions,
		CorrectAnswers: m.CorrectAnswers,
		Accuracy:       m.Accuracy,
		Score:          m.Score,
		Level:          domain.Level(m.LevelName),
		Strengths:      []string(m.Strengths),
		Weaknesses:     []string(m.Weaknesses),
		CreatedAt:      m.CreatedAt,
	}
}

func fromDomainQuizAttempt(a *domain.QuizAttempt) *models.QuizAttempt {
	return &models.QuizAttempt{
		ID:             a.ID,
		UserID:         a.UserID,
		Skill:          util.StringToNullString(a.Skill),
		Role:           util.StringToNullString(string(a.Role)),
		Difficulty:     util.StringToNullString(string(a.Difficulty)),
		TotalQuestions: a.TotalQuestions,
		CorrectAnswers: a.CorrectAnswers,
		Accuracy:       a.Accuracy,
		Score:          a.Score,
		LevelName:      string(a.Level),
		Strengths:      models.StringSlice(a.Strengths),
		Weaknesses:     models.StringSlice(a.Weaknesses),
		CreatedAt:      a.CreatedAt,
	}
}

// CreateAttempt inserts a scored quiz.
func (r *sqlxQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	m := fromDomainQuizAttempt(attempt)

	// Oracle binds CLOBs from plain strings, so the JSON columns are converted up front.
	strengths, err := m.Strengths.Value()
	if err != nil {
		return fmt.Errorf("failed to encode strengths: %w", err)
	}
	weaknesses, err := m.Weaknesses.Value()
	if err != nil {
		return fmt.Errorf("failed to encode weaknesses: %w", err)
	}

	query := `INSERT INTO quiz_attempts (` + attemptColumns + `)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12, :13)`
	_, err = GetExecutor(ctx, r.db).ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Skill,
		m.Role,
		m.Difficulty,
		m.TotalQuestions,
		m.CorrectAnswers,
		m.Accuracy,
		m.Score,
		m.LevelName,
		strengths,
		weaknesses,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// ListAttemptsByUser returns the user's attempts newest first. limit <= 0 returns all of them.
func (r *sqlxQuizAttemptRepository) ListAttemptsByUser(ctx context.Context, userID string, limit int) ([]domain.QuizAttempt, error) {
	query := `SELECT ` + attemptColumns + ` FROM quiz_attempts WHERE user_id = :1 ORDER BY created_at DESC, id DESC`
	args := []interface{}{userID}
	if limit > 0 {
		query += ` FETCH FIRST :2 ROWS ONLY`
		args = append(args, limit)
	}

	var rows []models.QuizAttempt
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list quiz attempts: %w", err)
	}

	attempts := make([]domain.QuizAttempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, toDomainQuizAttempt(&rows[i]))
	}
	return attempts, nil
}
