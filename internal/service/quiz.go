package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"career-accelerator/internal/config"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/logger"
	"career-accelerator/internal/util"

	"go.uber.org/zap"
)

const (
	ReasonNotConfigured     = "GEMINI_API_KEY not configured"
	ReasonEmptyResponse     = "Empty response from Gemini API"
	ReasonInvalidJSON       = "Invalid JSON response from Gemini"
	ReasonNoUsableQuestions = "Gemini API returned no usable questions"
	reasonUpstreamPrefix    = "Gemini API error: "

	rawSnippetLength = 200
)

// QuestionSource returns raw generated text for a prompt.
type QuestionSource interface {
	FetchRawCompletion(ctx context.Context, prompt string) (string, error)
}

// GenerationResult is the outcome of a generation request. UsedAI is false only
// when no question source is configured. An empty Questions slice with UsedAI
// set means the upstream failed or produced nothing usable; Reason says which.
type GenerationResult struct {
	Questions []domain.QuizQuestion
	UsedAI    bool
	Reason    string
}

// SubmitQuizInput is a scored-and-stored quiz submission.
type SubmitQuizInput struct {
	UserID    string
	Context   domain.QuizContext
	Questions []domain.QuizQuestion
	Answers   []domain.AnswerSubmission
}

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	GenerateQuizQuestions(ctx context.Context, role domain.Role, difficulty domain.Difficulty, skill string, count int) GenerationResult
	ScoreSubmission(questions []domain.QuizQuestion, answers []domain.AnswerSubmission) domain.QuizResult
	SubmitQuiz(ctx context.Context, in SubmitQuizInput) (*domain.QuizAttempt, error)
	GetHistory(ctx context.Context, userID string) ([]domain.QuizAttempt, error)
}

type quizService struct {
	source   QuestionSource
	attempts domain.QuizAttemptRepository
	cfg      config.QuizConfig
	newID    func() string
}

// NewQuizService creates a new instance of quizService. source may be nil,
// in which case generation reports ReasonNotConfigured.
func NewQuizService(source QuestionSource, attempts domain.QuizAttemptRepository, cfg config.QuizConfig) QuizService {
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = 10
	}
	if cfg.MaxCount <= 0 {
		cfg.MaxCount = 50
	}
	return &quizService{
		source:   source,
		attempts: attempts,
		cfg:      cfg,
		newID:    util.NewQuestionID,
	}
}

// GenerateQuizQuestions never returns an error; failures are reported through
// GenerationResult.Reason.
func (s *quizService) GenerateQuizQuestions(ctx context.Context, role domain.Role, difficulty domain.Difficulty, skill string, count int) GenerationResult {
	log := logger.Get()
	if s.source == nil {
		return GenerationResult{UsedAI: false, Reason: ReasonNotConfigured}
	}

	count = s.clampCount(count)
	qc := domain.QuizContext{Role: role, Difficulty: difficulty, Skill: skill}
	log.Info("Generating quiz questions",
		zap.String("role", string(role)),
		zap.String("difficulty", string(difficulty)),
		zap.String("skill", skill),
		zap.Int("count", count),
	)

	text, err := s.source.FetchRawCompletion(ctx, buildQuestionPrompt(count, qc))
	if err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			return GenerationResult{UsedAI: false, Reason: ReasonNotConfigured}
		}
		log.Error("Question source failed", zap.Error(err))
		return GenerationResult{UsedAI: true, Reason: reasonUpstreamPrefix + err.Error()}
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("Question source returned an empty response")
		return GenerationResult{UsedAI: true, Reason: ReasonEmptyResponse}
	}

	report, err := domain.NormalizeQuestions(text, qc)
	if err != nil {
		log.Warn("Failed to parse question source response as JSON",
			zap.Error(err),
			zap.String("raw_snippet", snippet(text, rawSnippetLength)),
		)
		return GenerationResult{UsedAI: true, Reason: ReasonInvalidJSON}
	}
	logValidations(log, report)

	questions := report.Questions
	for i := range questions {
		questions[i].ID = s.newID()
	}
	log.Info("Generated quiz questions",
		zap.Int("valid", len(questions)),
		zap.Int("parsed", report.Parsed),
	)

	if len(questions) == 0 {
		return GenerationResult{Questions: questions, UsedAI: true, Reason: ReasonNoUsableQuestions}
	}
	return GenerationResult{Questions: questions, UsedAI: true}
}

func (s *quizService) ScoreSubmission(questions []domain.QuizQuestion, answers []domain.AnswerSubmission) domain.QuizResult {
	return domain.ScoreSubmission(questions, answers)
}

// SubmitQuiz rejects an empty answer list, scores the rest and stores the attempt.
func (s *quizService) SubmitQuiz(ctx context.Context, in SubmitQuizInput) (*domain.QuizAttempt, error) {
	log := logger.Get()
	if len(in.Answers) == 0 {
		return nil, domain.NewSubmissionEmptyError()
	}

	result := s.ScoreSubmission(in.Questions, in.Answers)
	if result.Unmatched > 0 {
		log.Warn("Answers reference questions that were not submitted",
			zap.String("user_id", in.UserID),
			zap.Int("unmatched", result.Unmatched),
			zap.Int("answers", len(in.Answers)),
		)
	}

	attempt := domain.NewQuizAttempt(in.UserID, in.Context, result)
	attempt.ID = util.NewULID()
	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to submit quiz", err)
	}

	log.Info("Quiz attempt stored",
		zap.String("user_id", in.UserID),
		zap.String("attempt_id", attempt.ID),
		zap.Int("accuracy", attempt.Accuracy),
		zap.String("level", string(attempt.Level)),
	)
	return attempt, nil
}

// GetHistory returns every attempt of the user, newest first.
func (s *quizService) GetHistory(ctx context.Context, userID string) ([]domain.QuizAttempt, error) {
	attempts, err := s.attempts.ListAttemptsByUser(ctx, userID, 0)
	if err != nil {
		return nil, domain.NewInternalError("Failed to fetch quiz history", err)
	}
	return attempts, nil
}

func (s *quizService) clampCount(count int) int {
	if count <= 0 {
		return s.cfg.DefaultCount
	}
	if count > s.cfg.MaxCount {
		return s.cfg.MaxCount
	}
	return count
}

func logValidations(log *zap.Logger, report domain.NormalizeReport) {
	for _, v := range report.Validations {
		switch {
		case !v.IsValid():
			log.Debug("Dropped malformed question", zap.Int("index", v.Index), zap.String("reason", string(v.Reason)))
		case v.Truncated:
			log.Warn("Question had more than 4 options; kept the first 4", zap.Int("index", v.Index))
		}
	}
}

// snippet returns at most n bytes of s without splitting a UTF-8 sequence.
func snippet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
