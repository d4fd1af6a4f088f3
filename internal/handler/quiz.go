package handler

import (
	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/logger"
	"career-accelerator/internal/middleware"
	"career-accelerator/internal/service"
	"career-accelerator/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	messageNotConfigured    = "Gemini API not configured"
	messageGenerationFailed = "Failed to generate questions"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// GetQuestions godoc
// @Summary Generate quiz questions
// @Description Generates multiple-choice questions for a role, difficulty and skill. Nothing is cached.
// @Tags quiz
// @Produce json
// @Param role query string true "Career role (frontend, backend, data, cybersecurity, fullstack, other)"
// @Param difficulty query string true "easy, medium or hard"
// @Param skill query string false "Skill; defaults per role"
// @Param limit query int false "Number of questions (default 10, max 50)"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} dto.GenerationFailureResponse
// @Router /quiz/questions [get]
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	query, ok := c.Locals(middleware.ValidatedQuizQueryKey).(validation.QuizQuery)
	if !ok {
		return domain.NewInvalidInputError(middleware.MessageQuizParamsRequired)
	}

	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderExpires, "0")

	result := h.service.GenerateQuizQuestions(c.UserContext(), query.Role, query.Difficulty, query.Skill, query.Limit)
	if !result.UsedAI {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.GenerationFailureResponse{
			Message: messageNotConfigured,
			Error:   result.Reason,
		})
	}
	if len(result.Questions) == 0 {
		logger.Get().Warn("No questions generated",
			zap.String("role", string(query.Role)),
			zap.String("difficulty", string(query.Difficulty)),
			zap.String("skill", query.Skill),
			zap.String("reason", result.Reason),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.GenerationFailureResponse{
			Message: messageGenerationFailed,
			Error:   result.Reason,
		})
	}

	out := make([]dto.QuestionResponse, 0, len(result.Questions))
	for _, q := range result.Questions {
		out = append(out, dto.ToQuestionResponse(q))
	}
	return c.JSON(out)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores the answers against the submitted questions and stores the attempt
// @Tags quiz
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param submission body dto.SubmitQuizRequest true "Answers and the questions they answer"
// @Success 200 {object} dto.QuizAttemptResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse submit body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}
	if len(req.Answers) == 0 {
		return domain.NewSubmissionEmptyError()
	}
	if errs := h.validator.ValidateSubmitRequest(&req); len(errs) > 0 {
		return errs
	}

	attempt, err := h.service.SubmitQuiz(c.UserContext(), toSubmitQuizInput(middleware.UserID(c), &req))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuizAttemptResponse(*attempt))
}

// GetHistory godoc
// @Summary Quiz history
// @Description Returns the signed-in user's quiz attempts, newest first
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} dto.QuizAttemptResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/history [get]
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	attempts, err := h.service.GetHistory(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.ToQuizAttemptResponses(attempts))
}

// toSubmitQuizInput keys each question by id, falling back to _id. Questions
// without an answer key are left out, so their answers count as unmatched. An
// answer without a selection counts as unanswered.
func toSubmitQuizInput(userID string, req *dto.SubmitQuizRequest) service.SubmitQuizInput {
	role, _ := domain.ParseRole(req.Role)
	difficulty, _ := domain.ParseDifficulty(req.Difficulty)

	questions := make([]domain.QuizQuestion, 0, len(req.Questions))
	for _, q := range req.Questions {
		if q.CorrectIndex == nil {
			continue
		}
		id := q.ID
		if id == "" {
			id = q.LegacyID
		}
		questions = append(questions, domain.QuizQuestion{
			ID:           id,
			Skill:        q.Skill,
			Role:         role,
			Difficulty:   difficulty,
			CorrectIndex: *q.CorrectIndex,
		})
	}

	answers := make([]domain.AnswerSubmission, 0, len(req.Answers))
	for _, a := range req.Answers {
		selected := domain.Unanswered
		if a.SelectedIndex != nil {
			selected = *a.SelectedIndex
		}
		answers = append(answers, domain.AnswerSubmission{QuestionID: a.QuestionID, SelectedIndex: selected})
	}

	return service.SubmitQuizInput{
		UserID:    userID,
		Context:   domain.QuizContext{Role: role, Difficulty: difficulty, Skill: req.Skill},
		Questions: questions,
		Answers:   answers,
	}
}
