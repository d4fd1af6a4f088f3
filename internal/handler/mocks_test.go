package handler_test

import (
	"context"
	"testing"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/middleware"
	"career-accelerator/internal/service"

	"github.com/gofiber/fiber/v2"
)

// --- Manual Mocks ---

type MockQuizService struct {
	GenerateQuizQuestionsFunc func(ctx context.Context, role domain.Role, difficulty domain.Difficulty, skill string, count int) service.GenerationResult
	SubmitQuizFunc            func(ctx context.Context, in service.SubmitQuizInput) (*domain.QuizAttempt, error)
	GetHistoryFunc            func(ctx context.Context, userID string) ([]domain.QuizAttempt, error)
}

func (m *MockQuizService) GenerateQuizQuestions(ctx context.Context, role domain.Role, difficulty domain.Difficulty, skill string, count int) service.GenerationResult {
	if m.GenerateQuizQuestionsFunc != nil {
		return m.GenerateQuizQuestionsFunc(ctx, role, difficulty, skill, count)
	}
	panic("MockQuizService.GenerateQuizQuestionsFunc not implemented")
}
func (m *MockQuizService) ScoreSubmission(questions []domain.QuizQuestion, answers []domain.AnswerSubmission) domain.QuizResult {
	return domain.ScoreSubmission(questions, answers)
}
func (m *MockQuizService) SubmitQuiz(ctx context.Context, in service.SubmitQuizInput) (*domain.QuizAttempt, error) {
	if m.SubmitQuizFunc != nil {
		return m.SubmitQuizFunc(ctx, in)
	}
	panic("MockQuizService.SubmitQuizFunc not implemented")
}
func (m *MockQuizService) GetHistory(ctx context.Context, userID string) ([]domain.QuizAttempt, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, userID)
	}
	panic("MockQuizService.GetHistoryFunc not implemented")
}

type MockAuthService struct {
	SignupFunc      func(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	LoginFunc       func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ValidateJWTFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	panic("MockAuthService.SignupFunc not implemented")
}
func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	panic("MockAuthService.LoginFunc not implemented")
}
func (m *MockAuthService) CreateJWT(user *domain.User) (string, error) {
	panic("not implemented in mock")
}
func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	if tokenString == "good" {
		return &dto.AuthClaims{UserID: "user-1", Email: "a@b.io"}, nil
	}
	return nil, service.ErrInvalidJWTToken
}

type MockUserService struct {
	GetUserProfileFunc func(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
}

func (m *MockUserService) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	panic("MockUserService.GetUserProfileFunc not implemented")
}

type MockDashboardService struct {
	GetOverviewFunc func(ctx context.Context, userID, role string) (*service.DashboardOverview, error)
}

func (m *MockDashboardService) GetOverview(ctx context.Context, userID, role string) (*service.DashboardOverview, error) {
	if m.GetOverviewFunc != nil {
		return m.GetOverviewFunc(ctx, userID, role)
	}
	panic("MockDashboardService.GetOverviewFunc not implemented")
}

type MockResumeService struct {
	GenerateResumeFunc func(ctx context.Context, req *dto.GenerateResumeRequest) (*dto.GenerateResumeResponse, error)
}

func (m *MockResumeService) GenerateResume(ctx context.Context, req *dto.GenerateResumeRequest) (*dto.GenerateResumeResponse, error) {
	if m.GenerateResumeFunc != nil {
		return m.GenerateResumeFunc(ctx, req)
	}
	panic("MockResumeService.GenerateResumeFunc not implemented")
}

type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) error { return m.Err }

// newTestApp returns an app with the production error handler. Routes are added by the caller.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}
