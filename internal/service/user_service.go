package service

import (
	"context"
	"errors"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
)

var ErrUserProfileNotFound = errors.New("user profile not found")

// UserService defines the interface for user-related operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
}

type userServiceImpl struct {
	userRepo    domain.UserRepository
	attemptRepo domain.QuizAttemptRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository, attemptRepo domain.QuizAttemptRepository) UserService {
	return &userServiceImpl{userRepo: userRepo, attemptRepo: attemptRepo}
}

// GetUserProfile returns the account and a count of its quiz attempts.
func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user profile", err)
	}
	if user == nil {
		return nil, domain.NewError(domain.CodeNotFound, "User not found", ErrUserProfileNotFound)
	}

	attempts, err := s.attemptRepo.ListAttemptsByUser(ctx, userID, 0)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load user profile", err)
	}

	return &dto.UserProfileResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		QuizAttempts:  len(attempts),
		MemberSince:   user.CreatedAt,
		LatestAttempt: latestAttempt(attempts),
	}, nil
}

func latestAttempt(attempts []domain.QuizAttempt) *dto.QuizAttemptResponse {
	if len(attempts) == 0 {
		return nil
	}
	latest := dto.ToQuizAttemptResponse(attempts[0])
	return &latest
}
