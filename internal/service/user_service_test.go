package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-accelerator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUserProfile_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockQuizAttemptRepository)
	userService := NewUserService(mockUserRepo, mockAttemptRepo)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	expectedUser := &domain.User{ID: "user1", Name: "Test User", Email: "test@example.com", CreatedAt: created}
	mockUserRepo.On("GetUserByID", mock.Anything, "user1").Return(expectedUser, nil)
	mockAttemptRepo.On("ListAttemptsByUser", mock.Anything, "user1", 0).
		Return([]domain.QuizAttempt{{ID: "newest", Accuracy: 80}, {ID: "older"}}, nil)

	profile, err := userService.GetUserProfile(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, "user1", profile.ID)
	assert.Equal(t, "Test User", profile.Name)
	assert.Equal(t, 2, profile.QuizAttempts)
	assert.Equal(t, created, profile.MemberSince)
	require.NotNil(t, profile.LatestAttempt)
	assert.Equal(t, "newest", profile.LatestAttempt.ID)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetUserProfile_NoAttempts(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockQuizAttemptRepository)
	mockUserRepo.On("GetUserByID", mock.Anything, "user1").Return(&domain.User{ID: "user1"}, nil)
	mockAttemptRepo.On("ListAttemptsByUser", mock.Anything, "user1", 0).Return([]domain.QuizAttempt{}, nil)

	profile, err := NewUserService(mockUserRepo, mockAttemptRepo).GetUserProfile(context.Background(), "user1")

	require.NoError(t, err)
	assert.Zero(t, profile.QuizAttempts)
	assert.Nil(t, profile.LatestAttempt)
}

func TestUserService_GetUserProfile_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetUserByID", mock.Anything, "unknownUser").Return(nil, nil)

	profile, err := NewUserService(mockUserRepo, new(MockQuizAttemptRepository)).GetUserProfile(context.Background(), "unknownUser")

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrUserProfileNotFound)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
}

func TestUserService_GetUserProfile_RepoError(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("GetUserByID", mock.Anything, "user1").Return(nil, errors.New("db error"))

	_, err := NewUserService(mockUserRepo, new(MockQuizAttemptRepository)).GetUserProfile(context.Background(), "user1")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}
