package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SignupRequest
// @Description Request body for creating an account
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest
// @Description Request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserProfileResponse
// @Description The signed-in user's account summary
type UserProfileResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	QuizAttempts  int                  `json:"quizAttempts"`
	MemberSince   time.Time            `json:"memberSince"`
	LatestAttempt *QuizAttemptResponse `json:"latestAttempt,omitempty"`
}

// AuthResponse carries the bearer token and the signed-in user.
// @Description Response body for signup and login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// HealthResponse
// @Description Liveness of the API and, when configured, the cache
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Cache   string `json:"cache,omitempty"`
}
