package domain

import (
	"context"
	"strings"
	"time"
)

// User represents a domain user object
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User instance. Email is stored lower-cased.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now()
	return &User{
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
}

// QuizAttemptRepository stores scored quizzes per user.
type QuizAttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error
	// ListAttemptsByUser returns newest first. limit <= 0 returns every attempt.
	ListAttemptsByUser(ctx context.Context, userID string, limit int) ([]QuizAttempt, error)
}
