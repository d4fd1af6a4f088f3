package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"career-accelerator/internal/config"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/logger"
	"career-accelerator/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	CreateJWT(user *domain.User) (string, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	userRepo domain.UserRepository
	jwtCfg   config.JWTConfig
	cost     int
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, jwtCfg config.JWTConfig) (AuthService, error) {
	if jwtCfg.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	if jwtCfg.TokenTTL <= 0 {
		jwtCfg.TokenTTL = 7 * 24 * time.Hour
	}
	return &authServiceImpl{userRepo: userRepo, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}, nil
}

func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	appLogger := logger.Get()
	if errs := validateSignup(req); len(errs) > 0 {
		return nil, errs
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, domain.NewInternalError("Failed to create account", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, domain.NewInternalError("Failed to create account", err)
	}

	user := domain.NewUser(req.Name, req.Email, string(hash))
	user.ID = util.NewULID()
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return nil, domainErr
		}
		return nil, domain.NewInternalError("Failed to create account", err)
	}
	appLogger.Info("New user created", zap.String("userID", user.ID))

	return s.authResponse(user)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	appLogger := logger.Get()
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, domain.NewInvalidInputError("Email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, domain.NewInternalError("Failed to log in", err)
	}
	if user == nil {
		return nil, domain.NewError(domain.CodeUnauthorized, "Invalid credentials", ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		appLogger.Warn("Login with wrong password", zap.String("userID", user.ID))
		return nil, domain.NewError(domain.CodeUnauthorized, "Invalid credentials", ErrInvalidCredentials)
	}

	return s.authResponse(user)
}

func (s *authServiceImpl) CreateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtCfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired", zap.Error(err))
		} else {
			appLogger.Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}

func (s *authServiceImpl) authResponse(user *domain.User) (*dto.AuthResponse, error) {
	token, err := s.CreateJWT(user)
	if err != nil {
		return nil, domain.NewInternalError("Failed to issue token", err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func validateSignup(req *dto.SignupRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, domain.NewInvalidFormatError("email", req.Email))
	}
	if req.Password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < minPasswordLength {
		errs = append(errs, domain.ValidationError{
			Code:    domain.CodeValidation,
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength),
		})
	}
	return errs
}
