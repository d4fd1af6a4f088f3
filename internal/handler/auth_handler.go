package handler

import (
	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/logger"
	"career-accelerator/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates an account and signs the user in.
// @Summary Sign up
// @Description Creates an account and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.SignupRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 409 {object} middleware.ErrorResponse "User already exists"
// @Failure 500 {object} middleware.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		return err
	}
	logger.Get().Info("User signed up", zap.String("userID", resp.User.ID))
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login exchanges credentials for a bearer token.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
