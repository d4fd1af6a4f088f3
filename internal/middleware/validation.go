package middleware

import (
	"career-accelerator/internal/domain"
	"career-accelerator/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedQuizQueryKey holds the validation.QuizQuery set by ValidateQuizQuery.
const ValidatedQuizQueryKey = "validated_quiz_query"

// MessageQuizParamsRequired is returned when role or difficulty is absent.
const MessageQuizParamsRequired = "Role and difficulty are required"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(maxCount int) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(maxCount),
	}
}

// ValidateQuizQuery validates role, difficulty, skill and limit query parameters
// and stores the parsed validation.QuizQuery in locals.
func (vm *ValidationMiddleware) ValidateQuizQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, difficulty := c.Query("role"), c.Query("difficulty")
		if validation.HasMissingQuizParams(role, difficulty) {
			return domain.NewInvalidInputError(MessageQuizParamsRequired)
		}

		query, errors := vm.validator.ValidateQuizQuery(role, difficulty, c.Query("skill"), c.Query("limit"))
		if len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedQuizQueryKey, query)
		return c.Next()
	}
}
