package handler

import (
	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ResumeHandler struct {
	resumeService service.ResumeService
}

func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Generate godoc
// @Summary Generate a résumé
// @Description Writes an ATS-friendly résumé. Without an OpenAI key a placeholder résumé is returned.
// @Tags resume
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param resume body dto.GenerateResumeRequest true "Résumé source data"
// @Success 200 {object} dto.GenerateResumeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /resume/generate [post]
func (h *ResumeHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.resumeService.GenerateResume(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
