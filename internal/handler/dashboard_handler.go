package handler

import (
	"career-accelerator/internal/dto"
	"career-accelerator/internal/middleware"
	"career-accelerator/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Top skills by popularity for a role, plus the user's ten most recent quiz attempts
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Param role query string false "Role filter; empty or 'all' lists every role"
// @Success 200 {object} dto.DashboardOverviewResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /dashboard/overview [get]
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.dashboardService.GetOverview(c.UserContext(), middleware.UserID(c), c.Query("role"))
	if err != nil {
		return err
	}
	return c.JSON(dto.DashboardOverviewResponse{
		Skills:             overview.Skills,
		RecentQuizAttempts: dto.ToQuizAttemptResponses(overview.RecentAttempts),
	})
}
