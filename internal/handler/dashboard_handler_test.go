package handler_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/handler"
	"career-accelerator/internal/middleware"
	"career-accelerator/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDashboardApp(t *testing.T, svc *MockDashboardService) *fiber.App {
	app := newTestApp(t)
	app.Get("/api/dashboard/overview", middleware.Protected(&MockAuthService{}), handler.NewDashboardHandler(svc).GetOverview)
	return app
}

func TestGetOverview(t *testing.T) {
	svc := &MockDashboardService{
		GetOverviewFunc: func(ctx context.Context, userID, role string) (*service.DashboardOverview, error) {
			assert.Equal(t, "user-1", userID)
			assert.Equal(t, "data", role)
			return &service.DashboardOverview{
				Skills:         []domain.Skill{{Name: "Python for Data Science", Role: domain.RoleData, PopularityScore: 94}},
				RecentAttempts: []domain.QuizAttempt{{ID: "a1", Skill: "Python", Accuracy: 80}},
			}, nil
		},
	}
	app := setupDashboardApp(t, svc)

	req := httptest.NewRequest("GET", "/api/dashboard/overview?role=data", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body dto.DashboardOverviewResponse
	decodeBody(t, resp.Body, &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body.Skills, 1)
	assert.Equal(t, 94, body.Skills[0].PopularityScore)
	require.Len(t, body.RecentQuizAttempts, 1)
	assert.Equal(t, "a1", body.RecentQuizAttempts[0].ID)
}

func TestGetOverview_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"unknown role", domain.NewInvalidInputError("Unknown role"), fiber.StatusBadRequest},
		{"load failure", domain.NewInternalError("Failed to load dashboard", nil), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockDashboardService{
				GetOverviewFunc: func(ctx context.Context, userID, role string) (*service.DashboardOverview, error) {
					return nil, tt.err
				},
			}
			app := setupDashboardApp(t, svc)

			req := httptest.NewRequest("GET", "/api/dashboard/overview", nil)
			req.Header.Set("Authorization", "Bearer good")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
