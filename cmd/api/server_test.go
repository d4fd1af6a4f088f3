package main

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"career-accelerator/internal/config"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/middleware"
	"career-accelerator/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var domainUser = domain.User{ID: "user-1", Email: "ada@example.com"}

// newOfflineApp wires real services with no database, no cache and no upstream keys.
func newOfflineApp(t *testing.T) (*fiber.App, service.AuthService) {
	t.Helper()
	cfg := &config.Config{
		JWT:  config.JWTConfig{Secret: "test-secret"},
		Quiz: config.QuizConfig{DefaultCount: 10, MaxCount: 50},
	}
	authService, err := service.NewAuthService(nil, cfg.JWT)
	require.NoError(t, err)

	return newApp(cfg, services{
		Quiz:      service.NewQuizService(nil, nil, cfg.Quiz),
		Auth:      authService,
		User:      service.NewUserService(nil, nil),
		Dashboard: service.NewDashboardService(nil, nil),
		Resume:    service.NewResumeService(nil, nil, 0),
		DBReady:   false,
	}), authService
}

func TestHealthRoute(t *testing.T) {
	app, _ := newOfflineApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)

	var body dto.HealthResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body.Status)
}

func TestQuestionsRoute_NotConfigured(t *testing.T) {
	app, _ := newOfflineApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quiz/questions?role=frontend&difficulty=easy", nil))
	require.NoError(t, err)

	var body dto.GenerationFailureResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "Gemini API not configured", body.Message)
	assert.Equal(t, service.ReasonNotConfigured, body.Error)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	app, _ := newOfflineApp(t)

	for _, route := range []struct{ method, path string }{
		{"POST", "/api/quiz/submit"},
		{"GET", "/api/quiz/history"},
		{"GET", "/api/dashboard/overview"},
		{"POST", "/api/resume/generate"},
		{"GET", "/api/users/me"},
	} {
		resp, err := app.Test(httptest.NewRequest(route.method, route.path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, route.path)
	}
}

func TestDatabaseRoutes_UnavailableWithoutDB(t *testing.T) {
	app, authService := newOfflineApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	token, err := authService.CreateJWT(&domainUser)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/api/quiz/history", nil)
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerSchema+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestResumeRoute_MockWithoutKey(t *testing.T) {
	app, authService := newOfflineApp(t)
	token, err := authService.CreateJWT(&domainUser)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/resume/generate", strings.NewReader(`{"personal":{"name":"Ada"},"skills":["Go"]}`))
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerSchema+token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body dto.GenerateResumeResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body.Content, "MOCK RESUME")
	assert.Contains(t, body.Content, "Name: Ada")
}

func TestCORS_EchoesOriginWithCredentials(t *testing.T) {
	app, _ := newOfflineApp(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
