package main

import (
	"time"

	"career-accelerator/internal/config"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/handler"
	"career-accelerator/internal/middleware"
	"career-accelerator/internal/service"
	"career-accelerator/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const bodyLimit = 2 * 1024 * 1024

// services is everything the HTTP layer needs. Cache may be nil.
type services struct {
	Quiz      service.QuizService
	Auth      service.AuthService
	User      service.UserService
	Dashboard service.DashboardService
	Resume    service.ResumeService
	Cache     domain.Cache
	DBReady   bool
}

func newApp(cfg *config.Config, svc services) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  30 * time.Second,
		BodyLimit:    bodyLimit,
		ETag:         false,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		MaxAge:           300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	var pinger handler.Pinger
	if svc.Cache != nil {
		pinger = svc.Cache
	}

	quizHandler := handler.NewQuizHandler(svc.Quiz, validation.NewValidator(cfg.Quiz.MaxCount))
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.User)
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard)
	resumeHandler := handler.NewResumeHandler(svc.Resume)
	healthHandler := handler.NewHealthHandler(pinger)
	validator := middleware.NewValidationMiddleware(cfg.Quiz.MaxCount)

	protected := middleware.Protected(svc.Auth)
	withDB := requireDatabase(svc.DBReady)

	api := app.Group("/api")
	api.Get("/health", healthHandler.Health)

	auth := api.Group("/auth", withDB)
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	quiz := api.Group("/quiz")
	quiz.Get("/questions", validator.ValidateQuizQuery(), quizHandler.GetQuestions)
	quiz.Post("/submit", protected, withDB, quizHandler.SubmitQuiz)
	quiz.Get("/history", protected, withDB, quizHandler.GetHistory)

	api.Get("/dashboard/overview", protected, withDB, dashboardHandler.GetOverview)
	api.Post("/resume/generate", protected, resumeHandler.Generate)
	api.Get("/users/me", protected, withDB, userHandler.GetMyProfile)

	return app
}

// requireDatabase answers 503 on routes that need the database when it could not be reached at startup.
func requireDatabase(ready bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ready {
			return domain.NewNotConfiguredError("Database is not available")
		}
		return c.Next()
	}
}
