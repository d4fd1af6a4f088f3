// @title AI Career Accelerator API
// @version 1.0
// @description Role-based quiz generation, skill tracking and résumé drafting.
// @host localhost:5000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "career-accelerator/cmd/api/docs"
	"career-accelerator/internal/adapter"
	"career-accelerator/internal/adapter/quizgen"
	"career-accelerator/internal/adapter/resumegen"
	"career-accelerator/internal/cache"
	"career-accelerator/internal/config"
	"career-accelerator/internal/database"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/logger"
	"career-accelerator/internal/repository"
	"career-accelerator/internal/service"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// The API still starts without a database; routes that need it answer 503.
	var db *sqlx.DB
	if cfg.DB.Host != "" {
		db, err = database.NewSQLXOracleDB(ctx, cfg)
		if err != nil {
			appLogger.Error("Failed to connect to database", zap.Error(err))
			db = nil
		} else {
			applied, err := database.NewMigrator(db).Up(ctx)
			if err != nil {
				appLogger.Fatal("Failed to apply migrations", zap.Error(err))
			}
			appLogger.Info("Migrations applied", zap.Int("count", applied))
			defer db.Close()
		}
	} else {
		appLogger.Warn("Database host is not configured. Running without persistence.")
	}

	userRepository := repository.NewSQLXUserRepository(db)
	attemptRepository := repository.NewSQLXQuizAttemptRepository(db)
	skillRepository := repository.NewSQLXSkillRepository(db)

	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable. Running without cache.", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Redis cache initialized")
		}
	}

	var questionSource service.QuestionSource
	gemini, err := quizgen.NewGeminiQuestionSource(ctx, quizgen.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	})
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		appLogger.Warn("GEMINI_API_KEY not set. Quiz generation is disabled.")
	case err != nil:
		appLogger.Fatal("Failed to create Gemini question source", zap.Error(err))
	default:
		questionSource = gemini
	}

	var resumeWriter service.ResumeWriter
	writer, err := resumegen.NewOpenAIResumeWriter(resumegen.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		appLogger.Warn("OPENAI_API_KEY not set. Résumés will be placeholders.")
	case err != nil:
		appLogger.Fatal("Failed to create résumé writer", zap.Error(err))
	default:
		resumeWriter = writer
	}

	authService, err := service.NewAuthService(userRepository, cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	app := newApp(cfg, services{
		Quiz:      service.NewQuizService(questionSource, attemptRepository, cfg.Quiz),
		Auth:      authService,
		User:      service.NewUserService(userRepository, attemptRepository),
		Dashboard: service.NewDashboardService(skillRepository, attemptRepository),
		Resume:    service.NewResumeService(resumeWriter, cacheAdapter, cfg.CacheTTLs.Resume),
		Cache:     cacheAdapter,
		DBReady:   db != nil,
	})

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
