package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"career-accelerator/internal/adapter/quizgen"
	"career-accelerator/internal/config"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/logger"
	"career-accelerator/internal/service"
	"career-accelerator/internal/validation"

	"go.uber.org/zap"
)

type options struct {
	Role       string
	Difficulty string
	Skill      string
	Count      int
}

func main() {
	var opts options
	flag.StringVar(&opts.Role, "role", "frontend", "career role")
	flag.StringVar(&opts.Difficulty, "difficulty", "easy", "easy, medium or hard")
	flag.StringVar(&opts.Skill, "skill", "", "skill (defaults per role)")
	flag.IntVar(&opts.Count, "count", 0, "number of questions (0 uses the configured default)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Gemini.Timeout*3)
	defer cancel()

	var source service.QuestionSource
	gemini, err := quizgen.NewGeminiQuestionSource(ctx, quizgen.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil && !errors.Is(err, domain.ErrNotConfigured) {
		logger.Get().Fatal("Failed to initialize question source", zap.Error(err))
	}
	if err == nil {
		source = gemini
	}

	quizService := service.NewQuizService(source, nil, cfg.Quiz)
	if err := run(ctx, quizService, validation.NewValidator(cfg.Quiz.MaxCount), opts, os.Stdout); err != nil {
		logger.Get().Fatal("Quiz generation failed", zap.Error(err))
	}
}

// run validates opts, generates questions and writes them to w as indented JSON.
func run(ctx context.Context, quizService service.QuizService, validator *validation.Validator, opts options, w io.Writer) error {
	limit := ""
	if opts.Count > 0 {
		limit = fmt.Sprint(opts.Count)
	}
	query, errs := validator.ValidateQuizQuery(opts.Role, opts.Difficulty, opts.Skill, limit)
	if len(errs) > 0 {
		return errs
	}

	logger.Get().Info("Generating questions",
		zap.String("role", string(query.Role)),
		zap.String("difficulty", string(query.Difficulty)),
		zap.String("skill", query.Skill),
		zap.Int("count", query.Limit),
	)
	result := quizService.GenerateQuizQuestions(ctx, query.Role, query.Difficulty, query.Skill, query.Limit)
	if len(result.Questions) == 0 {
		return fmt.Errorf("no questions generated: %s", result.Reason)
	}

	out := make([]dto.QuestionResponse, 0, len(result.Questions))
	for _, q := range result.Questions {
		out = append(out, dto.ToQuestionResponse(q))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
