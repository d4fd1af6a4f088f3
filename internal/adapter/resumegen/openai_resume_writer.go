package resumegen

import (
	"context"
	"fmt"
	"net/http"

	"career-accelerator/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	DefaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.7
	defaultMaxTokens   = 900
)

// Config configures the OpenAI backed writer. BaseURL and HTTPClient are optional.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// LLMResumeWriter drafts résumé text with any langchaingo model.
type LLMResumeWriter struct {
	llm         llms.Model
	temperature float64
	maxTokens   int
}

// NewOpenAIResumeWriter returns domain.ErrNotConfigured when cfg has no API key.
func NewOpenAIResumeWriter(cfg Config) (*LLMResumeWriter, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNotConfigured
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, openai.WithHTTPClient(cfg.HTTPClient))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create OpenAI client: %w", err)
	}
	return NewLLMResumeWriter(llm), nil
}

func NewLLMResumeWriter(llm llms.Model) *LLMResumeWriter {
	return &LLMResumeWriter{llm: llm, temperature: defaultTemperature, maxTokens: defaultMaxTokens}
}

// WriteResume sends prompt as a single user message and returns the completion.
func (w *LLMResumeWriter) WriteResume(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, w.llm, prompt,
		llms.WithTemperature(w.temperature),
		llms.WithMaxTokens(w.maxTokens),
	)
	if err != nil {
		return "", &domain.UpstreamError{Op: "resume completion", Err: err}
	}
	if text == "" {
		return "", fmt.Errorf("resume completion: %w", domain.ErrEmptyUpstreamResponse)
	}
	return text, nil
}
