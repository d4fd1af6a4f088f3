package quizgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"career-accelerator/internal/domain"
	"career-accelerator/internal/logger"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	// PreferredModel is tried first on every request.
	PreferredModel = "gemini-1.5-flash"

	apiVersionV1     = "v1"
	apiVersionV1Beta = "v1beta"

	modelNamePrefix = "models/"
	defaultTimeout  = 30 * time.Second
)

// Config configures GeminiQuestionSource. BaseURL and HTTPClient are optional.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GeminiQuestionSource fetches raw quiz text from the Gemini API. When the
// preferred model is unknown to the upstream it discovers a Gemini model and
// retries with it under v1, then v1beta. It holds no per-request state.
type GeminiQuestionSource struct {
	client  *genai.Client
	timeout time.Duration
}

// NewGeminiQuestionSource returns domain.ErrNotConfigured when cfg has no API key.
func NewGeminiQuestionSource(ctx context.Context, cfg Config) (*GeminiQuestionSource, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNotConfigured
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: apiVersionV1,
		},
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GeminiQuestionSource{client: client, timeout: timeout}, nil
}

// FetchRawCompletion returns the generated text for prompt. It makes at most
// three generation calls and one model listing.
func (s *GeminiQuestionSource) FetchRawCompletion(ctx context.Context, prompt string) (string, error) {
	log := logger.Get()

	text, err := s.generate(ctx, PreferredModel, apiVersionV1, prompt)
	if err == nil {
		return text, nil
	}
	var notFound *domain.ModelNotFoundError
	if !errors.As(err, &notFound) {
		return "", err
	}
	log.Warn("Preferred Gemini model not found, discovering an available model",
		zap.String("model", PreferredModel),
		zap.String("api_version", apiVersionV1),
	)

	model, err := s.discoverModel(ctx)
	if err != nil {
		return "", err
	}
	log.Info("Discovered Gemini model", zap.String("model", model))

	text, err = s.generate(ctx, model, apiVersionV1, prompt)
	if err == nil {
		return text, nil
	}
	if !errors.As(err, &notFound) {
		return "", err
	}
	log.Warn("Discovered model not found under v1, retrying with v1beta", zap.String("model", model))

	return s.generate(ctx, model, apiVersionV1Beta, prompt)
}

func (s *GeminiQuestionSource) generate(ctx context.Context, model, apiVersion, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(callCtx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		HTTPOptions: &genai.HTTPOptions{APIVersion: apiVersion},
	})
	if err != nil {
		return "", classifyError("generateContent", model, apiVersion, err)
	}
	return resp.Text(), nil
}

// discoverModel walks the v1 model listing and returns the first model whose
// name contains "gemini", without the "models/" prefix.
func (s *GeminiQuestionSource) discoverModel(ctx context.Context) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	page, err := s.client.Models.List(callCtx, &genai.ListModelsConfig{
		HTTPOptions: &genai.HTTPOptions{APIVersion: apiVersionV1},
	})
	listed := 0
	for {
		if err != nil {
			if errors.Is(err, genai.ErrPageDone) {
				return "", &domain.NoModelAvailableError{Listed: listed}
			}
			return "", classifyError("listModels", "", apiVersionV1, err)
		}
		for _, m := range page.Items {
			listed++
			if m == nil {
				continue
			}
			if strings.Contains(strings.ToLower(m.Name), "gemini") {
				return strings.TrimPrefix(m.Name, modelNamePrefix), nil
			}
		}
		page, err = page.Next(callCtx)
	}
}

// classifyError turns a 404 on generation into ModelNotFoundError and every
// other failure, including timeouts, into UpstreamError.
func classifyError(op, model, apiVersion string, err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusNotFound && model != "" {
			return &domain.ModelNotFoundError{Model: model, APIVersion: apiVersion, Err: err}
		}
		return &domain.UpstreamError{Op: op, StatusCode: apiErr.Code, Err: err}
	}
	return &domain.UpstreamError{Op: op, Err: err}
}
