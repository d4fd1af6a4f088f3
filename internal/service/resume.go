package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-accelerator/internal/cache"
	"career-accelerator/internal/domain"
	"career-accelerator/internal/dto"
	"career-accelerator/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultResumeTemplate = "classic"
	defaultResumeTTL      = 24 * time.Hour

	resumeGenerationTimeout = 90 * time.Second
)

// ResumeWriter turns a résumé prompt into plain text.
type ResumeWriter interface {
	WriteResume(ctx context.Context, prompt string) (string, error)
}

// ResumeService defines the interface for résumé generation
type ResumeService interface {
	GenerateResume(ctx context.Context, req *dto.GenerateResumeRequest) (*dto.GenerateResumeResponse, error)
}

type resumeService struct {
	writer  ResumeWriter
	cache   domain.Cache
	ttl     time.Duration
	timeout time.Duration
	sfGroup singleflight.Group
}

// NewResumeService creates a résumé service. A nil writer makes it return a
// placeholder résumé; a nil cache disables result caching.
func NewResumeService(writer ResumeWriter, c domain.Cache, ttl time.Duration) ResumeService {
	if ttl <= 0 {
		ttl = defaultResumeTTL
	}
	return &resumeService{writer: writer, cache: c, ttl: ttl, timeout: resumeGenerationTimeout}
}

func (s *resumeService) GenerateResume(ctx context.Context, req *dto.GenerateResumeRequest) (*dto.GenerateResumeResponse, error) {
	log := logger.Get()
	template := strings.TrimSpace(req.Template)
	if template == "" {
		template = DefaultResumeTemplate
	}

	if s.writer == nil {
		return &dto.GenerateResumeResponse{Content: mockResume(req), Template: template}, nil
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate resume", err)
	}
	cacheKey := cache.GenerateCacheKey("resume", "text", cache.ContentHash(payload), template)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		switch {
		case err == nil:
			log.Debug("Resume cache hit", zap.String("cache_key", cacheKey))
			return &dto.GenerateResumeResponse{Content: cached, Template: template}, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			log.Warn("Failed to read resume cache", zap.String("cache_key", cacheKey), zap.Error(err))
		}
	}

	// The shared call outlives any single caller's cancellation.
	res, err, shared := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		text, err := s.writer.WriteResume(callCtx, buildResumePrompt(req, template))
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(callCtx, cacheKey, text, s.ttl); err != nil {
				log.Warn("Failed to cache resume", zap.String("cache_key", cacheKey), zap.Error(err))
			}
		}
		return text, nil
	})
	if err != nil {
		log.Error("Resume generation failed", zap.Error(err))
		return nil, domain.NewLLMServiceError("Failed to generate resume", err)
	}
	text, ok := res.(string)
	if !ok {
		return nil, domain.NewInternalError("Failed to generate resume", fmt.Errorf("unexpected type from singleflight.Do: %T", res))
	}
	if shared {
		log.Debug("Resume generation shared with a concurrent request", zap.String("cache_key", cacheKey))
	}
	return &dto.GenerateResumeResponse{Content: text, Template: template}, nil
}

func mockResume(req *dto.GenerateResumeRequest) string {
	name := req.Personal.Name
	if name == "" {
		name = "Your Name"
	}
	headline := req.Personal.Headline
	if headline == "" {
		headline = "Desired Role"
	}
	experience := make([]string, 0, len(req.Experience))
	for _, e := range req.Experience {
		experience = append(experience, "- "+e)
	}

	var b strings.Builder
	b.WriteString("MOCK RESUME (no OPENAI_API_KEY set)\n\n")
	fmt.Fprintf(&b, "Name: %s\nRole: %s\n\n", name, headline)
	fmt.Fprintf(&b, "Skills:\n%s\n\n", strings.Join(req.Skills, ", "))
	fmt.Fprintf(&b, "Experience:\n%s", strings.Join(experience, "\n"))
	return b.String()
}

func buildResumePrompt(req *dto.GenerateResumeRequest, template string) string {
	section := func(v interface{}) string {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "null"
		}
		return string(out)
	}
	list := func(items []string) []string {
		if items == nil {
			return []string{}
		}
		return items
	}

	var b strings.Builder
	b.WriteString("\nYou are an expert ATS-optimized resume writer.\n")
	b.WriteString("Generate a concise, modern, ATS-friendly resume in plain text using the following data.\n\n")
	fmt.Fprintf(&b, "Personal:\n%s\n\n", section(req.Personal))
	fmt.Fprintf(&b, "Skills:\n%s\n\n", section(list(req.Skills)))
	fmt.Fprintf(&b, "Projects:\n%s\n\n", section(list(req.Projects)))
	fmt.Fprintf(&b, "Experience:\n%s\n\n", section(list(req.Experience)))
	fmt.Fprintf(&b, "Education:\n%s\n\n", section(list(req.Education)))
	fmt.Fprintf(&b, "Template style: %s\n\n", template)
	b.WriteString("Return ONLY the resume body, no explanations.\n")
	return b.String()
}
