package resumegen_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"career-accelerator/internal/adapter/resumegen"
	"career-accelerator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeLLM struct {
	content string
	err     error
	opts    llms.CallOptions
	prompt  string
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, o := range options {
		o(&f.opts)
	}
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if tc, ok := messages[0].Parts[0].(llms.TextContent); ok {
			f.prompt = tc.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.content}}}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestLLMResumeWriter_PassesSamplingOptions(t *testing.T) {
	llm := &fakeLLM{content: "JANE DOE\nSoftware Engineer"}
	w := resumegen.NewLLMResumeWriter(llm)

	text, err := w.WriteResume(context.Background(), "write a resume")

	require.NoError(t, err)
	assert.Equal(t, "JANE DOE\nSoftware Engineer", text)
	assert.Equal(t, "write a resume", llm.prompt)
	assert.InDelta(t, 0.7, llm.opts.Temperature, 1e-9)
	assert.Equal(t, 900, llm.opts.MaxTokens)
}

func TestLLMResumeWriter_Errors(t *testing.T) {
	_, err := resumegen.NewLLMResumeWriter(&fakeLLM{err: errors.New("boom")}).WriteResume(context.Background(), "p")
	var upstream *domain.UpstreamError
	assert.ErrorAs(t, err, &upstream)

	_, err = resumegen.NewLLMResumeWriter(&fakeLLM{content: ""}).WriteResume(context.Background(), "p")
	assert.ErrorIs(t, err, domain.ErrEmptyUpstreamResponse)
}

func TestNewOpenAIResumeWriter_NoKey(t *testing.T) {
	w, err := resumegen.NewOpenAIResumeWriter(resumegen.Config{})
	assert.Nil(t, w)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestOpenAIResumeWriter_AgainstFakeServer(t *testing.T) {
	var got map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Generated resume"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 3, "total_tokens": 13}
		}`))
	}))
	defer server.Close()

	w, err := resumegen.NewOpenAIResumeWriter(resumegen.Config{
		APIKey:     "sk-test",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)

	text, err := w.WriteResume(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Generated resume", text)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.InDelta(t, 0.7, got["temperature"], 1e-9)
	assert.EqualValues(t, 900, got["max_completion_tokens"])
}
