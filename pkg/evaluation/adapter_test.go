package evaluation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/models"
)

func testModelConfig() config.ModelConfig {
	return config.ModelConfig{
		ModelName: "chatgpt",
		Provider:  "openai",
		APIKey:    "sk-test",
		ModelID:   "gpt-4o",
		Timeout:   5 * time.Second,
		MaxTokens: 1000,
	}
}

func TestNewAdapter(t *testing.T) {
	for provider, wantName := range map[string]string{
		"openai":    "chatgpt",
		"OpenAI":    "chatgpt",
		"deepseek":  "chatgpt",
		"anthropic": "chatgpt",
		"google":    "chatgpt",
	} {
		cfg := testModelConfig()
		cfg.Provider = provider
		adapter, err := NewAdapter(cfg)
		require.NoError(t, err, provider)
		assert.Equal(t, wantName, adapter.ModelName())
	}

	cfg := testModelConfig()
	cfg.Provider = "mistral"
	_, err := NewAdapter(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported provider "mistral"`)
}

func TestEvaluate_Unconfigured(t *testing.T) {
	cfg := testModelConfig()
	cfg.APIKey = ""
	adapter, err := NewAdapter(cfg)
	require.NoError(t, err)

	start := time.Now()
	resp := adapter.Evaluate(context.Background(), "prompt")
	elapsed := time.Since(start)

	assert.Equal(t, models.DecisionStatusInvalidConfig, resp.Status)
	assert.Equal(t, "MISSING_API_KEY", resp.ErrorCode)
	assert.Equal(t, "openai API key not configured", resp.ErrorMessage)
	assert.Zero(t, resp.LatencyMS)
	assert.Less(t, elapsed, 100*time.Millisecond, "must not touch the network")
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
		{"fence without newline", "```json{\"a\": 1}```", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestFinishResponse(t *testing.T) {
	cfg := testModelConfig()

	resp := finishResponse(cfg, "```json\n{\"decision\": \"HOLD\"}\n```", 120, 30, 250*time.Millisecond)
	assert.Equal(t, models.DecisionStatusOK, resp.Status)
	assert.Equal(t, "HOLD", resp.Parsed["decision"])
	assert.Equal(t, 250, resp.LatencyMS)
	assert.Equal(t, 120, resp.TokensIn)
	assert.Equal(t, 30, resp.TokensOut)

	resp = finishResponse(cfg, "I think you should enter long here.", 120, 30, 0)
	assert.Equal(t, models.DecisionStatusSchemaError, resp.Status)
	assert.Equal(t, "JSON_PARSE_ERROR", resp.ErrorCode)
	assert.Equal(t, "Failed to parse JSON from response", resp.ErrorMessage)
	assert.Equal(t, "I think you should enter long here.", resp.RawText)
	assert.Nil(t, resp.Parsed)
}

func TestClassifyError(t *testing.T) {
	cfg := testModelConfig()
	cfg.Timeout = 30 * time.Second

	tests := []struct {
		name       string
		err        error
		statusCode int
		wantStatus models.DecisionStatus
		wantCode   string
	}{
		{"deadline exceeded", context.DeadlineExceeded, 0, models.DecisionStatusTimeout, "TIMEOUT"},
		{"rate limited", errors.New("429 Too Many Requests"), 429, models.DecisionStatusRateLimited, "RATE_LIMITED"},
		{"auth failure", errors.New("401 Unauthorized"), 401, models.DecisionStatusAPIError, "HTTP_401"},
		{"server error", errors.New("500 Internal Server Error"), 500, models.DecisionStatusAPIError, "HTTP_500"},
		{"opaque failure", errors.New("boom"), 0, models.DecisionStatusAPIError, "API_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := classifyError(cfg, tt.err, tt.statusCode, time.Second)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
		})
	}
}

func TestClassifyError_TimeoutMessage(t *testing.T) {
	cfg := testModelConfig()
	cfg.Timeout = 30 * time.Second

	resp := classifyError(cfg, context.DeadlineExceeded, 0, 30*time.Second)
	assert.Equal(t, "Request timed out after 30000ms", resp.ErrorMessage)
}

// chatStub is a minimal OpenAI-compatible completions endpoint.
func chatStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func chatCompletion(content string, tokensIn, tokensOut int) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-4o",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": %d, "completion_tokens": %d, "total_tokens": %d}
	}`, content, tokensIn, tokensOut, tokensIn+tokensOut)
}

func TestOpenAIAdapter_Success(t *testing.T) {
	srv := chatStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion(`{"decision": "HOLD", "confidence": 0.6, "reasons": ["choppy"]}`, 140, 25))
	})

	adapter := newOpenAIAdapter(testModelConfig(), srv.URL)
	resp := adapter.Evaluate(context.Background(), "evaluate this")

	require.Equal(t, models.DecisionStatusOK, resp.Status)
	assert.Equal(t, "HOLD", resp.Parsed["decision"])
	assert.Equal(t, 140, resp.TokensIn)
	assert.Equal(t, 25, resp.TokensOut)
	assert.Equal(t, "gpt-4o", resp.ModelVersion)
}

func TestOpenAIAdapter_FencedOutput(t *testing.T) {
	srv := chatStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion("```json\n{\"decision\": \"IGNORE\", \"confidence\": 0.3, \"reasons\": [\"weak\"]}\n```", 10, 10))
	})

	adapter := newOpenAIAdapter(testModelConfig(), srv.URL)
	resp := adapter.Evaluate(context.Background(), "evaluate this")

	require.Equal(t, models.DecisionStatusOK, resp.Status)
	assert.Equal(t, "IGNORE", resp.Parsed["decision"])
}

func TestOpenAIAdapter_NonJSONOutput(t *testing.T) {
	srv := chatStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletion("The market looks weak, I would stay out.", 10, 10))
	})

	adapter := newOpenAIAdapter(testModelConfig(), srv.URL)
	resp := adapter.Evaluate(context.Background(), "evaluate this")

	assert.Equal(t, models.DecisionStatusSchemaError, resp.Status)
	assert.Equal(t, "JSON_PARSE_ERROR", resp.ErrorCode)
	assert.Equal(t, "The market looks weak, I would stay out.", resp.RawText)
}

func TestOpenAIAdapter_AuthError(t *testing.T) {
	srv := chatStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`)
	})

	adapter := newOpenAIAdapter(testModelConfig(), srv.URL)
	resp := adapter.Evaluate(context.Background(), "evaluate this")

	assert.Equal(t, models.DecisionStatusAPIError, resp.Status)
	assert.Equal(t, "HTTP_401", resp.ErrorCode)
}

func TestOpenAIAdapter_RateLimited(t *testing.T) {
	srv := chatStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error": {"message": "Rate limit reached", "type": "rate_limit_error"}}`)
	})

	adapter := newOpenAIAdapter(testModelConfig(), srv.URL)
	resp := adapter.Evaluate(context.Background(), "evaluate this")

	assert.Equal(t, models.DecisionStatusRateLimited, resp.Status)
	assert.Equal(t, "RATE_LIMITED", resp.ErrorCode)
}

func TestOpenAIAdapter_Timeout(t *testing.T) {
	srv := chatStub(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	cfg := testModelConfig()
	cfg.Timeout = 100 * time.Millisecond
	adapter := newOpenAIAdapter(cfg, srv.URL)
	resp := adapter.Evaluate(context.Background(), "evaluate this")

	assert.Equal(t, models.DecisionStatusTimeout, resp.Status)
	assert.Equal(t, "TIMEOUT", resp.ErrorCode)
	assert.Equal(t, "Request timed out after 100ms", resp.ErrorMessage)
}

func TestProbeAPIKey(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		srv := chatStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, chatCompletion(`{"status": "ok"}`, 5, 3))
		})
		cfg := testModelConfig()
		adapter := newOpenAIAdapter(cfg, srv.URL)
		resp := adapter.Evaluate(context.Background(), probePrompt)
		assert.Equal(t, models.DecisionStatusOK, resp.Status)
	})

	t.Run("unsupported provider maps to error", func(t *testing.T) {
		cfg := testModelConfig()
		cfg.Provider = "mistral"
		assert.Equal(t, "error", ProbeAPIKey(context.Background(), cfg))
	})

	t.Run("missing key maps to error", func(t *testing.T) {
		cfg := testModelConfig()
		cfg.APIKey = ""
		assert.Equal(t, "error", ProbeAPIKey(context.Background(), cfg))
	})
}
