// Package evaluation runs enriched signals through the configured AI models
// in parallel and persists one decision row per attempt.
package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/models"
)

// systemPrompt is sent as the system instruction to every provider. JSON-only
// output keeps the response parseable without provider-specific modes.
const systemPrompt = "You are a trading signal evaluation assistant. Respond only with valid JSON. No markdown, no explanations, just the JSON object."

// ModelResponse is the uniform outcome of one adapter call, success or not.
// Errors travel inside the response so parallel evaluation never cancels
// sibling models.
type ModelResponse struct {
	ModelName    string
	ModelVersion string
	Status       models.DecisionStatus
	LatencyMS    int
	RawText      string
	Parsed       map[string]interface{}
	TokensIn     int
	TokensOut    int
	ErrorCode    string
	ErrorMessage string
}

// IsSuccess reports whether the adapter produced a parsed response.
func (r *ModelResponse) IsSuccess() bool {
	return r.Status == models.DecisionStatusOK
}

// Adapter is the uniform contract every provider implements. Evaluate never
// returns an error: failures are encoded in the response status.
type Adapter interface {
	ModelName() string
	Evaluate(ctx context.Context, prompt string) *ModelResponse
}

// NewAdapter constructs the provider-specific adapter for a config. Unknown
// providers fail at construction, not at evaluation time.
func NewAdapter(cfg config.ModelConfig) (Adapter, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIAdapter(cfg, ""), nil
	case "deepseek":
		return newOpenAIAdapter(cfg, deepseekBaseURL), nil
	case "anthropic":
		return newAnthropicAdapter(cfg), nil
	case "google":
		return newGeminiAdapter(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q: supported: openai, google, anthropic, deepseek", cfg.Provider)
	}
}

// unconfiguredResponse is returned without any network call when the adapter
// lacks an API key or model id.
func unconfiguredResponse(cfg config.ModelConfig) *ModelResponse {
	return &ModelResponse{
		ModelName:    cfg.ModelName,
		ModelVersion: cfg.ModelID,
		Status:       models.DecisionStatusInvalidConfig,
		ErrorCode:    "MISSING_API_KEY",
		ErrorMessage: fmt.Sprintf("%s API key not configured", cfg.Provider),
	}
}

func errorResponse(cfg config.ModelConfig, status models.DecisionStatus, code, message string, latency time.Duration) *ModelResponse {
	return &ModelResponse{
		ModelName:    cfg.ModelName,
		ModelVersion: cfg.ModelID,
		Status:       status,
		LatencyMS:    int(latency.Milliseconds()),
		ErrorCode:    code,
		ErrorMessage: message,
	}
}

func timeoutResponse(cfg config.ModelConfig, latency time.Duration) *ModelResponse {
	return errorResponse(cfg, models.DecisionStatusTimeout, "TIMEOUT",
		fmt.Sprintf("Request timed out after %dms", cfg.Timeout.Milliseconds()), latency)
}

// finishResponse parses raw model text into the success or schema_error
// outcome shared by all adapters.
func finishResponse(cfg config.ModelConfig, raw string, tokensIn, tokensOut int, latency time.Duration) *ModelResponse {
	resp := &ModelResponse{
		ModelName:    cfg.ModelName,
		ModelVersion: cfg.ModelID,
		LatencyMS:    int(latency.Milliseconds()),
		RawText:      raw,
		TokensIn:     tokensIn,
		TokensOut:    tokensOut,
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		resp.Status = models.DecisionStatusSchemaError
		resp.ErrorCode = "JSON_PARSE_ERROR"
		resp.ErrorMessage = "Failed to parse JSON from response"
		return resp
	}
	resp.Status = models.DecisionStatusOK
	resp.Parsed = parsed
	return resp
}

// classifyError maps a transport or API failure to a response status.
// statusCode is the provider HTTP status when the SDK exposed one, else 0.
func classifyError(cfg config.ModelConfig, err error, statusCode int, latency time.Duration) *ModelResponse {
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutResponse(cfg, latency)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return timeoutResponse(cfg, latency)
	}

	switch {
	case statusCode == 429:
		return errorResponse(cfg, models.DecisionStatusRateLimited, "RATE_LIMITED", err.Error(), latency)
	case statusCode > 0:
		return errorResponse(cfg, models.DecisionStatusAPIError,
			fmt.Sprintf("HTTP_%d", statusCode), err.Error(), latency)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) {
		return errorResponse(cfg, models.DecisionStatusNetworkError, "CONNECTION_ERROR", err.Error(), latency)
	}
	return errorResponse(cfg, models.DecisionStatusAPIError, "API_ERROR", err.Error(), latency)
}

// stripFences removes a surrounding ```json / ``` markdown fence, which some
// models emit despite the JSON-only instruction.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
