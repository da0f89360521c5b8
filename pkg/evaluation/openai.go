package evaluation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/sigmapilot/lens/pkg/config"
)

// deepseekBaseURL routes the OpenAI-compatible adapter at DeepSeek's API.
const deepseekBaseURL = "https://api.deepseek.com"

// openAIAdapter serves both the openai and deepseek providers: DeepSeek
// speaks the OpenAI chat-completions dialect behind a different base URL.
type openAIAdapter struct {
	cfg     config.ModelConfig
	baseURL string

	once   sync.Once
	client openai.Client
}

func newOpenAIAdapter(cfg config.ModelConfig, baseURL string) *openAIAdapter {
	return &openAIAdapter{cfg: cfg, baseURL: baseURL}
}

func (a *openAIAdapter) ModelName() string { return a.cfg.ModelName }

func (a *openAIAdapter) getClient() openai.Client {
	a.once.Do(func() {
		opts := []option.RequestOption{option.WithAPIKey(a.cfg.APIKey)}
		if a.baseURL != "" {
			opts = append(opts, option.WithBaseURL(a.baseURL))
		}
		a.client = openai.NewClient(opts...)
	})
	return a.client
}

func (a *openAIAdapter) Evaluate(ctx context.Context, prompt string) *ModelResponse {
	if !a.cfg.IsConfigured() {
		return unconfiguredResponse(a.cfg)
	}

	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	client := a.getClient()
	resp, err := client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(a.cfg.ModelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
		MaxTokens:   openai.Int(int64(a.cfg.MaxTokens)),
		Temperature: openai.Float(0.1),
	})
	latency := time.Since(start)
	if err != nil {
		statusCode := 0
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			statusCode = apiErr.StatusCode
		}
		return classifyError(a.cfg, err, statusCode, latency)
	}

	raw := ""
	if len(resp.Choices) > 0 {
		raw = resp.Choices[0].Message.Content
	}
	return finishResponse(a.cfg, raw,
		int(resp.Usage.PromptTokens), int(resp.Usage.CompletionTokens), latency)
}
