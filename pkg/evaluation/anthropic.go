package evaluation

import (
	"context"
	"errors"
	"sync"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sigmapilot/lens/pkg/config"
)

type anthropicAdapter struct {
	cfg config.ModelConfig

	once   sync.Once
	client anthropic.Client
}

func newAnthropicAdapter(cfg config.ModelConfig) *anthropicAdapter {
	return &anthropicAdapter{cfg: cfg}
}

func (a *anthropicAdapter) ModelName() string { return a.cfg.ModelName }

func (a *anthropicAdapter) getClient() anthropic.Client {
	a.once.Do(func() {
		a.client = anthropic.NewClient(option.WithAPIKey(a.cfg.APIKey))
	})
	return a.client
}

func (a *anthropicAdapter) Evaluate(ctx context.Context, prompt string) *ModelResponse {
	if !a.cfg.IsConfigured() {
		return unconfiguredResponse(a.cfg)
	}

	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	client := a.getClient()
	msg, err := client.Messages.New(callCtx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.cfg.ModelID),
		MaxTokens: int64(a.cfg.MaxTokens),
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(0.1),
	})
	latency := time.Since(start)
	if err != nil {
		statusCode := 0
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			statusCode = apiErr.StatusCode
		}
		return classifyError(a.cfg, err, statusCode, latency)
	}

	raw := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			raw += block.Text
		}
	}
	return finishResponse(a.cfg, raw,
		int(msg.Usage.InputTokens), int(msg.Usage.OutputTokens), latency)
}
