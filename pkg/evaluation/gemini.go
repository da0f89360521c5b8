package evaluation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/sigmapilot/lens/pkg/config"
)

type geminiAdapter struct {
	cfg config.ModelConfig

	once    sync.Once
	model   *genai.GenerativeModel
	initErr error
}

func newGeminiAdapter(cfg config.ModelConfig) *geminiAdapter {
	return &geminiAdapter{cfg: cfg}
}

func (a *geminiAdapter) ModelName() string { return a.cfg.ModelName }

func (a *geminiAdapter) getModel(ctx context.Context) (*genai.GenerativeModel, error) {
	a.once.Do(func() {
		client, err := genai.NewClient(ctx, option.WithAPIKey(a.cfg.APIKey))
		if err != nil {
			a.initErr = err
			return
		}
		model := client.GenerativeModel(a.cfg.ModelID)
		model.SetTemperature(0.1)
		model.SetMaxOutputTokens(int32(a.cfg.MaxTokens))
		model.ResponseMIMEType = "application/json"
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
		a.model = model
	})
	return a.model, a.initErr
}

func (a *geminiAdapter) Evaluate(ctx context.Context, prompt string) *ModelResponse {
	if !a.cfg.IsConfigured() {
		return unconfiguredResponse(a.cfg)
	}

	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	model, err := a.getModel(callCtx)
	if err != nil {
		return classifyError(a.cfg, err, 0, time.Since(start))
	}

	resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
	latency := time.Since(start)
	if err != nil {
		statusCode := 0
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			statusCode = apiErr.Code
		}
		return classifyError(a.cfg, err, statusCode, latency)
	}

	raw := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if text, ok := part.(genai.Text); ok {
				raw += string(text)
			}
		}
	}

	tokensIn, tokensOut := 0, 0
	if resp.UsageMetadata != nil {
		tokensIn = int(resp.UsageMetadata.PromptTokenCount)
		tokensOut = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return finishResponse(a.cfg, raw, tokensIn, tokensOut, latency)
}
