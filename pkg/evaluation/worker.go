package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/logging"
	"github.com/sigmapilot/lens/pkg/metrics"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/publisher"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/registry"
	"github.com/sigmapilot/lens/pkg/services"
)

// Broadcaster pushes a published decision to subscribers. Satisfied by
// *publisher.Hub.
type Broadcaster interface {
	BroadcastDecision(frame publisher.DecisionFrame)
}

// Worker evaluates enriched signals with every enabled model in parallel.
// One decision row is persisted per model attempt, including failures; the
// message succeeds when at least one model produced a valid decision.
type Worker struct {
	llm       *registry.LLMRegistry
	prompts   *registry.PromptRegistry
	decisions *services.DecisionService
	events    *services.EventService
	hub       Broadcaster
	metrics   *metrics.Metrics

	mode           string
	fallbackModels []string

	mu       sync.Mutex
	adapters map[string]Adapter
}

// NewWorker wires an evaluation worker.
func NewWorker(
	llm *registry.LLMRegistry,
	prompts *registry.PromptRegistry,
	decisions *services.DecisionService,
	events *services.EventService,
	hub Broadcaster,
	m *metrics.Metrics,
	cfg *config.Config,
) *Worker {
	return &Worker{
		llm:            llm,
		prompts:        prompts,
		decisions:      decisions,
		events:         events,
		hub:            hub,
		metrics:        m,
		mode:           cfg.EvaluationMode,
		fallbackModels: cfg.AIModels,
		adapters:       make(map[string]Adapter),
	}
}

// ConsumerConfig returns the stream binding for this worker.
func ConsumerConfig(cfg *config.Config) queue.ConsumerConfig {
	return queue.ConsumerConfig{
		Stream:    queue.StreamEnriched,
		Group:     queue.GroupEvaluation,
		Kind:      "evaluation",
		Stage:     models.StageEvaluate,
		BatchSize: int64(cfg.ConsumerBatchSize),
		Block:     cfg.ConsumerBlock,
		RetryMax:  cfg.RetryMax,
		BaseDelay: cfg.RetryBaseDelay,
		MaxDelay:  cfg.RetryMaxDelay,
	}
}

// Handle implements queue.Handler for the enriched stream.
func (w *Worker) Handle(ctx context.Context, msg *queue.Message) error {
	start := time.Now()

	var payload models.EnrichedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return &queue.NonRetryableError{ReasonCode: "invalid_payload", Err: err}
	}
	eventID := payload.EventID
	if eventID == "" {
		eventID = msg.EventID
	}

	logging.LogStage(slog.Default(), "EVALUATION", eventID, "started")

	modelNames, err := w.llm.EnabledModels(ctx)
	if err != nil {
		return err
	}
	if len(modelNames) == 0 {
		modelNames = w.fallbackModels
	}

	type result struct {
		model    string
		decision map[string]interface{}
	}
	var (
		resMu     sync.Mutex
		succeeded []result
	)

	// One goroutine per model; a model failure is a value, not a
	// cancellation, so every error branch returns nil.
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range modelNames {
		g.Go(func() error {
			decision := w.evaluateModel(gctx, eventID, &payload, name)
			if decision != nil {
				resMu.Lock()
				succeeded = append(succeeded, result{model: name, decision: decision})
				resMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(succeeded) == 0 {
		logging.LogStage(slog.Default(), "EVALUATION", eventID, "failed")
		return fmt.Errorf("no decisions generated for event %s", eventID)
	}

	okModels := make([]string, len(succeeded))
	for i, r := range succeeded {
		okModels[i] = r.model
	}

	if err := w.events.MarkEvaluated(ctx, eventID); err != nil {
		return err
	}
	if err := w.events.AddTimeline(ctx, eventID, models.TimelineEvaluated, map[string]interface{}{
		"models":      okModels,
		"duration_ms": time.Since(start).Milliseconds(),
		"mode":        w.mode,
	}); err != nil {
		slog.Error("Failed to record EVALUATED timeline", "event_id", eventID, "error", err)
	}

	publishedAt := time.Now().UTC()
	for _, r := range succeeded {
		if w.hub != nil {
			w.hub.BroadcastDecision(publisher.DecisionFrame{
				EventID:     eventID,
				Symbol:      payload.Symbol,
				EventType:   string(payload.EventType),
				Model:       r.model,
				Decision:    r.decision,
				PublishedAt: publishedAt,
			})
		}
		if w.metrics != nil {
			w.metrics.SignalsPublished.WithLabelValues(r.model).Inc()
		}
	}

	if err := w.events.MarkPublished(ctx, eventID); err != nil {
		return err
	}
	if err := w.events.AddTimeline(ctx, eventID, models.TimelinePublished,
		map[string]interface{}{"models": okModels}); err != nil {
		slog.Error("Failed to record PUBLISHED timeline", "event_id", eventID, "error", err)
	}

	if w.metrics != nil {
		if evt, err := w.events.Get(ctx, eventID); err == nil {
			w.metrics.EndToEndDuration.Observe(publishedAt.Sub(evt.ReceivedAt).Seconds())
		}
	}

	logging.LogStage(slog.Default(), "EVALUATION", eventID, "completed", "models", okModels)
	return nil
}

// evaluateModel runs one model against the payload and persists its row.
// Returns the normalized decision payload, or nil when the model produced
// nothing publishable.
func (w *Worker) evaluateModel(ctx context.Context, eventID string, payload *models.EnrichedPayload, modelName string) map[string]interface{} {
	start := time.Now()

	if w.mode == config.EvaluationModeStub {
		return w.evaluateStub(ctx, eventID, payload, modelName, start)
	}

	adapter := w.getAdapter(ctx, modelName)
	if adapter == nil {
		slog.Warn("No adapter available, skipping model", "model", modelName, "event_id", eventID)
		w.saveErrorDecision(ctx, eventID, modelName,
			&ModelResponse{ModelName: modelName, Status: models.DecisionStatusInvalidConfig}, nil,
			string(models.DecisionStatusInvalidConfig), "ADAPTER_UNAVAILABLE",
			fmt.Sprintf("no usable adapter for model %s", modelName))
		w.recordModelError(modelName, "adapter_unavailable")
		return nil
	}

	payloadMap, constraintsMap, err := renderInputs(payload)
	if err != nil {
		slog.Error("Failed to encode payload for prompt", "model", modelName, "event_id", eventID, "error", err)
		w.saveErrorDecision(ctx, eventID, modelName,
			&ModelResponse{ModelName: modelName, Status: models.DecisionStatusSchemaError}, nil,
			string(models.DecisionStatusSchemaError), "PAYLOAD_ENCODE_ERROR", err.Error())
		w.recordModelError(modelName, "payload_encode_error")
		return nil
	}
	prompt, err := w.prompts.RenderForModel(ctx, modelName, payloadMap, constraintsMap)
	if err != nil {
		slog.Error("Prompt rendering failed", "model", modelName, "event_id", eventID, "error", err)
		w.saveErrorDecision(ctx, eventID, modelName,
			&ModelResponse{ModelName: modelName, Status: models.DecisionStatusInvalidConfig}, nil,
			string(models.DecisionStatusInvalidConfig), "PROMPT_ERROR", err.Error())
		w.recordModelError(modelName, "prompt_error")
		return nil
	}

	resp := adapter.Evaluate(ctx, prompt.Text)

	if !resp.IsSuccess() {
		slog.Warn("Model returned error",
			"model", modelName, "event_id", eventID,
			"status", resp.Status, "error", resp.ErrorMessage)
		w.saveErrorDecision(ctx, eventID, modelName, resp, prompt, string(resp.Status), resp.ErrorCode, resp.ErrorMessage)
		w.recordModelError(modelName, string(resp.Status))
		return nil
	}

	valid, errs := ValidateDecisionOutput(resp.Parsed)
	if !valid {
		slog.Warn("Model output failed validation",
			"model", modelName, "event_id", eventID, "errors", errs)
		schemaResp := *resp
		schemaResp.Status = models.DecisionStatusSchemaError
		w.saveErrorDecision(ctx, eventID, modelName, &schemaResp, prompt,
			string(models.DecisionStatusSchemaError), "VALIDATION_FAILED", joinErrors(errs))
		if w.metrics != nil {
			w.metrics.ModelInvalidOut.WithLabelValues(modelName).Inc()
		}
		return nil
	}

	decision := NormalizeDecisionOutput(resp.Parsed)

	rec := &services.DecisionRecord{
		EventID:       eventID,
		ModelName:     modelName,
		ModelVersion:  resp.ModelVersion,
		PromptVersion: prompt.Version,
		PromptHash:    prompt.Hash,
		Decision:      decisionString(decision),
		Confidence:    decisionConfidence(decision),
		EntryPlan:     asObject(decision["entry_plan"]),
		RiskPlan:      asObject(decision["risk_plan"]),
		SizePct:       decisionSizePct(decision),
		Reasons:       decisionReasons(decision),
		Payload:       decision,
		LatencyMS:     resp.LatencyMS,
		TokensIn:      resp.TokensIn,
		TokensOut:     resp.TokensOut,
		Status:        string(models.DecisionStatusOK),
	}
	if _, err := w.decisions.Create(ctx, rec); err != nil {
		slog.Error("Failed to persist decision", "model", modelName, "event_id", eventID, "error", err)
		return nil
	}

	w.recordEvaluation(modelName, payload.Symbol, rec.Decision, time.Since(start), resp.TokensIn, resp.TokensOut)
	slog.Info("Model decision",
		"model", modelName, "event_id", eventID,
		"decision", rec.Decision, "confidence", rec.Confidence, "latency_ms", resp.LatencyMS)
	return decision
}

// evaluateStub persists the deterministic offline decision for one model.
func (w *Worker) evaluateStub(ctx context.Context, eventID string, payload *models.EnrichedPayload, modelName string, start time.Time) map[string]interface{} {
	decision := StubDecision(modelName, payload)

	rec := &services.DecisionRecord{
		EventID:       eventID,
		ModelName:     modelName,
		ModelVersion:  stubModelVersion,
		PromptVersion: stubPromptVersion,
		PromptHash:    stubPromptHash,
		Decision:      decisionString(decision),
		Confidence:    decisionConfidence(decision),
		EntryPlan:     asObject(decision["entry_plan"]),
		RiskPlan:      asObject(decision["risk_plan"]),
		SizePct:       decisionSizePct(decision),
		Reasons:       decisionReasons(decision),
		Payload:       decision,
		LatencyMS:     int(time.Since(start).Milliseconds()),
		Status:        string(models.DecisionStatusOK),
	}
	if _, err := w.decisions.Create(ctx, rec); err != nil {
		slog.Error("Failed to persist stub decision", "model", modelName, "event_id", eventID, "error", err)
		return nil
	}

	w.recordEvaluation(modelName, payload.Symbol, rec.Decision, time.Since(start), 0, 0)
	return decision
}

// saveErrorDecision persists the fallback row for a failed attempt. prompt
// is nil when the failure happened before a prompt could be rendered.
func (w *Worker) saveErrorDecision(ctx context.Context, eventID, modelName string, resp *ModelResponse, prompt *registry.RenderedPrompt, status, errorCode, errorMessage string) {
	promptVersion, promptHash := "", ""
	if prompt != nil {
		promptVersion = prompt.Version
		promptHash = prompt.Hash
	}
	zero := 0.0
	rec := &services.DecisionRecord{
		EventID:       eventID,
		ModelName:     modelName,
		ModelVersion:  resp.ModelVersion,
		PromptVersion: promptVersion,
		PromptHash:    promptHash,
		Decision:      string(models.DecisionIgnore),
		Confidence:    0,
		SizePct:       &zero,
		Reasons:       []string{fmt.Sprintf("model_error_%s", modelName), "fallback_decision"},
		Payload:       FallbackDecision(modelName),
		LatencyMS:     resp.LatencyMS,
		TokensIn:      resp.TokensIn,
		TokensOut:     resp.TokensOut,
		Status:        status,
		ErrorCode:     errorCode,
		ErrorMessage:  errorMessage,
		RawResponse:   resp.RawText,
	}
	if _, err := w.decisions.Create(ctx, rec); err != nil {
		slog.Error("Failed to persist fallback decision",
			"model", modelName, "event_id", eventID, "error", err)
	}
}

// getAdapter returns the cached adapter for a model, constructing it from
// the registry config on first use. nil means the model is unusable right
// now (no config, unknown provider).
func (w *Worker) getAdapter(ctx context.Context, modelName string) Adapter {
	w.mu.Lock()
	adapter, ok := w.adapters[modelName]
	w.mu.Unlock()
	if ok {
		return adapter
	}

	cfg, err := w.llm.GetConfig(ctx, modelName)
	if err != nil {
		slog.Error("Failed to resolve model config", "model", modelName, "error", err)
		return nil
	}
	if cfg == nil {
		return nil
	}

	adapter, err = NewAdapter(*cfg)
	if err != nil {
		slog.Error("Failed to construct adapter", "model", modelName, "error", err)
		return nil
	}

	w.mu.Lock()
	w.adapters[modelName] = adapter
	w.mu.Unlock()
	return adapter
}

// InvalidateAdapter drops a cached adapter so the next evaluation picks up
// a changed config.
func (w *Worker) InvalidateAdapter(modelName string) {
	w.mu.Lock()
	delete(w.adapters, modelName)
	w.mu.Unlock()
}

func (w *Worker) recordEvaluation(model, symbol, decision string, elapsed time.Duration, tokensIn, tokensOut int) {
	if w.metrics == nil {
		return
	}
	w.metrics.SignalsEvaluated.WithLabelValues(model, symbol, decision).Inc()
	w.metrics.EvaluationDuration.WithLabelValues(model).Observe(elapsed.Seconds())
	if tokensIn > 0 {
		w.metrics.ModelTokens.WithLabelValues(model, "in").Add(float64(tokensIn))
	}
	if tokensOut > 0 {
		w.metrics.ModelTokens.WithLabelValues(model, "out").Add(float64(tokensOut))
	}
}

func (w *Worker) recordModelError(model, errorType string) {
	if w.metrics != nil {
		w.metrics.ModelErrors.WithLabelValues(model, errorType).Inc()
	}
}

// renderInputs flattens the enriched payload into the generic maps the
// prompt templates substitute.
func renderInputs(payload *models.EnrichedPayload) (enriched, constraints map[string]interface{}, err error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	if err := json.Unmarshal(data, &enriched); err != nil {
		return nil, nil, err
	}
	constraints, _ = enriched["constraints"].(map[string]interface{})
	return enriched, constraints, nil
}

func decisionString(decision map[string]interface{}) string {
	if s, ok := decision["decision"].(string); ok {
		return s
	}
	return string(models.DecisionIgnore)
}

func decisionConfidence(decision map[string]interface{}) float64 {
	if v, ok := asNumber(decision["confidence"]); ok {
		return v
	}
	return 0
}

func decisionSizePct(decision map[string]interface{}) *float64 {
	if v, ok := asNumber(decision["size_pct"]); ok {
		return &v
	}
	return nil
}

func decisionReasons(decision map[string]interface{}) []string {
	raw, ok := decision["reasons"].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asObject(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func joinErrors(errs []string) string {
	out := ""
	for i, e := range errs {
		if i > 0 {
			out += "; "
		}
		out += e
	}
	return out
}
