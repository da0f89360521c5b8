package evaluation

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/publisher"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/registry"
	"github.com/sigmapilot/lens/pkg/services"
	"github.com/sigmapilot/lens/test/util"
)

type captureHub struct {
	mu     sync.Mutex
	frames []publisher.DecisionFrame
}

func (h *captureHub) BroadcastDecision(frame publisher.DecisionFrame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames = append(h.frames, frame)
}

func (h *captureHub) all() []publisher.DecisionFrame {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]publisher.DecisionFrame(nil), h.frames...)
}

func setupStubWorker(t *testing.T, client *ent.Client, modelList []string) (*Worker, *captureHub) {
	t.Helper()
	hub := &captureHub{}
	cfg := &config.Config{
		EvaluationMode: config.EvaluationModeStub,
		AIModels:       modelList,
	}
	w := NewWorker(
		registry.NewLLMRegistry(client),
		registry.NewPromptRegistry(client),
		services.NewDecisionService(client),
		services.NewEventService(client),
		hub,
		nil,
		cfg,
	)
	return w, hub
}

func seedEvent(t *testing.T, client *ent.Client, eventID string) {
	t.Helper()
	err := client.Event.Create().
		SetEventID(eventID).
		SetEventType(event.EventType(models.EventTypeOpenSignal)).
		SetSymbol("BTCUSDT").
		SetSignalDirection(event.SignalDirection(models.DirectionLong)).
		SetEntryPrice(decimal.RequireFromString("67150.5")).
		SetSize(decimal.RequireFromString("0.5")).
		SetTsUtc(time.Now().UTC()).
		SetSource("tradingview").
		SetStatus(event.Status(models.EventStatusEnriched)).
		SetRawPayload(map[string]interface{}{"event_id": eventID}).
		Exec(context.Background())
	require.NoError(t, err)
}

func enrichedMessage(t *testing.T, eventID string) *queue.Message {
	t.Helper()
	payload := models.EnrichedPayload{
		EventID:         eventID,
		Symbol:          "BTCUSDT",
		EventType:       models.EventTypeOpenSignal,
		SignalDirection: models.DirectionLong,
		EntryPrice:      "67150.5",
		Size:            "0.5",
		TsUTC:           time.Now().UTC(),
		Source:          "tradingview",
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return &queue.Message{ID: "1-0", EventID: eventID, Payload: data}
}

func TestWorker_StubMode(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	w, hub := setupStubWorker(t, client, []string{"chatgpt", "claude"})
	seedEvent(t, client, "tv_stub_1")

	err := w.Handle(ctx, enrichedMessage(t, "tv_stub_1"))
	require.NoError(t, err)

	decisions := services.NewDecisionService(client)
	rows, err := decisions.ForEvent(ctx, "tv_stub_1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byModel := map[string]*ent.ModelDecision{}
	for _, row := range rows {
		byModel[row.ModelName] = row
		assert.Equal(t, "ok", row.Status)
		assert.Equal(t, "stub-v1", row.ModelVersion)
		assert.Equal(t, "core_decision_v1", row.PromptVersion)
		assert.Equal(t, "stub", row.PromptHash)
	}
	require.Contains(t, byModel, "chatgpt")
	require.Contains(t, byModel, "claude")
	assert.Equal(t, "FOLLOW_ENTER", byModel["chatgpt"].Decision)
	assert.Equal(t, 0.75, byModel["chatgpt"].Confidence)
	assert.Equal(t, 0.72, byModel["claude"].Confidence)

	// Event advanced to published with both stage transitions recorded.
	evt, err := client.Event.Query().Where(event.EventIDEQ("tv_stub_1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(models.EventStatusPublished), string(evt.Status))
	assert.NotNil(t, evt.EvaluatedAt)
	assert.NotNil(t, evt.PublishedAt)

	events := services.NewEventService(client)
	timeline, err := events.Timeline(ctx, "tv_stub_1")
	require.NoError(t, err)
	statuses := make([]string, len(timeline))
	for i, entry := range timeline {
		statuses[i] = entry.Status
	}
	assert.Contains(t, statuses, models.TimelineEvaluated)
	assert.Contains(t, statuses, models.TimelinePublished)

	frames := hub.all()
	require.Len(t, frames, 2)
	for _, frame := range frames {
		assert.Equal(t, "tv_stub_1", frame.EventID)
		assert.Equal(t, "BTCUSDT", frame.Symbol)
		assert.Equal(t, "OPEN_SIGNAL", frame.EventType)
		assert.NotEmpty(t, frame.Decision)
	}
}

func TestWorker_InvalidPayloadDeadLetters(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	w, _ := setupStubWorker(t, client, []string{"chatgpt"})

	err := w.Handle(context.Background(), &queue.Message{
		ID:      "1-0",
		EventID: "tv_bad_1",
		Payload: []byte("not json"),
	})

	var nonRetryable *queue.NonRetryableError
	require.ErrorAs(t, err, &nonRetryable)
	assert.Equal(t, "invalid_payload", nonRetryable.ReasonCode)
}

func TestWorker_EnabledModelsOverrideFallback(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	w, hub := setupStubWorker(t, client, []string{"chatgpt", "gemini", "claude", "deepseek"})
	seedEvent(t, client, "tv_stub_2")

	// With a registry row present, only the enabled model evaluates.
	llm := registry.NewLLMRegistry(client)
	_, err := llm.Upsert(ctx, "deepseek", registry.UpsertParams{APIKey: "sk-or-whatever"})
	require.NoError(t, err)

	require.NoError(t, w.Handle(ctx, enrichedMessage(t, "tv_stub_2")))

	rows, err := services.NewDecisionService(client).ForEvent(ctx, "tv_stub_2")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "deepseek", rows[0].ModelName)

	frames := hub.all()
	require.Len(t, frames, 1)
	assert.Equal(t, "deepseek", frames[0].Model)
}

func setupLiveWorker(t *testing.T, client *ent.Client, modelList []string) *Worker {
	t.Helper()
	cfg := &config.Config{
		EvaluationMode: config.EvaluationModeLive,
		AIModels:       modelList,
	}
	return NewWorker(
		registry.NewLLMRegistry(client),
		registry.NewPromptRegistry(client),
		services.NewDecisionService(client),
		services.NewEventService(client),
		&captureHub{},
		nil,
		cfg,
	)
}

func TestWorker_MissingAdapterPersistsDecisionRow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	// No registry row and no MODEL_CHATGPT_* env: no adapter can be built.
	w := setupLiveWorker(t, client, []string{"chatgpt"})
	seedEvent(t, client, "tv_live_1")

	err := w.Handle(ctx, enrichedMessage(t, "tv_live_1"))
	require.Error(t, err)

	rows, qerr := services.NewDecisionService(client).ForEvent(ctx, "tv_live_1")
	require.NoError(t, qerr)
	require.Len(t, rows, 1)
	assert.Equal(t, string(models.DecisionStatusInvalidConfig), rows[0].Status)
	assert.Equal(t, "ADAPTER_UNAVAILABLE", rows[0].ErrorCode)
	assert.Equal(t, "IGNORE", rows[0].Decision)

	// Event stays enriched for the retry.
	evt, qerr := client.Event.Query().Where(event.EventIDEQ("tv_live_1")).Only(ctx)
	require.NoError(t, qerr)
	assert.Equal(t, string(models.EventStatusEnriched), string(evt.Status))
}

func TestWorker_PromptRenderFailurePersistsDecisionRow(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	w := setupLiveWorker(t, client, []string{"chatgpt"})
	seedEvent(t, client, "tv_live_2")

	// Configured model, but no prompt rows exist so rendering cannot succeed.
	llm := registry.NewLLMRegistry(client)
	_, err := llm.Upsert(ctx, "chatgpt", registry.UpsertParams{APIKey: "sk-test-1234"})
	require.NoError(t, err)

	err = w.Handle(ctx, enrichedMessage(t, "tv_live_2"))
	require.Error(t, err)

	rows, qerr := services.NewDecisionService(client).ForEvent(ctx, "tv_live_2")
	require.NoError(t, qerr)
	require.Len(t, rows, 1)
	assert.Equal(t, string(models.DecisionStatusInvalidConfig), rows[0].Status)
	assert.Equal(t, "PROMPT_ERROR", rows[0].ErrorCode)
	assert.Empty(t, rows[0].PromptVersion)
}
