package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	echo "github.com/labstack/echo/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/registry"
	"github.com/sigmapilot/lens/pkg/services"
	testdb "github.com/sigmapilot/lens/test/database"
)

func testQueue(t *testing.T) *queue.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return queue.NewClientFromRedis(rdb)
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const validSignal = `{
	"event_type": "OPEN_SIGNAL",
	"symbol": "BTC-USD",
	"signal_direction": "long",
	"entry_price": "64250.5",
	"size": "0.5",
	"liquidation_price": "60000",
	"ts_utc": "2026-08-26T10:00:00Z",
	"source": "tradingview"
}`

func TestSubmitSignal_IdempotentDuplicate(t *testing.T) {
	client := testdb.NewTestClient(t)
	qc := testQueue(t)
	ctx := context.Background()

	s := &Server{signals: services.NewSignalService(client.Client, qc, "trend_follow_v1", nil)}
	e := echo.New()
	e.POST("/api/v1/signals", wrap(s.submitSignalHandler))

	headers := map[string]string{"X-Idempotency-Key": "key-123"}

	rec := doJSON(t, e, http.MethodPost, "/api/v1/signals", validSignal, headers)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var first services.SubmitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.NotEmpty(t, first.EventID)
	assert.Equal(t, "ENQUEUED", first.Status)

	// The same key returns the original event with 200 and no second
	// enqueue.
	rec = doJSON(t, e, http.MethodPost, "/api/v1/signals", validSignal, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var second services.SubmitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, first.EventID, second.EventID)

	depth, err := qc.Length(ctx, queue.StreamPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)

	count, err := client.Client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSubmitSignal_ValidationEnvelope(t *testing.T) {
	client := testdb.NewTestClient(t)
	qc := testQueue(t)

	s := &Server{signals: services.NewSignalService(client.Client, qc, "trend_follow_v1", nil)}
	e := echo.New()
	e.POST("/api/v1/signals", wrap(s.submitSignalHandler))

	body := strings.Replace(validSignal, `"symbol": "BTC-USD"`, `"symbol": ""`, 1)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/signals", body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "must be between 1 and 20 characters", envelope.Error.Message)
	assert.Equal(t, "symbol", envelope.Error.Details["field"])
}

func TestEventStatusView(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	received := time.Now().UTC().Add(-3 * time.Second)
	published := received.Add(2 * time.Second)
	_, err := client.Client.Event.Create().
		SetEventID("evt-status-1").
		SetEventType(event.EventType(models.EventTypeOpenSignal)).
		SetSymbol("BTC-USD").
		SetSignalDirection(event.SignalDirection(models.DirectionLong)).
		SetEntryPrice(decimal.NewFromFloat(64250.5)).
		SetSize(decimal.NewFromFloat(0.5)).
		SetTsUtc(received).
		SetSource("tradingview").
		SetStatus(event.Status(models.EventStatusPublished)).
		SetReceivedAt(received).
		SetPublishedAt(published).
		SetRawPayload(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	s := &Server{events: services.NewEventService(client.Client)}
	e := echo.New()
	e.GET("/api/v1/events/:id/status", wrap(s.eventStatusHandler))

	rec := doJSON(t, e, http.MethodGet, "/api/v1/events/evt-status-1/status", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var status EventStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "evt-status-1", status.EventID)
	assert.Equal(t, "published", status.Status)
	assert.Equal(t, "PUBLISHED", status.Stage)
	assert.Equal(t, int64(2000), status.DurationMS)
	require.NotNil(t, status.PublishedAt)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/events/missing/status", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Event missing not found", envelope.Error.Message)
}

func TestDLQRetryResolveFlow(t *testing.T) {
	client := testdb.NewTestClient(t)
	qc := testQueue(t)
	ctx := context.Background()

	dlqSvc := services.NewDLQService(client.Client, qc, nil)
	require.NoError(t, dlqSvc.Record(ctx, &queue.DLQRecord{
		EventID:      "evt-dlq-1",
		Stage:        models.StageEnrich,
		ReasonCode:   "PROVIDER_5XX",
		ErrorMessage: "hyperliquid returned 503",
		Payload:      map[string]interface{}{"event_id": "evt-dlq-1", "symbol": "BTC-USD"},
		RetryCount:   3,
	}))
	entry, err := client.Client.DLQEntry.Query().Only(ctx)
	require.NoError(t, err)

	s := &Server{dlq: dlqSvc}
	e := echo.New()
	e.POST("/api/v1/dlq/:id/retry", wrap(s.retryDLQHandler))
	e.POST("/api/v1/dlq/:id/resolve", wrap(s.resolveDLQHandler))

	rec := doJSON(t, e, http.MethodPost, "/api/v1/dlq/"+entry.ID.String()+"/retry", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var retry services.RetryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &retry))
	assert.Equal(t, "retrying", retry.Status)
	assert.Equal(t, 4, retry.RetryCount)

	// An enrich-stage entry replays onto the pending stream.
	depth, err := qc.Length(ctx, queue.StreamPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/dlq/"+entry.ID.String()+"/resolve",
		`{"resolution_note": "provider outage, replayed"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resolve services.ResolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resolve))
	assert.Equal(t, "resolved", resolve.Status)

	// Resolved entries accept neither a second resolve nor a retry.
	rec = doJSON(t, e, http.MethodPost, "/api/v1/dlq/"+entry.ID.String()+"/resolve",
		`{"resolution_note": "again"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ALREADY_RESOLVED", decodeEnvelope(t, rec).Error.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/dlq/"+entry.ID.String()+"/retry", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ALREADY_RESOLVED", decodeEnvelope(t, rec).Error.Code)
}

func TestDLQResolve_NoteLength(t *testing.T) {
	client := testdb.NewTestClient(t)
	qc := testQueue(t)
	ctx := context.Background()

	dlqSvc := services.NewDLQService(client.Client, qc, nil)
	require.NoError(t, dlqSvc.Record(ctx, &queue.DLQRecord{
		Stage:      models.StageEvaluate,
		ReasonCode: "TIMEOUT",
		Payload:    map[string]interface{}{},
	}))
	entry, err := client.Client.DLQEntry.Query().Only(ctx)
	require.NoError(t, err)

	s := &Server{dlq: dlqSvc}
	e := echo.New()
	e.POST("/api/v1/dlq/:id/resolve", wrap(s.resolveDLQHandler))

	rec := doJSON(t, e, http.MethodPost, "/api/v1/dlq/"+entry.ID.String()+"/resolve",
		`{"resolution_note": ""}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "resolution_note", envelope.Error.Details["field"])
}

func TestLLMConfigMaskingAndBounds(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	llm := registry.NewLLMRegistry(client.Client)
	require.NoError(t, llm.Initialize(ctx))

	s := &Server{llm: llm}
	e := echo.New()
	e.PUT("/api/v1/llm-configs/:model", wrap(s.upsertLLMConfigHandler))
	e.GET("/api/v1/llm-configs/:model", wrap(s.getLLMConfigHandler))

	rec := doJSON(t, e, http.MethodPut, "/api/v1/llm-configs/chatgpt",
		`{"api_key": "sk-test-12345678"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cfg LLMConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, "****5678", cfg.APIKey)
	assert.Equal(t, "openai", cfg.Provider)

	// Reads never leak the stored key either.
	rec = doJSON(t, e, http.MethodGet, "/api/v1/llm-configs/chatgpt", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, "****5678", cfg.APIKey)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/llm-configs/chatgpt",
		`{"api_key": "sk-test-12345678", "timeout_ms": 500}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, "timeout_ms", envelope.Error.Details["field"])

	rec = doJSON(t, e, http.MethodPut, "/api/v1/llm-configs/unknown-model",
		`{"api_key": "sk-x"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
