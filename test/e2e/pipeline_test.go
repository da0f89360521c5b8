// Package e2e drives a full signal through the pipeline in-process:
// submit → pending stream → enrichment → enriched stream → stub
// evaluation → decision rows, event finalization and broadcast.
package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/enrichment"
	"github.com/sigmapilot/lens/pkg/evaluation"
	"github.com/sigmapilot/lens/pkg/market"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/publisher"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/registry"
	"github.com/sigmapilot/lens/pkg/services"
	"github.com/sigmapilot/lens/test/util"
)

const pipelineProfiles = `
trend_follow_v1:
  timeframes: ["1h", "4h"]
  indicators:
    - {name: ema, period: 21}
    - {name: rsi, period: 14}
    - {name: atr, period: 14}
  constraints:
    max_position_size_pct: 20
    min_hold_minutes: 30
    max_trades_per_hour: 4
    max_leverage: 10
`

func pipelineConfig() *config.Config {
	return &config.Config{
		FeatureProfile:       "trend_follow_v1",
		ValidatorMaxAge:      5 * time.Minute,
		ValidatorMaxDriftBps: 200,
		StaleMid:             10 * time.Second,
		StaleBook:            5 * time.Second,
		StaleFunding:         60 * time.Second,
		StaleCandleFactor:    2,
		ConsumerBatchSize:    10,
		ConsumerBlock:        time.Second,
		RetryMax:             3,
		RetryBaseDelay:       time.Millisecond,
		RetryMaxDelay:        10 * time.Millisecond,
		EvaluationMode:       config.EvaluationModeStub,
		AIModels:             []string{"chatgpt", "gemini"},
	}
}

// cannedProvider returns healthy market data for any symbol.
type cannedProvider struct{}

func (cannedProvider) Name() string { return "canned" }

func (cannedProvider) GetTicker(ctx context.Context, symbol string) (*market.Ticker, error) {
	return &market.Ticker{
		Symbol:    "BTC",
		Mid:       67100,
		Bid:       67099.5,
		Ask:       67100.5,
		SpreadBps: 0.15,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (cannedProvider) GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]market.Candle, error) {
	bar := time.Hour
	if timeframe == "4h" {
		bar = 4 * time.Hour
	}
	now := time.Now().UTC().Truncate(bar)
	candles := make([]market.Candle, 80)
	for i := range candles {
		price := 66000 + float64(i)*10
		candles[i] = market.Candle{
			Timestamp: now.Add(-time.Duration(len(candles)-1-i) * bar),
			Open:      price - 5,
			High:      price + 20,
			Low:       price - 20,
			Close:     price,
			Volume:    100,
		}
	}
	return candles, nil
}

func (cannedProvider) GetOrderBook(ctx context.Context, symbol string, depth int) (*market.OrderBook, error) {
	return &market.OrderBook{Symbol: symbol, Timestamp: time.Now().UTC()}, nil
}

func (cannedProvider) GetFundingRate(ctx context.Context, symbol string) (*market.FundingRate, error) {
	return &market.FundingRate{Symbol: "BTC", Rate: 0.0000125, Timestamp: time.Now().UTC()}, nil
}

func (cannedProvider) GetOpenInterest(ctx context.Context, symbol string) (*market.OpenInterest, error) {
	return &market.OpenInterest{Symbol: "BTC", OIUSD: 1.5e9, OIContracts: 22000, Timestamp: time.Now().UTC()}, nil
}

func (cannedProvider) GetMarkPrice(ctx context.Context, symbol string) (float64, error) {
	return 67105, nil
}

func (cannedProvider) Get24hVolume(ctx context.Context, symbol string) (float64, error) {
	return 2.4e9, nil
}

// captureHub records broadcast frames in place of a live WebSocket hub.
type captureHub struct {
	mu     sync.Mutex
	frames []publisher.DecisionFrame
}

func (h *captureHub) BroadcastDecision(frame publisher.DecisionFrame) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames = append(h.frames, frame)
}

func TestPipelineEndToEnd(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	qc := queue.NewClientFromRedis(rdb)
	require.NoError(t, qc.EnsureGroup(ctx, queue.StreamPending, queue.GroupEnrichment))
	require.NoError(t, qc.EnsureGroup(ctx, queue.StreamEnriched, queue.GroupEvaluation))

	cfg := pipelineConfig()
	profiles, err := config.ParseProfiles([]byte(pipelineProfiles))
	require.NoError(t, err)

	eventSvc := services.NewEventService(client)
	decisionSvc := services.NewDecisionService(client)
	signalSvc := services.NewSignalService(client, qc, cfg.FeatureProfile, nil)

	llmReg := registry.NewLLMRegistry(client)
	require.NoError(t, llmReg.Initialize(ctx))
	promptReg := registry.NewPromptRegistry(client)
	require.NoError(t, promptReg.Initialize(ctx, ""))

	enrichWorker := enrichment.NewWorker(cannedProvider{}, profiles, eventSvc, qc, nil, cfg)
	hub := &captureHub{}
	evalWorker := evaluation.NewWorker(llmReg, promptReg, decisionSvc, eventSvc, hub, nil, cfg)

	// Ingress.
	result, err := signalSvc.Submit(ctx, &models.SignalPayload{
		EventType:        models.EventTypeOpenSignal,
		Symbol:           "BTCUSDT",
		SignalDirection:  models.DirectionLong,
		EntryPrice:       decimal.NewFromFloat(67000),
		Size:             decimal.NewFromFloat(0.5),
		LiquidationPrice: decimal.NewFromFloat(60000),
		TsUTC:            time.Now().UTC(),
		Source:           "tradingview",
	}, "e2e-key-1")
	require.NoError(t, err)
	assert.Equal(t, "ENQUEUED", result.Status)
	eventID := result.EventID

	// Enrichment stage.
	pending, err := qc.ReadGroup(ctx, queue.StreamPending, queue.GroupEnrichment, "e2e", 10, 50*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, eventID, pending[0].EventID)
	require.NoError(t, enrichWorker.Handle(ctx, &pending[0]))

	evt, err := eventSvc.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, "enriched", string(evt.Status))
	require.NotNil(t, evt.EnrichedAt)

	enrichedRow, err := eventSvc.GetEnriched(ctx, eventID)
	require.NoError(t, err)
	require.NotNil(t, enrichedRow)
	assert.Equal(t, "trend_follow_v1", enrichedRow.FeatureProfile)

	// Evaluation stage.
	enriched, err := qc.ReadGroup(ctx, queue.StreamEnriched, queue.GroupEvaluation, "e2e", 10, 50*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	require.NoError(t, evalWorker.Handle(ctx, &enriched[0]))

	evt, err = eventSvc.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, "published", string(evt.Status))
	require.NotNil(t, evt.EvaluatedAt)
	require.NotNil(t, evt.PublishedAt)

	decisions, err := decisionSvc.ForEvent(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, decisions, 2)
	for _, d := range decisions {
		assert.Equal(t, string(models.DecisionStatusOK), d.Status)
		assert.Equal(t, "stub-v1", d.ModelVersion)
		assert.NotEmpty(t, d.Reasons)
	}

	hub.mu.Lock()
	frames := append([]publisher.DecisionFrame(nil), hub.frames...)
	hub.mu.Unlock()
	require.Len(t, frames, 2)
	assert.Equal(t, eventID, frames[0].EventID)
	assert.Equal(t, "BTCUSDT", frames[0].Symbol)

	// Idempotent resubmission leaves the pipeline untouched.
	dup, err := signalSvc.Submit(ctx, &models.SignalPayload{
		EventType:        models.EventTypeOpenSignal,
		Symbol:           "BTCUSDT",
		SignalDirection:  models.DirectionLong,
		EntryPrice:       decimal.NewFromFloat(67000),
		Size:             decimal.NewFromFloat(0.5),
		LiquidationPrice: decimal.NewFromFloat(60000),
		TsUTC:            time.Now().UTC(),
		Source:           "tradingview",
	}, "e2e-key-1")
	require.NoError(t, err)
	assert.True(t, dup.Duplicate)
	assert.Equal(t, eventID, dup.EventID)

	depth, err := qc.Length(ctx, queue.StreamPending)
	require.NoError(t, err)
	assert.Equal(t, int64(1), depth)

	// Timeline carries the full transition history.
	timeline, err := eventSvc.Timeline(ctx, eventID)
	require.NoError(t, err)
	statuses := make([]string, len(timeline))
	for i, entry := range timeline {
		statuses[i] = entry.Status
	}
	for _, want := range []string{
		models.TimelineReceived, models.TimelineEnqueued, models.TimelineEnriched,
		models.TimelineEvaluated, models.TimelinePublished,
	} {
		assert.Contains(t, statuses, want)
	}
}
