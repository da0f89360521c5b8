package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/pkg/config"
	"github.com/sigmapilot/lens/pkg/market"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/queue"
	"github.com/sigmapilot/lens/pkg/services"
	"github.com/sigmapilot/lens/test/util"
)

const testProfiles = `
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

crypto_perps_v1:
  extends: trend_follow_v1
  requires_derivs: true
  indicators:
    - {name: macd}
`

func testConfig() *config.Config {
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
	}
}

func setupWorker(t *testing.T, client *ent.Client, provider market.Provider) (*Worker, *queue.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	qc := queue.NewClientFromRedis(rdb)
	require.NoError(t, qc.EnsureGroup(context.Background(), queue.StreamEnriched, queue.GroupEvaluation))

	profiles, err := config.ParseProfiles([]byte(testProfiles))
	require.NoError(t, err)

	w := NewWorker(provider, profiles, services.NewEventService(client), qc, nil, testConfig())
	return w, qc
}

func candleSeries(n int, bar time.Duration) []market.Candle {
	now := time.Now().UTC().Truncate(bar)
	candles := make([]market.Candle, n)
	for i := range candles {
		ts := now.Add(-time.Duration(n-1-i) * bar)
		price := 67000 + float64(i)*10
		candles[i] = market.Candle{
			Timestamp: ts,
			Open:      price - 5,
			High:      price + 20,
			Low:       price - 20,
			Close:     price,
			Volume:    100 + float64(i),
		}
	}
	return candles
}

func healthyFake() *fakeProvider {
	return &fakeProvider{
		ticker: healthyTicker(67100),
		candles: map[string][]market.Candle{
			"1h": candleSeries(80, time.Hour),
			"4h": candleSeries(80, 4*time.Hour),
		},
		funding: &market.FundingRate{
			Symbol:    "BTC",
			Rate:      0.0000125,
			Timestamp: time.Now().UTC(),
		},
		oi:        &market.OpenInterest{Symbol: "BTC", OIUSD: 1.5e9, OIContracts: 22000, Timestamp: time.Now().UTC()},
		markPrice: 67105,
		volume24h: 2.4e9,
	}
}

func seedQueuedEvent(t *testing.T, client *ent.Client, eventID, profile string) {
	t.Helper()
	create := client.Event.Create().
		SetEventID(eventID).
		SetEventType(event.EventType(models.EventTypeOpenSignal)).
		SetSymbol("BTCUSDT").
		SetSignalDirection(event.SignalDirection(models.DirectionLong)).
		SetEntryPrice(decimal.RequireFromString("67000")).
		SetSize(decimal.RequireFromString("0.5")).
		SetTsUtc(time.Now().UTC()).
		SetSource("tradingview").
		SetRawPayload(map[string]interface{}{"event_id": eventID})
	if profile != "" {
		create = create.SetFeatureProfile(profile)
	}
	require.NoError(t, create.Exec(context.Background()))
}

func pendingMessage(t *testing.T, eventID, profile string) *queue.Message {
	t.Helper()
	payload := models.SignalPayload{
		EventID:         eventID,
		EventType:       models.EventTypeOpenSignal,
		Symbol:          "BTCUSDT",
		SignalDirection: models.DirectionLong,
		EntryPrice:      decimal.RequireFromString("67000"),
		Size:            decimal.RequireFromString("0.5"),
		TsUTC:           time.Now().UTC(),
		Source:          "tradingview",
		FeatureProfile:  profile,
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return &queue.Message{ID: "1-0", EventID: eventID, Payload: data}
}

func readEnriched(t *testing.T, qc *queue.Client) *models.EnrichedPayload {
	t.Helper()
	msgs, err := qc.ReadGroup(context.Background(), queue.StreamEnriched, queue.GroupEvaluation,
		"test", 10, 50*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	var payload models.EnrichedPayload
	require.NoError(t, json.Unmarshal(msgs[0].Payload, &payload))
	return &payload
}

func TestWorker_FullEnrichment(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	w, qc := setupWorker(t, client, healthyFake())
	seedQueuedEvent(t, client, "tv_enr_1", "")

	require.NoError(t, w.Handle(ctx, pendingMessage(t, "tv_enr_1", "")))

	// Event advanced to enriched with a persisted enrichment row.
	evt, err := client.Event.Query().Where(event.EventIDEQ("tv_enr_1")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(models.EventStatusEnriched), string(evt.Status))
	assert.NotNil(t, evt.EnrichedAt)

	events := services.NewEventService(client)
	row, err := events.GetEnriched(ctx, "tv_enr_1")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "trend_follow_v1", row.FeatureProfile)
	assert.Equal(t, "fake", row.Provider)
	assert.Equal(t, 67100.0, row.MarketData["mid_price"])
	assert.Contains(t, row.DataTimestamps, "mid_ts")
	assert.Contains(t, row.DataTimestamps, "candles_1h_ts")

	timeframes := row.TaData["timeframes"].(map[string]interface{})
	require.Contains(t, timeframes, "1h")
	require.Contains(t, timeframes, "4h")

	// Forwarded payload carries market, TA and constraints.
	payload := readEnriched(t, qc)
	assert.Equal(t, "tv_enr_1", payload.EventID)
	assert.Equal(t, 67100.0, payload.Market.MidPrice)
	assert.InDelta(t, DriftBps(67100, 67000), payload.Market.PriceDriftFromEntryBps, 1e-9)
	assert.Contains(t, payload.TA, "1h")
	assert.Equal(t, 20.0, payload.Constraints.MaxPositionSizePct)
	assert.Nil(t, payload.Derivs, "trend_follow_v1 does not request derivs")
	assert.True(t, payload.QualityFlags.Empty())
}

func TestWorker_DerivsProfile(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	w, qc := setupWorker(t, client, healthyFake())
	seedQueuedEvent(t, client, "tv_enr_2", "crypto_perps_v1")

	require.NoError(t, w.Handle(ctx, pendingMessage(t, "tv_enr_2", "crypto_perps_v1")))

	payload := readEnriched(t, qc)
	require.NotNil(t, payload.Derivs)
	assert.Equal(t, 0.0000125, payload.Derivs.FundingRate)
	assert.Equal(t, 1, payload.Derivs.FundingIntervalH)
	assert.Equal(t, 1.5e9, payload.Derivs.OpenInterest)
	assert.Equal(t, 67105.0, payload.Derivs.MarkPrice)

	row, err := services.NewEventService(client).GetEnriched(ctx, "tv_enr_2")
	require.NoError(t, err)
	assert.Equal(t, "crypto_perps_v1", row.FeatureProfile)
	assert.NotEmpty(t, row.DerivsData)
	assert.Contains(t, row.DataTimestamps, "funding_ts")
}

func TestWorker_PartialEnrichment(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	provider := healthyFake()
	provider.candleErrs = map[string]error{
		"4h": &market.ProviderError{Provider: "fake", Endpoint: "candleSnapshot", StatusCode: 503},
	}
	delete(provider.candles, "4h")

	w, qc := setupWorker(t, client, provider)
	seedQueuedEvent(t, client, "tv_enr_3", "")

	require.NoError(t, w.Handle(ctx, pendingMessage(t, "tv_enr_3", "")))

	evt, err := client.Event.Query().Where(event.EventIDEQ("tv_enr_3")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(models.EventStatusEnrichmentPartial), string(evt.Status))

	payload := readEnriched(t, qc)
	assert.Contains(t, payload.TA, "1h")
	assert.NotContains(t, payload.TA, "4h")
	assert.Contains(t, payload.QualityFlags.Missing, "candles_4h")
	require.Len(t, payload.QualityFlags.ProviderErrors, 1)
	assert.Contains(t, payload.QualityFlags.ProviderErrors[0], "candles_4h:")
}

func TestWorker_RejectionDropsMessage(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	w, qc := setupWorker(t, client, healthyFake())
	seedQueuedEvent(t, client, "tv_enr_4", "")

	msg := pendingMessage(t, "tv_enr_4", "")
	var payload models.SignalPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	payload.TsUTC = time.Now().UTC().Add(-time.Hour)
	msg.Payload, _ = json.Marshal(payload)

	err := w.Handle(ctx, msg)
	require.ErrorIs(t, err, queue.ErrDrop)

	evt, qerr := client.Event.Query().Where(event.EventIDEQ("tv_enr_4")).Only(ctx)
	require.NoError(t, qerr)
	assert.Equal(t, string(models.EventStatusRejected), string(evt.Status))

	timeline, terr := services.NewEventService(client).Timeline(ctx, "tv_enr_4")
	require.NoError(t, terr)
	require.NotEmpty(t, timeline)
	last := timeline[len(timeline)-1]
	assert.Equal(t, models.TimelineRejected, last.Status)
	assert.Equal(t, ReasonSignalTooOld, last.Details["reason"])

	// Nothing forwarded.
	msgs, rerr := qc.ReadGroup(ctx, queue.StreamEnriched, queue.GroupEvaluation, "test", 10, 50*time.Millisecond)
	require.NoError(t, rerr)
	assert.Empty(t, msgs)
}

func TestWorker_TotalProviderFailureRetries(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	provider := &fakeProvider{
		tickerErr: &market.ProviderError{Provider: "fake", Endpoint: "allMids", StatusCode: 502},
	}
	w, _ := setupWorker(t, client, provider)
	seedQueuedEvent(t, client, "tv_enr_5", "")

	// Drift check skipped so validation passes without a ticker.
	msg := pendingMessage(t, "tv_enr_5", "")
	var payload models.SignalPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &payload))
	payload.EntryPrice = decimal.Zero
	msg.Payload, _ = json.Marshal(payload)

	err := w.Handle(ctx, msg)
	require.Error(t, err)

	var nonRetryable *queue.NonRetryableError
	assert.False(t, errors.As(err, &nonRetryable), "must stay retryable")

	// Event untouched: still queued for the retry.
	evt, qerr := client.Event.Query().Where(event.EventIDEQ("tv_enr_5")).Only(ctx)
	require.NoError(t, qerr)
	assert.Equal(t, string(models.EventStatusQueued), string(evt.Status))
}

func TestWorker_MissingEventIsNonRetryable(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	w, _ := setupWorker(t, client, healthyFake())

	err := w.Handle(context.Background(), pendingMessage(t, "tv_enr_missing", ""))

	var nonRetryable *queue.NonRetryableError
	require.ErrorAs(t, err, &nonRetryable)
	assert.Equal(t, "missing_event", nonRetryable.ReasonCode)
}

func TestWorker_StaleDataFlagged(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	provider := healthyFake()
	provider.ticker.Timestamp = time.Now().UTC().Add(-30 * time.Second)

	w, qc := setupWorker(t, client, provider)
	seedQueuedEvent(t, client, "tv_enr_6", "")

	require.NoError(t, w.Handle(context.Background(), pendingMessage(t, "tv_enr_6", "")))

	payload := readEnriched(t, qc)
	require.NotEmpty(t, payload.QualityFlags.Stale)
	assert.Contains(t, payload.QualityFlags.Stale[0], "mid: 30s old (threshold: 10s)")
}

func TestWorker_StaleBookFlagged(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	provider := healthyFake()
	provider.book = &market.OrderBook{Symbol: "BTC", Timestamp: time.Now().UTC().Add(-20 * time.Second)}

	w, qc := setupWorker(t, client, provider)
	seedQueuedEvent(t, client, "tv_enr_7", "")

	require.NoError(t, w.Handle(context.Background(), pendingMessage(t, "tv_enr_7", "")))

	payload := readEnriched(t, qc)
	require.NotEmpty(t, payload.QualityFlags.Stale)
	assert.Contains(t, payload.QualityFlags.Stale[0], "book: 20s old (threshold: 5s)")
}
