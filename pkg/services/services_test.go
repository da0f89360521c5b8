package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/test/util"
)

func validPayload() *models.SignalPayload {
	return &models.SignalPayload{
		EventType:        models.EventTypeOpenSignal,
		Symbol:           "BTC-USD",
		SignalDirection:  models.DirectionLong,
		EntryPrice:       decimal.NewFromFloat(64250.5),
		Size:             decimal.NewFromFloat(0.5),
		LiquidationPrice: decimal.NewFromFloat(60000),
		TsUTC:            time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC),
		Source:           "tradingview",
	}
}

func TestValidateSignal(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *models.SignalPayload)
		wantField string
	}{
		{"valid", func(p *models.SignalPayload) {}, ""},
		{"bad event type", func(p *models.SignalPayload) { p.EventType = "ENTRY" }, "event_type"},
		{"empty symbol", func(p *models.SignalPayload) { p.Symbol = "" }, "symbol"},
		{"symbol too long", func(p *models.SignalPayload) { p.Symbol = "AAAAAAAAAAAAAAAAAAAAA" }, "symbol"},
		{"bad direction", func(p *models.SignalPayload) { p.SignalDirection = "up" }, "signal_direction"},
		{"zero entry price", func(p *models.SignalPayload) { p.EntryPrice = decimal.Zero }, "entry_price"},
		{"negative size", func(p *models.SignalPayload) { p.Size = decimal.NewFromFloat(-1) }, "size"},
		{"zero liquidation price", func(p *models.SignalPayload) { p.LiquidationPrice = decimal.Zero }, "liquidation_price"},
		{"zero timestamp", func(p *models.SignalPayload) { p.TsUTC = time.Time{} }, "ts_utc"},
		{"empty source", func(p *models.SignalPayload) { p.Source = "" }, "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)
			err := ValidateSignal(p)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestStageView(t *testing.T) {
	tests := []struct {
		status models.EventStatus
		want   string
	}{
		{models.EventStatusQueued, "ENQUEUED"},
		{models.EventStatusEnriched, "ENRICHED"},
		{models.EventStatusEnrichmentPartial, "ENRICHED"},
		{models.EventStatusEvaluated, "EVALUATED"},
		{models.EventStatusPublished, "PUBLISHED"},
		{models.EventStatusFailed, "FAILED"},
		{models.EventStatusDLQ, "DLQ"},
		{models.EventStatusRejected, "REJECTED"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StageView(tt.status), string(tt.status))
	}
}

func TestStageFilterValues(t *testing.T) {
	// Legacy rows used enrichment/evaluation; filters match both spellings.
	assert.ElementsMatch(t, []string{"enrich", "enrichment"}, stageFilterValues("enrich"))
	assert.ElementsMatch(t, []string{"enrich", "enrichment"}, stageFilterValues("enrichment"))
	assert.ElementsMatch(t, []string{"evaluate", "evaluation"}, stageFilterValues("evaluate"))
	assert.Equal(t, []string{"publish"}, stageFilterValues("publish"))
}

func createTestEvent(t *testing.T, client *ent.Client, eventID, symbol, source string) {
	t.Helper()
	err := client.Event.Create().
		SetEventID(eventID).
		SetEventType(event.EventType(models.EventTypeOpenSignal)).
		SetSymbol(symbol).
		SetSignalDirection(event.SignalDirection(models.DirectionLong)).
		SetEntryPrice(decimal.NewFromFloat(100)).
		SetSize(decimal.NewFromFloat(1)).
		SetTsUtc(time.Now().UTC()).
		SetSource(source).
		SetRawPayload(map[string]interface{}{}).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestEventServiceTransitions(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewEventService(client)

	createTestEvent(t, client, "evt-1", "BTC-USD", "tradingview")

	require.NoError(t, svc.MarkEnriched(ctx, "evt-1", models.EventStatusEnriched))
	evt, err := svc.Get(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "enriched", string(evt.Status))
	require.NotNil(t, evt.EnrichedAt)

	require.NoError(t, svc.MarkEvaluated(ctx, "evt-1"))
	require.NoError(t, svc.MarkPublished(ctx, "evt-1"))

	evt, err = svc.Get(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "published", string(evt.Status))
	require.NotNil(t, evt.EvaluatedAt)
	require.NotNil(t, evt.PublishedAt)

	assert.ErrorIs(t, svc.MarkEvaluated(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", models.EventStatusFailed), ErrNotFound)
}

func TestEventServiceRedeliveryDoesNotRegress(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewEventService(client)

	createTestEvent(t, client, "evt-redeliver", "BTC-USD", "tradingview")

	require.NoError(t, svc.MarkEnriched(ctx, "evt-redeliver", models.EventStatusEnriched))
	require.NoError(t, svc.MarkEvaluated(ctx, "evt-redeliver"))
	require.NoError(t, svc.MarkPublished(ctx, "evt-redeliver"))

	// A stale enrichment redelivery is a no-op, not an error.
	require.NoError(t, svc.MarkEnriched(ctx, "evt-redeliver", models.EventStatusEnriched))
	require.NoError(t, svc.MarkEvaluated(ctx, "evt-redeliver"))

	evt, err := svc.Get(ctx, "evt-redeliver")
	require.NoError(t, err)
	assert.Equal(t, "published", string(evt.Status))
}

func TestEventServiceListFilters(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewEventService(client)

	createTestEvent(t, client, "evt-btc-1", "BTC-USD", "tradingview")
	createTestEvent(t, client, "evt-btc-2", "BTC-USD", "webhook")
	createTestEvent(t, client, "evt-eth-1", "ETH-USD", "tradingview")

	rows, total, err := svc.List(ctx, EventFilter{Symbol: "btc-usd"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = svc.List(ctx, EventFilter{Source: "webhook"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "evt-btc-2", rows[0].EventID)

	rows, total, err = svc.List(ctx, EventFilter{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, rows, 1)

	_, total, err = svc.List(ctx, EventFilter{Status: "published"})
	require.NoError(t, err)
	assert.Zero(t, total)
}
