package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/pkg/database"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/services"
	"github.com/sigmapilot/lens/test/util"
)

// createEvent inserts a minimal valid event row.
func createEvent(t *testing.T, client *ent.Client, eventID string, idempotencyKey string) *ent.Event {
	t.Helper()
	create := client.Event.Create().
		SetEventID(eventID).
		SetEventType(event.EventType(models.EventTypeOpenSignal)).
		SetSymbol("BTC-USD").
		SetSignalDirection(event.SignalDirection(models.DirectionLong)).
		SetEntryPrice(decimal.NewFromFloat(64250.5)).
		SetSize(decimal.NewFromFloat(0.5)).
		SetTsUtc(time.Now().UTC()).
		SetSource("tradingview").
		SetStatus(event.Status(models.EventStatusQueued)).
		SetRawPayload(map[string]interface{}{"event_id": eventID})
	if idempotencyKey != "" {
		create = create.SetIdempotencyKey(idempotencyKey)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

// TestMigrationsApply runs the embedded SQL migrations through the real
// client constructor against a fresh schema and verifies the resulting
// tables accept writes.
func TestMigrationsApply(t *testing.T) {
	ctx := context.Background()

	baseConnStr := util.GetBaseConnectionString(t)
	schemaName := util.GenerateSchemaName(t)

	db, err := stdsql.Open("pgx", baseConnStr)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schemaName))
	require.NoError(t, err)
	_ = db.Close()

	t.Cleanup(func() {
		cleanDB, err := stdsql.Open("pgx", baseConnStr)
		if err != nil {
			return
		}
		defer func() { _ = cleanDB.Close() }()
		_, _ = cleanDB.ExecContext(context.Background(),
			fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
	})

	client, err := database.NewClient(ctx, database.Config{
		DSN:             util.AddSearchPathToConnString(baseConnStr, schemaName),
		PoolSize:        5,
		MaxOverflow:     5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// Migrations are idempotent: a second constructor against the same
	// schema must be a no-op.
	again, err := database.NewClient(ctx, database.Config{
		DSN:             util.AddSearchPathToConnString(baseConnStr, schemaName),
		PoolSize:        5,
		MaxOverflow:     5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	})
	require.NoError(t, err)
	_ = again.Close()

	row := createEvent(t, client.Client, "evt-migrations-1", "")
	assert.Equal(t, "queued", string(row.Status))
	assert.False(t, row.ReceivedAt.IsZero())

	got, err := client.Client.Event.Query().
		Where(event.EventIDEQ("evt-migrations-1")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BTC-USD", got.Symbol)
}

func TestEventUniqueEventID(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()

	createEvent(t, client.Client, "evt-dup", "")

	_, err := client.Client.Event.Create().
		SetEventID("evt-dup").
		SetEventType(event.EventType(models.EventTypeOpenSignal)).
		SetSymbol("ETH-USD").
		SetSignalDirection(event.SignalDirection(models.DirectionShort)).
		SetEntryPrice(decimal.NewFromFloat(3200)).
		SetSize(decimal.NewFromFloat(1)).
		SetTsUtc(time.Now().UTC()).
		SetSource("tradingview").
		SetRawPayload(map[string]interface{}{}).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestEventUniqueIdempotencyKey(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()

	createEvent(t, client.Client, "evt-key-1", "key-abc")

	_, err := client.Client.Event.Create().
		SetEventID("evt-key-2").
		SetIdempotencyKey("key-abc").
		SetEventType(event.EventType(models.EventTypeOpenSignal)).
		SetSymbol("BTC-USD").
		SetSignalDirection(event.SignalDirection(models.DirectionLong)).
		SetEntryPrice(decimal.NewFromFloat(64000)).
		SetSize(decimal.NewFromFloat(0.1)).
		SetTsUtc(time.Now().UTC()).
		SetSource("tradingview").
		SetRawPayload(map[string]interface{}{}).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// Distinct keys coexist; a NULL key never collides.
	createEvent(t, client.Client, "evt-key-3", "key-def")
	createEvent(t, client.Client, "evt-key-4", "")
	createEvent(t, client.Client, "evt-key-5", "")
}

func TestTimelineAppendOrdering(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	svc := services.NewEventService(client.Client)

	createEvent(t, client.Client, "evt-timeline", "")

	base := time.Now().UTC().Add(-time.Minute)
	for i, status := range []string{models.TimelineReceived, models.TimelineEnqueued, models.TimelineEnriched} {
		_, err := client.Client.ProcessingTimeline.Create().
			SetEventID("evt-timeline").
			SetStatus(status).
			SetOccurredAt(base.Add(time.Duration(i) * time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}

	entries, err := svc.Timeline(ctx, "evt-timeline")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.TimelineReceived, entries[0].Status)
	assert.Equal(t, models.TimelineEnqueued, entries[1].Status)
	assert.Equal(t, models.TimelineEnriched, entries[2].Status)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].OccurredAt.Before(entries[i-1].OccurredAt))
	}
}

func TestDecisionRows(t *testing.T) {
	client := NewTestClient(t)
	ctx := context.Background()
	svc := services.NewDecisionService(client.Client)

	createEvent(t, client.Client, "evt-decisions", "")

	sizePct := 15.0
	ok, err := svc.Create(ctx, &services.DecisionRecord{
		EventID:       "evt-decisions",
		ModelName:     "chatgpt",
		ModelVersion:  "gpt-4o",
		PromptVersion: "chatgpt_v1_core_v1",
		PromptHash:    "deadbeef",
		Decision:      string(models.DecisionFollowEnter),
		Confidence:    0.82,
		SizePct:       &sizePct,
		Reasons:       []string{"trend aligned", "funding neutral"},
		Payload:       map[string]interface{}{"decision": "FOLLOW_ENTER"},
		LatencyMS:     1200,
		TokensIn:      900,
		TokensOut:     120,
		Status:        string(models.DecisionStatusOK),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.82, ok.Confidence)
	require.NotNil(t, ok.SizePct)
	assert.Equal(t, 15.0, *ok.SizePct)

	// A failure row for the same event and a different model coexists and
	// carries the error fields.
	failed, err := svc.Create(ctx, &services.DecisionRecord{
		EventID:      "evt-decisions",
		ModelName:    "gemini",
		Decision:     string(models.DecisionIgnore),
		Confidence:   0,
		Payload:      map[string]interface{}{},
		Status:       string(models.DecisionStatusTimeout),
		ErrorCode:    "TIMEOUT",
		ErrorMessage: "model did not respond within 30s",
	})
	require.NoError(t, err)
	assert.Equal(t, "TIMEOUT", failed.ErrorCode)

	rows, err := svc.ForEvent(ctx, "evt-decisions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "chatgpt", rows[0].ModelName)

	publishable := services.OKDecisions(rows)
	require.Len(t, publishable, 1)
	assert.Equal(t, "chatgpt", publishable[0].ModelName)
}
