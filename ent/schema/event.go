package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event holds the schema definition for the Event entity — the canonical
// ingress record of a submitted trading signal. Exactly one row exists per
// event_id and per non-null idempotency_key. Rows are mutated only by the
// stage worker that owns the current status and are never deleted
// (retention is swept externally).
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("event_id").
			MaxLen(36).
			Unique().
			Immutable().
			Comment("Externally unique signal identifier"),
		field.String("idempotency_key").
			MaxLen(255).
			Optional().
			Nillable().
			Unique().
			Immutable().
			Comment("X-Idempotency-Key header value — duplicate submissions return the original event_id"),
		field.Enum("event_type").
			Values("OPEN_SIGNAL", "CLOSE_SIGNAL").
			Immutable(),
		field.String("symbol").
			MaxLen(20).
			Immutable(),
		field.Enum("signal_direction").
			Values("long", "short", "close_long", "close_short").
			Immutable(),
		field.Float("entry_price").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(20,8)"}).
			Immutable(),
		field.Float("size").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(20,8)"}).
			Immutable(),
		field.Float("liquidation_price").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(20,8)"}).
			Optional().
			Nillable().
			Immutable(),
		field.Time("ts_utc").
			Immutable().
			Comment("Signal timestamp as reported by the source"),
		field.String("source").
			MaxLen(100).
			Immutable(),
		field.Enum("status").
			Values(
				"queued",
				"enriched",
				"enrichment_partial",
				"evaluated",
				"published",
				"failed",
				"rejected",
				"dlq",
			).
			Default("queued"),
		field.String("feature_profile").
			MaxLen(50).
			Optional(),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Time("enriched_at").
			Optional().
			Nillable(),
		field.Time("evaluated_at").
			Optional().
			Nillable(),
		field.Time("published_at").
			Optional().
			Nillable(),
		field.JSON("raw_payload", map[string]interface{}{}).
			Comment("Submitted body stored verbatim for audit"),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("symbol"),
		index.Fields("status"),
		index.Fields("received_at"),
		index.Fields("source"),
		index.Fields("symbol", "received_at"),
	}
}
