package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ModelDecision holds the schema definition for the ModelDecision entity —
// one row per (event, model) evaluation attempt, failures included.
// Invariant: status=ok rows carry a valid decision and confidence in [0,1];
// every other status carries the fallback (IGNORE, confidence 0).
type ModelDecision struct {
	ent.Schema
}

// Fields of the ModelDecision.
func (ModelDecision) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("event_id").
			MaxLen(36).
			Immutable(),
		field.String("model_name").
			MaxLen(50).
			Immutable(),
		field.String("model_version").
			MaxLen(100).
			Optional().
			Immutable(),
		field.String("prompt_version").
			MaxLen(100).
			Optional().
			Immutable(),
		field.String("prompt_hash").
			MaxLen(64).
			Optional().
			Immutable().
			Comment("SHA-256 of the rendered wrapper+core, for reproducibility"),
		field.String("decision").
			MaxLen(30).
			Immutable(),
		field.Float("confidence").
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}).
			Immutable(),
		field.JSON("entry_plan", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("risk_plan", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Float("size_pct").
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,2)"}).
			Optional().
			Nillable().
			Immutable(),
		field.JSON("reasons", []string{}).
			Optional().
			Immutable(),
		field.JSON("decision_payload", map[string]interface{}{}).
			Immutable(),
		field.Int("latency_ms").
			Optional().
			Immutable(),
		field.Int("tokens_in").
			Optional().
			Immutable(),
		field.Int("tokens_out").
			Optional().
			Immutable(),
		field.String("status").
			MaxLen(30).
			Default("ok").
			Immutable(),
		field.String("error_code").
			MaxLen(50).
			Optional().
			Immutable(),
		field.Text("error_message").
			Optional().
			Immutable(),
		field.Text("raw_response").
			Optional().
			Immutable().
			Comment("Raw provider text, stored only on error"),
		field.Time("evaluated_at").
			Default(time.Now).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ModelDecision.
func (ModelDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("model_name"),
		index.Fields("created_at"),
		index.Fields("model_name", "status"),
		index.Fields("event_id", "model_name"),
	}
}
