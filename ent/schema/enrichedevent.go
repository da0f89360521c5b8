package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// EnrichedEvent holds the schema definition for the EnrichedEvent entity —
// the one-to-one market-data snapshot attached to a successfully enriched
// Event. Created by the enrichment worker, immutable thereafter.
type EnrichedEvent struct {
	ent.Schema
}

// Fields of the EnrichedEvent.
func (EnrichedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("event_id").
			MaxLen(36).
			Unique().
			Immutable(),
		field.String("feature_profile").
			MaxLen(50).
			Immutable(),
		field.String("provider").
			MaxLen(50).
			Default("hyperliquid").
			Immutable(),
		field.String("provider_version").
			MaxLen(50).
			Optional().
			Immutable(),
		field.JSON("market_data", map[string]interface{}{}).
			Immutable(),
		field.JSON("ta_data", map[string]interface{}{}).
			Immutable().
			Comment("Indicator bundle keyed by timeframe"),
		field.JSON("levels_data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("derivs_data", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("constraints", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("data_timestamps", map[string]interface{}{}).
			Default(func() map[string]interface{} { return map[string]interface{}{} }).
			Immutable().
			Comment("Per-source timestamps used for staleness accounting"),
		field.JSON("quality_flags", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("enriched_payload", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Compact shape handed to adapters"),
		field.Int("enrichment_duration_ms").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the EnrichedEvent.
func (EnrichedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("feature_profile"),
		index.Fields("created_at"),
	}
}
