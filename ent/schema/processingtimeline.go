package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProcessingTimeline holds the schema definition for the ProcessingTimeline
// entity — the append-only log of named state transitions per event. This is
// the authoritative processing history for debugging.
type ProcessingTimeline struct {
	ent.Schema
}

// Fields of the ProcessingTimeline.
func (ProcessingTimeline) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("event_id").
			MaxLen(36).
			Immutable(),
		field.String("status").
			MaxLen(30).
			Immutable().
			Comment("Transition name: RECEIVED, ENQUEUED, ENRICHED, EVALUATED, PUBLISHED, REJECTED, FAILED"),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProcessingTimeline.
func (ProcessingTimeline) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "occurred_at"),
	}
}
