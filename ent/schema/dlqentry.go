package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// DLQEntry holds the schema definition for the DLQEntry entity — one row per
// processing attempt that exhausted its retries, carrying the full original
// payload for inspection and stage-aware replay.
type DLQEntry struct {
	ent.Schema
}

// Fields of the DLQEntry.
func (DLQEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("event_id").
			MaxLen(36).
			Optional().
			Nillable().
			Comment("Absent only for ingress failures that never got an id assigned"),
		field.String("stage").
			MaxLen(20).
			Comment("enqueue, enrich, evaluate or publish"),
		field.String("reason_code").
			MaxLen(50),
		field.Text("error_message"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Full original message payload for replay"),
		field.Int("retry_count").
			Default(0),
		field.Time("last_retry_at").
			Optional().
			Nillable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
		field.Text("resolution_note").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DLQEntry.
//
// The partial index on unresolved entries (resolved_at IS NULL) cannot be
// expressed here; it is created by the SQL migrations.
func (DLQEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id"),
		index.Fields("stage"),
		index.Fields("reason_code"),
		index.Fields("created_at"),
		index.Fields("stage", "reason_code"),
	}
}
