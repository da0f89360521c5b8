package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Prompt holds the schema definition for the Prompt entity — a versioned
// prompt record. Kind `core` is the shared decision body; kind `wrapper` is
// the per-model framing that substitutes {core_prompt} with a rendered core.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("name").
			MaxLen(100),
		field.String("version").
			MaxLen(20),
		field.Enum("prompt_type").
			Values("core", "wrapper"),
		field.String("model_name").
			MaxLen(50).
			Optional().
			Comment("Set for wrappers only"),
		field.Text("content"),
		field.Text("description").
			Optional(),
		field.Bool("is_active").
			Default(true),
		field.String("content_hash").
			MaxLen(64).
			Comment("SHA-256 hex of content"),
		field.String("created_by").
			MaxLen(100).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "version").
			Unique(),
		index.Fields("prompt_type"),
		index.Fields("model_name"),
	}
}
