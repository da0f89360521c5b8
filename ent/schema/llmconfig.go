package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// LLMConfig holds the schema definition for the LLMConfig entity — the
// runtime-mutable credential and parameter record for one AI model.
// Operators manage these rows through the admin endpoints; workers read
// them through the TTL-cached registry.
type LLMConfig struct {
	ent.Schema
}

// Fields of the LLMConfig.
func (LLMConfig) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.String("model_name").
			MaxLen(50).
			Unique(),
		field.Bool("enabled").
			Default(true),
		field.String("provider").
			MaxLen(20),
		field.Text("api_key").
			Sensitive().
			Comment("Secret — masked to **** + last 4 on every read surface"),
		field.String("model_id").
			MaxLen(100),
		field.Int("timeout_ms").
			Default(30000),
		field.Int("max_tokens").
			Default(1000),
		field.String("prompt_path").
			MaxLen(255).
			Optional(),
		field.String("validation_status").
			MaxLen(20).
			Optional().
			Comment("ok, invalid_key, rate_limited or error — set by the key test endpoint"),
		field.Time("last_validated_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
