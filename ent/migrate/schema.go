// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DlqEntriesColumns holds the columns for the "dlq_entries" table.
	DlqEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "event_id", Type: field.TypeString, Nullable: true, Size: 36},
		{Name: "stage", Type: field.TypeString, Size: 20},
		{Name: "reason_code", Type: field.TypeString, Size: 50},
		{Name: "error_message", Type: field.TypeString, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "resolution_note", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DlqEntriesTable holds the schema information for the "dlq_entries" table.
	DlqEntriesTable = &schema.Table{
		Name:       "dlq_entries",
		Columns:    DlqEntriesColumns,
		PrimaryKey: []*schema.Column{DlqEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dlqentry_event_id",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[1]},
			},
			{
				Name:    "dlqentry_stage",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[2]},
			},
			{
				Name:    "dlqentry_reason_code",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[3]},
			},
			{
				Name:    "dlqentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[10]},
			},
			{
				Name:    "dlqentry_stage_reason_code",
				Unique:  false,
				Columns: []*schema.Column{DlqEntriesColumns[2], DlqEntriesColumns[3]},
			},
		},
	}
	// EnrichedEventsColumns holds the columns for the "enriched_events" table.
	EnrichedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "event_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "feature_profile", Type: field.TypeString, Size: 50},
		{Name: "provider", Type: field.TypeString, Size: 50, Default: "hyperliquid"},
		{Name: "provider_version", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "market_data", Type: field.TypeJSON},
		{Name: "ta_data", Type: field.TypeJSON},
		{Name: "levels_data", Type: field.TypeJSON, Nullable: true},
		{Name: "derivs_data", Type: field.TypeJSON, Nullable: true},
		{Name: "constraints", Type: field.TypeJSON, Nullable: true},
		{Name: "data_timestamps", Type: field.TypeJSON},
		{Name: "quality_flags", Type: field.TypeJSON, Nullable: true},
		{Name: "enriched_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "enrichment_duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EnrichedEventsTable holds the schema information for the "enriched_events" table.
	EnrichedEventsTable = &schema.Table{
		Name:       "enriched_events",
		Columns:    EnrichedEventsColumns,
		PrimaryKey: []*schema.Column{EnrichedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "enrichedevent_feature_profile",
				Unique:  false,
				Columns: []*schema.Column{EnrichedEventsColumns[2]},
			},
			{
				Name:    "enrichedevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{EnrichedEventsColumns[14]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "event_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"OPEN_SIGNAL", "CLOSE_SIGNAL"}},
		{Name: "symbol", Type: field.TypeString, Size: 20},
		{Name: "signal_direction", Type: field.TypeEnum, Enums: []string{"long", "short", "close_long", "close_short"}},
		{Name: "entry_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "size", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "liquidation_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(20,8)"}},
		{Name: "ts_utc", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString, Size: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "enriched", "enrichment_partial", "evaluated", "published", "failed", "rejected", "dlq"}, Default: "queued"},
		{Name: "feature_profile", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "enriched_at", Type: field.TypeTime, Nullable: true},
		{Name: "evaluated_at", Type: field.TypeTime, Nullable: true},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "raw_payload", Type: field.TypeJSON},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_symbol",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
			{
				Name:    "event_status",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[11]},
			},
			{
				Name:    "event_received_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[13]},
			},
			{
				Name:    "event_source",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[10]},
			},
			{
				Name:    "event_symbol_received_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4], EventsColumns[13]},
			},
		},
	}
	// LlmConfigsColumns holds the columns for the "llm_configs" table.
	LlmConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "model_name", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "provider", Type: field.TypeString, Size: 20},
		{Name: "api_key", Type: field.TypeString, Size: 2147483647},
		{Name: "model_id", Type: field.TypeString, Size: 100},
		{Name: "timeout_ms", Type: field.TypeInt, Default: 30000},
		{Name: "max_tokens", Type: field.TypeInt, Default: 1000},
		{Name: "prompt_path", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "validation_status", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "last_validated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LlmConfigsTable holds the schema information for the "llm_configs" table.
	LlmConfigsTable = &schema.Table{
		Name:       "llm_configs",
		Columns:    LlmConfigsColumns,
		PrimaryKey: []*schema.Column{LlmConfigsColumns[0]},
	}
	// ModelDecisionsColumns holds the columns for the "model_decisions" table.
	ModelDecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "event_id", Type: field.TypeString, Size: 36},
		{Name: "model_name", Type: field.TypeString, Size: 50},
		{Name: "model_version", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "prompt_version", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "prompt_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "decision", Type: field.TypeString, Size: 30},
		{Name: "confidence", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(4,3)"}},
		{Name: "entry_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "size_pct", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "decision_payload", Type: field.TypeJSON},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_in", Type: field.TypeInt, Nullable: true},
		{Name: "tokens_out", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString, Size: 30, Default: "ok"},
		{Name: "error_code", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "evaluated_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ModelDecisionsTable holds the schema information for the "model_decisions" table.
	ModelDecisionsTable = &schema.Table{
		Name:       "model_decisions",
		Columns:    ModelDecisionsColumns,
		PrimaryKey: []*schema.Column{ModelDecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modeldecision_event_id",
				Unique:  false,
				Columns: []*schema.Column{ModelDecisionsColumns[1]},
			},
			{
				Name:    "modeldecision_model_name",
				Unique:  false,
				Columns: []*schema.Column{ModelDecisionsColumns[2]},
			},
			{
				Name:    "modeldecision_created_at",
				Unique:  false,
				Columns: []*schema.Column{ModelDecisionsColumns[21]},
			},
			{
				Name:    "modeldecision_model_name_status",
				Unique:  false,
				Columns: []*schema.Column{ModelDecisionsColumns[2], ModelDecisionsColumns[16]},
			},
			{
				Name:    "modeldecision_event_id_model_name",
				Unique:  false,
				Columns: []*schema.Column{ModelDecisionsColumns[1], ModelDecisionsColumns[2]},
			},
		},
	}
	// ProcessingTimelinesColumns holds the columns for the "processing_timelines" table.
	ProcessingTimelinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "event_id", Type: field.TypeString, Size: 36},
		{Name: "status", Type: field.TypeString, Size: 30},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// ProcessingTimelinesTable holds the schema information for the "processing_timelines" table.
	ProcessingTimelinesTable = &schema.Table{
		Name:       "processing_timelines",
		Columns:    ProcessingTimelinesColumns,
		PrimaryKey: []*schema.Column{ProcessingTimelinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processingtimeline_event_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingTimelinesColumns[1], ProcessingTimelinesColumns[4]},
			},
		},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "version", Type: field.TypeString, Size: 20},
		{Name: "prompt_type", Type: field.TypeEnum, Enums: []string{"core", "wrapper"}},
		{Name: "model_name", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "content_hash", Type: field.TypeString, Size: 64},
		{Name: "created_by", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_name_version",
				Unique:  true,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[2]},
			},
			{
				Name:    "prompt_prompt_type",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[3]},
			},
			{
				Name:    "prompt_model_name",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DlqEntriesTable,
		EnrichedEventsTable,
		EventsTable,
		LlmConfigsTable,
		ModelDecisionsTable,
		ProcessingTimelinesTable,
		PromptsTable,
	}
)

func init() {
}
