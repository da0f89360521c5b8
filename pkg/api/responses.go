package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/pkg/registry"
)

// listResponse is the shared paging envelope for collection endpoints.
type listResponse struct {
	Items  interface{} `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// EventResponse is one event row as returned by the events endpoints.
type EventResponse struct {
	EventID          string           `json:"event_id"`
	EventType        string           `json:"event_type"`
	Symbol           string           `json:"symbol"`
	SignalDirection  string           `json:"signal_direction"`
	EntryPrice       decimal.Decimal  `json:"entry_price"`
	Size             decimal.Decimal  `json:"size"`
	LiquidationPrice *decimal.Decimal `json:"liquidation_price,omitempty"`
	TsUTC            time.Time        `json:"ts_utc"`
	Source           string           `json:"source"`
	Status           string           `json:"status"`
	FeatureProfile   string           `json:"feature_profile,omitempty"`
	ReceivedAt       time.Time        `json:"received_at"`
	EnrichedAt       *time.Time       `json:"enriched_at,omitempty"`
	EvaluatedAt      *time.Time       `json:"evaluated_at,omitempty"`
	PublishedAt      *time.Time       `json:"published_at,omitempty"`
}

func newEventResponse(evt *ent.Event) EventResponse {
	return EventResponse{
		EventID:          evt.EventID,
		EventType:        string(evt.EventType),
		Symbol:           evt.Symbol,
		SignalDirection:  string(evt.SignalDirection),
		EntryPrice:       evt.EntryPrice,
		Size:             evt.Size,
		LiquidationPrice: evt.LiquidationPrice,
		TsUTC:            evt.TsUtc,
		Source:           evt.Source,
		Status:           string(evt.Status),
		FeatureProfile:   evt.FeatureProfile,
		ReceivedAt:       evt.ReceivedAt,
		EnrichedAt:       evt.EnrichedAt,
		EvaluatedAt:      evt.EvaluatedAt,
		PublishedAt:      evt.PublishedAt,
	}
}

// TimelineEntry is one processing transition in an event detail.
type TimelineEntry struct {
	Status     string                 `json:"status"`
	Details    map[string]interface{} `json:"details,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// EnrichedSummary is the enrichment digest embedded in an event detail.
type EnrichedSummary struct {
	FeatureProfile string                 `json:"feature_profile"`
	QualityFlags   map[string]interface{} `json:"quality_flags,omitempty"`
}

// DecisionSummary is the per-model digest embedded in an event detail.
type DecisionSummary struct {
	Model      string  `json:"model"`
	Decision   string  `json:"decision"`
	Confidence float64 `json:"confidence"`
}

// EventDetailResponse is returned by GET /api/v1/events/:id.
type EventDetailResponse struct {
	EventResponse
	Timeline  []TimelineEntry   `json:"timeline"`
	Enriched  *EnrichedSummary  `json:"enriched,omitempty"`
	Decisions []DecisionSummary `json:"decisions"`
}

// EventStatusResponse is returned by GET /api/v1/events/:id/status.
type EventStatusResponse struct {
	EventID     string     `json:"event_id"`
	Status      string     `json:"status"`
	Stage       string     `json:"stage"`
	DurationMS  int64      `json:"duration_ms"`
	ReceivedAt  time.Time  `json:"received_at"`
	EnrichedAt  *time.Time `json:"enriched_at,omitempty"`
	EvaluatedAt *time.Time `json:"evaluated_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// DecisionResponse is the full decision row.
type DecisionResponse struct {
	ID              uuid.UUID              `json:"id"`
	EventID         string                 `json:"event_id"`
	ModelName       string                 `json:"model_name"`
	ModelVersion    string                 `json:"model_version,omitempty"`
	PromptVersion   string                 `json:"prompt_version,omitempty"`
	PromptHash      string                 `json:"prompt_hash,omitempty"`
	Decision        string                 `json:"decision"`
	Confidence      float64                `json:"confidence"`
	EntryPlan       map[string]interface{} `json:"entry_plan,omitempty"`
	RiskPlan        map[string]interface{} `json:"risk_plan,omitempty"`
	SizePct         *float64               `json:"size_pct,omitempty"`
	Reasons         []string               `json:"reasons,omitempty"`
	DecisionPayload map[string]interface{} `json:"decision_payload"`
	LatencyMS       int                    `json:"latency_ms"`
	TokensIn        int                    `json:"tokens_in"`
	TokensOut       int                    `json:"tokens_out"`
	Status          string                 `json:"status"`
	ErrorCode       string                 `json:"error_code,omitempty"`
	ErrorMessage    string                 `json:"error_message,omitempty"`
	EvaluatedAt     time.Time              `json:"evaluated_at"`
	CreatedAt       time.Time              `json:"created_at"`
}

func newDecisionResponse(row *ent.ModelDecision) DecisionResponse {
	return DecisionResponse{
		ID:              row.ID,
		EventID:         row.EventID,
		ModelName:       row.ModelName,
		ModelVersion:    row.ModelVersion,
		PromptVersion:   row.PromptVersion,
		PromptHash:      row.PromptHash,
		Decision:        row.Decision,
		Confidence:      row.Confidence,
		EntryPlan:       row.EntryPlan,
		RiskPlan:        row.RiskPlan,
		SizePct:         row.SizePct,
		Reasons:         row.Reasons,
		DecisionPayload: row.DecisionPayload,
		LatencyMS:       row.LatencyMs,
		TokensIn:        row.TokensIn,
		TokensOut:       row.TokensOut,
		Status:          row.Status,
		ErrorCode:       row.ErrorCode,
		ErrorMessage:    row.ErrorMessage,
		EvaluatedAt:     row.EvaluatedAt,
		CreatedAt:       row.CreatedAt,
	}
}

// DLQEntryResponse is one dead-letter row. Payload is included only on the
// detail endpoint.
type DLQEntryResponse struct {
	ID             uuid.UUID              `json:"id"`
	EventID        *string                `json:"event_id,omitempty"`
	Stage          string                 `json:"stage"`
	ReasonCode     string                 `json:"reason_code"`
	ErrorMessage   string                 `json:"error_message"`
	Payload        map[string]interface{} `json:"payload,omitempty"`
	RetryCount     int                    `json:"retry_count"`
	LastRetryAt    *time.Time             `json:"last_retry_at,omitempty"`
	ResolvedAt     *time.Time             `json:"resolved_at,omitempty"`
	ResolutionNote string                 `json:"resolution_note,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func newDLQEntryResponse(row *ent.DLQEntry, withPayload bool) DLQEntryResponse {
	resp := DLQEntryResponse{
		ID:             row.ID,
		EventID:        row.EventID,
		Stage:          row.Stage,
		ReasonCode:     row.ReasonCode,
		ErrorMessage:   row.ErrorMessage,
		RetryCount:     row.RetryCount,
		LastRetryAt:    row.LastRetryAt,
		ResolvedAt:     row.ResolvedAt,
		ResolutionNote: row.ResolutionNote,
		CreatedAt:      row.CreatedAt,
	}
	if withPayload {
		resp.Payload = row.Payload
	}
	return resp
}

// LLMConfigResponse is one llm_configs row with the API key masked.
type LLMConfigResponse struct {
	ModelName        string     `json:"model_name"`
	Provider         string     `json:"provider"`
	APIKey           string     `json:"api_key"`
	ModelID          string     `json:"model_id"`
	TimeoutMS        int        `json:"timeout_ms"`
	MaxTokens        int        `json:"max_tokens"`
	Enabled          bool       `json:"enabled"`
	ValidationStatus string     `json:"validation_status,omitempty"`
	LastValidatedAt  *time.Time `json:"last_validated_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func newLLMConfigResponse(row *ent.LLMConfig) LLMConfigResponse {
	return LLMConfigResponse{
		ModelName:        row.ModelName,
		Provider:         row.Provider,
		APIKey:           registry.MaskAPIKey(row.APIKey),
		ModelID:          row.ModelID,
		TimeoutMS:        row.TimeoutMs,
		MaxTokens:        row.MaxTokens,
		Enabled:          row.Enabled,
		ValidationStatus: row.ValidationStatus,
		LastValidatedAt:  row.LastValidatedAt,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

// PromptResponse is one prompts row. Content is included only on the detail
// endpoint.
type PromptResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	PromptType  string    `json:"prompt_type"`
	ModelName   string    `json:"model_name,omitempty"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	ContentHash string    `json:"content_hash"`
	CreatedBy   string    `json:"created_by,omitempty"`
	Content     string    `json:"content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newPromptResponse(row *ent.Prompt, withContent bool) PromptResponse {
	resp := PromptResponse{
		ID:          row.ID,
		Name:        row.Name,
		Version:     row.Version,
		PromptType:  string(row.PromptType),
		ModelName:   row.ModelName,
		Description: row.Description,
		IsActive:    row.IsActive,
		ContentHash: row.ContentHash,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if withContent {
		resp.Content = row.Content
	}
	return resp
}
