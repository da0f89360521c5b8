package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/ent/modeldecision"
	"github.com/sigmapilot/lens/pkg/models"
)

// DecisionService persists and queries per-model evaluation rows.
type DecisionService struct {
	client *ent.Client
}

// NewDecisionService creates a new DecisionService.
func NewDecisionService(client *ent.Client) *DecisionService {
	return &DecisionService{client: client}
}

// DecisionRecord is everything one evaluation attempt writes. Failure rows
// carry the fallback decision plus the error fields.
type DecisionRecord struct {
	EventID       string
	ModelName     string
	ModelVersion  string
	PromptVersion string
	PromptHash    string
	Decision      string
	Confidence    float64
	EntryPlan     map[string]interface{}
	RiskPlan      map[string]interface{}
	SizePct       *float64
	Reasons       []string
	Payload       map[string]interface{}
	LatencyMS     int
	TokensIn      int
	TokensOut     int
	Status        string
	ErrorCode     string
	ErrorMessage  string
	RawResponse   string
}

// Create persists one decision row.
func (s *DecisionService) Create(ctx context.Context, rec *DecisionRecord) (*ent.ModelDecision, error) {
	create := s.client.ModelDecision.Create().
		SetEventID(rec.EventID).
		SetModelName(rec.ModelName).
		SetDecision(rec.Decision).
		SetConfidence(rec.Confidence).
		SetDecisionPayload(rec.Payload).
		SetStatus(rec.Status).
		SetLatencyMs(rec.LatencyMS).
		SetTokensIn(rec.TokensIn).
		SetTokensOut(rec.TokensOut).
		SetEvaluatedAt(time.Now().UTC())

	if rec.ModelVersion != "" {
		create = create.SetModelVersion(rec.ModelVersion)
	}
	if rec.PromptVersion != "" {
		create = create.SetPromptVersion(rec.PromptVersion)
	}
	if rec.PromptHash != "" {
		create = create.SetPromptHash(rec.PromptHash)
	}
	if rec.EntryPlan != nil {
		create = create.SetEntryPlan(rec.EntryPlan)
	}
	if rec.RiskPlan != nil {
		create = create.SetRiskPlan(rec.RiskPlan)
	}
	if rec.SizePct != nil {
		create = create.SetSizePct(*rec.SizePct)
	}
	if rec.Reasons != nil {
		create = create.SetReasons(rec.Reasons)
	}
	if rec.ErrorCode != "" {
		create = create.SetErrorCode(rec.ErrorCode)
	}
	if rec.ErrorMessage != "" {
		create = create.SetErrorMessage(rec.ErrorMessage)
	}
	if rec.RawResponse != "" {
		create = create.SetRawResponse(rec.RawResponse)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}
	return row, nil
}

// DecisionFilter narrows List.
type DecisionFilter struct {
	Model         string
	Symbol        string
	EventType     string
	Decision      string
	MinConfidence *float64
	Since         *time.Time
	Until         *time.Time
	Limit         int
	Offset        int
}

// List returns decisions ordered created_at descending plus the unpaged
// total. Symbol and event_type filter through the owning events.
func (s *DecisionService) List(ctx context.Context, f DecisionFilter) ([]*ent.ModelDecision, int, error) {
	q := s.client.ModelDecision.Query()

	if f.Model != "" {
		q = q.Where(modeldecision.ModelNameEQ(f.Model))
	}
	if f.Decision != "" {
		q = q.Where(modeldecision.DecisionEQ(f.Decision))
	}
	if f.MinConfidence != nil {
		q = q.Where(modeldecision.ConfidenceGTE(*f.MinConfidence))
	}
	if f.Since != nil {
		q = q.Where(modeldecision.CreatedAtGTE(*f.Since))
	}
	if f.Until != nil {
		q = q.Where(modeldecision.CreatedAtLTE(*f.Until))
	}

	if f.Symbol != "" || f.EventType != "" {
		eq := s.client.Event.Query()
		if f.Symbol != "" {
			eq = eq.Where(event.SymbolEQ(strings.ToUpper(f.Symbol)))
		}
		if f.EventType != "" {
			eq = eq.Where(event.EventTypeEQ(event.EventType(f.EventType)))
		}
		eventIDs, err := eq.Select(event.FieldEventID).Strings(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to resolve event filter: %w", err)
		}
		if len(eventIDs) == 0 {
			return nil, 0, nil
		}
		q = q.Where(modeldecision.EventIDIn(eventIDs...))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count decisions: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	decisions, err := q.
		Order(ent.Desc(modeldecision.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, total, nil
}

// Get returns one decision row by its database id.
func (s *DecisionService) Get(ctx context.Context, id uuid.UUID) (*ent.ModelDecision, error) {
	row, err := s.client.ModelDecision.Query().
		Where(modeldecision.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get decision: %w", err)
	}
	return row, nil
}

// ForEvent returns all decision rows for one event, oldest first.
func (s *DecisionService) ForEvent(ctx context.Context, eventID string) ([]*ent.ModelDecision, error) {
	rows, err := s.client.ModelDecision.Query().
		Where(modeldecision.EventIDEQ(eventID)).
		Order(ent.Asc(modeldecision.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list event decisions: %w", err)
	}
	return rows, nil
}

// OKDecisions filters rows to status ok, the publishable subset.
func OKDecisions(rows []*ent.ModelDecision) []*ent.ModelDecision {
	out := make([]*ent.ModelDecision, 0, len(rows))
	for _, r := range rows {
		if r.Status == string(models.DecisionStatusOK) {
			out = append(out, r)
		}
	}
	return out
}
