package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/dlqentry"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/publisher"
	"github.com/sigmapilot/lens/pkg/queue"
)

// DecisionBroadcaster fans a published decision out to subscribers.
// Implemented by the publisher hub.
type DecisionBroadcaster interface {
	BroadcastDecision(frame publisher.DecisionFrame)
}

// DLQService persists dead-letter rows and drives inspection, replay and
// resolution of failed messages.
type DLQService struct {
	client *ent.Client
	queue  *queue.Client
	hub    DecisionBroadcaster
}

// NewDLQService creates a new DLQService. hub may be nil when publish-stage
// replay is not needed (workers only record).
func NewDLQService(client *ent.Client, q *queue.Client, hub DecisionBroadcaster) *DLQService {
	return &DLQService{client: client, queue: q, hub: hub}
}

// Record persists one dead-letter row and finalizes the owning event as
// dlq. Implements queue.DLQRecorder.
func (s *DLQService) Record(ctx context.Context, rec *queue.DLQRecord) error {
	create := s.client.DLQEntry.Create().
		SetStage(string(rec.Stage)).
		SetReasonCode(rec.ReasonCode).
		SetErrorMessage(truncate(rec.ErrorMessage, 2000)).
		SetPayload(rec.Payload).
		SetRetryCount(rec.RetryCount)
	if rec.EventID != "" {
		create = create.SetEventID(rec.EventID)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create DLQ entry: %w", err)
	}

	if rec.EventID != "" {
		if err := s.client.Event.Update().
			Where(event.EventIDEQ(rec.EventID)).
			SetStatus(event.Status(models.EventStatusDLQ)).
			Exec(ctx); err != nil {
			slog.Error("Failed to mark event dlq", "event_id", rec.EventID, "error", err)
		}
		if err := addTimeline(ctx, s.client, rec.EventID, models.TimelineFailed,
			map[string]interface{}{"stage": string(rec.Stage), "reason": rec.ReasonCode}); err != nil {
			slog.Error("Failed to record FAILED timeline", "event_id", rec.EventID, "error", err)
		}
	}
	return nil
}

// DLQFilter narrows List. Stage accepts legacy aliases (enrichment,
// evaluation) alongside canonical names.
type DLQFilter struct {
	Stage      string
	ReasonCode string
	EventID    string
	Resolved   *bool
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

// List returns DLQ entries newest first plus the unpaged total.
func (s *DLQService) List(ctx context.Context, f DLQFilter) ([]*ent.DLQEntry, int, error) {
	q := s.client.DLQEntry.Query()

	if f.Stage != "" {
		q = q.Where(dlqentry.StageIn(stageFilterValues(f.Stage)...))
	}
	if f.ReasonCode != "" {
		q = q.Where(dlqentry.ReasonCodeEQ(f.ReasonCode))
	}
	if f.EventID != "" {
		q = q.Where(dlqentry.EventIDEQ(f.EventID))
	}
	if f.Resolved != nil {
		if *f.Resolved {
			q = q.Where(dlqentry.ResolvedAtNotNil())
		} else {
			q = q.Where(dlqentry.ResolvedAtIsNil())
		}
	}
	if f.Since != nil {
		q = q.Where(dlqentry.CreatedAtGTE(*f.Since))
	}
	if f.Until != nil {
		q = q.Where(dlqentry.CreatedAtLTE(*f.Until))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count DLQ entries: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	entries, err := q.
		Order(ent.Desc(dlqentry.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list DLQ entries: %w", err)
	}
	return entries, total, nil
}

// stageFilterValues expands a stage filter to cover rows written under
// legacy names.
func stageFilterValues(stage string) []string {
	switch stage {
	case "enrich", "enrichment":
		return []string{"enrich", "enrichment"}
	case "evaluate", "evaluation":
		return []string{"evaluate", "evaluation"}
	default:
		return []string{stage}
	}
}

// Get returns one entry by id.
func (s *DLQService) Get(ctx context.Context, id uuid.UUID) (*ent.DLQEntry, error) {
	entry, err := s.client.DLQEntry.Query().
		Where(dlqentry.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get DLQ entry: %w", err)
	}
	return entry, nil
}

// RetryResult reports a replay attempt.
type RetryResult struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	RetryCount int       `json:"retry_count"`
}

// Retry replays a dead-lettered message into the stage it failed at. The
// retry bookkeeping (count, last_retry_at) is persisted before routing so a
// failed replay is still visible.
func (s *DLQService) Retry(ctx context.Context, id uuid.UUID) (*RetryResult, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.ResolvedAt != nil {
		return nil, fmt.Errorf("cannot retry a resolved DLQ entry: %w", ErrAlreadyResolved)
	}

	retryCount := entry.RetryCount + 1
	if err := s.client.DLQEntry.UpdateOneID(id).
		SetRetryCount(retryCount).
		SetLastRetryAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update retry bookkeeping: %w", err)
	}

	stage, ok := models.CanonicalStage(entry.Stage)
	if !ok {
		return nil, NewValidationError("stage", fmt.Sprintf("unknown stage '%s'", entry.Stage))
	}

	eventID := ""
	if entry.EventID != nil {
		eventID = *entry.EventID
	}
	if eventID == "" {
		return nil, NewValidationError("event_id", fmt.Sprintf("no event_id for %s retry", stage))
	}

	switch stage {
	case models.StageEnqueue, models.StageEnrich:
		if err := s.reenqueue(ctx, queue.StreamPending, eventID, entry.Payload); err != nil {
			return nil, err
		}
	case models.StageEvaluate:
		if err := s.reenqueue(ctx, queue.StreamEnriched, eventID, entry.Payload); err != nil {
			return nil, err
		}
	case models.StagePublish:
		if err := s.republish(ctx, eventID, entry.Payload); err != nil {
			return nil, err
		}
	}

	return &RetryResult{
		ID:         id,
		Status:     "retrying",
		Message:    fmt.Sprintf("Entry re-enqueued for %s processing", stage),
		RetryCount: retryCount,
	}, nil
}

func (s *DLQService) reenqueue(ctx context.Context, stream, eventID string, payload map[string]interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if _, err := s.queue.Append(ctx, stream, queue.NewMessage(eventID, data)); err != nil {
		return err
	}
	return nil
}

// republish reconstructs the decision from the dead-lettered payload,
// persists it, finalizes the event as published and broadcasts it.
func (s *DLQService) republish(ctx context.Context, eventID string, payload map[string]interface{}) error {
	modelName := stringOr(payload, "model", "unknown")
	decisionValue := stringOr(payload, "decision", string(models.DecisionIgnore))
	confidence := floatOr(payload, "confidence", 0)
	reasons := stringsOr(payload, "reasons", []string{"retry"})

	if err := s.client.ModelDecision.Create().
		SetEventID(eventID).
		SetModelName(modelName).
		SetModelVersion(stringOr(payload, "model_version", "unknown")).
		SetDecision(decisionValue).
		SetConfidence(confidence).
		SetReasons(reasons).
		SetDecisionPayload(payload).
		SetLatencyMs(int(floatOr(payload, "latency_ms", 0))).
		SetStatus(string(models.DecisionStatusOK)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist replayed decision: %w", err)
	}

	now := time.Now().UTC()
	evt, err := s.client.Event.Query().Where(event.EventIDEQ(eventID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load event: %w", err)
	}

	if err := s.client.Event.UpdateOne(evt).
		SetStatus(event.Status(models.EventStatusPublished)).
		SetPublishedAt(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark event published: %w", err)
	}
	if err := addTimeline(ctx, s.client, eventID, models.TimelinePublished, map[string]interface{}{
		"model":    modelName,
		"decision": decisionValue,
		"source":   "dlq_retry",
	}); err != nil {
		slog.Error("Failed to record PUBLISHED timeline", "event_id", eventID, "error", err)
	}

	if s.hub != nil {
		s.hub.BroadcastDecision(publisher.DecisionFrame{
			EventID:     eventID,
			Symbol:      evt.Symbol,
			EventType:   string(evt.EventType),
			Model:       modelName,
			Decision:    payload,
			PublishedAt: now,
		})
	}
	return nil
}

// ResolveResult reports a resolution.
type ResolveResult struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// Resolve closes a DLQ entry with an operator note.
func (s *DLQService) Resolve(ctx context.Context, id uuid.UUID, note string) (*ResolveResult, error) {
	if len(note) < 1 || len(note) > 1000 {
		return nil, NewValidationError("resolution_note", "must be between 1 and 1000 characters")
	}

	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.ResolvedAt != nil {
		return nil, ErrAlreadyResolved
	}

	resolvedAt := time.Now().UTC()
	if err := s.client.DLQEntry.UpdateOneID(id).
		SetResolvedAt(resolvedAt).
		SetResolutionNote(note).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to resolve DLQ entry: %w", err)
	}

	return &ResolveResult{ID: id, Status: "resolved", ResolvedAt: resolvedAt}, nil
}

func stringOr(m map[string]interface{}, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func floatOr(m map[string]interface{}, key string, fallback float64) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return fallback
}

func stringsOr(m map[string]interface{}, key string, fallback []string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return fallback
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
