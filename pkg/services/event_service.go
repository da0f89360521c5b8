package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/enrichedevent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/ent/processingtimeline"
	"github.com/sigmapilot/lens/pkg/models"
)

// EventService answers event queries and applies the status transitions the
// workers request.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// EventFilter narrows List. Zero values mean "no filter".
type EventFilter struct {
	Symbol    string
	EventType string
	Source    string
	Status    string
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Offset    int
}

// List returns events ordered received_at descending plus the unpaged total.
func (s *EventService) List(ctx context.Context, f EventFilter) ([]*ent.Event, int, error) {
	q := s.client.Event.Query()

	if f.Symbol != "" {
		q = q.Where(event.SymbolEQ(strings.ToUpper(f.Symbol)))
	}
	if f.EventType != "" {
		q = q.Where(event.EventTypeEQ(event.EventType(f.EventType)))
	}
	if f.Source != "" {
		q = q.Where(event.SourceEQ(f.Source))
	}
	if f.Status != "" {
		q = q.Where(event.StatusEQ(event.Status(f.Status)))
	}
	if f.Since != nil {
		q = q.Where(event.ReceivedAtGTE(*f.Since))
	}
	if f.Until != nil {
		q = q.Where(event.ReceivedAtLTE(*f.Until))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	events, err := q.
		Order(ent.Desc(event.FieldReceivedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}

// Get returns one event by its external event_id.
func (s *EventService) Get(ctx context.Context, eventID string) (*ent.Event, error) {
	evt, err := s.client.Event.Query().
		Where(event.EventIDEQ(eventID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return evt, nil
}

// Timeline returns the event's processing timeline in append order.
func (s *EventService) Timeline(ctx context.Context, eventID string) ([]*ent.ProcessingTimeline, error) {
	entries, err := s.client.ProcessingTimeline.Query().
		Where(processingtimeline.EventIDEQ(eventID)).
		Order(ent.Asc(processingtimeline.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	return entries, nil
}

// GetEnriched returns the enrichment row, or nil when enrichment has not
// completed for the event.
func (s *EventService) GetEnriched(ctx context.Context, eventID string) (*ent.EnrichedEvent, error) {
	row, err := s.client.EnrichedEvent.Query().
		Where(enrichedevent.EventIDEQ(eventID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enriched event: %w", err)
	}
	return row, nil
}

// EnrichedRecord is everything the enrichment worker persists for one event.
type EnrichedRecord struct {
	EventID         string
	FeatureProfile  string
	Provider        string
	MarketData      map[string]interface{}
	TAData          map[string]interface{}
	LevelsData      map[string]interface{}
	DerivsData      map[string]interface{}
	Constraints     map[string]interface{}
	DataTimestamps  map[string]interface{}
	QualityFlags    map[string]interface{}
	EnrichedPayload map[string]interface{}
	DurationMS      int
}

// SaveEnriched persists the one-to-one enrichment row for an event.
func (s *EventService) SaveEnriched(ctx context.Context, rec *EnrichedRecord) (*ent.EnrichedEvent, error) {
	create := s.client.EnrichedEvent.Create().
		SetEventID(rec.EventID).
		SetFeatureProfile(rec.FeatureProfile).
		SetMarketData(rec.MarketData).
		SetTaData(rec.TAData).
		SetDataTimestamps(rec.DataTimestamps).
		SetEnrichmentDurationMs(rec.DurationMS)

	if rec.Provider != "" {
		create = create.SetProvider(rec.Provider)
	}
	if rec.LevelsData != nil {
		create = create.SetLevelsData(rec.LevelsData)
	}
	if rec.DerivsData != nil {
		create = create.SetDerivsData(rec.DerivsData)
	}
	if rec.Constraints != nil {
		create = create.SetConstraints(rec.Constraints)
	}
	if rec.QualityFlags != nil {
		create = create.SetQualityFlags(rec.QualityFlags)
	}
	if rec.EnrichedPayload != nil {
		create = create.SetEnrichedPayload(rec.EnrichedPayload)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save enriched event: %w", err)
	}
	return row, nil
}

// SetStatus transitions an event's status.
func (s *EventService) SetStatus(ctx context.Context, eventID string, status models.EventStatus) error {
	n, err := s.client.Event.Update().
		Where(event.EventIDEQ(eventID)).
		SetStatus(event.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkEnriched sets the post-enrichment status and stamps enriched_at.
// A redelivered message never regresses an event that already moved past
// enrichment: the update is a no-op then.
func (s *EventService) MarkEnriched(ctx context.Context, eventID string, status models.EventStatus) error {
	n, err := s.client.Event.Update().
		Where(event.EventIDEQ(eventID),
			event.StatusNotIn(
				event.Status(models.EventStatusEvaluated),
				event.Status(models.EventStatusPublished))).
		SetStatus(event.Status(status)).
		SetEnrichedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark event enriched: %w", err)
	}
	if n == 0 {
		return s.exists(ctx, eventID)
	}
	return nil
}

// MarkEvaluated sets status evaluated and stamps evaluated_at. No-op on an
// already published event.
func (s *EventService) MarkEvaluated(ctx context.Context, eventID string) error {
	n, err := s.client.Event.Update().
		Where(event.EventIDEQ(eventID),
			event.StatusNEQ(event.Status(models.EventStatusPublished))).
		SetStatus(event.Status(models.EventStatusEvaluated)).
		SetEvaluatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark event evaluated: %w", err)
	}
	if n == 0 {
		return s.exists(ctx, eventID)
	}
	return nil
}

// exists distinguishes a skipped conditional update from a missing event.
func (s *EventService) exists(ctx context.Context, eventID string) error {
	ok, err := s.client.Event.Query().Where(event.EventIDEQ(eventID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// MarkPublished sets status published and stamps published_at.
func (s *EventService) MarkPublished(ctx context.Context, eventID string) error {
	n, err := s.client.Event.Update().
		Where(event.EventIDEQ(eventID)).
		SetStatus(event.Status(models.EventStatusPublished)).
		SetPublishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark event published: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddTimeline appends one timeline transition for the event.
func (s *EventService) AddTimeline(ctx context.Context, eventID, status string, details map[string]interface{}) error {
	return addTimeline(ctx, s.client, eventID, status, details)
}

// StageView maps an event status to the coarse stage name reported by the
// status endpoint.
func StageView(status models.EventStatus) string {
	switch status {
	case models.EventStatusQueued:
		return "ENQUEUED"
	case models.EventStatusEnriched, models.EventStatusEnrichmentPartial:
		return "ENRICHED"
	case models.EventStatusEvaluated:
		return "EVALUATED"
	case models.EventStatusPublished:
		return "PUBLISHED"
	case models.EventStatusFailed:
		return "FAILED"
	case models.EventStatusDLQ:
		return "DLQ"
	case models.EventStatusRejected:
		return "REJECTED"
	default:
		return strings.ToUpper(string(status))
	}
}
