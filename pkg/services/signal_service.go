package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sigmapilot/lens/ent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/pkg/logging"
	"github.com/sigmapilot/lens/pkg/metrics"
	"github.com/sigmapilot/lens/pkg/models"
	"github.com/sigmapilot/lens/pkg/queue"
)

// SignalService owns signal ingestion: validation, idempotency, persistence
// and handoff to the pending stream.
type SignalService struct {
	client         *ent.Client
	queue          *queue.Client
	defaultProfile string
	metrics        *metrics.Metrics
}

// NewSignalService creates a new SignalService.
func NewSignalService(client *ent.Client, q *queue.Client, defaultProfile string, m *metrics.Metrics) *SignalService {
	return &SignalService{
		client:         client,
		queue:          q,
		defaultProfile: defaultProfile,
		metrics:        m,
	}
}

// SubmitResult is the ingestion outcome returned to the handler.
type SubmitResult struct {
	EventID    string    `json:"event_id"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
	Duplicate  bool      `json:"-"`
}

// ValidateSignal checks a submission against the ingress contract. All
// checks are local; the first failing field is reported.
func ValidateSignal(p *models.SignalPayload) error {
	validType := false
	for _, t := range models.ValidEventTypes {
		if p.EventType == t {
			validType = true
			break
		}
	}
	if !validType {
		return NewValidationError("event_type", "must be one of: OPEN_SIGNAL, CLOSE_SIGNAL")
	}

	if len(p.Symbol) < 1 || len(p.Symbol) > 20 {
		return NewValidationError("symbol", "must be between 1 and 20 characters")
	}

	validDir := false
	for _, d := range models.ValidDirections {
		if p.SignalDirection == d {
			validDir = true
			break
		}
	}
	if !validDir {
		return NewValidationError("signal_direction", "must be one of: long, short, close_long, close_short")
	}

	if !p.EntryPrice.IsPositive() {
		return NewValidationError("entry_price", "must be greater than 0")
	}
	if !p.Size.IsPositive() {
		return NewValidationError("size", "must be greater than 0")
	}
	if !p.LiquidationPrice.IsPositive() {
		return NewValidationError("liquidation_price", "must be greater than 0")
	}
	if p.TsUTC.IsZero() {
		return NewValidationError("ts_utc", "is required")
	}
	if len(p.Source) < 1 || len(p.Source) > 100 {
		return NewValidationError("source", "must be between 1 and 100 characters")
	}
	return nil
}

// Submit validates, persists and enqueues one signal. A repeated
// idempotency key returns the original event without side effects. An
// enqueue failure finalizes the event as failed, writes an enqueue-stage
// DLQ row and surfaces a *queue.Error.
func (s *SignalService) Submit(ctx context.Context, payload *models.SignalPayload, idempotencyKey string) (*SubmitResult, error) {
	start := time.Now()
	receivedAt := start.UTC()

	if err := ValidateSignal(payload); err != nil {
		return nil, err
	}

	if idempotencyKey != "" {
		existing, err := s.client.Event.Query().
			Where(event.IdempotencyKeyEQ(idempotencyKey)).
			Only(ctx)
		if err == nil {
			slog.Info("Duplicate signal detected", "event_id", existing.EventID)
			return &SubmitResult{
				EventID:    existing.EventID,
				Status:     strings.ToUpper(string(existing.Status)),
				ReceivedAt: existing.ReceivedAt,
				Duplicate:  true,
			}, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check idempotency key: %w", err)
		}
	}

	eventID := uuid.NewString()
	payload.EventID = eventID
	if payload.FeatureProfile == "" {
		payload.FeatureProfile = s.defaultProfile
	}

	if s.metrics != nil {
		s.metrics.SignalsReceived.WithLabelValues(
			payload.Source, payload.Symbol, string(payload.EventType)).Inc()
	}
	logging.LogStage(slog.Default(), models.TimelineReceived, eventID, "started", "symbol", payload.Symbol)

	rawPayload, err := payloadMap(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	create := s.client.Event.Create().
		SetEventID(eventID).
		SetEventType(event.EventType(payload.EventType)).
		SetSymbol(payload.Symbol).
		SetSignalDirection(event.SignalDirection(payload.SignalDirection)).
		SetEntryPrice(payload.EntryPrice).
		SetSize(payload.Size).
		SetLiquidationPrice(payload.LiquidationPrice).
		SetTsUtc(payload.TsUTC).
		SetSource(payload.Source).
		SetStatus(event.Status(models.EventStatusQueued)).
		SetFeatureProfile(payload.FeatureProfile).
		SetReceivedAt(receivedAt).
		SetRawPayload(rawPayload)
	if idempotencyKey != "" {
		create = create.SetIdempotencyKey(idempotencyKey)
	}
	if _, err := create.Save(ctx); err != nil {
		// Lost a race on the idempotency key: return the winner's event.
		if ent.IsConstraintError(err) && idempotencyKey != "" {
			existing, qerr := s.client.Event.Query().
				Where(event.IdempotencyKeyEQ(idempotencyKey)).
				Only(ctx)
			if qerr == nil {
				return &SubmitResult{
					EventID:    existing.EventID,
					Status:     strings.ToUpper(string(existing.Status)),
					ReceivedAt: existing.ReceivedAt,
					Duplicate:  true,
				}, nil
			}
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if err := addTimeline(ctx, s.client, eventID, models.TimelineReceived,
		map[string]interface{}{"source": payload.Source}); err != nil {
		slog.Error("Failed to record RECEIVED timeline", "event_id", eventID, "error", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	if _, err := s.queue.Append(ctx, queue.StreamPending, queue.NewMessage(eventID, payloadJSON)); err != nil {
		s.failEnqueue(ctx, eventID, rawPayload, err)
		return nil, err
	}

	if err := addTimeline(ctx, s.client, eventID, models.TimelineEnqueued, nil); err != nil {
		slog.Error("Failed to record ENQUEUED timeline", "event_id", eventID, "error", err)
	}
	logging.LogStage(slog.Default(), models.TimelineEnqueued, eventID, "completed")

	if s.metrics != nil {
		s.metrics.SignalsEnqueued.WithLabelValues(payload.Symbol).Inc()
		s.metrics.EnqueueDuration.Observe(time.Since(start).Seconds())
	}

	return &SubmitResult{
		EventID:    eventID,
		Status:     "ENQUEUED",
		ReceivedAt: receivedAt,
	}, nil
}

// failEnqueue finalizes an event whose stream append failed: status failed
// plus an enqueue-stage DLQ row carrying the payload.
func (s *SignalService) failEnqueue(ctx context.Context, eventID string, rawPayload map[string]interface{}, cause error) {
	slog.Error("Failed to enqueue signal", "event_id", eventID, "error", cause)

	if err := s.client.Event.Update().
		Where(event.EventIDEQ(eventID)).
		SetStatus(event.Status(models.EventStatusFailed)).
		Exec(ctx); err != nil {
		slog.Error("Failed to mark event failed", "event_id", eventID, "error", err)
	}

	if err := s.client.DLQEntry.Create().
		SetEventID(eventID).
		SetStage(string(models.StageEnqueue)).
		SetReasonCode(classifyEnqueueError(cause.Error())).
		SetErrorMessage(truncate(cause.Error(), 2000)).
		SetPayload(rawPayload).
		Exec(ctx); err != nil {
		slog.Error("Failed to create DLQ entry", "event_id", eventID, "error", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveDLQ(string(models.StageEnqueue), classifyEnqueueError(cause.Error()))
	}
}

// classifyEnqueueError maps a stream append failure to a DLQ reason code.
func classifyEnqueueError(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "timeout"):
		return "timeout"
	case strings.Contains(lower, "connection"), strings.Contains(lower, "refused"):
		return "network_error"
	case strings.Contains(lower, "full"), strings.Contains(lower, "capacity"):
		return "queue_full"
	default:
		return "enqueue_error"
	}
}

// payloadMap renders a payload through its JSON form into the generic map
// the jsonb columns store.
func payloadMap(p *models.SignalPayload) (map[string]interface{}, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// addTimeline appends one processing timeline row.
func addTimeline(ctx context.Context, client *ent.Client, eventID, status string, details map[string]interface{}) error {
	create := client.ProcessingTimeline.Create().
		SetEventID(eventID).
		SetStatus(status)
	if details != nil {
		create = create.SetDetails(details)
	}
	return create.Exec(ctx)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
