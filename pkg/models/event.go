package models

// EventStatus is the lifecycle state of an ingested signal event.
//
// Transitions are monotonic:
//
//	queued → {enriched | enrichment_partial | rejected | failed | dlq}
//	{enriched, enrichment_partial} → {evaluated | failed | dlq}
//	evaluated → {published | failed | dlq}
//
// rejected, published, failed and dlq are terminal.
type EventStatus string

const (
	EventStatusQueued            EventStatus = "queued"
	EventStatusEnriched          EventStatus = "enriched"
	EventStatusEnrichmentPartial EventStatus = "enrichment_partial"
	EventStatusEvaluated         EventStatus = "evaluated"
	EventStatusPublished         EventStatus = "published"
	EventStatusFailed            EventStatus = "failed"
	EventStatusRejected          EventStatus = "rejected"
	EventStatusDLQ               EventStatus = "dlq"
)

// EventType distinguishes entry signals from exit signals.
type EventType string

const (
	EventTypeOpenSignal  EventType = "OPEN_SIGNAL"
	EventTypeCloseSignal EventType = "CLOSE_SIGNAL"
)

// ValidEventTypes lists the accepted event_type values at ingress.
var ValidEventTypes = []EventType{EventTypeOpenSignal, EventTypeCloseSignal}

// SignalDirection is the direction of the externally produced signal.
type SignalDirection string

const (
	DirectionLong       SignalDirection = "long"
	DirectionShort      SignalDirection = "short"
	DirectionCloseLong  SignalDirection = "close_long"
	DirectionCloseShort SignalDirection = "close_short"
)

// ValidDirections lists the accepted signal_direction values at ingress.
var ValidDirections = []SignalDirection{
	DirectionLong, DirectionShort, DirectionCloseLong, DirectionCloseShort,
}

// Timeline transition names, appended to processing_timelines in order.
const (
	TimelineReceived  = "RECEIVED"
	TimelineEnqueued  = "ENQUEUED"
	TimelineEnriched  = "ENRICHED"
	TimelineEvaluated = "EVALUATED"
	TimelinePublished = "PUBLISHED"
	TimelineRejected  = "REJECTED"
	TimelineFailed    = "FAILED"
)
