// Code generated by ent, DO NOT EDIT.

package event

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldSymbol holds the string denoting the symbol field in the database.
	FieldSymbol = "symbol"
	// FieldSignalDirection holds the string denoting the signal_direction field in the database.
	FieldSignalDirection = "signal_direction"
	// FieldEntryPrice holds the string denoting the entry_price field in the database.
	FieldEntryPrice = "entry_price"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldLiquidationPrice holds the string denoting the liquidation_price field in the database.
	FieldLiquidationPrice = "liquidation_price"
	// FieldTsUtc holds the string denoting the ts_utc field in the database.
	FieldTsUtc = "ts_utc"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFeatureProfile holds the string denoting the feature_profile field in the database.
	FieldFeatureProfile = "feature_profile"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldEnrichedAt holds the string denoting the enriched_at field in the database.
	FieldEnrichedAt = "enriched_at"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldRawPayload holds the string denoting the raw_payload field in the database.
	FieldRawPayload = "raw_payload"
	// Table holds the table name of the event in the database.
	Table = "events"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldIdempotencyKey,
	FieldEventType,
	FieldSymbol,
	FieldSignalDirection,
	FieldEntryPrice,
	FieldSize,
	FieldLiquidationPrice,
	FieldTsUtc,
	FieldSource,
	FieldStatus,
	FieldFeatureProfile,
	FieldReceivedAt,
	FieldEnrichedAt,
	FieldEvaluatedAt,
	FieldPublishedAt,
	FieldRawPayload,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// IdempotencyKeyValidator is a validator for the "idempotency_key" field. It is called by the builders before save.
	IdempotencyKeyValidator func(string) error
	// SymbolValidator is a validator for the "symbol" field. It is called by the builders before save.
	SymbolValidator func(string) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// FeatureProfileValidator is a validator for the "feature_profile" field. It is called by the builders before save.
	FeatureProfileValidator func(string) error
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeOPEN_SIGNAL  EventType = "OPEN_SIGNAL"
	EventTypeCLOSE_SIGNAL EventType = "CLOSE_SIGNAL"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeOPEN_SIGNAL, EventTypeCLOSE_SIGNAL:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for event_type field: %q", et)
	}
}

// SignalDirection defines the type for the "signal_direction" enum field.
type SignalDirection string

// SignalDirection values.
const (
	SignalDirectionLong       SignalDirection = "long"
	SignalDirectionShort      SignalDirection = "short"
	SignalDirectionCloseLong  SignalDirection = "close_long"
	SignalDirectionCloseShort SignalDirection = "close_short"
)

func (sd SignalDirection) String() string {
	return string(sd)
}

// SignalDirectionValidator is a validator for the "signal_direction" field enum values. It is called by the builders before save.
func SignalDirectionValidator(sd SignalDirection) error {
	switch sd {
	case SignalDirectionLong, SignalDirectionShort, SignalDirectionCloseLong, SignalDirectionCloseShort:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for signal_direction field: %q", sd)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued            Status = "queued"
	StatusEnriched          Status = "enriched"
	StatusEnrichmentPartial Status = "enrichment_partial"
	StatusEvaluated         Status = "evaluated"
	StatusPublished         Status = "published"
	StatusFailed            Status = "failed"
	StatusRejected          Status = "rejected"
	StatusDlq               Status = "dlq"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusEnriched, StatusEnrichmentPartial, StatusEvaluated, StatusPublished, StatusFailed, StatusRejected, StatusDlq:
		return nil
	default:
		return fmt.Errorf("event: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// BySymbol orders the results by the symbol field.
func BySymbol(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSymbol, opts...).ToFunc()
}

// BySignalDirection orders the results by the signal_direction field.
func BySignalDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignalDirection, opts...).ToFunc()
}

// ByEntryPrice orders the results by the entry_price field.
func ByEntryPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryPrice, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByLiquidationPrice orders the results by the liquidation_price field.
func ByLiquidationPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLiquidationPrice, opts...).ToFunc()
}

// ByTsUtc orders the results by the ts_utc field.
func ByTsUtc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTsUtc, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFeatureProfile orders the results by the feature_profile field.
func ByFeatureProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureProfile, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByEnrichedAt orders the results by the enriched_at field.
func ByEnrichedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedAt, opts...).ToFunc()
}

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}
