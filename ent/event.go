// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sigmapilot/lens/ent/event"
)

// Event is the model entity for the Event schema.
type Event struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Externally unique signal identifier
	EventID string `json:"event_id,omitempty"`
	// X-Idempotency-Key header value — duplicate submissions return the original event_id
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType event.EventType `json:"event_type,omitempty"`
	// Symbol holds the value of the "symbol" field.
	Symbol string `json:"symbol,omitempty"`
	// SignalDirection holds the value of the "signal_direction" field.
	SignalDirection event.SignalDirection `json:"signal_direction,omitempty"`
	// EntryPrice holds the value of the "entry_price" field.
	EntryPrice decimal.Decimal `json:"entry_price,omitempty"`
	// Size holds the value of the "size" field.
	Size decimal.Decimal `json:"size,omitempty"`
	// LiquidationPrice holds the value of the "liquidation_price" field.
	LiquidationPrice *decimal.Decimal `json:"liquidation_price,omitempty"`
	// Signal timestamp as reported by the source
	TsUtc time.Time `json:"ts_utc,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Status holds the value of the "status" field.
	Status event.Status `json:"status,omitempty"`
	// FeatureProfile holds the value of the "feature_profile" field.
	FeatureProfile string `json:"feature_profile,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// EnrichedAt holds the value of the "enriched_at" field.
	EnrichedAt *time.Time `json:"enriched_at,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt *time.Time `json:"evaluated_at,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Submitted body stored verbatim for audit
	RawPayload   map[string]interface{} `json:"raw_payload,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Event) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case event.FieldLiquidationPrice:
			values[i] = &sql.NullScanner{S: new(decimal.Decimal)}
		case event.FieldRawPayload:
			values[i] = new([]byte)
		case event.FieldEntryPrice, event.FieldSize:
			values[i] = new(decimal.Decimal)
		case event.FieldEventID, event.FieldIdempotencyKey, event.FieldEventType, event.FieldSymbol, event.FieldSignalDirection, event.FieldSource, event.FieldStatus, event.FieldFeatureProfile:
			values[i] = new(sql.NullString)
		case event.FieldTsUtc, event.FieldReceivedAt, event.FieldEnrichedAt, event.FieldEvaluatedAt, event.FieldPublishedAt:
			values[i] = new(sql.NullTime)
		case event.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Event fields.
func (_m *Event) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case event.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case event.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case event.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case event.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = event.EventType(value.String)
			}
		case event.FieldSymbol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field symbol", values[i])
			} else if value.Valid {
				_m.Symbol = value.String
			}
		case event.FieldSignalDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signal_direction", values[i])
			} else if value.Valid {
				_m.SignalDirection = event.SignalDirection(value.String)
			}
		case event.FieldEntryPrice:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field entry_price", values[i])
			} else if value != nil {
				_m.EntryPrice = *value
			}
		case event.FieldSize:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value != nil {
				_m.Size = *value
			}
		case event.FieldLiquidationPrice:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field liquidation_price", values[i])
			} else if value.Valid {
				_m.LiquidationPrice = new(decimal.Decimal)
				*_m.LiquidationPrice = *value.S.(*decimal.Decimal)
			}
		case event.FieldTsUtc:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ts_utc", values[i])
			} else if value.Valid {
				_m.TsUtc = value.Time
			}
		case event.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case event.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = event.Status(value.String)
			}
		case event.FieldFeatureProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_profile", values[i])
			} else if value.Valid {
				_m.FeatureProfile = value.String
			}
		case event.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case event.FieldEnrichedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_at", values[i])
			} else if value.Valid {
				_m.EnrichedAt = new(time.Time)
				*_m.EnrichedAt = value.Time
			}
		case event.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = new(time.Time)
				*_m.EvaluatedAt = value.Time
			}
		case event.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case event.FieldRawPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawPayload); err != nil {
					return fmt.Errorf("unmarshal field raw_payload: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Event.
// This includes values selected through modifiers, order, etc.
func (_m *Event) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Event.
// Note that you need to call Event.Unwrap() before calling this method if this Event
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Event) Update() *EventUpdateOne {
	return NewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Event entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Event) Unwrap() *Event {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Event is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Event) String() string {
	var builder strings.Builder
	builder.WriteString("Event(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventType))
	builder.WriteString(", ")
	builder.WriteString("symbol=")
	builder.WriteString(_m.Symbol)
	builder.WriteString(", ")
	builder.WriteString("signal_direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalDirection))
	builder.WriteString(", ")
	builder.WriteString("entry_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntryPrice))
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	if v := _m.LiquidationPrice; v != nil {
		builder.WriteString("liquidation_price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("ts_utc=")
	builder.WriteString(_m.TsUtc.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("feature_profile=")
	builder.WriteString(_m.FeatureProfile)
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EnrichedAt; v != nil {
		builder.WriteString("enriched_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EvaluatedAt; v != nil {
		builder.WriteString("evaluated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("raw_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPayload))
	builder.WriteByte(')')
	return builder.String()
}

// Events is a parsable slice of Event.
type Events []*Event
