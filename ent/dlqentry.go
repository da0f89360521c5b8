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
	"github.com/sigmapilot/lens/ent/dlqentry"
)

// DLQEntry is the model entity for the DLQEntry schema.
type DLQEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Absent only for ingress failures that never got an id assigned
	EventID *string `json:"event_id,omitempty"`
	// enqueue, enrich, evaluate or publish
	Stage string `json:"stage,omitempty"`
	// ReasonCode holds the value of the "reason_code" field.
	ReasonCode string `json:"reason_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Full original message payload for replay
	Payload map[string]interface{} `json:"payload,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// LastRetryAt holds the value of the "last_retry_at" field.
	LastRetryAt *time.Time `json:"last_retry_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// ResolutionNote holds the value of the "resolution_note" field.
	ResolutionNote string `json:"resolution_note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DLQEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dlqentry.FieldPayload:
			values[i] = new([]byte)
		case dlqentry.FieldRetryCount:
			values[i] = new(sql.NullInt64)
		case dlqentry.FieldEventID, dlqentry.FieldStage, dlqentry.FieldReasonCode, dlqentry.FieldErrorMessage, dlqentry.FieldResolutionNote:
			values[i] = new(sql.NullString)
		case dlqentry.FieldLastRetryAt, dlqentry.FieldResolvedAt, dlqentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case dlqentry.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DLQEntry fields.
func (_m *DLQEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dlqentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case dlqentry.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = new(string)
				*_m.EventID = value.String
			}
		case dlqentry.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case dlqentry.FieldReasonCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_code", values[i])
			} else if value.Valid {
				_m.ReasonCode = value.String
			}
		case dlqentry.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case dlqentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case dlqentry.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case dlqentry.FieldLastRetryAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_retry_at", values[i])
			} else if value.Valid {
				_m.LastRetryAt = new(time.Time)
				*_m.LastRetryAt = value.Time
			}
		case dlqentry.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		case dlqentry.FieldResolutionNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_note", values[i])
			} else if value.Valid {
				_m.ResolutionNote = value.String
			}
		case dlqentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DLQEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DLQEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DLQEntry.
// Note that you need to call DLQEntry.Unwrap() before calling this method if this DLQEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DLQEntry) Update() *DLQEntryUpdateOne {
	return NewDLQEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DLQEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DLQEntry) Unwrap() *DLQEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DLQEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DLQEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DLQEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.EventID; v != nil {
		builder.WriteString("event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("reason_code=")
	builder.WriteString(_m.ReasonCode)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	if v := _m.LastRetryAt; v != nil {
		builder.WriteString("last_retry_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("resolution_note=")
	builder.WriteString(_m.ResolutionNote)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DLQEntries is a parsable slice of DLQEntry.
type DLQEntries []*DLQEntry
