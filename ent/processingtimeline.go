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
	"github.com/sigmapilot/lens/ent/processingtimeline"
)

// ProcessingTimeline is the model entity for the ProcessingTimeline schema.
type ProcessingTimeline struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// Transition name: RECEIVED, ENQUEUED, ENRICHED, EVALUATED, PUBLISHED, REJECTED, FAILED
	Status string `json:"status,omitempty"`
	// Details holds the value of the "details" field.
	Details map[string]interface{} `json:"details,omitempty"`
	// OccurredAt holds the value of the "occurred_at" field.
	OccurredAt   time.Time `json:"occurred_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingTimeline) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processingtimeline.FieldDetails:
			values[i] = new([]byte)
		case processingtimeline.FieldEventID, processingtimeline.FieldStatus:
			values[i] = new(sql.NullString)
		case processingtimeline.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		case processingtimeline.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingTimeline fields.
func (_m *ProcessingTimeline) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processingtimeline.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processingtimeline.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case processingtimeline.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case processingtimeline.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case processingtimeline.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingTimeline.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingTimeline) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessingTimeline.
// Note that you need to call ProcessingTimeline.Unwrap() before calling this method if this ProcessingTimeline
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingTimeline) Update() *ProcessingTimelineUpdateOne {
	return NewProcessingTimelineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingTimeline entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingTimeline) Unwrap() *ProcessingTimeline {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingTimeline is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingTimeline) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingTimeline(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingTimelines is a parsable slice of ProcessingTimeline.
type ProcessingTimelines []*ProcessingTimeline
