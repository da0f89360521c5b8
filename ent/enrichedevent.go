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
	"github.com/sigmapilot/lens/ent/enrichedevent"
)

// EnrichedEvent is the model entity for the EnrichedEvent schema.
type EnrichedEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// FeatureProfile holds the value of the "feature_profile" field.
	FeatureProfile string `json:"feature_profile,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// ProviderVersion holds the value of the "provider_version" field.
	ProviderVersion string `json:"provider_version,omitempty"`
	// MarketData holds the value of the "market_data" field.
	MarketData map[string]interface{} `json:"market_data,omitempty"`
	// Indicator bundle keyed by timeframe
	TaData map[string]interface{} `json:"ta_data,omitempty"`
	// LevelsData holds the value of the "levels_data" field.
	LevelsData map[string]interface{} `json:"levels_data,omitempty"`
	// DerivsData holds the value of the "derivs_data" field.
	DerivsData map[string]interface{} `json:"derivs_data,omitempty"`
	// Constraints holds the value of the "constraints" field.
	Constraints map[string]interface{} `json:"constraints,omitempty"`
	// Per-source timestamps used for staleness accounting
	DataTimestamps map[string]interface{} `json:"data_timestamps,omitempty"`
	// QualityFlags holds the value of the "quality_flags" field.
	QualityFlags map[string]interface{} `json:"quality_flags,omitempty"`
	// Compact shape handed to adapters
	EnrichedPayload map[string]interface{} `json:"enriched_payload,omitempty"`
	// EnrichmentDurationMs holds the value of the "enrichment_duration_ms" field.
	EnrichmentDurationMs int `json:"enrichment_duration_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnrichedEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case enrichedevent.FieldMarketData, enrichedevent.FieldTaData, enrichedevent.FieldLevelsData, enrichedevent.FieldDerivsData, enrichedevent.FieldConstraints, enrichedevent.FieldDataTimestamps, enrichedevent.FieldQualityFlags, enrichedevent.FieldEnrichedPayload:
			values[i] = new([]byte)
		case enrichedevent.FieldEnrichmentDurationMs:
			values[i] = new(sql.NullInt64)
		case enrichedevent.FieldEventID, enrichedevent.FieldFeatureProfile, enrichedevent.FieldProvider, enrichedevent.FieldProviderVersion:
			values[i] = new(sql.NullString)
		case enrichedevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case enrichedevent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnrichedEvent fields.
func (_m *EnrichedEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case enrichedevent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case enrichedevent.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case enrichedevent.FieldFeatureProfile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_profile", values[i])
			} else if value.Valid {
				_m.FeatureProfile = value.String
			}
		case enrichedevent.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case enrichedevent.FieldProviderVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_version", values[i])
			} else if value.Valid {
				_m.ProviderVersion = value.String
			}
		case enrichedevent.FieldMarketData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field market_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MarketData); err != nil {
					return fmt.Errorf("unmarshal field market_data: %w", err)
				}
			}
		case enrichedevent.FieldTaData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ta_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TaData); err != nil {
					return fmt.Errorf("unmarshal field ta_data: %w", err)
				}
			}
		case enrichedevent.FieldLevelsData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field levels_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LevelsData); err != nil {
					return fmt.Errorf("unmarshal field levels_data: %w", err)
				}
			}
		case enrichedevent.FieldDerivsData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field derivs_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DerivsData); err != nil {
					return fmt.Errorf("unmarshal field derivs_data: %w", err)
				}
			}
		case enrichedevent.FieldConstraints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constraints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Constraints); err != nil {
					return fmt.Errorf("unmarshal field constraints: %w", err)
				}
			}
		case enrichedevent.FieldDataTimestamps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data_timestamps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DataTimestamps); err != nil {
					return fmt.Errorf("unmarshal field data_timestamps: %w", err)
				}
			}
		case enrichedevent.FieldQualityFlags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field quality_flags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QualityFlags); err != nil {
					return fmt.Errorf("unmarshal field quality_flags: %w", err)
				}
			}
		case enrichedevent.FieldEnrichedPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnrichedPayload); err != nil {
					return fmt.Errorf("unmarshal field enriched_payload: %w", err)
				}
			}
		case enrichedevent.FieldEnrichmentDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_duration_ms", values[i])
			} else if value.Valid {
				_m.EnrichmentDurationMs = int(value.Int64)
			}
		case enrichedevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EnrichedEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EnrichedEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EnrichedEvent.
// Note that you need to call EnrichedEvent.Unwrap() before calling this method if this EnrichedEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnrichedEvent) Update() *EnrichedEventUpdateOne {
	return NewEnrichedEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnrichedEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnrichedEvent) Unwrap() *EnrichedEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnrichedEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnrichedEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EnrichedEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("feature_profile=")
	builder.WriteString(_m.FeatureProfile)
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("provider_version=")
	builder.WriteString(_m.ProviderVersion)
	builder.WriteString(", ")
	builder.WriteString("market_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarketData))
	builder.WriteString(", ")
	builder.WriteString("ta_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaData))
	builder.WriteString(", ")
	builder.WriteString("levels_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelsData))
	builder.WriteString(", ")
	builder.WriteString("derivs_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.DerivsData))
	builder.WriteString(", ")
	builder.WriteString("constraints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Constraints))
	builder.WriteString(", ")
	builder.WriteString("data_timestamps=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataTimestamps))
	builder.WriteString(", ")
	builder.WriteString("quality_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityFlags))
	builder.WriteString(", ")
	builder.WriteString("enriched_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrichedPayload))
	builder.WriteString(", ")
	builder.WriteString("enrichment_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnrichmentDurationMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EnrichedEvents is a parsable slice of EnrichedEvent.
type EnrichedEvents []*EnrichedEvent
