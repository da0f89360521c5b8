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
	"github.com/sigmapilot/lens/ent/modeldecision"
)

// ModelDecision is the model entity for the ModelDecision schema.
type ModelDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID string `json:"event_id,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// ModelVersion holds the value of the "model_version" field.
	ModelVersion string `json:"model_version,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion string `json:"prompt_version,omitempty"`
	// SHA-256 of the rendered wrapper+core, for reproducibility
	PromptHash string `json:"prompt_hash,omitempty"`
	// Decision holds the value of the "decision" field.
	Decision string `json:"decision,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// EntryPlan holds the value of the "entry_plan" field.
	EntryPlan map[string]interface{} `json:"entry_plan,omitempty"`
	// RiskPlan holds the value of the "risk_plan" field.
	RiskPlan map[string]interface{} `json:"risk_plan,omitempty"`
	// SizePct holds the value of the "size_pct" field.
	SizePct *float64 `json:"size_pct,omitempty"`
	// Reasons holds the value of the "reasons" field.
	Reasons []string `json:"reasons,omitempty"`
	// DecisionPayload holds the value of the "decision_payload" field.
	DecisionPayload map[string]interface{} `json:"decision_payload,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs int `json:"latency_ms,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int `json:"tokens_out,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Raw provider text, stored only on error
	RawResponse string `json:"raw_response,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt time.Time `json:"evaluated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ModelDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case modeldecision.FieldEntryPlan, modeldecision.FieldRiskPlan, modeldecision.FieldReasons, modeldecision.FieldDecisionPayload:
			values[i] = new([]byte)
		case modeldecision.FieldConfidence, modeldecision.FieldSizePct:
			values[i] = new(sql.NullFloat64)
		case modeldecision.FieldLatencyMs, modeldecision.FieldTokensIn, modeldecision.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case modeldecision.FieldEventID, modeldecision.FieldModelName, modeldecision.FieldModelVersion, modeldecision.FieldPromptVersion, modeldecision.FieldPromptHash, modeldecision.FieldDecision, modeldecision.FieldStatus, modeldecision.FieldErrorCode, modeldecision.FieldErrorMessage, modeldecision.FieldRawResponse:
			values[i] = new(sql.NullString)
		case modeldecision.FieldEvaluatedAt, modeldecision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case modeldecision.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ModelDecision fields.
func (_m *ModelDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case modeldecision.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case modeldecision.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case modeldecision.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case modeldecision.FieldModelVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_version", values[i])
			} else if value.Valid {
				_m.ModelVersion = value.String
			}
		case modeldecision.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = value.String
			}
		case modeldecision.FieldPromptHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_hash", values[i])
			} else if value.Valid {
				_m.PromptHash = value.String
			}
		case modeldecision.FieldDecision:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision", values[i])
			} else if value.Valid {
				_m.Decision = value.String
			}
		case modeldecision.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case modeldecision.FieldEntryPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entry_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntryPlan); err != nil {
					return fmt.Errorf("unmarshal field entry_plan: %w", err)
				}
			}
		case modeldecision.FieldRiskPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risk_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RiskPlan); err != nil {
					return fmt.Errorf("unmarshal field risk_plan: %w", err)
				}
			}
		case modeldecision.FieldSizePct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field size_pct", values[i])
			} else if value.Valid {
				_m.SizePct = new(float64)
				*_m.SizePct = value.Float64
			}
		case modeldecision.FieldReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Reasons); err != nil {
					return fmt.Errorf("unmarshal field reasons: %w", err)
				}
			}
		case modeldecision.FieldDecisionPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decision_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DecisionPayload); err != nil {
					return fmt.Errorf("unmarshal field decision_payload: %w", err)
				}
			}
		case modeldecision.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = int(value.Int64)
			}
		case modeldecision.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = int(value.Int64)
			}
		case modeldecision.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = int(value.Int64)
			}
		case modeldecision.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case modeldecision.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = value.String
			}
		case modeldecision.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case modeldecision.FieldRawResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_response", values[i])
			} else if value.Valid {
				_m.RawResponse = value.String
			}
		case modeldecision.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = value.Time
			}
		case modeldecision.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ModelDecision.
// This includes values selected through modifiers, order, etc.
func (_m *ModelDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ModelDecision.
// Note that you need to call ModelDecision.Unwrap() before calling this method if this ModelDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ModelDecision) Update() *ModelDecisionUpdateOne {
	return NewModelDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ModelDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ModelDecision) Unwrap() *ModelDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ModelDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ModelDecision) String() string {
	var builder strings.Builder
	builder.WriteString("ModelDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("model_version=")
	builder.WriteString(_m.ModelVersion)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(_m.PromptVersion)
	builder.WriteString(", ")
	builder.WriteString("prompt_hash=")
	builder.WriteString(_m.PromptHash)
	builder.WriteString(", ")
	builder.WriteString("decision=")
	builder.WriteString(_m.Decision)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("entry_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntryPlan))
	builder.WriteString(", ")
	builder.WriteString("risk_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskPlan))
	builder.WriteString(", ")
	if v := _m.SizePct; v != nil {
		builder.WriteString("size_pct=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reasons))
	builder.WriteString(", ")
	builder.WriteString("decision_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecisionPayload))
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("error_code=")
	builder.WriteString(_m.ErrorCode)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("raw_response=")
	builder.WriteString(_m.RawResponse)
	builder.WriteString(", ")
	builder.WriteString("evaluated_at=")
	builder.WriteString(_m.EvaluatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ModelDecisions is a parsable slice of ModelDecision.
type ModelDecisions []*ModelDecision
