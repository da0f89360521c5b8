// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/llmconfig"
)

// LLMConfig is the model entity for the LLMConfig schema.
type LLMConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Secret — masked to **** + last 4 on every read surface
	APIKey string `json:"-"`
	// ModelID holds the value of the "model_id" field.
	ModelID string `json:"model_id,omitempty"`
	// TimeoutMs holds the value of the "timeout_ms" field.
	TimeoutMs int `json:"timeout_ms,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens int `json:"max_tokens,omitempty"`
	// PromptPath holds the value of the "prompt_path" field.
	PromptPath string `json:"prompt_path,omitempty"`
	// ok, invalid_key, rate_limited or error — set by the key test endpoint
	ValidationStatus string `json:"validation_status,omitempty"`
	// LastValidatedAt holds the value of the "last_validated_at" field.
	LastValidatedAt *time.Time `json:"last_validated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmconfig.FieldEnabled:
			values[i] = new(sql.NullBool)
		case llmconfig.FieldTimeoutMs, llmconfig.FieldMaxTokens:
			values[i] = new(sql.NullInt64)
		case llmconfig.FieldModelName, llmconfig.FieldProvider, llmconfig.FieldAPIKey, llmconfig.FieldModelID, llmconfig.FieldPromptPath, llmconfig.FieldValidationStatus:
			values[i] = new(sql.NullString)
		case llmconfig.FieldLastValidatedAt, llmconfig.FieldCreatedAt, llmconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case llmconfig.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMConfig fields.
func (_m *LLMConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmconfig.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case llmconfig.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case llmconfig.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case llmconfig.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case llmconfig.FieldAPIKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key", values[i])
			} else if value.Valid {
				_m.APIKey = value.String
			}
		case llmconfig.FieldModelID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_id", values[i])
			} else if value.Valid {
				_m.ModelID = value.String
			}
		case llmconfig.FieldTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_ms", values[i])
			} else if value.Valid {
				_m.TimeoutMs = int(value.Int64)
			}
		case llmconfig.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = int(value.Int64)
			}
		case llmconfig.FieldPromptPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_path", values[i])
			} else if value.Valid {
				_m.PromptPath = value.String
			}
		case llmconfig.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = value.String
			}
		case llmconfig.FieldLastValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_validated_at", values[i])
			} else if value.Valid {
				_m.LastValidatedAt = new(time.Time)
				*_m.LastValidatedAt = value.Time
			}
		case llmconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case llmconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMConfig.
// This includes values selected through modifiers, order, etc.
func (_m *LLMConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMConfig.
// Note that you need to call LLMConfig.Unwrap() before calling this method if this LLMConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMConfig) Update() *LLMConfigUpdateOne {
	return NewLLMConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMConfig) Unwrap() *LLMConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMConfig) String() string {
	var builder strings.Builder
	builder.WriteString("LLMConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("api_key=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("model_id=")
	builder.WriteString(_m.ModelID)
	builder.WriteString(", ")
	builder.WriteString("timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("max_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxTokens))
	builder.WriteString(", ")
	builder.WriteString("prompt_path=")
	builder.WriteString(_m.PromptPath)
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(_m.ValidationStatus)
	builder.WriteString(", ")
	if v := _m.LastValidatedAt; v != nil {
		builder.WriteString("last_validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMConfigs is a parsable slice of LLMConfig.
type LLMConfigs []*LLMConfig
