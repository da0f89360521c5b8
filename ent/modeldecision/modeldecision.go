// Code generated by ent, DO NOT EDIT.

package modeldecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the modeldecision type in the database.
	Label = "model_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldModelVersion holds the string denoting the model_version field in the database.
	FieldModelVersion = "model_version"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldPromptHash holds the string denoting the prompt_hash field in the database.
	FieldPromptHash = "prompt_hash"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEntryPlan holds the string denoting the entry_plan field in the database.
	FieldEntryPlan = "entry_plan"
	// FieldRiskPlan holds the string denoting the risk_plan field in the database.
	FieldRiskPlan = "risk_plan"
	// FieldSizePct holds the string denoting the size_pct field in the database.
	FieldSizePct = "size_pct"
	// FieldReasons holds the string denoting the reasons field in the database.
	FieldReasons = "reasons"
	// FieldDecisionPayload holds the string denoting the decision_payload field in the database.
	FieldDecisionPayload = "decision_payload"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldTokensIn holds the string denoting the tokens_in field in the database.
	FieldTokensIn = "tokens_in"
	// FieldTokensOut holds the string denoting the tokens_out field in the database.
	FieldTokensOut = "tokens_out"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the modeldecision in the database.
	Table = "model_decisions"
)

// Columns holds all SQL columns for modeldecision fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldModelName,
	FieldModelVersion,
	FieldPromptVersion,
	FieldPromptHash,
	FieldDecision,
	FieldConfidence,
	FieldEntryPlan,
	FieldRiskPlan,
	FieldSizePct,
	FieldReasons,
	FieldDecisionPayload,
	FieldLatencyMs,
	FieldTokensIn,
	FieldTokensOut,
	FieldStatus,
	FieldErrorCode,
	FieldErrorMessage,
	FieldRawResponse,
	FieldEvaluatedAt,
	FieldCreatedAt,
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
	// ModelNameValidator is a validator for the "model_name" field. It is called by the builders before save.
	ModelNameValidator func(string) error
	// ModelVersionValidator is a validator for the "model_version" field. It is called by the builders before save.
	ModelVersionValidator func(string) error
	// PromptVersionValidator is a validator for the "prompt_version" field. It is called by the builders before save.
	PromptVersionValidator func(string) error
	// PromptHashValidator is a validator for the "prompt_hash" field. It is called by the builders before save.
	PromptHashValidator func(string) error
	// DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	DecisionValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ErrorCodeValidator is a validator for the "error_code" field. It is called by the builders before save.
	ErrorCodeValidator func(string) error
	// DefaultEvaluatedAt holds the default value on creation for the "evaluated_at" field.
	DefaultEvaluatedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ModelDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByModelVersion orders the results by the model_version field.
func ByModelVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelVersion, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByPromptHash orders the results by the prompt_hash field.
func ByPromptHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptHash, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySizePct orders the results by the size_pct field.
func BySizePct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizePct, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByTokensIn orders the results by the tokens_in field.
func ByTokensIn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensIn, opts...).ToFunc()
}

// ByTokensOut orders the results by the tokens_out field.
func ByTokensOut(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOut, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRawResponse orders the results by the raw_response field.
func ByRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawResponse, opts...).ToFunc()
}

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
