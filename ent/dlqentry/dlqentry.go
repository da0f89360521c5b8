// Code generated by ent, DO NOT EDIT.

package dlqentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dlqentry type in the database.
	Label = "dlq_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldReasonCode holds the string denoting the reason_code field in the database.
	FieldReasonCode = "reason_code"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldLastRetryAt holds the string denoting the last_retry_at field in the database.
	FieldLastRetryAt = "last_retry_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// FieldResolutionNote holds the string denoting the resolution_note field in the database.
	FieldResolutionNote = "resolution_note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the dlqentry in the database.
	Table = "dlq_entries"
)

// Columns holds all SQL columns for dlqentry fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldStage,
	FieldReasonCode,
	FieldErrorMessage,
	FieldPayload,
	FieldRetryCount,
	FieldLastRetryAt,
	FieldResolvedAt,
	FieldResolutionNote,
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
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(string) error
	// ReasonCodeValidator is a validator for the "reason_code" field. It is called by the builders before save.
	ReasonCodeValidator func(string) error
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the DLQEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByReasonCode orders the results by the reason_code field.
func ByReasonCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonCode, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByLastRetryAt orders the results by the last_retry_at field.
func ByLastRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRetryAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByResolutionNote orders the results by the resolution_note field.
func ByResolutionNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
