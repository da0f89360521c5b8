// Code generated by ent, DO NOT EDIT.

package enrichedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the enrichedevent type in the database.
	Label = "enriched_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldFeatureProfile holds the string denoting the feature_profile field in the database.
	FieldFeatureProfile = "feature_profile"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldProviderVersion holds the string denoting the provider_version field in the database.
	FieldProviderVersion = "provider_version"
	// FieldMarketData holds the string denoting the market_data field in the database.
	FieldMarketData = "market_data"
	// FieldTaData holds the string denoting the ta_data field in the database.
	FieldTaData = "ta_data"
	// FieldLevelsData holds the string denoting the levels_data field in the database.
	FieldLevelsData = "levels_data"
	// FieldDerivsData holds the string denoting the derivs_data field in the database.
	FieldDerivsData = "derivs_data"
	// FieldConstraints holds the string denoting the constraints field in the database.
	FieldConstraints = "constraints"
	// FieldDataTimestamps holds the string denoting the data_timestamps field in the database.
	FieldDataTimestamps = "data_timestamps"
	// FieldQualityFlags holds the string denoting the quality_flags field in the database.
	FieldQualityFlags = "quality_flags"
	// FieldEnrichedPayload holds the string denoting the enriched_payload field in the database.
	FieldEnrichedPayload = "enriched_payload"
	// FieldEnrichmentDurationMs holds the string denoting the enrichment_duration_ms field in the database.
	FieldEnrichmentDurationMs = "enrichment_duration_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the enrichedevent in the database.
	Table = "enriched_events"
)

// Columns holds all SQL columns for enrichedevent fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldFeatureProfile,
	FieldProvider,
	FieldProviderVersion,
	FieldMarketData,
	FieldTaData,
	FieldLevelsData,
	FieldDerivsData,
	FieldConstraints,
	FieldDataTimestamps,
	FieldQualityFlags,
	FieldEnrichedPayload,
	FieldEnrichmentDurationMs,
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
	// FeatureProfileValidator is a validator for the "feature_profile" field. It is called by the builders before save.
	FeatureProfileValidator func(string) error
	// DefaultProvider holds the default value on creation for the "provider" field.
	DefaultProvider string
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// ProviderVersionValidator is a validator for the "provider_version" field. It is called by the builders before save.
	ProviderVersionValidator func(string) error
	// DefaultDataTimestamps holds the default value on creation for the "data_timestamps" field.
	DefaultDataTimestamps func() map[string]interface{}
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EnrichedEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByFeatureProfile orders the results by the feature_profile field.
func ByFeatureProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureProfile, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByProviderVersion orders the results by the provider_version field.
func ByProviderVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderVersion, opts...).ToFunc()
}

// ByEnrichmentDurationMs orders the results by the enrichment_duration_ms field.
func ByEnrichmentDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichmentDurationMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
