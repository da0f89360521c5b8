// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sigmapilot/lens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventID, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIdempotencyKey, v))
}

// Symbol applies equality check predicate on the "symbol" field. It's identical to SymbolEQ.
func Symbol(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSymbol, v))
}

// EntryPrice applies equality check predicate on the "entry_price" field. It's identical to EntryPriceEQ.
func EntryPrice(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEntryPrice, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSize, v))
}

// LiquidationPrice applies equality check predicate on the "liquidation_price" field. It's identical to LiquidationPriceEQ.
func LiquidationPrice(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLiquidationPrice, v))
}

// TsUtc applies equality check predicate on the "ts_utc" field. It's identical to TsUtcEQ.
func TsUtc(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTsUtc, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSource, v))
}

// FeatureProfile applies equality check predicate on the "feature_profile" field. It's identical to FeatureProfileEQ.
func FeatureProfile(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFeatureProfile, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldReceivedAt, v))
}

// EnrichedAt applies equality check predicate on the "enriched_at" field. It's identical to EnrichedAtEQ.
func EnrichedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEnrichedAt, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEvaluatedAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPublishedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEventID, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyIsNil applies the IsNil predicate on the "idempotency_key" field.
func IdempotencyKeyIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldIdempotencyKey))
}

// IdempotencyKeyNotNil applies the NotNil predicate on the "idempotency_key" field.
func IdempotencyKeyNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldIdempotencyKey))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v EventType) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v EventType) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...EventType) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...EventType) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventType, vs...))
}

// SymbolEQ applies the EQ predicate on the "symbol" field.
func SymbolEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSymbol, v))
}

// SymbolNEQ applies the NEQ predicate on the "symbol" field.
func SymbolNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSymbol, v))
}

// SymbolIn applies the In predicate on the "symbol" field.
func SymbolIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSymbol, vs...))
}

// SymbolNotIn applies the NotIn predicate on the "symbol" field.
func SymbolNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSymbol, vs...))
}

// SymbolGT applies the GT predicate on the "symbol" field.
func SymbolGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSymbol, v))
}

// SymbolGTE applies the GTE predicate on the "symbol" field.
func SymbolGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSymbol, v))
}

// SymbolLT applies the LT predicate on the "symbol" field.
func SymbolLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSymbol, v))
}

// SymbolLTE applies the LTE predicate on the "symbol" field.
func SymbolLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSymbol, v))
}

// SymbolContains applies the Contains predicate on the "symbol" field.
func SymbolContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSymbol, v))
}

// SymbolHasPrefix applies the HasPrefix predicate on the "symbol" field.
func SymbolHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSymbol, v))
}

// SymbolHasSuffix applies the HasSuffix predicate on the "symbol" field.
func SymbolHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSymbol, v))
}

// SymbolEqualFold applies the EqualFold predicate on the "symbol" field.
func SymbolEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSymbol, v))
}

// SymbolContainsFold applies the ContainsFold predicate on the "symbol" field.
func SymbolContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSymbol, v))
}

// SignalDirectionEQ applies the EQ predicate on the "signal_direction" field.
func SignalDirectionEQ(v SignalDirection) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSignalDirection, v))
}

// SignalDirectionNEQ applies the NEQ predicate on the "signal_direction" field.
func SignalDirectionNEQ(v SignalDirection) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSignalDirection, v))
}

// SignalDirectionIn applies the In predicate on the "signal_direction" field.
func SignalDirectionIn(vs ...SignalDirection) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSignalDirection, vs...))
}

// SignalDirectionNotIn applies the NotIn predicate on the "signal_direction" field.
func SignalDirectionNotIn(vs ...SignalDirection) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSignalDirection, vs...))
}

// EntryPriceEQ applies the EQ predicate on the "entry_price" field.
func EntryPriceEQ(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEntryPrice, v))
}

// EntryPriceNEQ applies the NEQ predicate on the "entry_price" field.
func EntryPriceNEQ(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEntryPrice, v))
}

// EntryPriceIn applies the In predicate on the "entry_price" field.
func EntryPriceIn(vs ...decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEntryPrice, vs...))
}

// EntryPriceNotIn applies the NotIn predicate on the "entry_price" field.
func EntryPriceNotIn(vs ...decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEntryPrice, vs...))
}

// EntryPriceGT applies the GT predicate on the "entry_price" field.
func EntryPriceGT(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEntryPrice, v))
}

// EntryPriceGTE applies the GTE predicate on the "entry_price" field.
func EntryPriceGTE(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEntryPrice, v))
}

// EntryPriceLT applies the LT predicate on the "entry_price" field.
func EntryPriceLT(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEntryPrice, v))
}

// EntryPriceLTE applies the LTE predicate on the "entry_price" field.
func EntryPriceLTE(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEntryPrice, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSize, v))
}

// LiquidationPriceEQ applies the EQ predicate on the "liquidation_price" field.
func LiquidationPriceEQ(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldLiquidationPrice, v))
}

// LiquidationPriceNEQ applies the NEQ predicate on the "liquidation_price" field.
func LiquidationPriceNEQ(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldLiquidationPrice, v))
}

// LiquidationPriceIn applies the In predicate on the "liquidation_price" field.
func LiquidationPriceIn(vs ...decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldLiquidationPrice, vs...))
}

// LiquidationPriceNotIn applies the NotIn predicate on the "liquidation_price" field.
func LiquidationPriceNotIn(vs ...decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldLiquidationPrice, vs...))
}

// LiquidationPriceGT applies the GT predicate on the "liquidation_price" field.
func LiquidationPriceGT(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldLiquidationPrice, v))
}

// LiquidationPriceGTE applies the GTE predicate on the "liquidation_price" field.
func LiquidationPriceGTE(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldLiquidationPrice, v))
}

// LiquidationPriceLT applies the LT predicate on the "liquidation_price" field.
func LiquidationPriceLT(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldLiquidationPrice, v))
}

// LiquidationPriceLTE applies the LTE predicate on the "liquidation_price" field.
func LiquidationPriceLTE(v decimal.Decimal) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldLiquidationPrice, v))
}

// LiquidationPriceIsNil applies the IsNil predicate on the "liquidation_price" field.
func LiquidationPriceIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldLiquidationPrice))
}

// LiquidationPriceNotNil applies the NotNil predicate on the "liquidation_price" field.
func LiquidationPriceNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldLiquidationPrice))
}

// TsUtcEQ applies the EQ predicate on the "ts_utc" field.
func TsUtcEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTsUtc, v))
}

// TsUtcNEQ applies the NEQ predicate on the "ts_utc" field.
func TsUtcNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTsUtc, v))
}

// TsUtcIn applies the In predicate on the "ts_utc" field.
func TsUtcIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTsUtc, vs...))
}

// TsUtcNotIn applies the NotIn predicate on the "ts_utc" field.
func TsUtcNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTsUtc, vs...))
}

// TsUtcGT applies the GT predicate on the "ts_utc" field.
func TsUtcGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTsUtc, v))
}

// TsUtcGTE applies the GTE predicate on the "ts_utc" field.
func TsUtcGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTsUtc, v))
}

// TsUtcLT applies the LT predicate on the "ts_utc" field.
func TsUtcLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTsUtc, v))
}

// TsUtcLTE applies the LTE predicate on the "ts_utc" field.
func TsUtcLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTsUtc, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldSource, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStatus, vs...))
}

// FeatureProfileEQ applies the EQ predicate on the "feature_profile" field.
func FeatureProfileEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFeatureProfile, v))
}

// FeatureProfileNEQ applies the NEQ predicate on the "feature_profile" field.
func FeatureProfileNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldFeatureProfile, v))
}

// FeatureProfileIn applies the In predicate on the "feature_profile" field.
func FeatureProfileIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldFeatureProfile, vs...))
}

// FeatureProfileNotIn applies the NotIn predicate on the "feature_profile" field.
func FeatureProfileNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldFeatureProfile, vs...))
}

// FeatureProfileGT applies the GT predicate on the "feature_profile" field.
func FeatureProfileGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldFeatureProfile, v))
}

// FeatureProfileGTE applies the GTE predicate on the "feature_profile" field.
func FeatureProfileGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldFeatureProfile, v))
}

// FeatureProfileLT applies the LT predicate on the "feature_profile" field.
func FeatureProfileLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldFeatureProfile, v))
}

// FeatureProfileLTE applies the LTE predicate on the "feature_profile" field.
func FeatureProfileLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldFeatureProfile, v))
}

// FeatureProfileContains applies the Contains predicate on the "feature_profile" field.
func FeatureProfileContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldFeatureProfile, v))
}

// FeatureProfileHasPrefix applies the HasPrefix predicate on the "feature_profile" field.
func FeatureProfileHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldFeatureProfile, v))
}

// FeatureProfileHasSuffix applies the HasSuffix predicate on the "feature_profile" field.
func FeatureProfileHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldFeatureProfile, v))
}

// FeatureProfileIsNil applies the IsNil predicate on the "feature_profile" field.
func FeatureProfileIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldFeatureProfile))
}

// FeatureProfileNotNil applies the NotNil predicate on the "feature_profile" field.
func FeatureProfileNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldFeatureProfile))
}

// FeatureProfileEqualFold applies the EqualFold predicate on the "feature_profile" field.
func FeatureProfileEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldFeatureProfile, v))
}

// FeatureProfileContainsFold applies the ContainsFold predicate on the "feature_profile" field.
func FeatureProfileContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldFeatureProfile, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldReceivedAt, v))
}

// EnrichedAtEQ applies the EQ predicate on the "enriched_at" field.
func EnrichedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEnrichedAt, v))
}

// EnrichedAtNEQ applies the NEQ predicate on the "enriched_at" field.
func EnrichedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEnrichedAt, v))
}

// EnrichedAtIn applies the In predicate on the "enriched_at" field.
func EnrichedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEnrichedAt, vs...))
}

// EnrichedAtNotIn applies the NotIn predicate on the "enriched_at" field.
func EnrichedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEnrichedAt, vs...))
}

// EnrichedAtGT applies the GT predicate on the "enriched_at" field.
func EnrichedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEnrichedAt, v))
}

// EnrichedAtGTE applies the GTE predicate on the "enriched_at" field.
func EnrichedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEnrichedAt, v))
}

// EnrichedAtLT applies the LT predicate on the "enriched_at" field.
func EnrichedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEnrichedAt, v))
}

// EnrichedAtLTE applies the LTE predicate on the "enriched_at" field.
func EnrichedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEnrichedAt, v))
}

// EnrichedAtIsNil applies the IsNil predicate on the "enriched_at" field.
func EnrichedAtIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEnrichedAt))
}

// EnrichedAtNotNil applies the NotNil predicate on the "enriched_at" field.
func EnrichedAtNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEnrichedAt))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEvaluatedAt, v))
}

// EvaluatedAtIsNil applies the IsNil predicate on the "evaluated_at" field.
func EvaluatedAtIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEvaluatedAt))
}

// EvaluatedAtNotNil applies the NotNil predicate on the "evaluated_at" field.
func EvaluatedAtNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEvaluatedAt))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldPublishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
