// Code generated by ent, DO NOT EDIT.

package enrichedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldEventID, v))
}

// FeatureProfile applies equality check predicate on the "feature_profile" field. It's identical to FeatureProfileEQ.
func FeatureProfile(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldFeatureProfile, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderVersion applies equality check predicate on the "provider_version" field. It's identical to ProviderVersionEQ.
func ProviderVersion(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldProviderVersion, v))
}

// EnrichmentDurationMs applies equality check predicate on the "enrichment_duration_ms" field. It's identical to EnrichmentDurationMsEQ.
func EnrichmentDurationMs(v int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldEnrichmentDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContainsFold(FieldEventID, v))
}

// FeatureProfileEQ applies the EQ predicate on the "feature_profile" field.
func FeatureProfileEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldFeatureProfile, v))
}

// FeatureProfileNEQ applies the NEQ predicate on the "feature_profile" field.
func FeatureProfileNEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNEQ(FieldFeatureProfile, v))
}

// FeatureProfileIn applies the In predicate on the "feature_profile" field.
func FeatureProfileIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIn(FieldFeatureProfile, vs...))
}

// FeatureProfileNotIn applies the NotIn predicate on the "feature_profile" field.
func FeatureProfileNotIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotIn(FieldFeatureProfile, vs...))
}

// FeatureProfileGT applies the GT predicate on the "feature_profile" field.
func FeatureProfileGT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGT(FieldFeatureProfile, v))
}

// FeatureProfileGTE applies the GTE predicate on the "feature_profile" field.
func FeatureProfileGTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGTE(FieldFeatureProfile, v))
}

// FeatureProfileLT applies the LT predicate on the "feature_profile" field.
func FeatureProfileLT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLT(FieldFeatureProfile, v))
}

// FeatureProfileLTE applies the LTE predicate on the "feature_profile" field.
func FeatureProfileLTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLTE(FieldFeatureProfile, v))
}

// FeatureProfileContains applies the Contains predicate on the "feature_profile" field.
func FeatureProfileContains(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContains(FieldFeatureProfile, v))
}

// FeatureProfileHasPrefix applies the HasPrefix predicate on the "feature_profile" field.
func FeatureProfileHasPrefix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasPrefix(FieldFeatureProfile, v))
}

// FeatureProfileHasSuffix applies the HasSuffix predicate on the "feature_profile" field.
func FeatureProfileHasSuffix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasSuffix(FieldFeatureProfile, v))
}

// FeatureProfileEqualFold applies the EqualFold predicate on the "feature_profile" field.
func FeatureProfileEqualFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEqualFold(FieldFeatureProfile, v))
}

// FeatureProfileContainsFold applies the ContainsFold predicate on the "feature_profile" field.
func FeatureProfileContainsFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContainsFold(FieldFeatureProfile, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContainsFold(FieldProvider, v))
}

// ProviderVersionEQ applies the EQ predicate on the "provider_version" field.
func ProviderVersionEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldProviderVersion, v))
}

// ProviderVersionNEQ applies the NEQ predicate on the "provider_version" field.
func ProviderVersionNEQ(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNEQ(FieldProviderVersion, v))
}

// ProviderVersionIn applies the In predicate on the "provider_version" field.
func ProviderVersionIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIn(FieldProviderVersion, vs...))
}

// ProviderVersionNotIn applies the NotIn predicate on the "provider_version" field.
func ProviderVersionNotIn(vs ...string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotIn(FieldProviderVersion, vs...))
}

// ProviderVersionGT applies the GT predicate on the "provider_version" field.
func ProviderVersionGT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGT(FieldProviderVersion, v))
}

// ProviderVersionGTE applies the GTE predicate on the "provider_version" field.
func ProviderVersionGTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGTE(FieldProviderVersion, v))
}

// ProviderVersionLT applies the LT predicate on the "provider_version" field.
func ProviderVersionLT(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLT(FieldProviderVersion, v))
}

// ProviderVersionLTE applies the LTE predicate on the "provider_version" field.
func ProviderVersionLTE(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLTE(FieldProviderVersion, v))
}

// ProviderVersionContains applies the Contains predicate on the "provider_version" field.
func ProviderVersionContains(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContains(FieldProviderVersion, v))
}

// ProviderVersionHasPrefix applies the HasPrefix predicate on the "provider_version" field.
func ProviderVersionHasPrefix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasPrefix(FieldProviderVersion, v))
}

// ProviderVersionHasSuffix applies the HasSuffix predicate on the "provider_version" field.
func ProviderVersionHasSuffix(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldHasSuffix(FieldProviderVersion, v))
}

// ProviderVersionIsNil applies the IsNil predicate on the "provider_version" field.
func ProviderVersionIsNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIsNull(FieldProviderVersion))
}

// ProviderVersionNotNil applies the NotNil predicate on the "provider_version" field.
func ProviderVersionNotNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotNull(FieldProviderVersion))
}

// ProviderVersionEqualFold applies the EqualFold predicate on the "provider_version" field.
func ProviderVersionEqualFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEqualFold(FieldProviderVersion, v))
}

// ProviderVersionContainsFold applies the ContainsFold predicate on the "provider_version" field.
func ProviderVersionContainsFold(v string) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldContainsFold(FieldProviderVersion, v))
}

// LevelsDataIsNil applies the IsNil predicate on the "levels_data" field.
func LevelsDataIsNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIsNull(FieldLevelsData))
}

// LevelsDataNotNil applies the NotNil predicate on the "levels_data" field.
func LevelsDataNotNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotNull(FieldLevelsData))
}

// DerivsDataIsNil applies the IsNil predicate on the "derivs_data" field.
func DerivsDataIsNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIsNull(FieldDerivsData))
}

// DerivsDataNotNil applies the NotNil predicate on the "derivs_data" field.
func DerivsDataNotNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotNull(FieldDerivsData))
}

// ConstraintsIsNil applies the IsNil predicate on the "constraints" field.
func ConstraintsIsNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIsNull(FieldConstraints))
}

// ConstraintsNotNil applies the NotNil predicate on the "constraints" field.
func ConstraintsNotNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotNull(FieldConstraints))
}

// QualityFlagsIsNil applies the IsNil predicate on the "quality_flags" field.
func QualityFlagsIsNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIsNull(FieldQualityFlags))
}

// QualityFlagsNotNil applies the NotNil predicate on the "quality_flags" field.
func QualityFlagsNotNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotNull(FieldQualityFlags))
}

// EnrichedPayloadIsNil applies the IsNil predicate on the "enriched_payload" field.
func EnrichedPayloadIsNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIsNull(FieldEnrichedPayload))
}

// EnrichedPayloadNotNil applies the NotNil predicate on the "enriched_payload" field.
func EnrichedPayloadNotNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotNull(FieldEnrichedPayload))
}

// EnrichmentDurationMsEQ applies the EQ predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsEQ(v int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldEnrichmentDurationMs, v))
}

// EnrichmentDurationMsNEQ applies the NEQ predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsNEQ(v int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNEQ(FieldEnrichmentDurationMs, v))
}

// EnrichmentDurationMsIn applies the In predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsIn(vs ...int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIn(FieldEnrichmentDurationMs, vs...))
}

// EnrichmentDurationMsNotIn applies the NotIn predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsNotIn(vs ...int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotIn(FieldEnrichmentDurationMs, vs...))
}

// EnrichmentDurationMsGT applies the GT predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsGT(v int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGT(FieldEnrichmentDurationMs, v))
}

// EnrichmentDurationMsGTE applies the GTE predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsGTE(v int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGTE(FieldEnrichmentDurationMs, v))
}

// EnrichmentDurationMsLT applies the LT predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsLT(v int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLT(FieldEnrichmentDurationMs, v))
}

// EnrichmentDurationMsLTE applies the LTE predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsLTE(v int) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLTE(FieldEnrichmentDurationMs, v))
}

// EnrichmentDurationMsIsNil applies the IsNil predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsIsNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIsNull(FieldEnrichmentDurationMs))
}

// EnrichmentDurationMsNotNil applies the NotNil predicate on the "enrichment_duration_ms" field.
func EnrichmentDurationMsNotNil() predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotNull(FieldEnrichmentDurationMs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnrichedEvent) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnrichedEvent) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnrichedEvent) predicate.EnrichedEvent {
	return predicate.EnrichedEvent(sql.NotPredicates(p))
}
