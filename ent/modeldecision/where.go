// Code generated by ent, DO NOT EDIT.

package modeldecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldEventID, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldModelName, v))
}

// ModelVersion applies equality check predicate on the "model_version" field. It's identical to ModelVersionEQ.
func ModelVersion(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldModelVersion, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptHash applies equality check predicate on the "prompt_hash" field. It's identical to PromptHashEQ.
func PromptHash(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldPromptHash, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldDecision, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldConfidence, v))
}

// SizePct applies equality check predicate on the "size_pct" field. It's identical to SizePctEQ.
func SizePct(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldSizePct, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldLatencyMs, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldTokensOut, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldStatus, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldErrorMessage, v))
}

// RawResponse applies equality check predicate on the "raw_response" field. It's identical to RawResponseEQ.
func RawResponse(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldRawResponse, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldEvaluatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldEventID, v))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldModelName, v))
}

// ModelVersionEQ applies the EQ predicate on the "model_version" field.
func ModelVersionEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldModelVersion, v))
}

// ModelVersionNEQ applies the NEQ predicate on the "model_version" field.
func ModelVersionNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldModelVersion, v))
}

// ModelVersionIn applies the In predicate on the "model_version" field.
func ModelVersionIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldModelVersion, vs...))
}

// ModelVersionNotIn applies the NotIn predicate on the "model_version" field.
func ModelVersionNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldModelVersion, vs...))
}

// ModelVersionGT applies the GT predicate on the "model_version" field.
func ModelVersionGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldModelVersion, v))
}

// ModelVersionGTE applies the GTE predicate on the "model_version" field.
func ModelVersionGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldModelVersion, v))
}

// ModelVersionLT applies the LT predicate on the "model_version" field.
func ModelVersionLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldModelVersion, v))
}

// ModelVersionLTE applies the LTE predicate on the "model_version" field.
func ModelVersionLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldModelVersion, v))
}

// ModelVersionContains applies the Contains predicate on the "model_version" field.
func ModelVersionContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldModelVersion, v))
}

// ModelVersionHasPrefix applies the HasPrefix predicate on the "model_version" field.
func ModelVersionHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldModelVersion, v))
}

// ModelVersionHasSuffix applies the HasSuffix predicate on the "model_version" field.
func ModelVersionHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldModelVersion, v))
}

// ModelVersionIsNil applies the IsNil predicate on the "model_version" field.
func ModelVersionIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldModelVersion))
}

// ModelVersionNotNil applies the NotNil predicate on the "model_version" field.
func ModelVersionNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldModelVersion))
}

// ModelVersionEqualFold applies the EqualFold predicate on the "model_version" field.
func ModelVersionEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldModelVersion, v))
}

// ModelVersionContainsFold applies the ContainsFold predicate on the "model_version" field.
func ModelVersionContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldModelVersion, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldPromptVersion, v))
}

// PromptHashEQ applies the EQ predicate on the "prompt_hash" field.
func PromptHashEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldPromptHash, v))
}

// PromptHashNEQ applies the NEQ predicate on the "prompt_hash" field.
func PromptHashNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldPromptHash, v))
}

// PromptHashIn applies the In predicate on the "prompt_hash" field.
func PromptHashIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldPromptHash, vs...))
}

// PromptHashNotIn applies the NotIn predicate on the "prompt_hash" field.
func PromptHashNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldPromptHash, vs...))
}

// PromptHashGT applies the GT predicate on the "prompt_hash" field.
func PromptHashGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldPromptHash, v))
}

// PromptHashGTE applies the GTE predicate on the "prompt_hash" field.
func PromptHashGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldPromptHash, v))
}

// PromptHashLT applies the LT predicate on the "prompt_hash" field.
func PromptHashLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldPromptHash, v))
}

// PromptHashLTE applies the LTE predicate on the "prompt_hash" field.
func PromptHashLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldPromptHash, v))
}

// PromptHashContains applies the Contains predicate on the "prompt_hash" field.
func PromptHashContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldPromptHash, v))
}

// PromptHashHasPrefix applies the HasPrefix predicate on the "prompt_hash" field.
func PromptHashHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldPromptHash, v))
}

// PromptHashHasSuffix applies the HasSuffix predicate on the "prompt_hash" field.
func PromptHashHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldPromptHash, v))
}

// PromptHashIsNil applies the IsNil predicate on the "prompt_hash" field.
func PromptHashIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldPromptHash))
}

// PromptHashNotNil applies the NotNil predicate on the "prompt_hash" field.
func PromptHashNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldPromptHash))
}

// PromptHashEqualFold applies the EqualFold predicate on the "prompt_hash" field.
func PromptHashEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldPromptHash, v))
}

// PromptHashContainsFold applies the ContainsFold predicate on the "prompt_hash" field.
func PromptHashContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldPromptHash, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldDecision, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldConfidence, v))
}

// EntryPlanIsNil applies the IsNil predicate on the "entry_plan" field.
func EntryPlanIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldEntryPlan))
}

// EntryPlanNotNil applies the NotNil predicate on the "entry_plan" field.
func EntryPlanNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldEntryPlan))
}

// RiskPlanIsNil applies the IsNil predicate on the "risk_plan" field.
func RiskPlanIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldRiskPlan))
}

// RiskPlanNotNil applies the NotNil predicate on the "risk_plan" field.
func RiskPlanNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldRiskPlan))
}

// SizePctEQ applies the EQ predicate on the "size_pct" field.
func SizePctEQ(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldSizePct, v))
}

// SizePctNEQ applies the NEQ predicate on the "size_pct" field.
func SizePctNEQ(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldSizePct, v))
}

// SizePctIn applies the In predicate on the "size_pct" field.
func SizePctIn(vs ...float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldSizePct, vs...))
}

// SizePctNotIn applies the NotIn predicate on the "size_pct" field.
func SizePctNotIn(vs ...float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldSizePct, vs...))
}

// SizePctGT applies the GT predicate on the "size_pct" field.
func SizePctGT(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldSizePct, v))
}

// SizePctGTE applies the GTE predicate on the "size_pct" field.
func SizePctGTE(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldSizePct, v))
}

// SizePctLT applies the LT predicate on the "size_pct" field.
func SizePctLT(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldSizePct, v))
}

// SizePctLTE applies the LTE predicate on the "size_pct" field.
func SizePctLTE(v float64) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldSizePct, v))
}

// SizePctIsNil applies the IsNil predicate on the "size_pct" field.
func SizePctIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldSizePct))
}

// SizePctNotNil applies the NotNil predicate on the "size_pct" field.
func SizePctNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldSizePct))
}

// ReasonsIsNil applies the IsNil predicate on the "reasons" field.
func ReasonsIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldReasons))
}

// ReasonsNotNil applies the NotNil predicate on the "reasons" field.
func ReasonsNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldReasons))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyMsIsNil applies the IsNil predicate on the "latency_ms" field.
func LatencyMsIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldLatencyMs))
}

// LatencyMsNotNil applies the NotNil predicate on the "latency_ms" field.
func LatencyMsNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldLatencyMs))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldTokensIn, v))
}

// TokensInIsNil applies the IsNil predicate on the "tokens_in" field.
func TokensInIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldTokensIn))
}

// TokensInNotNil applies the NotNil predicate on the "tokens_in" field.
func TokensInNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldTokensIn))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldTokensOut, v))
}

// TokensOutIsNil applies the IsNil predicate on the "tokens_out" field.
func TokensOutIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldTokensOut))
}

// TokensOutNotNil applies the NotNil predicate on the "tokens_out" field.
func TokensOutNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldTokensOut))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RawResponseEQ applies the EQ predicate on the "raw_response" field.
func RawResponseEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldRawResponse, v))
}

// RawResponseNEQ applies the NEQ predicate on the "raw_response" field.
func RawResponseNEQ(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldRawResponse, v))
}

// RawResponseIn applies the In predicate on the "raw_response" field.
func RawResponseIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldRawResponse, vs...))
}

// RawResponseNotIn applies the NotIn predicate on the "raw_response" field.
func RawResponseNotIn(vs ...string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldRawResponse, vs...))
}

// RawResponseGT applies the GT predicate on the "raw_response" field.
func RawResponseGT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldRawResponse, v))
}

// RawResponseGTE applies the GTE predicate on the "raw_response" field.
func RawResponseGTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldRawResponse, v))
}

// RawResponseLT applies the LT predicate on the "raw_response" field.
func RawResponseLT(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldRawResponse, v))
}

// RawResponseLTE applies the LTE predicate on the "raw_response" field.
func RawResponseLTE(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldRawResponse, v))
}

// RawResponseContains applies the Contains predicate on the "raw_response" field.
func RawResponseContains(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContains(FieldRawResponse, v))
}

// RawResponseHasPrefix applies the HasPrefix predicate on the "raw_response" field.
func RawResponseHasPrefix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasPrefix(FieldRawResponse, v))
}

// RawResponseHasSuffix applies the HasSuffix predicate on the "raw_response" field.
func RawResponseHasSuffix(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldHasSuffix(FieldRawResponse, v))
}

// RawResponseIsNil applies the IsNil predicate on the "raw_response" field.
func RawResponseIsNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIsNull(FieldRawResponse))
}

// RawResponseNotNil applies the NotNil predicate on the "raw_response" field.
func RawResponseNotNil() predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotNull(FieldRawResponse))
}

// RawResponseEqualFold applies the EqualFold predicate on the "raw_response" field.
func RawResponseEqualFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEqualFold(FieldRawResponse, v))
}

// RawResponseContainsFold applies the ContainsFold predicate on the "raw_response" field.
func RawResponseContainsFold(v string) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldContainsFold(FieldRawResponse, v))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldEvaluatedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelDecision {
	return predicate.ModelDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelDecision) predicate.ModelDecision {
	return predicate.ModelDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelDecision) predicate.ModelDecision {
	return predicate.ModelDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelDecision) predicate.ModelDecision {
	return predicate.ModelDecision(sql.NotPredicates(p))
}
