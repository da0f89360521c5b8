// Code generated by ent, DO NOT EDIT.

package dlqentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldEventID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldStage, v))
}

// ReasonCode applies equality check predicate on the "reason_code" field. It's identical to ReasonCodeEQ.
func ReasonCode(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldReasonCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldRetryCount, v))
}

// LastRetryAt applies equality check predicate on the "last_retry_at" field. It's identical to LastRetryAtEQ.
func LastRetryAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldLastRetryAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolutionNote applies equality check predicate on the "resolution_note" field. It's identical to ResolutionNoteEQ.
func ResolutionNote(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldResolutionNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDIsNil applies the IsNil predicate on the "event_id" field.
func EventIDIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldEventID))
}

// EventIDNotNil applies the NotNil predicate on the "event_id" field.
func EventIDNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldEventID))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldEventID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldStage, v))
}

// ReasonCodeEQ applies the EQ predicate on the "reason_code" field.
func ReasonCodeEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldReasonCode, v))
}

// ReasonCodeNEQ applies the NEQ predicate on the "reason_code" field.
func ReasonCodeNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldReasonCode, v))
}

// ReasonCodeIn applies the In predicate on the "reason_code" field.
func ReasonCodeIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldReasonCode, vs...))
}

// ReasonCodeNotIn applies the NotIn predicate on the "reason_code" field.
func ReasonCodeNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldReasonCode, vs...))
}

// ReasonCodeGT applies the GT predicate on the "reason_code" field.
func ReasonCodeGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldReasonCode, v))
}

// ReasonCodeGTE applies the GTE predicate on the "reason_code" field.
func ReasonCodeGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldReasonCode, v))
}

// ReasonCodeLT applies the LT predicate on the "reason_code" field.
func ReasonCodeLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldReasonCode, v))
}

// ReasonCodeLTE applies the LTE predicate on the "reason_code" field.
func ReasonCodeLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldReasonCode, v))
}

// ReasonCodeContains applies the Contains predicate on the "reason_code" field.
func ReasonCodeContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldReasonCode, v))
}

// ReasonCodeHasPrefix applies the HasPrefix predicate on the "reason_code" field.
func ReasonCodeHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldReasonCode, v))
}

// ReasonCodeHasSuffix applies the HasSuffix predicate on the "reason_code" field.
func ReasonCodeHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldReasonCode, v))
}

// ReasonCodeEqualFold applies the EqualFold predicate on the "reason_code" field.
func ReasonCodeEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldReasonCode, v))
}

// ReasonCodeContainsFold applies the ContainsFold predicate on the "reason_code" field.
func ReasonCodeContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldReasonCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldRetryCount, v))
}

// LastRetryAtEQ applies the EQ predicate on the "last_retry_at" field.
func LastRetryAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldLastRetryAt, v))
}

// LastRetryAtNEQ applies the NEQ predicate on the "last_retry_at" field.
func LastRetryAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldLastRetryAt, v))
}

// LastRetryAtIn applies the In predicate on the "last_retry_at" field.
func LastRetryAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldLastRetryAt, vs...))
}

// LastRetryAtNotIn applies the NotIn predicate on the "last_retry_at" field.
func LastRetryAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldLastRetryAt, vs...))
}

// LastRetryAtGT applies the GT predicate on the "last_retry_at" field.
func LastRetryAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldLastRetryAt, v))
}

// LastRetryAtGTE applies the GTE predicate on the "last_retry_at" field.
func LastRetryAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldLastRetryAt, v))
}

// LastRetryAtLT applies the LT predicate on the "last_retry_at" field.
func LastRetryAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldLastRetryAt, v))
}

// LastRetryAtLTE applies the LTE predicate on the "last_retry_at" field.
func LastRetryAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldLastRetryAt, v))
}

// LastRetryAtIsNil applies the IsNil predicate on the "last_retry_at" field.
func LastRetryAtIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldLastRetryAt))
}

// LastRetryAtNotNil applies the NotNil predicate on the "last_retry_at" field.
func LastRetryAtNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldLastRetryAt))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldResolvedAt))
}

// ResolutionNoteEQ applies the EQ predicate on the "resolution_note" field.
func ResolutionNoteEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldResolutionNote, v))
}

// ResolutionNoteNEQ applies the NEQ predicate on the "resolution_note" field.
func ResolutionNoteNEQ(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldResolutionNote, v))
}

// ResolutionNoteIn applies the In predicate on the "resolution_note" field.
func ResolutionNoteIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldResolutionNote, vs...))
}

// ResolutionNoteNotIn applies the NotIn predicate on the "resolution_note" field.
func ResolutionNoteNotIn(vs ...string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldResolutionNote, vs...))
}

// ResolutionNoteGT applies the GT predicate on the "resolution_note" field.
func ResolutionNoteGT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldResolutionNote, v))
}

// ResolutionNoteGTE applies the GTE predicate on the "resolution_note" field.
func ResolutionNoteGTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldResolutionNote, v))
}

// ResolutionNoteLT applies the LT predicate on the "resolution_note" field.
func ResolutionNoteLT(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldResolutionNote, v))
}

// ResolutionNoteLTE applies the LTE predicate on the "resolution_note" field.
func ResolutionNoteLTE(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldResolutionNote, v))
}

// ResolutionNoteContains applies the Contains predicate on the "resolution_note" field.
func ResolutionNoteContains(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContains(FieldResolutionNote, v))
}

// ResolutionNoteHasPrefix applies the HasPrefix predicate on the "resolution_note" field.
func ResolutionNoteHasPrefix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasPrefix(FieldResolutionNote, v))
}

// ResolutionNoteHasSuffix applies the HasSuffix predicate on the "resolution_note" field.
func ResolutionNoteHasSuffix(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldHasSuffix(FieldResolutionNote, v))
}

// ResolutionNoteIsNil applies the IsNil predicate on the "resolution_note" field.
func ResolutionNoteIsNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIsNull(FieldResolutionNote))
}

// ResolutionNoteNotNil applies the NotNil predicate on the "resolution_note" field.
func ResolutionNoteNotNil() predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotNull(FieldResolutionNote))
}

// ResolutionNoteEqualFold applies the EqualFold predicate on the "resolution_note" field.
func ResolutionNoteEqualFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEqualFold(FieldResolutionNote, v))
}

// ResolutionNoteContainsFold applies the ContainsFold predicate on the "resolution_note" field.
func ResolutionNoteContainsFold(v string) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldContainsFold(FieldResolutionNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DLQEntry {
	return predicate.DLQEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DLQEntry) predicate.DLQEntry {
	return predicate.DLQEntry(sql.NotPredicates(p))
}
