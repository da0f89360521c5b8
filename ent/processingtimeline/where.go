// Code generated by ent, DO NOT EDIT.

package processingtimeline

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLTE(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldEventID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldStatus, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldOccurredAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldContainsFold(FieldEventID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldContainsFold(FieldStatus, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNotNull(FieldDetails))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.FieldLTE(FieldOccurredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingTimeline) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingTimeline) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingTimeline) predicate.ProcessingTimeline {
	return predicate.ProcessingTimeline(sql.NotPredicates(p))
}
