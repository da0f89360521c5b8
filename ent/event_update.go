// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/ent/predicate"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventUpdate) SetStatus(v event.Status) *EventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStatus(v *event.Status) *EventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFeatureProfile sets the "feature_profile" field.
func (_u *EventUpdate) SetFeatureProfile(v string) *EventUpdate {
	_u.mutation.SetFeatureProfile(v)
	return _u
}

// SetNillableFeatureProfile sets the "feature_profile" field if the given value is not nil.
func (_u *EventUpdate) SetNillableFeatureProfile(v *string) *EventUpdate {
	if v != nil {
		_u.SetFeatureProfile(*v)
	}
	return _u
}

// ClearFeatureProfile clears the value of the "feature_profile" field.
func (_u *EventUpdate) ClearFeatureProfile() *EventUpdate {
	_u.mutation.ClearFeatureProfile()
	return _u
}

// SetEnrichedAt sets the "enriched_at" field.
func (_u *EventUpdate) SetEnrichedAt(v time.Time) *EventUpdate {
	_u.mutation.SetEnrichedAt(v)
	return _u
}

// SetNillableEnrichedAt sets the "enriched_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEnrichedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEnrichedAt(*v)
	}
	return _u
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (_u *EventUpdate) ClearEnrichedAt() *EventUpdate {
	_u.mutation.ClearEnrichedAt()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *EventUpdate) SetEvaluatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEvaluatedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (_u *EventUpdate) ClearEvaluatedAt() *EventUpdate {
	_u.mutation.ClearEvaluatedAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EventUpdate) SetPublishedAt(v time.Time) *EventUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillablePublishedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EventUpdate) ClearPublishedAt() *EventUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *EventUpdate) SetRawPayload(v map[string]interface{}) *EventUpdate {
	_u.mutation.SetRawPayload(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeatureProfile(); ok {
		if err := event.FeatureProfileValidator(v); err != nil {
			return &ValidationError{Name: "feature_profile", err: fmt.Errorf(`ent: validator failed for field "Event.feature_profile": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(event.FieldIdempotencyKey, field.TypeString)
	}
	if _u.mutation.LiquidationPriceCleared() {
		_spec.ClearField(event.FieldLiquidationPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FeatureProfile(); ok {
		_spec.SetField(event.FieldFeatureProfile, field.TypeString, value)
	}
	if _u.mutation.FeatureProfileCleared() {
		_spec.ClearField(event.FieldFeatureProfile, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedAt(); ok {
		_spec.SetField(event.FieldEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrichedAtCleared() {
		_spec.ClearField(event.FieldEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(event.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedAtCleared() {
		_spec.ClearField(event.FieldEvaluatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(event.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(event.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(event.FieldRawPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetStatus sets the "status" field.
func (_u *EventUpdateOne) SetStatus(v event.Status) *EventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStatus(v *event.Status) *EventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFeatureProfile sets the "feature_profile" field.
func (_u *EventUpdateOne) SetFeatureProfile(v string) *EventUpdateOne {
	_u.mutation.SetFeatureProfile(v)
	return _u
}

// SetNillableFeatureProfile sets the "feature_profile" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableFeatureProfile(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetFeatureProfile(*v)
	}
	return _u
}

// ClearFeatureProfile clears the value of the "feature_profile" field.
func (_u *EventUpdateOne) ClearFeatureProfile() *EventUpdateOne {
	_u.mutation.ClearFeatureProfile()
	return _u
}

// SetEnrichedAt sets the "enriched_at" field.
func (_u *EventUpdateOne) SetEnrichedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetEnrichedAt(v)
	return _u
}

// SetNillableEnrichedAt sets the "enriched_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEnrichedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEnrichedAt(*v)
	}
	return _u
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (_u *EventUpdateOne) ClearEnrichedAt() *EventUpdateOne {
	_u.mutation.ClearEnrichedAt()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *EventUpdateOne) SetEvaluatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEvaluatedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEvaluatedAt(*v)
	}
	return _u
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (_u *EventUpdateOne) ClearEvaluatedAt() *EventUpdateOne {
	_u.mutation.ClearEvaluatedAt()
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *EventUpdateOne) SetPublishedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillablePublishedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *EventUpdateOne) ClearPublishedAt() *EventUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetRawPayload sets the "raw_payload" field.
func (_u *EventUpdateOne) SetRawPayload(v map[string]interface{}) *EventUpdateOne {
	_u.mutation.SetRawPayload(v)
	return _u
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FeatureProfile(); ok {
		if err := event.FeatureProfileValidator(v); err != nil {
			return &ValidationError{Name: "feature_profile", err: fmt.Errorf(`ent: validator failed for field "Event.feature_profile": %w`, err)}
		}
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(event.FieldIdempotencyKey, field.TypeString)
	}
	if _u.mutation.LiquidationPriceCleared() {
		_spec.ClearField(event.FieldLiquidationPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FeatureProfile(); ok {
		_spec.SetField(event.FieldFeatureProfile, field.TypeString, value)
	}
	if _u.mutation.FeatureProfileCleared() {
		_spec.ClearField(event.FieldFeatureProfile, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichedAt(); ok {
		_spec.SetField(event.FieldEnrichedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrichedAtCleared() {
		_spec.ClearField(event.FieldEnrichedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(event.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvaluatedAtCleared() {
		_spec.ClearField(event.FieldEvaluatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(event.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(event.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RawPayload(); ok {
		_spec.SetField(event.FieldRawPayload, field.TypeJSON, value)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
