// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sigmapilot/lens/ent/enrichedevent"
	"github.com/sigmapilot/lens/ent/predicate"
)

// EnrichedEventUpdate is the builder for updating EnrichedEvent entities.
type EnrichedEventUpdate struct {
	config
	hooks    []Hook
	mutation *EnrichedEventMutation
}

// Where appends a list predicates to the EnrichedEventUpdate builder.
func (_u *EnrichedEventUpdate) Where(ps ...predicate.EnrichedEvent) *EnrichedEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EnrichedEventMutation object of the builder.
func (_u *EnrichedEventUpdate) Mutation() *EnrichedEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrichedEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichedEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrichedEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichedEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EnrichedEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(enrichedevent.Table, enrichedevent.Columns, sqlgraph.NewFieldSpec(enrichedevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ProviderVersionCleared() {
		_spec.ClearField(enrichedevent.FieldProviderVersion, field.TypeString)
	}
	if _u.mutation.LevelsDataCleared() {
		_spec.ClearField(enrichedevent.FieldLevelsData, field.TypeJSON)
	}
	if _u.mutation.DerivsDataCleared() {
		_spec.ClearField(enrichedevent.FieldDerivsData, field.TypeJSON)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(enrichedevent.FieldConstraints, field.TypeJSON)
	}
	if _u.mutation.QualityFlagsCleared() {
		_spec.ClearField(enrichedevent.FieldQualityFlags, field.TypeJSON)
	}
	if _u.mutation.EnrichedPayloadCleared() {
		_spec.ClearField(enrichedevent.FieldEnrichedPayload, field.TypeJSON)
	}
	if _u.mutation.EnrichmentDurationMsCleared() {
		_spec.ClearField(enrichedevent.FieldEnrichmentDurationMs, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrichedEventUpdateOne is the builder for updating a single EnrichedEvent entity.
type EnrichedEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrichedEventMutation
}

// Mutation returns the EnrichedEventMutation object of the builder.
func (_u *EnrichedEventUpdateOne) Mutation() *EnrichedEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnrichedEventUpdate builder.
func (_u *EnrichedEventUpdateOne) Where(ps ...predicate.EnrichedEvent) *EnrichedEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrichedEventUpdateOne) Select(field string, fields ...string) *EnrichedEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnrichedEvent entity.
func (_u *EnrichedEventUpdateOne) Save(ctx context.Context) (*EnrichedEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichedEventUpdateOne) SaveX(ctx context.Context) *EnrichedEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrichedEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichedEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EnrichedEventUpdateOne) sqlSave(ctx context.Context) (_node *EnrichedEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(enrichedevent.Table, enrichedevent.Columns, sqlgraph.NewFieldSpec(enrichedevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnrichedEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrichedevent.FieldID)
		for _, f := range fields {
			if !enrichedevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrichedevent.FieldID {
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
	if _u.mutation.ProviderVersionCleared() {
		_spec.ClearField(enrichedevent.FieldProviderVersion, field.TypeString)
	}
	if _u.mutation.LevelsDataCleared() {
		_spec.ClearField(enrichedevent.FieldLevelsData, field.TypeJSON)
	}
	if _u.mutation.DerivsDataCleared() {
		_spec.ClearField(enrichedevent.FieldDerivsData, field.TypeJSON)
	}
	if _u.mutation.ConstraintsCleared() {
		_spec.ClearField(enrichedevent.FieldConstraints, field.TypeJSON)
	}
	if _u.mutation.QualityFlagsCleared() {
		_spec.ClearField(enrichedevent.FieldQualityFlags, field.TypeJSON)
	}
	if _u.mutation.EnrichedPayloadCleared() {
		_spec.ClearField(enrichedevent.FieldEnrichedPayload, field.TypeJSON)
	}
	if _u.mutation.EnrichmentDurationMsCleared() {
		_spec.ClearField(enrichedevent.FieldEnrichmentDurationMs, field.TypeInt)
	}
	_node = &EnrichedEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichedevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
