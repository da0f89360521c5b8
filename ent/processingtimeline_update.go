// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sigmapilot/lens/ent/predicate"
	"github.com/sigmapilot/lens/ent/processingtimeline"
)

// ProcessingTimelineUpdate is the builder for updating ProcessingTimeline entities.
type ProcessingTimelineUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingTimelineMutation
}

// Where appends a list predicates to the ProcessingTimelineUpdate builder.
func (_u *ProcessingTimelineUpdate) Where(ps ...predicate.ProcessingTimeline) *ProcessingTimelineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ProcessingTimelineMutation object of the builder.
func (_u *ProcessingTimelineUpdate) Mutation() *ProcessingTimelineMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingTimelineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingTimelineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingTimelineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingTimelineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingTimelineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processingtimeline.Table, processingtimeline.Columns, sqlgraph.NewFieldSpec(processingtimeline.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(processingtimeline.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingtimeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingTimelineUpdateOne is the builder for updating a single ProcessingTimeline entity.
type ProcessingTimelineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingTimelineMutation
}

// Mutation returns the ProcessingTimelineMutation object of the builder.
func (_u *ProcessingTimelineUpdateOne) Mutation() *ProcessingTimelineMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingTimelineUpdate builder.
func (_u *ProcessingTimelineUpdateOne) Where(ps ...predicate.ProcessingTimeline) *ProcessingTimelineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingTimelineUpdateOne) Select(field string, fields ...string) *ProcessingTimelineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingTimeline entity.
func (_u *ProcessingTimelineUpdateOne) Save(ctx context.Context) (*ProcessingTimeline, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingTimelineUpdateOne) SaveX(ctx context.Context) *ProcessingTimeline {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingTimelineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingTimelineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingTimelineUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingTimeline, err error) {
	_spec := sqlgraph.NewUpdateSpec(processingtimeline.Table, processingtimeline.Columns, sqlgraph.NewFieldSpec(processingtimeline.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingTimeline.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingtimeline.FieldID)
		for _, f := range fields {
			if !processingtimeline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingtimeline.FieldID {
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
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(processingtimeline.FieldDetails, field.TypeJSON)
	}
	_node = &ProcessingTimeline{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingtimeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
