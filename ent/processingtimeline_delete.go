// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sigmapilot/lens/ent/predicate"
	"github.com/sigmapilot/lens/ent/processingtimeline"
)

// ProcessingTimelineDelete is the builder for deleting a ProcessingTimeline entity.
type ProcessingTimelineDelete struct {
	config
	hooks    []Hook
	mutation *ProcessingTimelineMutation
}

// Where appends a list predicates to the ProcessingTimelineDelete builder.
func (_d *ProcessingTimelineDelete) Where(ps ...predicate.ProcessingTimeline) *ProcessingTimelineDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessingTimelineDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingTimelineDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessingTimelineDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processingtimeline.Table, sqlgraph.NewFieldSpec(processingtimeline.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProcessingTimelineDeleteOne is the builder for deleting a single ProcessingTimeline entity.
type ProcessingTimelineDeleteOne struct {
	_d *ProcessingTimelineDelete
}

// Where appends a list predicates to the ProcessingTimelineDelete builder.
func (_d *ProcessingTimelineDeleteOne) Where(ps ...predicate.ProcessingTimeline) *ProcessingTimelineDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessingTimelineDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processingtimeline.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingTimelineDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
