// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sigmapilot/lens/ent/enrichedevent"
	"github.com/sigmapilot/lens/ent/predicate"
)

// EnrichedEventDelete is the builder for deleting a EnrichedEvent entity.
type EnrichedEventDelete struct {
	config
	hooks    []Hook
	mutation *EnrichedEventMutation
}

// Where appends a list predicates to the EnrichedEventDelete builder.
func (_d *EnrichedEventDelete) Where(ps ...predicate.EnrichedEvent) *EnrichedEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EnrichedEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichedEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EnrichedEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(enrichedevent.Table, sqlgraph.NewFieldSpec(enrichedevent.FieldID, field.TypeUUID))
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

// EnrichedEventDeleteOne is the builder for deleting a single EnrichedEvent entity.
type EnrichedEventDeleteOne struct {
	_d *EnrichedEventDelete
}

// Where appends a list predicates to the EnrichedEventDelete builder.
func (_d *EnrichedEventDeleteOne) Where(ps ...predicate.EnrichedEvent) *EnrichedEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EnrichedEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{enrichedevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichedEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
