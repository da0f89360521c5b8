// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/processingtimeline"
)

// ProcessingTimelineCreate is the builder for creating a ProcessingTimeline entity.
type ProcessingTimelineCreate struct {
	config
	mutation *ProcessingTimelineMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *ProcessingTimelineCreate) SetEventID(v string) *ProcessingTimelineCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingTimelineCreate) SetStatus(v string) *ProcessingTimelineCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *ProcessingTimelineCreate) SetDetails(v map[string]interface{}) *ProcessingTimelineCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ProcessingTimelineCreate) SetOccurredAt(v time.Time) *ProcessingTimelineCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *ProcessingTimelineCreate) SetNillableOccurredAt(v *time.Time) *ProcessingTimelineCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingTimelineCreate) SetID(v uuid.UUID) *ProcessingTimelineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingTimelineCreate) SetNillableID(v *uuid.UUID) *ProcessingTimelineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProcessingTimelineMutation object of the builder.
func (_c *ProcessingTimelineCreate) Mutation() *ProcessingTimelineMutation {
	return _c.mutation
}

// Save creates the ProcessingTimeline in the database.
func (_c *ProcessingTimelineCreate) Save(ctx context.Context) (*ProcessingTimeline, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingTimelineCreate) SaveX(ctx context.Context) *ProcessingTimeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingTimelineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingTimelineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingTimelineCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := processingtimeline.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingtimeline.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingTimelineCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "ProcessingTimeline.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := processingtimeline.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ProcessingTimeline.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingTimeline.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processingtimeline.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingTimeline.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ProcessingTimeline.occurred_at"`)}
	}
	return nil
}

func (_c *ProcessingTimelineCreate) sqlSave(ctx context.Context) (*ProcessingTimeline, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessingTimelineCreate) createSpec() (*ProcessingTimeline, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingTimeline{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingtimeline.Table, sqlgraph.NewFieldSpec(processingtimeline.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(processingtimeline.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processingtimeline.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(processingtimeline.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(processingtimeline.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// ProcessingTimelineCreateBulk is the builder for creating many ProcessingTimeline entities in bulk.
type ProcessingTimelineCreateBulk struct {
	config
	err      error
	builders []*ProcessingTimelineCreate
}

// Save creates the ProcessingTimeline entities in the database.
func (_c *ProcessingTimelineCreateBulk) Save(ctx context.Context) ([]*ProcessingTimeline, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingTimeline, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingTimelineMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProcessingTimelineCreateBulk) SaveX(ctx context.Context) []*ProcessingTimeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingTimelineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingTimelineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
