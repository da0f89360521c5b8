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
	"github.com/sigmapilot/lens/ent/dlqentry"
)

// DLQEntryCreate is the builder for creating a DLQEntry entity.
type DLQEntryCreate struct {
	config
	mutation *DLQEntryMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *DLQEntryCreate) SetEventID(v string) *DLQEntryCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableEventID(v *string) *DLQEntryCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *DLQEntryCreate) SetStage(v string) *DLQEntryCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetReasonCode sets the "reason_code" field.
func (_c *DLQEntryCreate) SetReasonCode(v string) *DLQEntryCreate {
	_c.mutation.SetReasonCode(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DLQEntryCreate) SetErrorMessage(v string) *DLQEntryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DLQEntryCreate) SetPayload(v map[string]interface{}) *DLQEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *DLQEntryCreate) SetRetryCount(v int) *DLQEntryCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableRetryCount(v *int) *DLQEntryCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_c *DLQEntryCreate) SetLastRetryAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetLastRetryAt(v)
	return _c
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableLastRetryAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetLastRetryAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *DLQEntryCreate) SetResolvedAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableResolvedAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetResolutionNote sets the "resolution_note" field.
func (_c *DLQEntryCreate) SetResolutionNote(v string) *DLQEntryCreate {
	_c.mutation.SetResolutionNote(v)
	return _c
}

// SetNillableResolutionNote sets the "resolution_note" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableResolutionNote(v *string) *DLQEntryCreate {
	if v != nil {
		_c.SetResolutionNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DLQEntryCreate) SetCreatedAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableCreatedAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DLQEntryCreate) SetID(v uuid.UUID) *DLQEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableID(v *uuid.UUID) *DLQEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_c *DLQEntryCreate) Mutation() *DLQEntryMutation {
	return _c.mutation
}

// Save creates the DLQEntry in the database.
func (_c *DLQEntryCreate) Save(ctx context.Context) (*DLQEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DLQEntryCreate) SaveX(ctx context.Context) *DLQEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLQEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLQEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DLQEntryCreate) defaults() {
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := dlqentry.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dlqentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dlqentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DLQEntryCreate) check() error {
	if v, ok := _c.mutation.EventID(); ok {
		if err := dlqentry.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "DLQEntry.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := dlqentry.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReasonCode(); !ok {
		return &ValidationError{Name: "reason_code", err: errors.New(`ent: missing required field "DLQEntry.reason_code"`)}
	}
	if v, ok := _c.mutation.ReasonCode(); ok {
		if err := dlqentry.ReasonCodeValidator(v); err != nil {
			return &ValidationError{Name: "reason_code", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.reason_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "DLQEntry.error_message"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "DLQEntry.payload"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "DLQEntry.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DLQEntry.created_at"`)}
	}
	return nil
}

func (_c *DLQEntryCreate) sqlSave(ctx context.Context) (*DLQEntry, error) {
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

func (_c *DLQEntryCreate) createSpec() (*DLQEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DLQEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dlqentry.Table, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(dlqentry.FieldEventID, field.TypeString, value)
		_node.EventID = &value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(dlqentry.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.ReasonCode(); ok {
		_spec.SetField(dlqentry.FieldReasonCode, field.TypeString, value)
		_node.ReasonCode = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(dlqentry.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(dlqentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(dlqentry.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastRetryAt(); ok {
		_spec.SetField(dlqentry.FieldLastRetryAt, field.TypeTime, value)
		_node.LastRetryAt = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(dlqentry.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if value, ok := _c.mutation.ResolutionNote(); ok {
		_spec.SetField(dlqentry.FieldResolutionNote, field.TypeString, value)
		_node.ResolutionNote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dlqentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DLQEntryCreateBulk is the builder for creating many DLQEntry entities in bulk.
type DLQEntryCreateBulk struct {
	config
	err      error
	builders []*DLQEntryCreate
}

// Save creates the DLQEntry entities in the database.
func (_c *DLQEntryCreateBulk) Save(ctx context.Context) ([]*DLQEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DLQEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DLQEntryMutation)
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
func (_c *DLQEntryCreateBulk) SaveX(ctx context.Context) []*DLQEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLQEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLQEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
