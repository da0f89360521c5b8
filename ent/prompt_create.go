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
	"github.com/sigmapilot/lens/ent/prompt"
)

// PromptCreate is the builder for creating a Prompt entity.
type PromptCreate struct {
	config
	mutation *PromptMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PromptCreate) SetName(v string) *PromptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PromptCreate) SetVersion(v string) *PromptCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetPromptType sets the "prompt_type" field.
func (_c *PromptCreate) SetPromptType(v prompt.PromptType) *PromptCreate {
	_c.mutation.SetPromptType(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *PromptCreate) SetModelName(v string) *PromptCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *PromptCreate) SetNillableModelName(v *string) *PromptCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *PromptCreate) SetContent(v string) *PromptCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PromptCreate) SetDescription(v string) *PromptCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PromptCreate) SetNillableDescription(v *string) *PromptCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PromptCreate) SetIsActive(v bool) *PromptCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PromptCreate) SetNillableIsActive(v *bool) *PromptCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *PromptCreate) SetContentHash(v string) *PromptCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PromptCreate) SetCreatedBy(v string) *PromptCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PromptCreate) SetNillableCreatedBy(v *string) *PromptCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptCreate) SetCreatedAt(v time.Time) *PromptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptCreate) SetNillableCreatedAt(v *time.Time) *PromptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromptCreate) SetUpdatedAt(v time.Time) *PromptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromptCreate) SetNillableUpdatedAt(v *time.Time) *PromptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptCreate) SetID(v uuid.UUID) *PromptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PromptCreate) SetNillableID(v *uuid.UUID) *PromptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PromptMutation object of the builder.
func (_c *PromptCreate) Mutation() *PromptMutation {
	return _c.mutation
}

// Save creates the Prompt in the database.
func (_c *PromptCreate) Save(ctx context.Context) (*Prompt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptCreate) SaveX(ctx context.Context) *Prompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := prompt.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prompt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prompt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prompt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Prompt.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := prompt.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prompt.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Prompt.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := prompt.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Prompt.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptType(); !ok {
		return &ValidationError{Name: "prompt_type", err: errors.New(`ent: missing required field "Prompt.prompt_type"`)}
	}
	if v, ok := _c.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := prompt.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "Prompt.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Prompt.content"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Prompt.is_active"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Prompt.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := prompt.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Prompt.content_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := prompt.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Prompt.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prompt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Prompt.updated_at"`)}
	}
	return nil
}

func (_c *PromptCreate) sqlSave(ctx context.Context) (*Prompt, error) {
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

func (_c *PromptCreate) createSpec() (*Prompt, *sqlgraph.CreateSpec) {
	var (
		_node = &Prompt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompt.Table, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prompt.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
		_node.PromptType = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(prompt.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(prompt.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(prompt.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(prompt.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(prompt.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prompt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PromptCreateBulk is the builder for creating many Prompt entities in bulk.
type PromptCreateBulk struct {
	config
	err      error
	builders []*PromptCreate
}

// Save creates the Prompt entities in the database.
func (_c *PromptCreateBulk) Save(ctx context.Context) ([]*Prompt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prompt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptMutation)
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
func (_c *PromptCreateBulk) SaveX(ctx context.Context) []*Prompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
