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
	"github.com/sigmapilot/lens/ent/llmconfig"
)

// LLMConfigCreate is the builder for creating a LLMConfig entity.
type LLMConfigCreate struct {
	config
	mutation *LLMConfigMutation
	hooks    []Hook
}

// SetModelName sets the "model_name" field.
func (_c *LLMConfigCreate) SetModelName(v string) *LLMConfigCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *LLMConfigCreate) SetEnabled(v bool) *LLMConfigCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableEnabled(v *bool) *LLMConfigCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMConfigCreate) SetProvider(v string) *LLMConfigCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetAPIKey sets the "api_key" field.
func (_c *LLMConfigCreate) SetAPIKey(v string) *LLMConfigCreate {
	_c.mutation.SetAPIKey(v)
	return _c
}

// SetModelID sets the "model_id" field.
func (_c *LLMConfigCreate) SetModelID(v string) *LLMConfigCreate {
	_c.mutation.SetModelID(v)
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *LLMConfigCreate) SetTimeoutMs(v int) *LLMConfigCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableTimeoutMs(v *int) *LLMConfigCreate {
	if v != nil {
		_c.SetTimeoutMs(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *LLMConfigCreate) SetMaxTokens(v int) *LLMConfigCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableMaxTokens(v *int) *LLMConfigCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetPromptPath sets the "prompt_path" field.
func (_c *LLMConfigCreate) SetPromptPath(v string) *LLMConfigCreate {
	_c.mutation.SetPromptPath(v)
	return _c
}

// SetNillablePromptPath sets the "prompt_path" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillablePromptPath(v *string) *LLMConfigCreate {
	if v != nil {
		_c.SetPromptPath(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *LLMConfigCreate) SetValidationStatus(v string) *LLMConfigCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableValidationStatus(v *string) *LLMConfigCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetLastValidatedAt sets the "last_validated_at" field.
func (_c *LLMConfigCreate) SetLastValidatedAt(v time.Time) *LLMConfigCreate {
	_c.mutation.SetLastValidatedAt(v)
	return _c
}

// SetNillableLastValidatedAt sets the "last_validated_at" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableLastValidatedAt(v *time.Time) *LLMConfigCreate {
	if v != nil {
		_c.SetLastValidatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMConfigCreate) SetCreatedAt(v time.Time) *LLMConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableCreatedAt(v *time.Time) *LLMConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LLMConfigCreate) SetUpdatedAt(v time.Time) *LLMConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableUpdatedAt(v *time.Time) *LLMConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMConfigCreate) SetID(v uuid.UUID) *LLMConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LLMConfigCreate) SetNillableID(v *uuid.UUID) *LLMConfigCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the LLMConfigMutation object of the builder.
func (_c *LLMConfigCreate) Mutation() *LLMConfigMutation {
	return _c.mutation
}

// Save creates the LLMConfig in the database.
func (_c *LLMConfigCreate) Save(ctx context.Context) (*LLMConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMConfigCreate) SaveX(ctx context.Context) *LLMConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMConfigCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := llmconfig.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		v := llmconfig.DefaultTimeoutMs
		_c.mutation.SetTimeoutMs(v)
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		v := llmconfig.DefaultMaxTokens
		_c.mutation.SetMaxTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := llmconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := llmconfig.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMConfigCreate) check() error {
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "LLMConfig.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := llmconfig.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "LLMConfig.enabled"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMConfig.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := llmconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.APIKey(); !ok {
		return &ValidationError{Name: "api_key", err: errors.New(`ent: missing required field "LLMConfig.api_key"`)}
	}
	if _, ok := _c.mutation.ModelID(); !ok {
		return &ValidationError{Name: "model_id", err: errors.New(`ent: missing required field "LLMConfig.model_id"`)}
	}
	if v, ok := _c.mutation.ModelID(); ok {
		if err := llmconfig.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.model_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "LLMConfig.timeout_ms"`)}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "LLMConfig.max_tokens"`)}
	}
	if v, ok := _c.mutation.PromptPath(); ok {
		if err := llmconfig.PromptPathValidator(v); err != nil {
			return &ValidationError{Name: "prompt_path", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.prompt_path": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := llmconfig.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LLMConfig.updated_at"`)}
	}
	return nil
}

func (_c *LLMConfigCreate) sqlSave(ctx context.Context) (*LLMConfig, error) {
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

func (_c *LLMConfigCreate) createSpec() (*LLMConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmconfig.Table, sqlgraph.NewFieldSpec(llmconfig.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(llmconfig.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(llmconfig.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmconfig.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.APIKey(); ok {
		_spec.SetField(llmconfig.FieldAPIKey, field.TypeString, value)
		_node.APIKey = value
	}
	if value, ok := _c.mutation.ModelID(); ok {
		_spec.SetField(llmconfig.FieldModelID, field.TypeString, value)
		_node.ModelID = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(llmconfig.FieldTimeoutMs, field.TypeInt, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(llmconfig.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.PromptPath(); ok {
		_spec.SetField(llmconfig.FieldPromptPath, field.TypeString, value)
		_node.PromptPath = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(llmconfig.FieldValidationStatus, field.TypeString, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.LastValidatedAt(); ok {
		_spec.SetField(llmconfig.FieldLastValidatedAt, field.TypeTime, value)
		_node.LastValidatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(llmconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LLMConfigCreateBulk is the builder for creating many LLMConfig entities in bulk.
type LLMConfigCreateBulk struct {
	config
	err      error
	builders []*LLMConfigCreate
}

// Save creates the LLMConfig entities in the database.
func (_c *LLMConfigCreateBulk) Save(ctx context.Context) ([]*LLMConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMConfigMutation)
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
func (_c *LLMConfigCreateBulk) SaveX(ctx context.Context) []*LLMConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
