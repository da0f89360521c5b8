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
	"github.com/sigmapilot/lens/ent/llmconfig"
	"github.com/sigmapilot/lens/ent/predicate"
)

// LLMConfigUpdate is the builder for updating LLMConfig entities.
type LLMConfigUpdate struct {
	config
	hooks    []Hook
	mutation *LLMConfigMutation
}

// Where appends a list predicates to the LLMConfigUpdate builder.
func (_u *LLMConfigUpdate) Where(ps ...predicate.LLMConfig) *LLMConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *LLMConfigUpdate) SetModelName(v string) *LLMConfigUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableModelName(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *LLMConfigUpdate) SetEnabled(v bool) *LLMConfigUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableEnabled(v *bool) *LLMConfigUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMConfigUpdate) SetProvider(v string) *LLMConfigUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableProvider(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *LLMConfigUpdate) SetAPIKey(v string) *LLMConfigUpdate {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableAPIKey(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *LLMConfigUpdate) SetModelID(v string) *LLMConfigUpdate {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableModelID(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *LLMConfigUpdate) SetTimeoutMs(v int) *LLMConfigUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableTimeoutMs(v *int) *LLMConfigUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *LLMConfigUpdate) AddTimeoutMs(v int) *LLMConfigUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *LLMConfigUpdate) SetMaxTokens(v int) *LLMConfigUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableMaxTokens(v *int) *LLMConfigUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *LLMConfigUpdate) AddMaxTokens(v int) *LLMConfigUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetPromptPath sets the "prompt_path" field.
func (_u *LLMConfigUpdate) SetPromptPath(v string) *LLMConfigUpdate {
	_u.mutation.SetPromptPath(v)
	return _u
}

// SetNillablePromptPath sets the "prompt_path" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillablePromptPath(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetPromptPath(*v)
	}
	return _u
}

// ClearPromptPath clears the value of the "prompt_path" field.
func (_u *LLMConfigUpdate) ClearPromptPath() *LLMConfigUpdate {
	_u.mutation.ClearPromptPath()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *LLMConfigUpdate) SetValidationStatus(v string) *LLMConfigUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableValidationStatus(v *string) *LLMConfigUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// ClearValidationStatus clears the value of the "validation_status" field.
func (_u *LLMConfigUpdate) ClearValidationStatus() *LLMConfigUpdate {
	_u.mutation.ClearValidationStatus()
	return _u
}

// SetLastValidatedAt sets the "last_validated_at" field.
func (_u *LLMConfigUpdate) SetLastValidatedAt(v time.Time) *LLMConfigUpdate {
	_u.mutation.SetLastValidatedAt(v)
	return _u
}

// SetNillableLastValidatedAt sets the "last_validated_at" field if the given value is not nil.
func (_u *LLMConfigUpdate) SetNillableLastValidatedAt(v *time.Time) *LLMConfigUpdate {
	if v != nil {
		_u.SetLastValidatedAt(*v)
	}
	return _u
}

// ClearLastValidatedAt clears the value of the "last_validated_at" field.
func (_u *LLMConfigUpdate) ClearLastValidatedAt() *LLMConfigUpdate {
	_u.mutation.ClearLastValidatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LLMConfigUpdate) SetUpdatedAt(v time.Time) *LLMConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LLMConfigMutation object of the builder.
func (_u *LLMConfigUpdate) Mutation() *LLMConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LLMConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := llmconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMConfigUpdate) check() error {
	if v, ok := _u.mutation.ModelName(); ok {
		if err := llmconfig.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := llmconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := llmconfig.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptPath(); ok {
		if err := llmconfig.PromptPathValidator(v); err != nil {
			return &ValidationError{Name: "prompt_path", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.prompt_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := llmconfig.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmconfig.Table, llmconfig.Columns, sqlgraph.NewFieldSpec(llmconfig.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llmconfig.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(llmconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(llmconfig.FieldAPIKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(llmconfig.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(llmconfig.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(llmconfig.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(llmconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(llmconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptPath(); ok {
		_spec.SetField(llmconfig.FieldPromptPath, field.TypeString, value)
	}
	if _u.mutation.PromptPathCleared() {
		_spec.ClearField(llmconfig.FieldPromptPath, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(llmconfig.FieldValidationStatus, field.TypeString, value)
	}
	if _u.mutation.ValidationStatusCleared() {
		_spec.ClearField(llmconfig.FieldValidationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LastValidatedAt(); ok {
		_spec.SetField(llmconfig.FieldLastValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.LastValidatedAtCleared() {
		_spec.ClearField(llmconfig.FieldLastValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(llmconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMConfigUpdateOne is the builder for updating a single LLMConfig entity.
type LLMConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMConfigMutation
}

// SetModelName sets the "model_name" field.
func (_u *LLMConfigUpdateOne) SetModelName(v string) *LLMConfigUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableModelName(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *LLMConfigUpdateOne) SetEnabled(v bool) *LLMConfigUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableEnabled(v *bool) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMConfigUpdateOne) SetProvider(v string) *LLMConfigUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableProvider(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetAPIKey sets the "api_key" field.
func (_u *LLMConfigUpdateOne) SetAPIKey(v string) *LLMConfigUpdateOne {
	_u.mutation.SetAPIKey(v)
	return _u
}

// SetNillableAPIKey sets the "api_key" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableAPIKey(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetAPIKey(*v)
	}
	return _u
}

// SetModelID sets the "model_id" field.
func (_u *LLMConfigUpdateOne) SetModelID(v string) *LLMConfigUpdateOne {
	_u.mutation.SetModelID(v)
	return _u
}

// SetNillableModelID sets the "model_id" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableModelID(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetModelID(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *LLMConfigUpdateOne) SetTimeoutMs(v int) *LLMConfigUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableTimeoutMs(v *int) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *LLMConfigUpdateOne) AddTimeoutMs(v int) *LLMConfigUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *LLMConfigUpdateOne) SetMaxTokens(v int) *LLMConfigUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableMaxTokens(v *int) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *LLMConfigUpdateOne) AddMaxTokens(v int) *LLMConfigUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetPromptPath sets the "prompt_path" field.
func (_u *LLMConfigUpdateOne) SetPromptPath(v string) *LLMConfigUpdateOne {
	_u.mutation.SetPromptPath(v)
	return _u
}

// SetNillablePromptPath sets the "prompt_path" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillablePromptPath(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetPromptPath(*v)
	}
	return _u
}

// ClearPromptPath clears the value of the "prompt_path" field.
func (_u *LLMConfigUpdateOne) ClearPromptPath() *LLMConfigUpdateOne {
	_u.mutation.ClearPromptPath()
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *LLMConfigUpdateOne) SetValidationStatus(v string) *LLMConfigUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableValidationStatus(v *string) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// ClearValidationStatus clears the value of the "validation_status" field.
func (_u *LLMConfigUpdateOne) ClearValidationStatus() *LLMConfigUpdateOne {
	_u.mutation.ClearValidationStatus()
	return _u
}

// SetLastValidatedAt sets the "last_validated_at" field.
func (_u *LLMConfigUpdateOne) SetLastValidatedAt(v time.Time) *LLMConfigUpdateOne {
	_u.mutation.SetLastValidatedAt(v)
	return _u
}

// SetNillableLastValidatedAt sets the "last_validated_at" field if the given value is not nil.
func (_u *LLMConfigUpdateOne) SetNillableLastValidatedAt(v *time.Time) *LLMConfigUpdateOne {
	if v != nil {
		_u.SetLastValidatedAt(*v)
	}
	return _u
}

// ClearLastValidatedAt clears the value of the "last_validated_at" field.
func (_u *LLMConfigUpdateOne) ClearLastValidatedAt() *LLMConfigUpdateOne {
	_u.mutation.ClearLastValidatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LLMConfigUpdateOne) SetUpdatedAt(v time.Time) *LLMConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LLMConfigMutation object of the builder.
func (_u *LLMConfigUpdateOne) Mutation() *LLMConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMConfigUpdate builder.
func (_u *LLMConfigUpdateOne) Where(ps ...predicate.LLMConfig) *LLMConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMConfigUpdateOne) Select(field string, fields ...string) *LLMConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMConfig entity.
func (_u *LLMConfigUpdateOne) Save(ctx context.Context) (*LLMConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMConfigUpdateOne) SaveX(ctx context.Context) *LLMConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LLMConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := llmconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMConfigUpdateOne) check() error {
	if v, ok := _u.mutation.ModelName(); ok {
		if err := llmconfig.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Provider(); ok {
		if err := llmconfig.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelID(); ok {
		if err := llmconfig.ModelIDValidator(v); err != nil {
			return &ValidationError{Name: "model_id", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.model_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptPath(); ok {
		if err := llmconfig.PromptPathValidator(v); err != nil {
			return &ValidationError{Name: "prompt_path", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.prompt_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := llmconfig.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "LLMConfig.validation_status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMConfigUpdateOne) sqlSave(ctx context.Context) (_node *LLMConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmconfig.Table, llmconfig.Columns, sqlgraph.NewFieldSpec(llmconfig.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmconfig.FieldID)
		for _, f := range fields {
			if !llmconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmconfig.FieldID {
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
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(llmconfig.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(llmconfig.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmconfig.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIKey(); ok {
		_spec.SetField(llmconfig.FieldAPIKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelID(); ok {
		_spec.SetField(llmconfig.FieldModelID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(llmconfig.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(llmconfig.FieldTimeoutMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(llmconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(llmconfig.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PromptPath(); ok {
		_spec.SetField(llmconfig.FieldPromptPath, field.TypeString, value)
	}
	if _u.mutation.PromptPathCleared() {
		_spec.ClearField(llmconfig.FieldPromptPath, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(llmconfig.FieldValidationStatus, field.TypeString, value)
	}
	if _u.mutation.ValidationStatusCleared() {
		_spec.ClearField(llmconfig.FieldValidationStatus, field.TypeString)
	}
	if value, ok := _u.mutation.LastValidatedAt(); ok {
		_spec.SetField(llmconfig.FieldLastValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.LastValidatedAtCleared() {
		_spec.ClearField(llmconfig.FieldLastValidatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(llmconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LLMConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
