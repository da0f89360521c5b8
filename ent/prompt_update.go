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
	"github.com/sigmapilot/lens/ent/predicate"
	"github.com/sigmapilot/lens/ent/prompt"
)

// PromptUpdate is the builder for updating Prompt entities.
type PromptUpdate struct {
	config
	hooks    []Hook
	mutation *PromptMutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdate) Where(ps ...predicate.Prompt) *PromptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PromptUpdate) SetName(v string) *PromptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableName(v *string) *PromptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptUpdate) SetVersion(v string) *PromptUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableVersion(v *string) *PromptUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetPromptType sets the "prompt_type" field.
func (_u *PromptUpdate) SetPromptType(v prompt.PromptType) *PromptUpdate {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *PromptUpdate) SetNillablePromptType(v *prompt.PromptType) *PromptUpdate {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PromptUpdate) SetModelName(v string) *PromptUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableModelName(v *string) *PromptUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *PromptUpdate) ClearModelName() *PromptUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptUpdate) SetContent(v string) *PromptUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableContent(v *string) *PromptUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PromptUpdate) SetDescription(v string) *PromptUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableDescription(v *string) *PromptUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PromptUpdate) ClearDescription() *PromptUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdate) SetIsActive(v bool) *PromptUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableIsActive(v *bool) *PromptUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PromptUpdate) SetContentHash(v string) *PromptUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableContentHash(v *string) *PromptUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PromptUpdate) SetCreatedBy(v string) *PromptUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PromptUpdate) SetNillableCreatedBy(v *string) *PromptUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PromptUpdate) ClearCreatedBy() *PromptUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdate) SetUpdatedAt(v time.Time) *PromptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdate) Mutation() *PromptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prompt.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prompt.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := prompt.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Prompt.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := prompt.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "Prompt.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := prompt.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Prompt.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := prompt.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Prompt.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompt.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(prompt.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(prompt.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(prompt.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(prompt.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(prompt.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(prompt.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(prompt.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(prompt.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptUpdateOne is the builder for updating a single Prompt entity.
type PromptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptMutation
}

// SetName sets the "name" field.
func (_u *PromptUpdateOne) SetName(v string) *PromptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableName(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptUpdateOne) SetVersion(v string) *PromptUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableVersion(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetPromptType sets the "prompt_type" field.
func (_u *PromptUpdateOne) SetPromptType(v prompt.PromptType) *PromptUpdateOne {
	_u.mutation.SetPromptType(v)
	return _u
}

// SetNillablePromptType sets the "prompt_type" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillablePromptType(v *prompt.PromptType) *PromptUpdateOne {
	if v != nil {
		_u.SetPromptType(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PromptUpdateOne) SetModelName(v string) *PromptUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableModelName(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *PromptUpdateOne) ClearModelName() *PromptUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetContent sets the "content" field.
func (_u *PromptUpdateOne) SetContent(v string) *PromptUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableContent(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PromptUpdateOne) SetDescription(v string) *PromptUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableDescription(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PromptUpdateOne) ClearDescription() *PromptUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptUpdateOne) SetIsActive(v bool) *PromptUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableIsActive(v *bool) *PromptUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PromptUpdateOne) SetContentHash(v string) *PromptUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableContentHash(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PromptUpdateOne) SetCreatedBy(v string) *PromptUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PromptUpdateOne) SetNillableCreatedBy(v *string) *PromptUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PromptUpdateOne) ClearCreatedBy() *PromptUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptUpdateOne) SetUpdatedAt(v time.Time) *PromptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptMutation object of the builder.
func (_u *PromptUpdateOne) Mutation() *PromptMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptUpdate builder.
func (_u *PromptUpdateOne) Where(ps ...predicate.Prompt) *PromptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptUpdateOne) Select(field string, fields ...string) *PromptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prompt entity.
func (_u *PromptUpdateOne) Save(ctx context.Context) (*Prompt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptUpdateOne) SaveX(ctx context.Context) *Prompt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prompt.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Prompt.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := prompt.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Prompt.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PromptType(); ok {
		if err := prompt.PromptTypeValidator(v); err != nil {
			return &ValidationError{Name: "prompt_type", err: fmt.Errorf(`ent: validator failed for field "Prompt.prompt_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := prompt.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "Prompt.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := prompt.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Prompt.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := prompt.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Prompt.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptUpdateOne) sqlSave(ctx context.Context) (_node *Prompt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompt.Table, prompt.Columns, sqlgraph.NewFieldSpec(prompt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prompt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompt.FieldID)
		for _, f := range fields {
			if !prompt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompt.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompt.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompt.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptType(); ok {
		_spec.SetField(prompt.FieldPromptType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(prompt.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(prompt.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(prompt.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(prompt.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(prompt.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(prompt.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(prompt.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(prompt.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prompt.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Prompt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
