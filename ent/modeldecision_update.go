// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sigmapilot/lens/ent/modeldecision"
	"github.com/sigmapilot/lens/ent/predicate"
)

// ModelDecisionUpdate is the builder for updating ModelDecision entities.
type ModelDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *ModelDecisionMutation
}

// Where appends a list predicates to the ModelDecisionUpdate builder.
func (_u *ModelDecisionUpdate) Where(ps ...predicate.ModelDecision) *ModelDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ModelDecisionMutation object of the builder.
func (_u *ModelDecisionUpdate) Mutation() *ModelDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ModelDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ModelDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(modeldecision.Table, modeldecision.Columns, sqlgraph.NewFieldSpec(modeldecision.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ModelVersionCleared() {
		_spec.ClearField(modeldecision.FieldModelVersion, field.TypeString)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(modeldecision.FieldPromptVersion, field.TypeString)
	}
	if _u.mutation.PromptHashCleared() {
		_spec.ClearField(modeldecision.FieldPromptHash, field.TypeString)
	}
	if _u.mutation.EntryPlanCleared() {
		_spec.ClearField(modeldecision.FieldEntryPlan, field.TypeJSON)
	}
	if _u.mutation.RiskPlanCleared() {
		_spec.ClearField(modeldecision.FieldRiskPlan, field.TypeJSON)
	}
	if _u.mutation.SizePctCleared() {
		_spec.ClearField(modeldecision.FieldSizePct, field.TypeFloat64)
	}
	if _u.mutation.ReasonsCleared() {
		_spec.ClearField(modeldecision.FieldReasons, field.TypeJSON)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(modeldecision.FieldLatencyMs, field.TypeInt)
	}
	if _u.mutation.TokensInCleared() {
		_spec.ClearField(modeldecision.FieldTokensIn, field.TypeInt)
	}
	if _u.mutation.TokensOutCleared() {
		_spec.ClearField(modeldecision.FieldTokensOut, field.TypeInt)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(modeldecision.FieldErrorCode, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(modeldecision.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(modeldecision.FieldRawResponse, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeldecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ModelDecisionUpdateOne is the builder for updating a single ModelDecision entity.
type ModelDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ModelDecisionMutation
}

// Mutation returns the ModelDecisionMutation object of the builder.
func (_u *ModelDecisionUpdateOne) Mutation() *ModelDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ModelDecisionUpdate builder.
func (_u *ModelDecisionUpdateOne) Where(ps ...predicate.ModelDecision) *ModelDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ModelDecisionUpdateOne) Select(field string, fields ...string) *ModelDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ModelDecision entity.
func (_u *ModelDecisionUpdateOne) Save(ctx context.Context) (*ModelDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ModelDecisionUpdateOne) SaveX(ctx context.Context) *ModelDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ModelDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ModelDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ModelDecisionUpdateOne) sqlSave(ctx context.Context) (_node *ModelDecision, err error) {
	_spec := sqlgraph.NewUpdateSpec(modeldecision.Table, modeldecision.Columns, sqlgraph.NewFieldSpec(modeldecision.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ModelDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, modeldecision.FieldID)
		for _, f := range fields {
			if !modeldecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != modeldecision.FieldID {
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
	if _u.mutation.ModelVersionCleared() {
		_spec.ClearField(modeldecision.FieldModelVersion, field.TypeString)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(modeldecision.FieldPromptVersion, field.TypeString)
	}
	if _u.mutation.PromptHashCleared() {
		_spec.ClearField(modeldecision.FieldPromptHash, field.TypeString)
	}
	if _u.mutation.EntryPlanCleared() {
		_spec.ClearField(modeldecision.FieldEntryPlan, field.TypeJSON)
	}
	if _u.mutation.RiskPlanCleared() {
		_spec.ClearField(modeldecision.FieldRiskPlan, field.TypeJSON)
	}
	if _u.mutation.SizePctCleared() {
		_spec.ClearField(modeldecision.FieldSizePct, field.TypeFloat64)
	}
	if _u.mutation.ReasonsCleared() {
		_spec.ClearField(modeldecision.FieldReasons, field.TypeJSON)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(modeldecision.FieldLatencyMs, field.TypeInt)
	}
	if _u.mutation.TokensInCleared() {
		_spec.ClearField(modeldecision.FieldTokensIn, field.TypeInt)
	}
	if _u.mutation.TokensOutCleared() {
		_spec.ClearField(modeldecision.FieldTokensOut, field.TypeInt)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(modeldecision.FieldErrorCode, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(modeldecision.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RawResponseCleared() {
		_spec.ClearField(modeldecision.FieldRawResponse, field.TypeString)
	}
	_node = &ModelDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{modeldecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
