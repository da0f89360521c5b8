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
	"github.com/sigmapilot/lens/ent/modeldecision"
)

// ModelDecisionCreate is the builder for creating a ModelDecision entity.
type ModelDecisionCreate struct {
	config
	mutation *ModelDecisionMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *ModelDecisionCreate) SetEventID(v string) *ModelDecisionCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ModelDecisionCreate) SetModelName(v string) *ModelDecisionCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetModelVersion sets the "model_version" field.
func (_c *ModelDecisionCreate) SetModelVersion(v string) *ModelDecisionCreate {
	_c.mutation.SetModelVersion(v)
	return _c
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableModelVersion(v *string) *ModelDecisionCreate {
	if v != nil {
		_c.SetModelVersion(*v)
	}
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ModelDecisionCreate) SetPromptVersion(v string) *ModelDecisionCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillablePromptVersion(v *string) *ModelDecisionCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetPromptHash sets the "prompt_hash" field.
func (_c *ModelDecisionCreate) SetPromptHash(v string) *ModelDecisionCreate {
	_c.mutation.SetPromptHash(v)
	return _c
}

// SetNillablePromptHash sets the "prompt_hash" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillablePromptHash(v *string) *ModelDecisionCreate {
	if v != nil {
		_c.SetPromptHash(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ModelDecisionCreate) SetDecision(v string) *ModelDecisionCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ModelDecisionCreate) SetConfidence(v float64) *ModelDecisionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetEntryPlan sets the "entry_plan" field.
func (_c *ModelDecisionCreate) SetEntryPlan(v map[string]interface{}) *ModelDecisionCreate {
	_c.mutation.SetEntryPlan(v)
	return _c
}

// SetRiskPlan sets the "risk_plan" field.
func (_c *ModelDecisionCreate) SetRiskPlan(v map[string]interface{}) *ModelDecisionCreate {
	_c.mutation.SetRiskPlan(v)
	return _c
}

// SetSizePct sets the "size_pct" field.
func (_c *ModelDecisionCreate) SetSizePct(v float64) *ModelDecisionCreate {
	_c.mutation.SetSizePct(v)
	return _c
}

// SetNillableSizePct sets the "size_pct" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableSizePct(v *float64) *ModelDecisionCreate {
	if v != nil {
		_c.SetSizePct(*v)
	}
	return _c
}

// SetReasons sets the "reasons" field.
func (_c *ModelDecisionCreate) SetReasons(v []string) *ModelDecisionCreate {
	_c.mutation.SetReasons(v)
	return _c
}

// SetDecisionPayload sets the "decision_payload" field.
func (_c *ModelDecisionCreate) SetDecisionPayload(v map[string]interface{}) *ModelDecisionCreate {
	_c.mutation.SetDecisionPayload(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *ModelDecisionCreate) SetLatencyMs(v int) *ModelDecisionCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableLatencyMs(v *int) *ModelDecisionCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *ModelDecisionCreate) SetTokensIn(v int) *ModelDecisionCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableTokensIn(v *int) *ModelDecisionCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *ModelDecisionCreate) SetTokensOut(v int) *ModelDecisionCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableTokensOut(v *int) *ModelDecisionCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ModelDecisionCreate) SetStatus(v string) *ModelDecisionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableStatus(v *string) *ModelDecisionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *ModelDecisionCreate) SetErrorCode(v string) *ModelDecisionCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableErrorCode(v *string) *ModelDecisionCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ModelDecisionCreate) SetErrorMessage(v string) *ModelDecisionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableErrorMessage(v *string) *ModelDecisionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *ModelDecisionCreate) SetRawResponse(v string) *ModelDecisionCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableRawResponse(v *string) *ModelDecisionCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *ModelDecisionCreate) SetEvaluatedAt(v time.Time) *ModelDecisionCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableEvaluatedAt(v *time.Time) *ModelDecisionCreate {
	if v != nil {
		_c.SetEvaluatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ModelDecisionCreate) SetCreatedAt(v time.Time) *ModelDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableCreatedAt(v *time.Time) *ModelDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ModelDecisionCreate) SetID(v uuid.UUID) *ModelDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ModelDecisionCreate) SetNillableID(v *uuid.UUID) *ModelDecisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ModelDecisionMutation object of the builder.
func (_c *ModelDecisionCreate) Mutation() *ModelDecisionMutation {
	return _c.mutation
}

// Save creates the ModelDecision in the database.
func (_c *ModelDecisionCreate) Save(ctx context.Context) (*ModelDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ModelDecisionCreate) SaveX(ctx context.Context) *ModelDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ModelDecisionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := modeldecision.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		v := modeldecision.DefaultEvaluatedAt()
		_c.mutation.SetEvaluatedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := modeldecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := modeldecision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ModelDecisionCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "ModelDecision.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := modeldecision.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "ModelDecision.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := modeldecision.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.model_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ModelVersion(); ok {
		if err := modeldecision.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.model_version": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PromptVersion(); ok {
		if err := modeldecision.PromptVersionValidator(v); err != nil {
			return &ValidationError{Name: "prompt_version", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.prompt_version": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PromptHash(); ok {
		if err := modeldecision.PromptHashValidator(v); err != nil {
			return &ValidationError{Name: "prompt_hash", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.prompt_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ModelDecision.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := modeldecision.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.decision": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ModelDecision.confidence"`)}
	}
	if _, ok := _c.mutation.DecisionPayload(); !ok {
		return &ValidationError{Name: "decision_payload", err: errors.New(`ent: missing required field "ModelDecision.decision_payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ModelDecision.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := modeldecision.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ErrorCode(); ok {
		if err := modeldecision.ErrorCodeValidator(v); err != nil {
			return &ValidationError{Name: "error_code", err: fmt.Errorf(`ent: validator failed for field "ModelDecision.error_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		return &ValidationError{Name: "evaluated_at", err: errors.New(`ent: missing required field "ModelDecision.evaluated_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ModelDecision.created_at"`)}
	}
	return nil
}

func (_c *ModelDecisionCreate) sqlSave(ctx context.Context) (*ModelDecision, error) {
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

func (_c *ModelDecisionCreate) createSpec() (*ModelDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &ModelDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(modeldecision.Table, sqlgraph.NewFieldSpec(modeldecision.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(modeldecision.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(modeldecision.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.ModelVersion(); ok {
		_spec.SetField(modeldecision.FieldModelVersion, field.TypeString, value)
		_node.ModelVersion = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(modeldecision.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.PromptHash(); ok {
		_spec.SetField(modeldecision.FieldPromptHash, field.TypeString, value)
		_node.PromptHash = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(modeldecision.FieldDecision, field.TypeString, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(modeldecision.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.EntryPlan(); ok {
		_spec.SetField(modeldecision.FieldEntryPlan, field.TypeJSON, value)
		_node.EntryPlan = value
	}
	if value, ok := _c.mutation.RiskPlan(); ok {
		_spec.SetField(modeldecision.FieldRiskPlan, field.TypeJSON, value)
		_node.RiskPlan = value
	}
	if value, ok := _c.mutation.SizePct(); ok {
		_spec.SetField(modeldecision.FieldSizePct, field.TypeFloat64, value)
		_node.SizePct = &value
	}
	if value, ok := _c.mutation.Reasons(); ok {
		_spec.SetField(modeldecision.FieldReasons, field.TypeJSON, value)
		_node.Reasons = value
	}
	if value, ok := _c.mutation.DecisionPayload(); ok {
		_spec.SetField(modeldecision.FieldDecisionPayload, field.TypeJSON, value)
		_node.DecisionPayload = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(modeldecision.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(modeldecision.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(modeldecision.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(modeldecision.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(modeldecision.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(modeldecision.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(modeldecision.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(modeldecision.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(modeldecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ModelDecisionCreateBulk is the builder for creating many ModelDecision entities in bulk.
type ModelDecisionCreateBulk struct {
	config
	err      error
	builders []*ModelDecisionCreate
}

// Save creates the ModelDecision entities in the database.
func (_c *ModelDecisionCreateBulk) Save(ctx context.Context) ([]*ModelDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ModelDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ModelDecisionMutation)
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
func (_c *ModelDecisionCreateBulk) SaveX(ctx context.Context) []*ModelDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ModelDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ModelDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
