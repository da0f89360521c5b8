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
	"github.com/sigmapilot/lens/ent/enrichedevent"
)

// EnrichedEventCreate is the builder for creating a EnrichedEvent entity.
type EnrichedEventCreate struct {
	config
	mutation *EnrichedEventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *EnrichedEventCreate) SetEventID(v string) *EnrichedEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetFeatureProfile sets the "feature_profile" field.
func (_c *EnrichedEventCreate) SetFeatureProfile(v string) *EnrichedEventCreate {
	_c.mutation.SetFeatureProfile(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *EnrichedEventCreate) SetProvider(v string) *EnrichedEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *EnrichedEventCreate) SetNillableProvider(v *string) *EnrichedEventCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetProviderVersion sets the "provider_version" field.
func (_c *EnrichedEventCreate) SetProviderVersion(v string) *EnrichedEventCreate {
	_c.mutation.SetProviderVersion(v)
	return _c
}

// SetNillableProviderVersion sets the "provider_version" field if the given value is not nil.
func (_c *EnrichedEventCreate) SetNillableProviderVersion(v *string) *EnrichedEventCreate {
	if v != nil {
		_c.SetProviderVersion(*v)
	}
	return _c
}

// SetMarketData sets the "market_data" field.
func (_c *EnrichedEventCreate) SetMarketData(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetMarketData(v)
	return _c
}

// SetTaData sets the "ta_data" field.
func (_c *EnrichedEventCreate) SetTaData(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetTaData(v)
	return _c
}

// SetLevelsData sets the "levels_data" field.
func (_c *EnrichedEventCreate) SetLevelsData(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetLevelsData(v)
	return _c
}

// SetDerivsData sets the "derivs_data" field.
func (_c *EnrichedEventCreate) SetDerivsData(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetDerivsData(v)
	return _c
}

// SetConstraints sets the "constraints" field.
func (_c *EnrichedEventCreate) SetConstraints(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetConstraints(v)
	return _c
}

// SetDataTimestamps sets the "data_timestamps" field.
func (_c *EnrichedEventCreate) SetDataTimestamps(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetDataTimestamps(v)
	return _c
}

// SetQualityFlags sets the "quality_flags" field.
func (_c *EnrichedEventCreate) SetQualityFlags(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetQualityFlags(v)
	return _c
}

// SetEnrichedPayload sets the "enriched_payload" field.
func (_c *EnrichedEventCreate) SetEnrichedPayload(v map[string]interface{}) *EnrichedEventCreate {
	_c.mutation.SetEnrichedPayload(v)
	return _c
}

// SetEnrichmentDurationMs sets the "enrichment_duration_ms" field.
func (_c *EnrichedEventCreate) SetEnrichmentDurationMs(v int) *EnrichedEventCreate {
	_c.mutation.SetEnrichmentDurationMs(v)
	return _c
}

// SetNillableEnrichmentDurationMs sets the "enrichment_duration_ms" field if the given value is not nil.
func (_c *EnrichedEventCreate) SetNillableEnrichmentDurationMs(v *int) *EnrichedEventCreate {
	if v != nil {
		_c.SetEnrichmentDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrichedEventCreate) SetCreatedAt(v time.Time) *EnrichedEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrichedEventCreate) SetNillableCreatedAt(v *time.Time) *EnrichedEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnrichedEventCreate) SetID(v uuid.UUID) *EnrichedEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EnrichedEventCreate) SetNillableID(v *uuid.UUID) *EnrichedEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EnrichedEventMutation object of the builder.
func (_c *EnrichedEventCreate) Mutation() *EnrichedEventMutation {
	return _c.mutation
}

// Save creates the EnrichedEvent in the database.
func (_c *EnrichedEventCreate) Save(ctx context.Context) (*EnrichedEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrichedEventCreate) SaveX(ctx context.Context) *EnrichedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrichedEventCreate) defaults() {
	if _, ok := _c.mutation.Provider(); !ok {
		v := enrichedevent.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.DataTimestamps(); !ok {
		v := enrichedevent.DefaultDataTimestamps()
		_c.mutation.SetDataTimestamps(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrichedevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := enrichedevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrichedEventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "EnrichedEvent.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := enrichedevent.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "EnrichedEvent.event_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureProfile(); !ok {
		return &ValidationError{Name: "feature_profile", err: errors.New(`ent: missing required field "EnrichedEvent.feature_profile"`)}
	}
	if v, ok := _c.mutation.FeatureProfile(); ok {
		if err := enrichedevent.FeatureProfileValidator(v); err != nil {
			return &ValidationError{Name: "feature_profile", err: fmt.Errorf(`ent: validator failed for field "EnrichedEvent.feature_profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "EnrichedEvent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := enrichedevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "EnrichedEvent.provider": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ProviderVersion(); ok {
		if err := enrichedevent.ProviderVersionValidator(v); err != nil {
			return &ValidationError{Name: "provider_version", err: fmt.Errorf(`ent: validator failed for field "EnrichedEvent.provider_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MarketData(); !ok {
		return &ValidationError{Name: "market_data", err: errors.New(`ent: missing required field "EnrichedEvent.market_data"`)}
	}
	if _, ok := _c.mutation.TaData(); !ok {
		return &ValidationError{Name: "ta_data", err: errors.New(`ent: missing required field "EnrichedEvent.ta_data"`)}
	}
	if _, ok := _c.mutation.DataTimestamps(); !ok {
		return &ValidationError{Name: "data_timestamps", err: errors.New(`ent: missing required field "EnrichedEvent.data_timestamps"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnrichedEvent.created_at"`)}
	}
	return nil
}

func (_c *EnrichedEventCreate) sqlSave(ctx context.Context) (*EnrichedEvent, error) {
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

func (_c *EnrichedEventCreate) createSpec() (*EnrichedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EnrichedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrichedevent.Table, sqlgraph.NewFieldSpec(enrichedevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(enrichedevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.FeatureProfile(); ok {
		_spec.SetField(enrichedevent.FieldFeatureProfile, field.TypeString, value)
		_node.FeatureProfile = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(enrichedevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ProviderVersion(); ok {
		_spec.SetField(enrichedevent.FieldProviderVersion, field.TypeString, value)
		_node.ProviderVersion = value
	}
	if value, ok := _c.mutation.MarketData(); ok {
		_spec.SetField(enrichedevent.FieldMarketData, field.TypeJSON, value)
		_node.MarketData = value
	}
	if value, ok := _c.mutation.TaData(); ok {
		_spec.SetField(enrichedevent.FieldTaData, field.TypeJSON, value)
		_node.TaData = value
	}
	if value, ok := _c.mutation.LevelsData(); ok {
		_spec.SetField(enrichedevent.FieldLevelsData, field.TypeJSON, value)
		_node.LevelsData = value
	}
	if value, ok := _c.mutation.DerivsData(); ok {
		_spec.SetField(enrichedevent.FieldDerivsData, field.TypeJSON, value)
		_node.DerivsData = value
	}
	if value, ok := _c.mutation.Constraints(); ok {
		_spec.SetField(enrichedevent.FieldConstraints, field.TypeJSON, value)
		_node.Constraints = value
	}
	if value, ok := _c.mutation.DataTimestamps(); ok {
		_spec.SetField(enrichedevent.FieldDataTimestamps, field.TypeJSON, value)
		_node.DataTimestamps = value
	}
	if value, ok := _c.mutation.QualityFlags(); ok {
		_spec.SetField(enrichedevent.FieldQualityFlags, field.TypeJSON, value)
		_node.QualityFlags = value
	}
	if value, ok := _c.mutation.EnrichedPayload(); ok {
		_spec.SetField(enrichedevent.FieldEnrichedPayload, field.TypeJSON, value)
		_node.EnrichedPayload = value
	}
	if value, ok := _c.mutation.EnrichmentDurationMs(); ok {
		_spec.SetField(enrichedevent.FieldEnrichmentDurationMs, field.TypeInt, value)
		_node.EnrichmentDurationMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrichedevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EnrichedEventCreateBulk is the builder for creating many EnrichedEvent entities in bulk.
type EnrichedEventCreateBulk struct {
	config
	err      error
	builders []*EnrichedEventCreate
}

// Save creates the EnrichedEvent entities in the database.
func (_c *EnrichedEventCreateBulk) Save(ctx context.Context) ([]*EnrichedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnrichedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrichedEventMutation)
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
func (_c *EnrichedEventCreateBulk) SaveX(ctx context.Context) []*EnrichedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
