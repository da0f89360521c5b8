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
	"github.com/shopspring/decimal"
	"github.com/sigmapilot/lens/ent/event"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *EventCreate) SetEventID(v string) *EventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *EventCreate) SetIdempotencyKey(v string) *EventCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_c *EventCreate) SetNillableIdempotencyKey(v *string) *EventCreate {
	if v != nil {
		_c.SetIdempotencyKey(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventCreate) SetEventType(v event.EventType) *EventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetSymbol sets the "symbol" field.
func (_c *EventCreate) SetSymbol(v string) *EventCreate {
	_c.mutation.SetSymbol(v)
	return _c
}

// SetSignalDirection sets the "signal_direction" field.
func (_c *EventCreate) SetSignalDirection(v event.SignalDirection) *EventCreate {
	_c.mutation.SetSignalDirection(v)
	return _c
}

// SetEntryPrice sets the "entry_price" field.
func (_c *EventCreate) SetEntryPrice(v decimal.Decimal) *EventCreate {
	_c.mutation.SetEntryPrice(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *EventCreate) SetSize(v decimal.Decimal) *EventCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetLiquidationPrice sets the "liquidation_price" field.
func (_c *EventCreate) SetLiquidationPrice(v decimal.Decimal) *EventCreate {
	_c.mutation.SetLiquidationPrice(v)
	return _c
}

// SetNillableLiquidationPrice sets the "liquidation_price" field if the given value is not nil.
func (_c *EventCreate) SetNillableLiquidationPrice(v *decimal.Decimal) *EventCreate {
	if v != nil {
		_c.SetLiquidationPrice(*v)
	}
	return _c
}

// SetTsUtc sets the "ts_utc" field.
func (_c *EventCreate) SetTsUtc(v time.Time) *EventCreate {
	_c.mutation.SetTsUtc(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *EventCreate) SetSource(v string) *EventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventCreate) SetStatus(v event.Status) *EventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventCreate) SetNillableStatus(v *event.Status) *EventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFeatureProfile sets the "feature_profile" field.
func (_c *EventCreate) SetFeatureProfile(v string) *EventCreate {
	_c.mutation.SetFeatureProfile(v)
	return _c
}

// SetNillableFeatureProfile sets the "feature_profile" field if the given value is not nil.
func (_c *EventCreate) SetNillableFeatureProfile(v *string) *EventCreate {
	if v != nil {
		_c.SetFeatureProfile(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *EventCreate) SetReceivedAt(v time.Time) *EventCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableReceivedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetEnrichedAt sets the "enriched_at" field.
func (_c *EventCreate) SetEnrichedAt(v time.Time) *EventCreate {
	_c.mutation.SetEnrichedAt(v)
	return _c
}

// SetNillableEnrichedAt sets the "enriched_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableEnrichedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetEnrichedAt(*v)
	}
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *EventCreate) SetEvaluatedAt(v time.Time) *EventCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableEvaluatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetEvaluatedAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *EventCreate) SetPublishedAt(v time.Time) *EventCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *EventCreate) SetNillablePublishedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetRawPayload sets the "raw_payload" field.
func (_c *EventCreate) SetRawPayload(v map[string]interface{}) *EventCreate {
	_c.mutation.SetRawPayload(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v uuid.UUID) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EventCreate) SetNillableID(v *uuid.UUID) *EventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := event.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := event.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := event.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Event.event_id"`)}
	}
	if v, ok := _c.mutation.EventID(); ok {
		if err := event.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "Event.event_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.IdempotencyKey(); ok {
		if err := event.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "Event.idempotency_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "Event.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := event.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "Event.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Symbol(); !ok {
		return &ValidationError{Name: "symbol", err: errors.New(`ent: missing required field "Event.symbol"`)}
	}
	if v, ok := _c.mutation.Symbol(); ok {
		if err := event.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "Event.symbol": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SignalDirection(); !ok {
		return &ValidationError{Name: "signal_direction", err: errors.New(`ent: missing required field "Event.signal_direction"`)}
	}
	if v, ok := _c.mutation.SignalDirection(); ok {
		if err := event.SignalDirectionValidator(v); err != nil {
			return &ValidationError{Name: "signal_direction", err: fmt.Errorf(`ent: validator failed for field "Event.signal_direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EntryPrice(); !ok {
		return &ValidationError{Name: "entry_price", err: errors.New(`ent: missing required field "Event.entry_price"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "Event.size"`)}
	}
	if _, ok := _c.mutation.TsUtc(); !ok {
		return &ValidationError{Name: "ts_utc", err: errors.New(`ent: missing required field "Event.ts_utc"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Event.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := event.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Event.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Event.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := event.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Event.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FeatureProfile(); ok {
		if err := event.FeatureProfileValidator(v); err != nil {
			return &ValidationError{Name: "feature_profile", err: fmt.Errorf(`ent: validator failed for field "Event.feature_profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "Event.received_at"`)}
	}
	if _, ok := _c.mutation.RawPayload(); !ok {
		return &ValidationError{Name: "raw_payload", err: errors.New(`ent: missing required field "Event.raw_payload"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(event.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(event.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Symbol(); ok {
		_spec.SetField(event.FieldSymbol, field.TypeString, value)
		_node.Symbol = value
	}
	if value, ok := _c.mutation.SignalDirection(); ok {
		_spec.SetField(event.FieldSignalDirection, field.TypeEnum, value)
		_node.SignalDirection = value
	}
	if value, ok := _c.mutation.EntryPrice(); ok {
		_spec.SetField(event.FieldEntryPrice, field.TypeFloat64, value)
		_node.EntryPrice = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(event.FieldSize, field.TypeFloat64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.LiquidationPrice(); ok {
		_spec.SetField(event.FieldLiquidationPrice, field.TypeFloat64, value)
		_node.LiquidationPrice = &value
	}
	if value, ok := _c.mutation.TsUtc(); ok {
		_spec.SetField(event.FieldTsUtc, field.TypeTime, value)
		_node.TsUtc = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(event.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(event.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FeatureProfile(); ok {
		_spec.SetField(event.FieldFeatureProfile, field.TypeString, value)
		_node.FeatureProfile = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(event.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.EnrichedAt(); ok {
		_spec.SetField(event.FieldEnrichedAt, field.TypeTime, value)
		_node.EnrichedAt = &value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(event.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = &value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(event.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.RawPayload(); ok {
		_spec.SetField(event.FieldRawPayload, field.TypeJSON, value)
		_node.RawPayload = value
	}
	return _node, _spec
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
