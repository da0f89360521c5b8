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
	"github.com/sigmapilot/lens/ent/dlqentry"
	"github.com/sigmapilot/lens/ent/predicate"
)

// DLQEntryUpdate is the builder for updating DLQEntry entities.
type DLQEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DLQEntryMutation
}

// Where appends a list predicates to the DLQEntryUpdate builder.
func (_u *DLQEntryUpdate) Where(ps ...predicate.DLQEntry) *DLQEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventID sets the "event_id" field.
func (_u *DLQEntryUpdate) SetEventID(v string) *DLQEntryUpdate {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableEventID(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *DLQEntryUpdate) ClearEventID() *DLQEntryUpdate {
	_u.mutation.ClearEventID()
	return _u
}

// SetStage sets the "stage" field.
func (_u *DLQEntryUpdate) SetStage(v string) *DLQEntryUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableStage(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *DLQEntryUpdate) SetReasonCode(v string) *DLQEntryUpdate {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableReasonCode(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DLQEntryUpdate) SetErrorMessage(v string) *DLQEntryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableErrorMessage(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DLQEntryUpdate) SetPayload(v map[string]interface{}) *DLQEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DLQEntryUpdate) SetRetryCount(v int) *DLQEntryUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableRetryCount(v *int) *DLQEntryUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DLQEntryUpdate) AddRetryCount(v int) *DLQEntryUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *DLQEntryUpdate) SetLastRetryAt(v time.Time) *DLQEntryUpdate {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableLastRetryAt(v *time.Time) *DLQEntryUpdate {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *DLQEntryUpdate) ClearLastRetryAt() *DLQEntryUpdate {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DLQEntryUpdate) SetResolvedAt(v time.Time) *DLQEntryUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableResolvedAt(v *time.Time) *DLQEntryUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DLQEntryUpdate) ClearResolvedAt() *DLQEntryUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolutionNote sets the "resolution_note" field.
func (_u *DLQEntryUpdate) SetResolutionNote(v string) *DLQEntryUpdate {
	_u.mutation.SetResolutionNote(v)
	return _u
}

// SetNillableResolutionNote sets the "resolution_note" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableResolutionNote(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetResolutionNote(*v)
	}
	return _u
}

// ClearResolutionNote clears the value of the "resolution_note" field.
func (_u *DLQEntryUpdate) ClearResolutionNote() *DLQEntryUpdate {
	_u.mutation.ClearResolutionNote()
	return _u
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_u *DLQEntryUpdate) Mutation() *DLQEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DLQEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLQEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DLQEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLQEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DLQEntryUpdate) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := dlqentry.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := dlqentry.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReasonCode(); ok {
		if err := dlqentry.ReasonCodeValidator(v); err != nil {
			return &ValidationError{Name: "reason_code", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.reason_code": %w`, err)}
		}
	}
	return nil
}

func (_u *DLQEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dlqentry.Table, dlqentry.Columns, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(dlqentry.FieldEventID, field.TypeString, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(dlqentry.FieldEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(dlqentry.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(dlqentry.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dlqentry.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(dlqentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(dlqentry.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(dlqentry.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(dlqentry.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(dlqentry.FieldLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(dlqentry.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(dlqentry.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolutionNote(); ok {
		_spec.SetField(dlqentry.FieldResolutionNote, field.TypeString, value)
	}
	if _u.mutation.ResolutionNoteCleared() {
		_spec.ClearField(dlqentry.FieldResolutionNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlqentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DLQEntryUpdateOne is the builder for updating a single DLQEntry entity.
type DLQEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DLQEntryMutation
}

// SetEventID sets the "event_id" field.
func (_u *DLQEntryUpdateOne) SetEventID(v string) *DLQEntryUpdateOne {
	_u.mutation.SetEventID(v)
	return _u
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableEventID(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetEventID(*v)
	}
	return _u
}

// ClearEventID clears the value of the "event_id" field.
func (_u *DLQEntryUpdateOne) ClearEventID() *DLQEntryUpdateOne {
	_u.mutation.ClearEventID()
	return _u
}

// SetStage sets the "stage" field.
func (_u *DLQEntryUpdateOne) SetStage(v string) *DLQEntryUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableStage(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetReasonCode sets the "reason_code" field.
func (_u *DLQEntryUpdateOne) SetReasonCode(v string) *DLQEntryUpdateOne {
	_u.mutation.SetReasonCode(v)
	return _u
}

// SetNillableReasonCode sets the "reason_code" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableReasonCode(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetReasonCode(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DLQEntryUpdateOne) SetErrorMessage(v string) *DLQEntryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableErrorMessage(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DLQEntryUpdateOne) SetPayload(v map[string]interface{}) *DLQEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *DLQEntryUpdateOne) SetRetryCount(v int) *DLQEntryUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableRetryCount(v *int) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *DLQEntryUpdateOne) AddRetryCount(v int) *DLQEntryUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastRetryAt sets the "last_retry_at" field.
func (_u *DLQEntryUpdateOne) SetLastRetryAt(v time.Time) *DLQEntryUpdateOne {
	_u.mutation.SetLastRetryAt(v)
	return _u
}

// SetNillableLastRetryAt sets the "last_retry_at" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableLastRetryAt(v *time.Time) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetLastRetryAt(*v)
	}
	return _u
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (_u *DLQEntryUpdateOne) ClearLastRetryAt() *DLQEntryUpdateOne {
	_u.mutation.ClearLastRetryAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DLQEntryUpdateOne) SetResolvedAt(v time.Time) *DLQEntryUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableResolvedAt(v *time.Time) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DLQEntryUpdateOne) ClearResolvedAt() *DLQEntryUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetResolutionNote sets the "resolution_note" field.
func (_u *DLQEntryUpdateOne) SetResolutionNote(v string) *DLQEntryUpdateOne {
	_u.mutation.SetResolutionNote(v)
	return _u
}

// SetNillableResolutionNote sets the "resolution_note" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableResolutionNote(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetResolutionNote(*v)
	}
	return _u
}

// ClearResolutionNote clears the value of the "resolution_note" field.
func (_u *DLQEntryUpdateOne) ClearResolutionNote() *DLQEntryUpdateOne {
	_u.mutation.ClearResolutionNote()
	return _u
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_u *DLQEntryUpdateOne) Mutation() *DLQEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DLQEntryUpdate builder.
func (_u *DLQEntryUpdateOne) Where(ps ...predicate.DLQEntry) *DLQEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DLQEntryUpdateOne) Select(field string, fields ...string) *DLQEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DLQEntry entity.
func (_u *DLQEntryUpdateOne) Save(ctx context.Context) (*DLQEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLQEntryUpdateOne) SaveX(ctx context.Context) *DLQEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DLQEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLQEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DLQEntryUpdateOne) check() error {
	if v, ok := _u.mutation.EventID(); ok {
		if err := dlqentry.EventIDValidator(v); err != nil {
			return &ValidationError{Name: "event_id", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.event_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := dlqentry.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReasonCode(); ok {
		if err := dlqentry.ReasonCodeValidator(v); err != nil {
			return &ValidationError{Name: "reason_code", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.reason_code": %w`, err)}
		}
	}
	return nil
}

func (_u *DLQEntryUpdateOne) sqlSave(ctx context.Context) (_node *DLQEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dlqentry.Table, dlqentry.Columns, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DLQEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dlqentry.FieldID)
		for _, f := range fields {
			if !dlqentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dlqentry.FieldID {
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
	if value, ok := _u.mutation.EventID(); ok {
		_spec.SetField(dlqentry.FieldEventID, field.TypeString, value)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(dlqentry.FieldEventID, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(dlqentry.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReasonCode(); ok {
		_spec.SetField(dlqentry.FieldReasonCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dlqentry.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(dlqentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(dlqentry.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(dlqentry.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastRetryAt(); ok {
		_spec.SetField(dlqentry.FieldLastRetryAt, field.TypeTime, value)
	}
	if _u.mutation.LastRetryAtCleared() {
		_spec.ClearField(dlqentry.FieldLastRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(dlqentry.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(dlqentry.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolutionNote(); ok {
		_spec.SetField(dlqentry.FieldResolutionNote, field.TypeString, value)
	}
	if _u.mutation.ResolutionNoteCleared() {
		_spec.ClearField(dlqentry.FieldResolutionNote, field.TypeString)
	}
	_node = &DLQEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlqentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
