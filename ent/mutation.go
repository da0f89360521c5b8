// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sigmapilot/lens/ent/dlqentry"
	"github.com/sigmapilot/lens/ent/enrichedevent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/ent/llmconfig"
	"github.com/sigmapilot/lens/ent/modeldecision"
	"github.com/sigmapilot/lens/ent/predicate"
	"github.com/sigmapilot/lens/ent/processingtimeline"
	"github.com/sigmapilot/lens/ent/prompt"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDLQEntry           = "DLQEntry"
	TypeEnrichedEvent      = "EnrichedEvent"
	TypeEvent              = "Event"
	TypeLLMConfig          = "LLMConfig"
	TypeModelDecision      = "ModelDecision"
	TypeProcessingTimeline = "ProcessingTimeline"
	TypePrompt             = "Prompt"
)

// DLQEntryMutation represents an operation that mutates the DLQEntry nodes in the graph.
type DLQEntryMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	event_id        *string
	stage           *string
	reason_code     *string
	error_message   *string
	payload         *map[string]interface{}
	retry_count     *int
	addretry_count  *int
	last_retry_at   *time.Time
	resolved_at     *time.Time
	resolution_note *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*DLQEntry, error)
	predicates      []predicate.DLQEntry
}

var _ ent.Mutation = (*DLQEntryMutation)(nil)

// dlqentryOption allows management of the mutation configuration using functional options.
type dlqentryOption func(*DLQEntryMutation)

// newDLQEntryMutation creates new mutation for the DLQEntry entity.
func newDLQEntryMutation(c config, op Op, opts ...dlqentryOption) *DLQEntryMutation {
	m := &DLQEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDLQEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDLQEntryID sets the ID field of the mutation.
func withDLQEntryID(id uuid.UUID) dlqentryOption {
	return func(m *DLQEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DLQEntry
		)
		m.oldValue = func(ctx context.Context) (*DLQEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DLQEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDLQEntry sets the old DLQEntry of the mutation.
func withDLQEntry(node *DLQEntry) dlqentryOption {
	return func(m *DLQEntryMutation) {
		m.oldValue = func(context.Context) (*DLQEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DLQEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DLQEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DLQEntry entities.
func (m *DLQEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DLQEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DLQEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DLQEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *DLQEntryMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *DLQEntryMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ClearEventID clears the value of the "event_id" field.
func (m *DLQEntryMutation) ClearEventID() {
	m.event_id = nil
	m.clearedFields[dlqentry.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *DLQEntryMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *DLQEntryMutation) ResetEventID() {
	m.event_id = nil
	delete(m.clearedFields, dlqentry.FieldEventID)
}

// SetStage sets the "stage" field.
func (m *DLQEntryMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *DLQEntryMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *DLQEntryMutation) ResetStage() {
	m.stage = nil
}

// SetReasonCode sets the "reason_code" field.
func (m *DLQEntryMutation) SetReasonCode(s string) {
	m.reason_code = &s
}

// ReasonCode returns the value of the "reason_code" field in the mutation.
func (m *DLQEntryMutation) ReasonCode() (r string, exists bool) {
	v := m.reason_code
	if v == nil {
		return
	}
	return *v, true
}

// OldReasonCode returns the old "reason_code" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldReasonCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasonCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasonCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasonCode: %w", err)
	}
	return oldValue.ReasonCode, nil
}

// ResetReasonCode resets all changes to the "reason_code" field.
func (m *DLQEntryMutation) ResetReasonCode() {
	m.reason_code = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DLQEntryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DLQEntryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DLQEntryMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetPayload sets the "payload" field.
func (m *DLQEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DLQEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *DLQEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *DLQEntryMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DLQEntryMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DLQEntryMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DLQEntryMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DLQEntryMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastRetryAt sets the "last_retry_at" field.
func (m *DLQEntryMutation) SetLastRetryAt(t time.Time) {
	m.last_retry_at = &t
}

// LastRetryAt returns the value of the "last_retry_at" field in the mutation.
func (m *DLQEntryMutation) LastRetryAt() (r time.Time, exists bool) {
	v := m.last_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRetryAt returns the old "last_retry_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldLastRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRetryAt: %w", err)
	}
	return oldValue.LastRetryAt, nil
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (m *DLQEntryMutation) ClearLastRetryAt() {
	m.last_retry_at = nil
	m.clearedFields[dlqentry.FieldLastRetryAt] = struct{}{}
}

// LastRetryAtCleared returns if the "last_retry_at" field was cleared in this mutation.
func (m *DLQEntryMutation) LastRetryAtCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldLastRetryAt]
	return ok
}

// ResetLastRetryAt resets all changes to the "last_retry_at" field.
func (m *DLQEntryMutation) ResetLastRetryAt() {
	m.last_retry_at = nil
	delete(m.clearedFields, dlqentry.FieldLastRetryAt)
}

// SetResolvedAt sets the "resolved_at" field.
func (m *DLQEntryMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *DLQEntryMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *DLQEntryMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[dlqentry.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *DLQEntryMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *DLQEntryMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, dlqentry.FieldResolvedAt)
}

// SetResolutionNote sets the "resolution_note" field.
func (m *DLQEntryMutation) SetResolutionNote(s string) {
	m.resolution_note = &s
}

// ResolutionNote returns the value of the "resolution_note" field in the mutation.
func (m *DLQEntryMutation) ResolutionNote() (r string, exists bool) {
	v := m.resolution_note
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionNote returns the old "resolution_note" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldResolutionNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionNote: %w", err)
	}
	return oldValue.ResolutionNote, nil
}

// ClearResolutionNote clears the value of the "resolution_note" field.
func (m *DLQEntryMutation) ClearResolutionNote() {
	m.resolution_note = nil
	m.clearedFields[dlqentry.FieldResolutionNote] = struct{}{}
}

// ResolutionNoteCleared returns if the "resolution_note" field was cleared in this mutation.
func (m *DLQEntryMutation) ResolutionNoteCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldResolutionNote]
	return ok
}

// ResetResolutionNote resets all changes to the "resolution_note" field.
func (m *DLQEntryMutation) ResetResolutionNote() {
	m.resolution_note = nil
	delete(m.clearedFields, dlqentry.FieldResolutionNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *DLQEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DLQEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DLQEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DLQEntryMutation builder.
func (m *DLQEntryMutation) Where(ps ...predicate.DLQEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DLQEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DLQEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DLQEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DLQEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DLQEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DLQEntry).
func (m *DLQEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DLQEntryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.event_id != nil {
		fields = append(fields, dlqentry.FieldEventID)
	}
	if m.stage != nil {
		fields = append(fields, dlqentry.FieldStage)
	}
	if m.reason_code != nil {
		fields = append(fields, dlqentry.FieldReasonCode)
	}
	if m.error_message != nil {
		fields = append(fields, dlqentry.FieldErrorMessage)
	}
	if m.payload != nil {
		fields = append(fields, dlqentry.FieldPayload)
	}
	if m.retry_count != nil {
		fields = append(fields, dlqentry.FieldRetryCount)
	}
	if m.last_retry_at != nil {
		fields = append(fields, dlqentry.FieldLastRetryAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, dlqentry.FieldResolvedAt)
	}
	if m.resolution_note != nil {
		fields = append(fields, dlqentry.FieldResolutionNote)
	}
	if m.created_at != nil {
		fields = append(fields, dlqentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DLQEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dlqentry.FieldEventID:
		return m.EventID()
	case dlqentry.FieldStage:
		return m.Stage()
	case dlqentry.FieldReasonCode:
		return m.ReasonCode()
	case dlqentry.FieldErrorMessage:
		return m.ErrorMessage()
	case dlqentry.FieldPayload:
		return m.Payload()
	case dlqentry.FieldRetryCount:
		return m.RetryCount()
	case dlqentry.FieldLastRetryAt:
		return m.LastRetryAt()
	case dlqentry.FieldResolvedAt:
		return m.ResolvedAt()
	case dlqentry.FieldResolutionNote:
		return m.ResolutionNote()
	case dlqentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DLQEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dlqentry.FieldEventID:
		return m.OldEventID(ctx)
	case dlqentry.FieldStage:
		return m.OldStage(ctx)
	case dlqentry.FieldReasonCode:
		return m.OldReasonCode(ctx)
	case dlqentry.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case dlqentry.FieldPayload:
		return m.OldPayload(ctx)
	case dlqentry.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case dlqentry.FieldLastRetryAt:
		return m.OldLastRetryAt(ctx)
	case dlqentry.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case dlqentry.FieldResolutionNote:
		return m.OldResolutionNote(ctx)
	case dlqentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DLQEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLQEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dlqentry.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case dlqentry.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case dlqentry.FieldReasonCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasonCode(v)
		return nil
	case dlqentry.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case dlqentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case dlqentry.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case dlqentry.FieldLastRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRetryAt(v)
		return nil
	case dlqentry.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case dlqentry.FieldResolutionNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionNote(v)
		return nil
	case dlqentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DLQEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DLQEntryMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, dlqentry.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DLQEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dlqentry.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLQEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dlqentry.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown DLQEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DLQEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dlqentry.FieldEventID) {
		fields = append(fields, dlqentry.FieldEventID)
	}
	if m.FieldCleared(dlqentry.FieldLastRetryAt) {
		fields = append(fields, dlqentry.FieldLastRetryAt)
	}
	if m.FieldCleared(dlqentry.FieldResolvedAt) {
		fields = append(fields, dlqentry.FieldResolvedAt)
	}
	if m.FieldCleared(dlqentry.FieldResolutionNote) {
		fields = append(fields, dlqentry.FieldResolutionNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DLQEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DLQEntryMutation) ClearField(name string) error {
	switch name {
	case dlqentry.FieldEventID:
		m.ClearEventID()
		return nil
	case dlqentry.FieldLastRetryAt:
		m.ClearLastRetryAt()
		return nil
	case dlqentry.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	case dlqentry.FieldResolutionNote:
		m.ClearResolutionNote()
		return nil
	}
	return fmt.Errorf("unknown DLQEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DLQEntryMutation) ResetField(name string) error {
	switch name {
	case dlqentry.FieldEventID:
		m.ResetEventID()
		return nil
	case dlqentry.FieldStage:
		m.ResetStage()
		return nil
	case dlqentry.FieldReasonCode:
		m.ResetReasonCode()
		return nil
	case dlqentry.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case dlqentry.FieldPayload:
		m.ResetPayload()
		return nil
	case dlqentry.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case dlqentry.FieldLastRetryAt:
		m.ResetLastRetryAt()
		return nil
	case dlqentry.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case dlqentry.FieldResolutionNote:
		m.ResetResolutionNote()
		return nil
	case dlqentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DLQEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DLQEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DLQEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DLQEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DLQEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DLQEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DLQEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DLQEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DLQEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DLQEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DLQEntry edge %s", name)
}

// EnrichedEventMutation represents an operation that mutates the EnrichedEvent nodes in the graph.
type EnrichedEventMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	event_id                  *string
	feature_profile           *string
	provider                  *string
	provider_version          *string
	market_data               *map[string]interface{}
	ta_data                   *map[string]interface{}
	levels_data               *map[string]interface{}
	derivs_data               *map[string]interface{}
	constraints               *map[string]interface{}
	data_timestamps           *map[string]interface{}
	quality_flags             *map[string]interface{}
	enriched_payload          *map[string]interface{}
	enrichment_duration_ms    *int
	addenrichment_duration_ms *int
	created_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*EnrichedEvent, error)
	predicates                []predicate.EnrichedEvent
}

var _ ent.Mutation = (*EnrichedEventMutation)(nil)

// enrichedeventOption allows management of the mutation configuration using functional options.
type enrichedeventOption func(*EnrichedEventMutation)

// newEnrichedEventMutation creates new mutation for the EnrichedEvent entity.
func newEnrichedEventMutation(c config, op Op, opts ...enrichedeventOption) *EnrichedEventMutation {
	m := &EnrichedEventMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrichedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrichedEventID sets the ID field of the mutation.
func withEnrichedEventID(id uuid.UUID) enrichedeventOption {
	return func(m *EnrichedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *EnrichedEvent
		)
		m.oldValue = func(ctx context.Context) (*EnrichedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnrichedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrichedEvent sets the old EnrichedEvent of the mutation.
func withEnrichedEvent(node *EnrichedEvent) enrichedeventOption {
	return func(m *EnrichedEventMutation) {
		m.oldValue = func(context.Context) (*EnrichedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrichedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrichedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EnrichedEvent entities.
func (m *EnrichedEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrichedEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrichedEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnrichedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EnrichedEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EnrichedEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EnrichedEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetFeatureProfile sets the "feature_profile" field.
func (m *EnrichedEventMutation) SetFeatureProfile(s string) {
	m.feature_profile = &s
}

// FeatureProfile returns the value of the "feature_profile" field in the mutation.
func (m *EnrichedEventMutation) FeatureProfile() (r string, exists bool) {
	v := m.feature_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureProfile returns the old "feature_profile" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldFeatureProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureProfile: %w", err)
	}
	return oldValue.FeatureProfile, nil
}

// ResetFeatureProfile resets all changes to the "feature_profile" field.
func (m *EnrichedEventMutation) ResetFeatureProfile() {
	m.feature_profile = nil
}

// SetProvider sets the "provider" field.
func (m *EnrichedEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *EnrichedEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *EnrichedEventMutation) ResetProvider() {
	m.provider = nil
}

// SetProviderVersion sets the "provider_version" field.
func (m *EnrichedEventMutation) SetProviderVersion(s string) {
	m.provider_version = &s
}

// ProviderVersion returns the value of the "provider_version" field in the mutation.
func (m *EnrichedEventMutation) ProviderVersion() (r string, exists bool) {
	v := m.provider_version
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderVersion returns the old "provider_version" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldProviderVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderVersion: %w", err)
	}
	return oldValue.ProviderVersion, nil
}

// ClearProviderVersion clears the value of the "provider_version" field.
func (m *EnrichedEventMutation) ClearProviderVersion() {
	m.provider_version = nil
	m.clearedFields[enrichedevent.FieldProviderVersion] = struct{}{}
}

// ProviderVersionCleared returns if the "provider_version" field was cleared in this mutation.
func (m *EnrichedEventMutation) ProviderVersionCleared() bool {
	_, ok := m.clearedFields[enrichedevent.FieldProviderVersion]
	return ok
}

// ResetProviderVersion resets all changes to the "provider_version" field.
func (m *EnrichedEventMutation) ResetProviderVersion() {
	m.provider_version = nil
	delete(m.clearedFields, enrichedevent.FieldProviderVersion)
}

// SetMarketData sets the "market_data" field.
func (m *EnrichedEventMutation) SetMarketData(value map[string]interface{}) {
	m.market_data = &value
}

// MarketData returns the value of the "market_data" field in the mutation.
func (m *EnrichedEventMutation) MarketData() (r map[string]interface{}, exists bool) {
	v := m.market_data
	if v == nil {
		return
	}
	return *v, true
}

// OldMarketData returns the old "market_data" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldMarketData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarketData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarketData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarketData: %w", err)
	}
	return oldValue.MarketData, nil
}

// ResetMarketData resets all changes to the "market_data" field.
func (m *EnrichedEventMutation) ResetMarketData() {
	m.market_data = nil
}

// SetTaData sets the "ta_data" field.
func (m *EnrichedEventMutation) SetTaData(value map[string]interface{}) {
	m.ta_data = &value
}

// TaData returns the value of the "ta_data" field in the mutation.
func (m *EnrichedEventMutation) TaData() (r map[string]interface{}, exists bool) {
	v := m.ta_data
	if v == nil {
		return
	}
	return *v, true
}

// OldTaData returns the old "ta_data" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldTaData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaData: %w", err)
	}
	return oldValue.TaData, nil
}

// ResetTaData resets all changes to the "ta_data" field.
func (m *EnrichedEventMutation) ResetTaData() {
	m.ta_data = nil
}

// SetLevelsData sets the "levels_data" field.
func (m *EnrichedEventMutation) SetLevelsData(value map[string]interface{}) {
	m.levels_data = &value
}

// LevelsData returns the value of the "levels_data" field in the mutation.
func (m *EnrichedEventMutation) LevelsData() (r map[string]interface{}, exists bool) {
	v := m.levels_data
	if v == nil {
		return
	}
	return *v, true
}

// OldLevelsData returns the old "levels_data" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldLevelsData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevelsData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevelsData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevelsData: %w", err)
	}
	return oldValue.LevelsData, nil
}

// ClearLevelsData clears the value of the "levels_data" field.
func (m *EnrichedEventMutation) ClearLevelsData() {
	m.levels_data = nil
	m.clearedFields[enrichedevent.FieldLevelsData] = struct{}{}
}

// LevelsDataCleared returns if the "levels_data" field was cleared in this mutation.
func (m *EnrichedEventMutation) LevelsDataCleared() bool {
	_, ok := m.clearedFields[enrichedevent.FieldLevelsData]
	return ok
}

// ResetLevelsData resets all changes to the "levels_data" field.
func (m *EnrichedEventMutation) ResetLevelsData() {
	m.levels_data = nil
	delete(m.clearedFields, enrichedevent.FieldLevelsData)
}

// SetDerivsData sets the "derivs_data" field.
func (m *EnrichedEventMutation) SetDerivsData(value map[string]interface{}) {
	m.derivs_data = &value
}

// DerivsData returns the value of the "derivs_data" field in the mutation.
func (m *EnrichedEventMutation) DerivsData() (r map[string]interface{}, exists bool) {
	v := m.derivs_data
	if v == nil {
		return
	}
	return *v, true
}

// OldDerivsData returns the old "derivs_data" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldDerivsData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDerivsData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDerivsData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDerivsData: %w", err)
	}
	return oldValue.DerivsData, nil
}

// ClearDerivsData clears the value of the "derivs_data" field.
func (m *EnrichedEventMutation) ClearDerivsData() {
	m.derivs_data = nil
	m.clearedFields[enrichedevent.FieldDerivsData] = struct{}{}
}

// DerivsDataCleared returns if the "derivs_data" field was cleared in this mutation.
func (m *EnrichedEventMutation) DerivsDataCleared() bool {
	_, ok := m.clearedFields[enrichedevent.FieldDerivsData]
	return ok
}

// ResetDerivsData resets all changes to the "derivs_data" field.
func (m *EnrichedEventMutation) ResetDerivsData() {
	m.derivs_data = nil
	delete(m.clearedFields, enrichedevent.FieldDerivsData)
}

// SetConstraints sets the "constraints" field.
func (m *EnrichedEventMutation) SetConstraints(value map[string]interface{}) {
	m.constraints = &value
}

// Constraints returns the value of the "constraints" field in the mutation.
func (m *EnrichedEventMutation) Constraints() (r map[string]interface{}, exists bool) {
	v := m.constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldConstraints returns the old "constraints" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldConstraints(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConstraints: %w", err)
	}
	return oldValue.Constraints, nil
}

// ClearConstraints clears the value of the "constraints" field.
func (m *EnrichedEventMutation) ClearConstraints() {
	m.constraints = nil
	m.clearedFields[enrichedevent.FieldConstraints] = struct{}{}
}

// ConstraintsCleared returns if the "constraints" field was cleared in this mutation.
func (m *EnrichedEventMutation) ConstraintsCleared() bool {
	_, ok := m.clearedFields[enrichedevent.FieldConstraints]
	return ok
}

// ResetConstraints resets all changes to the "constraints" field.
func (m *EnrichedEventMutation) ResetConstraints() {
	m.constraints = nil
	delete(m.clearedFields, enrichedevent.FieldConstraints)
}

// SetDataTimestamps sets the "data_timestamps" field.
func (m *EnrichedEventMutation) SetDataTimestamps(value map[string]interface{}) {
	m.data_timestamps = &value
}

// DataTimestamps returns the value of the "data_timestamps" field in the mutation.
func (m *EnrichedEventMutation) DataTimestamps() (r map[string]interface{}, exists bool) {
	v := m.data_timestamps
	if v == nil {
		return
	}
	return *v, true
}

// OldDataTimestamps returns the old "data_timestamps" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldDataTimestamps(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataTimestamps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataTimestamps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataTimestamps: %w", err)
	}
	return oldValue.DataTimestamps, nil
}

// ResetDataTimestamps resets all changes to the "data_timestamps" field.
func (m *EnrichedEventMutation) ResetDataTimestamps() {
	m.data_timestamps = nil
}

// SetQualityFlags sets the "quality_flags" field.
func (m *EnrichedEventMutation) SetQualityFlags(value map[string]interface{}) {
	m.quality_flags = &value
}

// QualityFlags returns the value of the "quality_flags" field in the mutation.
func (m *EnrichedEventMutation) QualityFlags() (r map[string]interface{}, exists bool) {
	v := m.quality_flags
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityFlags returns the old "quality_flags" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldQualityFlags(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityFlags: %w", err)
	}
	return oldValue.QualityFlags, nil
}

// ClearQualityFlags clears the value of the "quality_flags" field.
func (m *EnrichedEventMutation) ClearQualityFlags() {
	m.quality_flags = nil
	m.clearedFields[enrichedevent.FieldQualityFlags] = struct{}{}
}

// QualityFlagsCleared returns if the "quality_flags" field was cleared in this mutation.
func (m *EnrichedEventMutation) QualityFlagsCleared() bool {
	_, ok := m.clearedFields[enrichedevent.FieldQualityFlags]
	return ok
}

// ResetQualityFlags resets all changes to the "quality_flags" field.
func (m *EnrichedEventMutation) ResetQualityFlags() {
	m.quality_flags = nil
	delete(m.clearedFields, enrichedevent.FieldQualityFlags)
}

// SetEnrichedPayload sets the "enriched_payload" field.
func (m *EnrichedEventMutation) SetEnrichedPayload(value map[string]interface{}) {
	m.enriched_payload = &value
}

// EnrichedPayload returns the value of the "enriched_payload" field in the mutation.
func (m *EnrichedEventMutation) EnrichedPayload() (r map[string]interface{}, exists bool) {
	v := m.enriched_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedPayload returns the old "enriched_payload" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldEnrichedPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedPayload: %w", err)
	}
	return oldValue.EnrichedPayload, nil
}

// ClearEnrichedPayload clears the value of the "enriched_payload" field.
func (m *EnrichedEventMutation) ClearEnrichedPayload() {
	m.enriched_payload = nil
	m.clearedFields[enrichedevent.FieldEnrichedPayload] = struct{}{}
}

// EnrichedPayloadCleared returns if the "enriched_payload" field was cleared in this mutation.
func (m *EnrichedEventMutation) EnrichedPayloadCleared() bool {
	_, ok := m.clearedFields[enrichedevent.FieldEnrichedPayload]
	return ok
}

// ResetEnrichedPayload resets all changes to the "enriched_payload" field.
func (m *EnrichedEventMutation) ResetEnrichedPayload() {
	m.enriched_payload = nil
	delete(m.clearedFields, enrichedevent.FieldEnrichedPayload)
}

// SetEnrichmentDurationMs sets the "enrichment_duration_ms" field.
func (m *EnrichedEventMutation) SetEnrichmentDurationMs(i int) {
	m.enrichment_duration_ms = &i
	m.addenrichment_duration_ms = nil
}

// EnrichmentDurationMs returns the value of the "enrichment_duration_ms" field in the mutation.
func (m *EnrichedEventMutation) EnrichmentDurationMs() (r int, exists bool) {
	v := m.enrichment_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichmentDurationMs returns the old "enrichment_duration_ms" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldEnrichmentDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichmentDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichmentDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichmentDurationMs: %w", err)
	}
	return oldValue.EnrichmentDurationMs, nil
}

// AddEnrichmentDurationMs adds i to the "enrichment_duration_ms" field.
func (m *EnrichedEventMutation) AddEnrichmentDurationMs(i int) {
	if m.addenrichment_duration_ms != nil {
		*m.addenrichment_duration_ms += i
	} else {
		m.addenrichment_duration_ms = &i
	}
}

// AddedEnrichmentDurationMs returns the value that was added to the "enrichment_duration_ms" field in this mutation.
func (m *EnrichedEventMutation) AddedEnrichmentDurationMs() (r int, exists bool) {
	v := m.addenrichment_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnrichmentDurationMs clears the value of the "enrichment_duration_ms" field.
func (m *EnrichedEventMutation) ClearEnrichmentDurationMs() {
	m.enrichment_duration_ms = nil
	m.addenrichment_duration_ms = nil
	m.clearedFields[enrichedevent.FieldEnrichmentDurationMs] = struct{}{}
}

// EnrichmentDurationMsCleared returns if the "enrichment_duration_ms" field was cleared in this mutation.
func (m *EnrichedEventMutation) EnrichmentDurationMsCleared() bool {
	_, ok := m.clearedFields[enrichedevent.FieldEnrichmentDurationMs]
	return ok
}

// ResetEnrichmentDurationMs resets all changes to the "enrichment_duration_ms" field.
func (m *EnrichedEventMutation) ResetEnrichmentDurationMs() {
	m.enrichment_duration_ms = nil
	m.addenrichment_duration_ms = nil
	delete(m.clearedFields, enrichedevent.FieldEnrichmentDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrichedEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrichedEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnrichedEvent entity.
// If the EnrichedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnrichedEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EnrichedEventMutation builder.
func (m *EnrichedEventMutation) Where(ps ...predicate.EnrichedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrichedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrichedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnrichedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrichedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrichedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnrichedEvent).
func (m *EnrichedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrichedEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.event_id != nil {
		fields = append(fields, enrichedevent.FieldEventID)
	}
	if m.feature_profile != nil {
		fields = append(fields, enrichedevent.FieldFeatureProfile)
	}
	if m.provider != nil {
		fields = append(fields, enrichedevent.FieldProvider)
	}
	if m.provider_version != nil {
		fields = append(fields, enrichedevent.FieldProviderVersion)
	}
	if m.market_data != nil {
		fields = append(fields, enrichedevent.FieldMarketData)
	}
	if m.ta_data != nil {
		fields = append(fields, enrichedevent.FieldTaData)
	}
	if m.levels_data != nil {
		fields = append(fields, enrichedevent.FieldLevelsData)
	}
	if m.derivs_data != nil {
		fields = append(fields, enrichedevent.FieldDerivsData)
	}
	if m.constraints != nil {
		fields = append(fields, enrichedevent.FieldConstraints)
	}
	if m.data_timestamps != nil {
		fields = append(fields, enrichedevent.FieldDataTimestamps)
	}
	if m.quality_flags != nil {
		fields = append(fields, enrichedevent.FieldQualityFlags)
	}
	if m.enriched_payload != nil {
		fields = append(fields, enrichedevent.FieldEnrichedPayload)
	}
	if m.enrichment_duration_ms != nil {
		fields = append(fields, enrichedevent.FieldEnrichmentDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, enrichedevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrichedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrichedevent.FieldEventID:
		return m.EventID()
	case enrichedevent.FieldFeatureProfile:
		return m.FeatureProfile()
	case enrichedevent.FieldProvider:
		return m.Provider()
	case enrichedevent.FieldProviderVersion:
		return m.ProviderVersion()
	case enrichedevent.FieldMarketData:
		return m.MarketData()
	case enrichedevent.FieldTaData:
		return m.TaData()
	case enrichedevent.FieldLevelsData:
		return m.LevelsData()
	case enrichedevent.FieldDerivsData:
		return m.DerivsData()
	case enrichedevent.FieldConstraints:
		return m.Constraints()
	case enrichedevent.FieldDataTimestamps:
		return m.DataTimestamps()
	case enrichedevent.FieldQualityFlags:
		return m.QualityFlags()
	case enrichedevent.FieldEnrichedPayload:
		return m.EnrichedPayload()
	case enrichedevent.FieldEnrichmentDurationMs:
		return m.EnrichmentDurationMs()
	case enrichedevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrichedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrichedevent.FieldEventID:
		return m.OldEventID(ctx)
	case enrichedevent.FieldFeatureProfile:
		return m.OldFeatureProfile(ctx)
	case enrichedevent.FieldProvider:
		return m.OldProvider(ctx)
	case enrichedevent.FieldProviderVersion:
		return m.OldProviderVersion(ctx)
	case enrichedevent.FieldMarketData:
		return m.OldMarketData(ctx)
	case enrichedevent.FieldTaData:
		return m.OldTaData(ctx)
	case enrichedevent.FieldLevelsData:
		return m.OldLevelsData(ctx)
	case enrichedevent.FieldDerivsData:
		return m.OldDerivsData(ctx)
	case enrichedevent.FieldConstraints:
		return m.OldConstraints(ctx)
	case enrichedevent.FieldDataTimestamps:
		return m.OldDataTimestamps(ctx)
	case enrichedevent.FieldQualityFlags:
		return m.OldQualityFlags(ctx)
	case enrichedevent.FieldEnrichedPayload:
		return m.OldEnrichedPayload(ctx)
	case enrichedevent.FieldEnrichmentDurationMs:
		return m.OldEnrichmentDurationMs(ctx)
	case enrichedevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EnrichedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrichedevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case enrichedevent.FieldFeatureProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureProfile(v)
		return nil
	case enrichedevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case enrichedevent.FieldProviderVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderVersion(v)
		return nil
	case enrichedevent.FieldMarketData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarketData(v)
		return nil
	case enrichedevent.FieldTaData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaData(v)
		return nil
	case enrichedevent.FieldLevelsData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevelsData(v)
		return nil
	case enrichedevent.FieldDerivsData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDerivsData(v)
		return nil
	case enrichedevent.FieldConstraints:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConstraints(v)
		return nil
	case enrichedevent.FieldDataTimestamps:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataTimestamps(v)
		return nil
	case enrichedevent.FieldQualityFlags:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityFlags(v)
		return nil
	case enrichedevent.FieldEnrichedPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedPayload(v)
		return nil
	case enrichedevent.FieldEnrichmentDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichmentDurationMs(v)
		return nil
	case enrichedevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EnrichedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrichedEventMutation) AddedFields() []string {
	var fields []string
	if m.addenrichment_duration_ms != nil {
		fields = append(fields, enrichedevent.FieldEnrichmentDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrichedEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case enrichedevent.FieldEnrichmentDurationMs:
		return m.AddedEnrichmentDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case enrichedevent.FieldEnrichmentDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnrichmentDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown EnrichedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrichedEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(enrichedevent.FieldProviderVersion) {
		fields = append(fields, enrichedevent.FieldProviderVersion)
	}
	if m.FieldCleared(enrichedevent.FieldLevelsData) {
		fields = append(fields, enrichedevent.FieldLevelsData)
	}
	if m.FieldCleared(enrichedevent.FieldDerivsData) {
		fields = append(fields, enrichedevent.FieldDerivsData)
	}
	if m.FieldCleared(enrichedevent.FieldConstraints) {
		fields = append(fields, enrichedevent.FieldConstraints)
	}
	if m.FieldCleared(enrichedevent.FieldQualityFlags) {
		fields = append(fields, enrichedevent.FieldQualityFlags)
	}
	if m.FieldCleared(enrichedevent.FieldEnrichedPayload) {
		fields = append(fields, enrichedevent.FieldEnrichedPayload)
	}
	if m.FieldCleared(enrichedevent.FieldEnrichmentDurationMs) {
		fields = append(fields, enrichedevent.FieldEnrichmentDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrichedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrichedEventMutation) ClearField(name string) error {
	switch name {
	case enrichedevent.FieldProviderVersion:
		m.ClearProviderVersion()
		return nil
	case enrichedevent.FieldLevelsData:
		m.ClearLevelsData()
		return nil
	case enrichedevent.FieldDerivsData:
		m.ClearDerivsData()
		return nil
	case enrichedevent.FieldConstraints:
		m.ClearConstraints()
		return nil
	case enrichedevent.FieldQualityFlags:
		m.ClearQualityFlags()
		return nil
	case enrichedevent.FieldEnrichedPayload:
		m.ClearEnrichedPayload()
		return nil
	case enrichedevent.FieldEnrichmentDurationMs:
		m.ClearEnrichmentDurationMs()
		return nil
	}
	return fmt.Errorf("unknown EnrichedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrichedEventMutation) ResetField(name string) error {
	switch name {
	case enrichedevent.FieldEventID:
		m.ResetEventID()
		return nil
	case enrichedevent.FieldFeatureProfile:
		m.ResetFeatureProfile()
		return nil
	case enrichedevent.FieldProvider:
		m.ResetProvider()
		return nil
	case enrichedevent.FieldProviderVersion:
		m.ResetProviderVersion()
		return nil
	case enrichedevent.FieldMarketData:
		m.ResetMarketData()
		return nil
	case enrichedevent.FieldTaData:
		m.ResetTaData()
		return nil
	case enrichedevent.FieldLevelsData:
		m.ResetLevelsData()
		return nil
	case enrichedevent.FieldDerivsData:
		m.ResetDerivsData()
		return nil
	case enrichedevent.FieldConstraints:
		m.ResetConstraints()
		return nil
	case enrichedevent.FieldDataTimestamps:
		m.ResetDataTimestamps()
		return nil
	case enrichedevent.FieldQualityFlags:
		m.ResetQualityFlags()
		return nil
	case enrichedevent.FieldEnrichedPayload:
		m.ResetEnrichedPayload()
		return nil
	case enrichedevent.FieldEnrichmentDurationMs:
		m.ResetEnrichmentDurationMs()
		return nil
	case enrichedevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EnrichedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrichedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrichedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrichedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrichedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrichedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrichedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrichedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EnrichedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrichedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EnrichedEvent edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	event_id             *string
	idempotency_key      *string
	event_type           *event.EventType
	symbol               *string
	signal_direction     *event.SignalDirection
	entry_price          *decimal.Decimal
	addentry_price       *decimal.Decimal
	size                 *decimal.Decimal
	addsize              *decimal.Decimal
	liquidation_price    *decimal.Decimal
	addliquidation_price *decimal.Decimal
	ts_utc               *time.Time
	source               *string
	status               *event.Status
	feature_profile      *string
	received_at          *time.Time
	enriched_at          *time.Time
	evaluated_at         *time.Time
	published_at         *time.Time
	raw_payload          *map[string]interface{}
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Event, error)
	predicates           []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id uuid.UUID) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventMutation) ResetEventID() {
	m.event_id = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *EventMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *EventMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldIdempotencyKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (m *EventMutation) ClearIdempotencyKey() {
	m.idempotency_key = nil
	m.clearedFields[event.FieldIdempotencyKey] = struct{}{}
}

// IdempotencyKeyCleared returns if the "idempotency_key" field was cleared in this mutation.
func (m *EventMutation) IdempotencyKeyCleared() bool {
	_, ok := m.clearedFields[event.FieldIdempotencyKey]
	return ok
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *EventMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
	delete(m.clearedFields, event.FieldIdempotencyKey)
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(et event.EventType) {
	m.event_type = &et
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r event.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v event.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetSymbol sets the "symbol" field.
func (m *EventMutation) SetSymbol(s string) {
	m.symbol = &s
}

// Symbol returns the value of the "symbol" field in the mutation.
func (m *EventMutation) Symbol() (r string, exists bool) {
	v := m.symbol
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbol returns the old "symbol" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSymbol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbol: %w", err)
	}
	return oldValue.Symbol, nil
}

// ResetSymbol resets all changes to the "symbol" field.
func (m *EventMutation) ResetSymbol() {
	m.symbol = nil
}

// SetSignalDirection sets the "signal_direction" field.
func (m *EventMutation) SetSignalDirection(ed event.SignalDirection) {
	m.signal_direction = &ed
}

// SignalDirection returns the value of the "signal_direction" field in the mutation.
func (m *EventMutation) SignalDirection() (r event.SignalDirection, exists bool) {
	v := m.signal_direction
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalDirection returns the old "signal_direction" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSignalDirection(ctx context.Context) (v event.SignalDirection, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalDirection: %w", err)
	}
	return oldValue.SignalDirection, nil
}

// ResetSignalDirection resets all changes to the "signal_direction" field.
func (m *EventMutation) ResetSignalDirection() {
	m.signal_direction = nil
}

// SetEntryPrice sets the "entry_price" field.
func (m *EventMutation) SetEntryPrice(d decimal.Decimal) {
	m.entry_price = &d
	m.addentry_price = nil
}

// EntryPrice returns the value of the "entry_price" field in the mutation.
func (m *EventMutation) EntryPrice() (r decimal.Decimal, exists bool) {
	v := m.entry_price
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryPrice returns the old "entry_price" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEntryPrice(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryPrice: %w", err)
	}
	return oldValue.EntryPrice, nil
}

// AddEntryPrice adds d to the "entry_price" field.
func (m *EventMutation) AddEntryPrice(d decimal.Decimal) {
	if m.addentry_price != nil {
		*m.addentry_price = m.addentry_price.Add(d)
	} else {
		m.addentry_price = &d
	}
}

// AddedEntryPrice returns the value that was added to the "entry_price" field in this mutation.
func (m *EventMutation) AddedEntryPrice() (r decimal.Decimal, exists bool) {
	v := m.addentry_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntryPrice resets all changes to the "entry_price" field.
func (m *EventMutation) ResetEntryPrice() {
	m.entry_price = nil
	m.addentry_price = nil
}

// SetSize sets the "size" field.
func (m *EventMutation) SetSize(d decimal.Decimal) {
	m.size = &d
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *EventMutation) Size() (r decimal.Decimal, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSize(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds d to the "size" field.
func (m *EventMutation) AddSize(d decimal.Decimal) {
	if m.addsize != nil {
		*m.addsize = m.addsize.Add(d)
	} else {
		m.addsize = &d
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *EventMutation) AddedSize() (r decimal.Decimal, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *EventMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetLiquidationPrice sets the "liquidation_price" field.
func (m *EventMutation) SetLiquidationPrice(d decimal.Decimal) {
	m.liquidation_price = &d
	m.addliquidation_price = nil
}

// LiquidationPrice returns the value of the "liquidation_price" field in the mutation.
func (m *EventMutation) LiquidationPrice() (r decimal.Decimal, exists bool) {
	v := m.liquidation_price
	if v == nil {
		return
	}
	return *v, true
}

// OldLiquidationPrice returns the old "liquidation_price" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldLiquidationPrice(ctx context.Context) (v *decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLiquidationPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLiquidationPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLiquidationPrice: %w", err)
	}
	return oldValue.LiquidationPrice, nil
}

// AddLiquidationPrice adds d to the "liquidation_price" field.
func (m *EventMutation) AddLiquidationPrice(d decimal.Decimal) {
	if m.addliquidation_price != nil {
		*m.addliquidation_price = m.addliquidation_price.Add(d)
	} else {
		m.addliquidation_price = &d
	}
}

// AddedLiquidationPrice returns the value that was added to the "liquidation_price" field in this mutation.
func (m *EventMutation) AddedLiquidationPrice() (r decimal.Decimal, exists bool) {
	v := m.addliquidation_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearLiquidationPrice clears the value of the "liquidation_price" field.
func (m *EventMutation) ClearLiquidationPrice() {
	m.liquidation_price = nil
	m.addliquidation_price = nil
	m.clearedFields[event.FieldLiquidationPrice] = struct{}{}
}

// LiquidationPriceCleared returns if the "liquidation_price" field was cleared in this mutation.
func (m *EventMutation) LiquidationPriceCleared() bool {
	_, ok := m.clearedFields[event.FieldLiquidationPrice]
	return ok
}

// ResetLiquidationPrice resets all changes to the "liquidation_price" field.
func (m *EventMutation) ResetLiquidationPrice() {
	m.liquidation_price = nil
	m.addliquidation_price = nil
	delete(m.clearedFields, event.FieldLiquidationPrice)
}

// SetTsUtc sets the "ts_utc" field.
func (m *EventMutation) SetTsUtc(t time.Time) {
	m.ts_utc = &t
}

// TsUtc returns the value of the "ts_utc" field in the mutation.
func (m *EventMutation) TsUtc() (r time.Time, exists bool) {
	v := m.ts_utc
	if v == nil {
		return
	}
	return *v, true
}

// OldTsUtc returns the old "ts_utc" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTsUtc(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsUtc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsUtc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsUtc: %w", err)
	}
	return oldValue.TsUtc, nil
}

// ResetTsUtc resets all changes to the "ts_utc" field.
func (m *EventMutation) ResetTsUtc() {
	m.ts_utc = nil
}

// SetSource sets the "source" field.
func (m *EventMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *EventMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EventMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *EventMutation) SetStatus(e event.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventMutation) Status() (r event.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStatus(ctx context.Context) (v event.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EventMutation) ResetStatus() {
	m.status = nil
}

// SetFeatureProfile sets the "feature_profile" field.
func (m *EventMutation) SetFeatureProfile(s string) {
	m.feature_profile = &s
}

// FeatureProfile returns the value of the "feature_profile" field in the mutation.
func (m *EventMutation) FeatureProfile() (r string, exists bool) {
	v := m.feature_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatureProfile returns the old "feature_profile" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldFeatureProfile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatureProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatureProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatureProfile: %w", err)
	}
	return oldValue.FeatureProfile, nil
}

// ClearFeatureProfile clears the value of the "feature_profile" field.
func (m *EventMutation) ClearFeatureProfile() {
	m.feature_profile = nil
	m.clearedFields[event.FieldFeatureProfile] = struct{}{}
}

// FeatureProfileCleared returns if the "feature_profile" field was cleared in this mutation.
func (m *EventMutation) FeatureProfileCleared() bool {
	_, ok := m.clearedFields[event.FieldFeatureProfile]
	return ok
}

// ResetFeatureProfile resets all changes to the "feature_profile" field.
func (m *EventMutation) ResetFeatureProfile() {
	m.feature_profile = nil
	delete(m.clearedFields, event.FieldFeatureProfile)
}

// SetReceivedAt sets the "received_at" field.
func (m *EventMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *EventMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *EventMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetEnrichedAt sets the "enriched_at" field.
func (m *EventMutation) SetEnrichedAt(t time.Time) {
	m.enriched_at = &t
}

// EnrichedAt returns the value of the "enriched_at" field in the mutation.
func (m *EventMutation) EnrichedAt() (r time.Time, exists bool) {
	v := m.enriched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedAt returns the old "enriched_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEnrichedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedAt: %w", err)
	}
	return oldValue.EnrichedAt, nil
}

// ClearEnrichedAt clears the value of the "enriched_at" field.
func (m *EventMutation) ClearEnrichedAt() {
	m.enriched_at = nil
	m.clearedFields[event.FieldEnrichedAt] = struct{}{}
}

// EnrichedAtCleared returns if the "enriched_at" field was cleared in this mutation.
func (m *EventMutation) EnrichedAtCleared() bool {
	_, ok := m.clearedFields[event.FieldEnrichedAt]
	return ok
}

// ResetEnrichedAt resets all changes to the "enriched_at" field.
func (m *EventMutation) ResetEnrichedAt() {
	m.enriched_at = nil
	delete(m.clearedFields, event.FieldEnrichedAt)
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *EventMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *EventMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEvaluatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ClearEvaluatedAt clears the value of the "evaluated_at" field.
func (m *EventMutation) ClearEvaluatedAt() {
	m.evaluated_at = nil
	m.clearedFields[event.FieldEvaluatedAt] = struct{}{}
}

// EvaluatedAtCleared returns if the "evaluated_at" field was cleared in this mutation.
func (m *EventMutation) EvaluatedAtCleared() bool {
	_, ok := m.clearedFields[event.FieldEvaluatedAt]
	return ok
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *EventMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
	delete(m.clearedFields, event.FieldEvaluatedAt)
}

// SetPublishedAt sets the "published_at" field.
func (m *EventMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *EventMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *EventMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[event.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *EventMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[event.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *EventMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, event.FieldPublishedAt)
}

// SetRawPayload sets the "raw_payload" field.
func (m *EventMutation) SetRawPayload(value map[string]interface{}) {
	m.raw_payload = &value
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *EventMutation) RawPayload() (r map[string]interface{}, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRawPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *EventMutation) ResetRawPayload() {
	m.raw_payload = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.event_id != nil {
		fields = append(fields, event.FieldEventID)
	}
	if m.idempotency_key != nil {
		fields = append(fields, event.FieldIdempotencyKey)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.symbol != nil {
		fields = append(fields, event.FieldSymbol)
	}
	if m.signal_direction != nil {
		fields = append(fields, event.FieldSignalDirection)
	}
	if m.entry_price != nil {
		fields = append(fields, event.FieldEntryPrice)
	}
	if m.size != nil {
		fields = append(fields, event.FieldSize)
	}
	if m.liquidation_price != nil {
		fields = append(fields, event.FieldLiquidationPrice)
	}
	if m.ts_utc != nil {
		fields = append(fields, event.FieldTsUtc)
	}
	if m.source != nil {
		fields = append(fields, event.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, event.FieldStatus)
	}
	if m.feature_profile != nil {
		fields = append(fields, event.FieldFeatureProfile)
	}
	if m.received_at != nil {
		fields = append(fields, event.FieldReceivedAt)
	}
	if m.enriched_at != nil {
		fields = append(fields, event.FieldEnrichedAt)
	}
	if m.evaluated_at != nil {
		fields = append(fields, event.FieldEvaluatedAt)
	}
	if m.published_at != nil {
		fields = append(fields, event.FieldPublishedAt)
	}
	if m.raw_payload != nil {
		fields = append(fields, event.FieldRawPayload)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventID:
		return m.EventID()
	case event.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldSymbol:
		return m.Symbol()
	case event.FieldSignalDirection:
		return m.SignalDirection()
	case event.FieldEntryPrice:
		return m.EntryPrice()
	case event.FieldSize:
		return m.Size()
	case event.FieldLiquidationPrice:
		return m.LiquidationPrice()
	case event.FieldTsUtc:
		return m.TsUtc()
	case event.FieldSource:
		return m.Source()
	case event.FieldStatus:
		return m.Status()
	case event.FieldFeatureProfile:
		return m.FeatureProfile()
	case event.FieldReceivedAt:
		return m.ReceivedAt()
	case event.FieldEnrichedAt:
		return m.EnrichedAt()
	case event.FieldEvaluatedAt:
		return m.EvaluatedAt()
	case event.FieldPublishedAt:
		return m.PublishedAt()
	case event.FieldRawPayload:
		return m.RawPayload()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventID:
		return m.OldEventID(ctx)
	case event.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldSymbol:
		return m.OldSymbol(ctx)
	case event.FieldSignalDirection:
		return m.OldSignalDirection(ctx)
	case event.FieldEntryPrice:
		return m.OldEntryPrice(ctx)
	case event.FieldSize:
		return m.OldSize(ctx)
	case event.FieldLiquidationPrice:
		return m.OldLiquidationPrice(ctx)
	case event.FieldTsUtc:
		return m.OldTsUtc(ctx)
	case event.FieldSource:
		return m.OldSource(ctx)
	case event.FieldStatus:
		return m.OldStatus(ctx)
	case event.FieldFeatureProfile:
		return m.OldFeatureProfile(ctx)
	case event.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case event.FieldEnrichedAt:
		return m.OldEnrichedAt(ctx)
	case event.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	case event.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case event.FieldRawPayload:
		return m.OldRawPayload(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case event.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(event.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldSymbol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbol(v)
		return nil
	case event.FieldSignalDirection:
		v, ok := value.(event.SignalDirection)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalDirection(v)
		return nil
	case event.FieldEntryPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryPrice(v)
		return nil
	case event.FieldSize:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case event.FieldLiquidationPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLiquidationPrice(v)
		return nil
	case event.FieldTsUtc:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsUtc(v)
		return nil
	case event.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case event.FieldStatus:
		v, ok := value.(event.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case event.FieldFeatureProfile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatureProfile(v)
		return nil
	case event.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case event.FieldEnrichedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedAt(v)
		return nil
	case event.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	case event.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case event.FieldRawPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addentry_price != nil {
		fields = append(fields, event.FieldEntryPrice)
	}
	if m.addsize != nil {
		fields = append(fields, event.FieldSize)
	}
	if m.addliquidation_price != nil {
		fields = append(fields, event.FieldLiquidationPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEntryPrice:
		return m.AddedEntryPrice()
	case event.FieldSize:
		return m.AddedSize()
	case event.FieldLiquidationPrice:
		return m.AddedLiquidationPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldEntryPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntryPrice(v)
		return nil
	case event.FieldSize:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	case event.FieldLiquidationPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLiquidationPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldIdempotencyKey) {
		fields = append(fields, event.FieldIdempotencyKey)
	}
	if m.FieldCleared(event.FieldLiquidationPrice) {
		fields = append(fields, event.FieldLiquidationPrice)
	}
	if m.FieldCleared(event.FieldFeatureProfile) {
		fields = append(fields, event.FieldFeatureProfile)
	}
	if m.FieldCleared(event.FieldEnrichedAt) {
		fields = append(fields, event.FieldEnrichedAt)
	}
	if m.FieldCleared(event.FieldEvaluatedAt) {
		fields = append(fields, event.FieldEvaluatedAt)
	}
	if m.FieldCleared(event.FieldPublishedAt) {
		fields = append(fields, event.FieldPublishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldIdempotencyKey:
		m.ClearIdempotencyKey()
		return nil
	case event.FieldLiquidationPrice:
		m.ClearLiquidationPrice()
		return nil
	case event.FieldFeatureProfile:
		m.ClearFeatureProfile()
		return nil
	case event.FieldEnrichedAt:
		m.ClearEnrichedAt()
		return nil
	case event.FieldEvaluatedAt:
		m.ClearEvaluatedAt()
		return nil
	case event.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventID:
		m.ResetEventID()
		return nil
	case event.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldSymbol:
		m.ResetSymbol()
		return nil
	case event.FieldSignalDirection:
		m.ResetSignalDirection()
		return nil
	case event.FieldEntryPrice:
		m.ResetEntryPrice()
		return nil
	case event.FieldSize:
		m.ResetSize()
		return nil
	case event.FieldLiquidationPrice:
		m.ResetLiquidationPrice()
		return nil
	case event.FieldTsUtc:
		m.ResetTsUtc()
		return nil
	case event.FieldSource:
		m.ResetSource()
		return nil
	case event.FieldStatus:
		m.ResetStatus()
		return nil
	case event.FieldFeatureProfile:
		m.ResetFeatureProfile()
		return nil
	case event.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case event.FieldEnrichedAt:
		m.ResetEnrichedAt()
		return nil
	case event.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	case event.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case event.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// LLMConfigMutation represents an operation that mutates the LLMConfig nodes in the graph.
type LLMConfigMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	model_name        *string
	enabled           *bool
	provider          *string
	api_key           *string
	model_id          *string
	timeout_ms        *int
	addtimeout_ms     *int
	max_tokens        *int
	addmax_tokens     *int
	prompt_path       *string
	validation_status *string
	last_validated_at *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*LLMConfig, error)
	predicates        []predicate.LLMConfig
}

var _ ent.Mutation = (*LLMConfigMutation)(nil)

// llmconfigOption allows management of the mutation configuration using functional options.
type llmconfigOption func(*LLMConfigMutation)

// newLLMConfigMutation creates new mutation for the LLMConfig entity.
func newLLMConfigMutation(c config, op Op, opts ...llmconfigOption) *LLMConfigMutation {
	m := &LLMConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMConfigID sets the ID field of the mutation.
func withLLMConfigID(id uuid.UUID) llmconfigOption {
	return func(m *LLMConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMConfig
		)
		m.oldValue = func(ctx context.Context) (*LLMConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMConfig sets the old LLMConfig of the mutation.
func withLLMConfig(node *LLMConfig) llmconfigOption {
	return func(m *LLMConfigMutation) {
		m.oldValue = func(context.Context) (*LLMConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMConfig entities.
func (m *LLMConfigMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMConfigMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMConfigMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModelName sets the "model_name" field.
func (m *LLMConfigMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *LLMConfigMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *LLMConfigMutation) ResetModelName() {
	m.model_name = nil
}

// SetEnabled sets the "enabled" field.
func (m *LLMConfigMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *LLMConfigMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *LLMConfigMutation) ResetEnabled() {
	m.enabled = nil
}

// SetProvider sets the "provider" field.
func (m *LLMConfigMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMConfigMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMConfigMutation) ResetProvider() {
	m.provider = nil
}

// SetAPIKey sets the "api_key" field.
func (m *LLMConfigMutation) SetAPIKey(s string) {
	m.api_key = &s
}

// APIKey returns the value of the "api_key" field in the mutation.
func (m *LLMConfigMutation) APIKey() (r string, exists bool) {
	v := m.api_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKey returns the old "api_key" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldAPIKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKey: %w", err)
	}
	return oldValue.APIKey, nil
}

// ResetAPIKey resets all changes to the "api_key" field.
func (m *LLMConfigMutation) ResetAPIKey() {
	m.api_key = nil
}

// SetModelID sets the "model_id" field.
func (m *LLMConfigMutation) SetModelID(s string) {
	m.model_id = &s
}

// ModelID returns the value of the "model_id" field in the mutation.
func (m *LLMConfigMutation) ModelID() (r string, exists bool) {
	v := m.model_id
	if v == nil {
		return
	}
	return *v, true
}

// OldModelID returns the old "model_id" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldModelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelID: %w", err)
	}
	return oldValue.ModelID, nil
}

// ResetModelID resets all changes to the "model_id" field.
func (m *LLMConfigMutation) ResetModelID() {
	m.model_id = nil
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *LLMConfigMutation) SetTimeoutMs(i int) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *LLMConfigMutation) TimeoutMs() (r int, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldTimeoutMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *LLMConfigMutation) AddTimeoutMs(i int) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *LLMConfigMutation) AddedTimeoutMs() (r int, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *LLMConfigMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetMaxTokens sets the "max_tokens" field.
func (m *LLMConfigMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *LLMConfigMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldMaxTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *LLMConfigMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *LLMConfigMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *LLMConfigMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
}

// SetPromptPath sets the "prompt_path" field.
func (m *LLMConfigMutation) SetPromptPath(s string) {
	m.prompt_path = &s
}

// PromptPath returns the value of the "prompt_path" field in the mutation.
func (m *LLMConfigMutation) PromptPath() (r string, exists bool) {
	v := m.prompt_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptPath returns the old "prompt_path" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldPromptPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptPath: %w", err)
	}
	return oldValue.PromptPath, nil
}

// ClearPromptPath clears the value of the "prompt_path" field.
func (m *LLMConfigMutation) ClearPromptPath() {
	m.prompt_path = nil
	m.clearedFields[llmconfig.FieldPromptPath] = struct{}{}
}

// PromptPathCleared returns if the "prompt_path" field was cleared in this mutation.
func (m *LLMConfigMutation) PromptPathCleared() bool {
	_, ok := m.clearedFields[llmconfig.FieldPromptPath]
	return ok
}

// ResetPromptPath resets all changes to the "prompt_path" field.
func (m *LLMConfigMutation) ResetPromptPath() {
	m.prompt_path = nil
	delete(m.clearedFields, llmconfig.FieldPromptPath)
}

// SetValidationStatus sets the "validation_status" field.
func (m *LLMConfigMutation) SetValidationStatus(s string) {
	m.validation_status = &s
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *LLMConfigMutation) ValidationStatus() (r string, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ClearValidationStatus clears the value of the "validation_status" field.
func (m *LLMConfigMutation) ClearValidationStatus() {
	m.validation_status = nil
	m.clearedFields[llmconfig.FieldValidationStatus] = struct{}{}
}

// ValidationStatusCleared returns if the "validation_status" field was cleared in this mutation.
func (m *LLMConfigMutation) ValidationStatusCleared() bool {
	_, ok := m.clearedFields[llmconfig.FieldValidationStatus]
	return ok
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *LLMConfigMutation) ResetValidationStatus() {
	m.validation_status = nil
	delete(m.clearedFields, llmconfig.FieldValidationStatus)
}

// SetLastValidatedAt sets the "last_validated_at" field.
func (m *LLMConfigMutation) SetLastValidatedAt(t time.Time) {
	m.last_validated_at = &t
}

// LastValidatedAt returns the value of the "last_validated_at" field in the mutation.
func (m *LLMConfigMutation) LastValidatedAt() (r time.Time, exists bool) {
	v := m.last_validated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastValidatedAt returns the old "last_validated_at" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldLastValidatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastValidatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastValidatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastValidatedAt: %w", err)
	}
	return oldValue.LastValidatedAt, nil
}

// ClearLastValidatedAt clears the value of the "last_validated_at" field.
func (m *LLMConfigMutation) ClearLastValidatedAt() {
	m.last_validated_at = nil
	m.clearedFields[llmconfig.FieldLastValidatedAt] = struct{}{}
}

// LastValidatedAtCleared returns if the "last_validated_at" field was cleared in this mutation.
func (m *LLMConfigMutation) LastValidatedAtCleared() bool {
	_, ok := m.clearedFields[llmconfig.FieldLastValidatedAt]
	return ok
}

// ResetLastValidatedAt resets all changes to the "last_validated_at" field.
func (m *LLMConfigMutation) ResetLastValidatedAt() {
	m.last_validated_at = nil
	delete(m.clearedFields, llmconfig.FieldLastValidatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LLMConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LLMConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LLMConfig entity.
// If the LLMConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LLMConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LLMConfigMutation builder.
func (m *LLMConfigMutation) Where(ps ...predicate.LLMConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMConfig).
func (m *LLMConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMConfigMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.model_name != nil {
		fields = append(fields, llmconfig.FieldModelName)
	}
	if m.enabled != nil {
		fields = append(fields, llmconfig.FieldEnabled)
	}
	if m.provider != nil {
		fields = append(fields, llmconfig.FieldProvider)
	}
	if m.api_key != nil {
		fields = append(fields, llmconfig.FieldAPIKey)
	}
	if m.model_id != nil {
		fields = append(fields, llmconfig.FieldModelID)
	}
	if m.timeout_ms != nil {
		fields = append(fields, llmconfig.FieldTimeoutMs)
	}
	if m.max_tokens != nil {
		fields = append(fields, llmconfig.FieldMaxTokens)
	}
	if m.prompt_path != nil {
		fields = append(fields, llmconfig.FieldPromptPath)
	}
	if m.validation_status != nil {
		fields = append(fields, llmconfig.FieldValidationStatus)
	}
	if m.last_validated_at != nil {
		fields = append(fields, llmconfig.FieldLastValidatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, llmconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, llmconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmconfig.FieldModelName:
		return m.ModelName()
	case llmconfig.FieldEnabled:
		return m.Enabled()
	case llmconfig.FieldProvider:
		return m.Provider()
	case llmconfig.FieldAPIKey:
		return m.APIKey()
	case llmconfig.FieldModelID:
		return m.ModelID()
	case llmconfig.FieldTimeoutMs:
		return m.TimeoutMs()
	case llmconfig.FieldMaxTokens:
		return m.MaxTokens()
	case llmconfig.FieldPromptPath:
		return m.PromptPath()
	case llmconfig.FieldValidationStatus:
		return m.ValidationStatus()
	case llmconfig.FieldLastValidatedAt:
		return m.LastValidatedAt()
	case llmconfig.FieldCreatedAt:
		return m.CreatedAt()
	case llmconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmconfig.FieldModelName:
		return m.OldModelName(ctx)
	case llmconfig.FieldEnabled:
		return m.OldEnabled(ctx)
	case llmconfig.FieldProvider:
		return m.OldProvider(ctx)
	case llmconfig.FieldAPIKey:
		return m.OldAPIKey(ctx)
	case llmconfig.FieldModelID:
		return m.OldModelID(ctx)
	case llmconfig.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case llmconfig.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case llmconfig.FieldPromptPath:
		return m.OldPromptPath(ctx)
	case llmconfig.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case llmconfig.FieldLastValidatedAt:
		return m.OldLastValidatedAt(ctx)
	case llmconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case llmconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmconfig.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case llmconfig.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case llmconfig.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmconfig.FieldAPIKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKey(v)
		return nil
	case llmconfig.FieldModelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelID(v)
		return nil
	case llmconfig.FieldTimeoutMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case llmconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case llmconfig.FieldPromptPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptPath(v)
		return nil
	case llmconfig.FieldValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case llmconfig.FieldLastValidatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastValidatedAt(v)
		return nil
	case llmconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case llmconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMConfigMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_ms != nil {
		fields = append(fields, llmconfig.FieldTimeoutMs)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, llmconfig.FieldMaxTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmconfig.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	case llmconfig.FieldMaxTokens:
		return m.AddedMaxTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmconfig.FieldTimeoutMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	case llmconfig.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	}
	return fmt.Errorf("unknown LLMConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmconfig.FieldPromptPath) {
		fields = append(fields, llmconfig.FieldPromptPath)
	}
	if m.FieldCleared(llmconfig.FieldValidationStatus) {
		fields = append(fields, llmconfig.FieldValidationStatus)
	}
	if m.FieldCleared(llmconfig.FieldLastValidatedAt) {
		fields = append(fields, llmconfig.FieldLastValidatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMConfigMutation) ClearField(name string) error {
	switch name {
	case llmconfig.FieldPromptPath:
		m.ClearPromptPath()
		return nil
	case llmconfig.FieldValidationStatus:
		m.ClearValidationStatus()
		return nil
	case llmconfig.FieldLastValidatedAt:
		m.ClearLastValidatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMConfigMutation) ResetField(name string) error {
	switch name {
	case llmconfig.FieldModelName:
		m.ResetModelName()
		return nil
	case llmconfig.FieldEnabled:
		m.ResetEnabled()
		return nil
	case llmconfig.FieldProvider:
		m.ResetProvider()
		return nil
	case llmconfig.FieldAPIKey:
		m.ResetAPIKey()
		return nil
	case llmconfig.FieldModelID:
		m.ResetModelID()
		return nil
	case llmconfig.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case llmconfig.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case llmconfig.FieldPromptPath:
		m.ResetPromptPath()
		return nil
	case llmconfig.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case llmconfig.FieldLastValidatedAt:
		m.ResetLastValidatedAt()
		return nil
	case llmconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case llmconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMConfig edge %s", name)
}

// ModelDecisionMutation represents an operation that mutates the ModelDecision nodes in the graph.
type ModelDecisionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	event_id         *string
	model_name       *string
	model_version    *string
	prompt_version   *string
	prompt_hash      *string
	decision         *string
	confidence       *float64
	addconfidence    *float64
	entry_plan       *map[string]interface{}
	risk_plan        *map[string]interface{}
	size_pct         *float64
	addsize_pct      *float64
	reasons          *[]string
	appendreasons    []string
	decision_payload *map[string]interface{}
	latency_ms       *int
	addlatency_ms    *int
	tokens_in        *int
	addtokens_in     *int
	tokens_out       *int
	addtokens_out    *int
	status           *string
	error_code       *string
	error_message    *string
	raw_response     *string
	evaluated_at     *time.Time
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ModelDecision, error)
	predicates       []predicate.ModelDecision
}

var _ ent.Mutation = (*ModelDecisionMutation)(nil)

// modeldecisionOption allows management of the mutation configuration using functional options.
type modeldecisionOption func(*ModelDecisionMutation)

// newModelDecisionMutation creates new mutation for the ModelDecision entity.
func newModelDecisionMutation(c config, op Op, opts ...modeldecisionOption) *ModelDecisionMutation {
	m := &ModelDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeModelDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withModelDecisionID sets the ID field of the mutation.
func withModelDecisionID(id uuid.UUID) modeldecisionOption {
	return func(m *ModelDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *ModelDecision
		)
		m.oldValue = func(ctx context.Context) (*ModelDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ModelDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withModelDecision sets the old ModelDecision of the mutation.
func withModelDecision(node *ModelDecision) modeldecisionOption {
	return func(m *ModelDecisionMutation) {
		m.oldValue = func(context.Context) (*ModelDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ModelDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ModelDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ModelDecision entities.
func (m *ModelDecisionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ModelDecisionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ModelDecisionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ModelDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *ModelDecisionMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *ModelDecisionMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *ModelDecisionMutation) ResetEventID() {
	m.event_id = nil
}

// SetModelName sets the "model_name" field.
func (m *ModelDecisionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ModelDecisionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ModelDecisionMutation) ResetModelName() {
	m.model_name = nil
}

// SetModelVersion sets the "model_version" field.
func (m *ModelDecisionMutation) SetModelVersion(s string) {
	m.model_version = &s
}

// ModelVersion returns the value of the "model_version" field in the mutation.
func (m *ModelDecisionMutation) ModelVersion() (r string, exists bool) {
	v := m.model_version
	if v == nil {
		return
	}
	return *v, true
}

// OldModelVersion returns the old "model_version" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldModelVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelVersion: %w", err)
	}
	return oldValue.ModelVersion, nil
}

// ClearModelVersion clears the value of the "model_version" field.
func (m *ModelDecisionMutation) ClearModelVersion() {
	m.model_version = nil
	m.clearedFields[modeldecision.FieldModelVersion] = struct{}{}
}

// ModelVersionCleared returns if the "model_version" field was cleared in this mutation.
func (m *ModelDecisionMutation) ModelVersionCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldModelVersion]
	return ok
}

// ResetModelVersion resets all changes to the "model_version" field.
func (m *ModelDecisionMutation) ResetModelVersion() {
	m.model_version = nil
	delete(m.clearedFields, modeldecision.FieldModelVersion)
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ModelDecisionMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ModelDecisionMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *ModelDecisionMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[modeldecision.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *ModelDecisionMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ModelDecisionMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, modeldecision.FieldPromptVersion)
}

// SetPromptHash sets the "prompt_hash" field.
func (m *ModelDecisionMutation) SetPromptHash(s string) {
	m.prompt_hash = &s
}

// PromptHash returns the value of the "prompt_hash" field in the mutation.
func (m *ModelDecisionMutation) PromptHash() (r string, exists bool) {
	v := m.prompt_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptHash returns the old "prompt_hash" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldPromptHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptHash: %w", err)
	}
	return oldValue.PromptHash, nil
}

// ClearPromptHash clears the value of the "prompt_hash" field.
func (m *ModelDecisionMutation) ClearPromptHash() {
	m.prompt_hash = nil
	m.clearedFields[modeldecision.FieldPromptHash] = struct{}{}
}

// PromptHashCleared returns if the "prompt_hash" field was cleared in this mutation.
func (m *ModelDecisionMutation) PromptHashCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldPromptHash]
	return ok
}

// ResetPromptHash resets all changes to the "prompt_hash" field.
func (m *ModelDecisionMutation) ResetPromptHash() {
	m.prompt_hash = nil
	delete(m.clearedFields, modeldecision.FieldPromptHash)
}

// SetDecision sets the "decision" field.
func (m *ModelDecisionMutation) SetDecision(s string) {
	m.decision = &s
}

// Decision returns the value of the "decision" field in the mutation.
func (m *ModelDecisionMutation) Decision() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ResetDecision resets all changes to the "decision" field.
func (m *ModelDecisionMutation) ResetDecision() {
	m.decision = nil
}

// SetConfidence sets the "confidence" field.
func (m *ModelDecisionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ModelDecisionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ModelDecisionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ModelDecisionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ModelDecisionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEntryPlan sets the "entry_plan" field.
func (m *ModelDecisionMutation) SetEntryPlan(value map[string]interface{}) {
	m.entry_plan = &value
}

// EntryPlan returns the value of the "entry_plan" field in the mutation.
func (m *ModelDecisionMutation) EntryPlan() (r map[string]interface{}, exists bool) {
	v := m.entry_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldEntryPlan returns the old "entry_plan" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldEntryPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntryPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntryPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntryPlan: %w", err)
	}
	return oldValue.EntryPlan, nil
}

// ClearEntryPlan clears the value of the "entry_plan" field.
func (m *ModelDecisionMutation) ClearEntryPlan() {
	m.entry_plan = nil
	m.clearedFields[modeldecision.FieldEntryPlan] = struct{}{}
}

// EntryPlanCleared returns if the "entry_plan" field was cleared in this mutation.
func (m *ModelDecisionMutation) EntryPlanCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldEntryPlan]
	return ok
}

// ResetEntryPlan resets all changes to the "entry_plan" field.
func (m *ModelDecisionMutation) ResetEntryPlan() {
	m.entry_plan = nil
	delete(m.clearedFields, modeldecision.FieldEntryPlan)
}

// SetRiskPlan sets the "risk_plan" field.
func (m *ModelDecisionMutation) SetRiskPlan(value map[string]interface{}) {
	m.risk_plan = &value
}

// RiskPlan returns the value of the "risk_plan" field in the mutation.
func (m *ModelDecisionMutation) RiskPlan() (r map[string]interface{}, exists bool) {
	v := m.risk_plan
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskPlan returns the old "risk_plan" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldRiskPlan(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskPlan: %w", err)
	}
	return oldValue.RiskPlan, nil
}

// ClearRiskPlan clears the value of the "risk_plan" field.
func (m *ModelDecisionMutation) ClearRiskPlan() {
	m.risk_plan = nil
	m.clearedFields[modeldecision.FieldRiskPlan] = struct{}{}
}

// RiskPlanCleared returns if the "risk_plan" field was cleared in this mutation.
func (m *ModelDecisionMutation) RiskPlanCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldRiskPlan]
	return ok
}

// ResetRiskPlan resets all changes to the "risk_plan" field.
func (m *ModelDecisionMutation) ResetRiskPlan() {
	m.risk_plan = nil
	delete(m.clearedFields, modeldecision.FieldRiskPlan)
}

// SetSizePct sets the "size_pct" field.
func (m *ModelDecisionMutation) SetSizePct(f float64) {
	m.size_pct = &f
	m.addsize_pct = nil
}

// SizePct returns the value of the "size_pct" field in the mutation.
func (m *ModelDecisionMutation) SizePct() (r float64, exists bool) {
	v := m.size_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldSizePct returns the old "size_pct" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldSizePct(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizePct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizePct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizePct: %w", err)
	}
	return oldValue.SizePct, nil
}

// AddSizePct adds f to the "size_pct" field.
func (m *ModelDecisionMutation) AddSizePct(f float64) {
	if m.addsize_pct != nil {
		*m.addsize_pct += f
	} else {
		m.addsize_pct = &f
	}
}

// AddedSizePct returns the value that was added to the "size_pct" field in this mutation.
func (m *ModelDecisionMutation) AddedSizePct() (r float64, exists bool) {
	v := m.addsize_pct
	if v == nil {
		return
	}
	return *v, true
}

// ClearSizePct clears the value of the "size_pct" field.
func (m *ModelDecisionMutation) ClearSizePct() {
	m.size_pct = nil
	m.addsize_pct = nil
	m.clearedFields[modeldecision.FieldSizePct] = struct{}{}
}

// SizePctCleared returns if the "size_pct" field was cleared in this mutation.
func (m *ModelDecisionMutation) SizePctCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldSizePct]
	return ok
}

// ResetSizePct resets all changes to the "size_pct" field.
func (m *ModelDecisionMutation) ResetSizePct() {
	m.size_pct = nil
	m.addsize_pct = nil
	delete(m.clearedFields, modeldecision.FieldSizePct)
}

// SetReasons sets the "reasons" field.
func (m *ModelDecisionMutation) SetReasons(s []string) {
	m.reasons = &s
	m.appendreasons = nil
}

// Reasons returns the value of the "reasons" field in the mutation.
func (m *ModelDecisionMutation) Reasons() (r []string, exists bool) {
	v := m.reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldReasons returns the old "reasons" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldReasons(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasons: %w", err)
	}
	return oldValue.Reasons, nil
}

// AppendReasons adds s to the "reasons" field.
func (m *ModelDecisionMutation) AppendReasons(s []string) {
	m.appendreasons = append(m.appendreasons, s...)
}

// AppendedReasons returns the list of values that were appended to the "reasons" field in this mutation.
func (m *ModelDecisionMutation) AppendedReasons() ([]string, bool) {
	if len(m.appendreasons) == 0 {
		return nil, false
	}
	return m.appendreasons, true
}

// ClearReasons clears the value of the "reasons" field.
func (m *ModelDecisionMutation) ClearReasons() {
	m.reasons = nil
	m.appendreasons = nil
	m.clearedFields[modeldecision.FieldReasons] = struct{}{}
}

// ReasonsCleared returns if the "reasons" field was cleared in this mutation.
func (m *ModelDecisionMutation) ReasonsCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldReasons]
	return ok
}

// ResetReasons resets all changes to the "reasons" field.
func (m *ModelDecisionMutation) ResetReasons() {
	m.reasons = nil
	m.appendreasons = nil
	delete(m.clearedFields, modeldecision.FieldReasons)
}

// SetDecisionPayload sets the "decision_payload" field.
func (m *ModelDecisionMutation) SetDecisionPayload(value map[string]interface{}) {
	m.decision_payload = &value
}

// DecisionPayload returns the value of the "decision_payload" field in the mutation.
func (m *ModelDecisionMutation) DecisionPayload() (r map[string]interface{}, exists bool) {
	v := m.decision_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionPayload returns the old "decision_payload" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldDecisionPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionPayload: %w", err)
	}
	return oldValue.DecisionPayload, nil
}

// ResetDecisionPayload resets all changes to the "decision_payload" field.
func (m *ModelDecisionMutation) ResetDecisionPayload() {
	m.decision_payload = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ModelDecisionMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ModelDecisionMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ModelDecisionMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ModelDecisionMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *ModelDecisionMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[modeldecision.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *ModelDecisionMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ModelDecisionMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, modeldecision.FieldLatencyMs)
}

// SetTokensIn sets the "tokens_in" field.
func (m *ModelDecisionMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *ModelDecisionMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldTokensIn(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *ModelDecisionMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *ModelDecisionMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (m *ModelDecisionMutation) ClearTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
	m.clearedFields[modeldecision.FieldTokensIn] = struct{}{}
}

// TokensInCleared returns if the "tokens_in" field was cleared in this mutation.
func (m *ModelDecisionMutation) TokensInCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldTokensIn]
	return ok
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *ModelDecisionMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
	delete(m.clearedFields, modeldecision.FieldTokensIn)
}

// SetTokensOut sets the "tokens_out" field.
func (m *ModelDecisionMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *ModelDecisionMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldTokensOut(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *ModelDecisionMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *ModelDecisionMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (m *ModelDecisionMutation) ClearTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
	m.clearedFields[modeldecision.FieldTokensOut] = struct{}{}
}

// TokensOutCleared returns if the "tokens_out" field was cleared in this mutation.
func (m *ModelDecisionMutation) TokensOutCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldTokensOut]
	return ok
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *ModelDecisionMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
	delete(m.clearedFields, modeldecision.FieldTokensOut)
}

// SetStatus sets the "status" field.
func (m *ModelDecisionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ModelDecisionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ModelDecisionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorCode sets the "error_code" field.
func (m *ModelDecisionMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *ModelDecisionMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldErrorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *ModelDecisionMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[modeldecision.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *ModelDecisionMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *ModelDecisionMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, modeldecision.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *ModelDecisionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ModelDecisionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ModelDecisionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[modeldecision.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ModelDecisionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ModelDecisionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, modeldecision.FieldErrorMessage)
}

// SetRawResponse sets the "raw_response" field.
func (m *ModelDecisionMutation) SetRawResponse(s string) {
	m.raw_response = &s
}

// RawResponse returns the value of the "raw_response" field in the mutation.
func (m *ModelDecisionMutation) RawResponse() (r string, exists bool) {
	v := m.raw_response
	if v == nil {
		return
	}
	return *v, true
}

// OldRawResponse returns the old "raw_response" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldRawResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawResponse: %w", err)
	}
	return oldValue.RawResponse, nil
}

// ClearRawResponse clears the value of the "raw_response" field.
func (m *ModelDecisionMutation) ClearRawResponse() {
	m.raw_response = nil
	m.clearedFields[modeldecision.FieldRawResponse] = struct{}{}
}

// RawResponseCleared returns if the "raw_response" field was cleared in this mutation.
func (m *ModelDecisionMutation) RawResponseCleared() bool {
	_, ok := m.clearedFields[modeldecision.FieldRawResponse]
	return ok
}

// ResetRawResponse resets all changes to the "raw_response" field.
func (m *ModelDecisionMutation) ResetRawResponse() {
	m.raw_response = nil
	delete(m.clearedFields, modeldecision.FieldRawResponse)
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *ModelDecisionMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *ModelDecisionMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldEvaluatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *ModelDecisionMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ModelDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ModelDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ModelDecision entity.
// If the ModelDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ModelDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ModelDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ModelDecisionMutation builder.
func (m *ModelDecisionMutation) Where(ps ...predicate.ModelDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ModelDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ModelDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ModelDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ModelDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ModelDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ModelDecision).
func (m *ModelDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ModelDecisionMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.event_id != nil {
		fields = append(fields, modeldecision.FieldEventID)
	}
	if m.model_name != nil {
		fields = append(fields, modeldecision.FieldModelName)
	}
	if m.model_version != nil {
		fields = append(fields, modeldecision.FieldModelVersion)
	}
	if m.prompt_version != nil {
		fields = append(fields, modeldecision.FieldPromptVersion)
	}
	if m.prompt_hash != nil {
		fields = append(fields, modeldecision.FieldPromptHash)
	}
	if m.decision != nil {
		fields = append(fields, modeldecision.FieldDecision)
	}
	if m.confidence != nil {
		fields = append(fields, modeldecision.FieldConfidence)
	}
	if m.entry_plan != nil {
		fields = append(fields, modeldecision.FieldEntryPlan)
	}
	if m.risk_plan != nil {
		fields = append(fields, modeldecision.FieldRiskPlan)
	}
	if m.size_pct != nil {
		fields = append(fields, modeldecision.FieldSizePct)
	}
	if m.reasons != nil {
		fields = append(fields, modeldecision.FieldReasons)
	}
	if m.decision_payload != nil {
		fields = append(fields, modeldecision.FieldDecisionPayload)
	}
	if m.latency_ms != nil {
		fields = append(fields, modeldecision.FieldLatencyMs)
	}
	if m.tokens_in != nil {
		fields = append(fields, modeldecision.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, modeldecision.FieldTokensOut)
	}
	if m.status != nil {
		fields = append(fields, modeldecision.FieldStatus)
	}
	if m.error_code != nil {
		fields = append(fields, modeldecision.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, modeldecision.FieldErrorMessage)
	}
	if m.raw_response != nil {
		fields = append(fields, modeldecision.FieldRawResponse)
	}
	if m.evaluated_at != nil {
		fields = append(fields, modeldecision.FieldEvaluatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, modeldecision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ModelDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case modeldecision.FieldEventID:
		return m.EventID()
	case modeldecision.FieldModelName:
		return m.ModelName()
	case modeldecision.FieldModelVersion:
		return m.ModelVersion()
	case modeldecision.FieldPromptVersion:
		return m.PromptVersion()
	case modeldecision.FieldPromptHash:
		return m.PromptHash()
	case modeldecision.FieldDecision:
		return m.Decision()
	case modeldecision.FieldConfidence:
		return m.Confidence()
	case modeldecision.FieldEntryPlan:
		return m.EntryPlan()
	case modeldecision.FieldRiskPlan:
		return m.RiskPlan()
	case modeldecision.FieldSizePct:
		return m.SizePct()
	case modeldecision.FieldReasons:
		return m.Reasons()
	case modeldecision.FieldDecisionPayload:
		return m.DecisionPayload()
	case modeldecision.FieldLatencyMs:
		return m.LatencyMs()
	case modeldecision.FieldTokensIn:
		return m.TokensIn()
	case modeldecision.FieldTokensOut:
		return m.TokensOut()
	case modeldecision.FieldStatus:
		return m.Status()
	case modeldecision.FieldErrorCode:
		return m.ErrorCode()
	case modeldecision.FieldErrorMessage:
		return m.ErrorMessage()
	case modeldecision.FieldRawResponse:
		return m.RawResponse()
	case modeldecision.FieldEvaluatedAt:
		return m.EvaluatedAt()
	case modeldecision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ModelDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case modeldecision.FieldEventID:
		return m.OldEventID(ctx)
	case modeldecision.FieldModelName:
		return m.OldModelName(ctx)
	case modeldecision.FieldModelVersion:
		return m.OldModelVersion(ctx)
	case modeldecision.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case modeldecision.FieldPromptHash:
		return m.OldPromptHash(ctx)
	case modeldecision.FieldDecision:
		return m.OldDecision(ctx)
	case modeldecision.FieldConfidence:
		return m.OldConfidence(ctx)
	case modeldecision.FieldEntryPlan:
		return m.OldEntryPlan(ctx)
	case modeldecision.FieldRiskPlan:
		return m.OldRiskPlan(ctx)
	case modeldecision.FieldSizePct:
		return m.OldSizePct(ctx)
	case modeldecision.FieldReasons:
		return m.OldReasons(ctx)
	case modeldecision.FieldDecisionPayload:
		return m.OldDecisionPayload(ctx)
	case modeldecision.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case modeldecision.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case modeldecision.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case modeldecision.FieldStatus:
		return m.OldStatus(ctx)
	case modeldecision.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case modeldecision.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case modeldecision.FieldRawResponse:
		return m.OldRawResponse(ctx)
	case modeldecision.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	case modeldecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ModelDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case modeldecision.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case modeldecision.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case modeldecision.FieldModelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelVersion(v)
		return nil
	case modeldecision.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case modeldecision.FieldPromptHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptHash(v)
		return nil
	case modeldecision.FieldDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case modeldecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case modeldecision.FieldEntryPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntryPlan(v)
		return nil
	case modeldecision.FieldRiskPlan:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskPlan(v)
		return nil
	case modeldecision.FieldSizePct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizePct(v)
		return nil
	case modeldecision.FieldReasons:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasons(v)
		return nil
	case modeldecision.FieldDecisionPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionPayload(v)
		return nil
	case modeldecision.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case modeldecision.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case modeldecision.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case modeldecision.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case modeldecision.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case modeldecision.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case modeldecision.FieldRawResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawResponse(v)
		return nil
	case modeldecision.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	case modeldecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ModelDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ModelDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, modeldecision.FieldConfidence)
	}
	if m.addsize_pct != nil {
		fields = append(fields, modeldecision.FieldSizePct)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, modeldecision.FieldLatencyMs)
	}
	if m.addtokens_in != nil {
		fields = append(fields, modeldecision.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, modeldecision.FieldTokensOut)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ModelDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case modeldecision.FieldConfidence:
		return m.AddedConfidence()
	case modeldecision.FieldSizePct:
		return m.AddedSizePct()
	case modeldecision.FieldLatencyMs:
		return m.AddedLatencyMs()
	case modeldecision.FieldTokensIn:
		return m.AddedTokensIn()
	case modeldecision.FieldTokensOut:
		return m.AddedTokensOut()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ModelDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case modeldecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case modeldecision.FieldSizePct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizePct(v)
		return nil
	case modeldecision.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case modeldecision.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case modeldecision.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	}
	return fmt.Errorf("unknown ModelDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ModelDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(modeldecision.FieldModelVersion) {
		fields = append(fields, modeldecision.FieldModelVersion)
	}
	if m.FieldCleared(modeldecision.FieldPromptVersion) {
		fields = append(fields, modeldecision.FieldPromptVersion)
	}
	if m.FieldCleared(modeldecision.FieldPromptHash) {
		fields = append(fields, modeldecision.FieldPromptHash)
	}
	if m.FieldCleared(modeldecision.FieldEntryPlan) {
		fields = append(fields, modeldecision.FieldEntryPlan)
	}
	if m.FieldCleared(modeldecision.FieldRiskPlan) {
		fields = append(fields, modeldecision.FieldRiskPlan)
	}
	if m.FieldCleared(modeldecision.FieldSizePct) {
		fields = append(fields, modeldecision.FieldSizePct)
	}
	if m.FieldCleared(modeldecision.FieldReasons) {
		fields = append(fields, modeldecision.FieldReasons)
	}
	if m.FieldCleared(modeldecision.FieldLatencyMs) {
		fields = append(fields, modeldecision.FieldLatencyMs)
	}
	if m.FieldCleared(modeldecision.FieldTokensIn) {
		fields = append(fields, modeldecision.FieldTokensIn)
	}
	if m.FieldCleared(modeldecision.FieldTokensOut) {
		fields = append(fields, modeldecision.FieldTokensOut)
	}
	if m.FieldCleared(modeldecision.FieldErrorCode) {
		fields = append(fields, modeldecision.FieldErrorCode)
	}
	if m.FieldCleared(modeldecision.FieldErrorMessage) {
		fields = append(fields, modeldecision.FieldErrorMessage)
	}
	if m.FieldCleared(modeldecision.FieldRawResponse) {
		fields = append(fields, modeldecision.FieldRawResponse)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ModelDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ModelDecisionMutation) ClearField(name string) error {
	switch name {
	case modeldecision.FieldModelVersion:
		m.ClearModelVersion()
		return nil
	case modeldecision.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case modeldecision.FieldPromptHash:
		m.ClearPromptHash()
		return nil
	case modeldecision.FieldEntryPlan:
		m.ClearEntryPlan()
		return nil
	case modeldecision.FieldRiskPlan:
		m.ClearRiskPlan()
		return nil
	case modeldecision.FieldSizePct:
		m.ClearSizePct()
		return nil
	case modeldecision.FieldReasons:
		m.ClearReasons()
		return nil
	case modeldecision.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case modeldecision.FieldTokensIn:
		m.ClearTokensIn()
		return nil
	case modeldecision.FieldTokensOut:
		m.ClearTokensOut()
		return nil
	case modeldecision.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case modeldecision.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case modeldecision.FieldRawResponse:
		m.ClearRawResponse()
		return nil
	}
	return fmt.Errorf("unknown ModelDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ModelDecisionMutation) ResetField(name string) error {
	switch name {
	case modeldecision.FieldEventID:
		m.ResetEventID()
		return nil
	case modeldecision.FieldModelName:
		m.ResetModelName()
		return nil
	case modeldecision.FieldModelVersion:
		m.ResetModelVersion()
		return nil
	case modeldecision.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case modeldecision.FieldPromptHash:
		m.ResetPromptHash()
		return nil
	case modeldecision.FieldDecision:
		m.ResetDecision()
		return nil
	case modeldecision.FieldConfidence:
		m.ResetConfidence()
		return nil
	case modeldecision.FieldEntryPlan:
		m.ResetEntryPlan()
		return nil
	case modeldecision.FieldRiskPlan:
		m.ResetRiskPlan()
		return nil
	case modeldecision.FieldSizePct:
		m.ResetSizePct()
		return nil
	case modeldecision.FieldReasons:
		m.ResetReasons()
		return nil
	case modeldecision.FieldDecisionPayload:
		m.ResetDecisionPayload()
		return nil
	case modeldecision.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case modeldecision.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case modeldecision.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case modeldecision.FieldStatus:
		m.ResetStatus()
		return nil
	case modeldecision.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case modeldecision.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case modeldecision.FieldRawResponse:
		m.ResetRawResponse()
		return nil
	case modeldecision.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	case modeldecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ModelDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ModelDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ModelDecisionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ModelDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ModelDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ModelDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ModelDecisionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ModelDecisionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ModelDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ModelDecisionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ModelDecision edge %s", name)
}

// ProcessingTimelineMutation represents an operation that mutates the ProcessingTimeline nodes in the graph.
type ProcessingTimelineMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	event_id      *string
	status        *string
	details       *map[string]interface{}
	occurred_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProcessingTimeline, error)
	predicates    []predicate.ProcessingTimeline
}

var _ ent.Mutation = (*ProcessingTimelineMutation)(nil)

// processingtimelineOption allows management of the mutation configuration using functional options.
type processingtimelineOption func(*ProcessingTimelineMutation)

// newProcessingTimelineMutation creates new mutation for the ProcessingTimeline entity.
func newProcessingTimelineMutation(c config, op Op, opts ...processingtimelineOption) *ProcessingTimelineMutation {
	m := &ProcessingTimelineMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingTimeline,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingTimelineID sets the ID field of the mutation.
func withProcessingTimelineID(id uuid.UUID) processingtimelineOption {
	return func(m *ProcessingTimelineMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingTimeline
		)
		m.oldValue = func(ctx context.Context) (*ProcessingTimeline, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingTimeline.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingTimeline sets the old ProcessingTimeline of the mutation.
func withProcessingTimeline(node *ProcessingTimeline) processingtimelineOption {
	return func(m *ProcessingTimelineMutation) {
		m.oldValue = func(context.Context) (*ProcessingTimeline, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingTimelineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingTimelineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingTimeline entities.
func (m *ProcessingTimelineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingTimelineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingTimelineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingTimeline.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *ProcessingTimelineMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *ProcessingTimelineMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the ProcessingTimeline entity.
// If the ProcessingTimeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingTimelineMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *ProcessingTimelineMutation) ResetEventID() {
	m.event_id = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingTimelineMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingTimelineMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingTimeline entity.
// If the ProcessingTimeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingTimelineMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingTimelineMutation) ResetStatus() {
	m.status = nil
}

// SetDetails sets the "details" field.
func (m *ProcessingTimelineMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *ProcessingTimelineMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ProcessingTimeline entity.
// If the ProcessingTimeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingTimelineMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ProcessingTimelineMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[processingtimeline.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ProcessingTimelineMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[processingtimeline.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ProcessingTimelineMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, processingtimeline.FieldDetails)
}

// SetOccurredAt sets the "occurred_at" field.
func (m *ProcessingTimelineMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *ProcessingTimelineMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the ProcessingTimeline entity.
// If the ProcessingTimeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingTimelineMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *ProcessingTimelineMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// Where appends a list predicates to the ProcessingTimelineMutation builder.
func (m *ProcessingTimelineMutation) Where(ps ...predicate.ProcessingTimeline) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingTimelineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingTimelineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingTimeline, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingTimelineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingTimelineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingTimeline).
func (m *ProcessingTimelineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingTimelineMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.event_id != nil {
		fields = append(fields, processingtimeline.FieldEventID)
	}
	if m.status != nil {
		fields = append(fields, processingtimeline.FieldStatus)
	}
	if m.details != nil {
		fields = append(fields, processingtimeline.FieldDetails)
	}
	if m.occurred_at != nil {
		fields = append(fields, processingtimeline.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingTimelineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingtimeline.FieldEventID:
		return m.EventID()
	case processingtimeline.FieldStatus:
		return m.Status()
	case processingtimeline.FieldDetails:
		return m.Details()
	case processingtimeline.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingTimelineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingtimeline.FieldEventID:
		return m.OldEventID(ctx)
	case processingtimeline.FieldStatus:
		return m.OldStatus(ctx)
	case processingtimeline.FieldDetails:
		return m.OldDetails(ctx)
	case processingtimeline.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingTimeline field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingTimelineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingtimeline.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case processingtimeline.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingtimeline.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case processingtimeline.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingTimeline field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingTimelineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingTimelineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingTimelineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessingTimeline numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingTimelineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingtimeline.FieldDetails) {
		fields = append(fields, processingtimeline.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingTimelineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingTimelineMutation) ClearField(name string) error {
	switch name {
	case processingtimeline.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown ProcessingTimeline nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingTimelineMutation) ResetField(name string) error {
	switch name {
	case processingtimeline.FieldEventID:
		m.ResetEventID()
		return nil
	case processingtimeline.FieldStatus:
		m.ResetStatus()
		return nil
	case processingtimeline.FieldDetails:
		m.ResetDetails()
		return nil
	case processingtimeline.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingTimeline field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingTimelineMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingTimelineMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingTimelineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingTimelineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingTimelineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingTimelineMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingTimelineMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessingTimeline unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingTimelineMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessingTimeline edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	version       *string
	prompt_type   *prompt.PromptType
	model_name    *string
	content       *string
	description   *string
	is_active     *bool
	content_hash  *string
	created_by    *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Prompt, error)
	predicates    []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id uuid.UUID) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PromptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *PromptMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *PromptMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *PromptMutation) ResetVersion() {
	m.version = nil
}

// SetPromptType sets the "prompt_type" field.
func (m *PromptMutation) SetPromptType(pt prompt.PromptType) {
	m.prompt_type = &pt
}

// PromptType returns the value of the "prompt_type" field in the mutation.
func (m *PromptMutation) PromptType() (r prompt.PromptType, exists bool) {
	v := m.prompt_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptType returns the old "prompt_type" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldPromptType(ctx context.Context) (v prompt.PromptType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptType: %w", err)
	}
	return oldValue.PromptType, nil
}

// ResetPromptType resets all changes to the "prompt_type" field.
func (m *PromptMutation) ResetPromptType() {
	m.prompt_type = nil
}

// SetModelName sets the "model_name" field.
func (m *PromptMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *PromptMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *PromptMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[prompt.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *PromptMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[prompt.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *PromptMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, prompt.FieldModelName)
}

// SetContent sets the "content" field.
func (m *PromptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *PromptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *PromptMutation) ResetContent() {
	m.content = nil
}

// SetDescription sets the "description" field.
func (m *PromptMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PromptMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *PromptMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[prompt.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *PromptMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[prompt.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *PromptMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, prompt.FieldDescription)
}

// SetIsActive sets the "is_active" field.
func (m *PromptMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptMutation) ResetIsActive() {
	m.is_active = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PromptMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PromptMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PromptMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PromptMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PromptMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PromptMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[prompt.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PromptMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[prompt.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PromptMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, prompt.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.name != nil {
		fields = append(fields, prompt.FieldName)
	}
	if m.version != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	if m.prompt_type != nil {
		fields = append(fields, prompt.FieldPromptType)
	}
	if m.model_name != nil {
		fields = append(fields, prompt.FieldModelName)
	}
	if m.content != nil {
		fields = append(fields, prompt.FieldContent)
	}
	if m.description != nil {
		fields = append(fields, prompt.FieldDescription)
	}
	if m.is_active != nil {
		fields = append(fields, prompt.FieldIsActive)
	}
	if m.content_hash != nil {
		fields = append(fields, prompt.FieldContentHash)
	}
	if m.created_by != nil {
		fields = append(fields, prompt.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prompt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldName:
		return m.Name()
	case prompt.FieldVersion:
		return m.Version()
	case prompt.FieldPromptType:
		return m.PromptType()
	case prompt.FieldModelName:
		return m.ModelName()
	case prompt.FieldContent:
		return m.Content()
	case prompt.FieldDescription:
		return m.Description()
	case prompt.FieldIsActive:
		return m.IsActive()
	case prompt.FieldContentHash:
		return m.ContentHash()
	case prompt.FieldCreatedBy:
		return m.CreatedBy()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	case prompt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldName:
		return m.OldName(ctx)
	case prompt.FieldVersion:
		return m.OldVersion(ctx)
	case prompt.FieldPromptType:
		return m.OldPromptType(ctx)
	case prompt.FieldModelName:
		return m.OldModelName(ctx)
	case prompt.FieldContent:
		return m.OldContent(ctx)
	case prompt.FieldDescription:
		return m.OldDescription(ctx)
	case prompt.FieldIsActive:
		return m.OldIsActive(ctx)
	case prompt.FieldContentHash:
		return m.OldContentHash(ctx)
	case prompt.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prompt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompt.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case prompt.FieldPromptType:
		v, ok := value.(prompt.PromptType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptType(v)
		return nil
	case prompt.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case prompt.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case prompt.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case prompt.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case prompt.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case prompt.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prompt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldModelName) {
		fields = append(fields, prompt.FieldModelName)
	}
	if m.FieldCleared(prompt.FieldDescription) {
		fields = append(fields, prompt.FieldDescription)
	}
	if m.FieldCleared(prompt.FieldCreatedBy) {
		fields = append(fields, prompt.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldModelName:
		m.ClearModelName()
		return nil
	case prompt.FieldDescription:
		m.ClearDescription()
		return nil
	case prompt.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldName:
		m.ResetName()
		return nil
	case prompt.FieldVersion:
		m.ResetVersion()
		return nil
	case prompt.FieldPromptType:
		m.ResetPromptType()
		return nil
	case prompt.FieldModelName:
		m.ResetModelName()
		return nil
	case prompt.FieldContent:
		m.ResetContent()
		return nil
	case prompt.FieldDescription:
		m.ResetDescription()
		return nil
	case prompt.FieldIsActive:
		m.ResetIsActive()
		return nil
	case prompt.FieldContentHash:
		m.ResetContentHash()
		return nil
	case prompt.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prompt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prompt edge %s", name)
}
