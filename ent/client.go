// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/sigmapilot/lens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/sigmapilot/lens/ent/dlqentry"
	"github.com/sigmapilot/lens/ent/enrichedevent"
	"github.com/sigmapilot/lens/ent/event"
	"github.com/sigmapilot/lens/ent/llmconfig"
	"github.com/sigmapilot/lens/ent/modeldecision"
	"github.com/sigmapilot/lens/ent/processingtimeline"
	"github.com/sigmapilot/lens/ent/prompt"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DLQEntry is the client for interacting with the DLQEntry builders.
	DLQEntry *DLQEntryClient
	// EnrichedEvent is the client for interacting with the EnrichedEvent builders.
	EnrichedEvent *EnrichedEventClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// LLMConfig is the client for interacting with the LLMConfig builders.
	LLMConfig *LLMConfigClient
	// ModelDecision is the client for interacting with the ModelDecision builders.
	ModelDecision *ModelDecisionClient
	// ProcessingTimeline is the client for interacting with the ProcessingTimeline builders.
	ProcessingTimeline *ProcessingTimelineClient
	// Prompt is the client for interacting with the Prompt builders.
	Prompt *PromptClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DLQEntry = NewDLQEntryClient(c.config)
	c.EnrichedEvent = NewEnrichedEventClient(c.config)
	c.Event = NewEventClient(c.config)
	c.LLMConfig = NewLLMConfigClient(c.config)
	c.ModelDecision = NewModelDecisionClient(c.config)
	c.ProcessingTimeline = NewProcessingTimelineClient(c.config)
	c.Prompt = NewPromptClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		DLQEntry:           NewDLQEntryClient(cfg),
		EnrichedEvent:      NewEnrichedEventClient(cfg),
		Event:              NewEventClient(cfg),
		LLMConfig:          NewLLMConfigClient(cfg),
		ModelDecision:      NewModelDecisionClient(cfg),
		ProcessingTimeline: NewProcessingTimelineClient(cfg),
		Prompt:             NewPromptClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		DLQEntry:           NewDLQEntryClient(cfg),
		EnrichedEvent:      NewEnrichedEventClient(cfg),
		Event:              NewEventClient(cfg),
		LLMConfig:          NewLLMConfigClient(cfg),
		ModelDecision:      NewModelDecisionClient(cfg),
		ProcessingTimeline: NewProcessingTimelineClient(cfg),
		Prompt:             NewPromptClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DLQEntry.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.DLQEntry, c.EnrichedEvent, c.Event, c.LLMConfig, c.ModelDecision,
		c.ProcessingTimeline, c.Prompt,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DLQEntry, c.EnrichedEvent, c.Event, c.LLMConfig, c.ModelDecision,
		c.ProcessingTimeline, c.Prompt,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DLQEntryMutation:
		return c.DLQEntry.mutate(ctx, m)
	case *EnrichedEventMutation:
		return c.EnrichedEvent.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *LLMConfigMutation:
		return c.LLMConfig.mutate(ctx, m)
	case *ModelDecisionMutation:
		return c.ModelDecision.mutate(ctx, m)
	case *ProcessingTimelineMutation:
		return c.ProcessingTimeline.mutate(ctx, m)
	case *PromptMutation:
		return c.Prompt.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DLQEntryClient is a client for the DLQEntry schema.
type DLQEntryClient struct {
	config
}

// NewDLQEntryClient returns a client for the DLQEntry from the given config.
func NewDLQEntryClient(c config) *DLQEntryClient {
	return &DLQEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dlqentry.Hooks(f(g(h())))`.
func (c *DLQEntryClient) Use(hooks ...Hook) {
	c.hooks.DLQEntry = append(c.hooks.DLQEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dlqentry.Intercept(f(g(h())))`.
func (c *DLQEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DLQEntry = append(c.inters.DLQEntry, interceptors...)
}

// Create returns a builder for creating a DLQEntry entity.
func (c *DLQEntryClient) Create() *DLQEntryCreate {
	mutation := newDLQEntryMutation(c.config, OpCreate)
	return &DLQEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DLQEntry entities.
func (c *DLQEntryClient) CreateBulk(builders ...*DLQEntryCreate) *DLQEntryCreateBulk {
	return &DLQEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DLQEntryClient) MapCreateBulk(slice any, setFunc func(*DLQEntryCreate, int)) *DLQEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DLQEntryCreateBulk{err: fmt.Errorf("calling to DLQEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DLQEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DLQEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DLQEntry.
func (c *DLQEntryClient) Update() *DLQEntryUpdate {
	mutation := newDLQEntryMutation(c.config, OpUpdate)
	return &DLQEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DLQEntryClient) UpdateOne(_m *DLQEntry) *DLQEntryUpdateOne {
	mutation := newDLQEntryMutation(c.config, OpUpdateOne, withDLQEntry(_m))
	return &DLQEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DLQEntryClient) UpdateOneID(id uuid.UUID) *DLQEntryUpdateOne {
	mutation := newDLQEntryMutation(c.config, OpUpdateOne, withDLQEntryID(id))
	return &DLQEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DLQEntry.
func (c *DLQEntryClient) Delete() *DLQEntryDelete {
	mutation := newDLQEntryMutation(c.config, OpDelete)
	return &DLQEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DLQEntryClient) DeleteOne(_m *DLQEntry) *DLQEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DLQEntryClient) DeleteOneID(id uuid.UUID) *DLQEntryDeleteOne {
	builder := c.Delete().Where(dlqentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DLQEntryDeleteOne{builder}
}

// Query returns a query builder for DLQEntry.
func (c *DLQEntryClient) Query() *DLQEntryQuery {
	return &DLQEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDLQEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a DLQEntry entity by its id.
func (c *DLQEntryClient) Get(ctx context.Context, id uuid.UUID) (*DLQEntry, error) {
	return c.Query().Where(dlqentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DLQEntryClient) GetX(ctx context.Context, id uuid.UUID) *DLQEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DLQEntryClient) Hooks() []Hook {
	return c.hooks.DLQEntry
}

// Interceptors returns the client interceptors.
func (c *DLQEntryClient) Interceptors() []Interceptor {
	return c.inters.DLQEntry
}

func (c *DLQEntryClient) mutate(ctx context.Context, m *DLQEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DLQEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DLQEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DLQEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DLQEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DLQEntry mutation op: %q", m.Op())
	}
}

// EnrichedEventClient is a client for the EnrichedEvent schema.
type EnrichedEventClient struct {
	config
}

// NewEnrichedEventClient returns a client for the EnrichedEvent from the given config.
func NewEnrichedEventClient(c config) *EnrichedEventClient {
	return &EnrichedEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `enrichedevent.Hooks(f(g(h())))`.
func (c *EnrichedEventClient) Use(hooks ...Hook) {
	c.hooks.EnrichedEvent = append(c.hooks.EnrichedEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `enrichedevent.Intercept(f(g(h())))`.
func (c *EnrichedEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EnrichedEvent = append(c.inters.EnrichedEvent, interceptors...)
}

// Create returns a builder for creating a EnrichedEvent entity.
func (c *EnrichedEventClient) Create() *EnrichedEventCreate {
	mutation := newEnrichedEventMutation(c.config, OpCreate)
	return &EnrichedEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EnrichedEvent entities.
func (c *EnrichedEventClient) CreateBulk(builders ...*EnrichedEventCreate) *EnrichedEventCreateBulk {
	return &EnrichedEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EnrichedEventClient) MapCreateBulk(slice any, setFunc func(*EnrichedEventCreate, int)) *EnrichedEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EnrichedEventCreateBulk{err: fmt.Errorf("calling to EnrichedEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EnrichedEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EnrichedEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EnrichedEvent.
func (c *EnrichedEventClient) Update() *EnrichedEventUpdate {
	mutation := newEnrichedEventMutation(c.config, OpUpdate)
	return &EnrichedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EnrichedEventClient) UpdateOne(_m *EnrichedEvent) *EnrichedEventUpdateOne {
	mutation := newEnrichedEventMutation(c.config, OpUpdateOne, withEnrichedEvent(_m))
	return &EnrichedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EnrichedEventClient) UpdateOneID(id uuid.UUID) *EnrichedEventUpdateOne {
	mutation := newEnrichedEventMutation(c.config, OpUpdateOne, withEnrichedEventID(id))
	return &EnrichedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EnrichedEvent.
func (c *EnrichedEventClient) Delete() *EnrichedEventDelete {
	mutation := newEnrichedEventMutation(c.config, OpDelete)
	return &EnrichedEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EnrichedEventClient) DeleteOne(_m *EnrichedEvent) *EnrichedEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EnrichedEventClient) DeleteOneID(id uuid.UUID) *EnrichedEventDeleteOne {
	builder := c.Delete().Where(enrichedevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EnrichedEventDeleteOne{builder}
}

// Query returns a query builder for EnrichedEvent.
func (c *EnrichedEventClient) Query() *EnrichedEventQuery {
	return &EnrichedEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEnrichedEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EnrichedEvent entity by its id.
func (c *EnrichedEventClient) Get(ctx context.Context, id uuid.UUID) (*EnrichedEvent, error) {
	return c.Query().Where(enrichedevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EnrichedEventClient) GetX(ctx context.Context, id uuid.UUID) *EnrichedEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EnrichedEventClient) Hooks() []Hook {
	return c.hooks.EnrichedEvent
}

// Interceptors returns the client interceptors.
func (c *EnrichedEventClient) Interceptors() []Interceptor {
	return c.inters.EnrichedEvent
}

func (c *EnrichedEventClient) mutate(ctx context.Context, m *EnrichedEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EnrichedEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EnrichedEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EnrichedEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EnrichedEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EnrichedEvent mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id uuid.UUID) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id uuid.UUID) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id uuid.UUID) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id uuid.UUID) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// LLMConfigClient is a client for the LLMConfig schema.
type LLMConfigClient struct {
	config
}

// NewLLMConfigClient returns a client for the LLMConfig from the given config.
func NewLLMConfigClient(c config) *LLMConfigClient {
	return &LLMConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmconfig.Hooks(f(g(h())))`.
func (c *LLMConfigClient) Use(hooks ...Hook) {
	c.hooks.LLMConfig = append(c.hooks.LLMConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmconfig.Intercept(f(g(h())))`.
func (c *LLMConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMConfig = append(c.inters.LLMConfig, interceptors...)
}

// Create returns a builder for creating a LLMConfig entity.
func (c *LLMConfigClient) Create() *LLMConfigCreate {
	mutation := newLLMConfigMutation(c.config, OpCreate)
	return &LLMConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMConfig entities.
func (c *LLMConfigClient) CreateBulk(builders ...*LLMConfigCreate) *LLMConfigCreateBulk {
	return &LLMConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMConfigClient) MapCreateBulk(slice any, setFunc func(*LLMConfigCreate, int)) *LLMConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMConfigCreateBulk{err: fmt.Errorf("calling to LLMConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMConfig.
func (c *LLMConfigClient) Update() *LLMConfigUpdate {
	mutation := newLLMConfigMutation(c.config, OpUpdate)
	return &LLMConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMConfigClient) UpdateOne(_m *LLMConfig) *LLMConfigUpdateOne {
	mutation := newLLMConfigMutation(c.config, OpUpdateOne, withLLMConfig(_m))
	return &LLMConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMConfigClient) UpdateOneID(id uuid.UUID) *LLMConfigUpdateOne {
	mutation := newLLMConfigMutation(c.config, OpUpdateOne, withLLMConfigID(id))
	return &LLMConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMConfig.
func (c *LLMConfigClient) Delete() *LLMConfigDelete {
	mutation := newLLMConfigMutation(c.config, OpDelete)
	return &LLMConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMConfigClient) DeleteOne(_m *LLMConfig) *LLMConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMConfigClient) DeleteOneID(id uuid.UUID) *LLMConfigDeleteOne {
	builder := c.Delete().Where(llmconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMConfigDeleteOne{builder}
}

// Query returns a query builder for LLMConfig.
func (c *LLMConfigClient) Query() *LLMConfigQuery {
	return &LLMConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMConfig entity by its id.
func (c *LLMConfigClient) Get(ctx context.Context, id uuid.UUID) (*LLMConfig, error) {
	return c.Query().Where(llmconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMConfigClient) GetX(ctx context.Context, id uuid.UUID) *LLMConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMConfigClient) Hooks() []Hook {
	return c.hooks.LLMConfig
}

// Interceptors returns the client interceptors.
func (c *LLMConfigClient) Interceptors() []Interceptor {
	return c.inters.LLMConfig
}

func (c *LLMConfigClient) mutate(ctx context.Context, m *LLMConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMConfig mutation op: %q", m.Op())
	}
}

// ModelDecisionClient is a client for the ModelDecision schema.
type ModelDecisionClient struct {
	config
}

// NewModelDecisionClient returns a client for the ModelDecision from the given config.
func NewModelDecisionClient(c config) *ModelDecisionClient {
	return &ModelDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modeldecision.Hooks(f(g(h())))`.
func (c *ModelDecisionClient) Use(hooks ...Hook) {
	c.hooks.ModelDecision = append(c.hooks.ModelDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modeldecision.Intercept(f(g(h())))`.
func (c *ModelDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelDecision = append(c.inters.ModelDecision, interceptors...)
}

// Create returns a builder for creating a ModelDecision entity.
func (c *ModelDecisionClient) Create() *ModelDecisionCreate {
	mutation := newModelDecisionMutation(c.config, OpCreate)
	return &ModelDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelDecision entities.
func (c *ModelDecisionClient) CreateBulk(builders ...*ModelDecisionCreate) *ModelDecisionCreateBulk {
	return &ModelDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelDecisionClient) MapCreateBulk(slice any, setFunc func(*ModelDecisionCreate, int)) *ModelDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelDecisionCreateBulk{err: fmt.Errorf("calling to ModelDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelDecision.
func (c *ModelDecisionClient) Update() *ModelDecisionUpdate {
	mutation := newModelDecisionMutation(c.config, OpUpdate)
	return &ModelDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelDecisionClient) UpdateOne(_m *ModelDecision) *ModelDecisionUpdateOne {
	mutation := newModelDecisionMutation(c.config, OpUpdateOne, withModelDecision(_m))
	return &ModelDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelDecisionClient) UpdateOneID(id uuid.UUID) *ModelDecisionUpdateOne {
	mutation := newModelDecisionMutation(c.config, OpUpdateOne, withModelDecisionID(id))
	return &ModelDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelDecision.
func (c *ModelDecisionClient) Delete() *ModelDecisionDelete {
	mutation := newModelDecisionMutation(c.config, OpDelete)
	return &ModelDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelDecisionClient) DeleteOne(_m *ModelDecision) *ModelDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelDecisionClient) DeleteOneID(id uuid.UUID) *ModelDecisionDeleteOne {
	builder := c.Delete().Where(modeldecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelDecisionDeleteOne{builder}
}

// Query returns a query builder for ModelDecision.
func (c *ModelDecisionClient) Query() *ModelDecisionQuery {
	return &ModelDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelDecision entity by its id.
func (c *ModelDecisionClient) Get(ctx context.Context, id uuid.UUID) (*ModelDecision, error) {
	return c.Query().Where(modeldecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelDecisionClient) GetX(ctx context.Context, id uuid.UUID) *ModelDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelDecisionClient) Hooks() []Hook {
	return c.hooks.ModelDecision
}

// Interceptors returns the client interceptors.
func (c *ModelDecisionClient) Interceptors() []Interceptor {
	return c.inters.ModelDecision
}

func (c *ModelDecisionClient) mutate(ctx context.Context, m *ModelDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelDecision mutation op: %q", m.Op())
	}
}

// ProcessingTimelineClient is a client for the ProcessingTimeline schema.
type ProcessingTimelineClient struct {
	config
}

// NewProcessingTimelineClient returns a client for the ProcessingTimeline from the given config.
func NewProcessingTimelineClient(c config) *ProcessingTimelineClient {
	return &ProcessingTimelineClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingtimeline.Hooks(f(g(h())))`.
func (c *ProcessingTimelineClient) Use(hooks ...Hook) {
	c.hooks.ProcessingTimeline = append(c.hooks.ProcessingTimeline, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingtimeline.Intercept(f(g(h())))`.
func (c *ProcessingTimelineClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingTimeline = append(c.inters.ProcessingTimeline, interceptors...)
}

// Create returns a builder for creating a ProcessingTimeline entity.
func (c *ProcessingTimelineClient) Create() *ProcessingTimelineCreate {
	mutation := newProcessingTimelineMutation(c.config, OpCreate)
	return &ProcessingTimelineCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingTimeline entities.
func (c *ProcessingTimelineClient) CreateBulk(builders ...*ProcessingTimelineCreate) *ProcessingTimelineCreateBulk {
	return &ProcessingTimelineCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingTimelineClient) MapCreateBulk(slice any, setFunc func(*ProcessingTimelineCreate, int)) *ProcessingTimelineCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingTimelineCreateBulk{err: fmt.Errorf("calling to ProcessingTimelineClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingTimelineCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingTimelineCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingTimeline.
func (c *ProcessingTimelineClient) Update() *ProcessingTimelineUpdate {
	mutation := newProcessingTimelineMutation(c.config, OpUpdate)
	return &ProcessingTimelineUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingTimelineClient) UpdateOne(_m *ProcessingTimeline) *ProcessingTimelineUpdateOne {
	mutation := newProcessingTimelineMutation(c.config, OpUpdateOne, withProcessingTimeline(_m))
	return &ProcessingTimelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingTimelineClient) UpdateOneID(id uuid.UUID) *ProcessingTimelineUpdateOne {
	mutation := newProcessingTimelineMutation(c.config, OpUpdateOne, withProcessingTimelineID(id))
	return &ProcessingTimelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingTimeline.
func (c *ProcessingTimelineClient) Delete() *ProcessingTimelineDelete {
	mutation := newProcessingTimelineMutation(c.config, OpDelete)
	return &ProcessingTimelineDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingTimelineClient) DeleteOne(_m *ProcessingTimeline) *ProcessingTimelineDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingTimelineClient) DeleteOneID(id uuid.UUID) *ProcessingTimelineDeleteOne {
	builder := c.Delete().Where(processingtimeline.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingTimelineDeleteOne{builder}
}

// Query returns a query builder for ProcessingTimeline.
func (c *ProcessingTimelineClient) Query() *ProcessingTimelineQuery {
	return &ProcessingTimelineQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingTimeline},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingTimeline entity by its id.
func (c *ProcessingTimelineClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingTimeline, error) {
	return c.Query().Where(processingtimeline.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingTimelineClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingTimeline {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessingTimelineClient) Hooks() []Hook {
	return c.hooks.ProcessingTimeline
}

// Interceptors returns the client interceptors.
func (c *ProcessingTimelineClient) Interceptors() []Interceptor {
	return c.inters.ProcessingTimeline
}

func (c *ProcessingTimelineClient) mutate(ctx context.Context, m *ProcessingTimelineMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingTimelineCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingTimelineUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingTimelineUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingTimelineDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingTimeline mutation op: %q", m.Op())
	}
}

// PromptClient is a client for the Prompt schema.
type PromptClient struct {
	config
}

// NewPromptClient returns a client for the Prompt from the given config.
func NewPromptClient(c config) *PromptClient {
	return &PromptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prompt.Hooks(f(g(h())))`.
func (c *PromptClient) Use(hooks ...Hook) {
	c.hooks.Prompt = append(c.hooks.Prompt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prompt.Intercept(f(g(h())))`.
func (c *PromptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prompt = append(c.inters.Prompt, interceptors...)
}

// Create returns a builder for creating a Prompt entity.
func (c *PromptClient) Create() *PromptCreate {
	mutation := newPromptMutation(c.config, OpCreate)
	return &PromptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prompt entities.
func (c *PromptClient) CreateBulk(builders ...*PromptCreate) *PromptCreateBulk {
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromptClient) MapCreateBulk(slice any, setFunc func(*PromptCreate, int)) *PromptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromptCreateBulk{err: fmt.Errorf("calling to PromptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prompt.
func (c *PromptClient) Update() *PromptUpdate {
	mutation := newPromptMutation(c.config, OpUpdate)
	return &PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromptClient) UpdateOne(_m *Prompt) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPrompt(_m))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromptClient) UpdateOneID(id uuid.UUID) *PromptUpdateOne {
	mutation := newPromptMutation(c.config, OpUpdateOne, withPromptID(id))
	return &PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prompt.
func (c *PromptClient) Delete() *PromptDelete {
	mutation := newPromptMutation(c.config, OpDelete)
	return &PromptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromptClient) DeleteOne(_m *Prompt) *PromptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromptClient) DeleteOneID(id uuid.UUID) *PromptDeleteOne {
	builder := c.Delete().Where(prompt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromptDeleteOne{builder}
}

// Query returns a query builder for Prompt.
func (c *PromptClient) Query() *PromptQuery {
	return &PromptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrompt},
		inters: c.Interceptors(),
	}
}

// Get returns a Prompt entity by its id.
func (c *PromptClient) Get(ctx context.Context, id uuid.UUID) (*Prompt, error) {
	return c.Query().Where(prompt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromptClient) GetX(ctx context.Context, id uuid.UUID) *Prompt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PromptClient) Hooks() []Hook {
	return c.hooks.Prompt
}

// Interceptors returns the client interceptors.
func (c *PromptClient) Interceptors() []Interceptor {
	return c.inters.Prompt
}

func (c *PromptClient) mutate(ctx context.Context, m *PromptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Prompt mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DLQEntry, EnrichedEvent, Event, LLMConfig, ModelDecision, ProcessingTimeline,
		Prompt []ent.Hook
	}
	inters struct {
		DLQEntry, EnrichedEvent, Event, LLMConfig, ModelDecision, ProcessingTimeline,
		Prompt []ent.Interceptor
	}
)
