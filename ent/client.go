// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/starpathlabs/starpath/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/starpathlabs/starpath/ent/completionevent"
	"github.com/starpathlabs/starpath/ent/purchaseevent"
	"github.com/starpathlabs/starpath/ent/rewardevent"
	"github.com/starpathlabs/starpath/ent/snapshot"
	"github.com/starpathlabs/starpath/ent/streakevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CompletionEvent is the client for interacting with the CompletionEvent builders.
	CompletionEvent *CompletionEventClient
	// PurchaseEvent is the client for interacting with the PurchaseEvent builders.
	PurchaseEvent *PurchaseEventClient
	// RewardEvent is the client for interacting with the RewardEvent builders.
	RewardEvent *RewardEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// StreakEvent is the client for interacting with the StreakEvent builders.
	StreakEvent *StreakEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CompletionEvent = NewCompletionEventClient(c.config)
	c.PurchaseEvent = NewPurchaseEventClient(c.config)
	c.RewardEvent = NewRewardEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.StreakEvent = NewStreakEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		CompletionEvent: NewCompletionEventClient(cfg),
		PurchaseEvent:   NewPurchaseEventClient(cfg),
		RewardEvent:     NewRewardEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StreakEvent:     NewStreakEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		CompletionEvent: NewCompletionEventClient(cfg),
		PurchaseEvent:   NewPurchaseEventClient(cfg),
		RewardEvent:     NewRewardEventClient(cfg),
		Snapshot:        NewSnapshotClient(cfg),
		StreakEvent:     NewStreakEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CompletionEvent.
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
	c.CompletionEvent.Use(hooks...)
	c.PurchaseEvent.Use(hooks...)
	c.RewardEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
	c.StreakEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CompletionEvent.Intercept(interceptors...)
	c.PurchaseEvent.Intercept(interceptors...)
	c.RewardEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
	c.StreakEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompletionEventMutation:
		return c.CompletionEvent.mutate(ctx, m)
	case *PurchaseEventMutation:
		return c.PurchaseEvent.mutate(ctx, m)
	case *RewardEventMutation:
		return c.RewardEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *StreakEventMutation:
		return c.StreakEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompletionEventClient is a client for the CompletionEvent schema.
type CompletionEventClient struct {
	config
}

// NewCompletionEventClient returns a client for the CompletionEvent from the given config.
func NewCompletionEventClient(c config) *CompletionEventClient {
	return &CompletionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `completionevent.Hooks(f(g(h())))`.
func (c *CompletionEventClient) Use(hooks ...Hook) {
	c.hooks.CompletionEvent = append(c.hooks.CompletionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `completionevent.Intercept(f(g(h())))`.
func (c *CompletionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CompletionEvent = append(c.inters.CompletionEvent, interceptors...)
}

// Create returns a builder for creating a CompletionEvent entity.
func (c *CompletionEventClient) Create() *CompletionEventCreate {
	mutation := newCompletionEventMutation(c.config, OpCreate)
	return &CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CompletionEvent entities.
func (c *CompletionEventClient) CreateBulk(builders ...*CompletionEventCreate) *CompletionEventCreateBulk {
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompletionEventClient) MapCreateBulk(slice any, setFunc func(*CompletionEventCreate, int)) *CompletionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompletionEventCreateBulk{err: fmt.Errorf("calling to CompletionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompletionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompletionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CompletionEvent.
func (c *CompletionEventClient) Update() *CompletionEventUpdate {
	mutation := newCompletionEventMutation(c.config, OpUpdate)
	return &CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompletionEventClient) UpdateOne(_m *CompletionEvent) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEvent(_m))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompletionEventClient) UpdateOneID(id int) *CompletionEventUpdateOne {
	mutation := newCompletionEventMutation(c.config, OpUpdateOne, withCompletionEventID(id))
	return &CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CompletionEvent.
func (c *CompletionEventClient) Delete() *CompletionEventDelete {
	mutation := newCompletionEventMutation(c.config, OpDelete)
	return &CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompletionEventClient) DeleteOne(_m *CompletionEvent) *CompletionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompletionEventClient) DeleteOneID(id int) *CompletionEventDeleteOne {
	builder := c.Delete().Where(completionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompletionEventDeleteOne{builder}
}

// Query returns a query builder for CompletionEvent.
func (c *CompletionEventClient) Query() *CompletionEventQuery {
	return &CompletionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompletionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CompletionEvent entity by its id.
func (c *CompletionEventClient) Get(ctx context.Context, id int) (*CompletionEvent, error) {
	return c.Query().Where(completionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompletionEventClient) GetX(ctx context.Context, id int) *CompletionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CompletionEventClient) Hooks() []Hook {
	return c.hooks.CompletionEvent
}

// Interceptors returns the client interceptors.
func (c *CompletionEventClient) Interceptors() []Interceptor {
	return c.inters.CompletionEvent
}

func (c *CompletionEventClient) mutate(ctx context.Context, m *CompletionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompletionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompletionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompletionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompletionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CompletionEvent mutation op: %q", m.Op())
	}
}

// PurchaseEventClient is a client for the PurchaseEvent schema.
type PurchaseEventClient struct {
	config
}

// NewPurchaseEventClient returns a client for the PurchaseEvent from the given config.
func NewPurchaseEventClient(c config) *PurchaseEventClient {
	return &PurchaseEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `purchaseevent.Hooks(f(g(h())))`.
func (c *PurchaseEventClient) Use(hooks ...Hook) {
	c.hooks.PurchaseEvent = append(c.hooks.PurchaseEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `purchaseevent.Intercept(f(g(h())))`.
func (c *PurchaseEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PurchaseEvent = append(c.inters.PurchaseEvent, interceptors...)
}

// Create returns a builder for creating a PurchaseEvent entity.
func (c *PurchaseEventClient) Create() *PurchaseEventCreate {
	mutation := newPurchaseEventMutation(c.config, OpCreate)
	return &PurchaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PurchaseEvent entities.
func (c *PurchaseEventClient) CreateBulk(builders ...*PurchaseEventCreate) *PurchaseEventCreateBulk {
	return &PurchaseEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PurchaseEventClient) MapCreateBulk(slice any, setFunc func(*PurchaseEventCreate, int)) *PurchaseEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PurchaseEventCreateBulk{err: fmt.Errorf("calling to PurchaseEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PurchaseEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PurchaseEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PurchaseEvent.
func (c *PurchaseEventClient) Update() *PurchaseEventUpdate {
	mutation := newPurchaseEventMutation(c.config, OpUpdate)
	return &PurchaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PurchaseEventClient) UpdateOne(_m *PurchaseEvent) *PurchaseEventUpdateOne {
	mutation := newPurchaseEventMutation(c.config, OpUpdateOne, withPurchaseEvent(_m))
	return &PurchaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PurchaseEventClient) UpdateOneID(id int) *PurchaseEventUpdateOne {
	mutation := newPurchaseEventMutation(c.config, OpUpdateOne, withPurchaseEventID(id))
	return &PurchaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PurchaseEvent.
func (c *PurchaseEventClient) Delete() *PurchaseEventDelete {
	mutation := newPurchaseEventMutation(c.config, OpDelete)
	return &PurchaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PurchaseEventClient) DeleteOne(_m *PurchaseEvent) *PurchaseEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PurchaseEventClient) DeleteOneID(id int) *PurchaseEventDeleteOne {
	builder := c.Delete().Where(purchaseevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PurchaseEventDeleteOne{builder}
}

// Query returns a query builder for PurchaseEvent.
func (c *PurchaseEventClient) Query() *PurchaseEventQuery {
	return &PurchaseEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePurchaseEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PurchaseEvent entity by its id.
func (c *PurchaseEventClient) Get(ctx context.Context, id int) (*PurchaseEvent, error) {
	return c.Query().Where(purchaseevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PurchaseEventClient) GetX(ctx context.Context, id int) *PurchaseEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PurchaseEventClient) Hooks() []Hook {
	return c.hooks.PurchaseEvent
}

// Interceptors returns the client interceptors.
func (c *PurchaseEventClient) Interceptors() []Interceptor {
	return c.inters.PurchaseEvent
}

func (c *PurchaseEventClient) mutate(ctx context.Context, m *PurchaseEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PurchaseEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PurchaseEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PurchaseEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PurchaseEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PurchaseEvent mutation op: %q", m.Op())
	}
}

// RewardEventClient is a client for the RewardEvent schema.
type RewardEventClient struct {
	config
}

// NewRewardEventClient returns a client for the RewardEvent from the given config.
func NewRewardEventClient(c config) *RewardEventClient {
	return &RewardEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rewardevent.Hooks(f(g(h())))`.
func (c *RewardEventClient) Use(hooks ...Hook) {
	c.hooks.RewardEvent = append(c.hooks.RewardEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rewardevent.Intercept(f(g(h())))`.
func (c *RewardEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RewardEvent = append(c.inters.RewardEvent, interceptors...)
}

// Create returns a builder for creating a RewardEvent entity.
func (c *RewardEventClient) Create() *RewardEventCreate {
	mutation := newRewardEventMutation(c.config, OpCreate)
	return &RewardEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RewardEvent entities.
func (c *RewardEventClient) CreateBulk(builders ...*RewardEventCreate) *RewardEventCreateBulk {
	return &RewardEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RewardEventClient) MapCreateBulk(slice any, setFunc func(*RewardEventCreate, int)) *RewardEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RewardEventCreateBulk{err: fmt.Errorf("calling to RewardEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RewardEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RewardEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RewardEvent.
func (c *RewardEventClient) Update() *RewardEventUpdate {
	mutation := newRewardEventMutation(c.config, OpUpdate)
	return &RewardEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RewardEventClient) UpdateOne(_m *RewardEvent) *RewardEventUpdateOne {
	mutation := newRewardEventMutation(c.config, OpUpdateOne, withRewardEvent(_m))
	return &RewardEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RewardEventClient) UpdateOneID(id int) *RewardEventUpdateOne {
	mutation := newRewardEventMutation(c.config, OpUpdateOne, withRewardEventID(id))
	return &RewardEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RewardEvent.
func (c *RewardEventClient) Delete() *RewardEventDelete {
	mutation := newRewardEventMutation(c.config, OpDelete)
	return &RewardEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RewardEventClient) DeleteOne(_m *RewardEvent) *RewardEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RewardEventClient) DeleteOneID(id int) *RewardEventDeleteOne {
	builder := c.Delete().Where(rewardevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RewardEventDeleteOne{builder}
}

// Query returns a query builder for RewardEvent.
func (c *RewardEventClient) Query() *RewardEventQuery {
	return &RewardEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRewardEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RewardEvent entity by its id.
func (c *RewardEventClient) Get(ctx context.Context, id int) (*RewardEvent, error) {
	return c.Query().Where(rewardevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RewardEventClient) GetX(ctx context.Context, id int) *RewardEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RewardEventClient) Hooks() []Hook {
	return c.hooks.RewardEvent
}

// Interceptors returns the client interceptors.
func (c *RewardEventClient) Interceptors() []Interceptor {
	return c.inters.RewardEvent
}

func (c *RewardEventClient) mutate(ctx context.Context, m *RewardEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RewardEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RewardEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RewardEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RewardEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RewardEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// StreakEventClient is a client for the StreakEvent schema.
type StreakEventClient struct {
	config
}

// NewStreakEventClient returns a client for the StreakEvent from the given config.
func NewStreakEventClient(c config) *StreakEventClient {
	return &StreakEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streakevent.Hooks(f(g(h())))`.
func (c *StreakEventClient) Use(hooks ...Hook) {
	c.hooks.StreakEvent = append(c.hooks.StreakEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streakevent.Intercept(f(g(h())))`.
func (c *StreakEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StreakEvent = append(c.inters.StreakEvent, interceptors...)
}

// Create returns a builder for creating a StreakEvent entity.
func (c *StreakEventClient) Create() *StreakEventCreate {
	mutation := newStreakEventMutation(c.config, OpCreate)
	return &StreakEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StreakEvent entities.
func (c *StreakEventClient) CreateBulk(builders ...*StreakEventCreate) *StreakEventCreateBulk {
	return &StreakEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreakEventClient) MapCreateBulk(slice any, setFunc func(*StreakEventCreate, int)) *StreakEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreakEventCreateBulk{err: fmt.Errorf("calling to StreakEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreakEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreakEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StreakEvent.
func (c *StreakEventClient) Update() *StreakEventUpdate {
	mutation := newStreakEventMutation(c.config, OpUpdate)
	return &StreakEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreakEventClient) UpdateOne(_m *StreakEvent) *StreakEventUpdateOne {
	mutation := newStreakEventMutation(c.config, OpUpdateOne, withStreakEvent(_m))
	return &StreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreakEventClient) UpdateOneID(id int) *StreakEventUpdateOne {
	mutation := newStreakEventMutation(c.config, OpUpdateOne, withStreakEventID(id))
	return &StreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StreakEvent.
func (c *StreakEventClient) Delete() *StreakEventDelete {
	mutation := newStreakEventMutation(c.config, OpDelete)
	return &StreakEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreakEventClient) DeleteOne(_m *StreakEvent) *StreakEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreakEventClient) DeleteOneID(id int) *StreakEventDeleteOne {
	builder := c.Delete().Where(streakevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreakEventDeleteOne{builder}
}

// Query returns a query builder for StreakEvent.
func (c *StreakEventClient) Query() *StreakEventQuery {
	return &StreakEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreakEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StreakEvent entity by its id.
func (c *StreakEventClient) Get(ctx context.Context, id int) (*StreakEvent, error) {
	return c.Query().Where(streakevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreakEventClient) GetX(ctx context.Context, id int) *StreakEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreakEventClient) Hooks() []Hook {
	return c.hooks.StreakEvent
}

// Interceptors returns the client interceptors.
func (c *StreakEventClient) Interceptors() []Interceptor {
	return c.inters.StreakEvent
}

func (c *StreakEventClient) mutate(ctx context.Context, m *StreakEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreakEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreakEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreakEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StreakEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CompletionEvent, PurchaseEvent, RewardEvent, Snapshot, StreakEvent []ent.Hook
	}
	inters struct {
		CompletionEvent, PurchaseEvent, RewardEvent, Snapshot,
		StreakEvent []ent.Interceptor
	}
)
