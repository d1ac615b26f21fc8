// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/marchenko/lexrec/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/marchenko/lexrec/ent/goal"
	"github.com/marchenko/lexrec/ent/goalword"
	"github.com/marchenko/lexrec/ent/learningevent"
	"github.com/marchenko/lexrec/ent/word"
	"github.com/marchenko/lexrec/ent/wordprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Goal is the client for interacting with the Goal builders.
	Goal *GoalClient
	// GoalWord is the client for interacting with the GoalWord builders.
	GoalWord *GoalWordClient
	// LearningEvent is the client for interacting with the LearningEvent builders.
	LearningEvent *LearningEventClient
	// Word is the client for interacting with the Word builders.
	Word *WordClient
	// WordProgress is the client for interacting with the WordProgress builders.
	WordProgress *WordProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Goal = NewGoalClient(c.config)
	c.GoalWord = NewGoalWordClient(c.config)
	c.LearningEvent = NewLearningEventClient(c.config)
	c.Word = NewWordClient(c.config)
	c.WordProgress = NewWordProgressClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		Goal:          NewGoalClient(cfg),
		GoalWord:      NewGoalWordClient(cfg),
		LearningEvent: NewLearningEventClient(cfg),
		Word:          NewWordClient(cfg),
		WordProgress:  NewWordProgressClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		Goal:          NewGoalClient(cfg),
		GoalWord:      NewGoalWordClient(cfg),
		LearningEvent: NewLearningEventClient(cfg),
		Word:          NewWordClient(cfg),
		WordProgress:  NewWordProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Goal.
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
	c.Goal.Use(hooks...)
	c.GoalWord.Use(hooks...)
	c.LearningEvent.Use(hooks...)
	c.Word.Use(hooks...)
	c.WordProgress.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Goal.Intercept(interceptors...)
	c.GoalWord.Intercept(interceptors...)
	c.LearningEvent.Intercept(interceptors...)
	c.Word.Intercept(interceptors...)
	c.WordProgress.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GoalMutation:
		return c.Goal.mutate(ctx, m)
	case *GoalWordMutation:
		return c.GoalWord.mutate(ctx, m)
	case *LearningEventMutation:
		return c.LearningEvent.mutate(ctx, m)
	case *WordMutation:
		return c.Word.mutate(ctx, m)
	case *WordProgressMutation:
		return c.WordProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GoalClient is a client for the Goal schema.
type GoalClient struct {
	config
}

// NewGoalClient returns a client for the Goal from the given config.
func NewGoalClient(c config) *GoalClient {
	return &GoalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `goal.Hooks(f(g(h())))`.
func (c *GoalClient) Use(hooks ...Hook) {
	c.hooks.Goal = append(c.hooks.Goal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `goal.Intercept(f(g(h())))`.
func (c *GoalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Goal = append(c.inters.Goal, interceptors...)
}

// Create returns a builder for creating a Goal entity.
func (c *GoalClient) Create() *GoalCreate {
	mutation := newGoalMutation(c.config, OpCreate)
	return &GoalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Goal entities.
func (c *GoalClient) CreateBulk(builders ...*GoalCreate) *GoalCreateBulk {
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GoalClient) MapCreateBulk(slice any, setFunc func(*GoalCreate, int)) *GoalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GoalCreateBulk{err: fmt.Errorf("calling to GoalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GoalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GoalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Goal.
func (c *GoalClient) Update() *GoalUpdate {
	mutation := newGoalMutation(c.config, OpUpdate)
	return &GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GoalClient) UpdateOne(_m *Goal) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoal(_m))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GoalClient) UpdateOneID(id int) *GoalUpdateOne {
	mutation := newGoalMutation(c.config, OpUpdateOne, withGoalID(id))
	return &GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Goal.
func (c *GoalClient) Delete() *GoalDelete {
	mutation := newGoalMutation(c.config, OpDelete)
	return &GoalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GoalClient) DeleteOne(_m *Goal) *GoalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GoalClient) DeleteOneID(id int) *GoalDeleteOne {
	builder := c.Delete().Where(goal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GoalDeleteOne{builder}
}

// Query returns a query builder for Goal.
func (c *GoalClient) Query() *GoalQuery {
	return &GoalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGoal},
		inters: c.Interceptors(),
	}
}

// Get returns a Goal entity by its id.
func (c *GoalClient) Get(ctx context.Context, id int) (*Goal, error) {
	return c.Query().Where(goal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GoalClient) GetX(ctx context.Context, id int) *Goal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GoalClient) Hooks() []Hook {
	return c.hooks.Goal
}

// Interceptors returns the client interceptors.
func (c *GoalClient) Interceptors() []Interceptor {
	return c.inters.Goal
}

func (c *GoalClient) mutate(ctx context.Context, m *GoalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GoalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GoalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GoalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GoalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Goal mutation op: %q", m.Op())
	}
}

// GoalWordClient is a client for the GoalWord schema.
type GoalWordClient struct {
	config
}

// NewGoalWordClient returns a client for the GoalWord from the given config.
func NewGoalWordClient(c config) *GoalWordClient {
	return &GoalWordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `goalword.Hooks(f(g(h())))`.
func (c *GoalWordClient) Use(hooks ...Hook) {
	c.hooks.GoalWord = append(c.hooks.GoalWord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `goalword.Intercept(f(g(h())))`.
func (c *GoalWordClient) Intercept(interceptors ...Interceptor) {
	c.inters.GoalWord = append(c.inters.GoalWord, interceptors...)
}

// Create returns a builder for creating a GoalWord entity.
func (c *GoalWordClient) Create() *GoalWordCreate {
	mutation := newGoalWordMutation(c.config, OpCreate)
	return &GoalWordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GoalWord entities.
func (c *GoalWordClient) CreateBulk(builders ...*GoalWordCreate) *GoalWordCreateBulk {
	return &GoalWordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GoalWordClient) MapCreateBulk(slice any, setFunc func(*GoalWordCreate, int)) *GoalWordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GoalWordCreateBulk{err: fmt.Errorf("calling to GoalWordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GoalWordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GoalWordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GoalWord.
func (c *GoalWordClient) Update() *GoalWordUpdate {
	mutation := newGoalWordMutation(c.config, OpUpdate)
	return &GoalWordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GoalWordClient) UpdateOne(_m *GoalWord) *GoalWordUpdateOne {
	mutation := newGoalWordMutation(c.config, OpUpdateOne, withGoalWord(_m))
	return &GoalWordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GoalWordClient) UpdateOneID(id int) *GoalWordUpdateOne {
	mutation := newGoalWordMutation(c.config, OpUpdateOne, withGoalWordID(id))
	return &GoalWordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GoalWord.
func (c *GoalWordClient) Delete() *GoalWordDelete {
	mutation := newGoalWordMutation(c.config, OpDelete)
	return &GoalWordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GoalWordClient) DeleteOne(_m *GoalWord) *GoalWordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GoalWordClient) DeleteOneID(id int) *GoalWordDeleteOne {
	builder := c.Delete().Where(goalword.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GoalWordDeleteOne{builder}
}

// Query returns a query builder for GoalWord.
func (c *GoalWordClient) Query() *GoalWordQuery {
	return &GoalWordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGoalWord},
		inters: c.Interceptors(),
	}
}

// Get returns a GoalWord entity by its id.
func (c *GoalWordClient) Get(ctx context.Context, id int) (*GoalWord, error) {
	return c.Query().Where(goalword.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GoalWordClient) GetX(ctx context.Context, id int) *GoalWord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GoalWordClient) Hooks() []Hook {
	return c.hooks.GoalWord
}

// Interceptors returns the client interceptors.
func (c *GoalWordClient) Interceptors() []Interceptor {
	return c.inters.GoalWord
}

func (c *GoalWordClient) mutate(ctx context.Context, m *GoalWordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GoalWordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GoalWordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GoalWordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GoalWordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GoalWord mutation op: %q", m.Op())
	}
}

// LearningEventClient is a client for the LearningEvent schema.
type LearningEventClient struct {
	config
}

// NewLearningEventClient returns a client for the LearningEvent from the given config.
func NewLearningEventClient(c config) *LearningEventClient {
	return &LearningEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningevent.Hooks(f(g(h())))`.
func (c *LearningEventClient) Use(hooks ...Hook) {
	c.hooks.LearningEvent = append(c.hooks.LearningEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningevent.Intercept(f(g(h())))`.
func (c *LearningEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningEvent = append(c.inters.LearningEvent, interceptors...)
}

// Create returns a builder for creating a LearningEvent entity.
func (c *LearningEventClient) Create() *LearningEventCreate {
	mutation := newLearningEventMutation(c.config, OpCreate)
	return &LearningEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningEvent entities.
func (c *LearningEventClient) CreateBulk(builders ...*LearningEventCreate) *LearningEventCreateBulk {
	return &LearningEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningEventClient) MapCreateBulk(slice any, setFunc func(*LearningEventCreate, int)) *LearningEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningEventCreateBulk{err: fmt.Errorf("calling to LearningEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningEvent.
func (c *LearningEventClient) Update() *LearningEventUpdate {
	mutation := newLearningEventMutation(c.config, OpUpdate)
	return &LearningEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningEventClient) UpdateOne(_m *LearningEvent) *LearningEventUpdateOne {
	mutation := newLearningEventMutation(c.config, OpUpdateOne, withLearningEvent(_m))
	return &LearningEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningEventClient) UpdateOneID(id int) *LearningEventUpdateOne {
	mutation := newLearningEventMutation(c.config, OpUpdateOne, withLearningEventID(id))
	return &LearningEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningEvent.
func (c *LearningEventClient) Delete() *LearningEventDelete {
	mutation := newLearningEventMutation(c.config, OpDelete)
	return &LearningEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningEventClient) DeleteOne(_m *LearningEvent) *LearningEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningEventClient) DeleteOneID(id int) *LearningEventDeleteOne {
	builder := c.Delete().Where(learningevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningEventDeleteOne{builder}
}

// Query returns a query builder for LearningEvent.
func (c *LearningEventClient) Query() *LearningEventQuery {
	return &LearningEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningEvent entity by its id.
func (c *LearningEventClient) Get(ctx context.Context, id int) (*LearningEvent, error) {
	return c.Query().Where(learningevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningEventClient) GetX(ctx context.Context, id int) *LearningEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningEventClient) Hooks() []Hook {
	return c.hooks.LearningEvent
}

// Interceptors returns the client interceptors.
func (c *LearningEventClient) Interceptors() []Interceptor {
	return c.inters.LearningEvent
}

func (c *LearningEventClient) mutate(ctx context.Context, m *LearningEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningEvent mutation op: %q", m.Op())
	}
}

// WordClient is a client for the Word schema.
type WordClient struct {
	config
}

// NewWordClient returns a client for the Word from the given config.
func NewWordClient(c config) *WordClient {
	return &WordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `word.Hooks(f(g(h())))`.
func (c *WordClient) Use(hooks ...Hook) {
	c.hooks.Word = append(c.hooks.Word, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `word.Intercept(f(g(h())))`.
func (c *WordClient) Intercept(interceptors ...Interceptor) {
	c.inters.Word = append(c.inters.Word, interceptors...)
}

// Create returns a builder for creating a Word entity.
func (c *WordClient) Create() *WordCreate {
	mutation := newWordMutation(c.config, OpCreate)
	return &WordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Word entities.
func (c *WordClient) CreateBulk(builders ...*WordCreate) *WordCreateBulk {
	return &WordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WordClient) MapCreateBulk(slice any, setFunc func(*WordCreate, int)) *WordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WordCreateBulk{err: fmt.Errorf("calling to WordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Word.
func (c *WordClient) Update() *WordUpdate {
	mutation := newWordMutation(c.config, OpUpdate)
	return &WordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WordClient) UpdateOne(_m *Word) *WordUpdateOne {
	mutation := newWordMutation(c.config, OpUpdateOne, withWord(_m))
	return &WordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WordClient) UpdateOneID(id int) *WordUpdateOne {
	mutation := newWordMutation(c.config, OpUpdateOne, withWordID(id))
	return &WordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Word.
func (c *WordClient) Delete() *WordDelete {
	mutation := newWordMutation(c.config, OpDelete)
	return &WordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WordClient) DeleteOne(_m *Word) *WordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WordClient) DeleteOneID(id int) *WordDeleteOne {
	builder := c.Delete().Where(word.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WordDeleteOne{builder}
}

// Query returns a query builder for Word.
func (c *WordClient) Query() *WordQuery {
	return &WordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWord},
		inters: c.Interceptors(),
	}
}

// Get returns a Word entity by its id.
func (c *WordClient) Get(ctx context.Context, id int) (*Word, error) {
	return c.Query().Where(word.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WordClient) GetX(ctx context.Context, id int) *Word {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WordClient) Hooks() []Hook {
	return c.hooks.Word
}

// Interceptors returns the client interceptors.
func (c *WordClient) Interceptors() []Interceptor {
	return c.inters.Word
}

func (c *WordClient) mutate(ctx context.Context, m *WordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Word mutation op: %q", m.Op())
	}
}

// WordProgressClient is a client for the WordProgress schema.
type WordProgressClient struct {
	config
}

// NewWordProgressClient returns a client for the WordProgress from the given config.
func NewWordProgressClient(c config) *WordProgressClient {
	return &WordProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wordprogress.Hooks(f(g(h())))`.
func (c *WordProgressClient) Use(hooks ...Hook) {
	c.hooks.WordProgress = append(c.hooks.WordProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wordprogress.Intercept(f(g(h())))`.
func (c *WordProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.WordProgress = append(c.inters.WordProgress, interceptors...)
}

// Create returns a builder for creating a WordProgress entity.
func (c *WordProgressClient) Create() *WordProgressCreate {
	mutation := newWordProgressMutation(c.config, OpCreate)
	return &WordProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WordProgress entities.
func (c *WordProgressClient) CreateBulk(builders ...*WordProgressCreate) *WordProgressCreateBulk {
	return &WordProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WordProgressClient) MapCreateBulk(slice any, setFunc func(*WordProgressCreate, int)) *WordProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WordProgressCreateBulk{err: fmt.Errorf("calling to WordProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WordProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WordProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WordProgress.
func (c *WordProgressClient) Update() *WordProgressUpdate {
	mutation := newWordProgressMutation(c.config, OpUpdate)
	return &WordProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WordProgressClient) UpdateOne(_m *WordProgress) *WordProgressUpdateOne {
	mutation := newWordProgressMutation(c.config, OpUpdateOne, withWordProgress(_m))
	return &WordProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WordProgressClient) UpdateOneID(id int) *WordProgressUpdateOne {
	mutation := newWordProgressMutation(c.config, OpUpdateOne, withWordProgressID(id))
	return &WordProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WordProgress.
func (c *WordProgressClient) Delete() *WordProgressDelete {
	mutation := newWordProgressMutation(c.config, OpDelete)
	return &WordProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WordProgressClient) DeleteOne(_m *WordProgress) *WordProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WordProgressClient) DeleteOneID(id int) *WordProgressDeleteOne {
	builder := c.Delete().Where(wordprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WordProgressDeleteOne{builder}
}

// Query returns a query builder for WordProgress.
func (c *WordProgressClient) Query() *WordProgressQuery {
	return &WordProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWordProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a WordProgress entity by its id.
func (c *WordProgressClient) Get(ctx context.Context, id int) (*WordProgress, error) {
	return c.Query().Where(wordprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WordProgressClient) GetX(ctx context.Context, id int) *WordProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WordProgressClient) Hooks() []Hook {
	return c.hooks.WordProgress
}

// Interceptors returns the client interceptors.
func (c *WordProgressClient) Interceptors() []Interceptor {
	return c.inters.WordProgress
}

func (c *WordProgressClient) mutate(ctx context.Context, m *WordProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WordProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WordProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WordProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WordProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WordProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Goal, GoalWord, LearningEvent, Word, WordProgress []ent.Hook
	}
	inters struct {
		Goal, GoalWord, LearningEvent, Word, WordProgress []ent.Interceptor
	}
)
