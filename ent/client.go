// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/dyadlab/fabula/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/ent/hybridsession"
	"github.com/dyadlab/fabula/ent/job"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/survey"
	"github.com/dyadlab/fabula/ent/surveyresponse"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentContext is the client for interacting with the AgentContext builders.
	AgentContext *AgentContextClient
	// Batch is the client for interacting with the Batch builders.
	Batch *BatchClient
	// Comment is the client for interacting with the Comment builders.
	Comment *CommentClient
	// Condition is the client for interacting with the Condition builders.
	Condition *ConditionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// HybridSession is the client for interacting with the HybridSession builders.
	HybridSession *HybridSessionClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// Participant is the client for interacting with the Participant builders.
	Participant *ParticipantClient
	// StoryArtifact is the client for interacting with the StoryArtifact builders.
	StoryArtifact *StoryArtifactClient
	// Study is the client for interacting with the Study builders.
	Study *StudyClient
	// Survey is the client for interacting with the Survey builders.
	Survey *SurveyClient
	// SurveyResponse is the client for interacting with the SurveyResponse builders.
	SurveyResponse *SurveyResponseClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentContext = NewAgentContextClient(c.config)
	c.Batch = NewBatchClient(c.config)
	c.Comment = NewCommentClient(c.config)
	c.Condition = NewConditionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.HybridSession = NewHybridSessionClient(c.config)
	c.Job = NewJobClient(c.config)
	c.Participant = NewParticipantClient(c.config)
	c.StoryArtifact = NewStoryArtifactClient(c.config)
	c.Study = NewStudyClient(c.config)
	c.Survey = NewSurveyClient(c.config)
	c.SurveyResponse = NewSurveyResponseClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		AgentContext:   NewAgentContextClient(cfg),
		Batch:          NewBatchClient(cfg),
		Comment:        NewCommentClient(cfg),
		Condition:      NewConditionClient(cfg),
		Event:          NewEventClient(cfg),
		HybridSession:  NewHybridSessionClient(cfg),
		Job:            NewJobClient(cfg),
		Participant:    NewParticipantClient(cfg),
		StoryArtifact:  NewStoryArtifactClient(cfg),
		Study:          NewStudyClient(cfg),
		Survey:         NewSurveyClient(cfg),
		SurveyResponse: NewSurveyResponseClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		AgentContext:   NewAgentContextClient(cfg),
		Batch:          NewBatchClient(cfg),
		Comment:        NewCommentClient(cfg),
		Condition:      NewConditionClient(cfg),
		Event:          NewEventClient(cfg),
		HybridSession:  NewHybridSessionClient(cfg),
		Job:            NewJobClient(cfg),
		Participant:    NewParticipantClient(cfg),
		StoryArtifact:  NewStoryArtifactClient(cfg),
		Study:          NewStudyClient(cfg),
		Survey:         NewSurveyClient(cfg),
		SurveyResponse: NewSurveyResponseClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentContext.
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
		c.AgentContext, c.Batch, c.Comment, c.Condition, c.Event, c.HybridSession,
		c.Job, c.Participant, c.StoryArtifact, c.Study, c.Survey, c.SurveyResponse,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentContext, c.Batch, c.Comment, c.Condition, c.Event, c.HybridSession,
		c.Job, c.Participant, c.StoryArtifact, c.Study, c.Survey, c.SurveyResponse,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentContextMutation:
		return c.AgentContext.mutate(ctx, m)
	case *BatchMutation:
		return c.Batch.mutate(ctx, m)
	case *CommentMutation:
		return c.Comment.mutate(ctx, m)
	case *ConditionMutation:
		return c.Condition.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *HybridSessionMutation:
		return c.HybridSession.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *ParticipantMutation:
		return c.Participant.mutate(ctx, m)
	case *StoryArtifactMutation:
		return c.StoryArtifact.mutate(ctx, m)
	case *StudyMutation:
		return c.Study.mutate(ctx, m)
	case *SurveyMutation:
		return c.Survey.mutate(ctx, m)
	case *SurveyResponseMutation:
		return c.SurveyResponse.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentContextClient is a client for the AgentContext schema.
type AgentContextClient struct {
	config
}

// NewAgentContextClient returns a client for the AgentContext from the given config.
func NewAgentContextClient(c config) *AgentContextClient {
	return &AgentContextClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentcontext.Hooks(f(g(h())))`.
func (c *AgentContextClient) Use(hooks ...Hook) {
	c.hooks.AgentContext = append(c.hooks.AgentContext, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentcontext.Intercept(f(g(h())))`.
func (c *AgentContextClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentContext = append(c.inters.AgentContext, interceptors...)
}

// Create returns a builder for creating a AgentContext entity.
func (c *AgentContextClient) Create() *AgentContextCreate {
	mutation := newAgentContextMutation(c.config, OpCreate)
	return &AgentContextCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentContext entities.
func (c *AgentContextClient) CreateBulk(builders ...*AgentContextCreate) *AgentContextCreateBulk {
	return &AgentContextCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentContextClient) MapCreateBulk(slice any, setFunc func(*AgentContextCreate, int)) *AgentContextCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentContextCreateBulk{err: fmt.Errorf("calling to AgentContextClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentContextCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentContextCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentContext.
func (c *AgentContextClient) Update() *AgentContextUpdate {
	mutation := newAgentContextMutation(c.config, OpUpdate)
	return &AgentContextUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentContextClient) UpdateOne(_m *AgentContext) *AgentContextUpdateOne {
	mutation := newAgentContextMutation(c.config, OpUpdateOne, withAgentContext(_m))
	return &AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentContextClient) UpdateOneID(id string) *AgentContextUpdateOne {
	mutation := newAgentContextMutation(c.config, OpUpdateOne, withAgentContextID(id))
	return &AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentContext.
func (c *AgentContextClient) Delete() *AgentContextDelete {
	mutation := newAgentContextMutation(c.config, OpDelete)
	return &AgentContextDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentContextClient) DeleteOne(_m *AgentContext) *AgentContextDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentContextClient) DeleteOneID(id string) *AgentContextDeleteOne {
	builder := c.Delete().Where(agentcontext.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentContextDeleteOne{builder}
}

// Query returns a query builder for AgentContext.
func (c *AgentContextClient) Query() *AgentContextQuery {
	return &AgentContextQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentContext},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentContext entity by its id.
func (c *AgentContextClient) Get(ctx context.Context, id string) (*AgentContext, error) {
	return c.Query().Where(agentcontext.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentContextClient) GetX(ctx context.Context, id string) *AgentContext {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipant queries the participant edge of a AgentContext.
func (c *AgentContextClient) QueryParticipant(_m *AgentContext) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentcontext.Table, agentcontext.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, agentcontext.ParticipantTable, agentcontext.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentContextClient) Hooks() []Hook {
	return c.hooks.AgentContext
}

// Interceptors returns the client interceptors.
func (c *AgentContextClient) Interceptors() []Interceptor {
	return c.inters.AgentContext
}

func (c *AgentContextClient) mutate(ctx context.Context, m *AgentContextMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentContextCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentContextUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentContextUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentContextDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentContext mutation op: %q", m.Op())
	}
}

// BatchClient is a client for the Batch schema.
type BatchClient struct {
	config
}

// NewBatchClient returns a client for the Batch from the given config.
func NewBatchClient(c config) *BatchClient {
	return &BatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batch.Hooks(f(g(h())))`.
func (c *BatchClient) Use(hooks ...Hook) {
	c.hooks.Batch = append(c.hooks.Batch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batch.Intercept(f(g(h())))`.
func (c *BatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Batch = append(c.inters.Batch, interceptors...)
}

// Create returns a builder for creating a Batch entity.
func (c *BatchClient) Create() *BatchCreate {
	mutation := newBatchMutation(c.config, OpCreate)
	return &BatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Batch entities.
func (c *BatchClient) CreateBulk(builders ...*BatchCreate) *BatchCreateBulk {
	return &BatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchClient) MapCreateBulk(slice any, setFunc func(*BatchCreate, int)) *BatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchCreateBulk{err: fmt.Errorf("calling to BatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Batch.
func (c *BatchClient) Update() *BatchUpdate {
	mutation := newBatchMutation(c.config, OpUpdate)
	return &BatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchClient) UpdateOne(_m *Batch) *BatchUpdateOne {
	mutation := newBatchMutation(c.config, OpUpdateOne, withBatch(_m))
	return &BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchClient) UpdateOneID(id string) *BatchUpdateOne {
	mutation := newBatchMutation(c.config, OpUpdateOne, withBatchID(id))
	return &BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Batch.
func (c *BatchClient) Delete() *BatchDelete {
	mutation := newBatchMutation(c.config, OpDelete)
	return &BatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchClient) DeleteOne(_m *Batch) *BatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchClient) DeleteOneID(id string) *BatchDeleteOne {
	builder := c.Delete().Where(batch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchDeleteOne{builder}
}

// Query returns a query builder for Batch.
func (c *BatchClient) Query() *BatchQuery {
	return &BatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Batch entity by its id.
func (c *BatchClient) Get(ctx context.Context, id string) (*Batch, error) {
	return c.Query().Where(batch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchClient) GetX(ctx context.Context, id string) *Batch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStudy queries the study edge of a Batch.
func (c *BatchClient) QueryStudy(_m *Batch) *StudyQuery {
	query := (&StudyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batch.Table, batch.FieldID, id),
			sqlgraph.To(study.Table, study.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, batch.StudyTable, batch.StudyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipants queries the participants edge of a Batch.
func (c *BatchClient) QueryParticipants(_m *Batch) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batch.Table, batch.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, batch.ParticipantsTable, batch.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchClient) Hooks() []Hook {
	return c.hooks.Batch
}

// Interceptors returns the client interceptors.
func (c *BatchClient) Interceptors() []Interceptor {
	return c.inters.Batch
}

func (c *BatchClient) mutate(ctx context.Context, m *BatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Batch mutation op: %q", m.Op())
	}
}

// CommentClient is a client for the Comment schema.
type CommentClient struct {
	config
}

// NewCommentClient returns a client for the Comment from the given config.
func NewCommentClient(c config) *CommentClient {
	return &CommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `comment.Hooks(f(g(h())))`.
func (c *CommentClient) Use(hooks ...Hook) {
	c.hooks.Comment = append(c.hooks.Comment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `comment.Intercept(f(g(h())))`.
func (c *CommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Comment = append(c.inters.Comment, interceptors...)
}

// Create returns a builder for creating a Comment entity.
func (c *CommentClient) Create() *CommentCreate {
	mutation := newCommentMutation(c.config, OpCreate)
	return &CommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Comment entities.
func (c *CommentClient) CreateBulk(builders ...*CommentCreate) *CommentCreateBulk {
	return &CommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CommentClient) MapCreateBulk(slice any, setFunc func(*CommentCreate, int)) *CommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CommentCreateBulk{err: fmt.Errorf("calling to CommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Comment.
func (c *CommentClient) Update() *CommentUpdate {
	mutation := newCommentMutation(c.config, OpUpdate)
	return &CommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CommentClient) UpdateOne(_m *Comment) *CommentUpdateOne {
	mutation := newCommentMutation(c.config, OpUpdateOne, withComment(_m))
	return &CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CommentClient) UpdateOneID(id string) *CommentUpdateOne {
	mutation := newCommentMutation(c.config, OpUpdateOne, withCommentID(id))
	return &CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Comment.
func (c *CommentClient) Delete() *CommentDelete {
	mutation := newCommentMutation(c.config, OpDelete)
	return &CommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CommentClient) DeleteOne(_m *Comment) *CommentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CommentClient) DeleteOneID(id string) *CommentDeleteOne {
	builder := c.Delete().Where(comment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CommentDeleteOne{builder}
}

// Query returns a query builder for Comment.
func (c *CommentClient) Query() *CommentQuery {
	return &CommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComment},
		inters: c.Interceptors(),
	}
}

// Get returns a Comment entity by its id.
func (c *CommentClient) Get(ctx context.Context, id string) (*Comment, error) {
	return c.Query().Where(comment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CommentClient) GetX(ctx context.Context, id string) *Comment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuthor queries the author edge of a Comment.
func (c *CommentClient) QueryAuthor(_m *Comment) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(comment.Table, comment.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, comment.AuthorTable, comment.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTarget queries the target edge of a Comment.
func (c *CommentClient) QueryTarget(_m *Comment) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(comment.Table, comment.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, comment.TargetTable, comment.TargetColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CommentClient) Hooks() []Hook {
	return c.hooks.Comment
}

// Interceptors returns the client interceptors.
func (c *CommentClient) Interceptors() []Interceptor {
	return c.inters.Comment
}

func (c *CommentClient) mutate(ctx context.Context, m *CommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Comment mutation op: %q", m.Op())
	}
}

// ConditionClient is a client for the Condition schema.
type ConditionClient struct {
	config
}

// NewConditionClient returns a client for the Condition from the given config.
func NewConditionClient(c config) *ConditionClient {
	return &ConditionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `condition.Hooks(f(g(h())))`.
func (c *ConditionClient) Use(hooks ...Hook) {
	c.hooks.Condition = append(c.hooks.Condition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `condition.Intercept(f(g(h())))`.
func (c *ConditionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Condition = append(c.inters.Condition, interceptors...)
}

// Create returns a builder for creating a Condition entity.
func (c *ConditionClient) Create() *ConditionCreate {
	mutation := newConditionMutation(c.config, OpCreate)
	return &ConditionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Condition entities.
func (c *ConditionClient) CreateBulk(builders ...*ConditionCreate) *ConditionCreateBulk {
	return &ConditionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConditionClient) MapCreateBulk(slice any, setFunc func(*ConditionCreate, int)) *ConditionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConditionCreateBulk{err: fmt.Errorf("calling to ConditionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConditionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConditionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Condition.
func (c *ConditionClient) Update() *ConditionUpdate {
	mutation := newConditionMutation(c.config, OpUpdate)
	return &ConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConditionClient) UpdateOne(_m *Condition) *ConditionUpdateOne {
	mutation := newConditionMutation(c.config, OpUpdateOne, withCondition(_m))
	return &ConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConditionClient) UpdateOneID(id string) *ConditionUpdateOne {
	mutation := newConditionMutation(c.config, OpUpdateOne, withConditionID(id))
	return &ConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Condition.
func (c *ConditionClient) Delete() *ConditionDelete {
	mutation := newConditionMutation(c.config, OpDelete)
	return &ConditionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConditionClient) DeleteOne(_m *Condition) *ConditionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConditionClient) DeleteOneID(id string) *ConditionDeleteOne {
	builder := c.Delete().Where(condition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConditionDeleteOne{builder}
}

// Query returns a query builder for Condition.
func (c *ConditionClient) Query() *ConditionQuery {
	return &ConditionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCondition},
		inters: c.Interceptors(),
	}
}

// Get returns a Condition entity by its id.
func (c *ConditionClient) Get(ctx context.Context, id string) (*Condition, error) {
	return c.Query().Where(condition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConditionClient) GetX(ctx context.Context, id string) *Condition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStudy queries the study edge of a Condition.
func (c *ConditionClient) QueryStudy(_m *Condition) *StudyQuery {
	query := (&StudyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(condition.Table, condition.FieldID, id),
			sqlgraph.To(study.Table, study.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, condition.StudyTable, condition.StudyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConditionClient) Hooks() []Hook {
	return c.hooks.Condition
}

// Interceptors returns the client interceptors.
func (c *ConditionClient) Interceptors() []Interceptor {
	return c.inters.Condition
}

func (c *ConditionClient) mutate(ctx context.Context, m *ConditionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConditionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConditionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Condition mutation op: %q", m.Op())
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
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
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
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
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
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipant queries the participant edge of a Event.
func (c *EventClient) QueryParticipant(_m *Event) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.ParticipantTable, event.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
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

// HybridSessionClient is a client for the HybridSession schema.
type HybridSessionClient struct {
	config
}

// NewHybridSessionClient returns a client for the HybridSession from the given config.
func NewHybridSessionClient(c config) *HybridSessionClient {
	return &HybridSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hybridsession.Hooks(f(g(h())))`.
func (c *HybridSessionClient) Use(hooks ...Hook) {
	c.hooks.HybridSession = append(c.hooks.HybridSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hybridsession.Intercept(f(g(h())))`.
func (c *HybridSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.HybridSession = append(c.inters.HybridSession, interceptors...)
}

// Create returns a builder for creating a HybridSession entity.
func (c *HybridSessionClient) Create() *HybridSessionCreate {
	mutation := newHybridSessionMutation(c.config, OpCreate)
	return &HybridSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HybridSession entities.
func (c *HybridSessionClient) CreateBulk(builders ...*HybridSessionCreate) *HybridSessionCreateBulk {
	return &HybridSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HybridSessionClient) MapCreateBulk(slice any, setFunc func(*HybridSessionCreate, int)) *HybridSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HybridSessionCreateBulk{err: fmt.Errorf("calling to HybridSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HybridSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HybridSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HybridSession.
func (c *HybridSessionClient) Update() *HybridSessionUpdate {
	mutation := newHybridSessionMutation(c.config, OpUpdate)
	return &HybridSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HybridSessionClient) UpdateOne(_m *HybridSession) *HybridSessionUpdateOne {
	mutation := newHybridSessionMutation(c.config, OpUpdateOne, withHybridSession(_m))
	return &HybridSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HybridSessionClient) UpdateOneID(id string) *HybridSessionUpdateOne {
	mutation := newHybridSessionMutation(c.config, OpUpdateOne, withHybridSessionID(id))
	return &HybridSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HybridSession.
func (c *HybridSessionClient) Delete() *HybridSessionDelete {
	mutation := newHybridSessionMutation(c.config, OpDelete)
	return &HybridSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HybridSessionClient) DeleteOne(_m *HybridSession) *HybridSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HybridSessionClient) DeleteOneID(id string) *HybridSessionDeleteOne {
	builder := c.Delete().Where(hybridsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HybridSessionDeleteOne{builder}
}

// Query returns a query builder for HybridSession.
func (c *HybridSessionClient) Query() *HybridSessionQuery {
	return &HybridSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHybridSession},
		inters: c.Interceptors(),
	}
}

// Get returns a HybridSession entity by its id.
func (c *HybridSessionClient) Get(ctx context.Context, id string) (*HybridSession, error) {
	return c.Query().Where(hybridsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HybridSessionClient) GetX(ctx context.Context, id string) *HybridSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HybridSessionClient) Hooks() []Hook {
	return c.hooks.HybridSession
}

// Interceptors returns the client interceptors.
func (c *HybridSessionClient) Interceptors() []Interceptor {
	return c.inters.HybridSession
}

func (c *HybridSessionClient) mutate(ctx context.Context, m *HybridSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HybridSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HybridSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HybridSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HybridSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HybridSession mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(_m *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(_m))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id string) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(_m *Job) *JobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id string) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id string) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id string) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// ParticipantClient is a client for the Participant schema.
type ParticipantClient struct {
	config
}

// NewParticipantClient returns a client for the Participant from the given config.
func NewParticipantClient(c config) *ParticipantClient {
	return &ParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `participant.Hooks(f(g(h())))`.
func (c *ParticipantClient) Use(hooks ...Hook) {
	c.hooks.Participant = append(c.hooks.Participant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `participant.Intercept(f(g(h())))`.
func (c *ParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Participant = append(c.inters.Participant, interceptors...)
}

// Create returns a builder for creating a Participant entity.
func (c *ParticipantClient) Create() *ParticipantCreate {
	mutation := newParticipantMutation(c.config, OpCreate)
	return &ParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Participant entities.
func (c *ParticipantClient) CreateBulk(builders ...*ParticipantCreate) *ParticipantCreateBulk {
	return &ParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParticipantClient) MapCreateBulk(slice any, setFunc func(*ParticipantCreate, int)) *ParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParticipantCreateBulk{err: fmt.Errorf("calling to ParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Participant.
func (c *ParticipantClient) Update() *ParticipantUpdate {
	mutation := newParticipantMutation(c.config, OpUpdate)
	return &ParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParticipantClient) UpdateOne(_m *Participant) *ParticipantUpdateOne {
	mutation := newParticipantMutation(c.config, OpUpdateOne, withParticipant(_m))
	return &ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParticipantClient) UpdateOneID(id string) *ParticipantUpdateOne {
	mutation := newParticipantMutation(c.config, OpUpdateOne, withParticipantID(id))
	return &ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Participant.
func (c *ParticipantClient) Delete() *ParticipantDelete {
	mutation := newParticipantMutation(c.config, OpDelete)
	return &ParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParticipantClient) DeleteOne(_m *Participant) *ParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParticipantClient) DeleteOneID(id string) *ParticipantDeleteOne {
	builder := c.Delete().Where(participant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParticipantDeleteOne{builder}
}

// Query returns a query builder for Participant.
func (c *ParticipantClient) Query() *ParticipantQuery {
	return &ParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a Participant entity by its id.
func (c *ParticipantClient) Get(ctx context.Context, id string) (*Participant, error) {
	return c.Query().Where(participant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParticipantClient) GetX(ctx context.Context, id string) *Participant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStudy queries the study edge of a Participant.
func (c *ParticipantClient) QueryStudy(_m *Participant) *StudyQuery {
	query := (&StudyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(study.Table, study.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participant.StudyTable, participant.StudyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBatch queries the batch edge of a Participant.
func (c *ParticipantClient) QueryBatch(_m *Participant) *BatchQuery {
	query := (&BatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(batch.Table, batch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participant.BatchTable, participant.BatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Participant.
func (c *ParticipantClient) QueryEvents(_m *Participant) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.EventsTable, participant.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStoryArtifacts queries the story_artifacts edge of a Participant.
func (c *ParticipantClient) QueryStoryArtifacts(_m *Participant) *StoryArtifactQuery {
	query := (&StoryArtifactClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(storyartifact.Table, storyartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.StoryArtifactsTable, participant.StoryArtifactsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentContext queries the agent_context edge of a Participant.
func (c *ParticipantClient) QueryAgentContext(_m *Participant) *AgentContextQuery {
	query := (&AgentContextClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(agentcontext.Table, agentcontext.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, participant.AgentContextTable, participant.AgentContextColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySurveyResponses queries the survey_responses edge of a Participant.
func (c *ParticipantClient) QuerySurveyResponses(_m *Participant) *SurveyResponseQuery {
	query := (&SurveyResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(surveyresponse.Table, surveyresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.SurveyResponsesTable, participant.SurveyResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAuthoredComments queries the authored_comments edge of a Participant.
func (c *ParticipantClient) QueryAuthoredComments(_m *Participant) *CommentQuery {
	query := (&CommentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(comment.Table, comment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.AuthoredCommentsTable, participant.AuthoredCommentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryReceivedComments queries the received_comments edge of a Participant.
func (c *ParticipantClient) QueryReceivedComments(_m *Participant) *CommentQuery {
	query := (&CommentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(comment.Table, comment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.ReceivedCommentsTable, participant.ReceivedCommentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParticipantClient) Hooks() []Hook {
	return c.hooks.Participant
}

// Interceptors returns the client interceptors.
func (c *ParticipantClient) Interceptors() []Interceptor {
	return c.inters.Participant
}

func (c *ParticipantClient) mutate(ctx context.Context, m *ParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Participant mutation op: %q", m.Op())
	}
}

// StoryArtifactClient is a client for the StoryArtifact schema.
type StoryArtifactClient struct {
	config
}

// NewStoryArtifactClient returns a client for the StoryArtifact from the given config.
func NewStoryArtifactClient(c config) *StoryArtifactClient {
	return &StoryArtifactClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `storyartifact.Hooks(f(g(h())))`.
func (c *StoryArtifactClient) Use(hooks ...Hook) {
	c.hooks.StoryArtifact = append(c.hooks.StoryArtifact, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `storyartifact.Intercept(f(g(h())))`.
func (c *StoryArtifactClient) Intercept(interceptors ...Interceptor) {
	c.inters.StoryArtifact = append(c.inters.StoryArtifact, interceptors...)
}

// Create returns a builder for creating a StoryArtifact entity.
func (c *StoryArtifactClient) Create() *StoryArtifactCreate {
	mutation := newStoryArtifactMutation(c.config, OpCreate)
	return &StoryArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StoryArtifact entities.
func (c *StoryArtifactClient) CreateBulk(builders ...*StoryArtifactCreate) *StoryArtifactCreateBulk {
	return &StoryArtifactCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StoryArtifactClient) MapCreateBulk(slice any, setFunc func(*StoryArtifactCreate, int)) *StoryArtifactCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StoryArtifactCreateBulk{err: fmt.Errorf("calling to StoryArtifactClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StoryArtifactCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StoryArtifactCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StoryArtifact.
func (c *StoryArtifactClient) Update() *StoryArtifactUpdate {
	mutation := newStoryArtifactMutation(c.config, OpUpdate)
	return &StoryArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StoryArtifactClient) UpdateOne(_m *StoryArtifact) *StoryArtifactUpdateOne {
	mutation := newStoryArtifactMutation(c.config, OpUpdateOne, withStoryArtifact(_m))
	return &StoryArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StoryArtifactClient) UpdateOneID(id string) *StoryArtifactUpdateOne {
	mutation := newStoryArtifactMutation(c.config, OpUpdateOne, withStoryArtifactID(id))
	return &StoryArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StoryArtifact.
func (c *StoryArtifactClient) Delete() *StoryArtifactDelete {
	mutation := newStoryArtifactMutation(c.config, OpDelete)
	return &StoryArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StoryArtifactClient) DeleteOne(_m *StoryArtifact) *StoryArtifactDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StoryArtifactClient) DeleteOneID(id string) *StoryArtifactDeleteOne {
	builder := c.Delete().Where(storyartifact.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StoryArtifactDeleteOne{builder}
}

// Query returns a query builder for StoryArtifact.
func (c *StoryArtifactClient) Query() *StoryArtifactQuery {
	return &StoryArtifactQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStoryArtifact},
		inters: c.Interceptors(),
	}
}

// Get returns a StoryArtifact entity by its id.
func (c *StoryArtifactClient) Get(ctx context.Context, id string) (*StoryArtifact, error) {
	return c.Query().Where(storyartifact.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StoryArtifactClient) GetX(ctx context.Context, id string) *StoryArtifact {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipant queries the participant edge of a StoryArtifact.
func (c *StoryArtifactClient) QueryParticipant(_m *StoryArtifact) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(storyartifact.Table, storyartifact.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, storyartifact.ParticipantTable, storyartifact.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StoryArtifactClient) Hooks() []Hook {
	return c.hooks.StoryArtifact
}

// Interceptors returns the client interceptors.
func (c *StoryArtifactClient) Interceptors() []Interceptor {
	return c.inters.StoryArtifact
}

func (c *StoryArtifactClient) mutate(ctx context.Context, m *StoryArtifactMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StoryArtifactCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StoryArtifactUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StoryArtifactUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StoryArtifactDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StoryArtifact mutation op: %q", m.Op())
	}
}

// StudyClient is a client for the Study schema.
type StudyClient struct {
	config
}

// NewStudyClient returns a client for the Study from the given config.
func NewStudyClient(c config) *StudyClient {
	return &StudyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `study.Hooks(f(g(h())))`.
func (c *StudyClient) Use(hooks ...Hook) {
	c.hooks.Study = append(c.hooks.Study, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `study.Intercept(f(g(h())))`.
func (c *StudyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Study = append(c.inters.Study, interceptors...)
}

// Create returns a builder for creating a Study entity.
func (c *StudyClient) Create() *StudyCreate {
	mutation := newStudyMutation(c.config, OpCreate)
	return &StudyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Study entities.
func (c *StudyClient) CreateBulk(builders ...*StudyCreate) *StudyCreateBulk {
	return &StudyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyClient) MapCreateBulk(slice any, setFunc func(*StudyCreate, int)) *StudyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyCreateBulk{err: fmt.Errorf("calling to StudyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Study.
func (c *StudyClient) Update() *StudyUpdate {
	mutation := newStudyMutation(c.config, OpUpdate)
	return &StudyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyClient) UpdateOne(_m *Study) *StudyUpdateOne {
	mutation := newStudyMutation(c.config, OpUpdateOne, withStudy(_m))
	return &StudyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyClient) UpdateOneID(id string) *StudyUpdateOne {
	mutation := newStudyMutation(c.config, OpUpdateOne, withStudyID(id))
	return &StudyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Study.
func (c *StudyClient) Delete() *StudyDelete {
	mutation := newStudyMutation(c.config, OpDelete)
	return &StudyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyClient) DeleteOne(_m *Study) *StudyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyClient) DeleteOneID(id string) *StudyDeleteOne {
	builder := c.Delete().Where(study.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyDeleteOne{builder}
}

// Query returns a query builder for Study.
func (c *StudyClient) Query() *StudyQuery {
	return &StudyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudy},
		inters: c.Interceptors(),
	}
}

// Get returns a Study entity by its id.
func (c *StudyClient) Get(ctx context.Context, id string) (*Study, error) {
	return c.Query().Where(study.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyClient) GetX(ctx context.Context, id string) *Study {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConditions queries the conditions edge of a Study.
func (c *StudyClient) QueryConditions(_m *Study) *ConditionQuery {
	query := (&ConditionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(study.Table, study.FieldID, id),
			sqlgraph.To(condition.Table, condition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.ConditionsTable, study.ConditionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBatches queries the batches edge of a Study.
func (c *StudyClient) QueryBatches(_m *Study) *BatchQuery {
	query := (&BatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(study.Table, study.FieldID, id),
			sqlgraph.To(batch.Table, batch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.BatchesTable, study.BatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipants queries the participants edge of a Study.
func (c *StudyClient) QueryParticipants(_m *Study) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(study.Table, study.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.ParticipantsTable, study.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySurveys queries the surveys edge of a Study.
func (c *StudyClient) QuerySurveys(_m *Study) *SurveyQuery {
	query := (&SurveyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(study.Table, study.FieldID, id),
			sqlgraph.To(survey.Table, survey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.SurveysTable, study.SurveysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudyClient) Hooks() []Hook {
	return c.hooks.Study
}

// Interceptors returns the client interceptors.
func (c *StudyClient) Interceptors() []Interceptor {
	return c.inters.Study
}

func (c *StudyClient) mutate(ctx context.Context, m *StudyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Study mutation op: %q", m.Op())
	}
}

// SurveyClient is a client for the Survey schema.
type SurveyClient struct {
	config
}

// NewSurveyClient returns a client for the Survey from the given config.
func NewSurveyClient(c config) *SurveyClient {
	return &SurveyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `survey.Hooks(f(g(h())))`.
func (c *SurveyClient) Use(hooks ...Hook) {
	c.hooks.Survey = append(c.hooks.Survey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `survey.Intercept(f(g(h())))`.
func (c *SurveyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Survey = append(c.inters.Survey, interceptors...)
}

// Create returns a builder for creating a Survey entity.
func (c *SurveyClient) Create() *SurveyCreate {
	mutation := newSurveyMutation(c.config, OpCreate)
	return &SurveyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Survey entities.
func (c *SurveyClient) CreateBulk(builders ...*SurveyCreate) *SurveyCreateBulk {
	return &SurveyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SurveyClient) MapCreateBulk(slice any, setFunc func(*SurveyCreate, int)) *SurveyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SurveyCreateBulk{err: fmt.Errorf("calling to SurveyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SurveyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SurveyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Survey.
func (c *SurveyClient) Update() *SurveyUpdate {
	mutation := newSurveyMutation(c.config, OpUpdate)
	return &SurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SurveyClient) UpdateOne(_m *Survey) *SurveyUpdateOne {
	mutation := newSurveyMutation(c.config, OpUpdateOne, withSurvey(_m))
	return &SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SurveyClient) UpdateOneID(id string) *SurveyUpdateOne {
	mutation := newSurveyMutation(c.config, OpUpdateOne, withSurveyID(id))
	return &SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Survey.
func (c *SurveyClient) Delete() *SurveyDelete {
	mutation := newSurveyMutation(c.config, OpDelete)
	return &SurveyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SurveyClient) DeleteOne(_m *Survey) *SurveyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SurveyClient) DeleteOneID(id string) *SurveyDeleteOne {
	builder := c.Delete().Where(survey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SurveyDeleteOne{builder}
}

// Query returns a query builder for Survey.
func (c *SurveyClient) Query() *SurveyQuery {
	return &SurveyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSurvey},
		inters: c.Interceptors(),
	}
}

// Get returns a Survey entity by its id.
func (c *SurveyClient) Get(ctx context.Context, id string) (*Survey, error) {
	return c.Query().Where(survey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SurveyClient) GetX(ctx context.Context, id string) *Survey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStudy queries the study edge of a Survey.
func (c *SurveyClient) QueryStudy(_m *Survey) *StudyQuery {
	query := (&StudyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(survey.Table, survey.FieldID, id),
			sqlgraph.To(study.Table, study.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, survey.StudyTable, survey.StudyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponses queries the responses edge of a Survey.
func (c *SurveyClient) QueryResponses(_m *Survey) *SurveyResponseQuery {
	query := (&SurveyResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(survey.Table, survey.FieldID, id),
			sqlgraph.To(surveyresponse.Table, surveyresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, survey.ResponsesTable, survey.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SurveyClient) Hooks() []Hook {
	return c.hooks.Survey
}

// Interceptors returns the client interceptors.
func (c *SurveyClient) Interceptors() []Interceptor {
	return c.inters.Survey
}

func (c *SurveyClient) mutate(ctx context.Context, m *SurveyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SurveyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SurveyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Survey mutation op: %q", m.Op())
	}
}

// SurveyResponseClient is a client for the SurveyResponse schema.
type SurveyResponseClient struct {
	config
}

// NewSurveyResponseClient returns a client for the SurveyResponse from the given config.
func NewSurveyResponseClient(c config) *SurveyResponseClient {
	return &SurveyResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `surveyresponse.Hooks(f(g(h())))`.
func (c *SurveyResponseClient) Use(hooks ...Hook) {
	c.hooks.SurveyResponse = append(c.hooks.SurveyResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `surveyresponse.Intercept(f(g(h())))`.
func (c *SurveyResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.SurveyResponse = append(c.inters.SurveyResponse, interceptors...)
}

// Create returns a builder for creating a SurveyResponse entity.
func (c *SurveyResponseClient) Create() *SurveyResponseCreate {
	mutation := newSurveyResponseMutation(c.config, OpCreate)
	return &SurveyResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SurveyResponse entities.
func (c *SurveyResponseClient) CreateBulk(builders ...*SurveyResponseCreate) *SurveyResponseCreateBulk {
	return &SurveyResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SurveyResponseClient) MapCreateBulk(slice any, setFunc func(*SurveyResponseCreate, int)) *SurveyResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SurveyResponseCreateBulk{err: fmt.Errorf("calling to SurveyResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SurveyResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SurveyResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SurveyResponse.
func (c *SurveyResponseClient) Update() *SurveyResponseUpdate {
	mutation := newSurveyResponseMutation(c.config, OpUpdate)
	return &SurveyResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SurveyResponseClient) UpdateOne(_m *SurveyResponse) *SurveyResponseUpdateOne {
	mutation := newSurveyResponseMutation(c.config, OpUpdateOne, withSurveyResponse(_m))
	return &SurveyResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SurveyResponseClient) UpdateOneID(id string) *SurveyResponseUpdateOne {
	mutation := newSurveyResponseMutation(c.config, OpUpdateOne, withSurveyResponseID(id))
	return &SurveyResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SurveyResponse.
func (c *SurveyResponseClient) Delete() *SurveyResponseDelete {
	mutation := newSurveyResponseMutation(c.config, OpDelete)
	return &SurveyResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SurveyResponseClient) DeleteOne(_m *SurveyResponse) *SurveyResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SurveyResponseClient) DeleteOneID(id string) *SurveyResponseDeleteOne {
	builder := c.Delete().Where(surveyresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SurveyResponseDeleteOne{builder}
}

// Query returns a query builder for SurveyResponse.
func (c *SurveyResponseClient) Query() *SurveyResponseQuery {
	return &SurveyResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSurveyResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a SurveyResponse entity by its id.
func (c *SurveyResponseClient) Get(ctx context.Context, id string) (*SurveyResponse, error) {
	return c.Query().Where(surveyresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SurveyResponseClient) GetX(ctx context.Context, id string) *SurveyResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySurvey queries the survey edge of a SurveyResponse.
func (c *SurveyResponseClient) QuerySurvey(_m *SurveyResponse) *SurveyQuery {
	query := (&SurveyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(surveyresponse.Table, surveyresponse.FieldID, id),
			sqlgraph.To(survey.Table, survey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, surveyresponse.SurveyTable, surveyresponse.SurveyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipant queries the participant edge of a SurveyResponse.
func (c *SurveyResponseClient) QueryParticipant(_m *SurveyResponse) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(surveyresponse.Table, surveyresponse.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, surveyresponse.ParticipantTable, surveyresponse.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SurveyResponseClient) Hooks() []Hook {
	return c.hooks.SurveyResponse
}

// Interceptors returns the client interceptors.
func (c *SurveyResponseClient) Interceptors() []Interceptor {
	return c.inters.SurveyResponse
}

func (c *SurveyResponseClient) mutate(ctx context.Context, m *SurveyResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SurveyResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SurveyResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SurveyResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SurveyResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SurveyResponse mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentContext, Batch, Comment, Condition, Event, HybridSession, Job, Participant,
		StoryArtifact, Study, Survey, SurveyResponse []ent.Hook
	}
	inters struct {
		AgentContext, Batch, Comment, Condition, Event, HybridSession, Job, Participant,
		StoryArtifact, Study, Survey, SurveyResponse []ent.Interceptor
	}
)
