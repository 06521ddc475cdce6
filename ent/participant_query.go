// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dyadlab/fabula/ent/agentcontext"
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/comment"
	"github.com/dyadlab/fabula/ent/event"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/ent/storyartifact"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/surveyresponse"
)

// ParticipantQuery is the builder for querying Participant entities.
type ParticipantQuery struct {
	config
	ctx                  *QueryContext
	order                []participant.OrderOption
	inters               []Interceptor
	predicates           []predicate.Participant
	withStudy            *StudyQuery
	withBatch            *BatchQuery
	withEvents           *EventQuery
	withStoryArtifacts   *StoryArtifactQuery
	withAgentContext     *AgentContextQuery
	withSurveyResponses  *SurveyResponseQuery
	withAuthoredComments *CommentQuery
	withReceivedComments *CommentQuery
	modifiers            []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ParticipantQuery builder.
func (_q *ParticipantQuery) Where(ps ...predicate.Participant) *ParticipantQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ParticipantQuery) Limit(limit int) *ParticipantQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ParticipantQuery) Offset(offset int) *ParticipantQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ParticipantQuery) Unique(unique bool) *ParticipantQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ParticipantQuery) Order(o ...participant.OrderOption) *ParticipantQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStudy chains the current query on the "study" edge.
func (_q *ParticipantQuery) QueryStudy() *StudyQuery {
	query := (&StudyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(study.Table, study.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participant.StudyTable, participant.StudyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBatch chains the current query on the "batch" edge.
func (_q *ParticipantQuery) QueryBatch() *BatchQuery {
	query := (&BatchClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(batch.Table, batch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participant.BatchTable, participant.BatchColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *ParticipantQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.EventsTable, participant.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStoryArtifacts chains the current query on the "story_artifacts" edge.
func (_q *ParticipantQuery) QueryStoryArtifacts() *StoryArtifactQuery {
	query := (&StoryArtifactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(storyartifact.Table, storyartifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.StoryArtifactsTable, participant.StoryArtifactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgentContext chains the current query on the "agent_context" edge.
func (_q *ParticipantQuery) QueryAgentContext() *AgentContextQuery {
	query := (&AgentContextClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(agentcontext.Table, agentcontext.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, participant.AgentContextTable, participant.AgentContextColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySurveyResponses chains the current query on the "survey_responses" edge.
func (_q *ParticipantQuery) QuerySurveyResponses() *SurveyResponseQuery {
	query := (&SurveyResponseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(surveyresponse.Table, surveyresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.SurveyResponsesTable, participant.SurveyResponsesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuthoredComments chains the current query on the "authored_comments" edge.
func (_q *ParticipantQuery) QueryAuthoredComments() *CommentQuery {
	query := (&CommentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(comment.Table, comment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.AuthoredCommentsTable, participant.AuthoredCommentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReceivedComments chains the current query on the "received_comments" edge.
func (_q *ParticipantQuery) QueryReceivedComments() *CommentQuery {
	query := (&CommentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, selector),
			sqlgraph.To(comment.Table, comment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.ReceivedCommentsTable, participant.ReceivedCommentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Participant entity from the query.
// Returns a *NotFoundError when no Participant was found.
func (_q *ParticipantQuery) First(ctx context.Context) (*Participant, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{participant.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ParticipantQuery) FirstX(ctx context.Context) *Participant {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Participant ID from the query.
// Returns a *NotFoundError when no Participant ID was found.
func (_q *ParticipantQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{participant.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ParticipantQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Participant entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Participant entity is found.
// Returns a *NotFoundError when no Participant entities are found.
func (_q *ParticipantQuery) Only(ctx context.Context) (*Participant, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{participant.Label}
	default:
		return nil, &NotSingularError{participant.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ParticipantQuery) OnlyX(ctx context.Context) *Participant {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Participant ID in the query.
// Returns a *NotSingularError when more than one Participant ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ParticipantQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{participant.Label}
	default:
		err = &NotSingularError{participant.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ParticipantQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Participants.
func (_q *ParticipantQuery) All(ctx context.Context) ([]*Participant, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Participant, *ParticipantQuery]()
	return withInterceptors[[]*Participant](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ParticipantQuery) AllX(ctx context.Context) []*Participant {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Participant IDs.
func (_q *ParticipantQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(participant.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ParticipantQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ParticipantQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ParticipantQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ParticipantQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ParticipantQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ParticipantQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ParticipantQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ParticipantQuery) Clone() *ParticipantQuery {
	if _q == nil {
		return nil
	}
	return &ParticipantQuery{
		config:               _q.config,
		ctx:                  _q.ctx.Clone(),
		order:                append([]participant.OrderOption{}, _q.order...),
		inters:               append([]Interceptor{}, _q.inters...),
		predicates:           append([]predicate.Participant{}, _q.predicates...),
		withStudy:            _q.withStudy.Clone(),
		withBatch:            _q.withBatch.Clone(),
		withEvents:           _q.withEvents.Clone(),
		withStoryArtifacts:   _q.withStoryArtifacts.Clone(),
		withAgentContext:     _q.withAgentContext.Clone(),
		withSurveyResponses:  _q.withSurveyResponses.Clone(),
		withAuthoredComments: _q.withAuthoredComments.Clone(),
		withReceivedComments: _q.withReceivedComments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStudy tells the query-builder to eager-load the nodes that are connected to
// the "study" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithStudy(opts ...func(*StudyQuery)) *ParticipantQuery {
	query := (&StudyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStudy = query
	return _q
}

// WithBatch tells the query-builder to eager-load the nodes that are connected to
// the "batch" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithBatch(opts ...func(*BatchQuery)) *ParticipantQuery {
	query := (&BatchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBatch = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithEvents(opts ...func(*EventQuery)) *ParticipantQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithStoryArtifacts tells the query-builder to eager-load the nodes that are connected to
// the "story_artifacts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithStoryArtifacts(opts ...func(*StoryArtifactQuery)) *ParticipantQuery {
	query := (&StoryArtifactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStoryArtifacts = query
	return _q
}

// WithAgentContext tells the query-builder to eager-load the nodes that are connected to
// the "agent_context" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithAgentContext(opts ...func(*AgentContextQuery)) *ParticipantQuery {
	query := (&AgentContextClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgentContext = query
	return _q
}

// WithSurveyResponses tells the query-builder to eager-load the nodes that are connected to
// the "survey_responses" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithSurveyResponses(opts ...func(*SurveyResponseQuery)) *ParticipantQuery {
	query := (&SurveyResponseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSurveyResponses = query
	return _q
}

// WithAuthoredComments tells the query-builder to eager-load the nodes that are connected to
// the "authored_comments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithAuthoredComments(opts ...func(*CommentQuery)) *ParticipantQuery {
	query := (&CommentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAuthoredComments = query
	return _q
}

// WithReceivedComments tells the query-builder to eager-load the nodes that are connected to
// the "received_comments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ParticipantQuery) WithReceivedComments(opts ...func(*CommentQuery)) *ParticipantQuery {
	query := (&CommentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReceivedComments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StudyID string `json:"study_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Participant.Query().
//		GroupBy(participant.FieldStudyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ParticipantQuery) GroupBy(field string, fields ...string) *ParticipantGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ParticipantGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = participant.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StudyID string `json:"study_id,omitempty"`
//	}
//
//	client.Participant.Query().
//		Select(participant.FieldStudyID).
//		Scan(ctx, &v)
func (_q *ParticipantQuery) Select(fields ...string) *ParticipantSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ParticipantSelect{ParticipantQuery: _q}
	sbuild.label = participant.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ParticipantSelect configured with the given aggregations.
func (_q *ParticipantQuery) Aggregate(fns ...AggregateFunc) *ParticipantSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ParticipantQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !participant.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ParticipantQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Participant, error) {
	var (
		nodes       = []*Participant{}
		_spec       = _q.querySpec()
		loadedTypes = [8]bool{
			_q.withStudy != nil,
			_q.withBatch != nil,
			_q.withEvents != nil,
			_q.withStoryArtifacts != nil,
			_q.withAgentContext != nil,
			_q.withSurveyResponses != nil,
			_q.withAuthoredComments != nil,
			_q.withReceivedComments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Participant).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Participant{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withStudy; query != nil {
		if err := _q.loadStudy(ctx, query, nodes, nil,
			func(n *Participant, e *Study) { n.Edges.Study = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBatch; query != nil {
		if err := _q.loadBatch(ctx, query, nodes, nil,
			func(n *Participant, e *Batch) { n.Edges.Batch = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Participant) { n.Edges.Events = []*Event{} },
			func(n *Participant, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStoryArtifacts; query != nil {
		if err := _q.loadStoryArtifacts(ctx, query, nodes,
			func(n *Participant) { n.Edges.StoryArtifacts = []*StoryArtifact{} },
			func(n *Participant, e *StoryArtifact) { n.Edges.StoryArtifacts = append(n.Edges.StoryArtifacts, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgentContext; query != nil {
		if err := _q.loadAgentContext(ctx, query, nodes, nil,
			func(n *Participant, e *AgentContext) { n.Edges.AgentContext = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSurveyResponses; query != nil {
		if err := _q.loadSurveyResponses(ctx, query, nodes,
			func(n *Participant) { n.Edges.SurveyResponses = []*SurveyResponse{} },
			func(n *Participant, e *SurveyResponse) { n.Edges.SurveyResponses = append(n.Edges.SurveyResponses, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAuthoredComments; query != nil {
		if err := _q.loadAuthoredComments(ctx, query, nodes,
			func(n *Participant) { n.Edges.AuthoredComments = []*Comment{} },
			func(n *Participant, e *Comment) { n.Edges.AuthoredComments = append(n.Edges.AuthoredComments, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReceivedComments; query != nil {
		if err := _q.loadReceivedComments(ctx, query, nodes,
			func(n *Participant) { n.Edges.ReceivedComments = []*Comment{} },
			func(n *Participant, e *Comment) { n.Edges.ReceivedComments = append(n.Edges.ReceivedComments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ParticipantQuery) loadStudy(ctx context.Context, query *StudyQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *Study)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Participant)
	for i := range nodes {
		fk := nodes[i].StudyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(study.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "study_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ParticipantQuery) loadBatch(ctx context.Context, query *BatchQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *Batch)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Participant)
	for i := range nodes {
		if nodes[i].BatchID == nil {
			continue
		}
		fk := *nodes[i].BatchID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(batch.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "batch_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ParticipantQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Participant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldParticipantID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(participant.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParticipantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "participant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ParticipantQuery) loadStoryArtifacts(ctx context.Context, query *StoryArtifactQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *StoryArtifact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Participant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(storyartifact.FieldParticipantID)
	}
	query.Where(predicate.StoryArtifact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(participant.StoryArtifactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParticipantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "participant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ParticipantQuery) loadAgentContext(ctx context.Context, query *AgentContextQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *AgentContext)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Participant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentcontext.FieldParticipantID)
	}
	query.Where(predicate.AgentContext(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(participant.AgentContextColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParticipantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "participant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ParticipantQuery) loadSurveyResponses(ctx context.Context, query *SurveyResponseQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *SurveyResponse)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Participant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(surveyresponse.FieldParticipantID)
	}
	query.Where(predicate.SurveyResponse(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(participant.SurveyResponsesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ParticipantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "participant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ParticipantQuery) loadAuthoredComments(ctx context.Context, query *CommentQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *Comment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Participant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(comment.FieldAuthorID)
	}
	query.Where(predicate.Comment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(participant.AuthoredCommentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AuthorID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "author_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ParticipantQuery) loadReceivedComments(ctx context.Context, query *CommentQuery, nodes []*Participant, init func(*Participant), assign func(*Participant, *Comment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Participant)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(comment.FieldTargetParticipantID)
	}
	query.Where(predicate.Comment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(participant.ReceivedCommentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TargetParticipantID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "target_participant_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ParticipantQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ParticipantQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participant.FieldID)
		for i := range fields {
			if fields[i] != participant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withStudy != nil {
			_spec.Node.AddColumnOnce(participant.FieldStudyID)
		}
		if _q.withBatch != nil {
			_spec.Node.AddColumnOnce(participant.FieldBatchID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ParticipantQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(participant.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = participant.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ParticipantQuery) ForUpdate(opts ...sql.LockOption) *ParticipantQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ParticipantQuery) ForShare(opts ...sql.LockOption) *ParticipantQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ParticipantGroupBy is the group-by builder for Participant entities.
type ParticipantGroupBy struct {
	selector
	build *ParticipantQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ParticipantGroupBy) Aggregate(fns ...AggregateFunc) *ParticipantGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ParticipantGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ParticipantQuery, *ParticipantGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ParticipantGroupBy) sqlScan(ctx context.Context, root *ParticipantQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ParticipantSelect is the builder for selecting fields of Participant entities.
type ParticipantSelect struct {
	*ParticipantQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ParticipantSelect) Aggregate(fns ...AggregateFunc) *ParticipantSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ParticipantSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ParticipantQuery, *ParticipantSelect](ctx, _s.ParticipantQuery, _s, _s.inters, v)
}

func (_s *ParticipantSelect) sqlScan(ctx context.Context, root *ParticipantQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
