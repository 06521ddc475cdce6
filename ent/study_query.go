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
	"github.com/dyadlab/fabula/ent/batch"
	"github.com/dyadlab/fabula/ent/condition"
	"github.com/dyadlab/fabula/ent/participant"
	"github.com/dyadlab/fabula/ent/predicate"
	"github.com/dyadlab/fabula/ent/study"
	"github.com/dyadlab/fabula/ent/survey"
)

// StudyQuery is the builder for querying Study entities.
type StudyQuery struct {
	config
	ctx              *QueryContext
	order            []study.OrderOption
	inters           []Interceptor
	predicates       []predicate.Study
	withConditions   *ConditionQuery
	withBatches      *BatchQuery
	withParticipants *ParticipantQuery
	withSurveys      *SurveyQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the StudyQuery builder.
func (_q *StudyQuery) Where(ps ...predicate.Study) *StudyQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *StudyQuery) Limit(limit int) *StudyQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *StudyQuery) Offset(offset int) *StudyQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *StudyQuery) Unique(unique bool) *StudyQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *StudyQuery) Order(o ...study.OrderOption) *StudyQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryConditions chains the current query on the "conditions" edge.
func (_q *StudyQuery) QueryConditions() *ConditionQuery {
	query := (&ConditionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(study.Table, study.FieldID, selector),
			sqlgraph.To(condition.Table, condition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.ConditionsTable, study.ConditionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryBatches chains the current query on the "batches" edge.
func (_q *StudyQuery) QueryBatches() *BatchQuery {
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
			sqlgraph.From(study.Table, study.FieldID, selector),
			sqlgraph.To(batch.Table, batch.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.BatchesTable, study.BatchesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryParticipants chains the current query on the "participants" edge.
func (_q *StudyQuery) QueryParticipants() *ParticipantQuery {
	query := (&ParticipantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(study.Table, study.FieldID, selector),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.ParticipantsTable, study.ParticipantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySurveys chains the current query on the "surveys" edge.
func (_q *StudyQuery) QuerySurveys() *SurveyQuery {
	query := (&SurveyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(study.Table, study.FieldID, selector),
			sqlgraph.To(survey.Table, survey.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, study.SurveysTable, study.SurveysColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Study entity from the query.
// Returns a *NotFoundError when no Study was found.
func (_q *StudyQuery) First(ctx context.Context) (*Study, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{study.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *StudyQuery) FirstX(ctx context.Context) *Study {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Study ID from the query.
// Returns a *NotFoundError when no Study ID was found.
func (_q *StudyQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{study.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *StudyQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Study entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Study entity is found.
// Returns a *NotFoundError when no Study entities are found.
func (_q *StudyQuery) Only(ctx context.Context) (*Study, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{study.Label}
	default:
		return nil, &NotSingularError{study.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *StudyQuery) OnlyX(ctx context.Context) *Study {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Study ID in the query.
// Returns a *NotSingularError when more than one Study ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *StudyQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{study.Label}
	default:
		err = &NotSingularError{study.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *StudyQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Studies.
func (_q *StudyQuery) All(ctx context.Context) ([]*Study, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Study, *StudyQuery]()
	return withInterceptors[[]*Study](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *StudyQuery) AllX(ctx context.Context) []*Study {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Study IDs.
func (_q *StudyQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(study.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *StudyQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *StudyQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*StudyQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *StudyQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *StudyQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *StudyQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the StudyQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *StudyQuery) Clone() *StudyQuery {
	if _q == nil {
		return nil
	}
	return &StudyQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]study.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Study{}, _q.predicates...),
		withConditions:   _q.withConditions.Clone(),
		withBatches:      _q.withBatches.Clone(),
		withParticipants: _q.withParticipants.Clone(),
		withSurveys:      _q.withSurveys.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithConditions tells the query-builder to eager-load the nodes that are connected to
// the "conditions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StudyQuery) WithConditions(opts ...func(*ConditionQuery)) *StudyQuery {
	query := (&ConditionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConditions = query
	return _q
}

// WithBatches tells the query-builder to eager-load the nodes that are connected to
// the "batches" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StudyQuery) WithBatches(opts ...func(*BatchQuery)) *StudyQuery {
	query := (&BatchClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBatches = query
	return _q
}

// WithParticipants tells the query-builder to eager-load the nodes that are connected to
// the "participants" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StudyQuery) WithParticipants(opts ...func(*ParticipantQuery)) *StudyQuery {
	query := (&ParticipantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParticipants = query
	return _q
}

// WithSurveys tells the query-builder to eager-load the nodes that are connected to
// the "surveys" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *StudyQuery) WithSurveys(opts ...func(*SurveyQuery)) *StudyQuery {
	query := (&SurveyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSurveys = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Study.Query().
//		GroupBy(study.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *StudyQuery) GroupBy(field string, fields ...string) *StudyGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &StudyGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = study.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Study.Query().
//		Select(study.FieldName).
//		Scan(ctx, &v)
func (_q *StudyQuery) Select(fields ...string) *StudySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &StudySelect{StudyQuery: _q}
	sbuild.label = study.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a StudySelect configured with the given aggregations.
func (_q *StudyQuery) Aggregate(fns ...AggregateFunc) *StudySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *StudyQuery) prepareQuery(ctx context.Context) error {
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
		if !study.ValidColumn(f) {
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

func (_q *StudyQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Study, error) {
	var (
		nodes       = []*Study{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withConditions != nil,
			_q.withBatches != nil,
			_q.withParticipants != nil,
			_q.withSurveys != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Study).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Study{config: _q.config}
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
	if query := _q.withConditions; query != nil {
		if err := _q.loadConditions(ctx, query, nodes,
			func(n *Study) { n.Edges.Conditions = []*Condition{} },
			func(n *Study, e *Condition) { n.Edges.Conditions = append(n.Edges.Conditions, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withBatches; query != nil {
		if err := _q.loadBatches(ctx, query, nodes,
			func(n *Study) { n.Edges.Batches = []*Batch{} },
			func(n *Study, e *Batch) { n.Edges.Batches = append(n.Edges.Batches, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withParticipants; query != nil {
		if err := _q.loadParticipants(ctx, query, nodes,
			func(n *Study) { n.Edges.Participants = []*Participant{} },
			func(n *Study, e *Participant) { n.Edges.Participants = append(n.Edges.Participants, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSurveys; query != nil {
		if err := _q.loadSurveys(ctx, query, nodes,
			func(n *Study) { n.Edges.Surveys = []*Survey{} },
			func(n *Study, e *Survey) { n.Edges.Surveys = append(n.Edges.Surveys, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *StudyQuery) loadConditions(ctx context.Context, query *ConditionQuery, nodes []*Study, init func(*Study), assign func(*Study, *Condition)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Study)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(condition.FieldStudyID)
	}
	query.Where(predicate.Condition(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(study.ConditionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StudyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "study_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StudyQuery) loadBatches(ctx context.Context, query *BatchQuery, nodes []*Study, init func(*Study), assign func(*Study, *Batch)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Study)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(batch.FieldStudyID)
	}
	query.Where(predicate.Batch(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(study.BatchesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StudyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "study_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StudyQuery) loadParticipants(ctx context.Context, query *ParticipantQuery, nodes []*Study, init func(*Study), assign func(*Study, *Participant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Study)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(participant.FieldStudyID)
	}
	query.Where(predicate.Participant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(study.ParticipantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StudyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "study_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *StudyQuery) loadSurveys(ctx context.Context, query *SurveyQuery, nodes []*Study, init func(*Study), assign func(*Study, *Survey)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Study)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(survey.FieldStudyID)
	}
	query.Where(predicate.Survey(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(study.SurveysColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.StudyID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "study_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *StudyQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *StudyQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(study.Table, study.Columns, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, study.FieldID)
		for i := range fields {
			if fields[i] != study.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *StudyQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(study.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = study.Columns
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
func (_q *StudyQuery) ForUpdate(opts ...sql.LockOption) *StudyQuery {
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
func (_q *StudyQuery) ForShare(opts ...sql.LockOption) *StudyQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// StudyGroupBy is the group-by builder for Study entities.
type StudyGroupBy struct {
	selector
	build *StudyQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *StudyGroupBy) Aggregate(fns ...AggregateFunc) *StudyGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *StudyGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StudyQuery, *StudyGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *StudyGroupBy) sqlScan(ctx context.Context, root *StudyQuery, v any) error {
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

// StudySelect is the builder for selecting fields of Study entities.
type StudySelect struct {
	*StudyQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *StudySelect) Aggregate(fns ...AggregateFunc) *StudySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *StudySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*StudyQuery, *StudySelect](ctx, _s.StudyQuery, _s, _s.inters, v)
}

func (_s *StudySelect) sqlScan(ctx context.Context, root *StudyQuery, v any) error {
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
