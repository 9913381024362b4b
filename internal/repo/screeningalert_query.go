// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
)

// ScreeningAlertQuery is the builder for querying ScreeningAlert entities.
type ScreeningAlertQuery struct {
	config
	ctx           *QueryContext
	order         []screeningalert.OrderOption
	inters        []Interceptor
	predicates    []predicate.ScreeningAlert
	withPatient   *PatientQuery
	withScreening *ScreeningResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScreeningAlertQuery builder.
func (_q *ScreeningAlertQuery) Where(ps ...predicate.ScreeningAlert) *ScreeningAlertQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ScreeningAlertQuery) Limit(limit int) *ScreeningAlertQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ScreeningAlertQuery) Offset(offset int) *ScreeningAlertQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ScreeningAlertQuery) Unique(unique bool) *ScreeningAlertQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ScreeningAlertQuery) Order(o ...screeningalert.OrderOption) *ScreeningAlertQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatient chains the current query on the "patient" edge.
func (_q *ScreeningAlertQuery) QueryPatient() *PatientQuery {
	query := (&PatientClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningalert.Table, screeningalert.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, screeningalert.PatientTable, screeningalert.PatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryScreening chains the current query on the "screening" edge.
func (_q *ScreeningAlertQuery) QueryScreening() *ScreeningResultQuery {
	query := (&ScreeningResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningalert.Table, screeningalert.FieldID, selector),
			sqlgraph.To(screeningresult.Table, screeningresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, screeningalert.ScreeningTable, screeningalert.ScreeningColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ScreeningAlert entity from the query.
// Returns a *NotFoundError when no ScreeningAlert was found.
func (_q *ScreeningAlertQuery) First(ctx context.Context) (*ScreeningAlert, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{screeningalert.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ScreeningAlertQuery) FirstX(ctx context.Context) *ScreeningAlert {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScreeningAlert ID from the query.
// Returns a *NotFoundError when no ScreeningAlert ID was found.
func (_q *ScreeningAlertQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{screeningalert.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ScreeningAlertQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScreeningAlert entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScreeningAlert entity is found.
// Returns a *NotFoundError when no ScreeningAlert entities are found.
func (_q *ScreeningAlertQuery) Only(ctx context.Context) (*ScreeningAlert, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{screeningalert.Label}
	default:
		return nil, &NotSingularError{screeningalert.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ScreeningAlertQuery) OnlyX(ctx context.Context) *ScreeningAlert {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScreeningAlert ID in the query.
// Returns a *NotSingularError when more than one ScreeningAlert ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ScreeningAlertQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{screeningalert.Label}
	default:
		err = &NotSingularError{screeningalert.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ScreeningAlertQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScreeningAlerts.
func (_q *ScreeningAlertQuery) All(ctx context.Context) ([]*ScreeningAlert, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScreeningAlert, *ScreeningAlertQuery]()
	return withInterceptors[[]*ScreeningAlert](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ScreeningAlertQuery) AllX(ctx context.Context) []*ScreeningAlert {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScreeningAlert IDs.
func (_q *ScreeningAlertQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(screeningalert.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ScreeningAlertQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ScreeningAlertQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ScreeningAlertQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ScreeningAlertQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ScreeningAlertQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ScreeningAlertQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScreeningAlertQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ScreeningAlertQuery) Clone() *ScreeningAlertQuery {
	if _q == nil {
		return nil
	}
	return &ScreeningAlertQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]screeningalert.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.ScreeningAlert{}, _q.predicates...),
		withPatient:   _q.withPatient.Clone(),
		withScreening: _q.withScreening.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatient tells the query-builder to eager-load the nodes that are connected to
// the "patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScreeningAlertQuery) WithPatient(opts ...func(*PatientQuery)) *ScreeningAlertQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatient = query
	return _q
}

// WithScreening tells the query-builder to eager-load the nodes that are connected to
// the "screening" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScreeningAlertQuery) WithScreening(opts ...func(*ScreeningResultQuery)) *ScreeningAlertQuery {
	query := (&ScreeningResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withScreening = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScreeningAlert.Query().
//		GroupBy(screeningalert.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *ScreeningAlertQuery) GroupBy(field string, fields ...string) *ScreeningAlertGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScreeningAlertGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = screeningalert.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.ScreeningAlert.Query().
//		Select(screeningalert.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ScreeningAlertQuery) Select(fields ...string) *ScreeningAlertSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ScreeningAlertSelect{ScreeningAlertQuery: _q}
	sbuild.label = screeningalert.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScreeningAlertSelect configured with the given aggregations.
func (_q *ScreeningAlertQuery) Aggregate(fns ...AggregateFunc) *ScreeningAlertSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ScreeningAlertQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !screeningalert.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
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

func (_q *ScreeningAlertQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScreeningAlert, error) {
	var (
		nodes       = []*ScreeningAlert{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPatient != nil,
			_q.withScreening != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScreeningAlert).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScreeningAlert{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withPatient; query != nil {
		if err := _q.loadPatient(ctx, query, nodes, nil,
			func(n *ScreeningAlert, e *Patient) { n.Edges.Patient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withScreening; query != nil {
		if err := _q.loadScreening(ctx, query, nodes, nil,
			func(n *ScreeningAlert, e *ScreeningResult) { n.Edges.Screening = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ScreeningAlertQuery) loadPatient(ctx context.Context, query *PatientQuery, nodes []*ScreeningAlert, init func(*ScreeningAlert), assign func(*ScreeningAlert, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ScreeningAlert)
	for i := range nodes {
		fk := nodes[i].PatientID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(patient.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "patient_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ScreeningAlertQuery) loadScreening(ctx context.Context, query *ScreeningResultQuery, nodes []*ScreeningAlert, init func(*ScreeningAlert), assign func(*ScreeningAlert, *ScreeningResult)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ScreeningAlert)
	for i := range nodes {
		if nodes[i].ScreeningResultID == nil {
			continue
		}
		fk := *nodes[i].ScreeningResultID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(screeningresult.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "screening_result_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *ScreeningAlertQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ScreeningAlertQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(screeningalert.Table, screeningalert.Columns, sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screeningalert.FieldID)
		for i := range fields {
			if fields[i] != screeningalert.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPatient != nil {
			_spec.Node.AddColumnOnce(screeningalert.FieldPatientID)
		}
		if _q.withScreening != nil {
			_spec.Node.AddColumnOnce(screeningalert.FieldScreeningResultID)
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

func (_q *ScreeningAlertQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(screeningalert.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = screeningalert.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// ScreeningAlertGroupBy is the group-by builder for ScreeningAlert entities.
type ScreeningAlertGroupBy struct {
	selector
	build *ScreeningAlertQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ScreeningAlertGroupBy) Aggregate(fns ...AggregateFunc) *ScreeningAlertGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ScreeningAlertGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScreeningAlertQuery, *ScreeningAlertGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ScreeningAlertGroupBy) sqlScan(ctx context.Context, root *ScreeningAlertQuery, v any) error {
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

// ScreeningAlertSelect is the builder for selecting fields of ScreeningAlert entities.
type ScreeningAlertSelect struct {
	*ScreeningAlertQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ScreeningAlertSelect) Aggregate(fns ...AggregateFunc) *ScreeningAlertSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ScreeningAlertSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScreeningAlertQuery, *ScreeningAlertSelect](ctx, _s.ScreeningAlertQuery, _s, _s.inters, v)
}

func (_s *ScreeningAlertSelect) sqlScan(ctx context.Context, root *ScreeningAlertQuery, v any) error {
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
