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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// TeleconsultReferralQuery is the builder for querying TeleconsultReferral entities.
type TeleconsultReferralQuery struct {
	config
	ctx           *QueryContext
	order         []teleconsultreferral.OrderOption
	inters        []Interceptor
	predicates    []predicate.TeleconsultReferral
	withPatient   *PatientQuery
	withScreening *ScreeningResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TeleconsultReferralQuery builder.
func (_q *TeleconsultReferralQuery) Where(ps ...predicate.TeleconsultReferral) *TeleconsultReferralQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TeleconsultReferralQuery) Limit(limit int) *TeleconsultReferralQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TeleconsultReferralQuery) Offset(offset int) *TeleconsultReferralQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TeleconsultReferralQuery) Unique(unique bool) *TeleconsultReferralQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TeleconsultReferralQuery) Order(o ...teleconsultreferral.OrderOption) *TeleconsultReferralQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatient chains the current query on the "patient" edge.
func (_q *TeleconsultReferralQuery) QueryPatient() *PatientQuery {
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
			sqlgraph.From(teleconsultreferral.Table, teleconsultreferral.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, teleconsultreferral.PatientTable, teleconsultreferral.PatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryScreening chains the current query on the "screening" edge.
func (_q *TeleconsultReferralQuery) QueryScreening() *ScreeningResultQuery {
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
			sqlgraph.From(teleconsultreferral.Table, teleconsultreferral.FieldID, selector),
			sqlgraph.To(screeningresult.Table, screeningresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, teleconsultreferral.ScreeningTable, teleconsultreferral.ScreeningColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TeleconsultReferral entity from the query.
// Returns a *NotFoundError when no TeleconsultReferral was found.
func (_q *TeleconsultReferralQuery) First(ctx context.Context) (*TeleconsultReferral, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{teleconsultreferral.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TeleconsultReferralQuery) FirstX(ctx context.Context) *TeleconsultReferral {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TeleconsultReferral ID from the query.
// Returns a *NotFoundError when no TeleconsultReferral ID was found.
func (_q *TeleconsultReferralQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{teleconsultreferral.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TeleconsultReferralQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TeleconsultReferral entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TeleconsultReferral entity is found.
// Returns a *NotFoundError when no TeleconsultReferral entities are found.
func (_q *TeleconsultReferralQuery) Only(ctx context.Context) (*TeleconsultReferral, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{teleconsultreferral.Label}
	default:
		return nil, &NotSingularError{teleconsultreferral.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TeleconsultReferralQuery) OnlyX(ctx context.Context) *TeleconsultReferral {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TeleconsultReferral ID in the query.
// Returns a *NotSingularError when more than one TeleconsultReferral ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TeleconsultReferralQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{teleconsultreferral.Label}
	default:
		err = &NotSingularError{teleconsultreferral.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TeleconsultReferralQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TeleconsultReferrals.
func (_q *TeleconsultReferralQuery) All(ctx context.Context) ([]*TeleconsultReferral, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TeleconsultReferral, *TeleconsultReferralQuery]()
	return withInterceptors[[]*TeleconsultReferral](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TeleconsultReferralQuery) AllX(ctx context.Context) []*TeleconsultReferral {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TeleconsultReferral IDs.
func (_q *TeleconsultReferralQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(teleconsultreferral.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TeleconsultReferralQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TeleconsultReferralQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TeleconsultReferralQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TeleconsultReferralQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TeleconsultReferralQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TeleconsultReferralQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TeleconsultReferralQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TeleconsultReferralQuery) Clone() *TeleconsultReferralQuery {
	if _q == nil {
		return nil
	}
	return &TeleconsultReferralQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]teleconsultreferral.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.TeleconsultReferral{}, _q.predicates...),
		withPatient:   _q.withPatient.Clone(),
		withScreening: _q.withScreening.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatient tells the query-builder to eager-load the nodes that are connected to
// the "patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TeleconsultReferralQuery) WithPatient(opts ...func(*PatientQuery)) *TeleconsultReferralQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatient = query
	return _q
}

// WithScreening tells the query-builder to eager-load the nodes that are connected to
// the "screening" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TeleconsultReferralQuery) WithScreening(opts ...func(*ScreeningResultQuery)) *TeleconsultReferralQuery {
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
//	client.TeleconsultReferral.Query().
//		GroupBy(teleconsultreferral.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *TeleconsultReferralQuery) GroupBy(field string, fields ...string) *TeleconsultReferralGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TeleconsultReferralGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = teleconsultreferral.Label
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
//	client.TeleconsultReferral.Query().
//		Select(teleconsultreferral.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *TeleconsultReferralQuery) Select(fields ...string) *TeleconsultReferralSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TeleconsultReferralSelect{TeleconsultReferralQuery: _q}
	sbuild.label = teleconsultreferral.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TeleconsultReferralSelect configured with the given aggregations.
func (_q *TeleconsultReferralQuery) Aggregate(fns ...AggregateFunc) *TeleconsultReferralSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TeleconsultReferralQuery) prepareQuery(ctx context.Context) error {
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
		if !teleconsultreferral.ValidColumn(f) {
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

func (_q *TeleconsultReferralQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TeleconsultReferral, error) {
	var (
		nodes       = []*TeleconsultReferral{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPatient != nil,
			_q.withScreening != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TeleconsultReferral).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TeleconsultReferral{config: _q.config}
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
			func(n *TeleconsultReferral, e *Patient) { n.Edges.Patient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withScreening; query != nil {
		if err := _q.loadScreening(ctx, query, nodes, nil,
			func(n *TeleconsultReferral, e *ScreeningResult) { n.Edges.Screening = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TeleconsultReferralQuery) loadPatient(ctx context.Context, query *PatientQuery, nodes []*TeleconsultReferral, init func(*TeleconsultReferral), assign func(*TeleconsultReferral, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TeleconsultReferral)
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
func (_q *TeleconsultReferralQuery) loadScreening(ctx context.Context, query *ScreeningResultQuery, nodes []*TeleconsultReferral, init func(*TeleconsultReferral), assign func(*TeleconsultReferral, *ScreeningResult)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TeleconsultReferral)
	for i := range nodes {
		fk := nodes[i].ScreeningResultID
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

func (_q *TeleconsultReferralQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TeleconsultReferralQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(teleconsultreferral.Table, teleconsultreferral.Columns, sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, teleconsultreferral.FieldID)
		for i := range fields {
			if fields[i] != teleconsultreferral.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPatient != nil {
			_spec.Node.AddColumnOnce(teleconsultreferral.FieldPatientID)
		}
		if _q.withScreening != nil {
			_spec.Node.AddColumnOnce(teleconsultreferral.FieldScreeningResultID)
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

func (_q *TeleconsultReferralQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(teleconsultreferral.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = teleconsultreferral.Columns
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

// TeleconsultReferralGroupBy is the group-by builder for TeleconsultReferral entities.
type TeleconsultReferralGroupBy struct {
	selector
	build *TeleconsultReferralQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TeleconsultReferralGroupBy) Aggregate(fns ...AggregateFunc) *TeleconsultReferralGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TeleconsultReferralGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TeleconsultReferralQuery, *TeleconsultReferralGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TeleconsultReferralGroupBy) sqlScan(ctx context.Context, root *TeleconsultReferralQuery, v any) error {
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

// TeleconsultReferralSelect is the builder for selecting fields of TeleconsultReferral entities.
type TeleconsultReferralSelect struct {
	*TeleconsultReferralQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TeleconsultReferralSelect) Aggregate(fns ...AggregateFunc) *TeleconsultReferralSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TeleconsultReferralSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TeleconsultReferralQuery, *TeleconsultReferralSelect](ctx, _s.TeleconsultReferralQuery, _s, _s.inters, v)
}

func (_s *TeleconsultReferralSelect) sqlScan(ctx context.Context, root *TeleconsultReferralQuery, v any) error {
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
