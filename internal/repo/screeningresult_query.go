// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// ScreeningResultQuery is the builder for querying ScreeningResult entities.
type ScreeningResultQuery struct {
	config
	ctx          *QueryContext
	order        []screeningresult.OrderOption
	inters       []Interceptor
	predicates   []predicate.ScreeningResult
	withPatient  *PatientQuery
	withAlert    *ScreeningAlertQuery
	withReferral *TeleconsultReferralQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScreeningResultQuery builder.
func (_q *ScreeningResultQuery) Where(ps ...predicate.ScreeningResult) *ScreeningResultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ScreeningResultQuery) Limit(limit int) *ScreeningResultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ScreeningResultQuery) Offset(offset int) *ScreeningResultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ScreeningResultQuery) Unique(unique bool) *ScreeningResultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ScreeningResultQuery) Order(o ...screeningresult.OrderOption) *ScreeningResultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPatient chains the current query on the "patient" edge.
func (_q *ScreeningResultQuery) QueryPatient() *PatientQuery {
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
			sqlgraph.From(screeningresult.Table, screeningresult.FieldID, selector),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, screeningresult.PatientTable, screeningresult.PatientColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAlert chains the current query on the "alert" edge.
func (_q *ScreeningResultQuery) QueryAlert() *ScreeningAlertQuery {
	query := (&ScreeningAlertClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningresult.Table, screeningresult.FieldID, selector),
			sqlgraph.To(screeningalert.Table, screeningalert.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, screeningresult.AlertTable, screeningresult.AlertColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryReferral chains the current query on the "referral" edge.
func (_q *ScreeningResultQuery) QueryReferral() *TeleconsultReferralQuery {
	query := (&TeleconsultReferralClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(screeningresult.Table, screeningresult.FieldID, selector),
			sqlgraph.To(teleconsultreferral.Table, teleconsultreferral.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, screeningresult.ReferralTable, screeningresult.ReferralColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ScreeningResult entity from the query.
// Returns a *NotFoundError when no ScreeningResult was found.
func (_q *ScreeningResultQuery) First(ctx context.Context) (*ScreeningResult, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{screeningresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ScreeningResultQuery) FirstX(ctx context.Context) *ScreeningResult {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScreeningResult ID from the query.
// Returns a *NotFoundError when no ScreeningResult ID was found.
func (_q *ScreeningResultQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{screeningresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ScreeningResultQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScreeningResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScreeningResult entity is found.
// Returns a *NotFoundError when no ScreeningResult entities are found.
func (_q *ScreeningResultQuery) Only(ctx context.Context) (*ScreeningResult, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{screeningresult.Label}
	default:
		return nil, &NotSingularError{screeningresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ScreeningResultQuery) OnlyX(ctx context.Context) *ScreeningResult {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScreeningResult ID in the query.
// Returns a *NotSingularError when more than one ScreeningResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ScreeningResultQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{screeningresult.Label}
	default:
		err = &NotSingularError{screeningresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ScreeningResultQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScreeningResults.
func (_q *ScreeningResultQuery) All(ctx context.Context) ([]*ScreeningResult, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScreeningResult, *ScreeningResultQuery]()
	return withInterceptors[[]*ScreeningResult](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ScreeningResultQuery) AllX(ctx context.Context) []*ScreeningResult {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScreeningResult IDs.
func (_q *ScreeningResultQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(screeningresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ScreeningResultQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ScreeningResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ScreeningResultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ScreeningResultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ScreeningResultQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ScreeningResultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScreeningResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ScreeningResultQuery) Clone() *ScreeningResultQuery {
	if _q == nil {
		return nil
	}
	return &ScreeningResultQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]screeningresult.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ScreeningResult{}, _q.predicates...),
		withPatient:  _q.withPatient.Clone(),
		withAlert:    _q.withAlert.Clone(),
		withReferral: _q.withReferral.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPatient tells the query-builder to eager-load the nodes that are connected to
// the "patient" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScreeningResultQuery) WithPatient(opts ...func(*PatientQuery)) *ScreeningResultQuery {
	query := (&PatientClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPatient = query
	return _q
}

// WithAlert tells the query-builder to eager-load the nodes that are connected to
// the "alert" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScreeningResultQuery) WithAlert(opts ...func(*ScreeningAlertQuery)) *ScreeningResultQuery {
	query := (&ScreeningAlertClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAlert = query
	return _q
}

// WithReferral tells the query-builder to eager-load the nodes that are connected to
// the "referral" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScreeningResultQuery) WithReferral(opts ...func(*TeleconsultReferralQuery)) *ScreeningResultQuery {
	query := (&TeleconsultReferralClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReferral = query
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
//	client.ScreeningResult.Query().
//		GroupBy(screeningresult.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *ScreeningResultQuery) GroupBy(field string, fields ...string) *ScreeningResultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScreeningResultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = screeningresult.Label
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
//	client.ScreeningResult.Query().
//		Select(screeningresult.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *ScreeningResultQuery) Select(fields ...string) *ScreeningResultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ScreeningResultSelect{ScreeningResultQuery: _q}
	sbuild.label = screeningresult.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScreeningResultSelect configured with the given aggregations.
func (_q *ScreeningResultQuery) Aggregate(fns ...AggregateFunc) *ScreeningResultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ScreeningResultQuery) prepareQuery(ctx context.Context) error {
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
		if !screeningresult.ValidColumn(f) {
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

func (_q *ScreeningResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScreeningResult, error) {
	var (
		nodes       = []*ScreeningResult{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withPatient != nil,
			_q.withAlert != nil,
			_q.withReferral != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScreeningResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScreeningResult{config: _q.config}
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
			func(n *ScreeningResult, e *Patient) { n.Edges.Patient = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAlert; query != nil {
		if err := _q.loadAlert(ctx, query, nodes,
			func(n *ScreeningResult) { n.Edges.Alert = []*ScreeningAlert{} },
			func(n *ScreeningResult, e *ScreeningAlert) { n.Edges.Alert = append(n.Edges.Alert, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withReferral; query != nil {
		if err := _q.loadReferral(ctx, query, nodes,
			func(n *ScreeningResult) { n.Edges.Referral = []*TeleconsultReferral{} },
			func(n *ScreeningResult, e *TeleconsultReferral) { n.Edges.Referral = append(n.Edges.Referral, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ScreeningResultQuery) loadPatient(ctx context.Context, query *PatientQuery, nodes []*ScreeningResult, init func(*ScreeningResult), assign func(*ScreeningResult, *Patient)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*ScreeningResult)
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
func (_q *ScreeningResultQuery) loadAlert(ctx context.Context, query *ScreeningAlertQuery, nodes []*ScreeningResult, init func(*ScreeningResult), assign func(*ScreeningResult, *ScreeningAlert)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ScreeningResult)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(screeningalert.FieldScreeningResultID)
	}
	query.Where(predicate.ScreeningAlert(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(screeningresult.AlertColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ScreeningResultID
		if fk == nil {
			return fmt.Errorf(`foreign-key "screening_result_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "screening_result_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ScreeningResultQuery) loadReferral(ctx context.Context, query *TeleconsultReferralQuery, nodes []*ScreeningResult, init func(*ScreeningResult), assign func(*ScreeningResult, *TeleconsultReferral)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ScreeningResult)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(teleconsultreferral.FieldScreeningResultID)
	}
	query.Where(predicate.TeleconsultReferral(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(screeningresult.ReferralColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ScreeningResultID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "screening_result_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ScreeningResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ScreeningResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(screeningresult.Table, screeningresult.Columns, sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screeningresult.FieldID)
		for i := range fields {
			if fields[i] != screeningresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPatient != nil {
			_spec.Node.AddColumnOnce(screeningresult.FieldPatientID)
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

func (_q *ScreeningResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(screeningresult.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = screeningresult.Columns
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

// ScreeningResultGroupBy is the group-by builder for ScreeningResult entities.
type ScreeningResultGroupBy struct {
	selector
	build *ScreeningResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ScreeningResultGroupBy) Aggregate(fns ...AggregateFunc) *ScreeningResultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ScreeningResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScreeningResultQuery, *ScreeningResultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ScreeningResultGroupBy) sqlScan(ctx context.Context, root *ScreeningResultQuery, v any) error {
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

// ScreeningResultSelect is the builder for selecting fields of ScreeningResult entities.
type ScreeningResultSelect struct {
	*ScreeningResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ScreeningResultSelect) Aggregate(fns ...AggregateFunc) *ScreeningResultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ScreeningResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScreeningResultQuery, *ScreeningResultSelect](ctx, _s.ScreeningResultQuery, _s, _s.inters, v)
}

func (_s *ScreeningResultSelect) sqlScan(ctx context.Context, root *ScreeningResultQuery, v any) error {
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
