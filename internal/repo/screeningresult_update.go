// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// ScreeningResultUpdate is the builder for updating ScreeningResult entities.
type ScreeningResultUpdate struct {
	config
	hooks    []Hook
	mutation *ScreeningResultMutation
}

// Where appends a list predicates to the ScreeningResultUpdate builder.
func (_u *ScreeningResultUpdate) Where(ps ...predicate.ScreeningResult) *ScreeningResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddAlertIDs adds the "alert" edge to the ScreeningAlert entity by IDs.
func (_u *ScreeningResultUpdate) AddAlertIDs(ids ...uuid.UUID) *ScreeningResultUpdate {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlert adds the "alert" edges to the ScreeningAlert entity.
func (_u *ScreeningResultUpdate) AddAlert(v ...*ScreeningAlert) *ScreeningResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// AddReferralIDs adds the "referral" edge to the TeleconsultReferral entity by IDs.
func (_u *ScreeningResultUpdate) AddReferralIDs(ids ...uuid.UUID) *ScreeningResultUpdate {
	_u.mutation.AddReferralIDs(ids...)
	return _u
}

// AddReferral adds the "referral" edges to the TeleconsultReferral entity.
func (_u *ScreeningResultUpdate) AddReferral(v ...*TeleconsultReferral) *ScreeningResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferralIDs(ids...)
}

// Mutation returns the ScreeningResultMutation object of the builder.
func (_u *ScreeningResultUpdate) Mutation() *ScreeningResultMutation {
	return _u.mutation
}

// ClearAlert clears all "alert" edges to the ScreeningAlert entity.
func (_u *ScreeningResultUpdate) ClearAlert() *ScreeningResultUpdate {
	_u.mutation.ClearAlert()
	return _u
}

// RemoveAlertIDs removes the "alert" edge to ScreeningAlert entities by IDs.
func (_u *ScreeningResultUpdate) RemoveAlertIDs(ids ...uuid.UUID) *ScreeningResultUpdate {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlert removes "alert" edges to ScreeningAlert entities.
func (_u *ScreeningResultUpdate) RemoveAlert(v ...*ScreeningAlert) *ScreeningResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearReferral clears all "referral" edges to the TeleconsultReferral entity.
func (_u *ScreeningResultUpdate) ClearReferral() *ScreeningResultUpdate {
	_u.mutation.ClearReferral()
	return _u
}

// RemoveReferralIDs removes the "referral" edge to TeleconsultReferral entities by IDs.
func (_u *ScreeningResultUpdate) RemoveReferralIDs(ids ...uuid.UUID) *ScreeningResultUpdate {
	_u.mutation.RemoveReferralIDs(ids...)
	return _u
}

// RemoveReferral removes "referral" edges to TeleconsultReferral entities.
func (_u *ScreeningResultUpdate) RemoveReferral(v ...*TeleconsultReferral) *ScreeningResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferralIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScreeningResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScreeningResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningResultUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ScreeningResult.patient"`)
	}
	return nil
}

func (_u *ScreeningResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningresult.Table, screeningresult.Columns, sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RecommendedModuleCleared() {
		_spec.ClearField(screeningresult.FieldRecommendedModule, field.TypeString)
	}
	if _u.mutation.AlertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.AlertTable,
			Columns: []string{screeningresult.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertIDs(); len(nodes) > 0 && !_u.mutation.AlertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.AlertTable,
			Columns: []string{screeningresult.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.AlertTable,
			Columns: []string{screeningresult.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferralCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.ReferralTable,
			Columns: []string{screeningresult.ReferralColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferralIDs(); len(nodes) > 0 && !_u.mutation.ReferralCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.ReferralTable,
			Columns: []string{screeningresult.ReferralColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferralIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.ReferralTable,
			Columns: []string{screeningresult.ReferralColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScreeningResultUpdateOne is the builder for updating a single ScreeningResult entity.
type ScreeningResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScreeningResultMutation
}

// AddAlertIDs adds the "alert" edge to the ScreeningAlert entity by IDs.
func (_u *ScreeningResultUpdateOne) AddAlertIDs(ids ...uuid.UUID) *ScreeningResultUpdateOne {
	_u.mutation.AddAlertIDs(ids...)
	return _u
}

// AddAlert adds the "alert" edges to the ScreeningAlert entity.
func (_u *ScreeningResultUpdateOne) AddAlert(v ...*ScreeningAlert) *ScreeningResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAlertIDs(ids...)
}

// AddReferralIDs adds the "referral" edge to the TeleconsultReferral entity by IDs.
func (_u *ScreeningResultUpdateOne) AddReferralIDs(ids ...uuid.UUID) *ScreeningResultUpdateOne {
	_u.mutation.AddReferralIDs(ids...)
	return _u
}

// AddReferral adds the "referral" edges to the TeleconsultReferral entity.
func (_u *ScreeningResultUpdateOne) AddReferral(v ...*TeleconsultReferral) *ScreeningResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReferralIDs(ids...)
}

// Mutation returns the ScreeningResultMutation object of the builder.
func (_u *ScreeningResultUpdateOne) Mutation() *ScreeningResultMutation {
	return _u.mutation
}

// ClearAlert clears all "alert" edges to the ScreeningAlert entity.
func (_u *ScreeningResultUpdateOne) ClearAlert() *ScreeningResultUpdateOne {
	_u.mutation.ClearAlert()
	return _u
}

// RemoveAlertIDs removes the "alert" edge to ScreeningAlert entities by IDs.
func (_u *ScreeningResultUpdateOne) RemoveAlertIDs(ids ...uuid.UUID) *ScreeningResultUpdateOne {
	_u.mutation.RemoveAlertIDs(ids...)
	return _u
}

// RemoveAlert removes "alert" edges to ScreeningAlert entities.
func (_u *ScreeningResultUpdateOne) RemoveAlert(v ...*ScreeningAlert) *ScreeningResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAlertIDs(ids...)
}

// ClearReferral clears all "referral" edges to the TeleconsultReferral entity.
func (_u *ScreeningResultUpdateOne) ClearReferral() *ScreeningResultUpdateOne {
	_u.mutation.ClearReferral()
	return _u
}

// RemoveReferralIDs removes the "referral" edge to TeleconsultReferral entities by IDs.
func (_u *ScreeningResultUpdateOne) RemoveReferralIDs(ids ...uuid.UUID) *ScreeningResultUpdateOne {
	_u.mutation.RemoveReferralIDs(ids...)
	return _u
}

// RemoveReferral removes "referral" edges to TeleconsultReferral entities.
func (_u *ScreeningResultUpdateOne) RemoveReferral(v ...*TeleconsultReferral) *ScreeningResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReferralIDs(ids...)
}

// Where appends a list predicates to the ScreeningResultUpdate builder.
func (_u *ScreeningResultUpdateOne) Where(ps ...predicate.ScreeningResult) *ScreeningResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScreeningResultUpdateOne) Select(field string, fields ...string) *ScreeningResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScreeningResult entity.
func (_u *ScreeningResultUpdateOne) Save(ctx context.Context) (*ScreeningResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningResultUpdateOne) SaveX(ctx context.Context) *ScreeningResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScreeningResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningResultUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ScreeningResult.patient"`)
	}
	return nil
}

func (_u *ScreeningResultUpdateOne) sqlSave(ctx context.Context) (_node *ScreeningResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningresult.Table, screeningresult.Columns, sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ScreeningResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screeningresult.FieldID)
		for _, f := range fields {
			if !screeningresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != screeningresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RecommendedModuleCleared() {
		_spec.ClearField(screeningresult.FieldRecommendedModule, field.TypeString)
	}
	if _u.mutation.AlertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.AlertTable,
			Columns: []string{screeningresult.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAlertIDs(); len(nodes) > 0 && !_u.mutation.AlertCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.AlertTable,
			Columns: []string{screeningresult.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AlertIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.AlertTable,
			Columns: []string{screeningresult.AlertColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReferralCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.ReferralTable,
			Columns: []string{screeningresult.ReferralColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReferralIDs(); len(nodes) > 0 && !_u.mutation.ReferralCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.ReferralTable,
			Columns: []string{screeningresult.ReferralColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReferralIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   screeningresult.ReferralTable,
			Columns: []string{screeningresult.ReferralColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScreeningResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
