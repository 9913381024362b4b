// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
)

// ScreeningAlertUpdate is the builder for updating ScreeningAlert entities.
type ScreeningAlertUpdate struct {
	config
	hooks    []Hook
	mutation *ScreeningAlertMutation
}

// Where appends a list predicates to the ScreeningAlertUpdate builder.
func (_u *ScreeningAlertUpdate) Where(ps ...predicate.ScreeningAlert) *ScreeningAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ScreeningAlertUpdate) SetPatientID(v uuid.UUID) *ScreeningAlertUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillablePatientID(v *uuid.UUID) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetScreeningResultID sets the "screening_result_id" field.
func (_u *ScreeningAlertUpdate) SetScreeningResultID(v uuid.UUID) *ScreeningAlertUpdate {
	_u.mutation.SetScreeningResultID(v)
	return _u
}

// SetNillableScreeningResultID sets the "screening_result_id" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableScreeningResultID(v *uuid.UUID) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetScreeningResultID(*v)
	}
	return _u
}

// ClearScreeningResultID clears the value of the "screening_result_id" field.
func (_u *ScreeningAlertUpdate) ClearScreeningResultID() *ScreeningAlertUpdate {
	_u.mutation.ClearScreeningResultID()
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *ScreeningAlertUpdate) SetAlertType(v screeningalert.AlertType) *ScreeningAlertUpdate {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableAlertType(v *screeningalert.AlertType) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScreeningAlertUpdate) SetMessage(v string) *ScreeningAlertUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableMessage(v *string) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDeltaScore sets the "delta_score" field.
func (_u *ScreeningAlertUpdate) SetDeltaScore(v int) *ScreeningAlertUpdate {
	_u.mutation.ResetDeltaScore()
	_u.mutation.SetDeltaScore(v)
	return _u
}

// SetNillableDeltaScore sets the "delta_score" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableDeltaScore(v *int) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetDeltaScore(*v)
	}
	return _u
}

// AddDeltaScore adds value to the "delta_score" field.
func (_u *ScreeningAlertUpdate) AddDeltaScore(v int) *ScreeningAlertUpdate {
	_u.mutation.AddDeltaScore(v)
	return _u
}

// ClearDeltaScore clears the value of the "delta_score" field.
func (_u *ScreeningAlertUpdate) ClearDeltaScore() *ScreeningAlertUpdate {
	_u.mutation.ClearDeltaScore()
	return _u
}

// SetWindowDays sets the "window_days" field.
func (_u *ScreeningAlertUpdate) SetWindowDays(v int) *ScreeningAlertUpdate {
	_u.mutation.ResetWindowDays()
	_u.mutation.SetWindowDays(v)
	return _u
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableWindowDays(v *int) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetWindowDays(*v)
	}
	return _u
}

// AddWindowDays adds value to the "window_days" field.
func (_u *ScreeningAlertUpdate) AddWindowDays(v int) *ScreeningAlertUpdate {
	_u.mutation.AddWindowDays(v)
	return _u
}

// ClearWindowDays clears the value of the "window_days" field.
func (_u *ScreeningAlertUpdate) ClearWindowDays() *ScreeningAlertUpdate {
	_u.mutation.ClearWindowDays()
	return _u
}

// SetIsResolved sets the "is_resolved" field.
func (_u *ScreeningAlertUpdate) SetIsResolved(v bool) *ScreeningAlertUpdate {
	_u.mutation.SetIsResolved(v)
	return _u
}

// SetNillableIsResolved sets the "is_resolved" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableIsResolved(v *bool) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetIsResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ScreeningAlertUpdate) SetResolvedAt(v time.Time) *ScreeningAlertUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableResolvedAt(v *time.Time) *ScreeningAlertUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ScreeningAlertUpdate) ClearResolvedAt() *ScreeningAlertUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ScreeningAlertUpdate) SetPatient(v *Patient) *ScreeningAlertUpdate {
	return _u.SetPatientID(v.ID)
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by ID.
func (_u *ScreeningAlertUpdate) SetScreeningID(id uuid.UUID) *ScreeningAlertUpdate {
	_u.mutation.SetScreeningID(id)
	return _u
}

// SetNillableScreeningID sets the "screening" edge to the ScreeningResult entity by ID if the given value is not nil.
func (_u *ScreeningAlertUpdate) SetNillableScreeningID(id *uuid.UUID) *ScreeningAlertUpdate {
	if id != nil {
		_u = _u.SetScreeningID(*id)
	}
	return _u
}

// SetScreening sets the "screening" edge to the ScreeningResult entity.
func (_u *ScreeningAlertUpdate) SetScreening(v *ScreeningResult) *ScreeningAlertUpdate {
	return _u.SetScreeningID(v.ID)
}

// Mutation returns the ScreeningAlertMutation object of the builder.
func (_u *ScreeningAlertUpdate) Mutation() *ScreeningAlertMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ScreeningAlertUpdate) ClearPatient() *ScreeningAlertUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearScreening clears the "screening" edge to the ScreeningResult entity.
func (_u *ScreeningAlertUpdate) ClearScreening() *ScreeningAlertUpdate {
	_u.mutation.ClearScreening()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScreeningAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScreeningAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningAlertUpdate) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := screeningalert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`repo: validator failed for field "ScreeningAlert.alert_type": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ScreeningAlert.patient"`)
	}
	return nil
}

func (_u *ScreeningAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningalert.Table, screeningalert.Columns, sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(screeningalert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(screeningalert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaScore(); ok {
		_spec.SetField(screeningalert.FieldDeltaScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeltaScore(); ok {
		_spec.AddField(screeningalert.FieldDeltaScore, field.TypeInt, value)
	}
	if _u.mutation.DeltaScoreCleared() {
		_spec.ClearField(screeningalert.FieldDeltaScore, field.TypeInt)
	}
	if value, ok := _u.mutation.WindowDays(); ok {
		_spec.SetField(screeningalert.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowDays(); ok {
		_spec.AddField(screeningalert.FieldWindowDays, field.TypeInt, value)
	}
	if _u.mutation.WindowDaysCleared() {
		_spec.ClearField(screeningalert.FieldWindowDays, field.TypeInt)
	}
	if value, ok := _u.mutation.IsResolved(); ok {
		_spec.SetField(screeningalert.FieldIsResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(screeningalert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(screeningalert.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.PatientTable,
			Columns: []string{screeningalert.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.PatientTable,
			Columns: []string{screeningalert.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScreeningCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.ScreeningTable,
			Columns: []string{screeningalert.ScreeningColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScreeningIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.ScreeningTable,
			Columns: []string{screeningalert.ScreeningColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScreeningAlertUpdateOne is the builder for updating a single ScreeningAlert entity.
type ScreeningAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScreeningAlertMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *ScreeningAlertUpdateOne) SetPatientID(v uuid.UUID) *ScreeningAlertUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillablePatientID(v *uuid.UUID) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetScreeningResultID sets the "screening_result_id" field.
func (_u *ScreeningAlertUpdateOne) SetScreeningResultID(v uuid.UUID) *ScreeningAlertUpdateOne {
	_u.mutation.SetScreeningResultID(v)
	return _u
}

// SetNillableScreeningResultID sets the "screening_result_id" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableScreeningResultID(v *uuid.UUID) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetScreeningResultID(*v)
	}
	return _u
}

// ClearScreeningResultID clears the value of the "screening_result_id" field.
func (_u *ScreeningAlertUpdateOne) ClearScreeningResultID() *ScreeningAlertUpdateOne {
	_u.mutation.ClearScreeningResultID()
	return _u
}

// SetAlertType sets the "alert_type" field.
func (_u *ScreeningAlertUpdateOne) SetAlertType(v screeningalert.AlertType) *ScreeningAlertUpdateOne {
	_u.mutation.SetAlertType(v)
	return _u
}

// SetNillableAlertType sets the "alert_type" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableAlertType(v *screeningalert.AlertType) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetAlertType(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ScreeningAlertUpdateOne) SetMessage(v string) *ScreeningAlertUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableMessage(v *string) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetDeltaScore sets the "delta_score" field.
func (_u *ScreeningAlertUpdateOne) SetDeltaScore(v int) *ScreeningAlertUpdateOne {
	_u.mutation.ResetDeltaScore()
	_u.mutation.SetDeltaScore(v)
	return _u
}

// SetNillableDeltaScore sets the "delta_score" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableDeltaScore(v *int) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetDeltaScore(*v)
	}
	return _u
}

// AddDeltaScore adds value to the "delta_score" field.
func (_u *ScreeningAlertUpdateOne) AddDeltaScore(v int) *ScreeningAlertUpdateOne {
	_u.mutation.AddDeltaScore(v)
	return _u
}

// ClearDeltaScore clears the value of the "delta_score" field.
func (_u *ScreeningAlertUpdateOne) ClearDeltaScore() *ScreeningAlertUpdateOne {
	_u.mutation.ClearDeltaScore()
	return _u
}

// SetWindowDays sets the "window_days" field.
func (_u *ScreeningAlertUpdateOne) SetWindowDays(v int) *ScreeningAlertUpdateOne {
	_u.mutation.ResetWindowDays()
	_u.mutation.SetWindowDays(v)
	return _u
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableWindowDays(v *int) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetWindowDays(*v)
	}
	return _u
}

// AddWindowDays adds value to the "window_days" field.
func (_u *ScreeningAlertUpdateOne) AddWindowDays(v int) *ScreeningAlertUpdateOne {
	_u.mutation.AddWindowDays(v)
	return _u
}

// ClearWindowDays clears the value of the "window_days" field.
func (_u *ScreeningAlertUpdateOne) ClearWindowDays() *ScreeningAlertUpdateOne {
	_u.mutation.ClearWindowDays()
	return _u
}

// SetIsResolved sets the "is_resolved" field.
func (_u *ScreeningAlertUpdateOne) SetIsResolved(v bool) *ScreeningAlertUpdateOne {
	_u.mutation.SetIsResolved(v)
	return _u
}

// SetNillableIsResolved sets the "is_resolved" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableIsResolved(v *bool) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetIsResolved(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ScreeningAlertUpdateOne) SetResolvedAt(v time.Time) *ScreeningAlertUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableResolvedAt(v *time.Time) *ScreeningAlertUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ScreeningAlertUpdateOne) ClearResolvedAt() *ScreeningAlertUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *ScreeningAlertUpdateOne) SetPatient(v *Patient) *ScreeningAlertUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by ID.
func (_u *ScreeningAlertUpdateOne) SetScreeningID(id uuid.UUID) *ScreeningAlertUpdateOne {
	_u.mutation.SetScreeningID(id)
	return _u
}

// SetNillableScreeningID sets the "screening" edge to the ScreeningResult entity by ID if the given value is not nil.
func (_u *ScreeningAlertUpdateOne) SetNillableScreeningID(id *uuid.UUID) *ScreeningAlertUpdateOne {
	if id != nil {
		_u = _u.SetScreeningID(*id)
	}
	return _u
}

// SetScreening sets the "screening" edge to the ScreeningResult entity.
func (_u *ScreeningAlertUpdateOne) SetScreening(v *ScreeningResult) *ScreeningAlertUpdateOne {
	return _u.SetScreeningID(v.ID)
}

// Mutation returns the ScreeningAlertMutation object of the builder.
func (_u *ScreeningAlertUpdateOne) Mutation() *ScreeningAlertMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *ScreeningAlertUpdateOne) ClearPatient() *ScreeningAlertUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearScreening clears the "screening" edge to the ScreeningResult entity.
func (_u *ScreeningAlertUpdateOne) ClearScreening() *ScreeningAlertUpdateOne {
	_u.mutation.ClearScreening()
	return _u
}

// Where appends a list predicates to the ScreeningAlertUpdate builder.
func (_u *ScreeningAlertUpdateOne) Where(ps ...predicate.ScreeningAlert) *ScreeningAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScreeningAlertUpdateOne) Select(field string, fields ...string) *ScreeningAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScreeningAlert entity.
func (_u *ScreeningAlertUpdateOne) Save(ctx context.Context) (*ScreeningAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScreeningAlertUpdateOne) SaveX(ctx context.Context) *ScreeningAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScreeningAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScreeningAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScreeningAlertUpdateOne) check() error {
	if v, ok := _u.mutation.AlertType(); ok {
		if err := screeningalert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`repo: validator failed for field "ScreeningAlert.alert_type": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ScreeningAlert.patient"`)
	}
	return nil
}

func (_u *ScreeningAlertUpdateOne) sqlSave(ctx context.Context) (_node *ScreeningAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(screeningalert.Table, screeningalert.Columns, sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ScreeningAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, screeningalert.FieldID)
		for _, f := range fields {
			if !screeningalert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != screeningalert.FieldID {
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
	if value, ok := _u.mutation.AlertType(); ok {
		_spec.SetField(screeningalert.FieldAlertType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(screeningalert.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeltaScore(); ok {
		_spec.SetField(screeningalert.FieldDeltaScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDeltaScore(); ok {
		_spec.AddField(screeningalert.FieldDeltaScore, field.TypeInt, value)
	}
	if _u.mutation.DeltaScoreCleared() {
		_spec.ClearField(screeningalert.FieldDeltaScore, field.TypeInt)
	}
	if value, ok := _u.mutation.WindowDays(); ok {
		_spec.SetField(screeningalert.FieldWindowDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowDays(); ok {
		_spec.AddField(screeningalert.FieldWindowDays, field.TypeInt, value)
	}
	if _u.mutation.WindowDaysCleared() {
		_spec.ClearField(screeningalert.FieldWindowDays, field.TypeInt)
	}
	if value, ok := _u.mutation.IsResolved(); ok {
		_spec.SetField(screeningalert.FieldIsResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(screeningalert.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(screeningalert.FieldResolvedAt, field.TypeTime)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.PatientTable,
			Columns: []string{screeningalert.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.PatientTable,
			Columns: []string{screeningalert.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScreeningCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.ScreeningTable,
			Columns: []string{screeningalert.ScreeningColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScreeningIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   screeningalert.ScreeningTable,
			Columns: []string{screeningalert.ScreeningColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(screeningresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScreeningAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{screeningalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
