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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// TeleconsultReferralUpdate is the builder for updating TeleconsultReferral entities.
type TeleconsultReferralUpdate struct {
	config
	hooks    []Hook
	mutation *TeleconsultReferralMutation
}

// Where appends a list predicates to the TeleconsultReferralUpdate builder.
func (_u *TeleconsultReferralUpdate) Where(ps ...predicate.TeleconsultReferral) *TeleconsultReferralUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TeleconsultReferralUpdate) SetUpdatedAt(v time.Time) *TeleconsultReferralUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TeleconsultReferralUpdate) SetPatientID(v uuid.UUID) *TeleconsultReferralUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TeleconsultReferralUpdate) SetNillablePatientID(v *uuid.UUID) *TeleconsultReferralUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetScreeningResultID sets the "screening_result_id" field.
func (_u *TeleconsultReferralUpdate) SetScreeningResultID(v uuid.UUID) *TeleconsultReferralUpdate {
	_u.mutation.SetScreeningResultID(v)
	return _u
}

// SetNillableScreeningResultID sets the "screening_result_id" field if the given value is not nil.
func (_u *TeleconsultReferralUpdate) SetNillableScreeningResultID(v *uuid.UUID) *TeleconsultReferralUpdate {
	if v != nil {
		_u.SetScreeningResultID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TeleconsultReferralUpdate) SetReason(v string) *TeleconsultReferralUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TeleconsultReferralUpdate) SetNillableReason(v *string) *TeleconsultReferralUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TeleconsultReferralUpdate) SetPriority(v teleconsultreferral.Priority) *TeleconsultReferralUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TeleconsultReferralUpdate) SetNillablePriority(v *teleconsultreferral.Priority) *TeleconsultReferralUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TeleconsultReferralUpdate) SetStatus(v teleconsultreferral.Status) *TeleconsultReferralUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TeleconsultReferralUpdate) SetNillableStatus(v *teleconsultreferral.Status) *TeleconsultReferralUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *TeleconsultReferralUpdate) SetScheduledDate(v time.Time) *TeleconsultReferralUpdate {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *TeleconsultReferralUpdate) SetNillableScheduledDate(v *time.Time) *TeleconsultReferralUpdate {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// ClearScheduledDate clears the value of the "scheduled_date" field.
func (_u *TeleconsultReferralUpdate) ClearScheduledDate() *TeleconsultReferralUpdate {
	_u.mutation.ClearScheduledDate()
	return _u
}

// SetClinicianNotes sets the "clinician_notes" field.
func (_u *TeleconsultReferralUpdate) SetClinicianNotes(v string) *TeleconsultReferralUpdate {
	_u.mutation.SetClinicianNotes(v)
	return _u
}

// SetNillableClinicianNotes sets the "clinician_notes" field if the given value is not nil.
func (_u *TeleconsultReferralUpdate) SetNillableClinicianNotes(v *string) *TeleconsultReferralUpdate {
	if v != nil {
		_u.SetClinicianNotes(*v)
	}
	return _u
}

// ClearClinicianNotes clears the value of the "clinician_notes" field.
func (_u *TeleconsultReferralUpdate) ClearClinicianNotes() *TeleconsultReferralUpdate {
	_u.mutation.ClearClinicianNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *TeleconsultReferralUpdate) SetPatient(v *Patient) *TeleconsultReferralUpdate {
	return _u.SetPatientID(v.ID)
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by ID.
func (_u *TeleconsultReferralUpdate) SetScreeningID(id uuid.UUID) *TeleconsultReferralUpdate {
	_u.mutation.SetScreeningID(id)
	return _u
}

// SetScreening sets the "screening" edge to the ScreeningResult entity.
func (_u *TeleconsultReferralUpdate) SetScreening(v *ScreeningResult) *TeleconsultReferralUpdate {
	return _u.SetScreeningID(v.ID)
}

// Mutation returns the TeleconsultReferralMutation object of the builder.
func (_u *TeleconsultReferralUpdate) Mutation() *TeleconsultReferralMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *TeleconsultReferralUpdate) ClearPatient() *TeleconsultReferralUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearScreening clears the "screening" edge to the ScreeningResult entity.
func (_u *TeleconsultReferralUpdate) ClearScreening() *TeleconsultReferralUpdate {
	_u.mutation.ClearScreening()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TeleconsultReferralUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeleconsultReferralUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TeleconsultReferralUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeleconsultReferralUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TeleconsultReferralUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := teleconsultreferral.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TeleconsultReferralUpdate) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := teleconsultreferral.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "TeleconsultReferral.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := teleconsultreferral.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TeleconsultReferral.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TeleconsultReferral.patient"`)
	}
	if _u.mutation.ScreeningCleared() && len(_u.mutation.ScreeningIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TeleconsultReferral.screening"`)
	}
	return nil
}

func (_u *TeleconsultReferralUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(teleconsultreferral.Table, teleconsultreferral.Columns, sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(teleconsultreferral.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(teleconsultreferral.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(teleconsultreferral.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(teleconsultreferral.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(teleconsultreferral.FieldScheduledDate, field.TypeTime, value)
	}
	if _u.mutation.ScheduledDateCleared() {
		_spec.ClearField(teleconsultreferral.FieldScheduledDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicianNotes(); ok {
		_spec.SetField(teleconsultreferral.FieldClinicianNotes, field.TypeString, value)
	}
	if _u.mutation.ClinicianNotesCleared() {
		_spec.ClearField(teleconsultreferral.FieldClinicianNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   teleconsultreferral.PatientTable,
			Columns: []string{teleconsultreferral.PatientColumn},
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
			Table:   teleconsultreferral.PatientTable,
			Columns: []string{teleconsultreferral.PatientColumn},
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
			Table:   teleconsultreferral.ScreeningTable,
			Columns: []string{teleconsultreferral.ScreeningColumn},
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
			Table:   teleconsultreferral.ScreeningTable,
			Columns: []string{teleconsultreferral.ScreeningColumn},
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
			err = &NotFoundError{teleconsultreferral.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TeleconsultReferralUpdateOne is the builder for updating a single TeleconsultReferral entity.
type TeleconsultReferralUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TeleconsultReferralMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TeleconsultReferralUpdateOne) SetUpdatedAt(v time.Time) *TeleconsultReferralUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *TeleconsultReferralUpdateOne) SetPatientID(v uuid.UUID) *TeleconsultReferralUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *TeleconsultReferralUpdateOne) SetNillablePatientID(v *uuid.UUID) *TeleconsultReferralUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetScreeningResultID sets the "screening_result_id" field.
func (_u *TeleconsultReferralUpdateOne) SetScreeningResultID(v uuid.UUID) *TeleconsultReferralUpdateOne {
	_u.mutation.SetScreeningResultID(v)
	return _u
}

// SetNillableScreeningResultID sets the "screening_result_id" field if the given value is not nil.
func (_u *TeleconsultReferralUpdateOne) SetNillableScreeningResultID(v *uuid.UUID) *TeleconsultReferralUpdateOne {
	if v != nil {
		_u.SetScreeningResultID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TeleconsultReferralUpdateOne) SetReason(v string) *TeleconsultReferralUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TeleconsultReferralUpdateOne) SetNillableReason(v *string) *TeleconsultReferralUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TeleconsultReferralUpdateOne) SetPriority(v teleconsultreferral.Priority) *TeleconsultReferralUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TeleconsultReferralUpdateOne) SetNillablePriority(v *teleconsultreferral.Priority) *TeleconsultReferralUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TeleconsultReferralUpdateOne) SetStatus(v teleconsultreferral.Status) *TeleconsultReferralUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TeleconsultReferralUpdateOne) SetNillableStatus(v *teleconsultreferral.Status) *TeleconsultReferralUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScheduledDate sets the "scheduled_date" field.
func (_u *TeleconsultReferralUpdateOne) SetScheduledDate(v time.Time) *TeleconsultReferralUpdateOne {
	_u.mutation.SetScheduledDate(v)
	return _u
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_u *TeleconsultReferralUpdateOne) SetNillableScheduledDate(v *time.Time) *TeleconsultReferralUpdateOne {
	if v != nil {
		_u.SetScheduledDate(*v)
	}
	return _u
}

// ClearScheduledDate clears the value of the "scheduled_date" field.
func (_u *TeleconsultReferralUpdateOne) ClearScheduledDate() *TeleconsultReferralUpdateOne {
	_u.mutation.ClearScheduledDate()
	return _u
}

// SetClinicianNotes sets the "clinician_notes" field.
func (_u *TeleconsultReferralUpdateOne) SetClinicianNotes(v string) *TeleconsultReferralUpdateOne {
	_u.mutation.SetClinicianNotes(v)
	return _u
}

// SetNillableClinicianNotes sets the "clinician_notes" field if the given value is not nil.
func (_u *TeleconsultReferralUpdateOne) SetNillableClinicianNotes(v *string) *TeleconsultReferralUpdateOne {
	if v != nil {
		_u.SetClinicianNotes(*v)
	}
	return _u
}

// ClearClinicianNotes clears the value of the "clinician_notes" field.
func (_u *TeleconsultReferralUpdateOne) ClearClinicianNotes() *TeleconsultReferralUpdateOne {
	_u.mutation.ClearClinicianNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *TeleconsultReferralUpdateOne) SetPatient(v *Patient) *TeleconsultReferralUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by ID.
func (_u *TeleconsultReferralUpdateOne) SetScreeningID(id uuid.UUID) *TeleconsultReferralUpdateOne {
	_u.mutation.SetScreeningID(id)
	return _u
}

// SetScreening sets the "screening" edge to the ScreeningResult entity.
func (_u *TeleconsultReferralUpdateOne) SetScreening(v *ScreeningResult) *TeleconsultReferralUpdateOne {
	return _u.SetScreeningID(v.ID)
}

// Mutation returns the TeleconsultReferralMutation object of the builder.
func (_u *TeleconsultReferralUpdateOne) Mutation() *TeleconsultReferralMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *TeleconsultReferralUpdateOne) ClearPatient() *TeleconsultReferralUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearScreening clears the "screening" edge to the ScreeningResult entity.
func (_u *TeleconsultReferralUpdateOne) ClearScreening() *TeleconsultReferralUpdateOne {
	_u.mutation.ClearScreening()
	return _u
}

// Where appends a list predicates to the TeleconsultReferralUpdate builder.
func (_u *TeleconsultReferralUpdateOne) Where(ps ...predicate.TeleconsultReferral) *TeleconsultReferralUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TeleconsultReferralUpdateOne) Select(field string, fields ...string) *TeleconsultReferralUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TeleconsultReferral entity.
func (_u *TeleconsultReferralUpdateOne) Save(ctx context.Context) (*TeleconsultReferral, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TeleconsultReferralUpdateOne) SaveX(ctx context.Context) *TeleconsultReferral {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TeleconsultReferralUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TeleconsultReferralUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TeleconsultReferralUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := teleconsultreferral.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TeleconsultReferralUpdateOne) check() error {
	if v, ok := _u.mutation.Priority(); ok {
		if err := teleconsultreferral.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "TeleconsultReferral.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := teleconsultreferral.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TeleconsultReferral.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TeleconsultReferral.patient"`)
	}
	if _u.mutation.ScreeningCleared() && len(_u.mutation.ScreeningIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "TeleconsultReferral.screening"`)
	}
	return nil
}

func (_u *TeleconsultReferralUpdateOne) sqlSave(ctx context.Context) (_node *TeleconsultReferral, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(teleconsultreferral.Table, teleconsultreferral.Columns, sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "TeleconsultReferral.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, teleconsultreferral.FieldID)
		for _, f := range fields {
			if !teleconsultreferral.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != teleconsultreferral.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(teleconsultreferral.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(teleconsultreferral.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(teleconsultreferral.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(teleconsultreferral.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledDate(); ok {
		_spec.SetField(teleconsultreferral.FieldScheduledDate, field.TypeTime, value)
	}
	if _u.mutation.ScheduledDateCleared() {
		_spec.ClearField(teleconsultreferral.FieldScheduledDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicianNotes(); ok {
		_spec.SetField(teleconsultreferral.FieldClinicianNotes, field.TypeString, value)
	}
	if _u.mutation.ClinicianNotesCleared() {
		_spec.ClearField(teleconsultreferral.FieldClinicianNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   teleconsultreferral.PatientTable,
			Columns: []string{teleconsultreferral.PatientColumn},
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
			Table:   teleconsultreferral.PatientTable,
			Columns: []string{teleconsultreferral.PatientColumn},
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
			Table:   teleconsultreferral.ScreeningTable,
			Columns: []string{teleconsultreferral.ScreeningColumn},
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
			Table:   teleconsultreferral.ScreeningTable,
			Columns: []string{teleconsultreferral.ScreeningColumn},
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
	_node = &TeleconsultReferral{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{teleconsultreferral.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
