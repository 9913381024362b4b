// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// TeleconsultReferralCreate is the builder for creating a TeleconsultReferral entity.
type TeleconsultReferralCreate struct {
	config
	mutation *TeleconsultReferralMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *TeleconsultReferralCreate) SetCreatedAt(v time.Time) *TeleconsultReferralCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TeleconsultReferralCreate) SetNillableCreatedAt(v *time.Time) *TeleconsultReferralCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TeleconsultReferralCreate) SetUpdatedAt(v time.Time) *TeleconsultReferralCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TeleconsultReferralCreate) SetNillableUpdatedAt(v *time.Time) *TeleconsultReferralCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *TeleconsultReferralCreate) SetPatientID(v uuid.UUID) *TeleconsultReferralCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetScreeningResultID sets the "screening_result_id" field.
func (_c *TeleconsultReferralCreate) SetScreeningResultID(v uuid.UUID) *TeleconsultReferralCreate {
	_c.mutation.SetScreeningResultID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *TeleconsultReferralCreate) SetReason(v string) *TeleconsultReferralCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TeleconsultReferralCreate) SetPriority(v teleconsultreferral.Priority) *TeleconsultReferralCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TeleconsultReferralCreate) SetNillablePriority(v *teleconsultreferral.Priority) *TeleconsultReferralCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TeleconsultReferralCreate) SetStatus(v teleconsultreferral.Status) *TeleconsultReferralCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TeleconsultReferralCreate) SetNillableStatus(v *teleconsultreferral.Status) *TeleconsultReferralCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetScheduledDate sets the "scheduled_date" field.
func (_c *TeleconsultReferralCreate) SetScheduledDate(v time.Time) *TeleconsultReferralCreate {
	_c.mutation.SetScheduledDate(v)
	return _c
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (_c *TeleconsultReferralCreate) SetNillableScheduledDate(v *time.Time) *TeleconsultReferralCreate {
	if v != nil {
		_c.SetScheduledDate(*v)
	}
	return _c
}

// SetClinicianNotes sets the "clinician_notes" field.
func (_c *TeleconsultReferralCreate) SetClinicianNotes(v string) *TeleconsultReferralCreate {
	_c.mutation.SetClinicianNotes(v)
	return _c
}

// SetNillableClinicianNotes sets the "clinician_notes" field if the given value is not nil.
func (_c *TeleconsultReferralCreate) SetNillableClinicianNotes(v *string) *TeleconsultReferralCreate {
	if v != nil {
		_c.SetClinicianNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TeleconsultReferralCreate) SetID(v uuid.UUID) *TeleconsultReferralCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TeleconsultReferralCreate) SetNillableID(v *uuid.UUID) *TeleconsultReferralCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *TeleconsultReferralCreate) SetPatient(v *Patient) *TeleconsultReferralCreate {
	return _c.SetPatientID(v.ID)
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by ID.
func (_c *TeleconsultReferralCreate) SetScreeningID(id uuid.UUID) *TeleconsultReferralCreate {
	_c.mutation.SetScreeningID(id)
	return _c
}

// SetScreening sets the "screening" edge to the ScreeningResult entity.
func (_c *TeleconsultReferralCreate) SetScreening(v *ScreeningResult) *TeleconsultReferralCreate {
	return _c.SetScreeningID(v.ID)
}

// Mutation returns the TeleconsultReferralMutation object of the builder.
func (_c *TeleconsultReferralCreate) Mutation() *TeleconsultReferralMutation {
	return _c.mutation
}

// Save creates the TeleconsultReferral in the database.
func (_c *TeleconsultReferralCreate) Save(ctx context.Context) (*TeleconsultReferral, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TeleconsultReferralCreate) SaveX(ctx context.Context) *TeleconsultReferral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeleconsultReferralCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeleconsultReferralCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TeleconsultReferralCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := teleconsultreferral.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := teleconsultreferral.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := teleconsultreferral.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := teleconsultreferral.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := teleconsultreferral.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TeleconsultReferralCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "TeleconsultReferral.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "TeleconsultReferral.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "TeleconsultReferral.patient_id"`)}
	}
	if _, ok := _c.mutation.ScreeningResultID(); !ok {
		return &ValidationError{Name: "screening_result_id", err: errors.New(`repo: missing required field "TeleconsultReferral.screening_result_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "TeleconsultReferral.reason"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`repo: missing required field "TeleconsultReferral.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := teleconsultreferral.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`repo: validator failed for field "TeleconsultReferral.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "TeleconsultReferral.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := teleconsultreferral.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "TeleconsultReferral.status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "TeleconsultReferral.patient"`)}
	}
	if len(_c.mutation.ScreeningIDs()) == 0 {
		return &ValidationError{Name: "screening", err: errors.New(`repo: missing required edge "TeleconsultReferral.screening"`)}
	}
	return nil
}

func (_c *TeleconsultReferralCreate) sqlSave(ctx context.Context) (*TeleconsultReferral, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TeleconsultReferralCreate) createSpec() (*TeleconsultReferral, *sqlgraph.CreateSpec) {
	var (
		_node = &TeleconsultReferral{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(teleconsultreferral.Table, sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(teleconsultreferral.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(teleconsultreferral.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(teleconsultreferral.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(teleconsultreferral.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(teleconsultreferral.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ScheduledDate(); ok {
		_spec.SetField(teleconsultreferral.FieldScheduledDate, field.TypeTime, value)
		_node.ScheduledDate = &value
	}
	if value, ok := _c.mutation.ClinicianNotes(); ok {
		_spec.SetField(teleconsultreferral.FieldClinicianNotes, field.TypeString, value)
		_node.ClinicianNotes = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScreeningIDs(); len(nodes) > 0 {
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
		_node.ScreeningResultID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TeleconsultReferralCreateBulk is the builder for creating many TeleconsultReferral entities in bulk.
type TeleconsultReferralCreateBulk struct {
	config
	err      error
	builders []*TeleconsultReferralCreate
}

// Save creates the TeleconsultReferral entities in the database.
func (_c *TeleconsultReferralCreateBulk) Save(ctx context.Context) ([]*TeleconsultReferral, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TeleconsultReferral, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TeleconsultReferralMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TeleconsultReferralCreateBulk) SaveX(ctx context.Context) []*TeleconsultReferral {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TeleconsultReferralCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TeleconsultReferralCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
