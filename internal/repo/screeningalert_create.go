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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
)

// ScreeningAlertCreate is the builder for creating a ScreeningAlert entity.
type ScreeningAlertCreate struct {
	config
	mutation *ScreeningAlertMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScreeningAlertCreate) SetCreatedAt(v time.Time) *ScreeningAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableCreatedAt(v *time.Time) *ScreeningAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ScreeningAlertCreate) SetPatientID(v uuid.UUID) *ScreeningAlertCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetScreeningResultID sets the "screening_result_id" field.
func (_c *ScreeningAlertCreate) SetScreeningResultID(v uuid.UUID) *ScreeningAlertCreate {
	_c.mutation.SetScreeningResultID(v)
	return _c
}

// SetNillableScreeningResultID sets the "screening_result_id" field if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableScreeningResultID(v *uuid.UUID) *ScreeningAlertCreate {
	if v != nil {
		_c.SetScreeningResultID(*v)
	}
	return _c
}

// SetAlertType sets the "alert_type" field.
func (_c *ScreeningAlertCreate) SetAlertType(v screeningalert.AlertType) *ScreeningAlertCreate {
	_c.mutation.SetAlertType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ScreeningAlertCreate) SetMessage(v string) *ScreeningAlertCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetDeltaScore sets the "delta_score" field.
func (_c *ScreeningAlertCreate) SetDeltaScore(v int) *ScreeningAlertCreate {
	_c.mutation.SetDeltaScore(v)
	return _c
}

// SetNillableDeltaScore sets the "delta_score" field if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableDeltaScore(v *int) *ScreeningAlertCreate {
	if v != nil {
		_c.SetDeltaScore(*v)
	}
	return _c
}

// SetWindowDays sets the "window_days" field.
func (_c *ScreeningAlertCreate) SetWindowDays(v int) *ScreeningAlertCreate {
	_c.mutation.SetWindowDays(v)
	return _c
}

// SetNillableWindowDays sets the "window_days" field if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableWindowDays(v *int) *ScreeningAlertCreate {
	if v != nil {
		_c.SetWindowDays(*v)
	}
	return _c
}

// SetIsResolved sets the "is_resolved" field.
func (_c *ScreeningAlertCreate) SetIsResolved(v bool) *ScreeningAlertCreate {
	_c.mutation.SetIsResolved(v)
	return _c
}

// SetNillableIsResolved sets the "is_resolved" field if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableIsResolved(v *bool) *ScreeningAlertCreate {
	if v != nil {
		_c.SetIsResolved(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ScreeningAlertCreate) SetResolvedAt(v time.Time) *ScreeningAlertCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableResolvedAt(v *time.Time) *ScreeningAlertCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScreeningAlertCreate) SetID(v uuid.UUID) *ScreeningAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableID(v *uuid.UUID) *ScreeningAlertCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *ScreeningAlertCreate) SetPatient(v *Patient) *ScreeningAlertCreate {
	return _c.SetPatientID(v.ID)
}

// SetScreeningID sets the "screening" edge to the ScreeningResult entity by ID.
func (_c *ScreeningAlertCreate) SetScreeningID(id uuid.UUID) *ScreeningAlertCreate {
	_c.mutation.SetScreeningID(id)
	return _c
}

// SetNillableScreeningID sets the "screening" edge to the ScreeningResult entity by ID if the given value is not nil.
func (_c *ScreeningAlertCreate) SetNillableScreeningID(id *uuid.UUID) *ScreeningAlertCreate {
	if id != nil {
		_c = _c.SetScreeningID(*id)
	}
	return _c
}

// SetScreening sets the "screening" edge to the ScreeningResult entity.
func (_c *ScreeningAlertCreate) SetScreening(v *ScreeningResult) *ScreeningAlertCreate {
	return _c.SetScreeningID(v.ID)
}

// Mutation returns the ScreeningAlertMutation object of the builder.
func (_c *ScreeningAlertCreate) Mutation() *ScreeningAlertMutation {
	return _c.mutation
}

// Save creates the ScreeningAlert in the database.
func (_c *ScreeningAlertCreate) Save(ctx context.Context) (*ScreeningAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScreeningAlertCreate) SaveX(ctx context.Context) *ScreeningAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScreeningAlertCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := screeningalert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsResolved(); !ok {
		v := screeningalert.DefaultIsResolved
		_c.mutation.SetIsResolved(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := screeningalert.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScreeningAlertCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ScreeningAlert.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "ScreeningAlert.patient_id"`)}
	}
	if _, ok := _c.mutation.AlertType(); !ok {
		return &ValidationError{Name: "alert_type", err: errors.New(`repo: missing required field "ScreeningAlert.alert_type"`)}
	}
	if v, ok := _c.mutation.AlertType(); ok {
		if err := screeningalert.AlertTypeValidator(v); err != nil {
			return &ValidationError{Name: "alert_type", err: fmt.Errorf(`repo: validator failed for field "ScreeningAlert.alert_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`repo: missing required field "ScreeningAlert.message"`)}
	}
	if _, ok := _c.mutation.IsResolved(); !ok {
		return &ValidationError{Name: "is_resolved", err: errors.New(`repo: missing required field "ScreeningAlert.is_resolved"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "ScreeningAlert.patient"`)}
	}
	return nil
}

func (_c *ScreeningAlertCreate) sqlSave(ctx context.Context) (*ScreeningAlert, error) {
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

func (_c *ScreeningAlertCreate) createSpec() (*ScreeningAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &ScreeningAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(screeningalert.Table, sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(screeningalert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AlertType(); ok {
		_spec.SetField(screeningalert.FieldAlertType, field.TypeEnum, value)
		_node.AlertType = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(screeningalert.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.DeltaScore(); ok {
		_spec.SetField(screeningalert.FieldDeltaScore, field.TypeInt, value)
		_node.DeltaScore = value
	}
	if value, ok := _c.mutation.WindowDays(); ok {
		_spec.SetField(screeningalert.FieldWindowDays, field.TypeInt, value)
		_node.WindowDays = value
	}
	if value, ok := _c.mutation.IsResolved(); ok {
		_spec.SetField(screeningalert.FieldIsResolved, field.TypeBool, value)
		_node.IsResolved = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(screeningalert.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScreeningIDs(); len(nodes) > 0 {
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
		_node.ScreeningResultID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScreeningAlertCreateBulk is the builder for creating many ScreeningAlert entities in bulk.
type ScreeningAlertCreateBulk struct {
	config
	err      error
	builders []*ScreeningAlertCreate
}

// Save creates the ScreeningAlert entities in the database.
func (_c *ScreeningAlertCreateBulk) Save(ctx context.Context) ([]*ScreeningAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScreeningAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScreeningAlertMutation)
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
func (_c *ScreeningAlertCreateBulk) SaveX(ctx context.Context) []*ScreeningAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScreeningAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScreeningAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
