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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/moodentry"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
)

// MoodEntryCreate is the builder for creating a MoodEntry entity.
type MoodEntryCreate struct {
	config
	mutation *MoodEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MoodEntryCreate) SetCreatedAt(v time.Time) *MoodEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MoodEntryCreate) SetNillableCreatedAt(v *time.Time) *MoodEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *MoodEntryCreate) SetPatientID(v uuid.UUID) *MoodEntryCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetMood sets the "mood" field.
func (_c *MoodEntryCreate) SetMood(v int) *MoodEntryCreate {
	_c.mutation.SetMood(v)
	return _c
}

// SetEnergy sets the "energy" field.
func (_c *MoodEntryCreate) SetEnergy(v int) *MoodEntryCreate {
	_c.mutation.SetEnergy(v)
	return _c
}

// SetSleepQuality sets the "sleep_quality" field.
func (_c *MoodEntryCreate) SetSleepQuality(v int) *MoodEntryCreate {
	_c.mutation.SetSleepQuality(v)
	return _c
}

// SetStress sets the "stress" field.
func (_c *MoodEntryCreate) SetStress(v int) *MoodEntryCreate {
	_c.mutation.SetStress(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *MoodEntryCreate) SetNotes(v string) *MoodEntryCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *MoodEntryCreate) SetNillableNotes(v *string) *MoodEntryCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MoodEntryCreate) SetID(v uuid.UUID) *MoodEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MoodEntryCreate) SetNillableID(v *uuid.UUID) *MoodEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *MoodEntryCreate) SetPatient(v *Patient) *MoodEntryCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the MoodEntryMutation object of the builder.
func (_c *MoodEntryCreate) Mutation() *MoodEntryMutation {
	return _c.mutation
}

// Save creates the MoodEntry in the database.
func (_c *MoodEntryCreate) Save(ctx context.Context) (*MoodEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MoodEntryCreate) SaveX(ctx context.Context) *MoodEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MoodEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MoodEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MoodEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := moodentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := moodentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MoodEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MoodEntry.created_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "MoodEntry.patient_id"`)}
	}
	if _, ok := _c.mutation.Mood(); !ok {
		return &ValidationError{Name: "mood", err: errors.New(`repo: missing required field "MoodEntry.mood"`)}
	}
	if v, ok := _c.mutation.Mood(); ok {
		if err := moodentry.MoodValidator(v); err != nil {
			return &ValidationError{Name: "mood", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.mood": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Energy(); !ok {
		return &ValidationError{Name: "energy", err: errors.New(`repo: missing required field "MoodEntry.energy"`)}
	}
	if v, ok := _c.mutation.Energy(); ok {
		if err := moodentry.EnergyValidator(v); err != nil {
			return &ValidationError{Name: "energy", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.energy": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SleepQuality(); !ok {
		return &ValidationError{Name: "sleep_quality", err: errors.New(`repo: missing required field "MoodEntry.sleep_quality"`)}
	}
	if v, ok := _c.mutation.SleepQuality(); ok {
		if err := moodentry.SleepQualityValidator(v); err != nil {
			return &ValidationError{Name: "sleep_quality", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.sleep_quality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stress(); !ok {
		return &ValidationError{Name: "stress", err: errors.New(`repo: missing required field "MoodEntry.stress"`)}
	}
	if v, ok := _c.mutation.Stress(); ok {
		if err := moodentry.StressValidator(v); err != nil {
			return &ValidationError{Name: "stress", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.stress": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "MoodEntry.patient"`)}
	}
	return nil
}

func (_c *MoodEntryCreate) sqlSave(ctx context.Context) (*MoodEntry, error) {
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

func (_c *MoodEntryCreate) createSpec() (*MoodEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MoodEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(moodentry.Table, sqlgraph.NewFieldSpec(moodentry.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(moodentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Mood(); ok {
		_spec.SetField(moodentry.FieldMood, field.TypeInt, value)
		_node.Mood = value
	}
	if value, ok := _c.mutation.Energy(); ok {
		_spec.SetField(moodentry.FieldEnergy, field.TypeInt, value)
		_node.Energy = value
	}
	if value, ok := _c.mutation.SleepQuality(); ok {
		_spec.SetField(moodentry.FieldSleepQuality, field.TypeInt, value)
		_node.SleepQuality = value
	}
	if value, ok := _c.mutation.Stress(); ok {
		_spec.SetField(moodentry.FieldStress, field.TypeInt, value)
		_node.Stress = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(moodentry.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   moodentry.PatientTable,
			Columns: []string{moodentry.PatientColumn},
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
	return _node, _spec
}

// MoodEntryCreateBulk is the builder for creating many MoodEntry entities in bulk.
type MoodEntryCreateBulk struct {
	config
	err      error
	builders []*MoodEntryCreate
}

// Save creates the MoodEntry entities in the database.
func (_c *MoodEntryCreateBulk) Save(ctx context.Context) ([]*MoodEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MoodEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MoodEntryMutation)
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
func (_c *MoodEntryCreateBulk) SaveX(ctx context.Context) []*MoodEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MoodEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MoodEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
