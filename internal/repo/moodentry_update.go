// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/moodentry"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// MoodEntryUpdate is the builder for updating MoodEntry entities.
type MoodEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MoodEntryMutation
}

// Where appends a list predicates to the MoodEntryUpdate builder.
func (_u *MoodEntryUpdate) Where(ps ...predicate.MoodEntry) *MoodEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMood sets the "mood" field.
func (_u *MoodEntryUpdate) SetMood(v int) *MoodEntryUpdate {
	_u.mutation.ResetMood()
	_u.mutation.SetMood(v)
	return _u
}

// SetNillableMood sets the "mood" field if the given value is not nil.
func (_u *MoodEntryUpdate) SetNillableMood(v *int) *MoodEntryUpdate {
	if v != nil {
		_u.SetMood(*v)
	}
	return _u
}

// AddMood adds value to the "mood" field.
func (_u *MoodEntryUpdate) AddMood(v int) *MoodEntryUpdate {
	_u.mutation.AddMood(v)
	return _u
}

// SetEnergy sets the "energy" field.
func (_u *MoodEntryUpdate) SetEnergy(v int) *MoodEntryUpdate {
	_u.mutation.ResetEnergy()
	_u.mutation.SetEnergy(v)
	return _u
}

// SetNillableEnergy sets the "energy" field if the given value is not nil.
func (_u *MoodEntryUpdate) SetNillableEnergy(v *int) *MoodEntryUpdate {
	if v != nil {
		_u.SetEnergy(*v)
	}
	return _u
}

// AddEnergy adds value to the "energy" field.
func (_u *MoodEntryUpdate) AddEnergy(v int) *MoodEntryUpdate {
	_u.mutation.AddEnergy(v)
	return _u
}

// SetSleepQuality sets the "sleep_quality" field.
func (_u *MoodEntryUpdate) SetSleepQuality(v int) *MoodEntryUpdate {
	_u.mutation.ResetSleepQuality()
	_u.mutation.SetSleepQuality(v)
	return _u
}

// SetNillableSleepQuality sets the "sleep_quality" field if the given value is not nil.
func (_u *MoodEntryUpdate) SetNillableSleepQuality(v *int) *MoodEntryUpdate {
	if v != nil {
		_u.SetSleepQuality(*v)
	}
	return _u
}

// AddSleepQuality adds value to the "sleep_quality" field.
func (_u *MoodEntryUpdate) AddSleepQuality(v int) *MoodEntryUpdate {
	_u.mutation.AddSleepQuality(v)
	return _u
}

// SetStress sets the "stress" field.
func (_u *MoodEntryUpdate) SetStress(v int) *MoodEntryUpdate {
	_u.mutation.ResetStress()
	_u.mutation.SetStress(v)
	return _u
}

// SetNillableStress sets the "stress" field if the given value is not nil.
func (_u *MoodEntryUpdate) SetNillableStress(v *int) *MoodEntryUpdate {
	if v != nil {
		_u.SetStress(*v)
	}
	return _u
}

// AddStress adds value to the "stress" field.
func (_u *MoodEntryUpdate) AddStress(v int) *MoodEntryUpdate {
	_u.mutation.AddStress(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MoodEntryUpdate) SetNotes(v string) *MoodEntryUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MoodEntryUpdate) SetNillableNotes(v *string) *MoodEntryUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MoodEntryUpdate) ClearNotes() *MoodEntryUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the MoodEntryMutation object of the builder.
func (_u *MoodEntryUpdate) Mutation() *MoodEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MoodEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MoodEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MoodEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MoodEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MoodEntryUpdate) check() error {
	if v, ok := _u.mutation.Mood(); ok {
		if err := moodentry.MoodValidator(v); err != nil {
			return &ValidationError{Name: "mood", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.mood": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Energy(); ok {
		if err := moodentry.EnergyValidator(v); err != nil {
			return &ValidationError{Name: "energy", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.energy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SleepQuality(); ok {
		if err := moodentry.SleepQualityValidator(v); err != nil {
			return &ValidationError{Name: "sleep_quality", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.sleep_quality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stress(); ok {
		if err := moodentry.StressValidator(v); err != nil {
			return &ValidationError{Name: "stress", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.stress": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MoodEntry.patient"`)
	}
	return nil
}

func (_u *MoodEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moodentry.Table, moodentry.Columns, sqlgraph.NewFieldSpec(moodentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mood(); ok {
		_spec.SetField(moodentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMood(); ok {
		_spec.AddField(moodentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Energy(); ok {
		_spec.SetField(moodentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnergy(); ok {
		_spec.AddField(moodentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SleepQuality(); ok {
		_spec.SetField(moodentry.FieldSleepQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSleepQuality(); ok {
		_spec.AddField(moodentry.FieldSleepQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stress(); ok {
		_spec.SetField(moodentry.FieldStress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStress(); ok {
		_spec.AddField(moodentry.FieldStress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(moodentry.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(moodentry.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moodentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MoodEntryUpdateOne is the builder for updating a single MoodEntry entity.
type MoodEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MoodEntryMutation
}

// SetMood sets the "mood" field.
func (_u *MoodEntryUpdateOne) SetMood(v int) *MoodEntryUpdateOne {
	_u.mutation.ResetMood()
	_u.mutation.SetMood(v)
	return _u
}

// SetNillableMood sets the "mood" field if the given value is not nil.
func (_u *MoodEntryUpdateOne) SetNillableMood(v *int) *MoodEntryUpdateOne {
	if v != nil {
		_u.SetMood(*v)
	}
	return _u
}

// AddMood adds value to the "mood" field.
func (_u *MoodEntryUpdateOne) AddMood(v int) *MoodEntryUpdateOne {
	_u.mutation.AddMood(v)
	return _u
}

// SetEnergy sets the "energy" field.
func (_u *MoodEntryUpdateOne) SetEnergy(v int) *MoodEntryUpdateOne {
	_u.mutation.ResetEnergy()
	_u.mutation.SetEnergy(v)
	return _u
}

// SetNillableEnergy sets the "energy" field if the given value is not nil.
func (_u *MoodEntryUpdateOne) SetNillableEnergy(v *int) *MoodEntryUpdateOne {
	if v != nil {
		_u.SetEnergy(*v)
	}
	return _u
}

// AddEnergy adds value to the "energy" field.
func (_u *MoodEntryUpdateOne) AddEnergy(v int) *MoodEntryUpdateOne {
	_u.mutation.AddEnergy(v)
	return _u
}

// SetSleepQuality sets the "sleep_quality" field.
func (_u *MoodEntryUpdateOne) SetSleepQuality(v int) *MoodEntryUpdateOne {
	_u.mutation.ResetSleepQuality()
	_u.mutation.SetSleepQuality(v)
	return _u
}

// SetNillableSleepQuality sets the "sleep_quality" field if the given value is not nil.
func (_u *MoodEntryUpdateOne) SetNillableSleepQuality(v *int) *MoodEntryUpdateOne {
	if v != nil {
		_u.SetSleepQuality(*v)
	}
	return _u
}

// AddSleepQuality adds value to the "sleep_quality" field.
func (_u *MoodEntryUpdateOne) AddSleepQuality(v int) *MoodEntryUpdateOne {
	_u.mutation.AddSleepQuality(v)
	return _u
}

// SetStress sets the "stress" field.
func (_u *MoodEntryUpdateOne) SetStress(v int) *MoodEntryUpdateOne {
	_u.mutation.ResetStress()
	_u.mutation.SetStress(v)
	return _u
}

// SetNillableStress sets the "stress" field if the given value is not nil.
func (_u *MoodEntryUpdateOne) SetNillableStress(v *int) *MoodEntryUpdateOne {
	if v != nil {
		_u.SetStress(*v)
	}
	return _u
}

// AddStress adds value to the "stress" field.
func (_u *MoodEntryUpdateOne) AddStress(v int) *MoodEntryUpdateOne {
	_u.mutation.AddStress(v)
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MoodEntryUpdateOne) SetNotes(v string) *MoodEntryUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MoodEntryUpdateOne) SetNillableNotes(v *string) *MoodEntryUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MoodEntryUpdateOne) ClearNotes() *MoodEntryUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the MoodEntryMutation object of the builder.
func (_u *MoodEntryUpdateOne) Mutation() *MoodEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MoodEntryUpdate builder.
func (_u *MoodEntryUpdateOne) Where(ps ...predicate.MoodEntry) *MoodEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MoodEntryUpdateOne) Select(field string, fields ...string) *MoodEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MoodEntry entity.
func (_u *MoodEntryUpdateOne) Save(ctx context.Context) (*MoodEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MoodEntryUpdateOne) SaveX(ctx context.Context) *MoodEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MoodEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MoodEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MoodEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Mood(); ok {
		if err := moodentry.MoodValidator(v); err != nil {
			return &ValidationError{Name: "mood", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.mood": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Energy(); ok {
		if err := moodentry.EnergyValidator(v); err != nil {
			return &ValidationError{Name: "energy", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.energy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SleepQuality(); ok {
		if err := moodentry.SleepQualityValidator(v); err != nil {
			return &ValidationError{Name: "sleep_quality", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.sleep_quality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stress(); ok {
		if err := moodentry.StressValidator(v); err != nil {
			return &ValidationError{Name: "stress", err: fmt.Errorf(`repo: validator failed for field "MoodEntry.stress": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MoodEntry.patient"`)
	}
	return nil
}

func (_u *MoodEntryUpdateOne) sqlSave(ctx context.Context) (_node *MoodEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(moodentry.Table, moodentry.Columns, sqlgraph.NewFieldSpec(moodentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MoodEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, moodentry.FieldID)
		for _, f := range fields {
			if !moodentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != moodentry.FieldID {
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
	if value, ok := _u.mutation.Mood(); ok {
		_spec.SetField(moodentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMood(); ok {
		_spec.AddField(moodentry.FieldMood, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Energy(); ok {
		_spec.SetField(moodentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnergy(); ok {
		_spec.AddField(moodentry.FieldEnergy, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SleepQuality(); ok {
		_spec.SetField(moodentry.FieldSleepQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSleepQuality(); ok {
		_spec.AddField(moodentry.FieldSleepQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stress(); ok {
		_spec.SetField(moodentry.FieldStress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStress(); ok {
		_spec.AddField(moodentry.FieldStress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(moodentry.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(moodentry.FieldNotes, field.TypeString)
	}
	_node = &MoodEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{moodentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
