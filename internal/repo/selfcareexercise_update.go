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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
)

// SelfCareExerciseUpdate is the builder for updating SelfCareExercise entities.
type SelfCareExerciseUpdate struct {
	config
	hooks    []Hook
	mutation *SelfCareExerciseMutation
}

// Where appends a list predicates to the SelfCareExerciseUpdate builder.
func (_u *SelfCareExerciseUpdate) Where(ps ...predicate.SelfCareExercise) *SelfCareExerciseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SelfCareExerciseUpdate) SetUpdatedAt(v time.Time) *SelfCareExerciseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SelfCareExerciseUpdate) SetName(v string) *SelfCareExerciseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableName(v *string) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SelfCareExerciseUpdate) SetDescription(v string) *SelfCareExerciseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableDescription(v *string) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *SelfCareExerciseUpdate) SetExerciseType(v selfcareexercise.ExerciseType) *SelfCareExerciseUpdate {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableExerciseType(v *selfcareexercise.ExerciseType) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SelfCareExerciseUpdate) SetDurationMinutes(v int) *SelfCareExerciseUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableDurationMinutes(v *int) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SelfCareExerciseUpdate) AddDurationMinutes(v int) *SelfCareExerciseUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SelfCareExerciseUpdate) SetDifficulty(v selfcareexercise.Difficulty) *SelfCareExerciseUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableDifficulty(v *selfcareexercise.Difficulty) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *SelfCareExerciseUpdate) SetInstructions(v string) *SelfCareExerciseUpdate {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableInstructions(v *string) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// SetBenefits sets the "benefits" field.
func (_u *SelfCareExerciseUpdate) SetBenefits(v string) *SelfCareExerciseUpdate {
	_u.mutation.SetBenefits(v)
	return _u
}

// SetNillableBenefits sets the "benefits" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableBenefits(v *string) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetBenefits(*v)
	}
	return _u
}

// ClearBenefits clears the value of the "benefits" field.
func (_u *SelfCareExerciseUpdate) ClearBenefits() *SelfCareExerciseUpdate {
	_u.mutation.ClearBenefits()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SelfCareExerciseUpdate) SetIsActive(v bool) *SelfCareExerciseUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SelfCareExerciseUpdate) SetNillableIsActive(v *bool) *SelfCareExerciseUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the SelfCareExerciseMutation object of the builder.
func (_u *SelfCareExerciseUpdate) Mutation() *SelfCareExerciseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SelfCareExerciseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelfCareExerciseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SelfCareExerciseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelfCareExerciseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SelfCareExerciseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := selfcareexercise.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SelfCareExerciseUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := selfcareexercise.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseType(); ok {
		if err := selfcareexercise.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.exercise_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := selfcareexercise.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := selfcareexercise.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *SelfCareExerciseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(selfcareexercise.Table, selfcareexercise.Columns, sqlgraph.NewFieldSpec(selfcareexercise.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(selfcareexercise.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(selfcareexercise.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(selfcareexercise.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(selfcareexercise.FieldExerciseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(selfcareexercise.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(selfcareexercise.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(selfcareexercise.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(selfcareexercise.FieldInstructions, field.TypeString, value)
	}
	if value, ok := _u.mutation.Benefits(); ok {
		_spec.SetField(selfcareexercise.FieldBenefits, field.TypeString, value)
	}
	if _u.mutation.BenefitsCleared() {
		_spec.ClearField(selfcareexercise.FieldBenefits, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(selfcareexercise.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selfcareexercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SelfCareExerciseUpdateOne is the builder for updating a single SelfCareExercise entity.
type SelfCareExerciseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SelfCareExerciseMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SelfCareExerciseUpdateOne) SetUpdatedAt(v time.Time) *SelfCareExerciseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *SelfCareExerciseUpdateOne) SetName(v string) *SelfCareExerciseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableName(v *string) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SelfCareExerciseUpdateOne) SetDescription(v string) *SelfCareExerciseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableDescription(v *string) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetExerciseType sets the "exercise_type" field.
func (_u *SelfCareExerciseUpdateOne) SetExerciseType(v selfcareexercise.ExerciseType) *SelfCareExerciseUpdateOne {
	_u.mutation.SetExerciseType(v)
	return _u
}

// SetNillableExerciseType sets the "exercise_type" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableExerciseType(v *selfcareexercise.ExerciseType) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetExerciseType(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SelfCareExerciseUpdateOne) SetDurationMinutes(v int) *SelfCareExerciseUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableDurationMinutes(v *int) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SelfCareExerciseUpdateOne) AddDurationMinutes(v int) *SelfCareExerciseUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *SelfCareExerciseUpdateOne) SetDifficulty(v selfcareexercise.Difficulty) *SelfCareExerciseUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableDifficulty(v *selfcareexercise.Difficulty) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetInstructions sets the "instructions" field.
func (_u *SelfCareExerciseUpdateOne) SetInstructions(v string) *SelfCareExerciseUpdateOne {
	_u.mutation.SetInstructions(v)
	return _u
}

// SetNillableInstructions sets the "instructions" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableInstructions(v *string) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetInstructions(*v)
	}
	return _u
}

// SetBenefits sets the "benefits" field.
func (_u *SelfCareExerciseUpdateOne) SetBenefits(v string) *SelfCareExerciseUpdateOne {
	_u.mutation.SetBenefits(v)
	return _u
}

// SetNillableBenefits sets the "benefits" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableBenefits(v *string) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetBenefits(*v)
	}
	return _u
}

// ClearBenefits clears the value of the "benefits" field.
func (_u *SelfCareExerciseUpdateOne) ClearBenefits() *SelfCareExerciseUpdateOne {
	_u.mutation.ClearBenefits()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SelfCareExerciseUpdateOne) SetIsActive(v bool) *SelfCareExerciseUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SelfCareExerciseUpdateOne) SetNillableIsActive(v *bool) *SelfCareExerciseUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the SelfCareExerciseMutation object of the builder.
func (_u *SelfCareExerciseUpdateOne) Mutation() *SelfCareExerciseMutation {
	return _u.mutation
}

// Where appends a list predicates to the SelfCareExerciseUpdate builder.
func (_u *SelfCareExerciseUpdateOne) Where(ps ...predicate.SelfCareExercise) *SelfCareExerciseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SelfCareExerciseUpdateOne) Select(field string, fields ...string) *SelfCareExerciseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SelfCareExercise entity.
func (_u *SelfCareExerciseUpdateOne) Save(ctx context.Context) (*SelfCareExercise, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SelfCareExerciseUpdateOne) SaveX(ctx context.Context) *SelfCareExercise {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SelfCareExerciseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SelfCareExerciseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SelfCareExerciseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := selfcareexercise.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SelfCareExerciseUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := selfcareexercise.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseType(); ok {
		if err := selfcareexercise.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.exercise_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMinutes(); ok {
		if err := selfcareexercise.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := selfcareexercise.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *SelfCareExerciseUpdateOne) sqlSave(ctx context.Context) (_node *SelfCareExercise, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(selfcareexercise.Table, selfcareexercise.Columns, sqlgraph.NewFieldSpec(selfcareexercise.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SelfCareExercise.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, selfcareexercise.FieldID)
		for _, f := range fields {
			if !selfcareexercise.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != selfcareexercise.FieldID {
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
		_spec.SetField(selfcareexercise.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(selfcareexercise.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(selfcareexercise.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseType(); ok {
		_spec.SetField(selfcareexercise.FieldExerciseType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(selfcareexercise.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(selfcareexercise.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(selfcareexercise.FieldDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Instructions(); ok {
		_spec.SetField(selfcareexercise.FieldInstructions, field.TypeString, value)
	}
	if value, ok := _u.mutation.Benefits(); ok {
		_spec.SetField(selfcareexercise.FieldBenefits, field.TypeString, value)
	}
	if _u.mutation.BenefitsCleared() {
		_spec.ClearField(selfcareexercise.FieldBenefits, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(selfcareexercise.FieldIsActive, field.TypeBool, value)
	}
	_node = &SelfCareExercise{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{selfcareexercise.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
