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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
)

// SelfCareExerciseCreate is the builder for creating a SelfCareExercise entity.
type SelfCareExerciseCreate struct {
	config
	mutation *SelfCareExerciseMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SelfCareExerciseCreate) SetCreatedAt(v time.Time) *SelfCareExerciseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SelfCareExerciseCreate) SetNillableCreatedAt(v *time.Time) *SelfCareExerciseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SelfCareExerciseCreate) SetUpdatedAt(v time.Time) *SelfCareExerciseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SelfCareExerciseCreate) SetNillableUpdatedAt(v *time.Time) *SelfCareExerciseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSlug sets the "slug" field.
func (_c *SelfCareExerciseCreate) SetSlug(v string) *SelfCareExerciseCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SelfCareExerciseCreate) SetName(v string) *SelfCareExerciseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SelfCareExerciseCreate) SetDescription(v string) *SelfCareExerciseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetExerciseType sets the "exercise_type" field.
func (_c *SelfCareExerciseCreate) SetExerciseType(v selfcareexercise.ExerciseType) *SelfCareExerciseCreate {
	_c.mutation.SetExerciseType(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SelfCareExerciseCreate) SetDurationMinutes(v int) *SelfCareExerciseCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *SelfCareExerciseCreate) SetDifficulty(v selfcareexercise.Difficulty) *SelfCareExerciseCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *SelfCareExerciseCreate) SetNillableDifficulty(v *selfcareexercise.Difficulty) *SelfCareExerciseCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetInstructions sets the "instructions" field.
func (_c *SelfCareExerciseCreate) SetInstructions(v string) *SelfCareExerciseCreate {
	_c.mutation.SetInstructions(v)
	return _c
}

// SetBenefits sets the "benefits" field.
func (_c *SelfCareExerciseCreate) SetBenefits(v string) *SelfCareExerciseCreate {
	_c.mutation.SetBenefits(v)
	return _c
}

// SetNillableBenefits sets the "benefits" field if the given value is not nil.
func (_c *SelfCareExerciseCreate) SetNillableBenefits(v *string) *SelfCareExerciseCreate {
	if v != nil {
		_c.SetBenefits(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SelfCareExerciseCreate) SetIsActive(v bool) *SelfCareExerciseCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SelfCareExerciseCreate) SetNillableIsActive(v *bool) *SelfCareExerciseCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SelfCareExerciseCreate) SetID(v uuid.UUID) *SelfCareExerciseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SelfCareExerciseCreate) SetNillableID(v *uuid.UUID) *SelfCareExerciseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SelfCareExerciseMutation object of the builder.
func (_c *SelfCareExerciseCreate) Mutation() *SelfCareExerciseMutation {
	return _c.mutation
}

// Save creates the SelfCareExercise in the database.
func (_c *SelfCareExerciseCreate) Save(ctx context.Context) (*SelfCareExercise, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SelfCareExerciseCreate) SaveX(ctx context.Context) *SelfCareExercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelfCareExerciseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelfCareExerciseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SelfCareExerciseCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := selfcareexercise.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := selfcareexercise.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := selfcareexercise.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := selfcareexercise.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := selfcareexercise.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SelfCareExerciseCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SelfCareExercise.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SelfCareExercise.updated_at"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`repo: missing required field "SelfCareExercise.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := selfcareexercise.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "SelfCareExercise.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := selfcareexercise.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "SelfCareExercise.description"`)}
	}
	if _, ok := _c.mutation.ExerciseType(); !ok {
		return &ValidationError{Name: "exercise_type", err: errors.New(`repo: missing required field "SelfCareExercise.exercise_type"`)}
	}
	if v, ok := _c.mutation.ExerciseType(); ok {
		if err := selfcareexercise.ExerciseTypeValidator(v); err != nil {
			return &ValidationError{Name: "exercise_type", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.exercise_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "SelfCareExercise.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := selfcareexercise.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`repo: missing required field "SelfCareExercise.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := selfcareexercise.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`repo: validator failed for field "SelfCareExercise.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Instructions(); !ok {
		return &ValidationError{Name: "instructions", err: errors.New(`repo: missing required field "SelfCareExercise.instructions"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "SelfCareExercise.is_active"`)}
	}
	return nil
}

func (_c *SelfCareExerciseCreate) sqlSave(ctx context.Context) (*SelfCareExercise, error) {
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

func (_c *SelfCareExerciseCreate) createSpec() (*SelfCareExercise, *sqlgraph.CreateSpec) {
	var (
		_node = &SelfCareExercise{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(selfcareexercise.Table, sqlgraph.NewFieldSpec(selfcareexercise.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(selfcareexercise.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(selfcareexercise.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(selfcareexercise.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(selfcareexercise.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(selfcareexercise.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ExerciseType(); ok {
		_spec.SetField(selfcareexercise.FieldExerciseType, field.TypeEnum, value)
		_node.ExerciseType = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(selfcareexercise.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(selfcareexercise.FieldDifficulty, field.TypeEnum, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Instructions(); ok {
		_spec.SetField(selfcareexercise.FieldInstructions, field.TypeString, value)
		_node.Instructions = value
	}
	if value, ok := _c.mutation.Benefits(); ok {
		_spec.SetField(selfcareexercise.FieldBenefits, field.TypeString, value)
		_node.Benefits = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(selfcareexercise.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// SelfCareExerciseCreateBulk is the builder for creating many SelfCareExercise entities in bulk.
type SelfCareExerciseCreateBulk struct {
	config
	err      error
	builders []*SelfCareExerciseCreate
}

// Save creates the SelfCareExercise entities in the database.
func (_c *SelfCareExerciseCreateBulk) Save(ctx context.Context) ([]*SelfCareExercise, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SelfCareExercise, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SelfCareExerciseMutation)
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
func (_c *SelfCareExerciseCreateBulk) SaveX(ctx context.Context) []*SelfCareExercise {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SelfCareExerciseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SelfCareExerciseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
