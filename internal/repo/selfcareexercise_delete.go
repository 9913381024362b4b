// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
)

// SelfCareExerciseDelete is the builder for deleting a SelfCareExercise entity.
type SelfCareExerciseDelete struct {
	config
	hooks    []Hook
	mutation *SelfCareExerciseMutation
}

// Where appends a list predicates to the SelfCareExerciseDelete builder.
func (_d *SelfCareExerciseDelete) Where(ps ...predicate.SelfCareExercise) *SelfCareExerciseDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SelfCareExerciseDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SelfCareExerciseDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SelfCareExerciseDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(selfcareexercise.Table, sqlgraph.NewFieldSpec(selfcareexercise.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SelfCareExerciseDeleteOne is the builder for deleting a single SelfCareExercise entity.
type SelfCareExerciseDeleteOne struct {
	_d *SelfCareExerciseDelete
}

// Where appends a list predicates to the SelfCareExerciseDelete builder.
func (_d *SelfCareExerciseDeleteOne) Where(ps ...predicate.SelfCareExercise) *SelfCareExerciseDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SelfCareExerciseDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{selfcareexercise.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SelfCareExerciseDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
