// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/moodentry"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// MoodEntryDelete is the builder for deleting a MoodEntry entity.
type MoodEntryDelete struct {
	config
	hooks    []Hook
	mutation *MoodEntryMutation
}

// Where appends a list predicates to the MoodEntryDelete builder.
func (_d *MoodEntryDelete) Where(ps ...predicate.MoodEntry) *MoodEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MoodEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MoodEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MoodEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(moodentry.Table, sqlgraph.NewFieldSpec(moodentry.FieldID, field.TypeUUID))
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

// MoodEntryDeleteOne is the builder for deleting a single MoodEntry entity.
type MoodEntryDeleteOne struct {
	_d *MoodEntryDelete
}

// Where appends a list predicates to the MoodEntryDelete builder.
func (_d *MoodEntryDeleteOne) Where(ps ...predicate.MoodEntry) *MoodEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MoodEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{moodentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MoodEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
