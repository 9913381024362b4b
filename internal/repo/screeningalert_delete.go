// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
)

// ScreeningAlertDelete is the builder for deleting a ScreeningAlert entity.
type ScreeningAlertDelete struct {
	config
	hooks    []Hook
	mutation *ScreeningAlertMutation
}

// Where appends a list predicates to the ScreeningAlertDelete builder.
func (_d *ScreeningAlertDelete) Where(ps ...predicate.ScreeningAlert) *ScreeningAlertDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScreeningAlertDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScreeningAlertDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScreeningAlertDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(screeningalert.Table, sqlgraph.NewFieldSpec(screeningalert.FieldID, field.TypeUUID))
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

// ScreeningAlertDeleteOne is the builder for deleting a single ScreeningAlert entity.
type ScreeningAlertDeleteOne struct {
	_d *ScreeningAlertDelete
}

// Where appends a list predicates to the ScreeningAlertDelete builder.
func (_d *ScreeningAlertDeleteOne) Where(ps ...predicate.ScreeningAlert) *ScreeningAlertDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScreeningAlertDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{screeningalert.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScreeningAlertDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
