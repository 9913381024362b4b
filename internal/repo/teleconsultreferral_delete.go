// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// TeleconsultReferralDelete is the builder for deleting a TeleconsultReferral entity.
type TeleconsultReferralDelete struct {
	config
	hooks    []Hook
	mutation *TeleconsultReferralMutation
}

// Where appends a list predicates to the TeleconsultReferralDelete builder.
func (_d *TeleconsultReferralDelete) Where(ps ...predicate.TeleconsultReferral) *TeleconsultReferralDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TeleconsultReferralDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TeleconsultReferralDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TeleconsultReferralDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(teleconsultreferral.Table, sqlgraph.NewFieldSpec(teleconsultreferral.FieldID, field.TypeUUID))
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

// TeleconsultReferralDeleteOne is the builder for deleting a single TeleconsultReferral entity.
type TeleconsultReferralDeleteOne struct {
	_d *TeleconsultReferralDelete
}

// Where appends a list predicates to the TeleconsultReferralDelete builder.
func (_d *TeleconsultReferralDeleteOne) Where(ps ...predicate.TeleconsultReferral) *TeleconsultReferralDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TeleconsultReferralDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{teleconsultreferral.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TeleconsultReferralDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
