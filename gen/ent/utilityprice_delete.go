// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
	"github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
)

// UtilityPriceDelete is the builder for deleting a UtilityPrice entity.
type UtilityPriceDelete struct {
	config
	hooks    []Hook
	mutation *UtilityPriceMutation
}

// Where appends a list predicates to the UtilityPriceDelete builder.
func (_d *UtilityPriceDelete) Where(ps ...predicate.UtilityPrice) *UtilityPriceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *UtilityPriceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UtilityPriceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *UtilityPriceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(utilityprice.Table, sqlgraph.NewFieldSpec(utilityprice.FieldID, field.TypeUUID))
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

// UtilityPriceDeleteOne is the builder for deleting a single UtilityPrice entity.
type UtilityPriceDeleteOne struct {
	_d *UtilityPriceDelete
}

// Where appends a list predicates to the UtilityPriceDelete builder.
func (_d *UtilityPriceDeleteOne) Where(ps ...predicate.UtilityPrice) *UtilityPriceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *UtilityPriceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{utilityprice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *UtilityPriceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
