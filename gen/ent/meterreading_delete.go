// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
)

// MeterReadingDelete is the builder for deleting a MeterReading entity.
type MeterReadingDelete struct {
	config
	hooks    []Hook
	mutation *MeterReadingMutation
}

// Where appends a list predicates to the MeterReadingDelete builder.
func (_d *MeterReadingDelete) Where(ps ...predicate.MeterReading) *MeterReadingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MeterReadingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeterReadingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MeterReadingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(meterreading.Table, sqlgraph.NewFieldSpec(meterreading.FieldID, field.TypeUUID))
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

// MeterReadingDeleteOne is the builder for deleting a single MeterReading entity.
type MeterReadingDeleteOne struct {
	_d *MeterReadingDelete
}

// Where appends a list predicates to the MeterReadingDelete builder.
func (_d *MeterReadingDeleteOne) Where(ps ...predicate.MeterReading) *MeterReadingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MeterReadingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{meterreading.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MeterReadingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
