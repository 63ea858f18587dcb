// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
	"github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
)

// UtilityPriceUpdate is the builder for updating UtilityPrice entities.
type UtilityPriceUpdate struct {
	config
	hooks    []Hook
	mutation *UtilityPriceMutation
}

// Where appends a list predicates to the UtilityPriceUpdate builder.
func (_u *UtilityPriceUpdate) Where(ps ...predicate.UtilityPrice) *UtilityPriceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUtilityType sets the "utility_type" field.
func (_u *UtilityPriceUpdate) SetUtilityType(v string) *UtilityPriceUpdate {
	_u.mutation.SetUtilityType(v)
	return _u
}

// SetNillableUtilityType sets the "utility_type" field if the given value is not nil.
func (_u *UtilityPriceUpdate) SetNillableUtilityType(v *string) *UtilityPriceUpdate {
	if v != nil {
		_u.SetUtilityType(*v)
	}
	return _u
}

// SetPricePerUnit sets the "price_per_unit" field.
func (_u *UtilityPriceUpdate) SetPricePerUnit(v float64) *UtilityPriceUpdate {
	_u.mutation.ResetPricePerUnit()
	_u.mutation.SetPricePerUnit(v)
	return _u
}

// SetNillablePricePerUnit sets the "price_per_unit" field if the given value is not nil.
func (_u *UtilityPriceUpdate) SetNillablePricePerUnit(v *float64) *UtilityPriceUpdate {
	if v != nil {
		_u.SetPricePerUnit(*v)
	}
	return _u
}

// AddPricePerUnit adds value to the "price_per_unit" field.
func (_u *UtilityPriceUpdate) AddPricePerUnit(v float64) *UtilityPriceUpdate {
	_u.mutation.AddPricePerUnit(v)
	return _u
}

// SetUnitName sets the "unit_name" field.
func (_u *UtilityPriceUpdate) SetUnitName(v string) *UtilityPriceUpdate {
	_u.mutation.SetUnitName(v)
	return _u
}

// SetNillableUnitName sets the "unit_name" field if the given value is not nil.
func (_u *UtilityPriceUpdate) SetNillableUnitName(v *string) *UtilityPriceUpdate {
	if v != nil {
		_u.SetUnitName(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *UtilityPriceUpdate) SetCurrency(v string) *UtilityPriceUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *UtilityPriceUpdate) SetNillableCurrency(v *string) *UtilityPriceUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *UtilityPriceUpdate) SetEffectiveFrom(v time.Time) *UtilityPriceUpdate {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *UtilityPriceUpdate) SetNillableEffectiveFrom(v *time.Time) *UtilityPriceUpdate {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetEffectiveUntil sets the "effective_until" field.
func (_u *UtilityPriceUpdate) SetEffectiveUntil(v time.Time) *UtilityPriceUpdate {
	_u.mutation.SetEffectiveUntil(v)
	return _u
}

// SetNillableEffectiveUntil sets the "effective_until" field if the given value is not nil.
func (_u *UtilityPriceUpdate) SetNillableEffectiveUntil(v *time.Time) *UtilityPriceUpdate {
	if v != nil {
		_u.SetEffectiveUntil(*v)
	}
	return _u
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (_u *UtilityPriceUpdate) ClearEffectiveUntil() *UtilityPriceUpdate {
	_u.mutation.ClearEffectiveUntil()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UtilityPriceUpdate) SetCreatedAt(v time.Time) *UtilityPriceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UtilityPriceUpdate) SetNillableCreatedAt(v *time.Time) *UtilityPriceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the UtilityPriceMutation object of the builder.
func (_u *UtilityPriceUpdate) Mutation() *UtilityPriceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UtilityPriceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtilityPriceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UtilityPriceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtilityPriceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtilityPriceUpdate) check() error {
	if v, ok := _u.mutation.UtilityType(); ok {
		if err := utilityprice.UtilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "utility_type", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.utility_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitName(); ok {
		if err := utilityprice.UnitNameValidator(v); err != nil {
			return &ValidationError{Name: "unit_name", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.unit_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := utilityprice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *UtilityPriceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utilityprice.Table, utilityprice.Columns, sqlgraph.NewFieldSpec(utilityprice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UtilityType(); ok {
		_spec.SetField(utilityprice.FieldUtilityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PricePerUnit(); ok {
		_spec.SetField(utilityprice.FieldPricePerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerUnit(); ok {
		_spec.AddField(utilityprice.FieldPricePerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitName(); ok {
		_spec.SetField(utilityprice.FieldUnitName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(utilityprice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(utilityprice.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveUntil(); ok {
		_spec.SetField(utilityprice.FieldEffectiveUntil, field.TypeTime, value)
	}
	if _u.mutation.EffectiveUntilCleared() {
		_spec.ClearField(utilityprice.FieldEffectiveUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(utilityprice.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utilityprice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UtilityPriceUpdateOne is the builder for updating a single UtilityPrice entity.
type UtilityPriceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UtilityPriceMutation
}

// SetUtilityType sets the "utility_type" field.
func (_u *UtilityPriceUpdateOne) SetUtilityType(v string) *UtilityPriceUpdateOne {
	_u.mutation.SetUtilityType(v)
	return _u
}

// SetNillableUtilityType sets the "utility_type" field if the given value is not nil.
func (_u *UtilityPriceUpdateOne) SetNillableUtilityType(v *string) *UtilityPriceUpdateOne {
	if v != nil {
		_u.SetUtilityType(*v)
	}
	return _u
}

// SetPricePerUnit sets the "price_per_unit" field.
func (_u *UtilityPriceUpdateOne) SetPricePerUnit(v float64) *UtilityPriceUpdateOne {
	_u.mutation.ResetPricePerUnit()
	_u.mutation.SetPricePerUnit(v)
	return _u
}

// SetNillablePricePerUnit sets the "price_per_unit" field if the given value is not nil.
func (_u *UtilityPriceUpdateOne) SetNillablePricePerUnit(v *float64) *UtilityPriceUpdateOne {
	if v != nil {
		_u.SetPricePerUnit(*v)
	}
	return _u
}

// AddPricePerUnit adds value to the "price_per_unit" field.
func (_u *UtilityPriceUpdateOne) AddPricePerUnit(v float64) *UtilityPriceUpdateOne {
	_u.mutation.AddPricePerUnit(v)
	return _u
}

// SetUnitName sets the "unit_name" field.
func (_u *UtilityPriceUpdateOne) SetUnitName(v string) *UtilityPriceUpdateOne {
	_u.mutation.SetUnitName(v)
	return _u
}

// SetNillableUnitName sets the "unit_name" field if the given value is not nil.
func (_u *UtilityPriceUpdateOne) SetNillableUnitName(v *string) *UtilityPriceUpdateOne {
	if v != nil {
		_u.SetUnitName(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *UtilityPriceUpdateOne) SetCurrency(v string) *UtilityPriceUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *UtilityPriceUpdateOne) SetNillableCurrency(v *string) *UtilityPriceUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetEffectiveFrom sets the "effective_from" field.
func (_u *UtilityPriceUpdateOne) SetEffectiveFrom(v time.Time) *UtilityPriceUpdateOne {
	_u.mutation.SetEffectiveFrom(v)
	return _u
}

// SetNillableEffectiveFrom sets the "effective_from" field if the given value is not nil.
func (_u *UtilityPriceUpdateOne) SetNillableEffectiveFrom(v *time.Time) *UtilityPriceUpdateOne {
	if v != nil {
		_u.SetEffectiveFrom(*v)
	}
	return _u
}

// SetEffectiveUntil sets the "effective_until" field.
func (_u *UtilityPriceUpdateOne) SetEffectiveUntil(v time.Time) *UtilityPriceUpdateOne {
	_u.mutation.SetEffectiveUntil(v)
	return _u
}

// SetNillableEffectiveUntil sets the "effective_until" field if the given value is not nil.
func (_u *UtilityPriceUpdateOne) SetNillableEffectiveUntil(v *time.Time) *UtilityPriceUpdateOne {
	if v != nil {
		_u.SetEffectiveUntil(*v)
	}
	return _u
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (_u *UtilityPriceUpdateOne) ClearEffectiveUntil() *UtilityPriceUpdateOne {
	_u.mutation.ClearEffectiveUntil()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *UtilityPriceUpdateOne) SetCreatedAt(v time.Time) *UtilityPriceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *UtilityPriceUpdateOne) SetNillableCreatedAt(v *time.Time) *UtilityPriceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the UtilityPriceMutation object of the builder.
func (_u *UtilityPriceUpdateOne) Mutation() *UtilityPriceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UtilityPriceUpdate builder.
func (_u *UtilityPriceUpdateOne) Where(ps ...predicate.UtilityPrice) *UtilityPriceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UtilityPriceUpdateOne) Select(field string, fields ...string) *UtilityPriceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UtilityPrice entity.
func (_u *UtilityPriceUpdateOne) Save(ctx context.Context) (*UtilityPrice, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UtilityPriceUpdateOne) SaveX(ctx context.Context) *UtilityPrice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UtilityPriceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UtilityPriceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UtilityPriceUpdateOne) check() error {
	if v, ok := _u.mutation.UtilityType(); ok {
		if err := utilityprice.UtilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "utility_type", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.utility_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitName(); ok {
		if err := utilityprice.UnitNameValidator(v); err != nil {
			return &ValidationError{Name: "unit_name", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.unit_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := utilityprice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.currency": %w`, err)}
		}
	}
	return nil
}

func (_u *UtilityPriceUpdateOne) sqlSave(ctx context.Context) (_node *UtilityPrice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(utilityprice.Table, utilityprice.Columns, sqlgraph.NewFieldSpec(utilityprice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UtilityPrice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, utilityprice.FieldID)
		for _, f := range fields {
			if !utilityprice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != utilityprice.FieldID {
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
	if value, ok := _u.mutation.UtilityType(); ok {
		_spec.SetField(utilityprice.FieldUtilityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PricePerUnit(); ok {
		_spec.SetField(utilityprice.FieldPricePerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerUnit(); ok {
		_spec.AddField(utilityprice.FieldPricePerUnit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UnitName(); ok {
		_spec.SetField(utilityprice.FieldUnitName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(utilityprice.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.EffectiveFrom(); ok {
		_spec.SetField(utilityprice.FieldEffectiveFrom, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EffectiveUntil(); ok {
		_spec.SetField(utilityprice.FieldEffectiveUntil, field.TypeTime, value)
	}
	if _u.mutation.EffectiveUntilCleared() {
		_spec.ClearField(utilityprice.FieldEffectiveUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(utilityprice.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &UtilityPrice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{utilityprice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
