// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
)

// UtilityPriceCreate is the builder for creating a UtilityPrice entity.
type UtilityPriceCreate struct {
	config
	mutation *UtilityPriceMutation
	hooks    []Hook
}

// SetUtilityType sets the "utility_type" field.
func (_c *UtilityPriceCreate) SetUtilityType(v string) *UtilityPriceCreate {
	_c.mutation.SetUtilityType(v)
	return _c
}

// SetPricePerUnit sets the "price_per_unit" field.
func (_c *UtilityPriceCreate) SetPricePerUnit(v float64) *UtilityPriceCreate {
	_c.mutation.SetPricePerUnit(v)
	return _c
}

// SetUnitName sets the "unit_name" field.
func (_c *UtilityPriceCreate) SetUnitName(v string) *UtilityPriceCreate {
	_c.mutation.SetUnitName(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *UtilityPriceCreate) SetCurrency(v string) *UtilityPriceCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetEffectiveFrom sets the "effective_from" field.
func (_c *UtilityPriceCreate) SetEffectiveFrom(v time.Time) *UtilityPriceCreate {
	_c.mutation.SetEffectiveFrom(v)
	return _c
}

// SetEffectiveUntil sets the "effective_until" field.
func (_c *UtilityPriceCreate) SetEffectiveUntil(v time.Time) *UtilityPriceCreate {
	_c.mutation.SetEffectiveUntil(v)
	return _c
}

// SetNillableEffectiveUntil sets the "effective_until" field if the given value is not nil.
func (_c *UtilityPriceCreate) SetNillableEffectiveUntil(v *time.Time) *UtilityPriceCreate {
	if v != nil {
		_c.SetEffectiveUntil(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UtilityPriceCreate) SetCreatedAt(v time.Time) *UtilityPriceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UtilityPriceCreate) SetNillableCreatedAt(v *time.Time) *UtilityPriceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UtilityPriceCreate) SetID(v uuid.UUID) *UtilityPriceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UtilityPriceCreate) SetNillableID(v *uuid.UUID) *UtilityPriceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UtilityPriceMutation object of the builder.
func (_c *UtilityPriceCreate) Mutation() *UtilityPriceMutation {
	return _c.mutation
}

// Save creates the UtilityPrice in the database.
func (_c *UtilityPriceCreate) Save(ctx context.Context) (*UtilityPrice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UtilityPriceCreate) SaveX(ctx context.Context) *UtilityPrice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtilityPriceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtilityPriceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UtilityPriceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := utilityprice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := utilityprice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UtilityPriceCreate) check() error {
	if _, ok := _c.mutation.UtilityType(); !ok {
		return &ValidationError{Name: "utility_type", err: errors.New(`ent: missing required field "UtilityPrice.utility_type"`)}
	}
	if v, ok := _c.mutation.UtilityType(); ok {
		if err := utilityprice.UtilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "utility_type", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.utility_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PricePerUnit(); !ok {
		return &ValidationError{Name: "price_per_unit", err: errors.New(`ent: missing required field "UtilityPrice.price_per_unit"`)}
	}
	if _, ok := _c.mutation.UnitName(); !ok {
		return &ValidationError{Name: "unit_name", err: errors.New(`ent: missing required field "UtilityPrice.unit_name"`)}
	}
	if v, ok := _c.mutation.UnitName(); ok {
		if err := utilityprice.UnitNameValidator(v); err != nil {
			return &ValidationError{Name: "unit_name", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.unit_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "UtilityPrice.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := utilityprice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "UtilityPrice.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EffectiveFrom(); !ok {
		return &ValidationError{Name: "effective_from", err: errors.New(`ent: missing required field "UtilityPrice.effective_from"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UtilityPrice.created_at"`)}
	}
	return nil
}

func (_c *UtilityPriceCreate) sqlSave(ctx context.Context) (*UtilityPrice, error) {
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

func (_c *UtilityPriceCreate) createSpec() (*UtilityPrice, *sqlgraph.CreateSpec) {
	var (
		_node = &UtilityPrice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(utilityprice.Table, sqlgraph.NewFieldSpec(utilityprice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UtilityType(); ok {
		_spec.SetField(utilityprice.FieldUtilityType, field.TypeString, value)
		_node.UtilityType = value
	}
	if value, ok := _c.mutation.PricePerUnit(); ok {
		_spec.SetField(utilityprice.FieldPricePerUnit, field.TypeFloat64, value)
		_node.PricePerUnit = value
	}
	if value, ok := _c.mutation.UnitName(); ok {
		_spec.SetField(utilityprice.FieldUnitName, field.TypeString, value)
		_node.UnitName = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(utilityprice.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.EffectiveFrom(); ok {
		_spec.SetField(utilityprice.FieldEffectiveFrom, field.TypeTime, value)
		_node.EffectiveFrom = value
	}
	if value, ok := _c.mutation.EffectiveUntil(); ok {
		_spec.SetField(utilityprice.FieldEffectiveUntil, field.TypeTime, value)
		_node.EffectiveUntil = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(utilityprice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UtilityPriceCreateBulk is the builder for creating many UtilityPrice entities in bulk.
type UtilityPriceCreateBulk struct {
	config
	err      error
	builders []*UtilityPriceCreate
}

// Save creates the UtilityPrice entities in the database.
func (_c *UtilityPriceCreateBulk) Save(ctx context.Context) ([]*UtilityPrice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UtilityPrice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UtilityPriceMutation)
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
func (_c *UtilityPriceCreateBulk) SaveX(ctx context.Context) []*UtilityPrice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UtilityPriceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UtilityPriceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
