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
	"github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
)

// MeterReadingCreate is the builder for creating a MeterReading entity.
type MeterReadingCreate struct {
	config
	mutation *MeterReadingMutation
	hooks    []Hook
}

// SetAddress sets the "address" field.
func (_c *MeterReadingCreate) SetAddress(v string) *MeterReadingCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetReadingDate sets the "reading_date" field.
func (_c *MeterReadingCreate) SetReadingDate(v time.Time) *MeterReadingCreate {
	_c.mutation.SetReadingDate(v)
	return _c
}

// SetWaterReading sets the "water_reading" field.
func (_c *MeterReadingCreate) SetWaterReading(v float64) *MeterReadingCreate {
	_c.mutation.SetWaterReading(v)
	return _c
}

// SetNillableWaterReading sets the "water_reading" field if the given value is not nil.
func (_c *MeterReadingCreate) SetNillableWaterReading(v *float64) *MeterReadingCreate {
	if v != nil {
		_c.SetWaterReading(*v)
	}
	return _c
}

// SetElectricityReading sets the "electricity_reading" field.
func (_c *MeterReadingCreate) SetElectricityReading(v float64) *MeterReadingCreate {
	_c.mutation.SetElectricityReading(v)
	return _c
}

// SetNillableElectricityReading sets the "electricity_reading" field if the given value is not nil.
func (_c *MeterReadingCreate) SetNillableElectricityReading(v *float64) *MeterReadingCreate {
	if v != nil {
		_c.SetElectricityReading(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *MeterReadingCreate) SetNotes(v string) *MeterReadingCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *MeterReadingCreate) SetNillableNotes(v *string) *MeterReadingCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MeterReadingCreate) SetCreatedAt(v time.Time) *MeterReadingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MeterReadingCreate) SetNillableCreatedAt(v *time.Time) *MeterReadingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MeterReadingCreate) SetID(v uuid.UUID) *MeterReadingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MeterReadingCreate) SetNillableID(v *uuid.UUID) *MeterReadingCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MeterReadingMutation object of the builder.
func (_c *MeterReadingCreate) Mutation() *MeterReadingMutation {
	return _c.mutation
}

// Save creates the MeterReading in the database.
func (_c *MeterReadingCreate) Save(ctx context.Context) (*MeterReading, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MeterReadingCreate) SaveX(ctx context.Context) *MeterReading {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeterReadingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeterReadingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MeterReadingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := meterreading.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := meterreading.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MeterReadingCreate) check() error {
	if _, ok := _c.mutation.Address(); !ok {
		return &ValidationError{Name: "address", err: errors.New(`ent: missing required field "MeterReading.address"`)}
	}
	if v, ok := _c.mutation.Address(); ok {
		if err := meterreading.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "MeterReading.address": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReadingDate(); !ok {
		return &ValidationError{Name: "reading_date", err: errors.New(`ent: missing required field "MeterReading.reading_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MeterReading.created_at"`)}
	}
	return nil
}

func (_c *MeterReadingCreate) sqlSave(ctx context.Context) (*MeterReading, error) {
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

func (_c *MeterReadingCreate) createSpec() (*MeterReading, *sqlgraph.CreateSpec) {
	var (
		_node = &MeterReading{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(meterreading.Table, sqlgraph.NewFieldSpec(meterreading.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(meterreading.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.ReadingDate(); ok {
		_spec.SetField(meterreading.FieldReadingDate, field.TypeTime, value)
		_node.ReadingDate = value
	}
	if value, ok := _c.mutation.WaterReading(); ok {
		_spec.SetField(meterreading.FieldWaterReading, field.TypeFloat64, value)
		_node.WaterReading = &value
	}
	if value, ok := _c.mutation.ElectricityReading(); ok {
		_spec.SetField(meterreading.FieldElectricityReading, field.TypeFloat64, value)
		_node.ElectricityReading = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(meterreading.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(meterreading.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MeterReadingCreateBulk is the builder for creating many MeterReading entities in bulk.
type MeterReadingCreateBulk struct {
	config
	err      error
	builders []*MeterReadingCreate
}

// Save creates the MeterReading entities in the database.
func (_c *MeterReadingCreateBulk) Save(ctx context.Context) ([]*MeterReading, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MeterReading, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MeterReadingMutation)
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
func (_c *MeterReadingCreateBulk) SaveX(ctx context.Context) []*MeterReading {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MeterReadingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MeterReadingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
