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
	"github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
)

// MeterReadingUpdate is the builder for updating MeterReading entities.
type MeterReadingUpdate struct {
	config
	hooks    []Hook
	mutation *MeterReadingMutation
}

// Where appends a list predicates to the MeterReadingUpdate builder.
func (_u *MeterReadingUpdate) Where(ps ...predicate.MeterReading) *MeterReadingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAddress sets the "address" field.
func (_u *MeterReadingUpdate) SetAddress(v string) *MeterReadingUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *MeterReadingUpdate) SetNillableAddress(v *string) *MeterReadingUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetReadingDate sets the "reading_date" field.
func (_u *MeterReadingUpdate) SetReadingDate(v time.Time) *MeterReadingUpdate {
	_u.mutation.SetReadingDate(v)
	return _u
}

// SetNillableReadingDate sets the "reading_date" field if the given value is not nil.
func (_u *MeterReadingUpdate) SetNillableReadingDate(v *time.Time) *MeterReadingUpdate {
	if v != nil {
		_u.SetReadingDate(*v)
	}
	return _u
}

// SetWaterReading sets the "water_reading" field.
func (_u *MeterReadingUpdate) SetWaterReading(v float64) *MeterReadingUpdate {
	_u.mutation.ResetWaterReading()
	_u.mutation.SetWaterReading(v)
	return _u
}

// SetNillableWaterReading sets the "water_reading" field if the given value is not nil.
func (_u *MeterReadingUpdate) SetNillableWaterReading(v *float64) *MeterReadingUpdate {
	if v != nil {
		_u.SetWaterReading(*v)
	}
	return _u
}

// AddWaterReading adds value to the "water_reading" field.
func (_u *MeterReadingUpdate) AddWaterReading(v float64) *MeterReadingUpdate {
	_u.mutation.AddWaterReading(v)
	return _u
}

// ClearWaterReading clears the value of the "water_reading" field.
func (_u *MeterReadingUpdate) ClearWaterReading() *MeterReadingUpdate {
	_u.mutation.ClearWaterReading()
	return _u
}

// SetElectricityReading sets the "electricity_reading" field.
func (_u *MeterReadingUpdate) SetElectricityReading(v float64) *MeterReadingUpdate {
	_u.mutation.ResetElectricityReading()
	_u.mutation.SetElectricityReading(v)
	return _u
}

// SetNillableElectricityReading sets the "electricity_reading" field if the given value is not nil.
func (_u *MeterReadingUpdate) SetNillableElectricityReading(v *float64) *MeterReadingUpdate {
	if v != nil {
		_u.SetElectricityReading(*v)
	}
	return _u
}

// AddElectricityReading adds value to the "electricity_reading" field.
func (_u *MeterReadingUpdate) AddElectricityReading(v float64) *MeterReadingUpdate {
	_u.mutation.AddElectricityReading(v)
	return _u
}

// ClearElectricityReading clears the value of the "electricity_reading" field.
func (_u *MeterReadingUpdate) ClearElectricityReading() *MeterReadingUpdate {
	_u.mutation.ClearElectricityReading()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MeterReadingUpdate) SetNotes(v string) *MeterReadingUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MeterReadingUpdate) SetNillableNotes(v *string) *MeterReadingUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MeterReadingUpdate) ClearNotes() *MeterReadingUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MeterReadingUpdate) SetCreatedAt(v time.Time) *MeterReadingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MeterReadingUpdate) SetNillableCreatedAt(v *time.Time) *MeterReadingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the MeterReadingMutation object of the builder.
func (_u *MeterReadingUpdate) Mutation() *MeterReadingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MeterReadingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeterReadingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MeterReadingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeterReadingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeterReadingUpdate) check() error {
	if v, ok := _u.mutation.Address(); ok {
		if err := meterreading.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "MeterReading.address": %w`, err)}
		}
	}
	return nil
}

func (_u *MeterReadingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meterreading.Table, meterreading.Columns, sqlgraph.NewFieldSpec(meterreading.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(meterreading.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadingDate(); ok {
		_spec.SetField(meterreading.FieldReadingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WaterReading(); ok {
		_spec.SetField(meterreading.FieldWaterReading, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWaterReading(); ok {
		_spec.AddField(meterreading.FieldWaterReading, field.TypeFloat64, value)
	}
	if _u.mutation.WaterReadingCleared() {
		_spec.ClearField(meterreading.FieldWaterReading, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ElectricityReading(); ok {
		_spec.SetField(meterreading.FieldElectricityReading, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElectricityReading(); ok {
		_spec.AddField(meterreading.FieldElectricityReading, field.TypeFloat64, value)
	}
	if _u.mutation.ElectricityReadingCleared() {
		_spec.ClearField(meterreading.FieldElectricityReading, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(meterreading.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(meterreading.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(meterreading.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meterreading.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MeterReadingUpdateOne is the builder for updating a single MeterReading entity.
type MeterReadingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MeterReadingMutation
}

// SetAddress sets the "address" field.
func (_u *MeterReadingUpdateOne) SetAddress(v string) *MeterReadingUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *MeterReadingUpdateOne) SetNillableAddress(v *string) *MeterReadingUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// SetReadingDate sets the "reading_date" field.
func (_u *MeterReadingUpdateOne) SetReadingDate(v time.Time) *MeterReadingUpdateOne {
	_u.mutation.SetReadingDate(v)
	return _u
}

// SetNillableReadingDate sets the "reading_date" field if the given value is not nil.
func (_u *MeterReadingUpdateOne) SetNillableReadingDate(v *time.Time) *MeterReadingUpdateOne {
	if v != nil {
		_u.SetReadingDate(*v)
	}
	return _u
}

// SetWaterReading sets the "water_reading" field.
func (_u *MeterReadingUpdateOne) SetWaterReading(v float64) *MeterReadingUpdateOne {
	_u.mutation.ResetWaterReading()
	_u.mutation.SetWaterReading(v)
	return _u
}

// SetNillableWaterReading sets the "water_reading" field if the given value is not nil.
func (_u *MeterReadingUpdateOne) SetNillableWaterReading(v *float64) *MeterReadingUpdateOne {
	if v != nil {
		_u.SetWaterReading(*v)
	}
	return _u
}

// AddWaterReading adds value to the "water_reading" field.
func (_u *MeterReadingUpdateOne) AddWaterReading(v float64) *MeterReadingUpdateOne {
	_u.mutation.AddWaterReading(v)
	return _u
}

// ClearWaterReading clears the value of the "water_reading" field.
func (_u *MeterReadingUpdateOne) ClearWaterReading() *MeterReadingUpdateOne {
	_u.mutation.ClearWaterReading()
	return _u
}

// SetElectricityReading sets the "electricity_reading" field.
func (_u *MeterReadingUpdateOne) SetElectricityReading(v float64) *MeterReadingUpdateOne {
	_u.mutation.ResetElectricityReading()
	_u.mutation.SetElectricityReading(v)
	return _u
}

// SetNillableElectricityReading sets the "electricity_reading" field if the given value is not nil.
func (_u *MeterReadingUpdateOne) SetNillableElectricityReading(v *float64) *MeterReadingUpdateOne {
	if v != nil {
		_u.SetElectricityReading(*v)
	}
	return _u
}

// AddElectricityReading adds value to the "electricity_reading" field.
func (_u *MeterReadingUpdateOne) AddElectricityReading(v float64) *MeterReadingUpdateOne {
	_u.mutation.AddElectricityReading(v)
	return _u
}

// ClearElectricityReading clears the value of the "electricity_reading" field.
func (_u *MeterReadingUpdateOne) ClearElectricityReading() *MeterReadingUpdateOne {
	_u.mutation.ClearElectricityReading()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *MeterReadingUpdateOne) SetNotes(v string) *MeterReadingUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *MeterReadingUpdateOne) SetNillableNotes(v *string) *MeterReadingUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *MeterReadingUpdateOne) ClearNotes() *MeterReadingUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MeterReadingUpdateOne) SetCreatedAt(v time.Time) *MeterReadingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MeterReadingUpdateOne) SetNillableCreatedAt(v *time.Time) *MeterReadingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the MeterReadingMutation object of the builder.
func (_u *MeterReadingUpdateOne) Mutation() *MeterReadingMutation {
	return _u.mutation
}

// Where appends a list predicates to the MeterReadingUpdate builder.
func (_u *MeterReadingUpdateOne) Where(ps ...predicate.MeterReading) *MeterReadingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MeterReadingUpdateOne) Select(field string, fields ...string) *MeterReadingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MeterReading entity.
func (_u *MeterReadingUpdateOne) Save(ctx context.Context) (*MeterReading, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MeterReadingUpdateOne) SaveX(ctx context.Context) *MeterReading {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MeterReadingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MeterReadingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MeterReadingUpdateOne) check() error {
	if v, ok := _u.mutation.Address(); ok {
		if err := meterreading.AddressValidator(v); err != nil {
			return &ValidationError{Name: "address", err: fmt.Errorf(`ent: validator failed for field "MeterReading.address": %w`, err)}
		}
	}
	return nil
}

func (_u *MeterReadingUpdateOne) sqlSave(ctx context.Context) (_node *MeterReading, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(meterreading.Table, meterreading.Columns, sqlgraph.NewFieldSpec(meterreading.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MeterReading.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meterreading.FieldID)
		for _, f := range fields {
			if !meterreading.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != meterreading.FieldID {
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
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(meterreading.FieldAddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadingDate(); ok {
		_spec.SetField(meterreading.FieldReadingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.WaterReading(); ok {
		_spec.SetField(meterreading.FieldWaterReading, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWaterReading(); ok {
		_spec.AddField(meterreading.FieldWaterReading, field.TypeFloat64, value)
	}
	if _u.mutation.WaterReadingCleared() {
		_spec.ClearField(meterreading.FieldWaterReading, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ElectricityReading(); ok {
		_spec.SetField(meterreading.FieldElectricityReading, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedElectricityReading(); ok {
		_spec.AddField(meterreading.FieldElectricityReading, field.TypeFloat64, value)
	}
	if _u.mutation.ElectricityReadingCleared() {
		_spec.ClearField(meterreading.FieldElectricityReading, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(meterreading.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(meterreading.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(meterreading.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &MeterReading{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{meterreading.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
