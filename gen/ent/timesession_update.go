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
	"github.com/huisbeheer/utility-tracker/gen/ent/timesession"
)

// TimeSessionUpdate is the builder for updating TimeSession entities.
type TimeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *TimeSessionMutation
}

// Where appends a list predicates to the TimeSessionUpdate builder.
func (_u *TimeSessionUpdate) Where(ps ...predicate.TimeSession) *TimeSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *TimeSessionUpdate) SetCategory(v string) *TimeSessionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TimeSessionUpdate) SetNillableCategory(v *string) *TimeSessionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCustomCategory sets the "custom_category" field.
func (_u *TimeSessionUpdate) SetCustomCategory(v string) *TimeSessionUpdate {
	_u.mutation.SetCustomCategory(v)
	return _u
}

// SetNillableCustomCategory sets the "custom_category" field if the given value is not nil.
func (_u *TimeSessionUpdate) SetNillableCustomCategory(v *string) *TimeSessionUpdate {
	if v != nil {
		_u.SetCustomCategory(*v)
	}
	return _u
}

// ClearCustomCategory clears the value of the "custom_category" field.
func (_u *TimeSessionUpdate) ClearCustomCategory() *TimeSessionUpdate {
	_u.mutation.ClearCustomCategory()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimeSessionUpdate) SetStartTime(v time.Time) *TimeSessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimeSessionUpdate) SetNillableStartTime(v *time.Time) *TimeSessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimeSessionUpdate) SetEndTime(v time.Time) *TimeSessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimeSessionUpdate) SetNillableEndTime(v *time.Time) *TimeSessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TimeSessionUpdate) ClearEndTime() *TimeSessionUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TimeSessionUpdate) SetNotes(v string) *TimeSessionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TimeSessionUpdate) SetNillableNotes(v *string) *TimeSessionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TimeSessionUpdate) ClearNotes() *TimeSessionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TimeSessionUpdate) SetCreatedAt(v time.Time) *TimeSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TimeSessionUpdate) SetNillableCreatedAt(v *time.Time) *TimeSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeSessionUpdate) SetUpdatedAt(v time.Time) *TimeSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TimeSessionMutation object of the builder.
func (_u *TimeSessionUpdate) Mutation() *TimeSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TimeSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TimeSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimeSessionUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := timesession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TimeSession.category": %w`, err)}
		}
	}
	return nil
}

func (_u *TimeSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timesession.Table, timesession.Columns, sqlgraph.NewFieldSpec(timesession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(timesession.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomCategory(); ok {
		_spec.SetField(timesession.FieldCustomCategory, field.TypeString, value)
	}
	if _u.mutation.CustomCategoryCleared() {
		_spec.ClearField(timesession.FieldCustomCategory, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timesession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timesession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(timesession.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(timesession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(timesession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(timesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TimeSessionUpdateOne is the builder for updating a single TimeSession entity.
type TimeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimeSessionMutation
}

// SetCategory sets the "category" field.
func (_u *TimeSessionUpdateOne) SetCategory(v string) *TimeSessionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TimeSessionUpdateOne) SetNillableCategory(v *string) *TimeSessionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCustomCategory sets the "custom_category" field.
func (_u *TimeSessionUpdateOne) SetCustomCategory(v string) *TimeSessionUpdateOne {
	_u.mutation.SetCustomCategory(v)
	return _u
}

// SetNillableCustomCategory sets the "custom_category" field if the given value is not nil.
func (_u *TimeSessionUpdateOne) SetNillableCustomCategory(v *string) *TimeSessionUpdateOne {
	if v != nil {
		_u.SetCustomCategory(*v)
	}
	return _u
}

// ClearCustomCategory clears the value of the "custom_category" field.
func (_u *TimeSessionUpdateOne) ClearCustomCategory() *TimeSessionUpdateOne {
	_u.mutation.ClearCustomCategory()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TimeSessionUpdateOne) SetStartTime(v time.Time) *TimeSessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TimeSessionUpdateOne) SetNillableStartTime(v *time.Time) *TimeSessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TimeSessionUpdateOne) SetEndTime(v time.Time) *TimeSessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TimeSessionUpdateOne) SetNillableEndTime(v *time.Time) *TimeSessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *TimeSessionUpdateOne) ClearEndTime() *TimeSessionUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TimeSessionUpdateOne) SetNotes(v string) *TimeSessionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *TimeSessionUpdateOne) SetNillableNotes(v *string) *TimeSessionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TimeSessionUpdateOne) ClearNotes() *TimeSessionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TimeSessionUpdateOne) SetCreatedAt(v time.Time) *TimeSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TimeSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *TimeSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TimeSessionUpdateOne) SetUpdatedAt(v time.Time) *TimeSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TimeSessionMutation object of the builder.
func (_u *TimeSessionUpdateOne) Mutation() *TimeSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TimeSessionUpdate builder.
func (_u *TimeSessionUpdateOne) Where(ps ...predicate.TimeSession) *TimeSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TimeSessionUpdateOne) Select(field string, fields ...string) *TimeSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TimeSession entity.
func (_u *TimeSessionUpdateOne) Save(ctx context.Context) (*TimeSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TimeSessionUpdateOne) SaveX(ctx context.Context) *TimeSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TimeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TimeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TimeSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := timesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TimeSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := timesession.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "TimeSession.category": %w`, err)}
		}
	}
	return nil
}

func (_u *TimeSessionUpdateOne) sqlSave(ctx context.Context) (_node *TimeSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timesession.Table, timesession.Columns, sqlgraph.NewFieldSpec(timesession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TimeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timesession.FieldID)
		for _, f := range fields {
			if !timesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != timesession.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(timesession.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CustomCategory(); ok {
		_spec.SetField(timesession.FieldCustomCategory, field.TypeString, value)
	}
	if _u.mutation.CustomCategoryCleared() {
		_spec.ClearField(timesession.FieldCustomCategory, field.TypeString)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(timesession.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(timesession.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(timesession.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(timesession.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(timesession.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(timesession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(timesession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TimeSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
