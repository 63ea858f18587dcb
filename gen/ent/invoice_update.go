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
	"github.com/huisbeheer/utility-tracker/gen/ent/invoice"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *InvoiceUpdate) SetCustomerNumber(v string) *InvoiceUpdate {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCustomerNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdate) ClearInvoiceNumber() *InvoiceUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetAddress sets the "address" field.
func (_u *InvoiceUpdate) SetAddress(v string) *InvoiceUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *InvoiceUpdate) ClearAddress() *InvoiceUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdate) SetDueDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDueDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdate) SetAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdate) AddAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *InvoiceUpdate) SetIsPaid(v bool) *InvoiceUpdate {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableIsPaid(v *bool) *InvoiceUpdate {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *InvoiceUpdate) SetPaymentDate(v time.Time) *InvoiceUpdate {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePaymentDate(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *InvoiceUpdate) ClearPaymentDate() *InvoiceUpdate {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetUtilityType sets the "utility_type" field.
func (_u *InvoiceUpdate) SetUtilityType(v string) *InvoiceUpdate {
	_u.mutation.SetUtilityType(v)
	return _u
}

// SetNillableUtilityType sets the "utility_type" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableUtilityType(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetUtilityType(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdate) SetFileName(v string) *InvoiceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *InvoiceUpdate) ClearFileName() *InvoiceUpdate {
	_u.mutation.ClearFileName()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdate) SetFilePath(v string) *InvoiceUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilePath(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *InvoiceUpdate) ClearFilePath() *InvoiceUpdate {
	_u.mutation.ClearFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.CustomerNumber(); ok {
		if err := invoice.CustomerNumberValidator(v); err != nil {
			return &ValidationError{Name: "customer_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UtilityType(); ok {
		if err := invoice.UtilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "utility_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.utility_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(invoice.FieldCustomerNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(invoice.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(invoice.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(invoice.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(invoice.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(invoice.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UtilityType(); ok {
		_spec.SetField(invoice.FieldUtilityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(invoice.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetCustomerNumber sets the "customer_number" field.
func (_u *InvoiceUpdateOne) SetCustomerNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetCustomerNumber(v)
	return _u
}

// SetNillableCustomerNumber sets the "customer_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCustomerNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCustomerNumber(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceUpdateOne) ClearInvoiceNumber() *InvoiceUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetAddress sets the "address" field.
func (_u *InvoiceUpdateOne) SetAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *InvoiceUpdateOne) ClearAddress() *InvoiceUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceUpdateOne) SetDueDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *InvoiceUpdateOne) SetAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *InvoiceUpdateOne) AddAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetIsPaid sets the "is_paid" field.
func (_u *InvoiceUpdateOne) SetIsPaid(v bool) *InvoiceUpdateOne {
	_u.mutation.SetIsPaid(v)
	return _u
}

// SetNillableIsPaid sets the "is_paid" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableIsPaid(v *bool) *InvoiceUpdateOne {
	if v != nil {
		_u.SetIsPaid(*v)
	}
	return _u
}

// SetPaymentDate sets the "payment_date" field.
func (_u *InvoiceUpdateOne) SetPaymentDate(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetPaymentDate(v)
	return _u
}

// SetNillablePaymentDate sets the "payment_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePaymentDate(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPaymentDate(*v)
	}
	return _u
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (_u *InvoiceUpdateOne) ClearPaymentDate() *InvoiceUpdateOne {
	_u.mutation.ClearPaymentDate()
	return _u
}

// SetUtilityType sets the "utility_type" field.
func (_u *InvoiceUpdateOne) SetUtilityType(v string) *InvoiceUpdateOne {
	_u.mutation.SetUtilityType(v)
	return _u
}

// SetNillableUtilityType sets the "utility_type" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableUtilityType(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetUtilityType(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdateOne) SetFileName(v string) *InvoiceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// ClearFileName clears the value of the "file_name" field.
func (_u *InvoiceUpdateOne) ClearFileName() *InvoiceUpdateOne {
	_u.mutation.ClearFileName()
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceUpdateOne) SetFilePath(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilePath(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// ClearFilePath clears the value of the "file_path" field.
func (_u *InvoiceUpdateOne) ClearFilePath() *InvoiceUpdateOne {
	_u.mutation.ClearFilePath()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.CustomerNumber(); ok {
		if err := invoice.CustomerNumberValidator(v); err != nil {
			return &ValidationError{Name: "customer_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UtilityType(); ok {
		if err := invoice.UtilityTypeValidator(v); err != nil {
			return &ValidationError{Name: "utility_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.utility_type": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.CustomerNumber(); ok {
		_spec.SetField(invoice.FieldCustomerNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoice.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(invoice.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(invoice.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(invoice.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsPaid(); ok {
		_spec.SetField(invoice.FieldIsPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PaymentDate(); ok {
		_spec.SetField(invoice.FieldPaymentDate, field.TypeTime, value)
	}
	if _u.mutation.PaymentDateCleared() {
		_spec.ClearField(invoice.FieldPaymentDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UtilityType(); ok {
		_spec.SetField(invoice.FieldUtilityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if _u.mutation.FileNameCleared() {
		_spec.ClearField(invoice.FieldFileName, field.TypeString)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoice.FieldFilePath, field.TypeString, value)
	}
	if _u.mutation.FilePathCleared() {
		_spec.ClearField(invoice.FieldFilePath, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
