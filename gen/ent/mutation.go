// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/address"
	"github.com/huisbeheer/utility-tracker/gen/ent/invoice"
	"github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
	"github.com/huisbeheer/utility-tracker/gen/ent/timesession"
	"github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAddress      = "Address"
	TypeInvoice      = "Invoice"
	TypeMeterReading = "MeterReading"
	TypeTimeSession  = "TimeSession"
	TypeUtilityPrice = "UtilityPrice"
)

// AddressMutation represents an operation that mutates the Address nodes in the graph.
type AddressMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Address, error)
	predicates    []predicate.Address
}

var _ ent.Mutation = (*AddressMutation)(nil)

// addressOption allows management of the mutation configuration using functional options.
type addressOption func(*AddressMutation)

// newAddressMutation creates new mutation for the Address entity.
func newAddressMutation(c config, op Op, opts ...addressOption) *AddressMutation {
	m := &AddressMutation{
		config:        c,
		op:            op,
		typ:           TypeAddress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAddressID sets the ID field of the mutation.
func withAddressID(id uuid.UUID) addressOption {
	return func(m *AddressMutation) {
		var (
			err   error
			once  sync.Once
			value *Address
		)
		m.oldValue = func(ctx context.Context) (*Address, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Address.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAddress sets the old Address of the mutation.
func withAddress(node *Address) addressOption {
	return func(m *AddressMutation) {
		m.oldValue = func(context.Context) (*Address, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AddressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AddressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Address entities.
func (m *AddressMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AddressMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AddressMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Address.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AddressMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AddressMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Address entity.
// If the Address object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddressMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AddressMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AddressMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AddressMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Address entity.
// If the Address object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AddressMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AddressMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AddressMutation builder.
func (m *AddressMutation) Where(ps ...predicate.Address) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AddressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AddressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Address, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AddressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AddressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Address).
func (m *AddressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AddressMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, address.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, address.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AddressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case address.FieldName:
		return m.Name()
	case address.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AddressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case address.FieldName:
		return m.OldName(ctx)
	case address.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Address field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AddressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case address.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case address.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Address field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AddressMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AddressMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AddressMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Address numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AddressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AddressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AddressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Address nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AddressMutation) ResetField(name string) error {
	switch name {
	case address.FieldName:
		m.ResetName()
		return nil
	case address.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Address field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AddressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AddressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AddressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AddressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AddressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AddressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AddressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Address unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AddressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Address edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	customer_number *string
	invoice_number  *string
	address         *string
	invoice_date    *time.Time
	due_date        *time.Time
	amount          *float64
	addamount       *float64
	is_paid         *bool
	payment_date    *time.Time
	utility_type    *string
	file_name       *string
	file_path       *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Invoice, error)
	predicates      []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCustomerNumber sets the "customer_number" field.
func (m *InvoiceMutation) SetCustomerNumber(s string) {
	m.customer_number = &s
}

// CustomerNumber returns the value of the "customer_number" field in the mutation.
func (m *InvoiceMutation) CustomerNumber() (r string, exists bool) {
	v := m.customer_number
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerNumber returns the old "customer_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCustomerNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerNumber: %w", err)
	}
	return oldValue.CustomerNumber, nil
}

// ResetCustomerNumber resets all changes to the "customer_number" field.
func (m *InvoiceMutation) ResetCustomerNumber() {
	m.customer_number = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (m *InvoiceMutation) ClearInvoiceNumber() {
	m.invoice_number = nil
	m.clearedFields[invoice.FieldInvoiceNumber] = struct{}{}
}

// InvoiceNumberCleared returns if the "invoice_number" field was cleared in this mutation.
func (m *InvoiceMutation) InvoiceNumberCleared() bool {
	_, ok := m.clearedFields[invoice.FieldInvoiceNumber]
	return ok
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
	delete(m.clearedFields, invoice.FieldInvoiceNumber)
}

// SetAddress sets the "address" field.
func (m *InvoiceMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *InvoiceMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *InvoiceMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[invoice.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *InvoiceMutation) AddressCleared() bool {
	_, ok := m.clearedFields[invoice.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *InvoiceMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, invoice.FieldAddress)
}

// SetInvoiceDate sets the "invoice_date" field.
func (m *InvoiceMutation) SetInvoiceDate(t time.Time) {
	m.invoice_date = &t
}

// InvoiceDate returns the value of the "invoice_date" field in the mutation.
func (m *InvoiceMutation) InvoiceDate() (r time.Time, exists bool) {
	v := m.invoice_date
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceDate returns the old "invoice_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceDate: %w", err)
	}
	return oldValue.InvoiceDate, nil
}

// ResetInvoiceDate resets all changes to the "invoice_date" field.
func (m *InvoiceMutation) ResetInvoiceDate() {
	m.invoice_date = nil
}

// SetDueDate sets the "due_date" field.
func (m *InvoiceMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InvoiceMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InvoiceMutation) ResetDueDate() {
	m.due_date = nil
}

// SetAmount sets the "amount" field.
func (m *InvoiceMutation) SetAmount(f float64) {
	m.amount = &f
	m.addamount = nil
}

// Amount returns the value of the "amount" field in the mutation.
func (m *InvoiceMutation) Amount() (r float64, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAmount(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// AddAmount adds f to the "amount" field.
func (m *InvoiceMutation) AddAmount(f float64) {
	if m.addamount != nil {
		*m.addamount += f
	} else {
		m.addamount = &f
	}
}

// AddedAmount returns the value that was added to the "amount" field in this mutation.
func (m *InvoiceMutation) AddedAmount() (r float64, exists bool) {
	v := m.addamount
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmount resets all changes to the "amount" field.
func (m *InvoiceMutation) ResetAmount() {
	m.amount = nil
	m.addamount = nil
}

// SetIsPaid sets the "is_paid" field.
func (m *InvoiceMutation) SetIsPaid(b bool) {
	m.is_paid = &b
}

// IsPaid returns the value of the "is_paid" field in the mutation.
func (m *InvoiceMutation) IsPaid() (r bool, exists bool) {
	v := m.is_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPaid returns the old "is_paid" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldIsPaid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPaid: %w", err)
	}
	return oldValue.IsPaid, nil
}

// ResetIsPaid resets all changes to the "is_paid" field.
func (m *InvoiceMutation) ResetIsPaid() {
	m.is_paid = nil
}

// SetPaymentDate sets the "payment_date" field.
func (m *InvoiceMutation) SetPaymentDate(t time.Time) {
	m.payment_date = &t
}

// PaymentDate returns the value of the "payment_date" field in the mutation.
func (m *InvoiceMutation) PaymentDate() (r time.Time, exists bool) {
	v := m.payment_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentDate returns the old "payment_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPaymentDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentDate: %w", err)
	}
	return oldValue.PaymentDate, nil
}

// ClearPaymentDate clears the value of the "payment_date" field.
func (m *InvoiceMutation) ClearPaymentDate() {
	m.payment_date = nil
	m.clearedFields[invoice.FieldPaymentDate] = struct{}{}
}

// PaymentDateCleared returns if the "payment_date" field was cleared in this mutation.
func (m *InvoiceMutation) PaymentDateCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPaymentDate]
	return ok
}

// ResetPaymentDate resets all changes to the "payment_date" field.
func (m *InvoiceMutation) ResetPaymentDate() {
	m.payment_date = nil
	delete(m.clearedFields, invoice.FieldPaymentDate)
}

// SetUtilityType sets the "utility_type" field.
func (m *InvoiceMutation) SetUtilityType(s string) {
	m.utility_type = &s
}

// UtilityType returns the value of the "utility_type" field in the mutation.
func (m *InvoiceMutation) UtilityType() (r string, exists bool) {
	v := m.utility_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilityType returns the old "utility_type" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUtilityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilityType: %w", err)
	}
	return oldValue.UtilityType, nil
}

// ResetUtilityType resets all changes to the "utility_type" field.
func (m *InvoiceMutation) ResetUtilityType() {
	m.utility_type = nil
}

// SetFileName sets the "file_name" field.
func (m *InvoiceMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *InvoiceMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFileName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ClearFileName clears the value of the "file_name" field.
func (m *InvoiceMutation) ClearFileName() {
	m.file_name = nil
	m.clearedFields[invoice.FieldFileName] = struct{}{}
}

// FileNameCleared returns if the "file_name" field was cleared in this mutation.
func (m *InvoiceMutation) FileNameCleared() bool {
	_, ok := m.clearedFields[invoice.FieldFileName]
	return ok
}

// ResetFileName resets all changes to the "file_name" field.
func (m *InvoiceMutation) ResetFileName() {
	m.file_name = nil
	delete(m.clearedFields, invoice.FieldFileName)
}

// SetFilePath sets the "file_path" field.
func (m *InvoiceMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *InvoiceMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFilePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *InvoiceMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[invoice.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *InvoiceMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[invoice.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *InvoiceMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, invoice.FieldFilePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.customer_number != nil {
		fields = append(fields, invoice.FieldCustomerNumber)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.address != nil {
		fields = append(fields, invoice.FieldAddress)
	}
	if m.invoice_date != nil {
		fields = append(fields, invoice.FieldInvoiceDate)
	}
	if m.due_date != nil {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.amount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	if m.is_paid != nil {
		fields = append(fields, invoice.FieldIsPaid)
	}
	if m.payment_date != nil {
		fields = append(fields, invoice.FieldPaymentDate)
	}
	if m.utility_type != nil {
		fields = append(fields, invoice.FieldUtilityType)
	}
	if m.file_name != nil {
		fields = append(fields, invoice.FieldFileName)
	}
	if m.file_path != nil {
		fields = append(fields, invoice.FieldFilePath)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldCustomerNumber:
		return m.CustomerNumber()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldAddress:
		return m.Address()
	case invoice.FieldInvoiceDate:
		return m.InvoiceDate()
	case invoice.FieldDueDate:
		return m.DueDate()
	case invoice.FieldAmount:
		return m.Amount()
	case invoice.FieldIsPaid:
		return m.IsPaid()
	case invoice.FieldPaymentDate:
		return m.PaymentDate()
	case invoice.FieldUtilityType:
		return m.UtilityType()
	case invoice.FieldFileName:
		return m.FileName()
	case invoice.FieldFilePath:
		return m.FilePath()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldCustomerNumber:
		return m.OldCustomerNumber(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldAddress:
		return m.OldAddress(ctx)
	case invoice.FieldInvoiceDate:
		return m.OldInvoiceDate(ctx)
	case invoice.FieldDueDate:
		return m.OldDueDate(ctx)
	case invoice.FieldAmount:
		return m.OldAmount(ctx)
	case invoice.FieldIsPaid:
		return m.OldIsPaid(ctx)
	case invoice.FieldPaymentDate:
		return m.OldPaymentDate(ctx)
	case invoice.FieldUtilityType:
		return m.OldUtilityType(ctx)
	case invoice.FieldFileName:
		return m.OldFileName(ctx)
	case invoice.FieldFilePath:
		return m.OldFilePath(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldCustomerNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerNumber(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case invoice.FieldInvoiceDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceDate(v)
		return nil
	case invoice.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case invoice.FieldIsPaid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPaid(v)
		return nil
	case invoice.FieldPaymentDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentDate(v)
		return nil
	case invoice.FieldUtilityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilityType(v)
		return nil
	case invoice.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case invoice.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addamount != nil {
		fields = append(fields, invoice.FieldAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldAmount:
		return m.AddedAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldInvoiceNumber) {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.FieldCleared(invoice.FieldAddress) {
		fields = append(fields, invoice.FieldAddress)
	}
	if m.FieldCleared(invoice.FieldPaymentDate) {
		fields = append(fields, invoice.FieldPaymentDate)
	}
	if m.FieldCleared(invoice.FieldFileName) {
		fields = append(fields, invoice.FieldFileName)
	}
	if m.FieldCleared(invoice.FieldFilePath) {
		fields = append(fields, invoice.FieldFilePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldInvoiceNumber:
		m.ClearInvoiceNumber()
		return nil
	case invoice.FieldAddress:
		m.ClearAddress()
		return nil
	case invoice.FieldPaymentDate:
		m.ClearPaymentDate()
		return nil
	case invoice.FieldFileName:
		m.ClearFileName()
		return nil
	case invoice.FieldFilePath:
		m.ClearFilePath()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldCustomerNumber:
		m.ResetCustomerNumber()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldAddress:
		m.ResetAddress()
		return nil
	case invoice.FieldInvoiceDate:
		m.ResetInvoiceDate()
		return nil
	case invoice.FieldDueDate:
		m.ResetDueDate()
		return nil
	case invoice.FieldAmount:
		m.ResetAmount()
		return nil
	case invoice.FieldIsPaid:
		m.ResetIsPaid()
		return nil
	case invoice.FieldPaymentDate:
		m.ResetPaymentDate()
		return nil
	case invoice.FieldUtilityType:
		m.ResetUtilityType()
		return nil
	case invoice.FieldFileName:
		m.ResetFileName()
		return nil
	case invoice.FieldFilePath:
		m.ResetFilePath()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// MeterReadingMutation represents an operation that mutates the MeterReading nodes in the graph.
type MeterReadingMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	address                *string
	reading_date           *time.Time
	water_reading          *float64
	addwater_reading       *float64
	electricity_reading    *float64
	addelectricity_reading *float64
	notes                  *string
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*MeterReading, error)
	predicates             []predicate.MeterReading
}

var _ ent.Mutation = (*MeterReadingMutation)(nil)

// meterreadingOption allows management of the mutation configuration using functional options.
type meterreadingOption func(*MeterReadingMutation)

// newMeterReadingMutation creates new mutation for the MeterReading entity.
func newMeterReadingMutation(c config, op Op, opts ...meterreadingOption) *MeterReadingMutation {
	m := &MeterReadingMutation{
		config:        c,
		op:            op,
		typ:           TypeMeterReading,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMeterReadingID sets the ID field of the mutation.
func withMeterReadingID(id uuid.UUID) meterreadingOption {
	return func(m *MeterReadingMutation) {
		var (
			err   error
			once  sync.Once
			value *MeterReading
		)
		m.oldValue = func(ctx context.Context) (*MeterReading, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MeterReading.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMeterReading sets the old MeterReading of the mutation.
func withMeterReading(node *MeterReading) meterreadingOption {
	return func(m *MeterReadingMutation) {
		m.oldValue = func(context.Context) (*MeterReading, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MeterReadingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MeterReadingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MeterReading entities.
func (m *MeterReadingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MeterReadingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MeterReadingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MeterReading.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAddress sets the "address" field.
func (m *MeterReadingMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *MeterReadingMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the MeterReading entity.
// If the MeterReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeterReadingMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ResetAddress resets all changes to the "address" field.
func (m *MeterReadingMutation) ResetAddress() {
	m.address = nil
}

// SetReadingDate sets the "reading_date" field.
func (m *MeterReadingMutation) SetReadingDate(t time.Time) {
	m.reading_date = &t
}

// ReadingDate returns the value of the "reading_date" field in the mutation.
func (m *MeterReadingMutation) ReadingDate() (r time.Time, exists bool) {
	v := m.reading_date
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingDate returns the old "reading_date" field's value of the MeterReading entity.
// If the MeterReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeterReadingMutation) OldReadingDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingDate: %w", err)
	}
	return oldValue.ReadingDate, nil
}

// ResetReadingDate resets all changes to the "reading_date" field.
func (m *MeterReadingMutation) ResetReadingDate() {
	m.reading_date = nil
}

// SetWaterReading sets the "water_reading" field.
func (m *MeterReadingMutation) SetWaterReading(f float64) {
	m.water_reading = &f
	m.addwater_reading = nil
}

// WaterReading returns the value of the "water_reading" field in the mutation.
func (m *MeterReadingMutation) WaterReading() (r float64, exists bool) {
	v := m.water_reading
	if v == nil {
		return
	}
	return *v, true
}

// OldWaterReading returns the old "water_reading" field's value of the MeterReading entity.
// If the MeterReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeterReadingMutation) OldWaterReading(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaterReading is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaterReading requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaterReading: %w", err)
	}
	return oldValue.WaterReading, nil
}

// AddWaterReading adds f to the "water_reading" field.
func (m *MeterReadingMutation) AddWaterReading(f float64) {
	if m.addwater_reading != nil {
		*m.addwater_reading += f
	} else {
		m.addwater_reading = &f
	}
}

// AddedWaterReading returns the value that was added to the "water_reading" field in this mutation.
func (m *MeterReadingMutation) AddedWaterReading() (r float64, exists bool) {
	v := m.addwater_reading
	if v == nil {
		return
	}
	return *v, true
}

// ClearWaterReading clears the value of the "water_reading" field.
func (m *MeterReadingMutation) ClearWaterReading() {
	m.water_reading = nil
	m.addwater_reading = nil
	m.clearedFields[meterreading.FieldWaterReading] = struct{}{}
}

// WaterReadingCleared returns if the "water_reading" field was cleared in this mutation.
func (m *MeterReadingMutation) WaterReadingCleared() bool {
	_, ok := m.clearedFields[meterreading.FieldWaterReading]
	return ok
}

// ResetWaterReading resets all changes to the "water_reading" field.
func (m *MeterReadingMutation) ResetWaterReading() {
	m.water_reading = nil
	m.addwater_reading = nil
	delete(m.clearedFields, meterreading.FieldWaterReading)
}

// SetElectricityReading sets the "electricity_reading" field.
func (m *MeterReadingMutation) SetElectricityReading(f float64) {
	m.electricity_reading = &f
	m.addelectricity_reading = nil
}

// ElectricityReading returns the value of the "electricity_reading" field in the mutation.
func (m *MeterReadingMutation) ElectricityReading() (r float64, exists bool) {
	v := m.electricity_reading
	if v == nil {
		return
	}
	return *v, true
}

// OldElectricityReading returns the old "electricity_reading" field's value of the MeterReading entity.
// If the MeterReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeterReadingMutation) OldElectricityReading(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElectricityReading is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElectricityReading requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElectricityReading: %w", err)
	}
	return oldValue.ElectricityReading, nil
}

// AddElectricityReading adds f to the "electricity_reading" field.
func (m *MeterReadingMutation) AddElectricityReading(f float64) {
	if m.addelectricity_reading != nil {
		*m.addelectricity_reading += f
	} else {
		m.addelectricity_reading = &f
	}
}

// AddedElectricityReading returns the value that was added to the "electricity_reading" field in this mutation.
func (m *MeterReadingMutation) AddedElectricityReading() (r float64, exists bool) {
	v := m.addelectricity_reading
	if v == nil {
		return
	}
	return *v, true
}

// ClearElectricityReading clears the value of the "electricity_reading" field.
func (m *MeterReadingMutation) ClearElectricityReading() {
	m.electricity_reading = nil
	m.addelectricity_reading = nil
	m.clearedFields[meterreading.FieldElectricityReading] = struct{}{}
}

// ElectricityReadingCleared returns if the "electricity_reading" field was cleared in this mutation.
func (m *MeterReadingMutation) ElectricityReadingCleared() bool {
	_, ok := m.clearedFields[meterreading.FieldElectricityReading]
	return ok
}

// ResetElectricityReading resets all changes to the "electricity_reading" field.
func (m *MeterReadingMutation) ResetElectricityReading() {
	m.electricity_reading = nil
	m.addelectricity_reading = nil
	delete(m.clearedFields, meterreading.FieldElectricityReading)
}

// SetNotes sets the "notes" field.
func (m *MeterReadingMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *MeterReadingMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the MeterReading entity.
// If the MeterReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeterReadingMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *MeterReadingMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[meterreading.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *MeterReadingMutation) NotesCleared() bool {
	_, ok := m.clearedFields[meterreading.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *MeterReadingMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, meterreading.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *MeterReadingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MeterReadingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MeterReading entity.
// If the MeterReading object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MeterReadingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MeterReadingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the MeterReadingMutation builder.
func (m *MeterReadingMutation) Where(ps ...predicate.MeterReading) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MeterReadingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MeterReadingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MeterReading, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MeterReadingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MeterReadingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MeterReading).
func (m *MeterReadingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MeterReadingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.address != nil {
		fields = append(fields, meterreading.FieldAddress)
	}
	if m.reading_date != nil {
		fields = append(fields, meterreading.FieldReadingDate)
	}
	if m.water_reading != nil {
		fields = append(fields, meterreading.FieldWaterReading)
	}
	if m.electricity_reading != nil {
		fields = append(fields, meterreading.FieldElectricityReading)
	}
	if m.notes != nil {
		fields = append(fields, meterreading.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, meterreading.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MeterReadingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case meterreading.FieldAddress:
		return m.Address()
	case meterreading.FieldReadingDate:
		return m.ReadingDate()
	case meterreading.FieldWaterReading:
		return m.WaterReading()
	case meterreading.FieldElectricityReading:
		return m.ElectricityReading()
	case meterreading.FieldNotes:
		return m.Notes()
	case meterreading.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MeterReadingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case meterreading.FieldAddress:
		return m.OldAddress(ctx)
	case meterreading.FieldReadingDate:
		return m.OldReadingDate(ctx)
	case meterreading.FieldWaterReading:
		return m.OldWaterReading(ctx)
	case meterreading.FieldElectricityReading:
		return m.OldElectricityReading(ctx)
	case meterreading.FieldNotes:
		return m.OldNotes(ctx)
	case meterreading.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MeterReading field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeterReadingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case meterreading.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case meterreading.FieldReadingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingDate(v)
		return nil
	case meterreading.FieldWaterReading:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaterReading(v)
		return nil
	case meterreading.FieldElectricityReading:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElectricityReading(v)
		return nil
	case meterreading.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case meterreading.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MeterReading field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MeterReadingMutation) AddedFields() []string {
	var fields []string
	if m.addwater_reading != nil {
		fields = append(fields, meterreading.FieldWaterReading)
	}
	if m.addelectricity_reading != nil {
		fields = append(fields, meterreading.FieldElectricityReading)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MeterReadingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case meterreading.FieldWaterReading:
		return m.AddedWaterReading()
	case meterreading.FieldElectricityReading:
		return m.AddedElectricityReading()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MeterReadingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case meterreading.FieldWaterReading:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWaterReading(v)
		return nil
	case meterreading.FieldElectricityReading:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElectricityReading(v)
		return nil
	}
	return fmt.Errorf("unknown MeterReading numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MeterReadingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(meterreading.FieldWaterReading) {
		fields = append(fields, meterreading.FieldWaterReading)
	}
	if m.FieldCleared(meterreading.FieldElectricityReading) {
		fields = append(fields, meterreading.FieldElectricityReading)
	}
	if m.FieldCleared(meterreading.FieldNotes) {
		fields = append(fields, meterreading.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MeterReadingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MeterReadingMutation) ClearField(name string) error {
	switch name {
	case meterreading.FieldWaterReading:
		m.ClearWaterReading()
		return nil
	case meterreading.FieldElectricityReading:
		m.ClearElectricityReading()
		return nil
	case meterreading.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown MeterReading nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MeterReadingMutation) ResetField(name string) error {
	switch name {
	case meterreading.FieldAddress:
		m.ResetAddress()
		return nil
	case meterreading.FieldReadingDate:
		m.ResetReadingDate()
		return nil
	case meterreading.FieldWaterReading:
		m.ResetWaterReading()
		return nil
	case meterreading.FieldElectricityReading:
		m.ResetElectricityReading()
		return nil
	case meterreading.FieldNotes:
		m.ResetNotes()
		return nil
	case meterreading.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MeterReading field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MeterReadingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MeterReadingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MeterReadingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MeterReadingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MeterReadingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MeterReadingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MeterReadingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MeterReading unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MeterReadingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MeterReading edge %s", name)
}

// TimeSessionMutation represents an operation that mutates the TimeSession nodes in the graph.
type TimeSessionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	category        *string
	custom_category *string
	start_time      *time.Time
	end_time        *time.Time
	notes           *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TimeSession, error)
	predicates      []predicate.TimeSession
}

var _ ent.Mutation = (*TimeSessionMutation)(nil)

// timesessionOption allows management of the mutation configuration using functional options.
type timesessionOption func(*TimeSessionMutation)

// newTimeSessionMutation creates new mutation for the TimeSession entity.
func newTimeSessionMutation(c config, op Op, opts ...timesessionOption) *TimeSessionMutation {
	m := &TimeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeTimeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimeSessionID sets the ID field of the mutation.
func withTimeSessionID(id uuid.UUID) timesessionOption {
	return func(m *TimeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *TimeSession
		)
		m.oldValue = func(ctx context.Context) (*TimeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimeSession sets the old TimeSession of the mutation.
func withTimeSession(node *TimeSession) timesessionOption {
	return func(m *TimeSessionMutation) {
		m.oldValue = func(context.Context) (*TimeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimeSession entities.
func (m *TimeSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimeSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimeSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategory sets the "category" field.
func (m *TimeSessionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TimeSessionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the TimeSession entity.
// If the TimeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSessionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TimeSessionMutation) ResetCategory() {
	m.category = nil
}

// SetCustomCategory sets the "custom_category" field.
func (m *TimeSessionMutation) SetCustomCategory(s string) {
	m.custom_category = &s
}

// CustomCategory returns the value of the "custom_category" field in the mutation.
func (m *TimeSessionMutation) CustomCategory() (r string, exists bool) {
	v := m.custom_category
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomCategory returns the old "custom_category" field's value of the TimeSession entity.
// If the TimeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSessionMutation) OldCustomCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomCategory: %w", err)
	}
	return oldValue.CustomCategory, nil
}

// ClearCustomCategory clears the value of the "custom_category" field.
func (m *TimeSessionMutation) ClearCustomCategory() {
	m.custom_category = nil
	m.clearedFields[timesession.FieldCustomCategory] = struct{}{}
}

// CustomCategoryCleared returns if the "custom_category" field was cleared in this mutation.
func (m *TimeSessionMutation) CustomCategoryCleared() bool {
	_, ok := m.clearedFields[timesession.FieldCustomCategory]
	return ok
}

// ResetCustomCategory resets all changes to the "custom_category" field.
func (m *TimeSessionMutation) ResetCustomCategory() {
	m.custom_category = nil
	delete(m.clearedFields, timesession.FieldCustomCategory)
}

// SetStartTime sets the "start_time" field.
func (m *TimeSessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TimeSessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TimeSession entity.
// If the TimeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSessionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TimeSessionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TimeSessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TimeSessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TimeSession entity.
// If the TimeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSessionMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *TimeSessionMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[timesession.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *TimeSessionMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[timesession.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TimeSessionMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, timesession.FieldEndTime)
}

// SetNotes sets the "notes" field.
func (m *TimeSessionMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *TimeSessionMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the TimeSession entity.
// If the TimeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSessionMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *TimeSessionMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[timesession.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *TimeSessionMutation) NotesCleared() bool {
	_, ok := m.clearedFields[timesession.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *TimeSessionMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, timesession.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *TimeSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimeSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimeSession entity.
// If the TimeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimeSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TimeSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TimeSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TimeSession entity.
// If the TimeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TimeSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TimeSessionMutation builder.
func (m *TimeSessionMutation) Where(ps ...predicate.TimeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimeSession).
func (m *TimeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimeSessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.category != nil {
		fields = append(fields, timesession.FieldCategory)
	}
	if m.custom_category != nil {
		fields = append(fields, timesession.FieldCustomCategory)
	}
	if m.start_time != nil {
		fields = append(fields, timesession.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, timesession.FieldEndTime)
	}
	if m.notes != nil {
		fields = append(fields, timesession.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, timesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, timesession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timesession.FieldCategory:
		return m.Category()
	case timesession.FieldCustomCategory:
		return m.CustomCategory()
	case timesession.FieldStartTime:
		return m.StartTime()
	case timesession.FieldEndTime:
		return m.EndTime()
	case timesession.FieldNotes:
		return m.Notes()
	case timesession.FieldCreatedAt:
		return m.CreatedAt()
	case timesession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timesession.FieldCategory:
		return m.OldCategory(ctx)
	case timesession.FieldCustomCategory:
		return m.OldCustomCategory(ctx)
	case timesession.FieldStartTime:
		return m.OldStartTime(ctx)
	case timesession.FieldEndTime:
		return m.OldEndTime(ctx)
	case timesession.FieldNotes:
		return m.OldNotes(ctx)
	case timesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TimeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timesession.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case timesession.FieldCustomCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomCategory(v)
		return nil
	case timesession.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case timesession.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case timesession.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case timesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TimeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimeSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimeSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timesession.FieldCustomCategory) {
		fields = append(fields, timesession.FieldCustomCategory)
	}
	if m.FieldCleared(timesession.FieldEndTime) {
		fields = append(fields, timesession.FieldEndTime)
	}
	if m.FieldCleared(timesession.FieldNotes) {
		fields = append(fields, timesession.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimeSessionMutation) ClearField(name string) error {
	switch name {
	case timesession.FieldCustomCategory:
		m.ClearCustomCategory()
		return nil
	case timesession.FieldEndTime:
		m.ClearEndTime()
		return nil
	case timesession.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown TimeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimeSessionMutation) ResetField(name string) error {
	switch name {
	case timesession.FieldCategory:
		m.ResetCategory()
		return nil
	case timesession.FieldCustomCategory:
		m.ResetCustomCategory()
		return nil
	case timesession.FieldStartTime:
		m.ResetStartTime()
		return nil
	case timesession.FieldEndTime:
		m.ResetEndTime()
		return nil
	case timesession.FieldNotes:
		m.ResetNotes()
		return nil
	case timesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TimeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TimeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TimeSession edge %s", name)
}

// UtilityPriceMutation represents an operation that mutates the UtilityPrice nodes in the graph.
type UtilityPriceMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	utility_type      *string
	price_per_unit    *float64
	addprice_per_unit *float64
	unit_name         *string
	currency          *string
	effective_from    *time.Time
	effective_until   *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*UtilityPrice, error)
	predicates        []predicate.UtilityPrice
}

var _ ent.Mutation = (*UtilityPriceMutation)(nil)

// utilitypriceOption allows management of the mutation configuration using functional options.
type utilitypriceOption func(*UtilityPriceMutation)

// newUtilityPriceMutation creates new mutation for the UtilityPrice entity.
func newUtilityPriceMutation(c config, op Op, opts ...utilitypriceOption) *UtilityPriceMutation {
	m := &UtilityPriceMutation{
		config:        c,
		op:            op,
		typ:           TypeUtilityPrice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUtilityPriceID sets the ID field of the mutation.
func withUtilityPriceID(id uuid.UUID) utilitypriceOption {
	return func(m *UtilityPriceMutation) {
		var (
			err   error
			once  sync.Once
			value *UtilityPrice
		)
		m.oldValue = func(ctx context.Context) (*UtilityPrice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UtilityPrice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUtilityPrice sets the old UtilityPrice of the mutation.
func withUtilityPrice(node *UtilityPrice) utilitypriceOption {
	return func(m *UtilityPriceMutation) {
		m.oldValue = func(context.Context) (*UtilityPrice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UtilityPriceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UtilityPriceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UtilityPrice entities.
func (m *UtilityPriceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UtilityPriceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UtilityPriceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UtilityPrice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUtilityType sets the "utility_type" field.
func (m *UtilityPriceMutation) SetUtilityType(s string) {
	m.utility_type = &s
}

// UtilityType returns the value of the "utility_type" field in the mutation.
func (m *UtilityPriceMutation) UtilityType() (r string, exists bool) {
	v := m.utility_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUtilityType returns the old "utility_type" field's value of the UtilityPrice entity.
// If the UtilityPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityPriceMutation) OldUtilityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtilityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtilityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtilityType: %w", err)
	}
	return oldValue.UtilityType, nil
}

// ResetUtilityType resets all changes to the "utility_type" field.
func (m *UtilityPriceMutation) ResetUtilityType() {
	m.utility_type = nil
}

// SetPricePerUnit sets the "price_per_unit" field.
func (m *UtilityPriceMutation) SetPricePerUnit(f float64) {
	m.price_per_unit = &f
	m.addprice_per_unit = nil
}

// PricePerUnit returns the value of the "price_per_unit" field in the mutation.
func (m *UtilityPriceMutation) PricePerUnit() (r float64, exists bool) {
	v := m.price_per_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldPricePerUnit returns the old "price_per_unit" field's value of the UtilityPrice entity.
// If the UtilityPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityPriceMutation) OldPricePerUnit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricePerUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricePerUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricePerUnit: %w", err)
	}
	return oldValue.PricePerUnit, nil
}

// AddPricePerUnit adds f to the "price_per_unit" field.
func (m *UtilityPriceMutation) AddPricePerUnit(f float64) {
	if m.addprice_per_unit != nil {
		*m.addprice_per_unit += f
	} else {
		m.addprice_per_unit = &f
	}
}

// AddedPricePerUnit returns the value that was added to the "price_per_unit" field in this mutation.
func (m *UtilityPriceMutation) AddedPricePerUnit() (r float64, exists bool) {
	v := m.addprice_per_unit
	if v == nil {
		return
	}
	return *v, true
}

// ResetPricePerUnit resets all changes to the "price_per_unit" field.
func (m *UtilityPriceMutation) ResetPricePerUnit() {
	m.price_per_unit = nil
	m.addprice_per_unit = nil
}

// SetUnitName sets the "unit_name" field.
func (m *UtilityPriceMutation) SetUnitName(s string) {
	m.unit_name = &s
}

// UnitName returns the value of the "unit_name" field in the mutation.
func (m *UtilityPriceMutation) UnitName() (r string, exists bool) {
	v := m.unit_name
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitName returns the old "unit_name" field's value of the UtilityPrice entity.
// If the UtilityPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityPriceMutation) OldUnitName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitName: %w", err)
	}
	return oldValue.UnitName, nil
}

// ResetUnitName resets all changes to the "unit_name" field.
func (m *UtilityPriceMutation) ResetUnitName() {
	m.unit_name = nil
}

// SetCurrency sets the "currency" field.
func (m *UtilityPriceMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *UtilityPriceMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the UtilityPrice entity.
// If the UtilityPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityPriceMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *UtilityPriceMutation) ResetCurrency() {
	m.currency = nil
}

// SetEffectiveFrom sets the "effective_from" field.
func (m *UtilityPriceMutation) SetEffectiveFrom(t time.Time) {
	m.effective_from = &t
}

// EffectiveFrom returns the value of the "effective_from" field in the mutation.
func (m *UtilityPriceMutation) EffectiveFrom() (r time.Time, exists bool) {
	v := m.effective_from
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveFrom returns the old "effective_from" field's value of the UtilityPrice entity.
// If the UtilityPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityPriceMutation) OldEffectiveFrom(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveFrom: %w", err)
	}
	return oldValue.EffectiveFrom, nil
}

// ResetEffectiveFrom resets all changes to the "effective_from" field.
func (m *UtilityPriceMutation) ResetEffectiveFrom() {
	m.effective_from = nil
}

// SetEffectiveUntil sets the "effective_until" field.
func (m *UtilityPriceMutation) SetEffectiveUntil(t time.Time) {
	m.effective_until = &t
}

// EffectiveUntil returns the value of the "effective_until" field in the mutation.
func (m *UtilityPriceMutation) EffectiveUntil() (r time.Time, exists bool) {
	v := m.effective_until
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectiveUntil returns the old "effective_until" field's value of the UtilityPrice entity.
// If the UtilityPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityPriceMutation) OldEffectiveUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectiveUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectiveUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectiveUntil: %w", err)
	}
	return oldValue.EffectiveUntil, nil
}

// ClearEffectiveUntil clears the value of the "effective_until" field.
func (m *UtilityPriceMutation) ClearEffectiveUntil() {
	m.effective_until = nil
	m.clearedFields[utilityprice.FieldEffectiveUntil] = struct{}{}
}

// EffectiveUntilCleared returns if the "effective_until" field was cleared in this mutation.
func (m *UtilityPriceMutation) EffectiveUntilCleared() bool {
	_, ok := m.clearedFields[utilityprice.FieldEffectiveUntil]
	return ok
}

// ResetEffectiveUntil resets all changes to the "effective_until" field.
func (m *UtilityPriceMutation) ResetEffectiveUntil() {
	m.effective_until = nil
	delete(m.clearedFields, utilityprice.FieldEffectiveUntil)
}

// SetCreatedAt sets the "created_at" field.
func (m *UtilityPriceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UtilityPriceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UtilityPrice entity.
// If the UtilityPrice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtilityPriceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UtilityPriceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UtilityPriceMutation builder.
func (m *UtilityPriceMutation) Where(ps ...predicate.UtilityPrice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UtilityPriceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UtilityPriceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UtilityPrice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UtilityPriceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UtilityPriceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UtilityPrice).
func (m *UtilityPriceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UtilityPriceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.utility_type != nil {
		fields = append(fields, utilityprice.FieldUtilityType)
	}
	if m.price_per_unit != nil {
		fields = append(fields, utilityprice.FieldPricePerUnit)
	}
	if m.unit_name != nil {
		fields = append(fields, utilityprice.FieldUnitName)
	}
	if m.currency != nil {
		fields = append(fields, utilityprice.FieldCurrency)
	}
	if m.effective_from != nil {
		fields = append(fields, utilityprice.FieldEffectiveFrom)
	}
	if m.effective_until != nil {
		fields = append(fields, utilityprice.FieldEffectiveUntil)
	}
	if m.created_at != nil {
		fields = append(fields, utilityprice.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UtilityPriceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case utilityprice.FieldUtilityType:
		return m.UtilityType()
	case utilityprice.FieldPricePerUnit:
		return m.PricePerUnit()
	case utilityprice.FieldUnitName:
		return m.UnitName()
	case utilityprice.FieldCurrency:
		return m.Currency()
	case utilityprice.FieldEffectiveFrom:
		return m.EffectiveFrom()
	case utilityprice.FieldEffectiveUntil:
		return m.EffectiveUntil()
	case utilityprice.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UtilityPriceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case utilityprice.FieldUtilityType:
		return m.OldUtilityType(ctx)
	case utilityprice.FieldPricePerUnit:
		return m.OldPricePerUnit(ctx)
	case utilityprice.FieldUnitName:
		return m.OldUnitName(ctx)
	case utilityprice.FieldCurrency:
		return m.OldCurrency(ctx)
	case utilityprice.FieldEffectiveFrom:
		return m.OldEffectiveFrom(ctx)
	case utilityprice.FieldEffectiveUntil:
		return m.OldEffectiveUntil(ctx)
	case utilityprice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UtilityPrice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtilityPriceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case utilityprice.FieldUtilityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtilityType(v)
		return nil
	case utilityprice.FieldPricePerUnit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricePerUnit(v)
		return nil
	case utilityprice.FieldUnitName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitName(v)
		return nil
	case utilityprice.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case utilityprice.FieldEffectiveFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveFrom(v)
		return nil
	case utilityprice.FieldEffectiveUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectiveUntil(v)
		return nil
	case utilityprice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UtilityPrice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UtilityPriceMutation) AddedFields() []string {
	var fields []string
	if m.addprice_per_unit != nil {
		fields = append(fields, utilityprice.FieldPricePerUnit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UtilityPriceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case utilityprice.FieldPricePerUnit:
		return m.AddedPricePerUnit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtilityPriceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case utilityprice.FieldPricePerUnit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPricePerUnit(v)
		return nil
	}
	return fmt.Errorf("unknown UtilityPrice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UtilityPriceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(utilityprice.FieldEffectiveUntil) {
		fields = append(fields, utilityprice.FieldEffectiveUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UtilityPriceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UtilityPriceMutation) ClearField(name string) error {
	switch name {
	case utilityprice.FieldEffectiveUntil:
		m.ClearEffectiveUntil()
		return nil
	}
	return fmt.Errorf("unknown UtilityPrice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UtilityPriceMutation) ResetField(name string) error {
	switch name {
	case utilityprice.FieldUtilityType:
		m.ResetUtilityType()
		return nil
	case utilityprice.FieldPricePerUnit:
		m.ResetPricePerUnit()
		return nil
	case utilityprice.FieldUnitName:
		m.ResetUnitName()
		return nil
	case utilityprice.FieldCurrency:
		m.ResetCurrency()
		return nil
	case utilityprice.FieldEffectiveFrom:
		m.ResetEffectiveFrom()
		return nil
	case utilityprice.FieldEffectiveUntil:
		m.ResetEffectiveUntil()
		return nil
	case utilityprice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UtilityPrice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UtilityPriceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UtilityPriceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UtilityPriceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UtilityPriceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UtilityPriceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UtilityPriceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UtilityPriceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UtilityPrice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UtilityPriceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UtilityPrice edge %s", name)
}
