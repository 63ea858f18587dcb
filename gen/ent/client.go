// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/huisbeheer/utility-tracker/gen/ent/address"
	"github.com/huisbeheer/utility-tracker/gen/ent/invoice"
	"github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
	"github.com/huisbeheer/utility-tracker/gen/ent/timesession"
	"github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Address is the client for interacting with the Address builders.
	Address *AddressClient
	// Invoice is the client for interacting with the Invoice builders.
	Invoice *InvoiceClient
	// MeterReading is the client for interacting with the MeterReading builders.
	MeterReading *MeterReadingClient
	// TimeSession is the client for interacting with the TimeSession builders.
	TimeSession *TimeSessionClient
	// UtilityPrice is the client for interacting with the UtilityPrice builders.
	UtilityPrice *UtilityPriceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Address = NewAddressClient(c.config)
	c.Invoice = NewInvoiceClient(c.config)
	c.MeterReading = NewMeterReadingClient(c.config)
	c.TimeSession = NewTimeSessionClient(c.config)
	c.UtilityPrice = NewUtilityPriceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Address:      NewAddressClient(cfg),
		Invoice:      NewInvoiceClient(cfg),
		MeterReading: NewMeterReadingClient(cfg),
		TimeSession:  NewTimeSessionClient(cfg),
		UtilityPrice: NewUtilityPriceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Address:      NewAddressClient(cfg),
		Invoice:      NewInvoiceClient(cfg),
		MeterReading: NewMeterReadingClient(cfg),
		TimeSession:  NewTimeSessionClient(cfg),
		UtilityPrice: NewUtilityPriceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Address.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Address.Use(hooks...)
	c.Invoice.Use(hooks...)
	c.MeterReading.Use(hooks...)
	c.TimeSession.Use(hooks...)
	c.UtilityPrice.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Address.Intercept(interceptors...)
	c.Invoice.Intercept(interceptors...)
	c.MeterReading.Intercept(interceptors...)
	c.TimeSession.Intercept(interceptors...)
	c.UtilityPrice.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AddressMutation:
		return c.Address.mutate(ctx, m)
	case *InvoiceMutation:
		return c.Invoice.mutate(ctx, m)
	case *MeterReadingMutation:
		return c.MeterReading.mutate(ctx, m)
	case *TimeSessionMutation:
		return c.TimeSession.mutate(ctx, m)
	case *UtilityPriceMutation:
		return c.UtilityPrice.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AddressClient is a client for the Address schema.
type AddressClient struct {
	config
}

// NewAddressClient returns a client for the Address from the given config.
func NewAddressClient(c config) *AddressClient {
	return &AddressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `address.Hooks(f(g(h())))`.
func (c *AddressClient) Use(hooks ...Hook) {
	c.hooks.Address = append(c.hooks.Address, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `address.Intercept(f(g(h())))`.
func (c *AddressClient) Intercept(interceptors ...Interceptor) {
	c.inters.Address = append(c.inters.Address, interceptors...)
}

// Create returns a builder for creating a Address entity.
func (c *AddressClient) Create() *AddressCreate {
	mutation := newAddressMutation(c.config, OpCreate)
	return &AddressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Address entities.
func (c *AddressClient) CreateBulk(builders ...*AddressCreate) *AddressCreateBulk {
	return &AddressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AddressClient) MapCreateBulk(slice any, setFunc func(*AddressCreate, int)) *AddressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AddressCreateBulk{err: fmt.Errorf("calling to AddressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AddressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AddressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Address.
func (c *AddressClient) Update() *AddressUpdate {
	mutation := newAddressMutation(c.config, OpUpdate)
	return &AddressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AddressClient) UpdateOne(_m *Address) *AddressUpdateOne {
	mutation := newAddressMutation(c.config, OpUpdateOne, withAddress(_m))
	return &AddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AddressClient) UpdateOneID(id uuid.UUID) *AddressUpdateOne {
	mutation := newAddressMutation(c.config, OpUpdateOne, withAddressID(id))
	return &AddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Address.
func (c *AddressClient) Delete() *AddressDelete {
	mutation := newAddressMutation(c.config, OpDelete)
	return &AddressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AddressClient) DeleteOne(_m *Address) *AddressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AddressClient) DeleteOneID(id uuid.UUID) *AddressDeleteOne {
	builder := c.Delete().Where(address.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AddressDeleteOne{builder}
}

// Query returns a query builder for Address.
func (c *AddressClient) Query() *AddressQuery {
	return &AddressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAddress},
		inters: c.Interceptors(),
	}
}

// Get returns a Address entity by its id.
func (c *AddressClient) Get(ctx context.Context, id uuid.UUID) (*Address, error) {
	return c.Query().Where(address.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AddressClient) GetX(ctx context.Context, id uuid.UUID) *Address {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AddressClient) Hooks() []Hook {
	return c.hooks.Address
}

// Interceptors returns the client interceptors.
func (c *AddressClient) Interceptors() []Interceptor {
	return c.inters.Address
}

func (c *AddressClient) mutate(ctx context.Context, m *AddressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AddressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AddressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AddressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AddressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Address mutation op: %q", m.Op())
	}
}

// InvoiceClient is a client for the Invoice schema.
type InvoiceClient struct {
	config
}

// NewInvoiceClient returns a client for the Invoice from the given config.
func NewInvoiceClient(c config) *InvoiceClient {
	return &InvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoice.Hooks(f(g(h())))`.
func (c *InvoiceClient) Use(hooks ...Hook) {
	c.hooks.Invoice = append(c.hooks.Invoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoice.Intercept(f(g(h())))`.
func (c *InvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Invoice = append(c.inters.Invoice, interceptors...)
}

// Create returns a builder for creating a Invoice entity.
func (c *InvoiceClient) Create() *InvoiceCreate {
	mutation := newInvoiceMutation(c.config, OpCreate)
	return &InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Invoice entities.
func (c *InvoiceClient) CreateBulk(builders ...*InvoiceCreate) *InvoiceCreateBulk {
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceClient) MapCreateBulk(slice any, setFunc func(*InvoiceCreate, int)) *InvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceCreateBulk{err: fmt.Errorf("calling to InvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Invoice.
func (c *InvoiceClient) Update() *InvoiceUpdate {
	mutation := newInvoiceMutation(c.config, OpUpdate)
	return &InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceClient) UpdateOne(_m *Invoice) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoice(_m))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceClient) UpdateOneID(id uuid.UUID) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoiceID(id))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Invoice.
func (c *InvoiceClient) Delete() *InvoiceDelete {
	mutation := newInvoiceMutation(c.config, OpDelete)
	return &InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceClient) DeleteOne(_m *Invoice) *InvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceClient) DeleteOneID(id uuid.UUID) *InvoiceDeleteOne {
	builder := c.Delete().Where(invoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDeleteOne{builder}
}

// Query returns a query builder for Invoice.
func (c *InvoiceClient) Query() *InvoiceQuery {
	return &InvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Invoice entity by its id.
func (c *InvoiceClient) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return c.Query().Where(invoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceClient) GetX(ctx context.Context, id uuid.UUID) *Invoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InvoiceClient) Hooks() []Hook {
	return c.hooks.Invoice
}

// Interceptors returns the client interceptors.
func (c *InvoiceClient) Interceptors() []Interceptor {
	return c.inters.Invoice
}

func (c *InvoiceClient) mutate(ctx context.Context, m *InvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Invoice mutation op: %q", m.Op())
	}
}

// MeterReadingClient is a client for the MeterReading schema.
type MeterReadingClient struct {
	config
}

// NewMeterReadingClient returns a client for the MeterReading from the given config.
func NewMeterReadingClient(c config) *MeterReadingClient {
	return &MeterReadingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `meterreading.Hooks(f(g(h())))`.
func (c *MeterReadingClient) Use(hooks ...Hook) {
	c.hooks.MeterReading = append(c.hooks.MeterReading, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `meterreading.Intercept(f(g(h())))`.
func (c *MeterReadingClient) Intercept(interceptors ...Interceptor) {
	c.inters.MeterReading = append(c.inters.MeterReading, interceptors...)
}

// Create returns a builder for creating a MeterReading entity.
func (c *MeterReadingClient) Create() *MeterReadingCreate {
	mutation := newMeterReadingMutation(c.config, OpCreate)
	return &MeterReadingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MeterReading entities.
func (c *MeterReadingClient) CreateBulk(builders ...*MeterReadingCreate) *MeterReadingCreateBulk {
	return &MeterReadingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MeterReadingClient) MapCreateBulk(slice any, setFunc func(*MeterReadingCreate, int)) *MeterReadingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MeterReadingCreateBulk{err: fmt.Errorf("calling to MeterReadingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MeterReadingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MeterReadingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MeterReading.
func (c *MeterReadingClient) Update() *MeterReadingUpdate {
	mutation := newMeterReadingMutation(c.config, OpUpdate)
	return &MeterReadingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MeterReadingClient) UpdateOne(_m *MeterReading) *MeterReadingUpdateOne {
	mutation := newMeterReadingMutation(c.config, OpUpdateOne, withMeterReading(_m))
	return &MeterReadingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MeterReadingClient) UpdateOneID(id uuid.UUID) *MeterReadingUpdateOne {
	mutation := newMeterReadingMutation(c.config, OpUpdateOne, withMeterReadingID(id))
	return &MeterReadingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MeterReading.
func (c *MeterReadingClient) Delete() *MeterReadingDelete {
	mutation := newMeterReadingMutation(c.config, OpDelete)
	return &MeterReadingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MeterReadingClient) DeleteOne(_m *MeterReading) *MeterReadingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MeterReadingClient) DeleteOneID(id uuid.UUID) *MeterReadingDeleteOne {
	builder := c.Delete().Where(meterreading.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MeterReadingDeleteOne{builder}
}

// Query returns a query builder for MeterReading.
func (c *MeterReadingClient) Query() *MeterReadingQuery {
	return &MeterReadingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMeterReading},
		inters: c.Interceptors(),
	}
}

// Get returns a MeterReading entity by its id.
func (c *MeterReadingClient) Get(ctx context.Context, id uuid.UUID) (*MeterReading, error) {
	return c.Query().Where(meterreading.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MeterReadingClient) GetX(ctx context.Context, id uuid.UUID) *MeterReading {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MeterReadingClient) Hooks() []Hook {
	return c.hooks.MeterReading
}

// Interceptors returns the client interceptors.
func (c *MeterReadingClient) Interceptors() []Interceptor {
	return c.inters.MeterReading
}

func (c *MeterReadingClient) mutate(ctx context.Context, m *MeterReadingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MeterReadingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MeterReadingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MeterReadingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MeterReadingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MeterReading mutation op: %q", m.Op())
	}
}

// TimeSessionClient is a client for the TimeSession schema.
type TimeSessionClient struct {
	config
}

// NewTimeSessionClient returns a client for the TimeSession from the given config.
func NewTimeSessionClient(c config) *TimeSessionClient {
	return &TimeSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `timesession.Hooks(f(g(h())))`.
func (c *TimeSessionClient) Use(hooks ...Hook) {
	c.hooks.TimeSession = append(c.hooks.TimeSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `timesession.Intercept(f(g(h())))`.
func (c *TimeSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TimeSession = append(c.inters.TimeSession, interceptors...)
}

// Create returns a builder for creating a TimeSession entity.
func (c *TimeSessionClient) Create() *TimeSessionCreate {
	mutation := newTimeSessionMutation(c.config, OpCreate)
	return &TimeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TimeSession entities.
func (c *TimeSessionClient) CreateBulk(builders ...*TimeSessionCreate) *TimeSessionCreateBulk {
	return &TimeSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TimeSessionClient) MapCreateBulk(slice any, setFunc func(*TimeSessionCreate, int)) *TimeSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TimeSessionCreateBulk{err: fmt.Errorf("calling to TimeSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TimeSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TimeSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TimeSession.
func (c *TimeSessionClient) Update() *TimeSessionUpdate {
	mutation := newTimeSessionMutation(c.config, OpUpdate)
	return &TimeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TimeSessionClient) UpdateOne(_m *TimeSession) *TimeSessionUpdateOne {
	mutation := newTimeSessionMutation(c.config, OpUpdateOne, withTimeSession(_m))
	return &TimeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TimeSessionClient) UpdateOneID(id uuid.UUID) *TimeSessionUpdateOne {
	mutation := newTimeSessionMutation(c.config, OpUpdateOne, withTimeSessionID(id))
	return &TimeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TimeSession.
func (c *TimeSessionClient) Delete() *TimeSessionDelete {
	mutation := newTimeSessionMutation(c.config, OpDelete)
	return &TimeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TimeSessionClient) DeleteOne(_m *TimeSession) *TimeSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TimeSessionClient) DeleteOneID(id uuid.UUID) *TimeSessionDeleteOne {
	builder := c.Delete().Where(timesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TimeSessionDeleteOne{builder}
}

// Query returns a query builder for TimeSession.
func (c *TimeSessionClient) Query() *TimeSessionQuery {
	return &TimeSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTimeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a TimeSession entity by its id.
func (c *TimeSessionClient) Get(ctx context.Context, id uuid.UUID) (*TimeSession, error) {
	return c.Query().Where(timesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TimeSessionClient) GetX(ctx context.Context, id uuid.UUID) *TimeSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TimeSessionClient) Hooks() []Hook {
	return c.hooks.TimeSession
}

// Interceptors returns the client interceptors.
func (c *TimeSessionClient) Interceptors() []Interceptor {
	return c.inters.TimeSession
}

func (c *TimeSessionClient) mutate(ctx context.Context, m *TimeSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TimeSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TimeSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TimeSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TimeSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TimeSession mutation op: %q", m.Op())
	}
}

// UtilityPriceClient is a client for the UtilityPrice schema.
type UtilityPriceClient struct {
	config
}

// NewUtilityPriceClient returns a client for the UtilityPrice from the given config.
func NewUtilityPriceClient(c config) *UtilityPriceClient {
	return &UtilityPriceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `utilityprice.Hooks(f(g(h())))`.
func (c *UtilityPriceClient) Use(hooks ...Hook) {
	c.hooks.UtilityPrice = append(c.hooks.UtilityPrice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `utilityprice.Intercept(f(g(h())))`.
func (c *UtilityPriceClient) Intercept(interceptors ...Interceptor) {
	c.inters.UtilityPrice = append(c.inters.UtilityPrice, interceptors...)
}

// Create returns a builder for creating a UtilityPrice entity.
func (c *UtilityPriceClient) Create() *UtilityPriceCreate {
	mutation := newUtilityPriceMutation(c.config, OpCreate)
	return &UtilityPriceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UtilityPrice entities.
func (c *UtilityPriceClient) CreateBulk(builders ...*UtilityPriceCreate) *UtilityPriceCreateBulk {
	return &UtilityPriceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UtilityPriceClient) MapCreateBulk(slice any, setFunc func(*UtilityPriceCreate, int)) *UtilityPriceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UtilityPriceCreateBulk{err: fmt.Errorf("calling to UtilityPriceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UtilityPriceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UtilityPriceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UtilityPrice.
func (c *UtilityPriceClient) Update() *UtilityPriceUpdate {
	mutation := newUtilityPriceMutation(c.config, OpUpdate)
	return &UtilityPriceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UtilityPriceClient) UpdateOne(_m *UtilityPrice) *UtilityPriceUpdateOne {
	mutation := newUtilityPriceMutation(c.config, OpUpdateOne, withUtilityPrice(_m))
	return &UtilityPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UtilityPriceClient) UpdateOneID(id uuid.UUID) *UtilityPriceUpdateOne {
	mutation := newUtilityPriceMutation(c.config, OpUpdateOne, withUtilityPriceID(id))
	return &UtilityPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UtilityPrice.
func (c *UtilityPriceClient) Delete() *UtilityPriceDelete {
	mutation := newUtilityPriceMutation(c.config, OpDelete)
	return &UtilityPriceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UtilityPriceClient) DeleteOne(_m *UtilityPrice) *UtilityPriceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UtilityPriceClient) DeleteOneID(id uuid.UUID) *UtilityPriceDeleteOne {
	builder := c.Delete().Where(utilityprice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UtilityPriceDeleteOne{builder}
}

// Query returns a query builder for UtilityPrice.
func (c *UtilityPriceClient) Query() *UtilityPriceQuery {
	return &UtilityPriceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUtilityPrice},
		inters: c.Interceptors(),
	}
}

// Get returns a UtilityPrice entity by its id.
func (c *UtilityPriceClient) Get(ctx context.Context, id uuid.UUID) (*UtilityPrice, error) {
	return c.Query().Where(utilityprice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UtilityPriceClient) GetX(ctx context.Context, id uuid.UUID) *UtilityPrice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UtilityPriceClient) Hooks() []Hook {
	return c.hooks.UtilityPrice
}

// Interceptors returns the client interceptors.
func (c *UtilityPriceClient) Interceptors() []Interceptor {
	return c.inters.UtilityPrice
}

func (c *UtilityPriceClient) mutate(ctx context.Context, m *UtilityPriceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UtilityPriceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UtilityPriceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UtilityPriceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UtilityPriceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UtilityPrice mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Address, Invoice, MeterReading, TimeSession, UtilityPrice []ent.Hook
	}
	inters struct {
		Address, Invoice, MeterReading, TimeSession, UtilityPrice []ent.Interceptor
	}
)
