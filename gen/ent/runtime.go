// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/db/ent/schema"
	"github.com/huisbeheer/utility-tracker/gen/ent/address"
	"github.com/huisbeheer/utility-tracker/gen/ent/invoice"
	"github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
	"github.com/huisbeheer/utility-tracker/gen/ent/timesession"
	"github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	addressFields := schema.Address{}.Fields()
	_ = addressFields
	// addressDescName is the schema descriptor for name field.
	addressDescName := addressFields[1].Descriptor()
	// address.NameValidator is a validator for the "name" field. It is called by the builders before save.
	address.NameValidator = addressDescName.Validators[0].(func(string) error)
	// addressDescCreatedAt is the schema descriptor for created_at field.
	addressDescCreatedAt := addressFields[2].Descriptor()
	// address.DefaultCreatedAt holds the default value on creation for the created_at field.
	address.DefaultCreatedAt = addressDescCreatedAt.Default.(func() time.Time)
	// addressDescID is the schema descriptor for id field.
	addressDescID := addressFields[0].Descriptor()
	// address.DefaultID holds the default value on creation for the id field.
	address.DefaultID = addressDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCustomerNumber is the schema descriptor for customer_number field.
	invoiceDescCustomerNumber := invoiceFields[1].Descriptor()
	// invoice.CustomerNumberValidator is a validator for the "customer_number" field. It is called by the builders before save.
	invoice.CustomerNumberValidator = invoiceDescCustomerNumber.Validators[0].(func(string) error)
	// invoiceDescIsPaid is the schema descriptor for is_paid field.
	invoiceDescIsPaid := invoiceFields[7].Descriptor()
	// invoice.DefaultIsPaid holds the default value on creation for the is_paid field.
	invoice.DefaultIsPaid = invoiceDescIsPaid.Default.(bool)
	// invoiceDescUtilityType is the schema descriptor for utility_type field.
	invoiceDescUtilityType := invoiceFields[9].Descriptor()
	// invoice.UtilityTypeValidator is a validator for the "utility_type" field. It is called by the builders before save.
	invoice.UtilityTypeValidator = func() func(string) error {
		validators := invoiceDescUtilityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(utility_type string) error {
			for _, fn := range fns {
				if err := fn(utility_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[12].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[13].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	meterreadingFields := schema.MeterReading{}.Fields()
	_ = meterreadingFields
	// meterreadingDescAddress is the schema descriptor for address field.
	meterreadingDescAddress := meterreadingFields[1].Descriptor()
	// meterreading.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	meterreading.AddressValidator = meterreadingDescAddress.Validators[0].(func(string) error)
	// meterreadingDescCreatedAt is the schema descriptor for created_at field.
	meterreadingDescCreatedAt := meterreadingFields[6].Descriptor()
	// meterreading.DefaultCreatedAt holds the default value on creation for the created_at field.
	meterreading.DefaultCreatedAt = meterreadingDescCreatedAt.Default.(func() time.Time)
	// meterreadingDescID is the schema descriptor for id field.
	meterreadingDescID := meterreadingFields[0].Descriptor()
	// meterreading.DefaultID holds the default value on creation for the id field.
	meterreading.DefaultID = meterreadingDescID.Default.(func() uuid.UUID)
	timesessionFields := schema.TimeSession{}.Fields()
	_ = timesessionFields
	// timesessionDescCategory is the schema descriptor for category field.
	timesessionDescCategory := timesessionFields[1].Descriptor()
	// timesession.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	timesession.CategoryValidator = func() func(string) error {
		validators := timesessionDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// timesessionDescCreatedAt is the schema descriptor for created_at field.
	timesessionDescCreatedAt := timesessionFields[6].Descriptor()
	// timesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	timesession.DefaultCreatedAt = timesessionDescCreatedAt.Default.(func() time.Time)
	// timesessionDescUpdatedAt is the schema descriptor for updated_at field.
	timesessionDescUpdatedAt := timesessionFields[7].Descriptor()
	// timesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	timesession.DefaultUpdatedAt = timesessionDescUpdatedAt.Default.(func() time.Time)
	// timesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	timesession.UpdateDefaultUpdatedAt = timesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// timesessionDescID is the schema descriptor for id field.
	timesessionDescID := timesessionFields[0].Descriptor()
	// timesession.DefaultID holds the default value on creation for the id field.
	timesession.DefaultID = timesessionDescID.Default.(func() uuid.UUID)
	utilitypriceFields := schema.UtilityPrice{}.Fields()
	_ = utilitypriceFields
	// utilitypriceDescUtilityType is the schema descriptor for utility_type field.
	utilitypriceDescUtilityType := utilitypriceFields[1].Descriptor()
	// utilityprice.UtilityTypeValidator is a validator for the "utility_type" field. It is called by the builders before save.
	utilityprice.UtilityTypeValidator = func() func(string) error {
		validators := utilitypriceDescUtilityType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(utility_type string) error {
			for _, fn := range fns {
				if err := fn(utility_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// utilitypriceDescUnitName is the schema descriptor for unit_name field.
	utilitypriceDescUnitName := utilitypriceFields[3].Descriptor()
	// utilityprice.UnitNameValidator is a validator for the "unit_name" field. It is called by the builders before save.
	utilityprice.UnitNameValidator = utilitypriceDescUnitName.Validators[0].(func(string) error)
	// utilitypriceDescCurrency is the schema descriptor for currency field.
	utilitypriceDescCurrency := utilitypriceFields[4].Descriptor()
	// utilityprice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	utilityprice.CurrencyValidator = func() func(string) error {
		validators := utilitypriceDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// utilitypriceDescCreatedAt is the schema descriptor for created_at field.
	utilitypriceDescCreatedAt := utilitypriceFields[7].Descriptor()
	// utilityprice.DefaultCreatedAt holds the default value on creation for the created_at field.
	utilityprice.DefaultCreatedAt = utilitypriceDescCreatedAt.Default.(func() time.Time)
	// utilitypriceDescID is the schema descriptor for id field.
	utilitypriceDescID := utilitypriceFields[0].Descriptor()
	// utilityprice.DefaultID holds the default value on creation for the id field.
	utilityprice.DefaultID = utilitypriceDescID.Default.(func() uuid.UUID)
}
