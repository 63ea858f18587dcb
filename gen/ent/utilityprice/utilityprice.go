// Code generated by ent, DO NOT EDIT.

package utilityprice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the utilityprice type in the database.
	Label = "utility_price"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUtilityType holds the string denoting the utility_type field in the database.
	FieldUtilityType = "utility_type"
	// FieldPricePerUnit holds the string denoting the price_per_unit field in the database.
	FieldPricePerUnit = "price_per_unit"
	// FieldUnitName holds the string denoting the unit_name field in the database.
	FieldUnitName = "unit_name"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldEffectiveFrom holds the string denoting the effective_from field in the database.
	FieldEffectiveFrom = "effective_from"
	// FieldEffectiveUntil holds the string denoting the effective_until field in the database.
	FieldEffectiveUntil = "effective_until"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the utilityprice in the database.
	Table = "utility_prices"
)

// Columns holds all SQL columns for utilityprice fields.
var Columns = []string{
	FieldID,
	FieldUtilityType,
	FieldPricePerUnit,
	FieldUnitName,
	FieldCurrency,
	FieldEffectiveFrom,
	FieldEffectiveUntil,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UtilityTypeValidator is a validator for the "utility_type" field. It is called by the builders before save.
	UtilityTypeValidator func(string) error
	// UnitNameValidator is a validator for the "unit_name" field. It is called by the builders before save.
	UnitNameValidator func(string) error
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UtilityPrice queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUtilityType orders the results by the utility_type field.
func ByUtilityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtilityType, opts...).ToFunc()
}

// ByPricePerUnit orders the results by the price_per_unit field.
func ByPricePerUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricePerUnit, opts...).ToFunc()
}

// ByUnitName orders the results by the unit_name field.
func ByUnitName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitName, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByEffectiveFrom orders the results by the effective_from field.
func ByEffectiveFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveFrom, opts...).ToFunc()
}

// ByEffectiveUntil orders the results by the effective_until field.
func ByEffectiveUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectiveUntil, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
