// Code generated by ent, DO NOT EDIT.

package meterreading

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the meterreading type in the database.
	Label = "meter_reading"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldReadingDate holds the string denoting the reading_date field in the database.
	FieldReadingDate = "reading_date"
	// FieldWaterReading holds the string denoting the water_reading field in the database.
	FieldWaterReading = "water_reading"
	// FieldElectricityReading holds the string denoting the electricity_reading field in the database.
	FieldElectricityReading = "electricity_reading"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the meterreading in the database.
	Table = "meter_readings"
)

// Columns holds all SQL columns for meterreading fields.
var Columns = []string{
	FieldID,
	FieldAddress,
	FieldReadingDate,
	FieldWaterReading,
	FieldElectricityReading,
	FieldNotes,
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
	// AddressValidator is a validator for the "address" field. It is called by the builders before save.
	AddressValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MeterReading queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByReadingDate orders the results by the reading_date field.
func ByReadingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingDate, opts...).ToFunc()
}

// ByWaterReading orders the results by the water_reading field.
func ByWaterReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWaterReading, opts...).ToFunc()
}

// ByElectricityReading orders the results by the electricity_reading field.
func ByElectricityReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElectricityReading, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
