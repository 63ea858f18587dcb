// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AddressesColumns holds the columns for the "addresses" table.
	AddressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AddressesTable holds the schema information for the "addresses" table.
	AddressesTable = &schema.Table{
		Name:       "addresses",
		Columns:    AddressesColumns,
		PrimaryKey: []*schema.Column{AddressesColumns[0]},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "customer_number", Type: field.TypeString},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "is_paid", Type: field.TypeBool, Default: false},
		{Name: "payment_date", Type: field.TypeTime, Nullable: true},
		{Name: "utility_type", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString, Nullable: true},
		{Name: "file_path", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_customer_number_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[2]},
			},
			{
				Name:    "invoice_is_paid_due_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[7], InvoicesColumns[5]},
			},
			{
				Name:    "invoice_address",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[3]},
			},
		},
	}
	// MeterReadingsColumns holds the columns for the "meter_readings" table.
	MeterReadingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "address", Type: field.TypeString},
		{Name: "reading_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "water_reading", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "electricity_reading", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MeterReadingsTable holds the schema information for the "meter_readings" table.
	MeterReadingsTable = &schema.Table{
		Name:       "meter_readings",
		Columns:    MeterReadingsColumns,
		PrimaryKey: []*schema.Column{MeterReadingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meterreading_address_reading_date",
				Unique:  false,
				Columns: []*schema.Column{MeterReadingsColumns[1], MeterReadingsColumns[2]},
			},
		},
	}
	// TimeSessionsColumns holds the columns for the "time_sessions" table.
	TimeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "custom_category", Type: field.TypeString, Nullable: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TimeSessionsTable holds the schema information for the "time_sessions" table.
	TimeSessionsTable = &schema.Table{
		Name:       "time_sessions",
		Columns:    TimeSessionsColumns,
		PrimaryKey: []*schema.Column{TimeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "timesession_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSessionsColumns[3]},
			},
			{
				Name:    "timesession_category_start_time",
				Unique:  false,
				Columns: []*schema.Column{TimeSessionsColumns[1], TimeSessionsColumns[3]},
			},
		},
	}
	// UtilityPricesColumns holds the columns for the "utility_prices" table.
	UtilityPricesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "utility_type", Type: field.TypeString},
		{Name: "price_per_unit", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,4)"}},
		{Name: "unit_name", Type: field.TypeString},
		{Name: "currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "effective_from", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "effective_until", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UtilityPricesTable holds the schema information for the "utility_prices" table.
	UtilityPricesTable = &schema.Table{
		Name:       "utility_prices",
		Columns:    UtilityPricesColumns,
		PrimaryKey: []*schema.Column{UtilityPricesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "utilityprice_utility_type_effective_from",
				Unique:  false,
				Columns: []*schema.Column{UtilityPricesColumns[1], UtilityPricesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AddressesTable,
		InvoicesTable,
		MeterReadingsTable,
		TimeSessionsTable,
		UtilityPricesTable,
	}
)

func init() {
	AddressesTable.Annotation = &entsql.Annotation{
		Table: "addresses",
	}
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	MeterReadingsTable.Annotation = &entsql.Annotation{
		Table: "meter_readings",
	}
	TimeSessionsTable.Annotation = &entsql.Annotation{
		Table: "time_sessions",
	}
	UtilityPricesTable.Annotation = &entsql.Annotation{
		Table: "utility_prices",
	}
}
