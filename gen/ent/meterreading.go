// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/meterreading"
)

// MeterReading is the model entity for the MeterReading schema.
type MeterReading struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Address holds the value of the "address" field.
	Address string `json:"address,omitempty"`
	// ReadingDate holds the value of the "reading_date" field.
	ReadingDate time.Time `json:"reading_date,omitempty"`
	// WaterReading holds the value of the "water_reading" field.
	WaterReading *float64 `json:"water_reading,omitempty"`
	// ElectricityReading holds the value of the "electricity_reading" field.
	ElectricityReading *float64 `json:"electricity_reading,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MeterReading) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case meterreading.FieldWaterReading, meterreading.FieldElectricityReading:
			values[i] = new(sql.NullFloat64)
		case meterreading.FieldAddress, meterreading.FieldNotes:
			values[i] = new(sql.NullString)
		case meterreading.FieldReadingDate, meterreading.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case meterreading.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MeterReading fields.
func (_m *MeterReading) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case meterreading.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case meterreading.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case meterreading.FieldReadingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reading_date", values[i])
			} else if value.Valid {
				_m.ReadingDate = value.Time
			}
		case meterreading.FieldWaterReading:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field water_reading", values[i])
			} else if value.Valid {
				_m.WaterReading = new(float64)
				*_m.WaterReading = value.Float64
			}
		case meterreading.FieldElectricityReading:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field electricity_reading", values[i])
			} else if value.Valid {
				_m.ElectricityReading = new(float64)
				*_m.ElectricityReading = value.Float64
			}
		case meterreading.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case meterreading.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MeterReading.
// This includes values selected through modifiers, order, etc.
func (_m *MeterReading) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MeterReading.
// Note that you need to call MeterReading.Unwrap() before calling this method if this MeterReading
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MeterReading) Update() *MeterReadingUpdateOne {
	return NewMeterReadingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MeterReading entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MeterReading) Unwrap() *MeterReading {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MeterReading is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MeterReading) String() string {
	var builder strings.Builder
	builder.WriteString("MeterReading(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("reading_date=")
	builder.WriteString(_m.ReadingDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.WaterReading; v != nil {
		builder.WriteString("water_reading=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ElectricityReading; v != nil {
		builder.WriteString("electricity_reading=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MeterReadings is a parsable slice of MeterReading.
type MeterReadings []*MeterReading
