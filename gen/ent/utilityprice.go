// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/utilityprice"
)

// UtilityPrice is the model entity for the UtilityPrice schema.
type UtilityPrice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UtilityType holds the value of the "utility_type" field.
	UtilityType string `json:"utility_type,omitempty"`
	// PricePerUnit holds the value of the "price_per_unit" field.
	PricePerUnit float64 `json:"price_per_unit,omitempty"`
	// UnitName holds the value of the "unit_name" field.
	UnitName string `json:"unit_name,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// EffectiveFrom holds the value of the "effective_from" field.
	EffectiveFrom time.Time `json:"effective_from,omitempty"`
	// EffectiveUntil holds the value of the "effective_until" field.
	EffectiveUntil *time.Time `json:"effective_until,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UtilityPrice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case utilityprice.FieldPricePerUnit:
			values[i] = new(sql.NullFloat64)
		case utilityprice.FieldUtilityType, utilityprice.FieldUnitName, utilityprice.FieldCurrency:
			values[i] = new(sql.NullString)
		case utilityprice.FieldEffectiveFrom, utilityprice.FieldEffectiveUntil, utilityprice.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case utilityprice.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UtilityPrice fields.
func (_m *UtilityPrice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case utilityprice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case utilityprice.FieldUtilityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utility_type", values[i])
			} else if value.Valid {
				_m.UtilityType = value.String
			}
		case utilityprice.FieldPricePerUnit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_per_unit", values[i])
			} else if value.Valid {
				_m.PricePerUnit = value.Float64
			}
		case utilityprice.FieldUnitName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_name", values[i])
			} else if value.Valid {
				_m.UnitName = value.String
			}
		case utilityprice.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case utilityprice.FieldEffectiveFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_from", values[i])
			} else if value.Valid {
				_m.EffectiveFrom = value.Time
			}
		case utilityprice.FieldEffectiveUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field effective_until", values[i])
			} else if value.Valid {
				_m.EffectiveUntil = new(time.Time)
				*_m.EffectiveUntil = value.Time
			}
		case utilityprice.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the UtilityPrice.
// This includes values selected through modifiers, order, etc.
func (_m *UtilityPrice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UtilityPrice.
// Note that you need to call UtilityPrice.Unwrap() before calling this method if this UtilityPrice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UtilityPrice) Update() *UtilityPriceUpdateOne {
	return NewUtilityPriceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UtilityPrice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UtilityPrice) Unwrap() *UtilityPrice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UtilityPrice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UtilityPrice) String() string {
	var builder strings.Builder
	builder.WriteString("UtilityPrice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("utility_type=")
	builder.WriteString(_m.UtilityType)
	builder.WriteString(", ")
	builder.WriteString("price_per_unit=")
	builder.WriteString(fmt.Sprintf("%v", _m.PricePerUnit))
	builder.WriteString(", ")
	builder.WriteString("unit_name=")
	builder.WriteString(_m.UnitName)
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("effective_from=")
	builder.WriteString(_m.EffectiveFrom.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EffectiveUntil; v != nil {
		builder.WriteString("effective_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UtilityPrices is a parsable slice of UtilityPrice.
type UtilityPrices []*UtilityPrice
