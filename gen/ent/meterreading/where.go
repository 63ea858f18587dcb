// Code generated by ent, DO NOT EDIT.

package meterreading

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLTE(FieldID, id))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldAddress, v))
}

// ReadingDate applies equality check predicate on the "reading_date" field. It's identical to ReadingDateEQ.
func ReadingDate(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldReadingDate, v))
}

// WaterReading applies equality check predicate on the "water_reading" field. It's identical to WaterReadingEQ.
func WaterReading(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldWaterReading, v))
}

// ElectricityReading applies equality check predicate on the "electricity_reading" field. It's identical to ElectricityReadingEQ.
func ElectricityReading(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldElectricityReading, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldCreatedAt, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldContainsFold(FieldAddress, v))
}

// ReadingDateEQ applies the EQ predicate on the "reading_date" field.
func ReadingDateEQ(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldReadingDate, v))
}

// ReadingDateNEQ applies the NEQ predicate on the "reading_date" field.
func ReadingDateNEQ(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNEQ(FieldReadingDate, v))
}

// ReadingDateIn applies the In predicate on the "reading_date" field.
func ReadingDateIn(vs ...time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIn(FieldReadingDate, vs...))
}

// ReadingDateNotIn applies the NotIn predicate on the "reading_date" field.
func ReadingDateNotIn(vs ...time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotIn(FieldReadingDate, vs...))
}

// ReadingDateGT applies the GT predicate on the "reading_date" field.
func ReadingDateGT(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGT(FieldReadingDate, v))
}

// ReadingDateGTE applies the GTE predicate on the "reading_date" field.
func ReadingDateGTE(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGTE(FieldReadingDate, v))
}

// ReadingDateLT applies the LT predicate on the "reading_date" field.
func ReadingDateLT(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLT(FieldReadingDate, v))
}

// ReadingDateLTE applies the LTE predicate on the "reading_date" field.
func ReadingDateLTE(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLTE(FieldReadingDate, v))
}

// WaterReadingEQ applies the EQ predicate on the "water_reading" field.
func WaterReadingEQ(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldWaterReading, v))
}

// WaterReadingNEQ applies the NEQ predicate on the "water_reading" field.
func WaterReadingNEQ(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNEQ(FieldWaterReading, v))
}

// WaterReadingIn applies the In predicate on the "water_reading" field.
func WaterReadingIn(vs ...float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIn(FieldWaterReading, vs...))
}

// WaterReadingNotIn applies the NotIn predicate on the "water_reading" field.
func WaterReadingNotIn(vs ...float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotIn(FieldWaterReading, vs...))
}

// WaterReadingGT applies the GT predicate on the "water_reading" field.
func WaterReadingGT(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGT(FieldWaterReading, v))
}

// WaterReadingGTE applies the GTE predicate on the "water_reading" field.
func WaterReadingGTE(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGTE(FieldWaterReading, v))
}

// WaterReadingLT applies the LT predicate on the "water_reading" field.
func WaterReadingLT(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLT(FieldWaterReading, v))
}

// WaterReadingLTE applies the LTE predicate on the "water_reading" field.
func WaterReadingLTE(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLTE(FieldWaterReading, v))
}

// WaterReadingIsNil applies the IsNil predicate on the "water_reading" field.
func WaterReadingIsNil() predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIsNull(FieldWaterReading))
}

// WaterReadingNotNil applies the NotNil predicate on the "water_reading" field.
func WaterReadingNotNil() predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotNull(FieldWaterReading))
}

// ElectricityReadingEQ applies the EQ predicate on the "electricity_reading" field.
func ElectricityReadingEQ(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldElectricityReading, v))
}

// ElectricityReadingNEQ applies the NEQ predicate on the "electricity_reading" field.
func ElectricityReadingNEQ(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNEQ(FieldElectricityReading, v))
}

// ElectricityReadingIn applies the In predicate on the "electricity_reading" field.
func ElectricityReadingIn(vs ...float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIn(FieldElectricityReading, vs...))
}

// ElectricityReadingNotIn applies the NotIn predicate on the "electricity_reading" field.
func ElectricityReadingNotIn(vs ...float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotIn(FieldElectricityReading, vs...))
}

// ElectricityReadingGT applies the GT predicate on the "electricity_reading" field.
func ElectricityReadingGT(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGT(FieldElectricityReading, v))
}

// ElectricityReadingGTE applies the GTE predicate on the "electricity_reading" field.
func ElectricityReadingGTE(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGTE(FieldElectricityReading, v))
}

// ElectricityReadingLT applies the LT predicate on the "electricity_reading" field.
func ElectricityReadingLT(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLT(FieldElectricityReading, v))
}

// ElectricityReadingLTE applies the LTE predicate on the "electricity_reading" field.
func ElectricityReadingLTE(v float64) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLTE(FieldElectricityReading, v))
}

// ElectricityReadingIsNil applies the IsNil predicate on the "electricity_reading" field.
func ElectricityReadingIsNil() predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIsNull(FieldElectricityReading))
}

// ElectricityReadingNotNil applies the NotNil predicate on the "electricity_reading" field.
func ElectricityReadingNotNil() predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotNull(FieldElectricityReading))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MeterReading {
	return predicate.MeterReading(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeterReading) predicate.MeterReading {
	return predicate.MeterReading(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeterReading) predicate.MeterReading {
	return predicate.MeterReading(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeterReading) predicate.MeterReading {
	return predicate.MeterReading(sql.NotPredicates(p))
}
