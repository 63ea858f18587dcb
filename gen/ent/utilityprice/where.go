// Code generated by ent, DO NOT EDIT.

package utilityprice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldID, id))
}

// UtilityType applies equality check predicate on the "utility_type" field. It's identical to UtilityTypeEQ.
func UtilityType(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldUtilityType, v))
}

// PricePerUnit applies equality check predicate on the "price_per_unit" field. It's identical to PricePerUnitEQ.
func PricePerUnit(v float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldPricePerUnit, v))
}

// UnitName applies equality check predicate on the "unit_name" field. It's identical to UnitNameEQ.
func UnitName(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldUnitName, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldCurrency, v))
}

// EffectiveFrom applies equality check predicate on the "effective_from" field. It's identical to EffectiveFromEQ.
func EffectiveFrom(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveUntil applies equality check predicate on the "effective_until" field. It's identical to EffectiveUntilEQ.
func EffectiveUntil(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldEffectiveUntil, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldCreatedAt, v))
}

// UtilityTypeEQ applies the EQ predicate on the "utility_type" field.
func UtilityTypeEQ(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldUtilityType, v))
}

// UtilityTypeNEQ applies the NEQ predicate on the "utility_type" field.
func UtilityTypeNEQ(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldUtilityType, v))
}

// UtilityTypeIn applies the In predicate on the "utility_type" field.
func UtilityTypeIn(vs ...string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldUtilityType, vs...))
}

// UtilityTypeNotIn applies the NotIn predicate on the "utility_type" field.
func UtilityTypeNotIn(vs ...string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldUtilityType, vs...))
}

// UtilityTypeGT applies the GT predicate on the "utility_type" field.
func UtilityTypeGT(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldUtilityType, v))
}

// UtilityTypeGTE applies the GTE predicate on the "utility_type" field.
func UtilityTypeGTE(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldUtilityType, v))
}

// UtilityTypeLT applies the LT predicate on the "utility_type" field.
func UtilityTypeLT(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldUtilityType, v))
}

// UtilityTypeLTE applies the LTE predicate on the "utility_type" field.
func UtilityTypeLTE(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldUtilityType, v))
}

// UtilityTypeContains applies the Contains predicate on the "utility_type" field.
func UtilityTypeContains(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldContains(FieldUtilityType, v))
}

// UtilityTypeHasPrefix applies the HasPrefix predicate on the "utility_type" field.
func UtilityTypeHasPrefix(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldHasPrefix(FieldUtilityType, v))
}

// UtilityTypeHasSuffix applies the HasSuffix predicate on the "utility_type" field.
func UtilityTypeHasSuffix(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldHasSuffix(FieldUtilityType, v))
}

// UtilityTypeEqualFold applies the EqualFold predicate on the "utility_type" field.
func UtilityTypeEqualFold(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEqualFold(FieldUtilityType, v))
}

// UtilityTypeContainsFold applies the ContainsFold predicate on the "utility_type" field.
func UtilityTypeContainsFold(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldContainsFold(FieldUtilityType, v))
}

// PricePerUnitEQ applies the EQ predicate on the "price_per_unit" field.
func PricePerUnitEQ(v float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldPricePerUnit, v))
}

// PricePerUnitNEQ applies the NEQ predicate on the "price_per_unit" field.
func PricePerUnitNEQ(v float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldPricePerUnit, v))
}

// PricePerUnitIn applies the In predicate on the "price_per_unit" field.
func PricePerUnitIn(vs ...float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldPricePerUnit, vs...))
}

// PricePerUnitNotIn applies the NotIn predicate on the "price_per_unit" field.
func PricePerUnitNotIn(vs ...float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldPricePerUnit, vs...))
}

// PricePerUnitGT applies the GT predicate on the "price_per_unit" field.
func PricePerUnitGT(v float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldPricePerUnit, v))
}

// PricePerUnitGTE applies the GTE predicate on the "price_per_unit" field.
func PricePerUnitGTE(v float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldPricePerUnit, v))
}

// PricePerUnitLT applies the LT predicate on the "price_per_unit" field.
func PricePerUnitLT(v float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldPricePerUnit, v))
}

// PricePerUnitLTE applies the LTE predicate on the "price_per_unit" field.
func PricePerUnitLTE(v float64) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldPricePerUnit, v))
}

// UnitNameEQ applies the EQ predicate on the "unit_name" field.
func UnitNameEQ(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldUnitName, v))
}

// UnitNameNEQ applies the NEQ predicate on the "unit_name" field.
func UnitNameNEQ(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldUnitName, v))
}

// UnitNameIn applies the In predicate on the "unit_name" field.
func UnitNameIn(vs ...string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldUnitName, vs...))
}

// UnitNameNotIn applies the NotIn predicate on the "unit_name" field.
func UnitNameNotIn(vs ...string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldUnitName, vs...))
}

// UnitNameGT applies the GT predicate on the "unit_name" field.
func UnitNameGT(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldUnitName, v))
}

// UnitNameGTE applies the GTE predicate on the "unit_name" field.
func UnitNameGTE(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldUnitName, v))
}

// UnitNameLT applies the LT predicate on the "unit_name" field.
func UnitNameLT(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldUnitName, v))
}

// UnitNameLTE applies the LTE predicate on the "unit_name" field.
func UnitNameLTE(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldUnitName, v))
}

// UnitNameContains applies the Contains predicate on the "unit_name" field.
func UnitNameContains(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldContains(FieldUnitName, v))
}

// UnitNameHasPrefix applies the HasPrefix predicate on the "unit_name" field.
func UnitNameHasPrefix(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldHasPrefix(FieldUnitName, v))
}

// UnitNameHasSuffix applies the HasSuffix predicate on the "unit_name" field.
func UnitNameHasSuffix(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldHasSuffix(FieldUnitName, v))
}

// UnitNameEqualFold applies the EqualFold predicate on the "unit_name" field.
func UnitNameEqualFold(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEqualFold(FieldUnitName, v))
}

// UnitNameContainsFold applies the ContainsFold predicate on the "unit_name" field.
func UnitNameContainsFold(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldContainsFold(FieldUnitName, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldContainsFold(FieldCurrency, v))
}

// EffectiveFromEQ applies the EQ predicate on the "effective_from" field.
func EffectiveFromEQ(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldEffectiveFrom, v))
}

// EffectiveFromNEQ applies the NEQ predicate on the "effective_from" field.
func EffectiveFromNEQ(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldEffectiveFrom, v))
}

// EffectiveFromIn applies the In predicate on the "effective_from" field.
func EffectiveFromIn(vs ...time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromNotIn applies the NotIn predicate on the "effective_from" field.
func EffectiveFromNotIn(vs ...time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldEffectiveFrom, vs...))
}

// EffectiveFromGT applies the GT predicate on the "effective_from" field.
func EffectiveFromGT(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldEffectiveFrom, v))
}

// EffectiveFromGTE applies the GTE predicate on the "effective_from" field.
func EffectiveFromGTE(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldEffectiveFrom, v))
}

// EffectiveFromLT applies the LT predicate on the "effective_from" field.
func EffectiveFromLT(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldEffectiveFrom, v))
}

// EffectiveFromLTE applies the LTE predicate on the "effective_from" field.
func EffectiveFromLTE(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldEffectiveFrom, v))
}

// EffectiveUntilEQ applies the EQ predicate on the "effective_until" field.
func EffectiveUntilEQ(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldEffectiveUntil, v))
}

// EffectiveUntilNEQ applies the NEQ predicate on the "effective_until" field.
func EffectiveUntilNEQ(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldEffectiveUntil, v))
}

// EffectiveUntilIn applies the In predicate on the "effective_until" field.
func EffectiveUntilIn(vs ...time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldEffectiveUntil, vs...))
}

// EffectiveUntilNotIn applies the NotIn predicate on the "effective_until" field.
func EffectiveUntilNotIn(vs ...time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldEffectiveUntil, vs...))
}

// EffectiveUntilGT applies the GT predicate on the "effective_until" field.
func EffectiveUntilGT(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldEffectiveUntil, v))
}

// EffectiveUntilGTE applies the GTE predicate on the "effective_until" field.
func EffectiveUntilGTE(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldEffectiveUntil, v))
}

// EffectiveUntilLT applies the LT predicate on the "effective_until" field.
func EffectiveUntilLT(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldEffectiveUntil, v))
}

// EffectiveUntilLTE applies the LTE predicate on the "effective_until" field.
func EffectiveUntilLTE(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldEffectiveUntil, v))
}

// EffectiveUntilIsNil applies the IsNil predicate on the "effective_until" field.
func EffectiveUntilIsNil() predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIsNull(FieldEffectiveUntil))
}

// EffectiveUntilNotNil applies the NotNil predicate on the "effective_until" field.
func EffectiveUntilNotNil() predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotNull(FieldEffectiveUntil))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UtilityPrice) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UtilityPrice) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UtilityPrice) predicate.UtilityPrice {
	return predicate.UtilityPrice(sql.NotPredicates(p))
}
