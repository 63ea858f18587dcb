// Code generated by ent, DO NOT EDIT.

package timesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/huisbeheer/utility-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldCategory, v))
}

// CustomCategory applies equality check predicate on the "custom_category" field. It's identical to CustomCategoryEQ.
func CustomCategory(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldCustomCategory, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldEndTime, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldContainsFold(FieldCategory, v))
}

// CustomCategoryEQ applies the EQ predicate on the "custom_category" field.
func CustomCategoryEQ(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldCustomCategory, v))
}

// CustomCategoryNEQ applies the NEQ predicate on the "custom_category" field.
func CustomCategoryNEQ(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldCustomCategory, v))
}

// CustomCategoryIn applies the In predicate on the "custom_category" field.
func CustomCategoryIn(vs ...string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldCustomCategory, vs...))
}

// CustomCategoryNotIn applies the NotIn predicate on the "custom_category" field.
func CustomCategoryNotIn(vs ...string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldCustomCategory, vs...))
}

// CustomCategoryGT applies the GT predicate on the "custom_category" field.
func CustomCategoryGT(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldCustomCategory, v))
}

// CustomCategoryGTE applies the GTE predicate on the "custom_category" field.
func CustomCategoryGTE(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldCustomCategory, v))
}

// CustomCategoryLT applies the LT predicate on the "custom_category" field.
func CustomCategoryLT(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldCustomCategory, v))
}

// CustomCategoryLTE applies the LTE predicate on the "custom_category" field.
func CustomCategoryLTE(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldCustomCategory, v))
}

// CustomCategoryContains applies the Contains predicate on the "custom_category" field.
func CustomCategoryContains(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldContains(FieldCustomCategory, v))
}

// CustomCategoryHasPrefix applies the HasPrefix predicate on the "custom_category" field.
func CustomCategoryHasPrefix(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldHasPrefix(FieldCustomCategory, v))
}

// CustomCategoryHasSuffix applies the HasSuffix predicate on the "custom_category" field.
func CustomCategoryHasSuffix(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldHasSuffix(FieldCustomCategory, v))
}

// CustomCategoryIsNil applies the IsNil predicate on the "custom_category" field.
func CustomCategoryIsNil() predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIsNull(FieldCustomCategory))
}

// CustomCategoryNotNil applies the NotNil predicate on the "custom_category" field.
func CustomCategoryNotNil() predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotNull(FieldCustomCategory))
}

// CustomCategoryEqualFold applies the EqualFold predicate on the "custom_category" field.
func CustomCategoryEqualFold(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEqualFold(FieldCustomCategory, v))
}

// CustomCategoryContainsFold applies the ContainsFold predicate on the "custom_category" field.
func CustomCategoryContainsFold(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldContainsFold(FieldCustomCategory, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotNull(FieldEndTime))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldContainsFold(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TimeSession {
	return predicate.TimeSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TimeSession) predicate.TimeSession {
	return predicate.TimeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TimeSession) predicate.TimeSession {
	return predicate.TimeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TimeSession) predicate.TimeSession {
	return predicate.TimeSession(sql.NotPredicates(p))
}
