// Code generated by ent, DO NOT EDIT.

package selfcareexercise

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldUpdatedAt, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldSlug, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldDescription, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldDurationMinutes, v))
}

// Instructions applies equality check predicate on the "instructions" field. It's identical to InstructionsEQ.
func Instructions(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldInstructions, v))
}

// Benefits applies equality check predicate on the "benefits" field. It's identical to BenefitsEQ.
func Benefits(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldBenefits, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldUpdatedAt, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContainsFold(FieldSlug, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContainsFold(FieldDescription, v))
}

// ExerciseTypeEQ applies the EQ predicate on the "exercise_type" field.
func ExerciseTypeEQ(v ExerciseType) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldExerciseType, v))
}

// ExerciseTypeNEQ applies the NEQ predicate on the "exercise_type" field.
func ExerciseTypeNEQ(v ExerciseType) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldExerciseType, v))
}

// ExerciseTypeIn applies the In predicate on the "exercise_type" field.
func ExerciseTypeIn(vs ...ExerciseType) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldExerciseType, vs...))
}

// ExerciseTypeNotIn applies the NotIn predicate on the "exercise_type" field.
func ExerciseTypeNotIn(vs ...ExerciseType) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldExerciseType, vs...))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldDurationMinutes, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v Difficulty) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v Difficulty) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...Difficulty) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...Difficulty) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldDifficulty, vs...))
}

// InstructionsEQ applies the EQ predicate on the "instructions" field.
func InstructionsEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldInstructions, v))
}

// InstructionsNEQ applies the NEQ predicate on the "instructions" field.
func InstructionsNEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldInstructions, v))
}

// InstructionsIn applies the In predicate on the "instructions" field.
func InstructionsIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldInstructions, vs...))
}

// InstructionsNotIn applies the NotIn predicate on the "instructions" field.
func InstructionsNotIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldInstructions, vs...))
}

// InstructionsGT applies the GT predicate on the "instructions" field.
func InstructionsGT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldInstructions, v))
}

// InstructionsGTE applies the GTE predicate on the "instructions" field.
func InstructionsGTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldInstructions, v))
}

// InstructionsLT applies the LT predicate on the "instructions" field.
func InstructionsLT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldInstructions, v))
}

// InstructionsLTE applies the LTE predicate on the "instructions" field.
func InstructionsLTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldInstructions, v))
}

// InstructionsContains applies the Contains predicate on the "instructions" field.
func InstructionsContains(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContains(FieldInstructions, v))
}

// InstructionsHasPrefix applies the HasPrefix predicate on the "instructions" field.
func InstructionsHasPrefix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasPrefix(FieldInstructions, v))
}

// InstructionsHasSuffix applies the HasSuffix predicate on the "instructions" field.
func InstructionsHasSuffix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasSuffix(FieldInstructions, v))
}

// InstructionsEqualFold applies the EqualFold predicate on the "instructions" field.
func InstructionsEqualFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEqualFold(FieldInstructions, v))
}

// InstructionsContainsFold applies the ContainsFold predicate on the "instructions" field.
func InstructionsContainsFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContainsFold(FieldInstructions, v))
}

// BenefitsEQ applies the EQ predicate on the "benefits" field.
func BenefitsEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldBenefits, v))
}

// BenefitsNEQ applies the NEQ predicate on the "benefits" field.
func BenefitsNEQ(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldBenefits, v))
}

// BenefitsIn applies the In predicate on the "benefits" field.
func BenefitsIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIn(FieldBenefits, vs...))
}

// BenefitsNotIn applies the NotIn predicate on the "benefits" field.
func BenefitsNotIn(vs ...string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotIn(FieldBenefits, vs...))
}

// BenefitsGT applies the GT predicate on the "benefits" field.
func BenefitsGT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGT(FieldBenefits, v))
}

// BenefitsGTE applies the GTE predicate on the "benefits" field.
func BenefitsGTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldGTE(FieldBenefits, v))
}

// BenefitsLT applies the LT predicate on the "benefits" field.
func BenefitsLT(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLT(FieldBenefits, v))
}

// BenefitsLTE applies the LTE predicate on the "benefits" field.
func BenefitsLTE(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldLTE(FieldBenefits, v))
}

// BenefitsContains applies the Contains predicate on the "benefits" field.
func BenefitsContains(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContains(FieldBenefits, v))
}

// BenefitsHasPrefix applies the HasPrefix predicate on the "benefits" field.
func BenefitsHasPrefix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasPrefix(FieldBenefits, v))
}

// BenefitsHasSuffix applies the HasSuffix predicate on the "benefits" field.
func BenefitsHasSuffix(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldHasSuffix(FieldBenefits, v))
}

// BenefitsIsNil applies the IsNil predicate on the "benefits" field.
func BenefitsIsNil() predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldIsNull(FieldBenefits))
}

// BenefitsNotNil applies the NotNil predicate on the "benefits" field.
func BenefitsNotNil() predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNotNull(FieldBenefits))
}

// BenefitsEqualFold applies the EqualFold predicate on the "benefits" field.
func BenefitsEqualFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEqualFold(FieldBenefits, v))
}

// BenefitsContainsFold applies the ContainsFold predicate on the "benefits" field.
func BenefitsContainsFold(v string) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldContainsFold(FieldBenefits, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SelfCareExercise) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SelfCareExercise) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SelfCareExercise) predicate.SelfCareExercise {
	return predicate.SelfCareExercise(sql.NotPredicates(p))
}
