// Code generated by ent, DO NOT EDIT.

package moodentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldPatientID, v))
}

// Mood applies equality check predicate on the "mood" field. It's identical to MoodEQ.
func Mood(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldMood, v))
}

// Energy applies equality check predicate on the "energy" field. It's identical to EnergyEQ.
func Energy(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldEnergy, v))
}

// SleepQuality applies equality check predicate on the "sleep_quality" field. It's identical to SleepQualityEQ.
func SleepQuality(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldSleepQuality, v))
}

// Stress applies equality check predicate on the "stress" field. It's identical to StressEQ.
func Stress(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldStress, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldPatientID, vs...))
}

// MoodEQ applies the EQ predicate on the "mood" field.
func MoodEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldMood, v))
}

// MoodNEQ applies the NEQ predicate on the "mood" field.
func MoodNEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldMood, v))
}

// MoodIn applies the In predicate on the "mood" field.
func MoodIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldMood, vs...))
}

// MoodNotIn applies the NotIn predicate on the "mood" field.
func MoodNotIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldMood, vs...))
}

// MoodGT applies the GT predicate on the "mood" field.
func MoodGT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGT(FieldMood, v))
}

// MoodGTE applies the GTE predicate on the "mood" field.
func MoodGTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGTE(FieldMood, v))
}

// MoodLT applies the LT predicate on the "mood" field.
func MoodLT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLT(FieldMood, v))
}

// MoodLTE applies the LTE predicate on the "mood" field.
func MoodLTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLTE(FieldMood, v))
}

// EnergyEQ applies the EQ predicate on the "energy" field.
func EnergyEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldEnergy, v))
}

// EnergyNEQ applies the NEQ predicate on the "energy" field.
func EnergyNEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldEnergy, v))
}

// EnergyIn applies the In predicate on the "energy" field.
func EnergyIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldEnergy, vs...))
}

// EnergyNotIn applies the NotIn predicate on the "energy" field.
func EnergyNotIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldEnergy, vs...))
}

// EnergyGT applies the GT predicate on the "energy" field.
func EnergyGT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGT(FieldEnergy, v))
}

// EnergyGTE applies the GTE predicate on the "energy" field.
func EnergyGTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGTE(FieldEnergy, v))
}

// EnergyLT applies the LT predicate on the "energy" field.
func EnergyLT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLT(FieldEnergy, v))
}

// EnergyLTE applies the LTE predicate on the "energy" field.
func EnergyLTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLTE(FieldEnergy, v))
}

// SleepQualityEQ applies the EQ predicate on the "sleep_quality" field.
func SleepQualityEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldSleepQuality, v))
}

// SleepQualityNEQ applies the NEQ predicate on the "sleep_quality" field.
func SleepQualityNEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldSleepQuality, v))
}

// SleepQualityIn applies the In predicate on the "sleep_quality" field.
func SleepQualityIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldSleepQuality, vs...))
}

// SleepQualityNotIn applies the NotIn predicate on the "sleep_quality" field.
func SleepQualityNotIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldSleepQuality, vs...))
}

// SleepQualityGT applies the GT predicate on the "sleep_quality" field.
func SleepQualityGT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGT(FieldSleepQuality, v))
}

// SleepQualityGTE applies the GTE predicate on the "sleep_quality" field.
func SleepQualityGTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGTE(FieldSleepQuality, v))
}

// SleepQualityLT applies the LT predicate on the "sleep_quality" field.
func SleepQualityLT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLT(FieldSleepQuality, v))
}

// SleepQualityLTE applies the LTE predicate on the "sleep_quality" field.
func SleepQualityLTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLTE(FieldSleepQuality, v))
}

// StressEQ applies the EQ predicate on the "stress" field.
func StressEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldStress, v))
}

// StressNEQ applies the NEQ predicate on the "stress" field.
func StressNEQ(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldStress, v))
}

// StressIn applies the In predicate on the "stress" field.
func StressIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldStress, vs...))
}

// StressNotIn applies the NotIn predicate on the "stress" field.
func StressNotIn(vs ...int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldStress, vs...))
}

// StressGT applies the GT predicate on the "stress" field.
func StressGT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGT(FieldStress, v))
}

// StressGTE applies the GTE predicate on the "stress" field.
func StressGTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGTE(FieldStress, v))
}

// StressLT applies the LT predicate on the "stress" field.
func StressLT(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLT(FieldStress, v))
}

// StressLTE applies the LTE predicate on the "stress" field.
func StressLTE(v int) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLTE(FieldStress, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.MoodEntry {
	return predicate.MoodEntry(sql.FieldContainsFold(FieldNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.MoodEntry {
	return predicate.MoodEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.MoodEntry {
	return predicate.MoodEntry(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MoodEntry) predicate.MoodEntry {
	return predicate.MoodEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MoodEntry) predicate.MoodEntry {
	return predicate.MoodEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MoodEntry) predicate.MoodEntry {
	return predicate.MoodEntry(sql.NotPredicates(p))
}
