// Code generated by ent, DO NOT EDIT.

package moodentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the moodentry type in the database.
	Label = "mood_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldMood holds the string denoting the mood field in the database.
	FieldMood = "mood"
	// FieldEnergy holds the string denoting the energy field in the database.
	FieldEnergy = "energy"
	// FieldSleepQuality holds the string denoting the sleep_quality field in the database.
	FieldSleepQuality = "sleep_quality"
	// FieldStress holds the string denoting the stress field in the database.
	FieldStress = "stress"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// Table holds the table name of the moodentry in the database.
	Table = "mood_entries"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "mood_entries"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
)

// Columns holds all SQL columns for moodentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldMood,
	FieldEnergy,
	FieldSleepQuality,
	FieldStress,
	FieldNotes,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// MoodValidator is a validator for the "mood" field. It is called by the builders before save.
	MoodValidator func(int) error
	// EnergyValidator is a validator for the "energy" field. It is called by the builders before save.
	EnergyValidator func(int) error
	// SleepQualityValidator is a validator for the "sleep_quality" field. It is called by the builders before save.
	SleepQualityValidator func(int) error
	// StressValidator is a validator for the "stress" field. It is called by the builders before save.
	StressValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MoodEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByMood orders the results by the mood field.
func ByMood(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMood, opts...).ToFunc()
}

// ByEnergy orders the results by the energy field.
func ByEnergy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnergy, opts...).ToFunc()
}

// BySleepQuality orders the results by the sleep_quality field.
func BySleepQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSleepQuality, opts...).ToFunc()
}

// ByStress orders the results by the stress field.
func ByStress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStress, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
