// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/moodentry"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
)

// MoodEntry is the model entity for the MoodEntry schema.
type MoodEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Mood holds the value of the "mood" field.
	Mood int `json:"mood,omitempty"`
	// Energy holds the value of the "energy" field.
	Energy int `json:"energy,omitempty"`
	// SleepQuality holds the value of the "sleep_quality" field.
	SleepQuality int `json:"sleep_quality,omitempty"`
	// Stress holds the value of the "stress" field.
	Stress int `json:"stress,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MoodEntryQuery when eager-loading is set.
	Edges        MoodEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MoodEntryEdges holds the relations/edges for other nodes in the graph.
type MoodEntryEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MoodEntryEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MoodEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case moodentry.FieldMood, moodentry.FieldEnergy, moodentry.FieldSleepQuality, moodentry.FieldStress:
			values[i] = new(sql.NullInt64)
		case moodentry.FieldNotes:
			values[i] = new(sql.NullString)
		case moodentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case moodentry.FieldID, moodentry.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MoodEntry fields.
func (_m *MoodEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case moodentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case moodentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case moodentry.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case moodentry.FieldMood:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mood", values[i])
			} else if value.Valid {
				_m.Mood = int(value.Int64)
			}
		case moodentry.FieldEnergy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field energy", values[i])
			} else if value.Valid {
				_m.Energy = int(value.Int64)
			}
		case moodentry.FieldSleepQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sleep_quality", values[i])
			} else if value.Valid {
				_m.SleepQuality = int(value.Int64)
			}
		case moodentry.FieldStress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stress", values[i])
			} else if value.Valid {
				_m.Stress = int(value.Int64)
			}
		case moodentry.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MoodEntry.
// This includes values selected through modifiers, order, etc.
func (_m *MoodEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the MoodEntry entity.
func (_m *MoodEntry) QueryPatient() *PatientQuery {
	return NewMoodEntryClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this MoodEntry.
// Note that you need to call MoodEntry.Unwrap() before calling this method if this MoodEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MoodEntry) Update() *MoodEntryUpdateOne {
	return NewMoodEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MoodEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MoodEntry) Unwrap() *MoodEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: MoodEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MoodEntry) String() string {
	var builder strings.Builder
	builder.WriteString("MoodEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("mood=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mood))
	builder.WriteString(", ")
	builder.WriteString("energy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Energy))
	builder.WriteString(", ")
	builder.WriteString("sleep_quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.SleepQuality))
	builder.WriteString(", ")
	builder.WriteString("stress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stress))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteByte(')')
	return builder.String()
}

// MoodEntries is a parsable slice of MoodEntry.
type MoodEntries []*MoodEntry
