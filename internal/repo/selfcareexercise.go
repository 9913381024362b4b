// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
)

// SelfCareExercise is the model entity for the SelfCareExercise schema.
type SelfCareExercise struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Slug holds the value of the "slug" field.
	Slug string `json:"slug,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ExerciseType holds the value of the "exercise_type" field.
	ExerciseType selfcareexercise.ExerciseType `json:"exercise_type,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty selfcareexercise.Difficulty `json:"difficulty,omitempty"`
	// Instructions holds the value of the "instructions" field.
	Instructions string `json:"instructions,omitempty"`
	// Benefits holds the value of the "benefits" field.
	Benefits string `json:"benefits,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SelfCareExercise) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case selfcareexercise.FieldIsActive:
			values[i] = new(sql.NullBool)
		case selfcareexercise.FieldDurationMinutes:
			values[i] = new(sql.NullInt64)
		case selfcareexercise.FieldSlug, selfcareexercise.FieldName, selfcareexercise.FieldDescription, selfcareexercise.FieldExerciseType, selfcareexercise.FieldDifficulty, selfcareexercise.FieldInstructions, selfcareexercise.FieldBenefits:
			values[i] = new(sql.NullString)
		case selfcareexercise.FieldCreatedAt, selfcareexercise.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case selfcareexercise.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SelfCareExercise fields.
func (_m *SelfCareExercise) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case selfcareexercise.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case selfcareexercise.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case selfcareexercise.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case selfcareexercise.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case selfcareexercise.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case selfcareexercise.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case selfcareexercise.FieldExerciseType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exercise_type", values[i])
			} else if value.Valid {
				_m.ExerciseType = selfcareexercise.ExerciseType(value.String)
			}
		case selfcareexercise.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case selfcareexercise.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = selfcareexercise.Difficulty(value.String)
			}
		case selfcareexercise.FieldInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructions", values[i])
			} else if value.Valid {
				_m.Instructions = value.String
			}
		case selfcareexercise.FieldBenefits:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field benefits", values[i])
			} else if value.Valid {
				_m.Benefits = value.String
			}
		case selfcareexercise.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SelfCareExercise.
// This includes values selected through modifiers, order, etc.
func (_m *SelfCareExercise) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SelfCareExercise.
// Note that you need to call SelfCareExercise.Unwrap() before calling this method if this SelfCareExercise
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SelfCareExercise) Update() *SelfCareExerciseUpdateOne {
	return NewSelfCareExerciseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SelfCareExercise entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SelfCareExercise) Unwrap() *SelfCareExercise {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SelfCareExercise is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SelfCareExercise) String() string {
	var builder strings.Builder
	builder.WriteString("SelfCareExercise(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("exercise_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExerciseType))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("instructions=")
	builder.WriteString(_m.Instructions)
	builder.WriteString(", ")
	builder.WriteString("benefits=")
	builder.WriteString(_m.Benefits)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// SelfCareExercises is a parsable slice of SelfCareExercise.
type SelfCareExercises []*SelfCareExercise
