// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningalert"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
)

// ScreeningAlert is the model entity for the ScreeningAlert schema.
type ScreeningAlert struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → screening_results.id; nil for chat crisis alerts
	ScreeningResultID *uuid.UUID `json:"screening_result_id,omitempty"`
	// AlertType holds the value of the "alert_type" field.
	AlertType screeningalert.AlertType `json:"alert_type,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// Score increase that fired the trend rule
	DeltaScore int `json:"delta_score,omitempty"`
	// Trend window the delta was measured over
	WindowDays int `json:"window_days,omitempty"`
	// IsResolved holds the value of the "is_resolved" field.
	IsResolved bool `json:"is_resolved,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScreeningAlertQuery when eager-loading is set.
	Edges        ScreeningAlertEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScreeningAlertEdges holds the relations/edges for other nodes in the graph.
type ScreeningAlertEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Screening holds the value of the screening edge.
	Screening *ScreeningResult `json:"screening,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScreeningAlertEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ScreeningOrErr returns the Screening value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScreeningAlertEdges) ScreeningOrErr() (*ScreeningResult, error) {
	if e.Screening != nil {
		return e.Screening, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: screeningresult.Label}
	}
	return nil, &NotLoadedError{edge: "screening"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScreeningAlert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case screeningalert.FieldScreeningResultID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case screeningalert.FieldIsResolved:
			values[i] = new(sql.NullBool)
		case screeningalert.FieldDeltaScore, screeningalert.FieldWindowDays:
			values[i] = new(sql.NullInt64)
		case screeningalert.FieldAlertType, screeningalert.FieldMessage:
			values[i] = new(sql.NullString)
		case screeningalert.FieldCreatedAt, screeningalert.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		case screeningalert.FieldID, screeningalert.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScreeningAlert fields.
func (_m *ScreeningAlert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case screeningalert.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case screeningalert.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case screeningalert.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case screeningalert.FieldScreeningResultID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field screening_result_id", values[i])
			} else if value.Valid {
				_m.ScreeningResultID = new(uuid.UUID)
				*_m.ScreeningResultID = *value.S.(*uuid.UUID)
			}
		case screeningalert.FieldAlertType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_type", values[i])
			} else if value.Valid {
				_m.AlertType = screeningalert.AlertType(value.String)
			}
		case screeningalert.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case screeningalert.FieldDeltaScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delta_score", values[i])
			} else if value.Valid {
				_m.DeltaScore = int(value.Int64)
			}
		case screeningalert.FieldWindowDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field window_days", values[i])
			} else if value.Valid {
				_m.WindowDays = int(value.Int64)
			}
		case screeningalert.FieldIsResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_resolved", values[i])
			} else if value.Valid {
				_m.IsResolved = value.Bool
			}
		case screeningalert.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScreeningAlert.
// This includes values selected through modifiers, order, etc.
func (_m *ScreeningAlert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the ScreeningAlert entity.
func (_m *ScreeningAlert) QueryPatient() *PatientQuery {
	return NewScreeningAlertClient(_m.config).QueryPatient(_m)
}

// QueryScreening queries the "screening" edge of the ScreeningAlert entity.
func (_m *ScreeningAlert) QueryScreening() *ScreeningResultQuery {
	return NewScreeningAlertClient(_m.config).QueryScreening(_m)
}

// Update returns a builder for updating this ScreeningAlert.
// Note that you need to call ScreeningAlert.Unwrap() before calling this method if this ScreeningAlert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScreeningAlert) Update() *ScreeningAlertUpdateOne {
	return NewScreeningAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScreeningAlert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScreeningAlert) Unwrap() *ScreeningAlert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ScreeningAlert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScreeningAlert) String() string {
	var builder strings.Builder
	builder.WriteString("ScreeningAlert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	if v := _m.ScreeningResultID; v != nil {
		builder.WriteString("screening_result_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("alert_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertType))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("delta_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeltaScore))
	builder.WriteString(", ")
	builder.WriteString("window_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowDays))
	builder.WriteString(", ")
	builder.WriteString("is_resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsResolved))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ScreeningAlerts is a parsable slice of ScreeningAlert.
type ScreeningAlerts []*ScreeningAlert
