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
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/teleconsultreferral"
)

// TeleconsultReferral is the model entity for the TeleconsultReferral schema.
type TeleconsultReferral struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → screening_results.id
	ScreeningResultID uuid.UUID `json:"screening_result_id,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority teleconsultreferral.Priority `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status teleconsultreferral.Status `json:"status,omitempty"`
	// ScheduledDate holds the value of the "scheduled_date" field.
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	// ClinicianNotes holds the value of the "clinician_notes" field.
	ClinicianNotes *string `json:"clinician_notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TeleconsultReferralQuery when eager-loading is set.
	Edges        TeleconsultReferralEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TeleconsultReferralEdges holds the relations/edges for other nodes in the graph.
type TeleconsultReferralEdges struct {
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
func (e TeleconsultReferralEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// ScreeningOrErr returns the Screening value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TeleconsultReferralEdges) ScreeningOrErr() (*ScreeningResult, error) {
	if e.Screening != nil {
		return e.Screening, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: screeningresult.Label}
	}
	return nil, &NotLoadedError{edge: "screening"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TeleconsultReferral) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case teleconsultreferral.FieldReason, teleconsultreferral.FieldPriority, teleconsultreferral.FieldStatus, teleconsultreferral.FieldClinicianNotes:
			values[i] = new(sql.NullString)
		case teleconsultreferral.FieldCreatedAt, teleconsultreferral.FieldUpdatedAt, teleconsultreferral.FieldScheduledDate:
			values[i] = new(sql.NullTime)
		case teleconsultreferral.FieldID, teleconsultreferral.FieldPatientID, teleconsultreferral.FieldScreeningResultID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TeleconsultReferral fields.
func (_m *TeleconsultReferral) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case teleconsultreferral.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case teleconsultreferral.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case teleconsultreferral.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case teleconsultreferral.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case teleconsultreferral.FieldScreeningResultID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field screening_result_id", values[i])
			} else if value != nil {
				_m.ScreeningResultID = *value
			}
		case teleconsultreferral.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case teleconsultreferral.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = teleconsultreferral.Priority(value.String)
			}
		case teleconsultreferral.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = teleconsultreferral.Status(value.String)
			}
		case teleconsultreferral.FieldScheduledDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_date", values[i])
			} else if value.Valid {
				_m.ScheduledDate = new(time.Time)
				*_m.ScheduledDate = value.Time
			}
		case teleconsultreferral.FieldClinicianNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clinician_notes", values[i])
			} else if value.Valid {
				_m.ClinicianNotes = new(string)
				*_m.ClinicianNotes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TeleconsultReferral.
// This includes values selected through modifiers, order, etc.
func (_m *TeleconsultReferral) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the TeleconsultReferral entity.
func (_m *TeleconsultReferral) QueryPatient() *PatientQuery {
	return NewTeleconsultReferralClient(_m.config).QueryPatient(_m)
}

// QueryScreening queries the "screening" edge of the TeleconsultReferral entity.
func (_m *TeleconsultReferral) QueryScreening() *ScreeningResultQuery {
	return NewTeleconsultReferralClient(_m.config).QueryScreening(_m)
}

// Update returns a builder for updating this TeleconsultReferral.
// Note that you need to call TeleconsultReferral.Unwrap() before calling this method if this TeleconsultReferral
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TeleconsultReferral) Update() *TeleconsultReferralUpdateOne {
	return NewTeleconsultReferralClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TeleconsultReferral entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TeleconsultReferral) Unwrap() *TeleconsultReferral {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TeleconsultReferral is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TeleconsultReferral) String() string {
	var builder strings.Builder
	builder.WriteString("TeleconsultReferral(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("screening_result_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScreeningResultID))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ScheduledDate; v != nil {
		builder.WriteString("scheduled_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClinicianNotes; v != nil {
		builder.WriteString("clinician_notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// TeleconsultReferrals is a parsable slice of TeleconsultReferral.
type TeleconsultReferrals []*TeleconsultReferral
