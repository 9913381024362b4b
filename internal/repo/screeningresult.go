// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
)

// ScreeningResult is the model entity for the ScreeningResult schema.
type ScreeningResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Instrument holds the value of the "instrument" field.
	Instrument screeningresult.Instrument `json:"instrument,omitempty"`
	// Ordered item responses, each 0-3
	Answers []int `json:"answers,omitempty"`
	// TotalScore holds the value of the "total_score" field.
	TotalScore int `json:"total_score,omitempty"`
	// SeverityBand holds the value of the "severity_band" field.
	SeverityBand screeningresult.SeverityBand `json:"severity_band,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel screeningresult.RiskLevel `json:"risk_level,omitempty"`
	// TriageAction holds the value of the "triage_action" field.
	TriageAction screeningresult.TriageAction `json:"triage_action,omitempty"`
	// Self-care module id when triage_action is recommend_self_care
	RecommendedModule string `json:"recommended_module,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScreeningResultQuery when eager-loading is set.
	Edges        ScreeningResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScreeningResultEdges holds the relations/edges for other nodes in the graph.
type ScreeningResultEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// Alert holds the value of the alert edge.
	Alert []*ScreeningAlert `json:"alert,omitempty"`
	// Referral holds the value of the referral edge.
	Referral []*TeleconsultReferral `json:"referral,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScreeningResultEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// AlertOrErr returns the Alert value or an error if the edge
// was not loaded in eager-loading.
func (e ScreeningResultEdges) AlertOrErr() ([]*ScreeningAlert, error) {
	if e.loadedTypes[1] {
		return e.Alert, nil
	}
	return nil, &NotLoadedError{edge: "alert"}
}

// ReferralOrErr returns the Referral value or an error if the edge
// was not loaded in eager-loading.
func (e ScreeningResultEdges) ReferralOrErr() ([]*TeleconsultReferral, error) {
	if e.loadedTypes[2] {
		return e.Referral, nil
	}
	return nil, &NotLoadedError{edge: "referral"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScreeningResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case screeningresult.FieldAnswers:
			values[i] = new([]byte)
		case screeningresult.FieldTotalScore:
			values[i] = new(sql.NullInt64)
		case screeningresult.FieldInstrument, screeningresult.FieldSeverityBand, screeningresult.FieldRiskLevel, screeningresult.FieldTriageAction, screeningresult.FieldRecommendedModule:
			values[i] = new(sql.NullString)
		case screeningresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case screeningresult.FieldID, screeningresult.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScreeningResult fields.
func (_m *ScreeningResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case screeningresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case screeningresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case screeningresult.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case screeningresult.FieldInstrument:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instrument", values[i])
			} else if value.Valid {
				_m.Instrument = screeningresult.Instrument(value.String)
			}
		case screeningresult.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case screeningresult.FieldTotalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_score", values[i])
			} else if value.Valid {
				_m.TotalScore = int(value.Int64)
			}
		case screeningresult.FieldSeverityBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity_band", values[i])
			} else if value.Valid {
				_m.SeverityBand = screeningresult.SeverityBand(value.String)
			}
		case screeningresult.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = screeningresult.RiskLevel(value.String)
			}
		case screeningresult.FieldTriageAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triage_action", values[i])
			} else if value.Valid {
				_m.TriageAction = screeningresult.TriageAction(value.String)
			}
		case screeningresult.FieldRecommendedModule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_module", values[i])
			} else if value.Valid {
				_m.RecommendedModule = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScreeningResult.
// This includes values selected through modifiers, order, etc.
func (_m *ScreeningResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the ScreeningResult entity.
func (_m *ScreeningResult) QueryPatient() *PatientQuery {
	return NewScreeningResultClient(_m.config).QueryPatient(_m)
}

// QueryAlert queries the "alert" edge of the ScreeningResult entity.
func (_m *ScreeningResult) QueryAlert() *ScreeningAlertQuery {
	return NewScreeningResultClient(_m.config).QueryAlert(_m)
}

// QueryReferral queries the "referral" edge of the ScreeningResult entity.
func (_m *ScreeningResult) QueryReferral() *TeleconsultReferralQuery {
	return NewScreeningResultClient(_m.config).QueryReferral(_m)
}

// Update returns a builder for updating this ScreeningResult.
// Note that you need to call ScreeningResult.Unwrap() before calling this method if this ScreeningResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScreeningResult) Update() *ScreeningResultUpdateOne {
	return NewScreeningResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScreeningResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScreeningResult) Unwrap() *ScreeningResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ScreeningResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScreeningResult) String() string {
	var builder strings.Builder
	builder.WriteString("ScreeningResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("instrument=")
	builder.WriteString(fmt.Sprintf("%v", _m.Instrument))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("total_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalScore))
	builder.WriteString(", ")
	builder.WriteString("severity_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityBand))
	builder.WriteString(", ")
	builder.WriteString("risk_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskLevel))
	builder.WriteString(", ")
	builder.WriteString("triage_action=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriageAction))
	builder.WriteString(", ")
	builder.WriteString("recommended_module=")
	builder.WriteString(_m.RecommendedModule)
	builder.WriteByte(')')
	return builder.String()
}

// ScreeningResults is a parsable slice of ScreeningResult.
type ScreeningResults []*ScreeningResult
