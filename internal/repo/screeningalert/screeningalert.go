// Code generated by ent, DO NOT EDIT.

package screeningalert

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the screeningalert type in the database.
	Label = "screening_alert"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldScreeningResultID holds the string denoting the screening_result_id field in the database.
	FieldScreeningResultID = "screening_result_id"
	// FieldAlertType holds the string denoting the alert_type field in the database.
	FieldAlertType = "alert_type"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldDeltaScore holds the string denoting the delta_score field in the database.
	FieldDeltaScore = "delta_score"
	// FieldWindowDays holds the string denoting the window_days field in the database.
	FieldWindowDays = "window_days"
	// FieldIsResolved holds the string denoting the is_resolved field in the database.
	FieldIsResolved = "is_resolved"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeScreening holds the string denoting the screening edge name in mutations.
	EdgeScreening = "screening"
	// Table holds the table name of the screeningalert in the database.
	Table = "screening_alerts"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "screening_alerts"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// ScreeningTable is the table that holds the screening relation/edge.
	ScreeningTable = "screening_alerts"
	// ScreeningInverseTable is the table name for the ScreeningResult entity.
	// It exists in this package in order to avoid circular dependency with the "screeningresult" package.
	ScreeningInverseTable = "screening_results"
	// ScreeningColumn is the table column denoting the screening relation/edge.
	ScreeningColumn = "screening_result_id"
)

// Columns holds all SQL columns for screeningalert fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldScreeningResultID,
	FieldAlertType,
	FieldMessage,
	FieldDeltaScore,
	FieldWindowDays,
	FieldIsResolved,
	FieldResolvedAt,
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
	// DefaultIsResolved holds the default value on creation for the "is_resolved" field.
	DefaultIsResolved bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// AlertType defines the type for the "alert_type" enum field.
type AlertType string

// AlertType values.
const (
	AlertTypeScoreIncrease    AlertType = "score_increase"
	AlertTypeSuicidalIdeation AlertType = "suicidal_ideation"
	AlertTypeCrisis           AlertType = "crisis"
)

func (at AlertType) String() string {
	return string(at)
}

// AlertTypeValidator is a validator for the "alert_type" field enum values. It is called by the builders before save.
func AlertTypeValidator(at AlertType) error {
	switch at {
	case AlertTypeScoreIncrease, AlertTypeSuicidalIdeation, AlertTypeCrisis:
		return nil
	default:
		return fmt.Errorf("screeningalert: invalid enum value for alert_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the ScreeningAlert queries.
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

// ByScreeningResultID orders the results by the screening_result_id field.
func ByScreeningResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScreeningResultID, opts...).ToFunc()
}

// ByAlertType orders the results by the alert_type field.
func ByAlertType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertType, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByDeltaScore orders the results by the delta_score field.
func ByDeltaScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeltaScore, opts...).ToFunc()
}

// ByWindowDays orders the results by the window_days field.
func ByWindowDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowDays, opts...).ToFunc()
}

// ByIsResolved orders the results by the is_resolved field.
func ByIsResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsResolved, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByScreeningField orders the results by screening field.
func ByScreeningField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScreeningStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newScreeningStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScreeningInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScreeningTable, ScreeningColumn),
	)
}
