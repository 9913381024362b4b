// Code generated by ent, DO NOT EDIT.

package screeningresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the screeningresult type in the database.
	Label = "screening_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldInstrument holds the string denoting the instrument field in the database.
	FieldInstrument = "instrument"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldTotalScore holds the string denoting the total_score field in the database.
	FieldTotalScore = "total_score"
	// FieldSeverityBand holds the string denoting the severity_band field in the database.
	FieldSeverityBand = "severity_band"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldTriageAction holds the string denoting the triage_action field in the database.
	FieldTriageAction = "triage_action"
	// FieldRecommendedModule holds the string denoting the recommended_module field in the database.
	FieldRecommendedModule = "recommended_module"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeAlert holds the string denoting the alert edge name in mutations.
	EdgeAlert = "alert"
	// EdgeReferral holds the string denoting the referral edge name in mutations.
	EdgeReferral = "referral"
	// Table holds the table name of the screeningresult in the database.
	Table = "screening_results"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "screening_results"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// AlertTable is the table that holds the alert relation/edge.
	AlertTable = "screening_alerts"
	// AlertInverseTable is the table name for the ScreeningAlert entity.
	// It exists in this package in order to avoid circular dependency with the "screeningalert" package.
	AlertInverseTable = "screening_alerts"
	// AlertColumn is the table column denoting the alert relation/edge.
	AlertColumn = "screening_result_id"
	// ReferralTable is the table that holds the referral relation/edge.
	ReferralTable = "teleconsult_referrals"
	// ReferralInverseTable is the table name for the TeleconsultReferral entity.
	// It exists in this package in order to avoid circular dependency with the "teleconsultreferral" package.
	ReferralInverseTable = "teleconsult_referrals"
	// ReferralColumn is the table column denoting the referral relation/edge.
	ReferralColumn = "screening_result_id"
)

// Columns holds all SQL columns for screeningresult fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldPatientID,
	FieldInstrument,
	FieldAnswers,
	FieldTotalScore,
	FieldSeverityBand,
	FieldRiskLevel,
	FieldTriageAction,
	FieldRecommendedModule,
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
	// TotalScoreValidator is a validator for the "total_score" field. It is called by the builders before save.
	TotalScoreValidator func(int) error
	// RecommendedModuleValidator is a validator for the "recommended_module" field. It is called by the builders before save.
	RecommendedModuleValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Instrument defines the type for the "instrument" enum field.
type Instrument string

// Instrument values.
const (
	InstrumentPhq9 Instrument = "phq9"
	InstrumentGad7 Instrument = "gad7"
)

func (i Instrument) String() string {
	return string(i)
}

// InstrumentValidator is a validator for the "instrument" field enum values. It is called by the builders before save.
func InstrumentValidator(i Instrument) error {
	switch i {
	case InstrumentPhq9, InstrumentGad7:
		return nil
	default:
		return fmt.Errorf("screeningresult: invalid enum value for instrument field: %q", i)
	}
}

// SeverityBand defines the type for the "severity_band" enum field.
type SeverityBand string

// SeverityBand values.
const (
	SeverityBandMinimal          SeverityBand = "minimal"
	SeverityBandMild             SeverityBand = "mild"
	SeverityBandModerate         SeverityBand = "moderate"
	SeverityBandModeratelySevere SeverityBand = "moderately_severe"
	SeverityBandSevere           SeverityBand = "severe"
)

func (sb SeverityBand) String() string {
	return string(sb)
}

// SeverityBandValidator is a validator for the "severity_band" field enum values. It is called by the builders before save.
func SeverityBandValidator(sb SeverityBand) error {
	switch sb {
	case SeverityBandMinimal, SeverityBandMild, SeverityBandModerate, SeverityBandModeratelySevere, SeverityBandSevere:
		return nil
	default:
		return fmt.Errorf("screeningresult: invalid enum value for severity_band field: %q", sb)
	}
}

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevel values.
const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return nil
	default:
		return fmt.Errorf("screeningresult: invalid enum value for risk_level field: %q", rl)
	}
}

// TriageAction defines the type for the "triage_action" enum field.
type TriageAction string

// TriageAction values.
const (
	TriageActionTriggerReferral   TriageAction = "trigger_referral"
	TriageActionClinicianAlert    TriageAction = "clinician_alert"
	TriageActionRecommendSelfCare TriageAction = "recommend_self_care"
)

func (ta TriageAction) String() string {
	return string(ta)
}

// TriageActionValidator is a validator for the "triage_action" field enum values. It is called by the builders before save.
func TriageActionValidator(ta TriageAction) error {
	switch ta {
	case TriageActionTriggerReferral, TriageActionClinicianAlert, TriageActionRecommendSelfCare:
		return nil
	default:
		return fmt.Errorf("screeningresult: invalid enum value for triage_action field: %q", ta)
	}
}

// OrderOption defines the ordering options for the ScreeningResult queries.
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

// ByInstrument orders the results by the instrument field.
func ByInstrument(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstrument, opts...).ToFunc()
}

// ByTotalScore orders the results by the total_score field.
func ByTotalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScore, opts...).ToFunc()
}

// BySeverityBand orders the results by the severity_band field.
func BySeverityBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityBand, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByTriageAction orders the results by the triage_action field.
func ByTriageAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriageAction, opts...).ToFunc()
}

// ByRecommendedModule orders the results by the recommended_module field.
func ByRecommendedModule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedModule, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByAlertCount orders the results by alert count.
func ByAlertCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAlertStep(), opts...)
	}
}

// ByAlert orders the results by alert terms.
func ByAlert(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAlertStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReferralCount orders the results by referral count.
func ByReferralCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferralStep(), opts...)
	}
}

// ByReferral orders the results by referral terms.
func ByReferral(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferralStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newAlertStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AlertInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AlertTable, AlertColumn),
	)
}
func newReferralStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReferralInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferralTable, ReferralColumn),
	)
}
