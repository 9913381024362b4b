// Code generated by ent, DO NOT EDIT.

package screeningresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldPatientID, v))
}

// TotalScore applies equality check predicate on the "total_score" field. It's identical to TotalScoreEQ.
func TotalScore(v int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldTotalScore, v))
}

// RecommendedModule applies equality check predicate on the "recommended_module" field. It's identical to RecommendedModuleEQ.
func RecommendedModule(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldRecommendedModule, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldPatientID, vs...))
}

// InstrumentEQ applies the EQ predicate on the "instrument" field.
func InstrumentEQ(v Instrument) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldInstrument, v))
}

// InstrumentNEQ applies the NEQ predicate on the "instrument" field.
func InstrumentNEQ(v Instrument) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldInstrument, v))
}

// InstrumentIn applies the In predicate on the "instrument" field.
func InstrumentIn(vs ...Instrument) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldInstrument, vs...))
}

// InstrumentNotIn applies the NotIn predicate on the "instrument" field.
func InstrumentNotIn(vs ...Instrument) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldInstrument, vs...))
}

// TotalScoreEQ applies the EQ predicate on the "total_score" field.
func TotalScoreEQ(v int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldTotalScore, v))
}

// TotalScoreNEQ applies the NEQ predicate on the "total_score" field.
func TotalScoreNEQ(v int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldTotalScore, v))
}

// TotalScoreIn applies the In predicate on the "total_score" field.
func TotalScoreIn(vs ...int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldTotalScore, vs...))
}

// TotalScoreNotIn applies the NotIn predicate on the "total_score" field.
func TotalScoreNotIn(vs ...int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldTotalScore, vs...))
}

// TotalScoreGT applies the GT predicate on the "total_score" field.
func TotalScoreGT(v int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGT(FieldTotalScore, v))
}

// TotalScoreGTE applies the GTE predicate on the "total_score" field.
func TotalScoreGTE(v int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGTE(FieldTotalScore, v))
}

// TotalScoreLT applies the LT predicate on the "total_score" field.
func TotalScoreLT(v int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLT(FieldTotalScore, v))
}

// TotalScoreLTE applies the LTE predicate on the "total_score" field.
func TotalScoreLTE(v int) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLTE(FieldTotalScore, v))
}

// SeverityBandEQ applies the EQ predicate on the "severity_band" field.
func SeverityBandEQ(v SeverityBand) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldSeverityBand, v))
}

// SeverityBandNEQ applies the NEQ predicate on the "severity_band" field.
func SeverityBandNEQ(v SeverityBand) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldSeverityBand, v))
}

// SeverityBandIn applies the In predicate on the "severity_band" field.
func SeverityBandIn(vs ...SeverityBand) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldSeverityBand, vs...))
}

// SeverityBandNotIn applies the NotIn predicate on the "severity_band" field.
func SeverityBandNotIn(vs ...SeverityBand) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldSeverityBand, vs...))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// TriageActionEQ applies the EQ predicate on the "triage_action" field.
func TriageActionEQ(v TriageAction) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldTriageAction, v))
}

// TriageActionNEQ applies the NEQ predicate on the "triage_action" field.
func TriageActionNEQ(v TriageAction) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldTriageAction, v))
}

// TriageActionIn applies the In predicate on the "triage_action" field.
func TriageActionIn(vs ...TriageAction) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldTriageAction, vs...))
}

// TriageActionNotIn applies the NotIn predicate on the "triage_action" field.
func TriageActionNotIn(vs ...TriageAction) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldTriageAction, vs...))
}

// RecommendedModuleEQ applies the EQ predicate on the "recommended_module" field.
func RecommendedModuleEQ(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEQ(FieldRecommendedModule, v))
}

// RecommendedModuleNEQ applies the NEQ predicate on the "recommended_module" field.
func RecommendedModuleNEQ(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNEQ(FieldRecommendedModule, v))
}

// RecommendedModuleIn applies the In predicate on the "recommended_module" field.
func RecommendedModuleIn(vs ...string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIn(FieldRecommendedModule, vs...))
}

// RecommendedModuleNotIn applies the NotIn predicate on the "recommended_module" field.
func RecommendedModuleNotIn(vs ...string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotIn(FieldRecommendedModule, vs...))
}

// RecommendedModuleGT applies the GT predicate on the "recommended_module" field.
func RecommendedModuleGT(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGT(FieldRecommendedModule, v))
}

// RecommendedModuleGTE applies the GTE predicate on the "recommended_module" field.
func RecommendedModuleGTE(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldGTE(FieldRecommendedModule, v))
}

// RecommendedModuleLT applies the LT predicate on the "recommended_module" field.
func RecommendedModuleLT(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLT(FieldRecommendedModule, v))
}

// RecommendedModuleLTE applies the LTE predicate on the "recommended_module" field.
func RecommendedModuleLTE(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldLTE(FieldRecommendedModule, v))
}

// RecommendedModuleContains applies the Contains predicate on the "recommended_module" field.
func RecommendedModuleContains(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldContains(FieldRecommendedModule, v))
}

// RecommendedModuleHasPrefix applies the HasPrefix predicate on the "recommended_module" field.
func RecommendedModuleHasPrefix(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldHasPrefix(FieldRecommendedModule, v))
}

// RecommendedModuleHasSuffix applies the HasSuffix predicate on the "recommended_module" field.
func RecommendedModuleHasSuffix(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldHasSuffix(FieldRecommendedModule, v))
}

// RecommendedModuleIsNil applies the IsNil predicate on the "recommended_module" field.
func RecommendedModuleIsNil() predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldIsNull(FieldRecommendedModule))
}

// RecommendedModuleNotNil applies the NotNil predicate on the "recommended_module" field.
func RecommendedModuleNotNil() predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldNotNull(FieldRecommendedModule))
}

// RecommendedModuleEqualFold applies the EqualFold predicate on the "recommended_module" field.
func RecommendedModuleEqualFold(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldEqualFold(FieldRecommendedModule, v))
}

// RecommendedModuleContainsFold applies the ContainsFold predicate on the "recommended_module" field.
func RecommendedModuleContainsFold(v string) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.FieldContainsFold(FieldRecommendedModule, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.ScreeningResult {
	return predicate.ScreeningResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.ScreeningResult {
	return predicate.ScreeningResult(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAlert applies the HasEdge predicate on the "alert" edge.
func HasAlert() predicate.ScreeningResult {
	return predicate.ScreeningResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AlertTable, AlertColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAlertWith applies the HasEdge predicate on the "alert" edge with a given conditions (other predicates).
func HasAlertWith(preds ...predicate.ScreeningAlert) predicate.ScreeningResult {
	return predicate.ScreeningResult(func(s *sql.Selector) {
		step := newAlertStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReferral applies the HasEdge predicate on the "referral" edge.
func HasReferral() predicate.ScreeningResult {
	return predicate.ScreeningResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReferralTable, ReferralColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReferralWith applies the HasEdge predicate on the "referral" edge with a given conditions (other predicates).
func HasReferralWith(preds ...predicate.TeleconsultReferral) predicate.ScreeningResult {
	return predicate.ScreeningResult(func(s *sql.Selector) {
		step := newReferralStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScreeningResult) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScreeningResult) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScreeningResult) predicate.ScreeningResult {
	return predicate.ScreeningResult(sql.NotPredicates(p))
}
