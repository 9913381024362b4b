// Code generated by ent, DO NOT EDIT.

package screeningalert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldPatientID, v))
}

// ScreeningResultID applies equality check predicate on the "screening_result_id" field. It's identical to ScreeningResultIDEQ.
func ScreeningResultID(v uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldScreeningResultID, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldMessage, v))
}

// DeltaScore applies equality check predicate on the "delta_score" field. It's identical to DeltaScoreEQ.
func DeltaScore(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldDeltaScore, v))
}

// WindowDays applies equality check predicate on the "window_days" field. It's identical to WindowDaysEQ.
func WindowDays(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldWindowDays, v))
}

// IsResolved applies equality check predicate on the "is_resolved" field. It's identical to IsResolvedEQ.
func IsResolved(v bool) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldIsResolved, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldResolvedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLTE(FieldCreatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldPatientID, vs...))
}

// ScreeningResultIDEQ applies the EQ predicate on the "screening_result_id" field.
func ScreeningResultIDEQ(v uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldScreeningResultID, v))
}

// ScreeningResultIDNEQ applies the NEQ predicate on the "screening_result_id" field.
func ScreeningResultIDNEQ(v uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldScreeningResultID, v))
}

// ScreeningResultIDIn applies the In predicate on the "screening_result_id" field.
func ScreeningResultIDIn(vs ...uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldScreeningResultID, vs...))
}

// ScreeningResultIDNotIn applies the NotIn predicate on the "screening_result_id" field.
func ScreeningResultIDNotIn(vs ...uuid.UUID) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldScreeningResultID, vs...))
}

// ScreeningResultIDIsNil applies the IsNil predicate on the "screening_result_id" field.
func ScreeningResultIDIsNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIsNull(FieldScreeningResultID))
}

// ScreeningResultIDNotNil applies the NotNil predicate on the "screening_result_id" field.
func ScreeningResultIDNotNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotNull(FieldScreeningResultID))
}

// AlertTypeEQ applies the EQ predicate on the "alert_type" field.
func AlertTypeEQ(v AlertType) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldAlertType, v))
}

// AlertTypeNEQ applies the NEQ predicate on the "alert_type" field.
func AlertTypeNEQ(v AlertType) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldAlertType, v))
}

// AlertTypeIn applies the In predicate on the "alert_type" field.
func AlertTypeIn(vs ...AlertType) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldAlertType, vs...))
}

// AlertTypeNotIn applies the NotIn predicate on the "alert_type" field.
func AlertTypeNotIn(vs ...AlertType) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldAlertType, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldContainsFold(FieldMessage, v))
}

// DeltaScoreEQ applies the EQ predicate on the "delta_score" field.
func DeltaScoreEQ(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldDeltaScore, v))
}

// DeltaScoreNEQ applies the NEQ predicate on the "delta_score" field.
func DeltaScoreNEQ(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldDeltaScore, v))
}

// DeltaScoreIn applies the In predicate on the "delta_score" field.
func DeltaScoreIn(vs ...int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldDeltaScore, vs...))
}

// DeltaScoreNotIn applies the NotIn predicate on the "delta_score" field.
func DeltaScoreNotIn(vs ...int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldDeltaScore, vs...))
}

// DeltaScoreGT applies the GT predicate on the "delta_score" field.
func DeltaScoreGT(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGT(FieldDeltaScore, v))
}

// DeltaScoreGTE applies the GTE predicate on the "delta_score" field.
func DeltaScoreGTE(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGTE(FieldDeltaScore, v))
}

// DeltaScoreLT applies the LT predicate on the "delta_score" field.
func DeltaScoreLT(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLT(FieldDeltaScore, v))
}

// DeltaScoreLTE applies the LTE predicate on the "delta_score" field.
func DeltaScoreLTE(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLTE(FieldDeltaScore, v))
}

// DeltaScoreIsNil applies the IsNil predicate on the "delta_score" field.
func DeltaScoreIsNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIsNull(FieldDeltaScore))
}

// DeltaScoreNotNil applies the NotNil predicate on the "delta_score" field.
func DeltaScoreNotNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotNull(FieldDeltaScore))
}

// WindowDaysEQ applies the EQ predicate on the "window_days" field.
func WindowDaysEQ(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldWindowDays, v))
}

// WindowDaysNEQ applies the NEQ predicate on the "window_days" field.
func WindowDaysNEQ(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldWindowDays, v))
}

// WindowDaysIn applies the In predicate on the "window_days" field.
func WindowDaysIn(vs ...int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldWindowDays, vs...))
}

// WindowDaysNotIn applies the NotIn predicate on the "window_days" field.
func WindowDaysNotIn(vs ...int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldWindowDays, vs...))
}

// WindowDaysGT applies the GT predicate on the "window_days" field.
func WindowDaysGT(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGT(FieldWindowDays, v))
}

// WindowDaysGTE applies the GTE predicate on the "window_days" field.
func WindowDaysGTE(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGTE(FieldWindowDays, v))
}

// WindowDaysLT applies the LT predicate on the "window_days" field.
func WindowDaysLT(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLT(FieldWindowDays, v))
}

// WindowDaysLTE applies the LTE predicate on the "window_days" field.
func WindowDaysLTE(v int) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLTE(FieldWindowDays, v))
}

// WindowDaysIsNil applies the IsNil predicate on the "window_days" field.
func WindowDaysIsNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIsNull(FieldWindowDays))
}

// WindowDaysNotNil applies the NotNil predicate on the "window_days" field.
func WindowDaysNotNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotNull(FieldWindowDays))
}

// IsResolvedEQ applies the EQ predicate on the "is_resolved" field.
func IsResolvedEQ(v bool) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldIsResolved, v))
}

// IsResolvedNEQ applies the NEQ predicate on the "is_resolved" field.
func IsResolvedNEQ(v bool) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldIsResolved, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.FieldNotNull(FieldResolvedAt))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScreening applies the HasEdge predicate on the "screening" edge.
func HasScreening() predicate.ScreeningAlert {
	return predicate.ScreeningAlert(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScreeningTable, ScreeningColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScreeningWith applies the HasEdge predicate on the "screening" edge with a given conditions (other predicates).
func HasScreeningWith(preds ...predicate.ScreeningResult) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(func(s *sql.Selector) {
		step := newScreeningStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScreeningAlert) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScreeningAlert) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScreeningAlert) predicate.ScreeningAlert {
	return predicate.ScreeningAlert(sql.NotPredicates(p))
}
