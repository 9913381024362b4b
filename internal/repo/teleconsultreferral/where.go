// Code generated by ent, DO NOT EDIT.

package teleconsultreferral

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/iwantdrugsxd/mind-ease/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldPatientID, v))
}

// ScreeningResultID applies equality check predicate on the "screening_result_id" field. It's identical to ScreeningResultIDEQ.
func ScreeningResultID(v uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldScreeningResultID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldReason, v))
}

// ScheduledDate applies equality check predicate on the "scheduled_date" field. It's identical to ScheduledDateEQ.
func ScheduledDate(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldScheduledDate, v))
}

// ClinicianNotes applies equality check predicate on the "clinician_notes" field. It's identical to ClinicianNotesEQ.
func ClinicianNotes(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldClinicianNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldPatientID, vs...))
}

// ScreeningResultIDEQ applies the EQ predicate on the "screening_result_id" field.
func ScreeningResultIDEQ(v uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldScreeningResultID, v))
}

// ScreeningResultIDNEQ applies the NEQ predicate on the "screening_result_id" field.
func ScreeningResultIDNEQ(v uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldScreeningResultID, v))
}

// ScreeningResultIDIn applies the In predicate on the "screening_result_id" field.
func ScreeningResultIDIn(vs ...uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldScreeningResultID, vs...))
}

// ScreeningResultIDNotIn applies the NotIn predicate on the "screening_result_id" field.
func ScreeningResultIDNotIn(vs ...uuid.UUID) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldScreeningResultID, vs...))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldContainsFold(FieldReason, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldStatus, vs...))
}

// ScheduledDateEQ applies the EQ predicate on the "scheduled_date" field.
func ScheduledDateEQ(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldScheduledDate, v))
}

// ScheduledDateNEQ applies the NEQ predicate on the "scheduled_date" field.
func ScheduledDateNEQ(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldScheduledDate, v))
}

// ScheduledDateIn applies the In predicate on the "scheduled_date" field.
func ScheduledDateIn(vs ...time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldScheduledDate, vs...))
}

// ScheduledDateNotIn applies the NotIn predicate on the "scheduled_date" field.
func ScheduledDateNotIn(vs ...time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldScheduledDate, vs...))
}

// ScheduledDateGT applies the GT predicate on the "scheduled_date" field.
func ScheduledDateGT(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGT(FieldScheduledDate, v))
}

// ScheduledDateGTE applies the GTE predicate on the "scheduled_date" field.
func ScheduledDateGTE(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGTE(FieldScheduledDate, v))
}

// ScheduledDateLT applies the LT predicate on the "scheduled_date" field.
func ScheduledDateLT(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLT(FieldScheduledDate, v))
}

// ScheduledDateLTE applies the LTE predicate on the "scheduled_date" field.
func ScheduledDateLTE(v time.Time) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLTE(FieldScheduledDate, v))
}

// ScheduledDateIsNil applies the IsNil predicate on the "scheduled_date" field.
func ScheduledDateIsNil() predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIsNull(FieldScheduledDate))
}

// ScheduledDateNotNil applies the NotNil predicate on the "scheduled_date" field.
func ScheduledDateNotNil() predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotNull(FieldScheduledDate))
}

// ClinicianNotesEQ applies the EQ predicate on the "clinician_notes" field.
func ClinicianNotesEQ(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEQ(FieldClinicianNotes, v))
}

// ClinicianNotesNEQ applies the NEQ predicate on the "clinician_notes" field.
func ClinicianNotesNEQ(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNEQ(FieldClinicianNotes, v))
}

// ClinicianNotesIn applies the In predicate on the "clinician_notes" field.
func ClinicianNotesIn(vs ...string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIn(FieldClinicianNotes, vs...))
}

// ClinicianNotesNotIn applies the NotIn predicate on the "clinician_notes" field.
func ClinicianNotesNotIn(vs ...string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotIn(FieldClinicianNotes, vs...))
}

// ClinicianNotesGT applies the GT predicate on the "clinician_notes" field.
func ClinicianNotesGT(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGT(FieldClinicianNotes, v))
}

// ClinicianNotesGTE applies the GTE predicate on the "clinician_notes" field.
func ClinicianNotesGTE(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldGTE(FieldClinicianNotes, v))
}

// ClinicianNotesLT applies the LT predicate on the "clinician_notes" field.
func ClinicianNotesLT(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLT(FieldClinicianNotes, v))
}

// ClinicianNotesLTE applies the LTE predicate on the "clinician_notes" field.
func ClinicianNotesLTE(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldLTE(FieldClinicianNotes, v))
}

// ClinicianNotesContains applies the Contains predicate on the "clinician_notes" field.
func ClinicianNotesContains(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldContains(FieldClinicianNotes, v))
}

// ClinicianNotesHasPrefix applies the HasPrefix predicate on the "clinician_notes" field.
func ClinicianNotesHasPrefix(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldHasPrefix(FieldClinicianNotes, v))
}

// ClinicianNotesHasSuffix applies the HasSuffix predicate on the "clinician_notes" field.
func ClinicianNotesHasSuffix(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldHasSuffix(FieldClinicianNotes, v))
}

// ClinicianNotesIsNil applies the IsNil predicate on the "clinician_notes" field.
func ClinicianNotesIsNil() predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldIsNull(FieldClinicianNotes))
}

// ClinicianNotesNotNil applies the NotNil predicate on the "clinician_notes" field.
func ClinicianNotesNotNil() predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldNotNull(FieldClinicianNotes))
}

// ClinicianNotesEqualFold applies the EqualFold predicate on the "clinician_notes" field.
func ClinicianNotesEqualFold(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldEqualFold(FieldClinicianNotes, v))
}

// ClinicianNotesContainsFold applies the ContainsFold predicate on the "clinician_notes" field.
func ClinicianNotesContainsFold(v string) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.FieldContainsFold(FieldClinicianNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScreening applies the HasEdge predicate on the "screening" edge.
func HasScreening() predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScreeningTable, ScreeningColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScreeningWith applies the HasEdge predicate on the "screening" edge with a given conditions (other predicates).
func HasScreeningWith(preds ...predicate.ScreeningResult) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(func(s *sql.Selector) {
		step := newScreeningStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TeleconsultReferral) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TeleconsultReferral) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TeleconsultReferral) predicate.TeleconsultReferral {
	return predicate.TeleconsultReferral(sql.NotPredicates(p))
}
