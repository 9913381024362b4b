package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TeleconsultReferral queues a patient for a clinician consultation.
// One referral per screening at most; the unique index on
// screening_result_id de-duplicates repeated evaluation.
type TeleconsultReferral struct {
	ent.Schema
}

func (TeleconsultReferral) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (TeleconsultReferral) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("screening_result_id", uuid.UUID{}).
			Comment("FK → screening_results.id"),

		field.Text("reason"),

		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium"),

		field.Enum("status").
			Values("pending", "scheduled", "completed", "cancelled").
			Default("pending"),

		field.Time("scheduled_date").
			Optional().
			Nillable(),

		field.Text("clinician_notes").
			Optional().
			Nillable(),
	}
}

func (TeleconsultReferral) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("referrals").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("screening", ScreeningResult.Type).
			Ref("referral").
			Unique().
			Required().
			Field("screening_result_id"),
	}
}

func (TeleconsultReferral) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("screening_result_id").Unique(),
		index.Fields("patient_id", "status"),
		index.Fields("status", "priority"),
	}
}
