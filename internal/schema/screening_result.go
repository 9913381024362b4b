package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ScreeningResult is one completed questionnaire. Rows are append-only:
// later submissions supersede earlier ones, nothing is ever mutated or
// deleted. total_score and severity_band are recomputed server-side on
// write and never accepted from the client.
type ScreeningResult struct {
	ent.Schema
}

func (ScreeningResult) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ScreeningResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Immutable().
			Comment("FK → patients.id"),

		field.Enum("instrument").
			Values("phq9", "gad7").
			Immutable(),

		field.JSON("answers", []int{}).
			Immutable().
			Comment("Ordered item responses, each 0-3"),

		field.Int("total_score").
			Immutable().
			NonNegative(),

		field.Enum("severity_band").
			Values("minimal", "mild", "moderate", "moderately_severe", "severe").
			Immutable(),

		field.Enum("risk_level").
			Values("low", "medium", "high", "critical").
			Immutable(),

		field.Enum("triage_action").
			Values("trigger_referral", "clinician_alert", "recommend_self_care").
			Immutable(),

		field.String("recommended_module").
			Optional().
			Immutable().
			MaxLen(64).
			Comment("Self-care module id when triage_action is recommend_self_care"),
	}
}

func (ScreeningResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("screenings").
			Unique().
			Required().
			Immutable().
			Field("patient_id"),
		edge.To("alert", ScreeningAlert.Type),
		edge.To("referral", TeleconsultReferral.Type),
	}
}

func (ScreeningResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "instrument", "created_at"),
	}
}
