package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ScreeningAlert flags a patient for clinician review. Alerts raised by
// the escalation engine carry the screening that produced them; crisis
// alerts raised from chat do not. The unique index on screening_result_id
// is the idempotency key: re-evaluating a screening can never produce a
// duplicate alert.
type ScreeningAlert struct {
	ent.Schema
}

func (ScreeningAlert) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ScreeningAlert) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("screening_result_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → screening_results.id; nil for chat crisis alerts"),

		field.Enum("alert_type").
			Values("score_increase", "suicidal_ideation", "crisis"),

		field.Text("message"),

		field.Int("delta_score").
			Optional().
			Comment("Score increase that fired the trend rule"),

		field.Int("window_days").
			Optional().
			Comment("Trend window the delta was measured over"),

		field.Bool("is_resolved").
			Default(false),

		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

func (ScreeningAlert) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("alerts").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("screening", ScreeningResult.Type).
			Ref("alert").
			Unique().
			Field("screening_result_id"),
	}
}

func (ScreeningAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("screening_result_id").Unique(),
		index.Fields("patient_id", "is_resolved", "created_at"),
	}
}
