package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the screening-facing profile of a user. Screenings, chat
// conversations, and triage records all hang off this record.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.String("phone_number").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("E.164, validated before write"),

		field.String("emergency_contact").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("emergency_phone").
			Optional().
			Nillable().
			MaxLen(20),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("user", User.Type).
			Unique().
			Required().
			Field("user_id"),
		edge.To("screenings", ScreeningResult.Type),
		edge.To("alerts", ScreeningAlert.Type),
		edge.To("referrals", TeleconsultReferral.Type),
		edge.To("conversations", Conversation.Type),
		edge.To("mood_entries", MoodEntry.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
