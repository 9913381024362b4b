package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Conversation is one chat session between a patient and the agent. It
// owns an ordered, append-only sequence of messages and is the unit of
// context retrieval for the response composer.
type Conversation struct {
	ent.Schema
}

func (Conversation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.String("session_id").
			Unique().
			NotEmpty().
			MaxLen(255).
			Immutable().
			Comment("Client-supplied session label"),

		field.Time("last_message_at").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("conversations").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("messages", Message.Type),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "is_active"),
	}
}
