package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Message is a single turn in a Conversation. User turns carry the
// signal extraction results computed when the message arrived; agent
// turns carry only text. The log is append-only.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("conversation_id", uuid.UUID{}).
			Immutable().
			Comment("FK → conversations.id"),

		field.Enum("sender").
			Values("user", "agent").
			Immutable(),

		field.Text("content").
			Immutable(),

		field.String("detected_emotion").
			Optional().
			MaxLen(50),

		field.Float("emotion_confidence").
			Optional(),

		field.Enum("risk_level").
			Values("none", "medium", "high", "critical").
			Optional(),

		field.JSON("risk_keywords", []string{}).
			Optional(),

		field.String("intent").
			Optional().
			MaxLen(50),

		field.Float("intent_confidence").
			Optional(),
	}
}

func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Unique().
			Required().
			Immutable().
			Field("conversation_id"),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
	}
}
