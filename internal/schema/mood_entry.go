package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MoodEntry is a quick daily check-in between screenings. Feeds the
// dashboard trend view only; the escalation engine never reads these.
type MoodEntry struct {
	ent.Schema
}

func (MoodEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (MoodEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Immutable().
			Comment("FK → patients.id"),

		field.Int("mood").
			Range(1, 5),

		field.Int("energy").
			Range(1, 5),

		field.Int("sleep_quality").
			Range(1, 5),

		field.Int("stress").
			Range(1, 5),

		field.Text("notes").
			Optional(),
	}
}

func (MoodEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("mood_entries").
			Unique().
			Required().
			Immutable().
			Field("patient_id"),
	}
}

func (MoodEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
	}
}
