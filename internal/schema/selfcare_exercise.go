package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SelfCareExercise is a catalog row behind the escalation engine's
// module recommendations. The slug is the stable join key the engine
// emits; content is editable without touching decision logic.
type SelfCareExercise struct {
	ent.Schema
}

func (SelfCareExercise) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (SelfCareExercise) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			Unique().
			NotEmpty().
			MaxLen(64).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(200),

		field.Text("description"),

		field.Enum("exercise_type").
			Values("breathing", "meditation", "journaling", "relaxation", "physical"),

		field.Int("duration_minutes").
			Positive(),

		field.Enum("difficulty").
			Values("beginner", "intermediate", "advanced").
			Default("beginner"),

		field.Text("instructions"),

		field.Text("benefits").
			Optional(),

		field.Bool("is_active").
			Default(true),
	}
}
