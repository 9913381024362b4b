package selfcare

import (
	"context"
	"fmt"

	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entex "github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
	"github.com/iwantdrugsxd/mind-ease/internal/triage"
)

type seedExercise struct {
	slug         string
	name         string
	description  string
	exerciseType entex.ExerciseType
	duration     int
	difficulty   entex.Difficulty
	instructions string
	benefits     string
}

// catalog holds the exercises the escalation engine can recommend.
// Slugs must stay in sync with the triage module constants.
var catalog = []seedExercise{
	{
		slug:         triage.ModuleBreathing478,
		name:         "4-7-8 Breathing",
		description:  "A paced breathing technique that activates the body's relaxation response.",
		exerciseType: entex.ExerciseTypeBreathing,
		duration:     5,
		difficulty:   entex.DifficultyBeginner,
		instructions: "Sit comfortably with your back straight. Exhale completely through your mouth. Inhale quietly through your nose for 4 counts. Hold your breath for 7 counts. Exhale completely through your mouth for 8 counts. Repeat the cycle four times.",
		benefits:     "Reduces acute anxiety, lowers heart rate, helps with falling asleep.",
	},
	{
		slug:         triage.ModuleMindfulness,
		name:         "Mindfulness Meditation",
		description:  "A short guided meditation focused on observing the present moment without judgement.",
		exerciseType: entex.ExerciseTypeMeditation,
		duration:     10,
		difficulty:   entex.DifficultyBeginner,
		instructions: "Find a quiet spot and sit comfortably. Close your eyes and bring attention to your breath. When thoughts arise, notice them and gently return to the breath. Continue for ten minutes.",
		benefits:     "Improves mood regulation and reduces rumination.",
	},
	{
		slug:         triage.ModuleMuscleRelaxation,
		name:         "Progressive Muscle Relaxation",
		description:  "Systematically tensing and releasing muscle groups to discharge physical tension.",
		exerciseType: entex.ExerciseTypeRelaxation,
		duration:     15,
		difficulty:   entex.DifficultyBeginner,
		instructions: "Lie down or sit back. Starting with your feet, tense each muscle group for 5 seconds, then release for 10 seconds. Work upward through legs, abdomen, hands, arms, shoulders, neck and face.",
		benefits:     "Relieves the physical symptoms of anxiety and improves sleep quality.",
	},
	{
		slug:         triage.ModuleJournaling,
		name:         "Journaling and Gratitude",
		description:  "A structured writing exercise pairing free reflection with a daily gratitude list.",
		exerciseType: entex.ExerciseTypeJournaling,
		duration:     15,
		difficulty:   entex.DifficultyBeginner,
		instructions: "Write freely about how you are feeling for ten minutes without editing yourself. Then list three things, however small, that you are grateful for today and why.",
		benefits:     "Clarifies difficult feelings and counterbalances negative thought patterns.",
	},
	{
		slug:         triage.ModuleGuidedRelaxation,
		name:         "Guided Relaxation Exercises",
		description:  "A collection of short body-scan and visualization exercises for winding down.",
		exerciseType: entex.ExerciseTypeRelaxation,
		duration:     10,
		difficulty:   entex.DifficultyBeginner,
		instructions: "Choose a quiet place and a comfortable position. Follow the body scan from head to toe, releasing tension at each step, then picture a calm place and hold the image while breathing slowly.",
		benefits:     "A gentle default for any mood state, suitable before sleep.",
	},
}

// Seed writes the self-care catalog. Safe to run on every startup:
// existing rows are refreshed in place, never duplicated.
func Seed(ctx context.Context, db *repo.Client) error {
	for _, e := range catalog {
		existing, err := db.SelfCareExercise.Query().
			Where(entex.Slug(e.slug)).
			Only(ctx)
		switch {
		case err == nil:
			_, err = existing.Update().
				SetName(e.name).
				SetDescription(e.description).
				SetExerciseType(e.exerciseType).
				SetDurationMinutes(e.duration).
				SetDifficulty(e.difficulty).
				SetInstructions(e.instructions).
				SetBenefits(e.benefits).
				SetIsActive(true).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("refresh exercise %s: %w", e.slug, err)
			}
		case repo.IsNotFound(err):
			_, err = db.SelfCareExercise.Create().
				SetSlug(e.slug).
				SetName(e.name).
				SetDescription(e.description).
				SetExerciseType(e.exerciseType).
				SetDurationMinutes(e.duration).
				SetDifficulty(e.difficulty).
				SetInstructions(e.instructions).
				SetBenefits(e.benefits).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("seed exercise %s: %w", e.slug, err)
			}
		default:
			return fmt.Errorf("query exercise %s: %w", e.slug, err)
		}
	}
	return nil
}
