package selfcare

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/iwantdrugsxd/mind-ease/internal/repo"
	entmood "github.com/iwantdrugsxd/mind-ease/internal/repo/moodentry"
	entsr "github.com/iwantdrugsxd/mind-ease/internal/repo/screeningresult"
	entex "github.com/iwantdrugsxd/mind-ease/internal/repo/selfcareexercise"
	"github.com/iwantdrugsxd/mind-ease/internal/triage"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type MoodEntryRequest struct {
	PatientID    uuid.UUID
	Mood         int
	Energy       int
	SleepQuality int
	Stress       int
	Notes        string
}

type ListMoodRequest struct {
	PatientID uuid.UUID
	Since     *time.Time
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListExercises(ctx context.Context, exerciseType string) ([]*repo.SelfCareExercise, error)
	GetExercise(ctx context.Context, slug string) (*repo.SelfCareExercise, error)

	// Recommend resolves the patient's current self-care recommendation:
	// the module the escalation engine attached to their latest screening,
	// or guided relaxation when they have never screened.
	Recommend(ctx context.Context, patientID uuid.UUID) (*repo.SelfCareExercise, error)

	CreateMoodEntry(ctx context.Context, req MoodEntryRequest) (*repo.MoodEntry, error)
	ListMoodEntries(ctx context.Context, req ListMoodRequest) ([]*repo.MoodEntry, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type selfCareService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &selfCareService{db: db}
}

func (s *selfCareService) ListExercises(ctx context.Context, exerciseType string) ([]*repo.SelfCareExercise, error) {
	q := s.db.SelfCareExercise.Query().
		Where(entex.IsActive(true))
	if exerciseType != "" {
		q = q.Where(entex.ExerciseTypeEQ(entex.ExerciseType(exerciseType)))
	}

	rows, err := q.
		Order(entex.ByName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return rows, nil
}

func (s *selfCareService) GetExercise(ctx context.Context, slug string) (*repo.SelfCareExercise, error) {
	row, err := s.db.SelfCareExercise.Query().
		Where(entex.Slug(slug), entex.IsActive(true)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return row, nil
}

func (s *selfCareService) Recommend(ctx context.Context, patientID uuid.UUID) (*repo.SelfCareExercise, error) {
	slug := triage.ModuleGuidedRelaxation

	latest, err := s.db.ScreeningResult.Query().
		Where(entsr.PatientID(patientID)).
		Order(entsr.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	switch {
	case err == nil:
		if latest.RecommendedModule != "" {
			slug = latest.RecommendedModule
		}
	case repo.IsNotFound(err):
		// never screened, keep the default
	default:
		return nil, fmt.Errorf("latest screening: %w", err)
	}

	return s.GetExercise(ctx, slug)
}

func (s *selfCareService) CreateMoodEntry(ctx context.Context, req MoodEntryRequest) (*repo.MoodEntry, error) {
	for _, v := range []int{req.Mood, req.Energy, req.SleepQuality, req.Stress} {
		if v < 1 || v > 5 {
			return nil, ErrInvalidRating
		}
	}

	c := s.db.MoodEntry.Create().
		SetPatientID(req.PatientID).
		SetMood(req.Mood).
		SetEnergy(req.Energy).
		SetSleepQuality(req.SleepQuality).
		SetStress(req.Stress)
	if req.Notes != "" {
		c = c.SetNotes(req.Notes)
	}

	row, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create mood entry: %w", err)
	}
	return row, nil
}

func (s *selfCareService) ListMoodEntries(ctx context.Context, req ListMoodRequest) ([]*repo.MoodEntry, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 30
	}

	q := s.db.MoodEntry.Query().
		Where(entmood.PatientID(req.PatientID))
	if req.Since != nil {
		q = q.Where(entmood.CreatedAtGTE(*req.Since))
	}

	rows, err := q.
		Order(entmood.ByCreatedAt(sql.OrderDesc())).
		Offset((req.Page - 1) * req.PerPage).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	return rows, nil
}
