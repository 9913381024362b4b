package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/service/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/service/selfcare"
)

type SelfCareHandler struct {
	svc      selfcare.Service
	patients patient.Service
}

func NewSelfCareHandler(svc selfcare.Service, patients patient.Service) *SelfCareHandler {
	return &SelfCareHandler{svc: svc, patients: patients}
}

func mapSelfCareError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, selfcare.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, selfcare.ErrInvalidRating):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /selfcare/exercises
func (h *SelfCareHandler) ListExercises(c fiber.Ctx) error {
	var q struct {
		Type string `query:"type"`
	}
	_ = c.Bind().Query(&q)

	rows, err := h.svc.ListExercises(c.Context(), q.Type)
	if err != nil {
		return mapSelfCareError(c, err)
	}

	return ok(c, rows)
}

// GET /selfcare/exercises/:slug
func (h *SelfCareHandler) GetExercise(c fiber.Ctx) error {
	row, err := h.svc.GetExercise(c.Context(), c.Params("slug"))
	if err != nil {
		return mapSelfCareError(c, err)
	}

	return ok(c, row)
}

// GET /selfcare/recommendation
func (h *SelfCareHandler) Recommendation(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	row, err := h.svc.Recommend(c.Context(), p.ID)
	if err != nil {
		return mapSelfCareError(c, err)
	}

	return ok(c, row)
}

// POST /selfcare/mood
func (h *SelfCareHandler) CreateMoodEntry(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	var body struct {
		Mood         int    `json:"mood"`
		Energy       int    `json:"energy"`
		SleepQuality int    `json:"sleep_quality"`
		Stress       int    `json:"stress"`
		Notes        string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	row, err := h.svc.CreateMoodEntry(c.Context(), selfcare.MoodEntryRequest{
		PatientID:    p.ID,
		Mood:         body.Mood,
		Energy:       body.Energy,
		SleepQuality: body.SleepQuality,
		Stress:       body.Stress,
		Notes:        body.Notes,
	})
	if err != nil {
		return mapSelfCareError(c, err)
	}

	return created(c, row)
}

// GET /selfcare/mood
func (h *SelfCareHandler) ListMoodEntries(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	rows, err := h.svc.ListMoodEntries(c.Context(), selfcare.ListMoodRequest{
		PatientID: p.ID,
		Page:      q.Page,
		PerPage:   q.PerPage,
	})
	if err != nil {
		return mapSelfCareError(c, err)
	}

	return ok(c, rows)
}
