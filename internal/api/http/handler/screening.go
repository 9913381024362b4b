package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/iwantdrugsxd/mind-ease/internal/service/patient"
	"github.com/iwantdrugsxd/mind-ease/internal/service/screening"
	"github.com/iwantdrugsxd/mind-ease/internal/triage"
	pasetotoken "github.com/iwantdrugsxd/mind-ease/pkg/paseto"
)

type ScreeningHandler struct {
	svc      screening.Service
	patients patient.Service
}

func NewScreeningHandler(svc screening.Service, patients patient.Service) *ScreeningHandler {
	return &ScreeningHandler{svc: svc, patients: patients}
}

func mapScreeningError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, screening.ErrUnknownInstrument):
		return badRequest(c, err.Error())
	case errors.Is(err, screening.ErrInvalidAnswers):
		return badRequest(c, err.Error())
	case errors.Is(err, screening.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, screening.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /screenings
func (h *ScreeningHandler) Submit(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	var body struct {
		Instrument string `json:"instrument"`
		Answers    []int  `json:"answers"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	resp, err := h.svc.Submit(c.Context(), screening.SubmitRequest{
		PatientID:  p.ID,
		Instrument: body.Instrument,
		Answers:    body.Answers,
	})
	if err != nil {
		return mapScreeningError(c, err)
	}

	action := fiber.Map{
		"type":   resp.Action.Type,
		"reason": resp.Action.Reason,
	}
	switch resp.Action.Type {
	case triage.ActionTriggerReferral:
		action["priority"] = resp.Action.Priority
	case triage.ActionClinicianAlert:
		action["delta_score"] = resp.Action.DeltaScore
		action["window_days"] = resp.Action.WindowDays
	}

	out := fiber.Map{
		"result":   resp.Result,
		"action":   action,
		"degraded": resp.Degraded,
	}
	if resp.RecommendedModule != "" {
		out["recommended_module"] = resp.RecommendedModule
	}

	return created(c, out)
}

// GET /screenings
func (h *ScreeningHandler) History(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	var q struct {
		Instrument string `query:"instrument"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	rows, err := h.svc.History(c.Context(), screening.HistoryRequest{
		PatientID:  p.ID,
		Instrument: q.Instrument,
		Page:       q.Page,
		PerPage:    q.PerPage,
	})
	if err != nil {
		return mapScreeningError(c, err)
	}

	return ok(c, rows)
}

// GET /screenings/:id
func (h *ScreeningHandler) Get(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	resultID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid screening id")
	}

	row, err := h.svc.Get(c.Context(), resultID)
	if err != nil {
		return mapScreeningError(c, err)
	}
	if row.PatientID != p.ID {
		return forbidden(c)
	}

	return ok(c, row)
}

// currentPatient resolves the authenticated user's patient profile.
func currentPatient(c fiber.Ctx, patients patient.Service) (*patientProfile, error) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return nil, errors.New("missing claims")
	}
	p, err := patients.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return nil, err
	}
	return &patientProfile{ID: p.ID, UserID: p.UserID}, nil
}

type patientProfile struct {
	ID     uuid.UUID
	UserID uuid.UUID
}
