package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/iwantdrugsxd/mind-ease/internal/service/clinician"
)

type ClinicianHandler struct {
	svc clinician.Service
}

func NewClinicianHandler(svc clinician.Service) *ClinicianHandler {
	return &ClinicianHandler{svc: svc}
}

func mapClinicianError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinician.ErrAlertNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinician.ErrReferralNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinician.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinician.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /clinician/alerts
func (h *ClinicianHandler) ListAlerts(c fiber.Ctx) error {
	var q struct {
		UnresolvedOnly bool   `query:"unresolved_only"`
		PatientID      string `query:"patient_id"`
		Page           int    `query:"page"`
		PerPage        int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := clinician.ListAlertsRequest{
		UnresolvedOnly: q.UnresolvedOnly,
		Page:           q.Page,
		PerPage:        q.PerPage,
	}
	if q.PatientID != "" {
		pid, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &pid
	}

	rows, err := h.svc.ListAlerts(c.Context(), req)
	if err != nil {
		return mapClinicianError(c, err)
	}

	return ok(c, rows)
}

// PATCH /clinician/alerts/:id/resolve
func (h *ClinicianHandler) ResolveAlert(c fiber.Ctx) error {
	alertID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid alert id")
	}

	alert, err := h.svc.ResolveAlert(c.Context(), alertID)
	if err != nil {
		return mapClinicianError(c, err)
	}

	return ok(c, alert)
}

// GET /clinician/referrals
func (h *ClinicianHandler) ListReferrals(c fiber.Ctx) error {
	var q struct {
		Status    string `query:"status"`
		PatientID string `query:"patient_id"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := clinician.ListReferralsRequest{
		Status:  q.Status,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.PatientID != "" {
		pid, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &pid
	}

	rows, err := h.svc.ListReferrals(c.Context(), req)
	if err != nil {
		return mapClinicianError(c, err)
	}

	return ok(c, rows)
}

// PATCH /clinician/referrals/:id
func (h *ClinicianHandler) UpdateReferral(c fiber.Ctx) error {
	referralID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid referral id")
	}

	var body struct {
		Status         *string    `json:"status"`
		ScheduledDate  *time.Time `json:"scheduled_date"`
		ClinicianNotes *string    `json:"clinician_notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	ref, err := h.svc.UpdateReferral(c.Context(), referralID, clinician.UpdateReferralRequest{
		Status:         body.Status,
		ScheduledDate:  body.ScheduledDate,
		ClinicianNotes: body.ClinicianNotes,
	})
	if err != nil {
		return mapClinicianError(c, err)
	}

	return ok(c, ref)
}

// GET /clinician/patients/:id/overview
func (h *ClinicianHandler) PatientOverview(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	overview, err := h.svc.PatientOverview(c.Context(), patientID)
	if err != nil {
		return mapClinicianError(c, err)
	}

	return ok(c, overview)
}
