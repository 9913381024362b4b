package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/service/patient"
	pasetotoken "github.com/iwantdrugsxd/mind-ease/pkg/paseto"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrInvalidDOB):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/me
func (h *PatientHandler) Me(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	p, err := h.svc.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PATCH /patients/me
func (h *PatientHandler) UpdateMe(c fiber.Ctx) error {
	claims, claimsOK := pasetotoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	p, err := h.svc.GetByUserID(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	var body struct {
		DateOfBirth      *time.Time `json:"date_of_birth"`
		PhoneNumber      *string    `json:"phone_number"`
		EmergencyContact *string    `json:"emergency_contact"`
		EmergencyPhone   *string    `json:"emergency_phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	updated, err := h.svc.UpdateProfile(c.Context(), p.ID, patient.UpdateProfileRequest{
		DateOfBirth:      body.DateOfBirth,
		PhoneNumber:      body.PhoneNumber,
		EmergencyContact: body.EmergencyContact,
		EmergencyPhone:   body.EmergencyPhone,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, updated)
}
