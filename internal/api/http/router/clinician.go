package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/api/http/handler"
)

func (r *Router) registerClinicianRoutes(api fiber.Router, h *handler.ClinicianHandler, authRequired, clinicianOnly fiber.Handler) {
	group := api.Group("/clinician", authRequired, clinicianOnly)
	group.Get("/alerts", h.ListAlerts)
	group.Patch("/alerts/:id/resolve", h.ResolveAlert)
	group.Get("/referrals", h.ListReferrals)
	group.Patch("/referrals/:id", h.UpdateReferral)
	group.Get("/patients/:id/overview", h.PatientOverview)
}
