package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, h *handler.PatientHandler, authRequired fiber.Handler) {
	group := api.Group("/patients", authRequired)
	group.Get("/me", h.Me)
	group.Patch("/me", h.UpdateMe)
}
