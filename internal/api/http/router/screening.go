package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/api/http/handler"
)

func (r *Router) registerScreeningRoutes(api fiber.Router, h *handler.ScreeningHandler, authRequired fiber.Handler) {
	group := api.Group("/screenings", authRequired)
	group.Post("/", h.Submit)
	group.Get("/", h.History)
	group.Get("/:id", h.Get)
}
