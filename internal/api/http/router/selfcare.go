package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/api/http/handler"
)

func (r *Router) registerSelfCareRoutes(api fiber.Router, h *handler.SelfCareHandler, authRequired fiber.Handler) {
	group := api.Group("/selfcare", authRequired)
	group.Get("/exercises", h.ListExercises)
	group.Get("/exercises/:slug", h.GetExercise)
	group.Get("/recommendation", h.Recommendation)
	group.Post("/mood", h.CreateMoodEntry)
	group.Get("/mood", h.ListMoodEntries)
}
