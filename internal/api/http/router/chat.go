package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/api/http/handler"
)

func (r *Router) registerChatRoutes(api fiber.Router, h *handler.ConversationHandler, authRequired fiber.Handler) {
	group := api.Group("/chat", authRequired)
	group.Post("/messages", h.SendMessage)
	group.Get("/sessions", h.ListSessions)
	group.Get("/sessions/:session_id/messages", h.ListMessages)
	group.Delete("/sessions/:session_id", h.EndSession)
}
