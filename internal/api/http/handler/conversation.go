package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/iwantdrugsxd/mind-ease/internal/service/conversation"
	"github.com/iwantdrugsxd/mind-ease/internal/service/patient"
)

type ConversationHandler struct {
	svc      conversation.Service
	patients patient.Service
}

func NewConversationHandler(svc conversation.Service, patients patient.Service) *ConversationHandler {
	return &ConversationHandler{svc: svc, patients: patients}
}

func mapConversationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, conversation.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, conversation.ErrEmptyMessage):
		return badRequest(c, err.Error())
	case errors.Is(err, conversation.ErrNotOwner):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /chat/messages
func (h *ConversationHandler) SendMessage(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	var body struct {
		SessionID string `json:"session_id"`
		Content   string `json:"content"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.SessionID == "" {
		return badRequest(c, "session_id is required")
	}

	resp, err := h.svc.SendMessage(c.Context(), conversation.SendMessageRequest{
		PatientID: p.ID,
		SessionID: body.SessionID,
		Content:   body.Content,
	})
	if err != nil {
		return mapConversationError(c, err)
	}

	return created(c, fiber.Map{
		"reply":              resp.AgentMessage.Content,
		"risk_flag":          resp.RiskFlag,
		"intent":             resp.Intent,
		"detected_emotion":   resp.UserMessage.DetectedEmotion,
		"emotion_confidence": resp.UserMessage.EmotionConfidence,
		"message_id":         resp.UserMessage.ID,
	})
}

// GET /chat/sessions/:session_id/messages
func (h *ConversationHandler) ListMessages(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	msgs, err := h.svc.ListMessages(c.Context(), conversation.ListMessagesRequest{
		PatientID: p.ID,
		SessionID: c.Params("session_id"),
		Page:      q.Page,
		PerPage:   q.PerPage,
	})
	if err != nil {
		return mapConversationError(c, err)
	}

	return ok(c, msgs)
}

// GET /chat/sessions
func (h *ConversationHandler) ListSessions(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	convs, err := h.svc.ListConversations(c.Context(), p.ID)
	if err != nil {
		return mapConversationError(c, err)
	}

	return ok(c, convs)
}

// DELETE /chat/sessions/:session_id
func (h *ConversationHandler) EndSession(c fiber.Ctx) error {
	p, err := currentPatient(c, h.patients)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.svc.EndConversation(c.Context(), p.ID, c.Params("session_id")); err != nil {
		return mapConversationError(c, err)
	}

	return noContent(c)
}
