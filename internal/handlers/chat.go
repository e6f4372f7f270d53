package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v3"

	"portfolio/internal/chat"
	"portfolio/internal/metrics"
)

// ChatHandler answers visitor chatbot queries.
type ChatHandler struct {
	responder *chat.Responder
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(responder *chat.Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// Ask handles POST /api/chat.
func (h *ChatHandler) Ask(c fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	message := strings.TrimSpace(body.Message)
	if message == "" {
		return jsonFail(c, fiber.StatusBadRequest, "A message is required")
	}

	reply, source := h.responder.Respond(c.Context(), message)
	metrics.RecordChatAnswer(source)

	return c.JSON(fiber.Map{
		"success": true,
		"reply":   reply,
		"source":  source,
	})
}
