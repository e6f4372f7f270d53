package handlers

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"portfolio/internal/config"
	"portfolio/internal/email"
	"portfolio/internal/metrics"
	"portfolio/internal/models"
	"portfolio/internal/validation"
)

// ContactHandler relays contact form submissions to the site owner.
type ContactHandler struct {
	cfg      *config.Config
	notifier *email.Notifier
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(cfg *config.Config, notifier *email.Notifier) *ContactHandler {
	return &ContactHandler{cfg: cfg, notifier: notifier}
}

// Create handles POST /api/contact. Once validation passes the visitor
// always gets a success response; the relay and auto-reply are best-effort.
func (h *ContactHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	name := strings.TrimSpace(body.Name)
	addr := strings.TrimSpace(body.Email)
	message := strings.TrimSpace(body.Message)

	if valid, msg := validation.ValidateContact(name, addr, message); !valid {
		return jsonFail(c, fiber.StatusBadRequest, msg)
	}

	if len(message) > 10000 {
		message = message[:10000]
	}

	msg := models.ContactMessage{
		Name:      name,
		Email:     addr,
		Subject:   strings.TrimSpace(body.Subject),
		Message:   message,
		UserAgent: c.Get("User-Agent"),
		IP:        c.IP(),
		Timestamp: time.Now().UTC(),
	}

	slog.Info("contact form submission", "name", msg.Name, "email", email.MaskAddress(msg.Email), "subject", msg.Subject)

	h.notifier.NotifyContactMessage(&msg)
	h.notifier.SendContactAutoReply(&msg)
	metrics.RecordContact()

	return jsonOK(c, "Thank you for your message! I will get back to you soon.")
}
