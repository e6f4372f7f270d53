package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"portfolio/internal/config"
	"portfolio/internal/email"
)

// HealthHandler reports process and email relay health.
type HealthHandler struct {
	cfg     *config.Config
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg, started: time.Now()}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// EmailHealth handles GET /api/email/health. Addresses are masked; the
// endpoint must never leak credentials or full recipient addresses.
func (h *HealthHandler) EmailHealth(c fiber.Ctx) error {
	if !h.cfg.IsEmailEnabled() {
		return c.JSON(fiber.Map{
			"configured": false,
		})
	}

	return c.JSON(fiber.Map{
		"configured": true,
		"mode":       h.cfg.EmailMode,
		"host":       h.cfg.SMTPHost,
		"port":       h.cfg.SMTPPort,
		"tls":        h.cfg.SMTPTLS,
		"from":       email.MaskAddress(h.cfg.SMTPFrom),
		"to":         email.MaskAddress(h.cfg.EmailTo),
	})
}
