package handlers

import (
	"github.com/gofiber/fiber/v3"

	"portfolio/internal/config"
	"portfolio/internal/models"
	"portfolio/internal/store"
)

// AdminHandler renders the key-gated moderation dashboard.
type AdminHandler struct {
	store *store.Store
	cfg   *config.Config
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(st *store.Store, cfg *config.Config) *AdminHandler {
	return &AdminHandler{store: st, cfg: cfg}
}

// Dashboard handles GET /admin?key=: every record with its status and
// one-click moderation links. The key is threaded into the links so they
// work without re-entering it.
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	recs := h.store.All()
	counts := h.store.CountByStatus()

	return c.Render("admin", fiber.Map{
		"Title":           "Moderation Dashboard",
		"SiteTitle":       h.cfg.SiteTitle,
		"Recommendations": recs,
		"Pending":         counts[models.StatusPending],
		"Approved":        counts[models.StatusApproved],
		"Rejected":        counts[models.StatusRejected],
		"Key":             c.Query("key"),
	})
}
