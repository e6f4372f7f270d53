package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"portfolio/internal/config"
	"portfolio/internal/email"
	"portfolio/internal/metrics"
	"portfolio/internal/models"
	"portfolio/internal/store"
	"portfolio/internal/validation"
)

// RecommendationHandler handles recommendation intake, listing, and
// moderation.
type RecommendationHandler struct {
	store    *store.Store
	cfg      *config.Config
	notifier *email.Notifier
}

// NewRecommendationHandler creates a new recommendation handler.
func NewRecommendationHandler(st *store.Store, cfg *config.Config, notifier *email.Notifier) *RecommendationHandler {
	return &RecommendationHandler{store: st, cfg: cfg, notifier: notifier}
}

// Create handles POST /api/recommendations: validates the submission,
// appends a pending record, and fires the owner notification. Notification
// failure never fails the submission.
func (h *RecommendationHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name         string `json:"name"`
		Title        string `json:"title"`
		Email        string `json:"email"`
		LinkedIn     string `json:"linkedin"`
		Relationship string `json:"relationship"`
		Message      string `json:"message"`
		Rating       int    `json:"rating"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonFail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	name := strings.TrimSpace(body.Name)
	title := strings.TrimSpace(body.Title)
	addr := strings.TrimSpace(body.Email)
	relationship := strings.TrimSpace(body.Relationship)
	message := strings.TrimSpace(body.Message)

	if valid, msg := validation.ValidateRecommendation(name, title, addr, relationship, message, body.Rating); !valid {
		return jsonFail(c, fiber.StatusBadRequest, msg)
	}

	rec := models.Recommendation{
		ID:           uuid.NewString(),
		Name:         name,
		Title:        title,
		Email:        addr,
		LinkedIn:     strings.TrimSpace(body.LinkedIn),
		Relationship: relationship,
		Message:      message,
		Rating:       body.Rating,
		Status:       models.StatusPending,
		Timestamp:    time.Now().UTC(),
	}

	if err := h.store.Append(rec); err != nil {
		slog.Error("failed to persist recommendation", "error", err)
		return jsonFail(c, fiber.StatusInternalServerError, "Failed to save your recommendation, please try again later")
	}

	h.notifier.NotifyRecommendationSubmitted(&rec)
	metrics.RecordSubmission()

	return jsonOK(c, "Thank you for your recommendation! It will appear on the site once approved.")
}

// List handles GET /api/recommendations: the public surface, approved
// records only, in submission order.
func (h *RecommendationHandler) List(c fiber.Ctx) error {
	recs := h.store.Approved()
	return c.JSON(fiber.Map{
		"success":         true,
		"recommendations": recs,
	})
}

// ListAll handles GET /api/recommendations/all: the key-gated admin dump.
func (h *RecommendationHandler) ListAll(c fiber.Ctx) error {
	recs := h.store.All()
	return c.JSON(fiber.Map{
		"success":         true,
		"recommendations": recs,
	})
}

// Approve handles the one-click approve link from the notification email.
// Renders an HTML confirmation or error page, not JSON.
func (h *RecommendationHandler) Approve(c fiber.Ctx) error {
	return h.moderate(c, models.StatusApproved)
}

// Reject handles the one-click reject link.
func (h *RecommendationHandler) Reject(c fiber.Ctx) error {
	return h.moderate(c, models.StatusRejected)
}

func (h *RecommendationHandler) moderate(c fiber.Ctx, status string) error {
	id := c.Query("id")
	if id == "" {
		return htmlPage(c, fiber.StatusBadRequest, "400 — Bad Request", "Missing recommendation id.")
	}

	rec, err := h.store.SetStatus(id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return htmlPage(c, fiber.StatusNotFound, "404 — Not Found", "No recommendation with that id exists.")
		}
		slog.Error("failed to update recommendation status", "id", id, "status", status, "error", err)
		return htmlPage(c, fiber.StatusInternalServerError, "500 — Server Error", "Could not update the recommendation, please retry.")
	}

	metrics.RecordModeration(status)

	heading := "Recommendation Approved"
	detail := fmt.Sprintf("The recommendation from %s is now visible on the site.", rec.Name)
	if status == models.StatusRejected {
		heading = "Recommendation Rejected"
		detail = fmt.Sprintf("The recommendation from %s will not be shown.", rec.Name)
	}
	return htmlPage(c, fiber.StatusOK, heading, detail)
}
