package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"portfolio/internal/chat"
	"portfolio/internal/config"
	"portfolio/internal/email"
	"portfolio/internal/middleware"
	"portfolio/internal/store"
	"portfolio/internal/testutil"
)

// newTestApp wires the API routes the way the server does, minus the
// template engine and static file serving.
func newTestApp(t *testing.T) (*fiber.App, *store.Store, *config.Config) {
	t.Helper()

	cfg := testutil.TestConfig(t)
	st := store.New(cfg.DataFile)
	notifier := email.NewNotifier(cfg)
	adminKey := middleware.NewAdminKey(cfg)

	recs := NewRecommendationHandler(st, cfg, notifier)
	contact := NewContactHandler(cfg, notifier)
	chatHandler := NewChatHandler(chat.NewResponder(cfg))
	health := NewHealthHandler(cfg)

	app := fiber.New()
	app.Post("/api/contact", contact.Create)
	app.Post("/api/chat", chatHandler.Ask)
	app.Post("/api/recommendations", recs.Create)
	app.Get("/api/recommendations", recs.List)
	app.Get("/api/recommendations/all", adminKey.RequireKey, recs.ListAll)
	app.Get("/api/recommendations/approve", adminKey.RequireKeyPage, recs.Approve)
	app.Get("/api/recommendations/reject", adminKey.RequireKeyPage, recs.Reject)
	app.Get("/api/health", health.Health)
	app.Get("/api/email/health", health.EmailHealth)

	return app, st, cfg
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(body)
}
