package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio/internal/chat"
	"portfolio/internal/email"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(st *store.Store, notifier *email.Notifier) {
	// Initialize middleware
	adminKey := middleware.NewAdminKey(s.Cfg)

	// Initialize handlers
	recHandler := handlers.NewRecommendationHandler(st, s.Cfg, notifier)
	contactHandler := handlers.NewContactHandler(s.Cfg, notifier)
	chatHandler := handlers.NewChatHandler(chat.NewResponder(s.Cfg))
	healthHandler := handlers.NewHealthHandler(s.Cfg)
	adminHandler := handlers.NewAdminHandler(st, s.Cfg)

	// Public API
	s.App.Post("/api/contact", contactHandler.Create)
	s.App.Post("/api/chat", chatHandler.Ask)
	s.App.Post("/api/recommendations", recHandler.Create)
	s.App.Get("/api/recommendations", recHandler.List)

	// Admin surfaces, gated on the shared moderation key. The gate must be
	// registered ahead of the handler so it runs first in the chain.
	s.App.Get("/api/recommendations/all", adminKey.RequireKey, recHandler.ListAll)
	s.App.Get("/api/recommendations/approve", adminKey.RequireKeyPage, recHandler.Approve)
	s.App.Get("/api/recommendations/reject", adminKey.RequireKeyPage, recHandler.Reject)
	s.App.Get("/admin", adminKey.RequireKeyPage, adminHandler.Dashboard)

	// Operational endpoints
	s.App.Get("/api/health", healthHandler.Health)
	s.App.Get("/api/email/health", healthHandler.EmailHealth)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Static site - must be last (catch-all)
	s.App.Get("/*", static.New(s.Cfg.PublicDir))
}
