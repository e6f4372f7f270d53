package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"portfolio/internal/config"
	"portfolio/internal/email"
	"portfolio/internal/jobs"
	"portfolio/internal/metrics"
	"portfolio/internal/server"
	"portfolio/internal/store"
)

func main() {
	cfg := config.Load()

	if cfg.AdminKey == "changeme2026" && !cfg.IsDev() {
		log.Println("Warning: ADMIN_KEY is the built-in default; set it before exposing this server")
	}

	// Initialize the recommendation store and metrics
	st := store.New(cfg.DataFile)
	metrics.Init(st)

	// Email relay (best-effort; logs its own enabled/disabled state)
	notifier := email.NewNotifier(cfg)

	// Build the server and register routes
	srv := server.New(cfg)
	srv.RegisterRoutes(st, notifier)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.PendingReminderInterval > 0 && notifier.IsEnabled() {
		reminder := jobs.NewPendingReminder(st, notifier, cfg.PendingReminderInterval, cfg.PendingReminderMaxAge)
		go reminder.Start(ctx)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
