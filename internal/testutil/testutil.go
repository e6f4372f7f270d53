// Package testutil provides test utilities and helpers.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/config"
	"portfolio/internal/models"
	"portfolio/internal/store"
)

// TestConfig returns a config suitable for tests: temp-dir data file, email
// disabled, AI disabled.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Env:          "test",
		ServerAddr:   ":0",
		BaseURL:      "http://localhost:3000",
		DataFile:     filepath.Join(t.TempDir(), "recommendations.json"),
		AdminKey:     "test-admin-key",
		RateLimitMax: 1000,
		SiteTitle:    "Test Portfolio",
		SiteOwner:    "Test Owner",
		SMTPPort:     587,
		SMTPTLS:      "starttls",
		EmailMode:    "smtp",
		ChatAIModel:  "gpt-4o-mini",
	}
}

// TestStore creates a store backed by a temp file.
func TestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "recommendations.json"))
}

// SeedRecommendation appends a recommendation with the given status and
// returns it.
func SeedRecommendation(t *testing.T, st *store.Store, status string) models.Recommendation {
	t.Helper()

	rec := models.Recommendation{
		ID:           uuid.NewString(),
		Name:         "Jane Doe",
		Title:        "Engineering Manager",
		Email:        "jane@example.com",
		Relationship: "Manager",
		Message:      "A thoroughly dependable colleague who delivers quality work on every project we shipped together.",
		Rating:       5,
		Status:       models.StatusPending,
		Timestamp:    time.Now().UTC().Add(-time.Hour),
	}
	if err := st.Append(rec); err != nil {
		t.Fatalf("failed to seed recommendation: %v", err)
	}

	if status != models.StatusPending {
		if _, err := st.SetStatus(rec.ID, status); err != nil {
			t.Fatalf("failed to set seeded status: %v", err)
		}
		rec.Status = status
	}
	return rec
}
