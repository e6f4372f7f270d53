// Package store persists the recommendation collection as a single JSON
// array on local disk. Every mutation is a whole-file read-modify-write
// serialised by a process-wide mutex; writes go through a temp file and an
// atomic rename so a concurrent reader never observes a partial file.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"portfolio/internal/models"
)

// Store owns the recommendation collection. Callers never hold records
// beyond a single call; each operation re-reads the backing file.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by the JSON file at path. The file is created
// lazily on first write.
func New(path string) *Store {
	return &Store{path: path}
}

// All returns every record in submission order. A missing, unreadable, or
// corrupt backing file is logged and treated as an empty collection; read
// failures never propagate to callers.
func (s *Store) All() []models.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// Approved returns only publicly visible records, in submission order.
func (s *Store) Approved() []models.Recommendation {
	all := s.All()
	approved := make([]models.Recommendation, 0, len(all))
	for _, rec := range all {
		if rec.IsApproved() {
			approved = append(approved, rec)
		}
	}
	return approved
}

// Append adds one record and persists the collection. Write errors propagate.
func (s *Store) Append(rec models.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := append(s.readLocked(), rec)
	return s.writeLocked(recs)
}

// SetStatus moves the record with the given id to the given status and
// persists the collection. Approving sets approvedAt on the first approval
// only; it is never reset, including across a later reject/approve cycle.
// Returns ErrNotFound for an unknown id.
func (s *Store) SetStatus(id, status string) (*models.Recommendation, error) {
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.readLocked()
	for i := range recs {
		if recs[i].ID != id {
			continue
		}
		recs[i].Status = status
		if status == models.StatusApproved && recs[i].ApprovedAt == nil {
			now := time.Now().UTC()
			recs[i].ApprovedAt = &now
		}
		if err := s.writeLocked(recs); err != nil {
			return nil, err
		}
		rec := recs[i]
		return &rec, nil
	}
	return nil, ErrNotFound
}

// PendingOlderThan returns pending records submitted more than age ago.
// Used by the reminder job to build the moderation digest.
func (s *Store) PendingOlderThan(age time.Duration) []models.Recommendation {
	cutoff := time.Now().Add(-age)
	var stale []models.Recommendation
	for _, rec := range s.All() {
		if rec.Status == models.StatusPending && rec.Timestamp.Before(cutoff) {
			stale = append(stale, rec)
		}
	}
	return stale
}

// CountByStatus returns record counts keyed by moderation status.
func (s *Store) CountByStatus() map[string]int {
	counts := map[string]int{
		models.StatusPending:  0,
		models.StatusApproved: 0,
		models.StatusRejected: 0,
	}
	for _, rec := range s.All() {
		counts[rec.Status]++
	}
	return counts
}

// readLocked deserialises the backing file. Callers must hold s.mu.
func (s *Store) readLocked() []models.Recommendation {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to read recommendation store, treating as empty", "path", s.path, "error", err)
		}
		return []models.Recommendation{}
	}

	var recs []models.Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		slog.Error("failed to parse recommendation store, treating as empty", "path", s.path, "error", err)
		return []models.Recommendation{}
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	return recs
}

// writeLocked serialises the full collection via temp file + rename.
// Callers must hold s.mu.
func (s *Store) writeLocked(recs []models.Recommendation) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".recommendations-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write recommendations: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
