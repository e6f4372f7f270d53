package jobs

import (
	"context"
	"log"
	"time"

	"portfolio/internal/email"
	"portfolio/internal/store"
)

// PendingReminder periodically emails the site owner a digest of
// recommendations that have been waiting for moderation, with one-click
// action links. A lost notification email would otherwise leave a record
// pending forever.
type PendingReminder struct {
	store    *store.Store
	notifier *email.Notifier
	interval time.Duration
	maxAge   time.Duration
}

// NewPendingReminder creates a new reminder job.
func NewPendingReminder(st *store.Store, notifier *email.Notifier, interval, maxAge time.Duration) *PendingReminder {
	return &PendingReminder{
		store:    st,
		notifier: notifier,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Start begins the background reminder loop.
func (p *PendingReminder) Start(ctx context.Context) {
	log.Printf("Pending reminder started (interval: %v, maxAge: %v)", p.interval, p.maxAge)

	// Run immediately on start
	p.remind()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Pending reminder stopped")
			return
		case <-ticker.C:
			p.remind()
		}
	}
}

// remind sends the digest for stale pending recommendations, if any.
func (p *PendingReminder) remind() {
	stale := p.store.PendingOlderThan(p.maxAge)
	if len(stale) == 0 {
		return
	}

	log.Printf("Pending reminder: %d recommendation(s) awaiting moderation", len(stale))
	p.notifier.NotifyPendingDigest(stale)
}
