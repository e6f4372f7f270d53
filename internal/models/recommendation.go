package models

import "time"

// Recommendation moderation states. A record starts pending and is moved to
// approved or rejected by an admin following a signed link. Re-moderating an
// already-processed record is allowed as an explicit admin correction.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Recommendation is a visitor-submitted testimonial with a moderation status.
// JSON tags match the persisted file layout and the public API.
type Recommendation struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	Email        string     `json:"email"`
	LinkedIn     string     `json:"linkedin,omitempty"`
	Relationship string     `json:"relationship"`
	Message      string     `json:"message"`
	Rating       int        `json:"rating"`
	Status       string     `json:"status"`
	Timestamp    time.Time  `json:"timestamp"`
	ApprovedAt   *time.Time `json:"approvedAt"`
}

// IsApproved reports whether the record is publicly visible.
func (r *Recommendation) IsApproved() bool {
	return r.Status == StatusApproved
}
