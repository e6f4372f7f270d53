package models

import "time"

// ContactMessage is a contact form submission relayed to the site owner.
// It is never persisted; the email relay is the only sink.
type ContactMessage struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	UserAgent string    `json:"-"`
	IP        string    `json:"-"`
	Timestamp time.Time `json:"-"`
}
