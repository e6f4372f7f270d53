package email

import (
	"portfolio/internal/config"
	"portfolio/internal/models"
	"portfolio/internal/validation"
)

// Notifier sends email notifications for portfolio events. Delivery is
// best-effort: failures are logged inside the service and never surface to
// the caller.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
	}
}

// IsEnabled reports whether the underlying relay is configured.
func (n *Notifier) IsEnabled() bool {
	return n.service.IsEnabled()
}

// NotifyRecommendationSubmitted informs the site owner about a new
// recommendation, with one-click moderation links.
func (n *Notifier) NotifyRecommendationSubmitted(rec *models.Recommendation) {
	if !n.service.IsEnabled() {
		return
	}

	subject, htmlBody, textBody := n.templates.RecommendationSubmitted(rec)
	n.service.SendAsync([]string{n.cfg.EmailTo}, "", subject, htmlBody, textBody)
}

// NotifyContactMessage relays a contact form submission to the site owner.
// Reply-To is set to the visitor so the owner can answer directly; in
// forward_only mode the relay mailbox cannot impersonate the custom domain,
// so the visitor address is the only usable backchannel either way.
func (n *Notifier) NotifyContactMessage(msg *models.ContactMessage) {
	if !n.service.IsEnabled() {
		return
	}

	replyTo := validation.NormalizeEmail(msg.Email)
	subject, htmlBody, textBody := n.templates.ContactMessage(msg)
	n.service.SendAsync([]string{n.cfg.EmailTo}, replyTo, subject, htmlBody, textBody)
}

// SendContactAutoReply sends the thank-you reply to the submitter, when
// enabled and the address looks deliverable.
func (n *Notifier) SendContactAutoReply(msg *models.ContactMessage) {
	if !n.service.IsEnabled() || !n.cfg.EmailAutoReply {
		return
	}

	to := validation.NormalizeEmail(msg.Email)
	if to == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.ContactAutoReply(msg)
	n.service.SendAsync([]string{to}, n.cfg.EmailTo, subject, htmlBody, textBody)
}

// NotifyPendingDigest reminds the owner about recommendations that have been
// waiting for moderation.
func (n *Notifier) NotifyPendingDigest(recs []models.Recommendation) {
	if !n.service.IsEnabled() || len(recs) == 0 {
		return
	}

	subject, htmlBody, textBody := n.templates.PendingDigest(recs)
	n.service.SendAsync([]string{n.cfg.EmailTo}, "", subject, htmlBody, textBody)
}
