package email

import (
	"fmt"
	"html"
	"strings"

	"portfolio/internal/config"
	"portfolio/internal/models"
	"portfolio/internal/validation"
)

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0d6efd; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { background: #f8f9fa; padding: 20px; border: 1px solid #dee2e6; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6c757d; border-radius: 0 0 8px 8px; border: 1px solid #dee2e6; border-top: none; }
        .field { margin-bottom: 12px; }
        .label { font-weight: 600; color: #495057; }
        .value { margin-top: 4px; padding: 10px; background: white; border-radius: 4px; border-left: 3px solid #0d6efd; white-space: pre-wrap; word-wrap: break-word; }
        .btn { display: inline-block; padding: 10px 20px; margin: 5px; border-radius: 4px; text-decoration: none; font-weight: bold; }
        .btn-approve { background: #28a745; color: white; }
        .btn-reject { background: #dc3545; color: white; }
        .quote { border-left: 3px solid #ffc107; padding: 15px; margin: 15px 0; background: white; border-radius: 0 4px 4px 0; font-style: italic; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(title), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// actionURL builds a one-click moderation link embedding the record id and
// the admin key. The key travels in cleartext: whoever holds this email can
// moderate the record.
func (t *Templates) actionURL(action, id string) string {
	return fmt.Sprintf("%s/api/recommendations/%s?id=%s&key=%s", t.cfg.BaseURL, action, id, t.cfg.AdminKey)
}

// RecommendationSubmitted generates the owner notification for a new
// recommendation, with one-click approve/reject links.
func (t *Templates) RecommendationSubmitted(rec *models.Recommendation) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] New recommendation from %s", t.cfg.SiteTitle, validation.SanitizeHeader(rec.Name))

	linkedin := "Not provided"
	if rec.LinkedIn != "" {
		linkedin = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(rec.LinkedIn), html.EscapeString(rec.LinkedIn))
	}

	content := fmt.Sprintf(`
        <div class="field"><span class="label">From:</span> %s</div>
        <div class="field"><span class="label">Title:</span> %s</div>
        <div class="field"><span class="label">Email:</span> %s</div>
        <div class="field"><span class="label">LinkedIn:</span> %s</div>
        <div class="field"><span class="label">Relationship:</span> %s</div>
        <div class="field"><span class="label">Rating:</span> %s</div>
        <div class="quote">%s</div>
        <p><small>Received: %s</small></p>
        <p style="text-align: center;">
            <a href="%s" class="btn btn-approve">Approve</a>
            <a href="%s" class="btn btn-reject">Reject</a>
        </p>
    `,
		html.EscapeString(rec.Name),
		html.EscapeString(rec.Title),
		html.EscapeString(rec.Email),
		linkedin,
		html.EscapeString(rec.Relationship),
		strings.Repeat("★", rec.Rating),
		html.EscapeString(rec.Message),
		rec.Timestamp.Format("2006-01-02 15:04 MST"),
		t.actionURL("approve", rec.ID),
		t.actionURL("reject", rec.ID),
	)

	htmlBody = t.baseHTML("New Recommendation Submitted", content)

	textBody = fmt.Sprintf(`New recommendation submitted

From: %s
Title: %s
Email: %s
LinkedIn: %s
Relationship: %s
Rating: %d/5

%s

Received: %s

Approve: %s
Reject:  %s

--
%s
%s`,
		rec.Name,
		rec.Title,
		rec.Email,
		rec.LinkedIn,
		rec.Relationship,
		rec.Rating,
		rec.Message,
		rec.Timestamp.Format("2006-01-02 15:04 MST"),
		t.actionURL("approve", rec.ID),
		t.actionURL("reject", rec.ID),
		t.cfg.SiteTitle,
		t.cfg.BaseURL,
	)

	return subject, htmlBody, textBody
}

// ContactMessage generates the owner notification for a contact form
// submission.
func (t *Templates) ContactMessage(msg *models.ContactMessage) (subject, htmlBody, textBody string) {
	subjectLine := validation.SanitizeHeader(msg.Subject)
	if subjectLine == "" {
		subjectLine = "Contact Form Submission"
	}
	subject = fmt.Sprintf("[%s Contact] %s - from %s", t.cfg.SiteTitle, subjectLine, validation.SanitizeHeader(msg.Name))

	meta := fmt.Sprintf("Received: %s", msg.Timestamp.Format("2006-01-02 15:04 MST"))
	if msg.IP != "" {
		meta += fmt.Sprintf("<br>IP: %s", html.EscapeString(msg.IP))
	}
	if msg.UserAgent != "" {
		ua := msg.UserAgent
		if len(ua) > 150 {
			ua = ua[:150]
		}
		meta += fmt.Sprintf("<br>User Agent: %s", html.EscapeString(ua))
	}

	content := fmt.Sprintf(`
        <div class="field"><span class="label">Name</span><div class="value">%s</div></div>
        <div class="field"><span class="label">Email</span><div class="value"><a href="mailto:%s">%s</a></div></div>
        <div class="field"><span class="label">Subject</span><div class="value">%s</div></div>
        <div class="field"><span class="label">Message</span><div class="value">%s</div></div>
        <p><small>%s</small></p>
        <p>Reply directly to this email to respond to %s.</p>
    `,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Email),
		html.EscapeString(subjectLine),
		html.EscapeString(msg.Message),
		meta,
		html.EscapeString(msg.Name),
	)

	htmlBody = t.baseHTML("New Contact Form Submission", content)

	textBody = fmt.Sprintf(`NEW CONTACT FORM SUBMISSION

From: %s
Email: %s
Subject: %s

Message:
%s

Received: %s

Reply to this email to respond to %s.
`,
		msg.Name,
		msg.Email,
		subjectLine,
		msg.Message,
		msg.Timestamp.Format("2006-01-02 15:04 MST"),
		msg.Name,
	)

	return subject, htmlBody, textBody
}

// ContactAutoReply generates the thank-you reply sent back to the submitter.
func (t *Templates) ContactAutoReply(msg *models.ContactMessage) (subject, htmlBody, textBody string) {
	subjectLine := validation.SanitizeHeader(msg.Subject)
	if subjectLine == "" {
		subjectLine = "your message"
	}
	subject = fmt.Sprintf("Re: %s - Thank you for reaching out!", subjectLine)

	quoted := msg.Message
	if len(quoted) > 5000 {
		quoted = quoted[:5000]
	}

	content := fmt.Sprintf(`
        <p>Hi %s,</p>
        <p>Thank you for reaching out! I have received your message and will get back to you within <strong>24-48 hours</strong>.</p>
        <p><strong>Your message:</strong></p>
        <div class="quote">%s</div>
        <p>In the meantime, feel free to browse the portfolio and projects.</p>
        <p>Best regards,<br><strong>%s</strong></p>
    `,
		html.EscapeString(msg.Name),
		strings.ReplaceAll(html.EscapeString(quoted), "\n", "<br>"),
		html.EscapeString(t.cfg.SiteOwner),
	)

	htmlBody = t.baseHTML("Thank you for contacting me!", content)

	textBody = fmt.Sprintf(`Hi %s,

Thank you for reaching out! I have received your message and will get back to you within 24-48 hours.

Your message:
%s

Best regards,
%s
%s
`,
		msg.Name,
		quoted,
		t.cfg.SiteOwner,
		t.cfg.BaseURL,
	)

	return subject, htmlBody, textBody
}

// PendingDigest generates the reminder email listing recommendations that
// have been waiting for moderation.
func (t *Templates) PendingDigest(recs []models.Recommendation) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] %d recommendation(s) awaiting moderation", t.cfg.SiteTitle, len(recs))

	var htmlItems, textItems strings.Builder
	for _, rec := range recs {
		htmlItems.WriteString(fmt.Sprintf(`
        <div class="field">
            <span class="label">%s</span> (%s, %s) — submitted %s
            <div class="quote">%s</div>
            <a href="%s" class="btn btn-approve">Approve</a>
            <a href="%s" class="btn btn-reject">Reject</a>
        </div>`,
			html.EscapeString(rec.Name),
			html.EscapeString(rec.Title),
			html.EscapeString(rec.Relationship),
			rec.Timestamp.Format("2006-01-02"),
			html.EscapeString(rec.Message),
			t.actionURL("approve", rec.ID),
			t.actionURL("reject", rec.ID),
		))

		textItems.WriteString(fmt.Sprintf(`
%s (%s, %s) — submitted %s
%s
Approve: %s
Reject:  %s
`,
			rec.Name,
			rec.Title,
			rec.Relationship,
			rec.Timestamp.Format("2006-01-02"),
			rec.Message,
			t.actionURL("approve", rec.ID),
			t.actionURL("reject", rec.ID),
		))
	}

	content := fmt.Sprintf(`
        <p>The following recommendations are still waiting for a decision:</p>
        %s
    `, htmlItems.String())

	htmlBody = t.baseHTML("Recommendations Awaiting Moderation", content)

	textBody = fmt.Sprintf(`The following recommendations are still waiting for a decision:
%s
--
%s
%s`, textItems.String(), t.cfg.SiteTitle, t.cfg.BaseURL)

	return subject, htmlBody, textBody
}
