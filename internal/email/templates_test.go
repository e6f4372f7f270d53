package email

import (
	"strings"
	"testing"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/testutil"
)

func testRecommendation() *models.Recommendation {
	return &models.Recommendation{
		ID:           "rec-123",
		Name:         "Jane Doe",
		Title:        "Engineering Manager",
		Email:        "jane@example.com",
		LinkedIn:     "https://linkedin.com/in/janedoe",
		Relationship: "Manager",
		Message:      "A thoroughly dependable colleague who delivers quality work on every project we shipped together.",
		Rating:       4,
		Status:       models.StatusPending,
		Timestamp:    time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestRecommendationSubmitted(t *testing.T) {
	cfg := testutil.TestConfig(t)
	tmpl := NewTemplates(cfg)

	subject, htmlBody, textBody := tmpl.RecommendationSubmitted(testRecommendation())

	if !strings.Contains(subject, "Jane Doe") {
		t.Errorf("subject %q missing submitter name", subject)
	}

	approveURL := cfg.BaseURL + "/api/recommendations/approve?id=rec-123&key=test-admin-key"
	rejectURL := cfg.BaseURL + "/api/recommendations/reject?id=rec-123&key=test-admin-key"
	for _, body := range []string{htmlBody, textBody} {
		if !strings.Contains(body, approveURL) {
			t.Error("body missing approve link with id and key")
		}
		if !strings.Contains(body, rejectURL) {
			t.Error("body missing reject link with id and key")
		}
	}

	if !strings.Contains(htmlBody, strings.Repeat("★", 4)) {
		t.Error("HTML body missing star rating")
	}
	if !strings.Contains(textBody, "4/5") {
		t.Error("text body missing numeric rating")
	}
}

func TestRecommendationSubmitted_EscapesHTML(t *testing.T) {
	tmpl := NewTemplates(testutil.TestConfig(t))

	rec := testRecommendation()
	rec.Name = `<script>alert("x")</script>`
	rec.Message = `Message with <b>markup</b> that should be escaped in the rendered notification email body.`

	_, htmlBody, _ := tmpl.RecommendationSubmitted(rec)

	if strings.Contains(htmlBody, "<script>") {
		t.Error("HTML body contains unescaped script tag")
	}
	if strings.Contains(htmlBody, "<b>markup</b>") {
		t.Error("HTML body contains unescaped markup")
	}
	if !strings.Contains(htmlBody, "&lt;script&gt;") {
		t.Error("HTML body missing escaped name")
	}
}

func TestRecommendationSubmitted_SanitizesSubject(t *testing.T) {
	tmpl := NewTemplates(testutil.TestConfig(t))

	rec := testRecommendation()
	rec.Name = "Jane\r\nBcc: evil@example.com"

	subject, _, _ := tmpl.RecommendationSubmitted(rec)
	if strings.ContainsAny(subject, "\r\n") {
		t.Errorf("subject contains CR/LF: %q", subject)
	}
}

func TestContactMessage(t *testing.T) {
	tmpl := NewTemplates(testutil.TestConfig(t))

	msg := &models.ContactMessage{
		Name:      "John Visitor",
		Email:     "john@example.com",
		Subject:   "Job opportunity",
		Message:   "I would like to discuss a role.",
		IP:        "203.0.113.9",
		UserAgent: "Mozilla/5.0",
		Timestamp: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	subject, htmlBody, textBody := tmpl.ContactMessage(msg)

	if !strings.Contains(subject, "Job opportunity") || !strings.Contains(subject, "John Visitor") {
		t.Errorf("subject %q missing subject line or name", subject)
	}
	if !strings.Contains(htmlBody, "203.0.113.9") {
		t.Error("HTML body missing request IP")
	}
	if !strings.Contains(textBody, "I would like to discuss a role.") {
		t.Error("text body missing message")
	}
}

func TestContactMessage_EmptySubjectFallback(t *testing.T) {
	tmpl := NewTemplates(testutil.TestConfig(t))

	msg := &models.ContactMessage{
		Name:      "John",
		Email:     "john@example.com",
		Message:   "Hello",
		Timestamp: time.Now(),
	}

	subject, _, _ := tmpl.ContactMessage(msg)
	if !strings.Contains(subject, "Contact Form Submission") {
		t.Errorf("subject %q missing fallback subject", subject)
	}
}

func TestContactAutoReply(t *testing.T) {
	cfg := testutil.TestConfig(t)
	tmpl := NewTemplates(cfg)

	msg := &models.ContactMessage{
		Name:      "John",
		Email:     "john@example.com",
		Subject:   "Hello",
		Message:   "Line one\nLine two",
		Timestamp: time.Now(),
	}

	subject, htmlBody, textBody := tmpl.ContactAutoReply(msg)

	if !strings.Contains(subject, "Thank you") {
		t.Errorf("subject %q missing thank-you", subject)
	}
	if !strings.Contains(htmlBody, "Line one<br>Line two") {
		t.Error("HTML body missing quoted message with line breaks")
	}
	if !strings.Contains(htmlBody, cfg.SiteOwner) {
		t.Error("HTML body missing owner signature")
	}
	if !strings.Contains(textBody, "24-48 hours") {
		t.Error("text body missing response window")
	}
}

func TestPendingDigest(t *testing.T) {
	cfg := testutil.TestConfig(t)
	tmpl := NewTemplates(cfg)

	recs := []models.Recommendation{*testRecommendation()}
	recs[0].ID = "digest-1"

	subject, htmlBody, textBody := tmpl.PendingDigest(recs)

	if !strings.Contains(subject, "1 recommendation(s)") {
		t.Errorf("subject %q missing count", subject)
	}
	link := cfg.BaseURL + "/api/recommendations/approve?id=digest-1&key=test-admin-key"
	if !strings.Contains(htmlBody, link) || !strings.Contains(textBody, link) {
		t.Error("digest missing per-record approve link")
	}
}
