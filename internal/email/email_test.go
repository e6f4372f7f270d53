package email

import (
	"strings"
	"testing"

	"portfolio/internal/testutil"
)

func enabledConfig(t *testing.T) *Service {
	t.Helper()

	cfg := testutil.TestConfig(t)
	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPFrom = "noreply@example.com"
	cfg.SMTPFromName = "Test Portfolio"
	cfg.EmailTo = "owner@example.com"
	return NewService(cfg)
}

func TestNewService_Disabled(t *testing.T) {
	s := NewService(testutil.TestConfig(t))
	if s.IsEnabled() {
		t.Error("service enabled without SMTP configuration")
	}
}

func TestNewService_Enabled(t *testing.T) {
	s := enabledConfig(t)
	if !s.IsEnabled() {
		t.Error("service disabled despite full SMTP configuration")
	}
}

func TestSend_DisabledIsNoop(t *testing.T) {
	s := NewService(testutil.TestConfig(t))

	if err := s.Send([]string{"a@example.com"}, "", "subject", "<p>hi</p>", "hi"); err != nil {
		t.Errorf("Send() on disabled service returned %v, want nil", err)
	}
}

func TestSend_NoRecipientsIsNoop(t *testing.T) {
	s := enabledConfig(t)

	if err := s.Send(nil, "", "subject", "<p>hi</p>", "hi"); err != nil {
		t.Errorf("Send() without recipients returned %v, want nil", err)
	}
}

func TestBuildMessage(t *testing.T) {
	s := enabledConfig(t)

	msg := s.buildMessage([]string{"owner@example.com"}, "visitor@example.com", "Hello", "<p>html part</p>", "text part")

	for _, want := range []string{
		"From: Test Portfolio <noreply@example.com>\r\n",
		"To: owner@example.com\r\n",
		"Reply-To: visitor@example.com\r\n",
		"Subject: Hello\r\n",
		"MIME-Version: 1.0\r\n",
		`multipart/alternative; boundary="PortfolioBoundary123456789"`,
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"text part",
		"<p>html part</p>",
		"--PortfolioBoundary123456789--\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}

	// The text part must come before the HTML part.
	if strings.Index(msg, "text part") > strings.Index(msg, "<p>html part</p>") {
		t.Error("text part appears after HTML part")
	}
}

func TestBuildMessage_NoReplyTo(t *testing.T) {
	s := enabledConfig(t)

	msg := s.buildMessage([]string{"owner@example.com"}, "", "Hello", "<p>hi</p>", "hi")
	if strings.Contains(msg, "Reply-To:") {
		t.Error("Reply-To header present for empty replyTo")
	}
}

func TestMaskAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane.doe@example.com", "ja***@example.com"},
		{"ab@example.com", "ab***@example.com"},
		{"a@example.com", "a***@example.com"},
		{"no-at-sign", "***"},
		{"", "***"},
	}

	for _, tt := range tests {
		if got := MaskAddress(tt.in); got != tt.want {
			t.Errorf("MaskAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
