package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinMessageLength is the minimum length of a recommendation message,
// counted in characters rather than bytes.
const MinMessageLength = 50

// emailPattern is a deliberately loose shape check: something@something.tld.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// headerUnsafe matches CR/LF and other control characters that could be used
// to inject additional headers into an outbound email.
var headerUnsafe = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")

// ValidateEmail checks if an address has a plausible email shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateRecommendation checks a recommendation submission. All fields
// except linkedin are required; the message must carry some substance.
// Returns (false, user-facing message) on the first failed rule.
func ValidateRecommendation(name, title, email, relationship, message string, rating int) (bool, string) {
	if name == "" || title == "" || email == "" || relationship == "" || message == "" || rating == 0 {
		return false, "All fields except LinkedIn are required"
	}
	if utf8.RuneCountInString(message) < MinMessageLength {
		return false, "Recommendation message must be at least 50 characters"
	}
	if rating < 1 || rating > 5 {
		return false, "Rating must be between 1 and 5"
	}
	if !ValidateEmail(email) {
		return false, "A valid email address is required"
	}
	return true, ""
}

// ValidateContact checks a contact form submission.
func ValidateContact(name, email, message string) (bool, string) {
	if name == "" || email == "" || message == "" {
		return false, "Name, email and message are required"
	}
	if !ValidateEmail(email) {
		return false, "A valid email address is required"
	}
	return true, ""
}

// SanitizeHeader strips CR/LF and control characters from a value destined
// for an email header, and caps its length.
func SanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = headerUnsafe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	if len(s) > 500 {
		s = s[:500]
	}
	return s
}

// NormalizeEmail sanitises and lowercases an address, returning "" when the
// result is not a plausible email.
func NormalizeEmail(email string) string {
	normalized := strings.ToLower(SanitizeHeader(email))
	if !ValidateEmail(normalized) {
		return ""
	}
	return normalized
}
