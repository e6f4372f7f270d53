// Package chat answers visitor questions about the portfolio. Queries are
// matched against a static topic table first; unmatched queries go to an
// external AI completion API when one is configured, and otherwise receive a
// generic fallback reply.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio/internal/config"
)

// Answer sources, reported back to the client and recorded in metrics.
const (
	SourceTopic    = "topic"
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// topic maps trigger keywords to a canned reply.
type topic struct {
	keywords []string
	reply    string
}

var topics = []topic{
	{
		keywords: []string{"hello", "hi ", "hey", "good morning", "good afternoon"},
		reply:    "Hello! Ask me anything about %s's background, skills, or projects.",
	},
	{
		keywords: []string{"who are you", "about", "yourself", "background", "bio"},
		reply:    "%s is a software developer. The About section has the full story; the short version is years of building and shipping web applications end to end.",
	},
	{
		keywords: []string{"skill", "technology", "technologies", "stack", "language"},
		reply:    "The Skills section lists the full toolbox. Highlights: backend services, API design, cloud platforms, and modern frontend work.",
	},
	{
		keywords: []string{"project", "portfolio", "built", "work sample", "github"},
		reply:    "Have a look at the Projects section — each card links to a live demo or repository with the source.",
	},
	{
		keywords: []string{"experience", "job", "career", "company", "worked"},
		reply:    "%s has professional experience across several roles and companies; the Experience section has the timeline with details.",
	},
	{
		keywords: []string{"education", "degree", "study", "university", "certif"},
		reply:    "Education and certifications are listed near the bottom of the page, including formal degrees and professional credentials.",
	},
	{
		keywords: []string{"recommendation", "testimonial", "review", "reference"},
		reply:    "The Recommendations section shows testimonials from colleagues. You can submit your own — it appears once approved.",
	},
	{
		keywords: []string{"contact", "email", "reach", "hire", "available"},
		reply:    "Use the contact form at the bottom of the page — messages go straight to %s's inbox, and you'll usually hear back within 24-48 hours.",
	},
}

const fallbackReply = "I'm not sure about that one. Try asking about skills, projects, experience, or use the contact form to get in touch directly."

// Responder selects chat replies.
type Responder struct {
	cfg    *config.Config
	client *http.Client
}

// NewResponder creates a responder. The HTTP client bounds how long an AI
// fallback call may hold up a chat request.
func NewResponder(cfg *config.Config) *Responder {
	return &Responder{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Respond returns a reply and its source for a visitor message. It never
// fails: an AI error degrades to the static fallback reply.
func (r *Responder) Respond(ctx context.Context, message string) (reply, source string) {
	normalized := strings.TrimSpace(strings.ToLower(message))

	for _, t := range topics {
		for _, kw := range t.keywords {
			if matchesKeyword(normalized, kw) {
				return r.personalize(t.reply), SourceTopic
			}
		}
	}

	if r.cfg.IsChatAIEnabled() {
		reply, err := r.complete(ctx, message)
		if err != nil {
			slog.Warn("chat AI fallback failed", "error", err)
		} else if reply != "" {
			return reply, SourceAI
		}
	}

	return fallbackReply, SourceFallback
}

// matchesKeyword reports whether a normalized message triggers a keyword.
// A keyword with a trailing space is a word-boundary guard ("hi " must not
// fire on "this"); it still matches when the bare word is the whole message
// or ends it.
func matchesKeyword(message, kw string) bool {
	if strings.Contains(message, kw) {
		return true
	}
	trimmed := strings.TrimSpace(kw)
	if trimmed == kw {
		return false
	}
	return message == trimmed || strings.HasSuffix(message, " "+trimmed)
}

// personalize substitutes the owner's name into replies that mention them.
func (r *Responder) personalize(reply string) string {
	if strings.Contains(reply, "%s") {
		return fmt.Sprintf(reply, r.cfg.SiteOwner)
	}
	return reply
}
