package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string
	PublicDir  string // static site root
	ViewsDir   string // server-rendered templates

	// Storage
	DataFile string // JSON file holding the recommendation collection

	// Admin
	// AdminKey is a capability token carried as a ?key= query parameter.
	// The default is deliberately weak and must be overridden outside dev.
	AdminKey string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int
	RedisURL     string // optional shared limiter storage

	// Email (notification relay)
	EmailMode      string // "smtp" (custom domain mailbox) or "forward_only"
	SMTPHost       string
	SMTPPort       int
	SMTPUsername   string
	SMTPPassword   string
	SMTPTLS        string // "none", "starttls", or "tls"
	SMTPFrom       string
	SMTPFromName   string
	EmailTo        string // site owner's inbox
	EmailAutoReply bool   // send a thank-you reply to contact form submitters

	// Chatbot
	ChatAIURL   string // OpenAI-style chat completions endpoint; empty disables the AI fallback
	ChatAIKey   string
	ChatAIModel string

	// Background jobs
	PendingReminderInterval time.Duration // 0 disables the reminder job
	PendingReminderMaxAge   time.Duration

	// Site branding
	SiteTitle string // env: SITE_TITLE
	SiteOwner string // env: SITE_OWNER, used in email signatures and chat replies
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:        getEnv("ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":3000"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:3000"),
		PublicDir:  getEnv("PUBLIC_DIR", "./public"),
		ViewsDir:   getEnv("VIEWS_DIR", "./views"),

		DataFile: getEnv("DATA_FILE", "./data/recommendations.json"),

		AdminKey: getEnv("ADMIN_KEY", "changeme2026"),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),

		EmailMode:      getEnv("EMAIL_MODE", "smtp"),
		SMTPHost:       getEnv("EMAIL_HOST", ""),
		SMTPPort:       getEnvInt("EMAIL_PORT", 587),
		SMTPUsername:   getEnv("EMAIL_USER", ""),
		SMTPPassword:   getEnv("EMAIL_PASS", ""),
		SMTPTLS:        getEnv("EMAIL_TLS", "starttls"),
		SMTPFrom:       getEnv("EMAIL_FROM", ""),
		SMTPFromName:   getEnv("EMAIL_FROM_NAME", "Portfolio"),
		EmailTo:        getEnv("EMAIL_TO", ""),
		EmailAutoReply: getEnv("EMAIL_AUTO_REPLY", "true") == "true",

		ChatAIURL:   getEnv("CHAT_AI_URL", ""),
		ChatAIKey:   getEnv("CHAT_AI_KEY", ""),
		ChatAIModel: getEnv("CHAT_AI_MODEL", "gpt-4o-mini"),

		PendingReminderInterval: getEnvDuration("PENDING_REMINDER_INTERVAL", 24*time.Hour),
		PendingReminderMaxAge:   getEnvDuration("PENDING_REMINDER_MAX_AGE", 48*time.Hour),

		SiteTitle: getEnv("SITE_TITLE", "Portfolio"),
		SiteOwner: getEnv("SITE_OWNER", "the site owner"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsEmailEnabled returns true if the SMTP relay is fully configured.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && c.EmailTo != ""
}

// IsChatAIEnabled returns true if the external AI fallback is configured.
func (c *Config) IsChatAIEnabled() bool {
	return c.ChatAIURL != "" && c.ChatAIKey != ""
}
