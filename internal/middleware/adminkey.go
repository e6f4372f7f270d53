package middleware

import (
	"crypto/subtle"
	"html"

	"github.com/gofiber/fiber/v3"

	"portfolio/internal/config"
)

// AdminKey gates admin surfaces on the shared moderation key carried as a
// ?key= query parameter. This is a capability token, not an auth system:
// anyone holding a moderation link can act on it.
type AdminKey struct {
	cfg *config.Config
}

// NewAdminKey creates a new admin key middleware instance.
func NewAdminKey(cfg *config.Config) *AdminKey {
	return &AdminKey{cfg: cfg}
}

// RequireKey rejects requests with a wrong or missing key with a 401 JSON
// response. Used on the admin API surfaces.
func (m *AdminKey) RequireKey(c fiber.Ctx) error {
	if !m.matches(c.Query("key")) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "unauthorized",
		})
	}
	return c.Next()
}

// RequireKeyPage rejects requests with a wrong or missing key with a 401
// HTML page. Used on the one-click moderation links, which an admin opens
// in a browser.
func (m *AdminKey) RequireKeyPage(c fiber.Ctx) error {
	if !m.matches(c.Query("key")) {
		page := `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Unauthorized</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 60px;">
<h1>401 &mdash; Unauthorized</h1>
<p>` + html.EscapeString("The moderation key is missing or invalid.") + `</p>
</body>
</html>`
		return c.Status(fiber.StatusUnauthorized).Type("html").SendString(page)
	}
	return c.Next()
}

// matches compares a supplied key against the configured secret in constant
// time.
func (m *AdminKey) matches(key string) bool {
	if key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.AdminKey)) == 1
}
