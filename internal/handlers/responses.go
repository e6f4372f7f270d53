package handlers

import (
	"fmt"
	"html"

	"github.com/gofiber/fiber/v3"
)

// jsonOK returns a 200 response in the API's standard envelope.
func jsonOK(c fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// jsonFail returns an error response with the given HTTP status code.
func jsonFail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// htmlPage renders a minimal standalone page for the one-click moderation
// links, which an admin opens straight from an email. heading and detail
// are escaped; they frequently contain visitor-supplied names.
func htmlPage(c fiber.Ctx, status int, heading, detail string) error {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 60px;">
<h1>%s</h1>
<p>%s</p>
</body>
</html>`, html.EscapeString(heading), html.EscapeString(heading), html.EscapeString(detail))
	return c.Status(status).Type("html").SendString(page)
}
