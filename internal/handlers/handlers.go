package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"

	"wellness/internal/handlers/api"
)

const rateLimitMessage = "Rate limit exceeded. Please try again later."

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="message error"><div class="message-bubble">` + html.EscapeString(message) + `</div></div>`,
	)
}

// isHTMX reports whether the request was issued by HTMX.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// LimitReached answers rate-limited requests. HTMX requests get an inline
// error bubble; everything else gets the JSON 429 envelope.
func LimitReached(c fiber.Ctx) error {
	if isHTMX(c) {
		return htmxError(c, rateLimitMessage)
	}
	return api.LimitReached(c)
}
