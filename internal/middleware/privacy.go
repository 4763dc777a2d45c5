package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// NoStore keeps chat messages and replies out of browser and proxy caches.
func NoStore(c fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set("Referrer-Policy", "no-referrer")
	return c.Next()
}
