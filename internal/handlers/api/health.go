package api

import (
	"github.com/gofiber/fiber/v3"
)

// Health is a liveness probe. The responder has no dependencies to check.
func Health(c fiber.Ctx) error {
	return jsonSuccess(c, fiber.Map{"alive": true})
}
