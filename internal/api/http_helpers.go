package api

import (
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func localizedError(c *fiber.Ctx, status int, key string) error {
	messages := requestMessages(c)
	message, ok := messages[key]
	if !ok {
		message = key
	}
	return c.Status(status).JSON(fiber.Map{"error": message, "code": key})
}
