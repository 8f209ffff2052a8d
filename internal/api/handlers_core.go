package api

import (
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// SetLanguage pins the response language for subsequent requests.
func (h *Handler) SetLanguage(c *fiber.Ctx) error {
	var input struct {
		Language string `json:"language" form:"language"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	language := h.i18n.NormalizeLanguage(input.Language)
	h.setLanguageCookie(c, language)
	return c.JSON(fiber.Map{"language": language})
}
