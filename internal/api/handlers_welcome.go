package api

import (
	"github.com/gofiber/fiber/v2"
)

// WelcomeStatus reports whether the first-launch welcome screen should
// still be shown. The flag is instance wide, not per user.
func (h *Handler) WelcomeStatus(c *fiber.Ctx) error {
	h.ensureDependencies()

	settings, err := h.repositories.Settings.Load()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	userCount, err := h.repositories.Users.CountUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(fiber.Map{
		"show_welcome": settings.ShowWelcome,
		"needs_setup":  userCount == 0,
	})
}

func (h *Handler) DismissWelcome(c *fiber.Ctx) error {
	h.ensureDependencies()

	if err := h.repositories.Settings.SetShowWelcome(false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(fiber.Map{"ok": true})
}
