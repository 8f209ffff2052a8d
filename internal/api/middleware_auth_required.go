package api

import (
	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates a route behind a valid session cookie.
func (h *Handler) AuthRequired(c *fiber.Ctx) error {
	h.ensureDependencies()

	user := h.authenticateRequest(c)
	if user == nil {
		h.clearAuthCookie(c)
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
