package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/febra/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	update := services.ProfileSettingsUpdate{
		Name:    input.Name,
		Celsius: input.Celsius,
	}
	if err := h.settingsService.SaveProfile(user.ID, update); err != nil {
		if errors.Is(err, services.ErrSettingsNameMissing) {
			return apiError(c, fiber.StatusBadRequest, "name is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return c.JSON(fiber.Map{
		"ok":      true,
		"name":    strings.TrimSpace(input.Name),
		"celsius": input.Celsius,
	})
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var input changePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	current := strings.TrimSpace(input.CurrentPassword)
	next := strings.TrimSpace(input.NewPassword)
	if current == "" || next == "" {
		return apiError(c, fiber.StatusBadRequest, "current and new password are required")
	}
	if input.ConfirmPassword != "" && input.ConfirmPassword != next {
		return apiError(c, fiber.StatusBadRequest, "password confirmation does not match")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return localizedError(c, fiber.StatusForbidden, "auth.invalid_credentials")
	}
	if err := services.ValidatePasswordStrength(next); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	if err := h.settingsService.UpdatePassword(user.ID, string(hash), false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *Handler) DeleteAccount(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	var input deleteAccountInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.settingsService.ValidateDeleteAccountPassword(user.PasswordHash, input.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrSettingsPasswordMissing):
			return apiError(c, fiber.StatusBadRequest, "password is required")
		case errors.Is(err, services.ErrSettingsPasswordInvalid):
			return localizedError(c, fiber.StatusForbidden, "auth.invalid_credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	if err := h.settingsService.DeleteAccount(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}

	h.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
