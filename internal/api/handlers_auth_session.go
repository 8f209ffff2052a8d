package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/febra/internal/models"
	"github.com/terraincognita07/febra/internal/services"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Register(c *fiber.Ctx) error {
	h.ensureDependencies()

	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return localizedError(c, fiber.StatusBadRequest, "auth.invalid_credentials")
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
	}

	exists, err := h.authService.RegistrationEmailExists(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	if exists {
		return localizedError(c, fiber.StatusConflict, "auth.email_taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	celsius := true
	if input.Celsius != nil {
		celsius = *input.Celsius
	}
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(input.Name),
		Celsius:      celsius,
	}
	if err := h.authService.CreateUser(&user); err != nil {
		// A concurrent registration can still hit the unique email index.
		return localizedError(c, fiber.StatusConflict, "auth.email_taken")
	}

	if err := h.setAuthCookie(c, user.ID, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(h.profileResponse(&user))
}

func (h *Handler) Login(c *fiber.Ctx) error {
	h.ensureDependencies()

	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return localizedError(c, fiber.StatusUnauthorized, "auth.invalid_credentials")
	}

	key := throttleKey(c, email)
	now := time.Now()
	if h.loginThrottle.blocked(key, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many failed attempts, try again later")
	}

	user, err := h.authService.FindByNormalizedEmail(email)
	if err != nil {
		h.loginThrottle.recordFailure(key, now)
		return localizedError(c, fiber.StatusUnauthorized, "auth.invalid_credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		h.loginThrottle.recordFailure(key, now)
		return localizedError(c, fiber.StatusUnauthorized, "auth.invalid_credentials")
	}
	h.loginThrottle.clear(key)

	if err := h.setAuthCookie(c, user.ID, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	response := h.profileResponse(&user)
	if user.MustChangePassword {
		response["must_change_password"] = true
	}
	return c.JSON(response)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	h.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}
	return c.JSON(h.profileResponse(user))
}

func (h *Handler) profileResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":      user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"celsius": user.Celsius,
	}
}
