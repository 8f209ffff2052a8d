package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/febra/internal/models"
)

const (
	authCookieName     = "febra_auth"
	languageCookieName = "febra_lang"

	contextUserKey     = "user"
	contextLanguageKey = "lang"
	contextMessagesKey = "messages"
)

func currentUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(contextUserKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
