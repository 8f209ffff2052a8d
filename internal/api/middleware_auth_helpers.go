package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/febra/internal/models"
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

var errInvalidAuthToken = errors.New("invalid auth token")

func (h *Handler) parseAuthToken(token string) (*authClaims, error) {
	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidAuthToken
		}
		return h.secretKey, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == 0 {
		return nil, errInvalidAuthToken
	}
	return claims, nil
}

// authenticateRequest resolves the session cookie into a user record,
// returning nil when the cookie is absent, invalid or stale.
func (h *Handler) authenticateRequest(c *fiber.Ctx) *models.User {
	token := c.Cookies(authCookieName)
	if token == "" {
		return nil
	}

	claims, err := h.parseAuthToken(token)
	if err != nil {
		return nil
	}

	user, err := h.repositories.Users.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return &user
}
