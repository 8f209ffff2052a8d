package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/febra/internal/db"
	"github.com/terraincognita07/febra/internal/i18n"
	"github.com/terraincognita07/febra/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
	i18n            *i18n.Manager
	repositories    *db.Repositories
	authService     *services.AuthService
	diaryService    *services.DiaryService
	exportService   *services.ExportService
	settingsService *services.SettingsService
	loginThrottle   *loginThrottle
}

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	Name       string `json:"name" form:"name"`
	Celsius    *bool  `json:"celsius" form:"celsius"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type dayPayload struct {
	// Symptoms maps symptom type to raw value: ordinal severity for
	// regular types, tenths of a degree for temperature types (in the
	// unit given by the celsius flag, defaulting to the profile unit).
	Symptoms map[string]int `json:"symptoms"`
	Celsius  *bool          `json:"celsius"`
}

type profileInput struct {
	Name    string `json:"name" form:"name"`
	Celsius bool   `json:"celsius" form:"celsius"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type deleteAccountInput struct {
	Password string `json:"password" form:"password"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if secretKey == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
	}
	return handler.withDependencies(database), nil
}
