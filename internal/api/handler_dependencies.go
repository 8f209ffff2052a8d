package api

import (
	"time"

	"github.com/terraincognita07/febra/internal/db"
	"github.com/terraincognita07/febra/internal/services"
	"gorm.io/gorm"
)

func (h *Handler) withDependencies(database *gorm.DB) *Handler {
	h.repositories = db.NewRepositories(database)
	h.authService = services.NewAuthService(h.repositories.Users)
	h.diaryService = services.NewDiaryService(h.repositories.Events)
	h.exportService = services.NewExportService(h.repositories.Events)
	h.settingsService = services.NewSettingsService(h.repositories.Users)
	if h.loginThrottle == nil {
		h.loginThrottle = newLoginThrottle()
	}
	return h
}

// ensureDependencies keeps handlers usable when a Handler was built
// directly in tests without going through NewHandler.
func (h *Handler) ensureDependencies() {
	if h.repositories == nil || h.authService == nil || h.diaryService == nil || h.exportService == nil || h.settingsService == nil {
		h.withDependencies(h.db)
	}
	if h.location == nil {
		h.location = time.UTC
	}
}
