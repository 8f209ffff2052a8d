package db

import (
	"github.com/terraincognita07/febra/internal/models"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// Load returns the single settings row, creating it on first access.
func (repo *SettingsRepository) Load() (models.AppSettings, error) {
	var settings models.AppSettings
	result := repo.database.Limit(1).Find(&settings)
	if result.Error != nil {
		return models.AppSettings{}, result.Error
	}
	if result.RowsAffected == 0 {
		settings = models.AppSettings{ShowWelcome: true}
		if err := repo.database.Create(&settings).Error; err != nil {
			return models.AppSettings{}, err
		}
	}
	return settings, nil
}

func (repo *SettingsRepository) SetShowWelcome(show bool) error {
	settings, err := repo.Load()
	if err != nil {
		return err
	}
	settings.ShowWelcome = show
	return repo.database.Save(&settings).Error
}
