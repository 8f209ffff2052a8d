package db

import (
	"time"

	"github.com/terraincognita07/febra/internal/models"
	"gorm.io/gorm"
)

type SymptomEventRepository struct {
	database *gorm.DB
}

func NewSymptomEventRepository(database *gorm.DB) *SymptomEventRepository {
	return &SymptomEventRepository{database: database}
}

func (repo *SymptomEventRepository) ListByUser(userID uint) ([]models.SymptomEvent, error) {
	events := make([]models.SymptomEvent, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *SymptomEventRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.SymptomEvent, error) {
	events := make([]models.SymptomEvent, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *SymptomEventRepository) CountByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.SymptomEvent{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SaveDayAnswers upserts every answered symptom type of one wizard
// submission in a single transaction, so an interrupted save never leaves
// a half-written day behind.
func (repo *SymptomEventRepository) SaveDayAnswers(userID uint, dayStart time.Time, dayEnd time.Time, answers map[models.SymptomType]int) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for _, symptomType := range models.SymptomTypeOrder {
			value, answered := answers[symptomType]
			if !answered {
				continue
			}

			var existing models.SymptomEvent
			result := tx.
				Where("user_id = ? AND date >= ? AND date < ? AND type = ?", userID, dayStart, dayEnd, symptomType).
				Limit(1).
				Find(&existing)
			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				event := models.SymptomEvent{
					UserID: userID,
					Date:   dayStart,
					Type:   symptomType,
					Value:  value,
				}
				if err := tx.Create(&event).Error; err != nil {
					return err
				}
				continue
			}

			if existing.Value == value {
				continue
			}
			existing.Value = value
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *SymptomEventRepository) RemoveByUserDayType(userID uint, dayStart time.Time, dayEnd time.Time, symptomType models.SymptomType) error {
	return repo.database.
		Where("user_id = ? AND date >= ? AND date < ? AND type = ?", userID, dayStart, dayEnd, symptomType).
		Delete(&models.SymptomEvent{}).Error
}

func (repo *SymptomEventRepository) DeleteByUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.SymptomEvent{}).Error
}
