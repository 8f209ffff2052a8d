package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrSettingsPasswordMissing = errors.New("settings password missing")
	ErrSettingsPasswordInvalid = errors.New("settings password invalid")
	ErrSettingsNameMissing     = errors.New("settings name missing")
)

type SettingsUserRepository interface {
	UpdateProfile(userID uint, name string, celsius bool) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	DeleteAccountAndRelatedData(userID uint) error
}

type ProfileSettingsUpdate struct {
	Name    string
	Celsius bool
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

// SaveProfile updates the display name and temperature unit. The unit
// only affects rendering; stored readings stay Celsius tenths either way.
func (service *SettingsService) SaveProfile(userID uint, settings ProfileSettingsUpdate) error {
	name := strings.TrimSpace(settings.Name)
	if name == "" {
		return ErrSettingsNameMissing
	}
	return service.users.UpdateProfile(userID, name, settings.Celsius)
}

func (service *SettingsService) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return service.users.UpdatePassword(userID, passwordHash, mustChangePassword)
}

func (service *SettingsService) ValidateDeleteAccountPassword(passwordHash string, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrSettingsPasswordMissing
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return ErrSettingsPasswordInvalid
	}
	return nil
}

func (service *SettingsService) DeleteAccount(userID uint) error {
	return service.users.DeleteAccountAndRelatedData(userID)
}
