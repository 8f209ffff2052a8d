package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Events   *SymptomEventRepository
	Settings *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Events:   NewSymptomEventRepository(database),
		Settings: NewSettingsRepository(database),
	}
}
