package models

// AppSettings is a single-row table of instance-wide flags.
type AppSettings struct {
	ID          uint `gorm:"primaryKey"`
	ShowWelcome bool `gorm:"not null;default:true"`
}
