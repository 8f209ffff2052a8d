package models

import "time"

// SymptomType identifies one question of the daily wizard. The set is
// closed: events with any other type are a data-integrity fault.
type SymptomType string

const (
	SymptomCough              SymptomType = "cough"
	SymptomSoreThroat         SymptomType = "soreThroat"
	SymptomTemperatureMorning SymptomType = "temperatureMorning"
	SymptomTemperatureEvening SymptomType = "temperatureEvening"
	SymptomShortnessOfBreath  SymptomType = "shortnessOfBreath"
	SymptomRunnyNose          SymptomType = "runnyNose"
	SymptomLossOfSmell        SymptomType = "lossOfSmell"
	SymptomHeadache           SymptomType = "headache"
	SymptomAbdominalPain      SymptomType = "abdominalPain"
	SymptomVomiting           SymptomType = "vomiting"
	SymptomBodyAches          SymptomType = "bodyAches"
	SymptomDiarrhea           SymptomType = "diarrhea"
)

// SymptomTypeOrder is the canonical enumeration order. Wizard steps, CSV
// columns and JSON exports all follow it, never map iteration order.
var SymptomTypeOrder = []SymptomType{
	SymptomCough,
	SymptomSoreThroat,
	SymptomTemperatureMorning,
	SymptomTemperatureEvening,
	SymptomShortnessOfBreath,
	SymptomRunnyNose,
	SymptomLossOfSmell,
	SymptomHeadache,
	SymptomAbdominalPain,
	SymptomVomiting,
	SymptomBodyAches,
	SymptomDiarrhea,
}

var validSymptomTypes = func() map[SymptomType]struct{} {
	set := make(map[SymptomType]struct{}, len(SymptomTypeOrder))
	for _, symptomType := range SymptomTypeOrder {
		set[symptomType] = struct{}{}
	}
	return set
}()

func (symptomType SymptomType) Valid() bool {
	_, ok := validSymptomTypes[symptomType]
	return ok
}

// IsTemperature reports whether the value of this type is a Celsius
// tenths-of-a-degree reading rather than an ordinal severity.
func (symptomType SymptomType) IsTemperature() bool {
	return symptomType == SymptomTemperatureMorning || symptomType == SymptomTemperatureEvening
}

// SymptomEvent is one persisted fact: one user answered one wizard step
// for one calendar day. Identity is (user, date, type); value is mutable.
type SymptomEvent struct {
	ID        uint        `gorm:"primaryKey"`
	UserID    uint        `gorm:"not null;uniqueIndex:uidx_user_date_type"`
	Date      time.Time   `gorm:"type:date;not null;uniqueIndex:uidx_user_date_type"`
	Type      SymptomType `gorm:"not null;uniqueIndex:uidx_user_date_type"`
	Value     int         `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
