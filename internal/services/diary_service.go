package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/febra/internal/models"
)

var (
	ErrDayAnswersLoadFailed  = errors.New("load day answers failed")
	ErrDayAnswersSaveFailed  = errors.New("save day answers failed")
	ErrDayAnswerRemoveFailed = errors.New("remove day answer failed")
	ErrTimelineLoadFailed    = errors.New("load timeline events failed")
	ErrUnknownSymptomType    = errors.New("unknown symptom type")
	ErrInvalidSeverityValue  = errors.New("invalid severity value")
	ErrInvalidTemperature    = errors.New("invalid temperature value")
	ErrFutureDateNotLoggable = errors.New("future dates cannot be logged")
	ErrNoAnswersInSubmission = errors.New("submission has no answers")
)

type DiaryEventRepository interface {
	ListByUser(userID uint) ([]models.SymptomEvent, error)
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.SymptomEvent, error)
	CountByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
	SaveDayAnswers(userID uint, dayStart time.Time, dayEnd time.Time, answers map[models.SymptomType]int) error
	RemoveByUserDayType(userID uint, dayStart time.Time, dayEnd time.Time, symptomType models.SymptomType) error
	DeleteByUser(userID uint) error
}

// DiaryService owns reading and writing symptom events. The timeline
// itself stays a pure function; this service only feeds it.
type DiaryService struct {
	events DiaryEventRepository
}

func NewDiaryService(events DiaryEventRepository) *DiaryService {
	return &DiaryService{events: events}
}

// BuildTimeline loads every event of the user and assembles the dense,
// date-descending day-record sequence.
func (service *DiaryService) BuildTimeline(userID uint, now time.Time, location *time.Location) ([]DayRecord, error) {
	events, err := service.events.ListByUser(userID)
	if err != nil {
		return nil, ErrTimelineLoadFailed
	}
	return AssembleTimeline(events, now, location)
}

// FetchDayAnswers returns the raw type→value answers recorded for one
// calendar day, used to prefill the wizard.
func (service *DiaryService) FetchDayAnswers(userID uint, day time.Time, location *time.Location) (map[models.SymptomType]int, error) {
	dayStart, dayEnd := DayRange(day, location)
	events, err := service.events.ListByUserDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return nil, ErrDayAnswersLoadFailed
	}

	answers := make(map[models.SymptomType]int, len(events))
	for _, event := range events {
		answers[event.Type] = event.Value
	}
	return answers, nil
}

func (service *DiaryService) DayHasAnswers(userID uint, day time.Time, location *time.Location) (bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	count, err := service.events.CountByUserDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return false, ErrDayAnswersLoadFailed
	}
	return count > 0, nil
}

// SaveDayAnswers validates one wizard submission and persists it as a
// single logical transaction. Fahrenheit temperature readings are
// converted to Celsius tenths here, before storage ever sees them.
func (service *DiaryService) SaveDayAnswers(userID uint, day time.Time, answers map[models.SymptomType]int, celsius bool, now time.Time, location *time.Location) error {
	dayStart, dayEnd := DayRange(day, location)
	today := DateAtLocation(now, location)
	if dayStart.After(today) {
		return ErrFutureDateNotLoggable
	}
	if len(answers) == 0 {
		return ErrNoAnswersInSubmission
	}

	normalized := make(map[models.SymptomType]int, len(answers))
	for symptomType, value := range answers {
		if !symptomType.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownSymptomType, symptomType)
		}
		if symptomType.IsTemperature() {
			if value < 0 {
				return fmt.Errorf("%w: %d", ErrInvalidTemperature, value)
			}
			if value != TemperaturePending && !celsius {
				value = FahrenheitTenthsToCelsiusTenths(value)
			}
		} else if !ValidOrdinalSeverity(value) {
			return fmt.Errorf("%w: %d for %q", ErrInvalidSeverityValue, value, symptomType)
		}
		normalized[symptomType] = value
	}

	if err := service.events.SaveDayAnswers(userID, dayStart, dayEnd, normalized); err != nil {
		return ErrDayAnswersSaveFailed
	}
	return nil
}

func (service *DiaryService) RemoveDayAnswer(userID uint, day time.Time, symptomType models.SymptomType, location *time.Location) error {
	if !symptomType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownSymptomType, symptomType)
	}
	dayStart, dayEnd := DayRange(day, location)
	if err := service.events.RemoveByUserDayType(userID, dayStart, dayEnd, symptomType); err != nil {
		return ErrDayAnswerRemoveFailed
	}
	return nil
}

func (service *DiaryService) DeleteAllEvents(userID uint) error {
	return service.events.DeleteByUser(userID)
}
