package services

import "github.com/terraincognita07/febra/internal/models"

// Ordinal severity scale for non-temperature symptom types. "None" is a
// real wizard answer: it marks the day as healthy instead of adding a
// visible symptom entry.
const (
	SeverityNone     = 1
	SeverityMild     = 2
	SeverityModerate = 3
	SeveritySevere   = 4
)

// HealthState is the derived per-day classification. Gap days stay
// HealthUnknown: "no data" is not the same statement as "healthy".
type HealthState int

const (
	HealthUnknown HealthState = iota
	HealthHealthy
	HealthSymptomatic
)

func (state HealthState) String() string {
	switch state {
	case HealthHealthy:
		return "healthy"
	case HealthSymptomatic:
		return "symptomatic"
	default:
		return "unknown"
	}
}

func ValidOrdinalSeverity(value int) bool {
	return value >= SeverityNone && value <= SeveritySevere
}

// SeverityLabelKey returns the locale key for an ordinal severity value.
func SeverityLabelKey(value int) string {
	switch value {
	case SeverityNone:
		return "severity.none"
	case SeverityMild:
		return "severity.mild"
	case SeverityModerate:
		return "severity.moderate"
	case SeveritySevere:
		return "severity.severe"
	default:
		return ""
	}
}

// eventLeavesDayHealthy interprets one event value per its type tag. The
// two encodings must not be conflated: ordinal "none" is healthy, while
// the temperature sentinel only counts as healthy once the day is over,
// since a pending reading on today's date is still an open question.
func eventLeavesDayHealthy(event models.SymptomEvent, isToday bool) bool {
	if event.Type.IsTemperature() {
		return event.Value == TemperaturePending && !isToday
	}
	return event.Value == SeverityNone
}

// eventVisibleInDay reports whether the event contributes an entry to the
// day's symptoms map. Ordinal "none" answers are folded into the health
// flag instead; temperature readings always show, including the pending
// sentinel carried by the evening-temperature workflow.
func eventVisibleInDay(event models.SymptomEvent) bool {
	if event.Type.IsTemperature() {
		return true
	}
	return event.Value != SeverityNone
}
