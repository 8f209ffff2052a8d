package services

import (
	"fmt"
	"math"
)

// Temperatures are stored as Celsius tenths of a degree regardless of the
// user's display unit. Fahrenheit submissions are converted before they
// reach storage; display conversion happens only at render/export time.
const (
	// TemperaturePending is the reserved "asked but not yet recorded"
	// value. It is never bucketed.
	TemperaturePending = 0

	temperatureDisplayFloor = 370
	temperatureLowGradeMax  = 374
	temperatureModerateMax  = 384
)

type TemperatureBucket int

const (
	TemperatureBucketPending TemperatureBucket = iota
	TemperatureBucketSuppressed
	TemperatureBucketLowGrade
	TemperatureBucketModerate
	TemperatureBucketSevere
)

// BucketTemperature classifies a stored Celsius-tenths reading.
// Non-sentinel values under 37.0° are treated as noise and suppressed
// from display.
func BucketTemperature(value int) TemperatureBucket {
	switch {
	case value == TemperaturePending:
		return TemperatureBucketPending
	case value < temperatureDisplayFloor:
		return TemperatureBucketSuppressed
	case value <= temperatureLowGradeMax:
		return TemperatureBucketLowGrade
	case value <= temperatureModerateMax:
		return TemperatureBucketModerate
	default:
		return TemperatureBucketSevere
	}
}

// Severity maps a fever bucket onto the ordinal scale used for display
// colors. Pending and suppressed readings have no severity.
func (bucket TemperatureBucket) Severity() int {
	switch bucket {
	case TemperatureBucketLowGrade:
		return SeverityMild
	case TemperatureBucketModerate:
		return SeverityModerate
	case TemperatureBucketSevere:
		return SeveritySevere
	default:
		return 0
	}
}

func CelsiusTenthsToFahrenheitTenths(value int) int {
	return int(math.Round(float64(value)*9.0/5.0)) + 320
}

func FahrenheitTenthsToCelsiusTenths(value int) int {
	return int(math.Round(float64(value-320) * 5.0 / 9.0))
}

// FormatTemperature renders a stored reading in the viewer's unit,
// e.g. "37.4 °C" or "99.3 °F".
func FormatTemperature(value int, celsius bool) string {
	unit := "°C"
	if !celsius {
		value = CelsiusTenthsToFahrenheitTenths(value)
		unit = "°F"
	}
	return fmt.Sprintf("%d.%d %s", value/10, value%10, unit)
}
