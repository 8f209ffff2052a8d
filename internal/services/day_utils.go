package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// calendarDaysBetween counts whole calendar days from older to newer.
// Both arguments must already be normalized to midnight; stepping by
// AddDate keeps the count correct across DST transitions.
func calendarDaysBetween(older time.Time, newer time.Time) int {
	days := 0
	for day := older; day.Before(newer); day = day.AddDate(0, 0, 1) {
		days++
	}
	return days
}
