package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/febra/internal/models"
)

// DayRecord is one calendar day of the assembled timeline, either backed
// by recorded events or synthesized to close a date gap. Symptoms holds
// only the entries explicitly reported that day; it is nil on gap days.
//
// ID is stable within one assembled timeline so incremental renderers can
// key on it. Gap records derive theirs from the nearest newer real record,
// which makes them unique per assembly only; callers must never persist
// a DayRecord ID.
type DayRecord struct {
	ID       int64
	Date     time.Time
	Symptoms map[models.SymptomType]int
	Health   HealthState
	Gap      bool
}

const gapIDStride = 1000

// AssembleTimeline turns an unordered batch of one user's symptom events
// into a date-descending, gap-free sequence of day records. It is pure:
// the same event batch always yields the same sequence, regardless of
// input order, and the input slice is left untouched.
func AssembleTimeline(events []models.SymptomEvent, now time.Time, location *time.Location) ([]DayRecord, error) {
	if location == nil {
		location = time.UTC
	}
	for _, event := range events {
		if !event.Type.Valid() {
			return nil, fmt.Errorf("assemble timeline: unrecognized symptom type %q on event %d", event.Type, event.ID)
		}
	}
	if len(events) == 0 {
		return []DayRecord{}, nil
	}

	sorted := make([]models.SymptomEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		dayI := DateAtLocation(sorted[i].Date, location)
		dayJ := DateAtLocation(sorted[j].Date, location)
		if !dayI.Equal(dayJ) {
			return dayI.After(dayJ)
		}
		// Within a date, ascending event id is creation order, so the
		// later write wins on duplicate (date, type) pairs and the
		// result does not depend on how the batch was shuffled.
		return sorted[i].ID < sorted[j].ID
	})

	today := DateAtLocation(now, location)
	return fillDayGaps(mergeDayRecords(sorted, today, location)), nil
}

// mergeDayRecords folds a date-descending event sequence into one record
// per distinct date. The health flag starts from the first event of the
// date and every further event ANDs into it: once a genuine symptom marks
// the day symptomatic, no later "none" answer can flip it back.
func mergeDayRecords(sorted []models.SymptomEvent, today time.Time, location *time.Location) []DayRecord {
	records := make([]DayRecord, 0)
	for _, event := range sorted {
		day := DateAtLocation(event.Date, location)
		healthy := eventLeavesDayHealthy(event, day.Equal(today))

		if len(records) == 0 || !records[len(records)-1].Date.Equal(day) {
			record := DayRecord{
				ID:       int64(event.ID),
				Date:     day,
				Symptoms: map[models.SymptomType]int{},
				Health:   HealthSymptomatic,
			}
			if healthy {
				record.Health = HealthHealthy
			}
			if eventVisibleInDay(event) {
				record.Symptoms[event.Type] = event.Value
			}
			records = append(records, record)
			continue
		}

		record := &records[len(records)-1]
		if !healthy {
			record.Health = HealthSymptomatic
		}
		if eventVisibleInDay(event) {
			record.Symptoms[event.Type] = event.Value
		}
	}
	return records
}

// fillDayGaps inserts one synthetic record per calendar day strictly
// between consecutive records. A gap of diff days between neighbors needs
// diff-1 fillers: both boundary days already exist, so the loop bound is
// exclusive. The oldest record has no successor and is copied through;
// nothing is synthesized past the last known event.
func fillDayGaps(records []DayRecord) []DayRecord {
	filled := make([]DayRecord, 0, len(records))
	for index, record := range records {
		filled = append(filled, record)
		if index == len(records)-1 {
			break
		}

		gapDays := calendarDaysBetween(records[index+1].Date, record.Date)
		for offset := 1; offset < gapDays; offset++ {
			filled = append(filled, DayRecord{
				ID:     record.ID*gapIDStride + int64(offset-1),
				Date:   record.Date.AddDate(0, 0, -offset),
				Health: HealthUnknown,
				Gap:    true,
			})
		}
	}
	return filled
}
