package services

import (
	"time"

	"github.com/terraincognita07/febra/internal/models"
)

const exportDateLayout = "2006-01-02"

type ExportEventReader interface {
	ListByUser(userID uint) ([]models.SymptomEvent, error)
}

// ExportService turns an assembled timeline into CSV rows and JSON
// entries. Both outputs share the day-record sequence with the on-screen
// timeline, so exports can never disagree with what the user sees.
type ExportService struct {
	events ExportEventReader
}

func NewExportService(events ExportEventReader) *ExportService {
	return &ExportService{events: events}
}

type ExportSummary struct {
	TotalDays    int
	RecordedDays int
	HasData      bool
	DateFrom     string
	DateTo       string
}

// ExportRow is one CSV line: the ISO date followed by one cell per
// symptom type in canonical enumeration order.
type ExportRow struct {
	Date  string
	Gap   bool
	Cells []string
}

type ExportJSONEntry struct {
	Date     string         `json:"date"`
	Health   string         `json:"health"`
	Gap      bool           `json:"gap"`
	Symptoms map[string]int `json:"symptoms,omitempty"`
}

// CSVHeader returns the localized header row: date column plus the
// canonical symptom columns.
func CSVHeader(messages map[string]string) []string {
	header := make([]string, 0, len(models.SymptomTypeOrder)+1)
	header = append(header, exportLabel(messages, "export.column.date"))
	for _, symptomType := range models.SymptomTypeOrder {
		header = append(header, exportLabel(messages, "symptom."+string(symptomType)))
	}
	return header
}

func (service *ExportService) assembleForExport(userID uint, now time.Time, location *time.Location) ([]DayRecord, error) {
	events, err := service.events.ListByUser(userID)
	if err != nil {
		return nil, ErrTimelineLoadFailed
	}
	return AssembleTimeline(events, now, location)
}

func (service *ExportService) BuildSummary(userID uint, now time.Time, location *time.Location) (ExportSummary, error) {
	records, err := service.assembleForExport(userID, now, location)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(records) == 0 {
		return ExportSummary{}, nil
	}

	recorded := 0
	for _, record := range records {
		if !record.Gap {
			recorded++
		}
	}

	return ExportSummary{
		TotalDays:    len(records),
		RecordedDays: recorded,
		HasData:      true,
		DateFrom:     records[len(records)-1].Date.Format(exportDateLayout),
		DateTo:       records[0].Date.Format(exportDateLayout),
	}, nil
}

// BuildCSVRows renders every day record, gap days included, so exported
// files stay date-contiguous like the timeline itself.
func (service *ExportService) BuildCSVRows(userID uint, celsius bool, messages map[string]string, now time.Time, location *time.Location) ([]ExportRow, error) {
	records, err := service.assembleForExport(userID, now, location)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(records))
	for _, record := range records {
		cells := make([]string, 0, len(models.SymptomTypeOrder))
		for _, symptomType := range models.SymptomTypeOrder {
			cells = append(cells, exportCell(record, symptomType, celsius, messages))
		}
		rows = append(rows, ExportRow{
			Date:  record.Date.Format(exportDateLayout),
			Gap:   record.Gap,
			Cells: cells,
		})
	}
	return rows, nil
}

func (service *ExportService) BuildJSONEntries(userID uint, now time.Time, location *time.Location) ([]ExportJSONEntry, error) {
	records, err := service.assembleForExport(userID, now, location)
	if err != nil {
		return nil, err
	}

	entries := make([]ExportJSONEntry, 0, len(records))
	for _, record := range records {
		entry := ExportJSONEntry{
			Date:   record.Date.Format(exportDateLayout),
			Health: record.Health.String(),
			Gap:    record.Gap,
		}
		if len(record.Symptoms) > 0 {
			symptoms := make(map[string]int, len(record.Symptoms))
			for symptomType, value := range record.Symptoms {
				symptoms[string(symptomType)] = value
			}
			entry.Symptoms = symptoms
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// exportCell re-derives the display string for one (day, type) cell:
// a localized severity label, a temperature with unit in the viewer's
// preferred system, or the "none reported" placeholder. Suppressed
// below-threshold temperature noise renders as the placeholder too.
func exportCell(record DayRecord, symptomType models.SymptomType, celsius bool, messages map[string]string) string {
	value, present := record.Symptoms[symptomType]
	if !present {
		return exportLabel(messages, "export.none_reported")
	}

	if symptomType.IsTemperature() {
		switch BucketTemperature(value) {
		case TemperatureBucketPending:
			return exportLabel(messages, "temperature.pending")
		case TemperatureBucketSuppressed:
			return exportLabel(messages, "export.none_reported")
		default:
			return FormatTemperature(value, celsius)
		}
	}

	if key := SeverityLabelKey(value); key != "" {
		return exportLabel(messages, key)
	}
	return exportLabel(messages, "export.none_reported")
}

func exportLabel(messages map[string]string, key string) string {
	if value, ok := messages[key]; ok && value != "" {
		return value
	}
	return key
}
