package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/febra/internal/services"
)

type timelineDayResponse struct {
	ID       int64          `json:"id"`
	Date     string         `json:"date"`
	Health   string         `json:"health"`
	Gap      bool           `json:"gap"`
	Symptoms map[string]int `json:"symptoms,omitempty"`
}

// Timeline returns the dense, newest-first day feed for the session user.
func (h *Handler) Timeline(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	records, err := h.diaryService.BuildTimeline(user.ID, time.Now(), h.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load timeline")
	}

	days := make([]timelineDayResponse, 0, len(records))
	for _, record := range records {
		days = append(days, timelineDayFromRecord(record))
	}
	return c.JSON(fiber.Map{"days": days})
}

func timelineDayFromRecord(record services.DayRecord) timelineDayResponse {
	day := timelineDayResponse{
		ID:     record.ID,
		Date:   record.Date.Format("2006-01-02"),
		Health: record.Health.String(),
		Gap:    record.Gap,
	}
	if record.Symptoms != nil {
		symptoms := make(map[string]int, len(record.Symptoms))
		for symptomType, value := range record.Symptoms {
			symptoms[string(symptomType)] = value
		}
		day.Symptoms = symptoms
	}
	return day
}
