package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/febra/internal/models"
	"github.com/terraincognita07/febra/internal/services"
)

var errInvalidDayParam = errors.New("invalid date, expected YYYY-MM-DD")

func (h *Handler) parseDayParam(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", raw, h.location)
	if err != nil {
		return time.Time{}, errInvalidDayParam
	}
	return services.DateAtLocation(parsed, h.location), nil
}

func parseSymptomTypeParam(raw string) (models.SymptomType, error) {
	symptomType := models.SymptomType(raw)
	if !symptomType.Valid() {
		return "", errors.New("unrecognized symptom type")
	}
	return symptomType, nil
}

func (h *Handler) dayFromParams(c *fiber.Ctx) (time.Time, error) {
	return h.parseDayParam(c.Params("date"))
}

func dayAnswersFromPayload(payload dayPayload) (map[models.SymptomType]int, error) {
	if len(payload.Symptoms) == 0 {
		return nil, errors.New("at least one symptom answer is required")
	}
	answers := make(map[models.SymptomType]int, len(payload.Symptoms))
	for raw, value := range payload.Symptoms {
		symptomType, err := parseSymptomTypeParam(raw)
		if err != nil {
			return nil, err
		}
		answers[symptomType] = value
	}
	return answers, nil
}
