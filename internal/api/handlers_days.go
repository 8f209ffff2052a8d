package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/febra/internal/services"
)

func (h *Handler) GetDay(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	day, err := h.dayFromParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	answers, err := h.diaryService.FetchDayAnswers(user.ID, day, h.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load day")
	}

	symptoms := make(map[string]int, len(answers))
	for symptomType, value := range answers {
		symptoms[string(symptomType)] = value
	}
	return c.JSON(fiber.Map{
		"date":     day.Format("2006-01-02"),
		"symptoms": symptoms,
	})
}

// DayExists lets the client warn before overwriting an already logged day.
func (h *Handler) DayExists(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	day, err := h.dayFromParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	exists, err := h.diaryService.DayHasAnswers(user.ID, day, h.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check day")
	}
	return c.JSON(fiber.Map{"date": day.Format("2006-01-02"), "exists": exists})
}

func (h *Handler) UpsertDay(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	day, err := h.dayFromParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dayPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	answers, err := dayAnswersFromPayload(payload)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	celsius := user.Celsius
	if payload.Celsius != nil {
		celsius = *payload.Celsius
	}

	if err := h.diaryService.SaveDayAnswers(user.ID, day, answers, celsius, time.Now(), h.location); err != nil {
		switch {
		case errors.Is(err, services.ErrFutureDateNotLoggable),
			errors.Is(err, services.ErrNoAnswersInSubmission),
			errors.Is(err, services.ErrUnknownSymptomType),
			errors.Is(err, services.ErrInvalidSeverityValue),
			errors.Is(err, services.ErrInvalidTemperature):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save day")
	}
	return c.JSON(fiber.Map{"ok": true, "date": day.Format("2006-01-02")})
}

func (h *Handler) DeleteDayAnswer(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	day, err := h.dayFromParams(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	symptomType, err := parseSymptomTypeParam(c.Params("type"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.diaryService.RemoveDayAnswer(user.ID, day, symptomType, h.location); err != nil {
		if errors.Is(err, services.ErrUnknownSymptomType) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete answer")
	}
	return c.JSON(fiber.Map{"ok": true})
}
