package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/febra/internal/services"
)

func (h *Handler) ExportSummary(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	summary, err := h.exportService.BuildSummary(user.ID, time.Now(), h.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export summary")
	}
	return c.JSON(fiber.Map{
		"total_days":    summary.TotalDays,
		"recorded_days": summary.RecordedDays,
		"has_data":      summary.HasData,
		"date_from":     summary.DateFrom,
		"date_to":       summary.DateTo,
	})
}

func (h *Handler) ExportCSV(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	messages := requestMessages(c)
	rows, err := h.exportService.BuildCSVRows(user.ID, user.Celsius, messages, time.Now(), h.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(services.CSVHeader(messages)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range rows {
		record := append([]string{row.Date}, row.Cells...)
		if err := writer.Write(record); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", buildExportFilename(time.Now(), "csv"))
	return c.Send(buffer.Bytes())
}

func (h *Handler) ExportJSON(c *fiber.Ctx) error {
	h.ensureDependencies()
	user := currentUser(c)
	if user == nil {
		return apiError(c, fiber.StatusUnauthorized, "authentication required")
	}

	entries, err := h.exportService.BuildJSONEntries(user.ID, time.Now(), h.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	payload, err := json.MarshalIndent(fiber.Map{"days": entries}, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "application/json; charset=utf-8", buildExportFilename(time.Now(), "json"))
	return c.Send(payload)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("febra-export-%s.%s", now.Format("2006-01-02"), extension)
}
