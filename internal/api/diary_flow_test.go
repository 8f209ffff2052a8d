package api

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestDiaryDayAndTimelineFlow(t *testing.T) {
	app, database := newDiaryTestApp(t)
	createDiaryTestUser(t, database, "flow@example.com", "StrongPass1")
	cookie := loginAndExtractAuthCookie(t, app, "flow@example.com", "StrongPass1")

	newer := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	older := time.Now().UTC().AddDate(0, 0, -3).Format("2006-01-02")

	for _, submission := range []struct {
		date     string
		symptoms map[string]int
	}{
		{older, map[string]int{"cough": 2, "headache": 1}},
		{newer, map[string]int{"cough": 3, "temperatureMorning": 381}},
	} {
		response := postJSON(t, app, "/api/days/"+submission.date, cookie, map[string]any{
			"symptoms": submission.symptoms,
		})
		if response.StatusCode != http.StatusOK {
			t.Fatalf("save %s failed with status %d", submission.date, response.StatusCode)
		}
		response.Body.Close()
	}

	day := getWithCookie(t, app, "/api/days/"+older, cookie)
	defer day.Body.Close()
	var dayBody struct {
		Date     string         `json:"date"`
		Symptoms map[string]int `json:"symptoms"`
	}
	decodeJSONBody(t, day, &dayBody)
	if dayBody.Date != older {
		t.Fatalf("expected date %s, got %s", older, dayBody.Date)
	}
	if dayBody.Symptoms["cough"] != 2 || dayBody.Symptoms["headache"] != 1 {
		t.Fatalf("expected raw stored answers for prefill, got %+v", dayBody.Symptoms)
	}

	exists := getWithCookie(t, app, "/api/days/"+older+"/exists", cookie)
	defer exists.Body.Close()
	var existsBody struct {
		Exists bool `json:"exists"`
	}
	decodeJSONBody(t, exists, &existsBody)
	if !existsBody.Exists {
		t.Fatal("expected recorded day to report exists=true")
	}

	timeline := getWithCookie(t, app, "/api/timeline", cookie)
	defer timeline.Body.Close()
	if timeline.StatusCode != http.StatusOK {
		t.Fatalf("timeline failed with status %d", timeline.StatusCode)
	}
	var timelineBody struct {
		Days []struct {
			Date     string         `json:"date"`
			Health   string         `json:"health"`
			Gap      bool           `json:"gap"`
			Symptoms map[string]int `json:"symptoms"`
		} `json:"days"`
	}
	decodeJSONBody(t, timeline, &timelineBody)

	if len(timelineBody.Days) != 3 {
		t.Fatalf("expected 2 recorded days plus 1 gap, got %d", len(timelineBody.Days))
	}
	if timelineBody.Days[0].Date != newer || timelineBody.Days[0].Health != "symptomatic" {
		t.Fatalf("unexpected newest day %+v", timelineBody.Days[0])
	}
	if !timelineBody.Days[1].Gap || timelineBody.Days[1].Health != "unknown" {
		t.Fatalf("expected gap filler between the records, got %+v", timelineBody.Days[1])
	}
	if timelineBody.Days[2].Date != older {
		t.Fatalf("expected oldest day %s, got %s", older, timelineBody.Days[2].Date)
	}
	if _, ok := timelineBody.Days[2].Symptoms["headache"]; ok {
		t.Fatal("none answers must not surface in the timeline")
	}
}

func TestUpsertDayRejectsFutureDate(t *testing.T) {
	app, database := newDiaryTestApp(t)
	createDiaryTestUser(t, database, "future@example.com", "StrongPass1")
	cookie := loginAndExtractAuthCookie(t, app, "future@example.com", "StrongPass1")

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	response := postJSON(t, app, "/api/days/"+tomorrow, cookie, map[string]any{
		"symptoms": map[string]int{"cough": 2},
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for a future day, got %d", response.StatusCode)
	}
}

func TestDeleteDayAnswer(t *testing.T) {
	app, database := newDiaryTestApp(t)
	createDiaryTestUser(t, database, "delete@example.com", "StrongPass1")
	cookie := loginAndExtractAuthCookie(t, app, "delete@example.com", "StrongPass1")

	date := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	saved := postJSON(t, app, "/api/days/"+date, cookie, map[string]any{
		"symptoms": map[string]int{"cough": 2, "runnyNose": 3},
	})
	saved.Body.Close()

	request := httptest.NewRequest(http.MethodDelete, "/api/days/"+date+"/runnyNose", nil)
	request.Header.Set("Cookie", cookie)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", response.StatusCode)
	}

	day := getWithCookie(t, app, "/api/days/"+date, cookie)
	defer day.Body.Close()
	var dayBody struct {
		Symptoms map[string]int `json:"symptoms"`
	}
	decodeJSONBody(t, day, &dayBody)
	if _, ok := dayBody.Symptoms["runnyNose"]; ok {
		t.Fatal("deleted answer still present")
	}
	if dayBody.Symptoms["cough"] != 2 {
		t.Fatal("unrelated answer was lost")
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	app, database := newDiaryTestApp(t)
	createDiaryTestUser(t, database, "export@example.com", "StrongPass1")
	cookie := loginAndExtractAuthCookie(t, app, "export@example.com", "StrongPass1")

	date := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	saved := postJSON(t, app, "/api/days/"+date, cookie, map[string]any{
		"symptoms": map[string]int{"cough": 3},
	})
	saved.Body.Close()

	response := getWithCookie(t, app, "/api/export/csv", cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export failed with status %d", response.StatusCode)
	}
	disposition := response.Header.Get("Content-Disposition")
	if !strings.Contains(disposition, "febra-export-") || !strings.Contains(disposition, ".csv") {
		t.Fatalf("unexpected content disposition %q", disposition)
	}

	records, err := csv.NewReader(response.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}
	if records[0][0] != "Date" || records[0][1] != "Cough" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][0] != date || records[1][1] != "moderate" {
		t.Fatalf("unexpected data row %v", records[1])
	}
}
