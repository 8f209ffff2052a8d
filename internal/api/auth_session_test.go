package api

import (
	"net/http"
	"testing"
)

func TestRegisterLoginFlow(t *testing.T) {
	app, _ := newDiaryTestApp(t)

	response := postJSON(t, app, "/api/auth/register", "", map[string]any{
		"email":    "diary@example.com",
		"password": "StrongPass1",
		"name":     "Ana",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on registration, got %d", response.StatusCode)
	}

	var profile struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Celsius bool   `json:"celsius"`
	}
	decodeJSONBody(t, response, &profile)
	if profile.Email != "diary@example.com" || profile.Name != "Ana" {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if !profile.Celsius {
		t.Fatal("celsius must default to true")
	}

	cookie := loginAndExtractAuthCookie(t, app, "diary@example.com", "StrongPass1")

	me := getWithCookie(t, app, "/api/auth/me", cookie)
	defer me.Body.Close()
	if me.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /api/auth/me, got %d", me.StatusCode)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, database := newDiaryTestApp(t)
	createDiaryTestUser(t, database, "taken@example.com", "StrongPass1")

	response := postJSON(t, app, "/api/auth/register", "", map[string]any{
		"email":    "Taken@Example.com",
		"password": "OtherPass2",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", response.StatusCode)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	app, _ := newDiaryTestApp(t)

	response := postJSON(t, app, "/api/auth/register", "", map[string]any{
		"email":    "weak@example.com",
		"password": "12345678",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", response.StatusCode)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, database := newDiaryTestApp(t)
	createDiaryTestUser(t, database, "user@example.com", "StrongPass1")

	response := postJSON(t, app, "/api/auth/login", "", map[string]any{
		"email":    "user@example.com",
		"password": "WrongPass9",
	})
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", response.StatusCode)
	}

	var body struct {
		Code string `json:"code"`
	}
	decodeJSONBody(t, response, &body)
	if body.Code != "auth.invalid_credentials" {
		t.Fatalf("expected invalid-credentials code, got %q", body.Code)
	}
}

func TestLoginThrottlesRepeatedFailures(t *testing.T) {
	app, database := newDiaryTestApp(t)
	createDiaryTestUser(t, database, "throttle@example.com", "StrongPass1")

	payload := map[string]any{
		"email":    "throttle@example.com",
		"password": "WrongPass9",
	}
	for attempt := 0; attempt < loginFailureLimit; attempt++ {
		response := postJSON(t, app, "/api/auth/login", "", payload)
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", attempt, response.StatusCode)
		}
		response.Body.Close()
	}

	blocked := postJSON(t, app, "/api/auth/login", "", payload)
	defer blocked.Body.Close()
	if blocked.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after repeated failures, got %d", blocked.StatusCode)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newDiaryTestApp(t)

	response := getWithCookie(t, app, "/api/timeline", "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session cookie, got %d", response.StatusCode)
	}
}
