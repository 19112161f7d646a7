package integration

import (
	"net/http"
	"strings"
	"testing"
)

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	t.Run("register returns token and user", func(t *testing.T) {
		token, userID := app.registerUser(t, "flow@example.com", "supersecret1")
		if token == "" || userID == "" {
			t.Fatal("expected token and user id")
		}
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/register",
			`{"email":"flow@example.com","password":"supersecret1","name":"Copy"}`, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "DUPLICATE_EMAIL") {
			t.Errorf("expected DUPLICATE_EMAIL, got %s", rec.Body.String())
		}
	})

	t.Run("login with valid credentials", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/login",
			`{"email":"flow@example.com","password":"supersecret1"}`, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] == "" {
			t.Error("expected token")
		}
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/auth/login",
			`{"email":"flow@example.com","password":"wrong-password"}`, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("protected route requires a token", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/goals", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("protected route rejects a garbage token", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/goals", "", "not-a-jwt")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
