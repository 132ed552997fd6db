package api

import (
	"net/http"
	"testing"
)

func TestBootstrapFlow(t *testing.T) {
	srv, _ := testServer(t)

	// Fresh store: setup is needed.
	rec := doRequest(t, srv, http.MethodGet, "/api/admin/setup-status", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("setup-status: expected 200, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["needs_setup"] != true {
		t.Fatalf("expected needs_setup true on fresh store, got %v", body["needs_setup"])
	}

	// Protected resource is gated before bootstrap too.
	rec = doRequest(t, srv, http.MethodGet, "/api/admin/appointments/", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before bootstrap, got %d", rec.Code)
	}

	// Bootstrap the account; the response carries a usable token.
	token := setupAdmin(t, srv, "admin@example.com", "correct-horse-battery")

	// Setup is now closed.
	rec = doRequest(t, srv, http.MethodGet, "/api/admin/setup-status", "", nil)
	if body := decodeBody(t, rec); body["needs_setup"] != false {
		t.Fatalf("expected needs_setup false after bootstrap, got %v", body["needs_setup"])
	}

	// The issued token opens the gate.
	rec = doRequest(t, srv, http.MethodGet, "/api/admin/verify", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Without the token the same route still refuses.
	rec = doRequest(t, srv, http.MethodGet, "/api/admin/verify", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("verify without token: expected 401, got %d", rec.Code)
	}
}

func TestSetupValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"password": "long-enough-password"}},
		{"missing password", map[string]string{"email": "admin@example.com"}},
		{"invalid email", map[string]string{"email": "not-an-email", "password": "long-enough-password"}},
		{"short password", map[string]string{"email": "admin@example.com", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := testServer(t)
			rec := doRequest(t, srv, http.MethodPost, "/api/admin/setup", "", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSetupIsOneTime(t *testing.T) {
	srv, _ := testServer(t)
	setupAdmin(t, srv, "admin@example.com", "correct-horse-battery")

	rec := doRequest(t, srv, http.MethodPost, "/api/admin/setup", "", map[string]string{
		"email":    "second@example.com",
		"password": "another-long-password",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on second setup, got %d", rec.Code)
	}

	// The original credentials still work; the second attempt changed nothing.
	rec = doRequest(t, srv, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "correct-horse-battery",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("original admin should still log in, got %d", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	srv, _ := testServer(t)
	setupAdmin(t, srv, "admin@example.com", "correct-horse-battery")

	rec := doRequest(t, srv, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "correct-horse-battery",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatal("login response missing token")
	}

	// The fresh token passes the gate.
	rec = doRequest(t, srv, http.MethodGet, "/api/admin/verify", token, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("login token rejected by gate: %d", rec.Code)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	srv, _ := testServer(t)
	setupAdmin(t, srv, "admin@example.com", "correct-horse-battery")

	wrongPassword := doRequest(t, srv, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-password-entirely",
	})
	unknownEmail := doRequest(t, srv, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "correct-horse-battery",
	})

	if wrongPassword.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", wrongPassword.Code)
	}
	if unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: expected 401, got %d", unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Errorf("failure bodies must not reveal which credential was wrong:\n%s\nvs\n%s",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginBeforeSetup(t *testing.T) {
	srv, _ := testServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/admin/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "correct-horse-battery",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no admin exists, got %d", rec.Code)
	}
}
