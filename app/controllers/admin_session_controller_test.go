package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/BTMReise/internal/pkg/session"
)

func newAdminApp(t *testing.T, password string) (*fiber.App, *AdminSessionController, *[]time.Duration) {
	t.Helper()
	ctl := NewAdminSessionController(
		session.NewManager(session.NewMemoryStore(), time.Hour),
		session.NewPasswordChecker(password, ""),
		time.Second,
	)
	var slept []time.Duration
	ctl.sleep = func(_ context.Context, d time.Duration) { slept = append(slept, d) }

	app := fiber.New()
	app.Post("/api/admin-login", ctl.HandleAdminSession)
	return app, ctl, &slept
}

func TestAdminSession_LoginVerifyLogout(t *testing.T) {
	app, _, slept := newAdminApp(t, "s3cret")

	status, body := postJSON(t, app, "/api/admin-login", map[string]string{"action": "login", "password": "s3cret"}, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login erfolgreich", body["message"])
	token, _ := body["token"].(string)
	require.Len(t, token, 64)
	assert.Empty(t, *slept)

	status, body = postJSON(t, app, "/api/admin-login", map[string]string{"action": "verify", "token": token}, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["valid"])

	status, body = postJSON(t, app, "/api/admin-login", map[string]string{"action": "logout", "token": token}, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Logout erfolgreich", body["message"])

	status, body = postJSON(t, app, "/api/admin-login", map[string]string{"action": "verify", "token": token}, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["valid"])
}

func TestAdminSession_Failures(t *testing.T) {
	tests := []struct {
		name     string
		password string
		body     any
		status   int
		errMsg   string
		delayed  bool
	}{
		{"wrong password", "s3cret", map[string]string{"action": "login", "password": "guess"}, fiber.StatusUnauthorized, "Falsches Passwort", true},
		{"wrong password same length", "s3cret", map[string]string{"action": "login", "password": "s3creX"}, fiber.StatusUnauthorized, "Falsches Passwort", true},
		{"password with extra suffix", "s3cret", map[string]string{"action": "login", "password": "s3cret1"}, fiber.StatusUnauthorized, "Falsches Passwort", true},
		{"empty password", "s3cret", map[string]string{"action": "login"}, fiber.StatusBadRequest, "Passwort erforderlich", false},
		{"unconfigured password", "", map[string]string{"action": "login", "password": "anything"}, fiber.StatusInternalServerError, "Server-Fehler", false},
		{"unknown action", "s3cret", map[string]string{"action": "reset"}, fiber.StatusBadRequest, "Ungültige Aktion", false},
		{"missing action", "s3cret", map[string]string{}, fiber.StatusBadRequest, "Ungültige Aktion", false},
		{"invalid json", "s3cret", "{not json", fiber.StatusBadRequest, "Ungültige Aktion", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, slept := newAdminApp(t, tt.password)
			status, body := postJSON(t, app, "/api/admin-login", tt.body, nil)
			if status != tt.status {
				t.Fatalf("status = %d, want %d (body %v)", status, tt.status, body)
			}
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.errMsg, body["error"])
			assert.Empty(t, body["token"])
			if tt.delayed {
				assert.Equal(t, []time.Duration{time.Second}, *slept)
			} else {
				assert.Empty(t, *slept)
			}
		})
	}
}

func TestAdminSession_VerifyWithoutToken(t *testing.T) {
	app, _, _ := newAdminApp(t, "s3cret")

	status, body := postJSON(t, app, "/api/admin-login", map[string]string{"action": "verify"}, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, false, body["valid"])
}

func TestSleepContext_ReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	sleepContext(ctx, time.Minute)
	assert.Less(t, time.Since(start), time.Second)
}
