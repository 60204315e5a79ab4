package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessage(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/contact", map[string]interface{}{
		"name":    "Asha Raman",
		"email":   "asha@example.com",
		"message": "Do you ship overseas?",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, app.messages.messages, 1)
	msg := app.messages.messages[1]
	assert.Equal(t, "asha@example.com", msg.Email)
	assert.False(t, msg.Read, "new messages start unread")
}

func TestCreateMessageInvalidEmail(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/contact", map[string]interface{}{
		"name":    "Asha Raman",
		"email":   "not-an-email",
		"message": "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, app.messages.messages)
}

func TestMarkMessageReadIsOneWayAndIdempotent(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/v1/contact", map[string]interface{}{
		"name":    "Asha Raman",
		"email":   "asha@example.com",
		"message": "hello",
	})

	w := app.do(t, http.MethodPatch, "/v1/admin/messages/1/read", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, app.messages.messages[1].Read)

	// Repeating the call succeeds and changes nothing.
	w = app.do(t, http.MethodPatch, "/v1/admin/messages/1/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, app.messages.messages[1].Read)
}

func TestMarkMessageReadUnknownID(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPatch, "/v1/admin/messages/99/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(t, http.MethodPatch, "/v1/admin/messages/abc/read", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/v1/contact", map[string]interface{}{
		"name":    "Asha Raman",
		"email":   "asha@example.com",
		"message": "hello",
	})

	w := app.do(t, http.MethodGet, "/v1/admin/dashboard-stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["unreadMessages"])
	assert.Equal(t, float64(0), body["pendingOrders"])
}

func TestAdminLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/admin/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])

	w = app.do(t, http.MethodPost, "/v1/admin/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
