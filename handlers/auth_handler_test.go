package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"username": "anna",
		"email":    "anna@example.com",
		"password": "secret123",
		"role":     "student",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "anna", body["username"])
	assert.Equal(t, "student", body["role"])

	resp = doRequest(t, app, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"username": "anna",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]interface{}{
		"username": "anna",
		"email":    "anna@example.com",
		"password": "secret123",
		"role":     "student",
	}
	resp := doRequest(t, app, "POST", "/api/v1/auth/register", "", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload["email"] = "other@example.com"
	resp = doRequest(t, app, "POST", "/api/v1/auth/register", "", payload)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"username": "sneaky",
		"email":    "sneaky@example.com",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"username": "anna",
		"email":    "anna@example.com",
		"password": "secret123",
		"role":     "student",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"username": "anna",
		"password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, "GET", "/api/v1/profile", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
