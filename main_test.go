package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppServesLiveness(t *testing.T) {
	os.Setenv("DATABASE_DSN", "file:main_test?mode=memory&cache=shared")
	defer os.Unsetenv("DATABASE_DSN")

	app, err := NewApp()
	assert.NoError(t, err)
	defer app.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Fiber.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"message": "Ecommerce API is running"}`, string(body))
}

func TestNewAppWiresRoutes(t *testing.T) {
	os.Setenv("DATABASE_DSN", "file:main_test_routes?mode=memory&cache=shared")
	defer os.Unsetenv("DATABASE_DSN")

	app, err := NewApp()
	assert.NoError(t, err)
	defer app.Close()

	payload, _ := json.Marshal(map[string]string{
		"username": "smoketest",
		"email":    "smoke@example.com",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Fiber.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	resp, err = app.Fiber.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
