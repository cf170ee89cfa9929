package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFiberServer_Health(t *testing.T) {
	ready := false
	app := InitFiberServer("test-app", Options{
		Ready: func(*fiber.Ctx) bool { return ready },
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/manage/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/manage/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	ready = true
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/manage/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorHandler(t *testing.T) {
	app := InitFiberServer("test-app", Options{})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("unexpected")
	})

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/teapot", http.StatusTeapot, "short and stout"},
		{"/plain", http.StatusInternalServerError, "boom"},
		{"/panic", http.StatusInternalServerError, "unexpected"},
		{"/missing", http.StatusNotFound, "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, tt.message, payload["error"])
		})
	}
}
