package log

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(conf *LoggerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(NewFiberLogger(conf))

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString(RequestID(c))
	})

	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "nothing here")
	})

	return app
}

func TestRequestID(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	id := resp.Header.Get(HeaderRequestID)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc")

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Header.Get(HeaderRequestID))
}

func TestLoggerKeepsError(t *testing.T) {
	app := newTestApp(&LoggerConfig{Name: "test", DoMetrics: true, LogErrorsOnly: true})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
}
