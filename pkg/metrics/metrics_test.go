package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	reg := New()

	app := fiber.New()
	app.Use(reg.Middleware())
	app.Get("/metrics", reg.Handler())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	app.Post("/replay", func(c *fiber.Ctx) error {
		reg.ObserveReplay(c)
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = app.Test(httptest.NewRequest(http.MethodPost, "/replay", nil))
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `auction_http_request_duration_seconds_count{method="GET",route="/ping",status="200"} 1`)
	assert.Contains(t, string(body), "auction_idempotent_replays_total 1")
}
