package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMiddlewares_RecoversPanic(t *testing.T) {
	app := fiber.New()
	SetupMiddlewares(app)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGenerateRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Post("/gen", GenerateRateLimiter(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	var last int
	for i := 0; i < 11; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/gen", nil))
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}
