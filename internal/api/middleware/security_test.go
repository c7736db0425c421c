package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(SecurityHeaders())
	app.Get("/any", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	t.Run("baseline headers on every response", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/any", nil))
		require.NoError(t, err)

		assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
		assert.Equal(t, "strict-origin-when-cross-origin", resp.Header.Get("Referrer-Policy"))
		assert.Equal(t, "camera=(), microphone=(), geolocation=()", resp.Header.Get("Permissions-Policy"))
	})

	t.Run("no HSTS over plain http", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/any", nil))
		require.NoError(t, err)

		assert.Empty(t, resp.Header.Get("Strict-Transport-Security"))
	})

	t.Run("HSTS behind TLS-terminating proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/any", nil)
		req.Header.Set("X-Forwarded-Proto", "https")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "max-age=31536000; includeSubDomains", resp.Header.Get("Strict-Transport-Security"))
	})
}
