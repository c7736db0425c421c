package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// SecurityHeaders sets the baseline hardening headers on every response,
// regardless of route. Media routes layer their cache/CORS policy on top of
// these; nothing removes them.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		// HSTS only makes sense once the connection is already HTTPS,
		// directly or behind a TLS-terminating proxy
		if c.Protocol() == "https" || c.Get("X-Forwarded-Proto") == "https" {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		return c.Next()
	}
}
