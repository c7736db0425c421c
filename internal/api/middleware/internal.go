package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/camai-video/gateway/internal/domain"
)

// PlateSyncHeader carries the shared secret that identifies the internal
// recognition services. This is a separate trust boundary from end-user
// sessions: the caller is a backend service, not a browser.
const PlateSyncHeader = "X-Plate-Sync"

// PlateSync gates the internal sync surface on the trust header. Missing or
// mismatched values get the same 401 as an absent session would elsewhere.
func PlateSync(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(PlateSyncHeader)
		if header == "" {
			return domain.ErrUnauthorized
		}

		if subtle.ConstantTimeCompare([]byte(header), []byte(secret)) != 1 {
			return domain.ErrUnauthorized
		}

		return c.Next()
	}
}
