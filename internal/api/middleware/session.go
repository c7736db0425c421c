package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/camai-video/gateway/internal/domain"
)

const (
	// LocalPrincipal is the key to retrieve the resolved principal from context
	LocalPrincipal = "principal"
)

// SessionRepository interface for session lookup
type SessionRepository interface {
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
}

// Session resolves the caller's principal from the session cookie. A request
// without a resolvable, unexpired session is an authentication failure,
// never an anonymous tenant.
func Session(cookieName string, sessions SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return domain.ErrUnauthorized
		}

		session, err := sessions.GetByTokenHash(c.Context(), hashSessionToken(token))
		if err != nil {
			// Not found and store errors look identical to the caller;
			// don't reveal whether the token exists
			return domain.ErrUnauthorized
		}

		if session.Expired(time.Now()) {
			return domain.ErrUnauthorized
		}

		c.Locals(LocalPrincipal, session.Principal())

		return c.Next()
	}
}

// hashSessionToken generates the SHA-256 hash stored for a session token
func hashSessionToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// GetPrincipal retrieves the resolved principal from Fiber context
func GetPrincipal(c *fiber.Ctx) (domain.Principal, error) {
	principal, ok := c.Locals(LocalPrincipal).(domain.Principal)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return principal, nil
}
