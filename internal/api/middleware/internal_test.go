package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/camai-video/gateway/internal/domain"
)

func TestPlateSync(t *testing.T) {
	const secret = "internal-sync-secret"

	tests := []struct {
		name           string
		header         string
		headerSet      bool
		expectedStatus int
	}{
		{
			name:           "correct secret",
			header:         secret,
			headerSet:      true,
			expectedStatus: 200,
		},
		{
			name:           "missing header",
			headerSet:      false,
			expectedStatus: 401,
		},
		{
			name:           "wrong secret",
			header:         "guessed-secret",
			headerSet:      true,
			expectedStatus: 401,
		},
		{
			name:           "empty header value",
			header:         "",
			headerSet:      true,
			expectedStatus: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()

			app.Use(func(c *fiber.Ctx) error {
				err := c.Next()
				if err != nil {
					if appErr, ok := err.(*domain.AppError); ok {
						return c.Status(appErr.StatusCode).JSON(appErr)
					}
					return c.Status(500).SendString(err.Error())
				}
				return nil
			})

			app.Use(PlateSync(secret))

			app.Get("/internal/plates-sync", func(c *fiber.Ctx) error {
				return c.SendString("OK")
			})

			req := httptest.NewRequest("GET", "/internal/plates-sync", nil)
			if tt.headerSet {
				req.Header.Set(PlateSyncHeader, tt.header)
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

// The trust gate is independent of session state: a valid session does not
// open it, and no session is needed when the header is right.
func TestPlateSync_IgnoresSessions(t *testing.T) {
	const secret = "internal-sync-secret"

	app := fiber.New()
	app.Use(PlateSync(secret))
	app.Get("/internal/plates-sync", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	req := httptest.NewRequest("GET", "/internal/plates-sync", nil)
	req.Header.Set(PlateSyncHeader, secret)
	req.Header.Set("Cookie", "camai_session=some-user-session")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
