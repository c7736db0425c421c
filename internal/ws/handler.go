package ws

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/camai-video/gateway/internal/api/middleware"
	"github.com/camai-video/gateway/internal/domain"
)

// Handler upgrades an already-authenticated request to a live feed
// connection. The session middleware runs first, so the principal is taken
// from locals; a connection without one is dropped.
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		value := c.Locals(middleware.LocalPrincipal)
		principal, ok := value.(domain.Principal)
		if !ok {
			_ = c.Close()
			return
		}

		client := &Client{
			hub:   hub,
			conn:  c,
			orgID: principal.OrganizationID,
			send:  make(chan []byte, 256),
		}

		hub.register <- client

		go client.WritePump()
		client.ReadPump()
	})
}

func UpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
