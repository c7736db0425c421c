package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/camai-video/gateway/internal/api/middleware"
	"github.com/camai-video/gateway/internal/domain"
	"github.com/camai-video/gateway/internal/service"
)

// EventLister interface for the event service
type EventLister interface {
	List(ctx context.Context, principal domain.Principal, raw service.EventQueryParams) (*domain.EventPage, error)
}

// EventsHandler handles event log queries
type EventsHandler struct {
	service EventLister
	logger  *slog.Logger
}

func NewEventsHandler(service EventLister, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		service: service,
		logger:  logger,
	}
}

// List GET /v1/events - one page of the caller's event log
func (h *EventsHandler) List(c *fiber.Ctx) error {
	principal, err := middleware.GetPrincipal(c)
	if err != nil {
		return err
	}

	raw := service.EventQueryParams{
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
		CameraID: c.Query("cameraId"),
		Type:     c.Query("type"),
		Severity: c.Query("severity"),
	}

	page, err := h.service.List(c.Context(), principal, raw)
	if err != nil {
		return err
	}

	return c.JSON(page)
}
