package handler

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/camai-video/gateway/internal/audit"
	"github.com/camai-video/gateway/internal/domain"
	"github.com/camai-video/gateway/internal/service"
)

// PlateStore interface for the global plate watch list
type PlateStore interface {
	ListAll(ctx context.Context) ([]domain.LicensePlate, error)
}

// EventIngester interface for recording pushed detection events
type EventIngester interface {
	Ingest(ctx context.Context, in service.EventIngest) (*domain.Event, error)
}

// PlatesHandler serves the internal recognition-service surface. Both routes
// sit behind the trust-header gate, never behind end-user sessions.
type PlatesHandler struct {
	plates   PlateStore
	ingester EventIngester
	trail    audit.Trail
	logger   *slog.Logger
}

func NewPlatesHandler(plates PlateStore, ingester EventIngester, trail audit.Trail, logger *slog.Logger) *PlatesHandler {
	return &PlatesHandler{
		plates:   plates,
		ingester: ingester,
		trail:    trail,
		logger:   logger,
	}
}

// Sync GET /internal/plates-sync - the full plate watch list across every
// organization, in one response. The plate service diffs client-side; at the
// expected cardinality pagination would cost more than it saves.
func (h *PlatesHandler) Sync(c *fiber.Ctx) error {
	plates, err := h.plates.ListAll(c.Context())
	if err != nil {
		return domain.ErrInternal.WithError(err)
	}

	_ = h.trail.Log(c.Context(), audit.Record{
		Action:    audit.ActionPlateSynced,
		Success:   true,
		Metadata:  map[string]string{"plates": strconv.Itoa(len(plates))},
		IPAddress: c.IP(),
	})

	return c.JSON(plates)
}

// IngestRequest is a detection result pushed by an internal service.
type IngestRequest struct {
	CameraID string         `json:"cameraId"`
	Type     string         `json:"type"`
	Severity string         `json:"severity"`
	Payload  map[string]any `json:"payload"`
}

// IngestDetection POST /internal/events - record a detection event
func (h *PlatesHandler) IngestDetection(c *fiber.Ctx) error {
	var req IngestRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ErrBadRequest.WithError(err)
	}

	cameraID, err := uuid.Parse(req.CameraID)
	if err != nil {
		return domain.ErrValidationFailed.WithError(errors.New("cameraId must be a valid UUID"))
	}

	event, err := h.ingester.Ingest(c.Context(), service.EventIngest{
		CameraID: cameraID,
		Type:     req.Type,
		Severity: req.Severity,
		Payload:  req.Payload,
	})
	if err != nil {
		return err
	}

	h.logger.Info("detection event recorded",
		slog.String("event_id", event.ID.String()),
		slog.String("camera_id", cameraID.String()),
		slog.String("type", event.Type),
	)

	_ = h.trail.Log(c.Context(), audit.Record{
		Action:    audit.ActionEventIngested,
		CameraID:  cameraID.String(),
		Success:   true,
		Metadata:  map[string]string{"type": event.Type, "severity": event.Severity},
		IPAddress: c.IP(),
	})

	return c.Status(fiber.StatusCreated).JSON(event)
}
