package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/camai-video/gateway/internal/audit"
	"github.com/camai-video/gateway/internal/domain"
	"github.com/camai-video/gateway/internal/media"
)

// MediaHandler streams segment bytes under the delivery policy matching the
// route shape.
type MediaHandler struct {
	stores *media.Stores
	trail  audit.Trail
	logger *slog.Logger
}

func NewMediaHandler(stores *media.Stores, trail audit.Trail, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		stores: stores,
		trail:  trail,
		logger: logger,
	}
}

// Serve GET /cameras/:id/stream/* and /cameras/:id/archive/* - media bytes
func (h *MediaHandler) Serve(c *fiber.Ctx) error {
	class := media.Classify(c.Path())

	policy := class.Policy()
	if policy == nil {
		return domain.ErrNotFound
	}

	// Policy headers go on before the first byte is streamed
	c.Set(fiber.HeaderCacheControl, policy.CacheControl)
	c.Set(fiber.HeaderAccessControlAllowOrigin, policy.AllowOrigin)

	store := h.stores.Archive
	if class == media.RouteLive {
		store = h.stores.Live
	}

	cameraID := c.Params("id")
	name := c.Params("*")

	action := audit.ActionArchiveServed
	if class == media.RouteLive {
		action = audit.ActionMediaServed
	}

	segment, err := store.Open(c.Context(), cameraID, name)
	if err != nil {
		_ = h.trail.Log(c.Context(), audit.Record{
			Action:    action,
			CameraID:  cameraID,
			Segment:   name,
			Success:   false,
			Error:     err.Error(),
			IPAddress: c.IP(),
		})
		return err
	}

	_ = h.trail.Log(c.Context(), audit.Record{
		Action:    action,
		CameraID:  cameraID,
		Segment:   name,
		Success:   true,
		IPAddress: c.IP(),
	})

	c.Set(fiber.HeaderContentType, segmentContentType(name))

	return c.SendStream(segment)
}

func segmentContentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".m3u8"):
		return "application/vnd.apple.mpegurl"
	case strings.HasSuffix(name, ".ts"):
		return "video/mp2t"
	case strings.HasSuffix(name, ".mp4"):
		return "video/mp4"
	default:
		return "application/octet-stream"
	}
}
