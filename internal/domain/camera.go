package domain

import (
	"time"

	"github.com/google/uuid"
)

// Camera is a registered video source. Events reference cameras but do not
// own them; the camera row resolves the owning organization on ingest.
type Camera struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"-"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	StreamURL      string    `json:"stream_url"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Info returns the reduced projection attached to listed events.
func (c *Camera) Info() *CameraInfo {
	return &CameraInfo{Name: c.Name, Location: c.Location}
}
