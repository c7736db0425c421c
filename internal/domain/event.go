package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is a single detection recorded for a camera. Rows are append-only:
// once written they are never updated, only read back for the dashboard.
type Event struct {
	ID             uuid.UUID      `json:"id"`
	OrganizationID uuid.UUID      `json:"-"`
	CameraID       uuid.UUID      `json:"cameraId"`
	Type           string         `json:"type"`
	Severity       string         `json:"severity"`
	Payload        map[string]any `json:"payload,omitempty"`
	CreatedAt      time.Time      `json:"timestamp"`

	// Camera carries the display projection joined at read time.
	Camera *CameraInfo `json:"camera,omitempty"`
}

// Known event types produced by the detection services.
const (
	EventTypeMotion     = "motion"
	EventTypePlate      = "plate"
	EventTypeAttendance = "attendance"
	EventTypeFire       = "fire"
)

// CameraInfo is the reduced camera projection attached to listed events.
type CameraInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// EventQuery is the predicate and window for one event listing. It is built
// fresh per request; OrganizationID always comes from the authenticated
// principal, never from caller input.
type EventQuery struct {
	OrganizationID uuid.UUID
	CameraID       string
	Type           string
	Severity       string
	Page           int
	Limit          int
}

// Offset is the number of rows skipped before the page window.
func (q EventQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// EventPage is one page of the event log plus its pagination envelope.
type EventPage struct {
	Events     []Event    `json:"events"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the envelope for a page window. TotalPages is
// ceil(total/limit); a non-positive limit yields zero pages rather than
// dividing by zero.
func NewPagination(page, limit, total int) Pagination {
	p := Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	}
	if limit >= 1 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}
