package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Action defines the type of auditable access
type Action string

const (
	ActionMediaServed   Action = "MEDIA_SERVED"
	ActionArchiveServed Action = "ARCHIVE_SERVED"
	ActionPlateSynced   Action = "PLATE_LIST_SYNCED"
	ActionEventIngested Action = "EVENT_INGESTED"
)

// Record represents one access to a protected resource. Footage and plate
// data fall under privacy regulation, so every delivery leaves a trail.
type Record struct {
	ID        uuid.UUID         `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Action    Action            `json:"action"`
	CameraID  string            `json:"camera_id,omitempty"`
	Segment   string            `json:"segment,omitempty"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	IPAddress string            `json:"ip_address,omitempty"`
	UserAgent string            `json:"user_agent,omitempty"`
}

// Trail defines the interface for access auditing
type Trail interface {
	Log(ctx context.Context, record Record) error
}

// SlogTrail implements Trail using slog
type SlogTrail struct {
	logger *slog.Logger
}

// NewSlogTrail creates a new access trail backed by slog
func NewSlogTrail(logger *slog.Logger) *SlogTrail {
	return &SlogTrail{
		logger: logger.With("component", "audit"),
	}
}

// Log records an access
func (t *SlogTrail) Log(ctx context.Context, record Record) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		t.logger.ErrorContext(ctx, "failed to marshal audit record",
			slog.String("error", err.Error()),
			slog.String("action", string(record.Action)),
		)
		return err
	}

	t.logger.InfoContext(ctx, "audit_record",
		slog.String("record_id", record.ID.String()),
		slog.String("action", string(record.Action)),
		slog.String("camera_id", record.CameraID),
		slog.Bool("success", record.Success),
		slog.String("record_data", string(recordJSON)),
	)

	return nil
}

// NoOpTrail is a trail that does nothing (for testing or when audit is disabled)
type NoOpTrail struct{}

// Log does nothing and returns nil
func (t *NoOpTrail) Log(_ context.Context, _ Record) error {
	return nil
}
