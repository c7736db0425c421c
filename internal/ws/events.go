package ws

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageEventDetected  MessageType = "event.detected"
	MessageCameraStatus   MessageType = "camera.status"
	MessageAlertTriggered MessageType = "alert.triggered"
)

// Message is a live update pushed to dashboard clients of one organization.
type Message struct {
	OrganizationID uuid.UUID   `json:"-"`
	Type           MessageType `json:"type"`
	Data           interface{} `json:"data"`
	Timestamp      time.Time   `json:"timestamp"`
}
