package alert

import (
	"github.com/google/uuid"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// Rule decides which incoming events escalate into dashboard alerts.
// EventType empty matches any type; PlateTypes empty matches any plate.
type Rule struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	EventType       string    `json:"event_type,omitempty"`
	MinSeverity     Severity  `json:"min_severity"`
	PlateTypes      []string  `json:"plate_types,omitempty"`
	CooldownSeconds int       `json:"cooldown_seconds"`
	Enabled         bool      `json:"enabled"`
}

// DefaultRules covers the escalations the dashboard ships with: blacklisted
// plates and fire detections always alert, anything critical alerts once per
// cooldown window.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:              uuid.New(),
			Name:            "blacklisted plate",
			EventType:       "plate",
			MinSeverity:     SeverityInfo,
			PlateTypes:      []string{"blacklist"},
			CooldownSeconds: 30,
			Enabled:         true,
		},
		{
			ID:              uuid.New(),
			Name:            "fire detected",
			EventType:       "fire",
			MinSeverity:     SeverityInfo,
			CooldownSeconds: 60,
			Enabled:         true,
		},
		{
			ID:              uuid.New(),
			Name:            "critical event",
			MinSeverity:     SeverityCritical,
			CooldownSeconds: 60,
			Enabled:         true,
		},
	}
}
