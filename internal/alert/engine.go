package alert

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/camai-video/gateway/internal/domain"
)

// Notifier delivers a triggered alert to the owning organization.
type Notifier interface {
	AlertTriggered(orgID uuid.UUID, data map[string]interface{})
}

// Engine matches incoming events against escalation rules. Cooldown state is
// kept per rule and camera so one noisy camera does not silence the others.
type Engine struct {
	rules    []Rule
	notifier Notifier
	logger   *slog.Logger

	mu            sync.Mutex
	lastTriggered map[cooldownKey]time.Time
}

type cooldownKey struct {
	ruleID   uuid.UUID
	cameraID uuid.UUID
}

func NewEngine(rules []Rule, notifier Notifier, logger *slog.Logger) *Engine {
	return &Engine{
		rules:         rules,
		notifier:      notifier,
		logger:        logger,
		lastTriggered: make(map[cooldownKey]time.Time),
	}
}

// EventCreated runs every enabled rule against a freshly recorded event and
// pushes an alert for each match outside its cooldown window.
func (e *Engine) EventCreated(event *domain.Event) {
	if event == nil {
		return
	}

	now := time.Now()

	for _, rule := range e.rules {
		if !rule.Enabled {
			continue
		}

		triggered, results := e.Evaluate(rule, event)
		if !triggered {
			continue
		}

		if !e.shouldTrigger(rule, event.CameraID, now) {
			continue
		}

		e.logger.Info("alert triggered",
			slog.String("rule", rule.Name),
			slog.String("event_id", event.ID.String()),
			slog.String("camera_id", event.CameraID.String()),
		)

		e.notifier.AlertTriggered(event.OrganizationID, results)
	}
}

// Evaluate reports whether the rule matches the event, with the per-check
// outcomes for the alert payload.
func (e *Engine) Evaluate(rule Rule, event *domain.Event) (bool, map[string]interface{}) {
	typeMatch := rule.EventType == "" || rule.EventType == event.Type
	severityMatch := Severity(event.Severity).rank() >= rule.MinSeverity.rank()
	plateMatch := e.plateMatch(rule, event)

	triggered := typeMatch && severityMatch && plateMatch

	results := map[string]interface{}{
		"rule":      rule.Name,
		"triggered": triggered,
		"checks": map[string]bool{
			"type":     typeMatch,
			"severity": severityMatch,
			"plate":    plateMatch,
		},
		"event_id":  event.ID.String(),
		"camera_id": event.CameraID.String(),
		"type":      event.Type,
		"severity":  event.Severity,
	}

	return triggered, results
}

func (e *Engine) plateMatch(rule Rule, event *domain.Event) bool {
	if len(rule.PlateTypes) == 0 {
		return true
	}

	plateType, _ := event.Payload["plateType"].(string)
	for _, want := range rule.PlateTypes {
		if plateType == want {
			return true
		}
	}
	return false
}

func (e *Engine) shouldTrigger(rule Rule, cameraID uuid.UUID, now time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := cooldownKey{ruleID: rule.ID, cameraID: cameraID}

	last, ok := e.lastTriggered[key]
	if ok {
		cooldown := time.Duration(rule.CooldownSeconds) * time.Second
		if now.Before(last.Add(cooldown)) {
			return false
		}
	}

	e.lastTriggered[key] = now
	return true
}
