package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/camai-video/gateway/internal/domain"
)

type EventRepositoryInterface interface {
	ListPage(ctx context.Context, q domain.EventQuery) ([]domain.Event, error)
	Count(ctx context.Context, q domain.EventQuery) (int, error)
	Create(ctx context.Context, event *domain.Event) error
}

type CameraRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error)
}

// EventNotifier receives freshly ingested events for live delivery to
// connected dashboards.
type EventNotifier interface {
	EventCreated(event *domain.Event)
}

// Notifiers fans one event out to several notifiers, e.g. the live feed hub
// and the alert engine.
type Notifiers []EventNotifier

func (n Notifiers) EventCreated(event *domain.Event) {
	for _, notifier := range n {
		notifier.EventCreated(event)
	}
}

type EventService struct {
	events   EventRepositoryInterface
	cameras  CameraRepositoryInterface
	notifier EventNotifier
}

func NewEventService(events EventRepositoryInterface, cameras CameraRepositoryInterface, notifier EventNotifier) *EventService {
	return &EventService{
		events:   events,
		cameras:  cameras,
		notifier: notifier,
	}
}

// List returns one page of the caller's event log. The page read and the
// total count run concurrently against the same planned query; the response
// waits for both, and either leg failing fails the request. No transaction
// wraps the pair; a count that drifts by a few rows under concurrent ingest
// is acceptable for pagination display.
func (s *EventService) List(ctx context.Context, principal domain.Principal, raw EventQueryParams) (*domain.EventPage, error) {
	query := BuildEventQuery(raw, principal)

	var (
		events []domain.Event
		total  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.events.ListPage(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.events.Count(gctx, query)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	return &domain.EventPage{
		Events:     events,
		Pagination: domain.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// EventIngest is a detection result pushed by an internal service.
type EventIngest struct {
	CameraID uuid.UUID
	Type     string
	Severity string
	Payload  map[string]any
}

// Ingest records a detection event. The owning organization is resolved from
// the camera row, never taken from the caller, so a misconfigured detection
// service cannot write into another tenant's log.
func (s *EventService) Ingest(ctx context.Context, in EventIngest) (*domain.Event, error) {
	if in.Type == "" {
		return nil, domain.ErrValidationFailed
	}

	camera, err := s.cameras.GetByID(ctx, in.CameraID)
	if err != nil {
		return nil, err
	}

	severity := in.Severity
	if severity == "" {
		severity = "info"
	}

	event := &domain.Event{
		OrganizationID: camera.OrganizationID,
		CameraID:       camera.ID,
		Type:           in.Type,
		Severity:       severity,
		Payload:        in.Payload,
		Camera:         camera.Info(),
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, domain.ErrInternal.WithError(err)
	}

	if s.notifier != nil {
		s.notifier.EventCreated(event)
	}

	return event, nil
}
