package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/camai-video/gateway/internal/domain"
)

// MockEventRepo is a mock implementation of EventRepositoryInterface
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) ListPage(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepo) Count(ctx context.Context, q domain.EventQuery) (int, error) {
	args := m.Called(ctx, q)
	return args.Int(0), args.Error(1)
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockCameraRepo is a mock implementation of CameraRepositoryInterface
type MockCameraRepo struct {
	mock.Mock
}

func (m *MockCameraRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}

// MockNotifier records broadcast events
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EventCreated(event *domain.Event) {
	m.Called(event)
}

func makeEvents(orgID uuid.UUID, n int) []domain.Event {
	events := make([]domain.Event, n)
	for i := range events {
		events[i] = domain.Event{
			ID:             uuid.New(),
			OrganizationID: orgID,
			CameraID:       uuid.New(),
			Type:           domain.EventTypeMotion,
			Severity:       "info",
			CreatedAt:      time.Now().Add(-time.Duration(i) * time.Second),
			Camera:         &domain.CameraInfo{Name: "Gate 1", Location: "North"},
		}
	}
	return events
}

func TestEventService_List(t *testing.T) {
	principal := domain.Principal{UserID: uuid.New(), OrganizationID: uuid.New()}

	t.Run("page two of twenty-five events", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := NewEventService(eventRepo, new(MockCameraRepo), nil)

		wantQuery := domain.EventQuery{
			OrganizationID: principal.OrganizationID,
			Page:           2,
			Limit:          20,
		}
		pageEvents := makeEvents(principal.OrganizationID, 5)

		eventRepo.On("ListPage", mock.Anything, wantQuery).Return(pageEvents, nil)
		eventRepo.On("Count", mock.Anything, wantQuery).Return(25, nil)

		page, err := svc.List(context.Background(), principal, EventQueryParams{Page: "2", Limit: "20"})

		require.NoError(t, err)
		assert.Len(t, page.Events, 5)
		assert.Equal(t, domain.Pagination{Page: 2, Limit: 20, Total: 25, TotalPages: 2}, page.Pagination)
		for _, e := range page.Events {
			assert.Equal(t, principal.OrganizationID, e.OrganizationID)
		}
		eventRepo.AssertExpectations(t)
	})

	t.Run("both repository legs receive the same query", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := NewEventService(eventRepo, new(MockCameraRepo), nil)

		var listQuery, countQuery domain.EventQuery
		eventRepo.On("ListPage", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { listQuery = args.Get(1).(domain.EventQuery) }).
			Return([]domain.Event{}, nil)
		eventRepo.On("Count", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { countQuery = args.Get(1).(domain.EventQuery) }).
			Return(0, nil)

		_, err := svc.List(context.Background(), principal, EventQueryParams{
			Page: "3", Limit: "10", CameraID: "cam-1", Type: "plate", Severity: "high",
		})

		require.NoError(t, err)
		assert.Equal(t, listQuery, countQuery)
	})

	t.Run("empty log", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := NewEventService(eventRepo, new(MockCameraRepo), nil)

		eventRepo.On("ListPage", mock.Anything, mock.Anything).Return([]domain.Event{}, nil)
		eventRepo.On("Count", mock.Anything, mock.Anything).Return(0, nil)

		page, err := svc.List(context.Background(), principal, EventQueryParams{})

		require.NoError(t, err)
		assert.Empty(t, page.Events)
		assert.Equal(t, 0, page.Pagination.TotalPages)
	})

	t.Run("page read failure fails the request", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := NewEventService(eventRepo, new(MockCameraRepo), nil)

		eventRepo.On("ListPage", mock.Anything, mock.Anything).Return(nil, errors.New("read timeout"))
		eventRepo.On("Count", mock.Anything, mock.Anything).Return(25, nil).Maybe()

		page, err := svc.List(context.Background(), principal, EventQueryParams{})

		assert.Nil(t, page)
		var appErr *domain.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 500, appErr.StatusCode)
	})

	t.Run("count failure fails the request", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		svc := NewEventService(eventRepo, new(MockCameraRepo), nil)

		eventRepo.On("ListPage", mock.Anything, mock.Anything).Return([]domain.Event{}, nil).Maybe()
		eventRepo.On("Count", mock.Anything, mock.Anything).Return(0, errors.New("count timeout"))

		page, err := svc.List(context.Background(), principal, EventQueryParams{})

		assert.Nil(t, page)
		assert.Error(t, err)
	})
}

func TestEventService_Ingest(t *testing.T) {
	cameraID := uuid.New()
	orgID := uuid.New()

	camera := &domain.Camera{
		ID:             cameraID,
		OrganizationID: orgID,
		Name:           "Gate 1",
		Location:       "North entrance",
	}

	t.Run("resolves organization from camera row", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		cameraRepo := new(MockCameraRepo)
		notifier := new(MockNotifier)
		svc := NewEventService(eventRepo, cameraRepo, notifier)

		cameraRepo.On("GetByID", mock.Anything, cameraID).Return(camera, nil)
		eventRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
			return e.OrganizationID == orgID && e.CameraID == cameraID
		})).Return(nil)
		notifier.On("EventCreated", mock.Anything).Once()

		event, err := svc.Ingest(context.Background(), EventIngest{
			CameraID: cameraID,
			Type:     domain.EventTypePlate,
			Severity: "high",
			Payload:  map[string]any{"plateNumber": "A123BC77"},
		})

		require.NoError(t, err)
		assert.Equal(t, orgID, event.OrganizationID)
		assert.Equal(t, "Gate 1", event.Camera.Name)
		notifier.AssertExpectations(t)
	})

	t.Run("defaults severity", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		cameraRepo := new(MockCameraRepo)
		svc := NewEventService(eventRepo, cameraRepo, nil)

		cameraRepo.On("GetByID", mock.Anything, cameraID).Return(camera, nil)
		eventRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
			return e.Severity == "info"
		})).Return(nil)

		_, err := svc.Ingest(context.Background(), EventIngest{
			CameraID: cameraID,
			Type:     domain.EventTypeMotion,
		})

		require.NoError(t, err)
		eventRepo.AssertExpectations(t)
	})

	t.Run("unknown camera rejects without writing", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		cameraRepo := new(MockCameraRepo)
		svc := NewEventService(eventRepo, cameraRepo, nil)

		cameraRepo.On("GetByID", mock.Anything, cameraID).Return(nil, domain.ErrCameraNotFound)

		event, err := svc.Ingest(context.Background(), EventIngest{
			CameraID: cameraID,
			Type:     domain.EventTypeMotion,
		})

		assert.Nil(t, event)
		assert.ErrorIs(t, err, domain.ErrCameraNotFound)
		eventRepo.AssertNotCalled(t, "Create")
	})

	t.Run("missing type rejected", func(t *testing.T) {
		eventRepo := new(MockEventRepo)
		cameraRepo := new(MockCameraRepo)
		svc := NewEventService(eventRepo, cameraRepo, nil)

		event, err := svc.Ingest(context.Background(), EventIngest{CameraID: cameraID})

		assert.Nil(t, event)
		assert.ErrorIs(t, err, domain.ErrValidationFailed)
		cameraRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestNotifiers_FanOut(t *testing.T) {
	first := new(MockNotifier)
	second := new(MockNotifier)

	event := &domain.Event{ID: uuid.New()}

	first.On("EventCreated", event).Once()
	second.On("EventCreated", event).Once()

	Notifiers{first, second}.EventCreated(event)

	first.AssertExpectations(t)
	second.AssertExpectations(t)
}
