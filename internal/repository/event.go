package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/camai-video/gateway/internal/domain"
)

type EventRepository struct {
	pool PgxPool
}

func NewEventRepository(pool PgxPool) *EventRepository {
	return &EventRepository{pool: pool}
}

// buildEventPredicate turns an EventQuery into a WHERE clause and its
// arguments. The organization clause always comes first; optional filters are
// appended only when set, in a fixed order, so ListPage and Count derived from
// the same query run against an identical predicate.
func buildEventPredicate(q domain.EventQuery) (string, []any) {
	clauses := []string{"e.organization_id = $1"}
	args := []any{q.OrganizationID}

	if q.CameraID != "" {
		args = append(args, q.CameraID)
		clauses = append(clauses, fmt.Sprintf("e.camera_id = $%d", len(args)))
	}
	if q.Type != "" {
		args = append(args, q.Type)
		clauses = append(clauses, fmt.Sprintf("e.type = $%d", len(args)))
	}
	if q.Severity != "" {
		args = append(args, q.Severity)
		clauses = append(clauses, fmt.Sprintf("e.severity = $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

// ListPage returns one page of matching events, newest first, each enriched
// with the owning camera's display projection. A camera row deleted after the
// event was written still lists with an empty projection.
func (r *EventRepository) ListPage(ctx context.Context, q domain.EventQuery) ([]domain.Event, error) {
	where, args := buildEventPredicate(q)

	query := fmt.Sprintf(`
		SELECT e.id, e.organization_id, e.camera_id, e.type, e.severity, e.payload, e.created_at,
		       COALESCE(c.name, ''), COALESCE(c.location, '')
		FROM events e
		LEFT JOIN cameras c ON c.id = e.camera_id
		WHERE %s
		ORDER BY e.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, q.Limit, q.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0, q.Limit)
	for rows.Next() {
		var event domain.Event
		var camera domain.CameraInfo

		if err := rows.Scan(
			&event.ID,
			&event.OrganizationID,
			&event.CameraID,
			&event.Type,
			&event.Severity,
			&event.Payload,
			&event.CreatedAt,
			&camera.Name,
			&camera.Location,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		event.Camera = &camera
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}

// Count returns the total number of rows matching the query's predicate,
// ignoring the page window.
func (r *EventRepository) Count(ctx context.Context, q domain.EventQuery) (int, error) {
	where, args := buildEventPredicate(q)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM events e WHERE %s`, where)

	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}

	return total, nil
}

// Create appends a new event row.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, organization_id, camera_id, type, severity, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Payload == nil {
		event.Payload = map[string]any{}
	}

	err := r.pool.QueryRow(ctx, query,
		event.ID,
		event.OrganizationID,
		event.CameraID,
		event.Type,
		event.Severity,
		event.Payload,
	).Scan(&event.CreatedAt)

	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}
