package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/camai-video/gateway/internal/domain"
)

// PgxPool is the subset of pgxpool.Pool the repositories use. pgxmock
// implements it, which keeps every repository unit-testable without a
// database.
type PgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EventRepositoryInterface defines operations for event data access
type EventRepositoryInterface interface {
	ListPage(ctx context.Context, q domain.EventQuery) ([]domain.Event, error)
	Count(ctx context.Context, q domain.EventQuery) (int, error)
	Create(ctx context.Context, event *domain.Event) error
}

// PlateRepositoryInterface defines operations for the global plate watch list
type PlateRepositoryInterface interface {
	ListAll(ctx context.Context) ([]domain.LicensePlate, error)
}

// SessionRepositoryInterface defines operations for session lookup
type SessionRepositoryInterface interface {
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
}

// CameraRepositoryInterface defines operations for camera data access
type CameraRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error)
}
