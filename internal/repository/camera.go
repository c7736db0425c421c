package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/camai-video/gateway/internal/domain"
)

type CameraRepository struct {
	pool PgxPool
}

func NewCameraRepository(pool PgxPool) *CameraRepository {
	return &CameraRepository{pool: pool}
}

func (r *CameraRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Camera, error) {
	query := `
		SELECT id, organization_id, name, location, stream_url, is_active, created_at, updated_at
		FROM cameras
		WHERE id = $1
	`

	var camera domain.Camera
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&camera.ID,
		&camera.OrganizationID,
		&camera.Name,
		&camera.Location,
		&camera.StreamURL,
		&camera.IsActive,
		&camera.CreatedAt,
		&camera.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCameraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get camera by id: %w", err)
	}

	return &camera, nil
}
