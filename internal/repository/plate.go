package repository

import (
	"context"
	"fmt"

	"github.com/camai-video/gateway/internal/domain"
)

type PlateRepository struct {
	pool PgxPool
}

func NewPlateRepository(pool PgxPool) *PlateRepository {
	return &PlateRepository{pool: pool}
}

// ListAll returns the complete plate watch list across every organization.
// This is the one intentionally tenant-unscoped read in the system: the plate
// recognition service matches hits against the full fleet.
func (r *PlateRepository) ListAll(ctx context.Context) ([]domain.LicensePlate, error) {
	query := `
		SELECT id, number, type, created_at
		FROM license_plates
		ORDER BY number
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list plates: %w", err)
	}
	defer rows.Close()

	plates := []domain.LicensePlate{}
	for rows.Next() {
		var plate domain.LicensePlate
		if err := rows.Scan(&plate.ID, &plate.Number, &plate.Type, &plate.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan plate: %w", err)
		}
		plates = append(plates, plate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plates: %w", err)
	}

	return plates, nil
}
