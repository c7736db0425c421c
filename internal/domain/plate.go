package domain

import (
	"time"

	"github.com/google/uuid"
)

// LicensePlate is a known plate watched by the recognition subsystem.
// Plates are deliberately global, not organization-scoped: the plate service
// must match hits across the whole fleet regardless of which tenant
// registered the plate.
type LicensePlate struct {
	ID        uuid.UUID `json:"-"`
	Number    string    `json:"number"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"-"`
}

// Plate watch list types.
const (
	PlateTypeAllowed = "allowed"
	PlateTypeBlocked = "blocked"
	PlateTypeWatch   = "watch"
)
