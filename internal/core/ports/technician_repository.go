package ports

import (
	"context"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/technician"
)

// TechnicianRepository defines the persistence contract for technician
// aggregates.
type TechnicianRepository interface {
	// Add persists a new technician aggregate to storage.
	Add(ctx context.Context, aggregate *technician.Technician) error

	// Update persists changes to an existing technician aggregate.
	// The write is a compare-and-set on the aggregate's version: two
	// concurrent attempts to claim the same technician cannot both
	// succeed, the loser receives a ConflictError.
	Update(ctx context.Context, aggregate *technician.Technician) error

	// Get retrieves a technician by reference id within the given tenant.
	// Returns ObjectNotFound when the technician is absent or owned by a
	// different tenant.
	Get(ctx context.Context, orgID kernel.OrgID, id kernel.UUID) (*technician.Technician, error)

	// GetAllBusy retrieves every technician currently marked busy, across
	// all tenants. This is a platform-internal maintenance path used only
	// by the work-status reconciliation job; workflow operations must use
	// the tenant-scoped methods.
	GetAllBusy(ctx context.Context) ([]*technician.Technician, error)
}
