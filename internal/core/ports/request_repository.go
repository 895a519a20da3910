package ports

import (
	"context"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/servicerequest"
)

// ServiceRequestRepository defines the persistence contract for
// service-request aggregates.
type ServiceRequestRepository interface {
	// Add persists a new service-request aggregate to storage.
	Add(ctx context.Context, aggregate *servicerequest.Request) error

	// Update persists changes to an existing service-request aggregate.
	// The write is a compare-and-set on the aggregate's version.
	Update(ctx context.Context, aggregate *servicerequest.Request) error

	// Get retrieves a request by id within the given tenant.
	// Returns ObjectNotFound when the request is absent or owned by a
	// different tenant.
	Get(ctx context.Context, orgID kernel.OrgID, id kernel.UUID) (*servicerequest.Request, error)

	// ExistsAssignedTo reports whether any request currently references the
	// technician as its assignee. Platform-internal maintenance path used
	// by the work-status reconciliation job to re-derive busy flags.
	ExistsAssignedTo(ctx context.Context, technicianID kernel.UUID) (bool, error)
}
