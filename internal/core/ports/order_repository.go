// Package ports defines repository and collaborator interfaces for the
// workflow engine. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
//
// Every read and mutation is tenant-scoped: repository methods take the
// caller's resolved OrgID and must never return or touch a record belonging
// to another tenant. A record that exists under a different tenant is
// indistinguishable from one that does not exist at all.
package ports

import (
	"context"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for installation-order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is a compare-and-set on the aggregate's version: a lost
	// race surfaces as a ConflictError and the caller's state is stale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id within the given tenant.
	// Returns ObjectNotFound when the order is absent or owned by a
	// different tenant.
	Get(ctx context.Context, orgID kernel.OrgID, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves every order of one customer within the
	// tenant, regardless of status. Used by the KYC propagation path,
	// which deliberately touches CLOSED orders too.
	GetAllByCustomer(ctx context.Context, orgID kernel.OrgID, customerID kernel.UUID) ([]*order.Order, error)

	// SyncKycVerifiedByCustomer sets the kyc_verified stage flag on every
	// order of the customer in one bulk, unconditional, status-independent
	// write. The write invalidates concurrent aggregate snapshots, so an
	// Update racing with the propagation loses its compare-and-set.
	SyncKycVerifiedByCustomer(ctx context.Context, orgID kernel.OrgID, customerID kernel.UUID, verified bool) error
}
