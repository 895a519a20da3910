package ports

import (
	"context"

	"aquaserve/internal/core/domain/model/customer"
	"aquaserve/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by user id within the given tenant.
	// Returns ObjectNotFound when the customer is absent or owned by a
	// different tenant.
	Get(ctx context.Context, orgID kernel.OrgID, userID kernel.UUID) (*customer.Customer, error)
}
