package queries

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves a tenant's installation orders that have not
// been closed yet, for monitoring and assignment UIs.
type GetOpenOrdersQuery struct { //nolint:recvcheck //using for validation
	orgID kernel.OrgID

	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a tenant-scoped open-orders query.
func NewGetOpenOrdersQuery(orgID kernel.OrgID) (GetOpenOrdersQuery, error) {
	q := GetOpenOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrgID(orgID); err != nil {
		return GetOpenOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// OrgID returns the tenant the listing is scoped to.
func (q GetOpenOrdersQuery) OrgID() kernel.OrgID {
	return q.orgID
}

func (q *GetOpenOrdersQuery) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	q.orgID = orgID
	return nil
}

// GetOpenOrdersQueryResponse represents one open installation order with its
// stage flags.
type GetOpenOrdersQueryResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	DeviceID              string
	PaymentReceived       bool
	KycVerified           bool
	TechnicianAssigned    bool
	InstallationCompleted bool
}
