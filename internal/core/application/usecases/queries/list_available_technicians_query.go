package queries

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrListAvailableTechniciansQueryIsNotConstructed = errors.New(
	"ListAvailableTechniciansQuery must be created via NewListAvailableTechniciansQuery constructor",
)

// ListAvailableTechniciansQuery retrieves the technicians of one tenant that
// are eligible for a new assignment: free and KYC approved.
//
// The listing is advisory. Assignment handlers re-validate the same
// predicate against current state, so a caller acting on a stale listing
// receives a conflict instead of a double claim.
//
// Example:
//
//	query, err := NewListAvailableTechniciansQuery(orgID)
//	if err != nil {
//	    return err
//	}
//	handler := NewListAvailableTechniciansQueryHandler(db)
//
//	technicians, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list available technicians: %w", err)
//	}
//
//	for _, t := range technicians {
//	    fmt.Printf("%s (%s)\n", t.Name, t.ID)
//	}
type ListAvailableTechniciansQuery struct { //nolint:recvcheck //using for validation
	orgID kernel.OrgID

	guard guard.ConstructorGuard
}

// NewListAvailableTechniciansQuery creates a tenant-scoped availability query.
func NewListAvailableTechniciansQuery(orgID kernel.OrgID) (ListAvailableTechniciansQuery, error) {
	q := ListAvailableTechniciansQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrgID(orgID); err != nil {
		return ListAvailableTechniciansQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableTechniciansQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableTechniciansQueryIsNotConstructed)
}

// OrgID returns the tenant the listing is scoped to.
func (q ListAvailableTechniciansQuery) OrgID() kernel.OrgID {
	return q.orgID
}

func (q *ListAvailableTechniciansQuery) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	q.orgID = orgID
	return nil
}

// ListAvailableTechniciansQueryResponse represents one eligible technician.
type ListAvailableTechniciansQueryResponse struct {
	ID     kernel.UUID
	UserID kernel.UUID
	Name   string
}
