// Package servicerequest implements the service-request aggregate: the
// single-phase variant of the assignment workflow used for maintenance
// visits. Assignment here has no pending/approved protocol - a technician is
// claimed immediately and released when the request closes.
package servicerequest

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when using an improperly
	// initialized Request.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrIssueIsRequired is returned when attempting to create a request
	// without an issue description.
	ErrIssueIsRequired = errs.NewValueIsRequiredError("issue")
)

// Request is the service-request aggregate root.
// Identity is (org_id, request_id).
//
// The aggregate owns the two release rules around the closed state:
//   - closing a request that holds an assignment releases the technician
//     and clears assigned_to
//   - leaving the closed state clears a stale assigned_to so a technician
//     cannot stay marked busy for a reopened request
//
// The rules overlap in practice but are evaluated independently, never as
// mutually exclusive branches.
type Request struct {
	id         kernel.UUID
	orgID      kernel.OrgID
	customerID kernel.UUID
	deviceID   string
	issue      string

	status     Status
	assignedTo *kernel.UUID

	version int

	guard guard.ConstructorGuard
}

// NewRequest creates an open, unassigned service request.
func NewRequest(
	id kernel.UUID,
	orgID kernel.OrgID,
	customerID kernel.UUID,
	deviceID string,
	issue string,
) (*Request, error) {
	r := &Request{
		deviceID: deviceID,
		status:   StatusOpen,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrgID(orgID),
		r.setCustomerID(customerID),
		r.setIssue(issue),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a service-request aggregate from persistence.
func RestoreRequest(
	id kernel.UUID,
	orgID kernel.OrgID,
	customerID kernel.UUID,
	deviceID string,
	issue string,
	status Status,
	assignedTo *kernel.UUID,
	version int,
) (*Request, error) {
	r, err := NewRequest(id, orgID, customerID, deviceID, issue)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if assignedTo != nil {
		if err = assignedTo.Validate(); err != nil {
			return nil, err
		}
	}

	r.status = status
	r.assignedTo = assignedTo
	r.version = version
	return r, nil
}

// Validate ensures the Request was properly constructed through a factory method.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrgID returns the owning tenant.
func (r *Request) OrgID() kernel.OrgID {
	return r.orgID
}

// CustomerID returns the customer the request belongs to.
func (r *Request) CustomerID() kernel.UUID {
	return r.customerID
}

// DeviceID returns the purifier device reference.
func (r *Request) DeviceID() string {
	return r.deviceID
}

// Issue returns the reported problem description.
func (r *Request) Issue() string {
	return r.issue
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// AssignedTo returns the assigned technician's reference id, or nil when the
// request is unassigned.
func (r *Request) AssignedTo() *kernel.UUID {
	return r.assignedTo
}

// Version returns the optimistic-concurrency version of the record.
func (r *Request) Version() int {
	return r.version
}

// AssignTechnician claims a technician for the request and moves it to
// assigned status.
//
// Guard: the request must not already hold an assignment - silently
// overwriting assigned_to would leave the previous technician marked busy
// forever. The technician's own free->busy claim is guarded by the
// technician aggregate; the workflow handler performs both inside one
// unit of work.
func (r *Request) AssignTechnician(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}

	if r.assignedTo != nil {
		return errs.NewPreconditionFailedError("request already assigned to a technician")
	}

	r.assignedTo = &technicianID
	r.status = StatusAssigned
	return nil
}

// ChangeStatus transitions the request to newStatus and applies the release
// rules. It returns the reference id of a technician that must be freed as a
// consequence, or nil when no release is needed.
//
// The two rules are evaluated independently:
//  1. transitioning into closed while an assignment exists releases the
//     technician and clears assigned_to
//  2. transitioning out of closed clears a stale assigned_to, releasing the
//     technician it still referenced
func (r *Request) ChangeStatus(newStatus Status) (*kernel.UUID, error) {
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	var released *kernel.UUID

	// Rule 1: closing with an assignee frees the technician.
	if newStatus.IsClosed() && r.assignedTo != nil {
		released = r.assignedTo
		r.assignedTo = nil
	}

	// Rule 2: reopening clears a stale assignee.
	if r.status.IsClosed() && !newStatus.IsClosed() && r.assignedTo != nil {
		released = r.assignedTo
		r.assignedTo = nil
	}

	r.status = newStatus
	return released, nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	r.orgID = orgID
	return nil
}

func (r *Request) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Request) setIssue(issue string) error {
	if issue == "" {
		return ErrIssueIsRequired
	}
	r.issue = issue
	return nil
}
