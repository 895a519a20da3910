package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/servicerequest"
	"aquaserve/internal/pkg/guard"
)

var ErrUpdateServiceRequestStatusCommandIsNotConstructed = errors.New(
	"UpdateServiceRequestStatusCommand must be created via NewUpdateServiceRequestStatusCommand constructor",
)

// UpdateServiceRequestStatusCommand transitions a service request to a new
// lifecycle status, releasing the assigned technician where the transition
// requires it.
type UpdateServiceRequestStatusCommand struct { //nolint:recvcheck //using for validation
	orgID     kernel.OrgID
	requestID kernel.UUID
	newStatus servicerequest.Status

	guard guard.ConstructorGuard
}

func NewUpdateServiceRequestStatusCommand(
	orgID kernel.OrgID,
	requestID kernel.UUID,
	newStatus servicerequest.Status,
) (UpdateServiceRequestStatusCommand, error) {
	cmd := UpdateServiceRequestStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setRequestID(requestID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateServiceRequestStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateServiceRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceRequestStatusCommandIsNotConstructed)
}

func (c UpdateServiceRequestStatusCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c UpdateServiceRequestStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c UpdateServiceRequestStatusCommand) NewStatus() servicerequest.Status {
	return c.newStatus
}

func (c *UpdateServiceRequestStatusCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *UpdateServiceRequestStatusCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *UpdateServiceRequestStatusCommand) setNewStatus(newStatus servicerequest.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
