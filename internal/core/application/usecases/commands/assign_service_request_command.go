package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrAssignServiceRequestCommandIsNotConstructed = errors.New(
	"AssignServiceRequestCommand must be created via NewAssignServiceRequestCommand constructor",
)

// AssignServiceRequestCommand claims a free technician for a maintenance
// request. Unlike the order flow there is no pending approval phase: the
// claim takes effect immediately and marks the technician busy.
type AssignServiceRequestCommand struct { //nolint:recvcheck //using for validation
	orgID        kernel.OrgID
	requestID    kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignServiceRequestCommand(
	orgID kernel.OrgID,
	requestID kernel.UUID,
	technicianID kernel.UUID,
) (AssignServiceRequestCommand, error) {
	cmd := AssignServiceRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setRequestID(requestID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return AssignServiceRequestCommand{}, err
	}

	return cmd, nil
}

func (c AssignServiceRequestCommand) Validate() error {
	return c.guard.Validate(ErrAssignServiceRequestCommandIsNotConstructed)
}

func (c AssignServiceRequestCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c AssignServiceRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c AssignServiceRequestCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *AssignServiceRequestCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *AssignServiceRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *AssignServiceRequestCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}
