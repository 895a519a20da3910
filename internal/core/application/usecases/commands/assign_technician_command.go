package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrAssignTechnicianCommandIsNotConstructed = errors.New(
	"AssignTechnicianCommand must be created via NewAssignTechnicianCommand constructor",
)

// AssignTechnicianCommand places an assignment offer for an installation
// order to a chosen technician. Acceptance moves the order's assignment
// sub-state to PENDING; the technician's own accept/decline decision is
// recorded later through RecordTechnicianDecisionCommand.
type AssignTechnicianCommand struct { //nolint:recvcheck //using for validation
	orgID        kernel.OrgID
	orderID      kernel.UUID
	technicianID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignTechnicianCommand creates a command to offer an order to a technician.
func NewAssignTechnicianCommand(
	orgID kernel.OrgID,
	orderID kernel.UUID,
	technicianID kernel.UUID,
) (AssignTechnicianCommand, error) {
	cmd := AssignTechnicianCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
		cmd.setTechnicianID(technicianID),
	); err != nil {
		return AssignTechnicianCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrAssignTechnicianCommandIsNotConstructed)
}

// OrgID returns the tenant the operation runs in.
func (c AssignTechnicianCommand) OrgID() kernel.OrgID {
	return c.orgID
}

// OrderID returns the order being assigned.
func (c AssignTechnicianCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TechnicianID returns the technician the order is offered to.
func (c AssignTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c *AssignTechnicianCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *AssignTechnicianCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignTechnicianCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}
