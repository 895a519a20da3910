package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrRemoveAssignmentCommandIsNotConstructed = errors.New(
	"RemoveAssignmentCommand must be created via NewRemoveAssignmentCommand constructor",
)

// RemoveAssignmentCommand withdraws a pending assignment offer from an order.
type RemoveAssignmentCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.OrgID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveAssignmentCommand(orgID kernel.OrgID, orderID kernel.UUID) (RemoveAssignmentCommand, error) {
	cmd := RemoveAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RemoveAssignmentCommand{}, err
	}

	return cmd, nil
}

func (c RemoveAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAssignmentCommandIsNotConstructed)
}

func (c RemoveAssignmentCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c RemoveAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveAssignmentCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RemoveAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
