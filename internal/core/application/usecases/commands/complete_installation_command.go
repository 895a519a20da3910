package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrCompleteInstallationCommandIsNotConstructed = errors.New(
	"CompleteInstallationCommand must be created via NewCompleteInstallationCommand constructor",
)

// CompleteInstallationCommand closes an installation order.
type CompleteInstallationCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.OrgID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteInstallationCommand(orgID kernel.OrgID, orderID kernel.UUID) (CompleteInstallationCommand, error) {
	cmd := CompleteInstallationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
	); err != nil {
		return CompleteInstallationCommand{}, err
	}

	return cmd, nil
}

func (c CompleteInstallationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInstallationCommandIsNotConstructed)
}

func (c CompleteInstallationCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c CompleteInstallationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteInstallationCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CompleteInstallationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
