package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrRecordTechnicianDecisionCommandIsNotConstructed = errors.New(
	"RecordTechnicianDecisionCommand must be created via NewRecordTechnicianDecisionCommand constructor",
)

// RecordTechnicianDecisionCommand records the technician's accept or
// decline answer to a pending assignment offer.
type RecordTechnicianDecisionCommand struct { //nolint:recvcheck //using for validation
	orgID    kernel.OrgID
	orderID  kernel.UUID
	approved bool

	guard guard.ConstructorGuard
}

func NewRecordTechnicianDecisionCommand(
	orgID kernel.OrgID,
	orderID kernel.UUID,
	approved bool,
) (RecordTechnicianDecisionCommand, error) {
	cmd := RecordTechnicianDecisionCommand{
		approved: approved,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RecordTechnicianDecisionCommand{}, err
	}

	return cmd, nil
}

func (c RecordTechnicianDecisionCommand) Validate() error {
	return c.guard.Validate(ErrRecordTechnicianDecisionCommandIsNotConstructed)
}

func (c RecordTechnicianDecisionCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c RecordTechnicianDecisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordTechnicianDecisionCommand) Approved() bool {
	return c.approved
}

func (c *RecordTechnicianDecisionCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RecordTechnicianDecisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
