package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var ErrReceivePaymentCommandIsNotConstructed = errors.New(
	"ReceivePaymentCommand must be created via NewReceivePaymentCommand constructor",
)

// ReceivePaymentCommand records a payment against an open installation order.
type ReceivePaymentCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.OrgID
	orderID kernel.UUID
	amount  decimal.Decimal

	guard guard.ConstructorGuard
}

func NewReceivePaymentCommand(
	orgID kernel.OrgID,
	orderID kernel.UUID,
	amount decimal.Decimal,
) (ReceivePaymentCommand, error) {
	cmd := ReceivePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return ReceivePaymentCommand{}, err
	}

	return cmd, nil
}

func (c ReceivePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReceivePaymentCommandIsNotConstructed)
}

func (c ReceivePaymentCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c ReceivePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReceivePaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c *ReceivePaymentCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ReceivePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReceivePaymentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}
