package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/order"
	"aquaserve/internal/pkg/guard"
)

var ErrReviewOrderKycCommandIsNotConstructed = errors.New(
	"ReviewOrderKycCommand must be created via NewReviewOrderKycCommand constructor",
)

// ReviewOrderKycCommand records a reviewer verdict on a single order's
// KYC sub-state, independent of the customer level review.
type ReviewOrderKycCommand struct { //nolint:recvcheck //using for validation
	orgID   kernel.OrgID
	orderID kernel.UUID
	verdict order.ApprovalStatus

	guard guard.ConstructorGuard
}

func NewReviewOrderKycCommand(
	orgID kernel.OrgID,
	orderID kernel.UUID,
	verdict order.ApprovalStatus,
) (ReviewOrderKycCommand, error) {
	cmd := ReviewOrderKycCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setOrderID(orderID),
		cmd.setVerdict(verdict),
	); err != nil {
		return ReviewOrderKycCommand{}, err
	}

	return cmd, nil
}

func (c ReviewOrderKycCommand) Validate() error {
	return c.guard.Validate(ErrReviewOrderKycCommandIsNotConstructed)
}

func (c ReviewOrderKycCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c ReviewOrderKycCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReviewOrderKycCommand) Verdict() order.ApprovalStatus {
	return c.verdict
}

func (c *ReviewOrderKycCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ReviewOrderKycCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReviewOrderKycCommand) setVerdict(verdict order.ApprovalStatus) error {
	if err := verdict.Validate(); err != nil {
		return err
	}
	c.verdict = verdict
	return nil
}
