package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrReviewCustomerKycCommandIsNotConstructed = errors.New(
	"ReviewCustomerKycCommand must be created via NewReviewCustomerKycCommand constructor",
)

// ReviewCustomerKycCommand records a reviewer verdict on a customer's
// identity KYC and propagates the outcome to the customer's orders.
// Document is an optional KYC image; when present it is stored through
// the file store and only the opaque reference is persisted.
type ReviewCustomerKycCommand struct { //nolint:recvcheck //using for validation
	orgID      kernel.OrgID
	customerID kernel.UUID
	verdict    kernel.KycStatus
	document   []byte

	guard guard.ConstructorGuard
}

func NewReviewCustomerKycCommand(
	orgID kernel.OrgID,
	customerID kernel.UUID,
	verdict kernel.KycStatus,
	document []byte,
) (ReviewCustomerKycCommand, error) {
	cmd := ReviewCustomerKycCommand{
		document: document,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setCustomerID(customerID),
		cmd.setVerdict(verdict),
	); err != nil {
		return ReviewCustomerKycCommand{}, err
	}

	return cmd, nil
}

func (c ReviewCustomerKycCommand) Validate() error {
	return c.guard.Validate(ErrReviewCustomerKycCommandIsNotConstructed)
}

func (c ReviewCustomerKycCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c ReviewCustomerKycCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c ReviewCustomerKycCommand) Verdict() kernel.KycStatus {
	return c.verdict
}

func (c ReviewCustomerKycCommand) Document() []byte {
	return c.document
}

func (c *ReviewCustomerKycCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ReviewCustomerKycCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *ReviewCustomerKycCommand) setVerdict(verdict kernel.KycStatus) error {
	if err := verdict.Validate(); err != nil {
		return err
	}
	c.verdict = verdict
	return nil
}
