package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var ErrCreateServiceRequestCommandIsNotConstructed = errors.New(
	"CreateServiceRequestCommand must be created via NewCreateServiceRequestCommand constructor",
)

// CreateServiceRequestCommand opens a maintenance request for a customer's
// installed purifier.
type CreateServiceRequestCommand struct { //nolint:recvcheck //using for validation
	orgID      kernel.OrgID
	requestID  kernel.UUID
	customerID kernel.UUID
	deviceID   string
	issue      string

	guard guard.ConstructorGuard
}

func NewCreateServiceRequestCommand(
	orgID kernel.OrgID,
	requestID kernel.UUID,
	customerID kernel.UUID,
	deviceID string,
	issue string,
) (CreateServiceRequestCommand, error) {
	cmd := CreateServiceRequestCommand{
		deviceID: deviceID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setRequestID(requestID),
		cmd.setCustomerID(customerID),
		cmd.setIssue(issue),
	); err != nil {
		return CreateServiceRequestCommand{}, err
	}

	return cmd, nil
}

func (c CreateServiceRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceRequestCommandIsNotConstructed)
}

func (c CreateServiceRequestCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c CreateServiceRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c CreateServiceRequestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateServiceRequestCommand) DeviceID() string {
	return c.deviceID
}

func (c CreateServiceRequestCommand) Issue() string {
	return c.issue
}

func (c *CreateServiceRequestCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreateServiceRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *CreateServiceRequestCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateServiceRequestCommand) setIssue(issue string) error {
	if issue == "" {
		return errs.NewValueIsRequiredError("issue")
	}
	c.issue = issue
	return nil
}
