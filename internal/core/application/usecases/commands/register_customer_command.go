package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand creates a customer record in the caller's tenant.
// New customers start with a pending KYC status and no linked device;
// contact details beyond the name are optional.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	orgID  kernel.OrgID
	userID kernel.UUID
	name   string
	email  string
	phone  string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(
	orgID kernel.OrgID,
	userID kernel.UUID,
	name string,
	email string,
	phone string,
) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setUserID(userID),
		cmd.setName(name),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c RegisterCustomerCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c RegisterCustomerCommand) Email() string {
	return c.email
}

func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

func (c *RegisterCustomerCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RegisterCustomerCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
