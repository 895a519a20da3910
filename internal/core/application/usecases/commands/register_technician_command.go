package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/errs"
	"aquaserve/internal/pkg/guard"
)

var ErrRegisterTechnicianCommandIsNotConstructed = errors.New(
	"RegisterTechnicianCommand must be created via NewRegisterTechnicianCommand constructor",
)

// RegisterTechnicianCommand enrolls a field technician into the caller's
// tenant. New technicians start inactive with a pending KYC status; a
// reviewer activates them through the onboarding review before the
// assignment paths will consider them.
type RegisterTechnicianCommand struct { //nolint:recvcheck //using for validation
	orgID        kernel.OrgID
	technicianID kernel.UUID
	userID       kernel.UUID
	name         string

	guard guard.ConstructorGuard
}

func NewRegisterTechnicianCommand(
	orgID kernel.OrgID,
	technicianID kernel.UUID,
	userID kernel.UUID,
	name string,
) (RegisterTechnicianCommand, error) {
	cmd := RegisterTechnicianCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setTechnicianID(technicianID),
		cmd.setUserID(userID),
		cmd.setName(name),
	); err != nil {
		return RegisterTechnicianCommand{}, err
	}

	return cmd, nil
}

func (c RegisterTechnicianCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTechnicianCommandIsNotConstructed)
}

func (c RegisterTechnicianCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c RegisterTechnicianCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c RegisterTechnicianCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterTechnicianCommand) Name() string {
	return c.name
}

func (c *RegisterTechnicianCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RegisterTechnicianCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

func (c *RegisterTechnicianCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterTechnicianCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
