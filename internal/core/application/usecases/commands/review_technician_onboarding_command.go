package commands

import (
	"errors"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/pkg/guard"
)

var ErrReviewTechnicianOnboardingCommandIsNotConstructed = errors.New(
	"ReviewTechnicianOnboardingCommand must be created via NewReviewTechnicianOnboardingCommand constructor",
)

// ReviewTechnicianOnboardingCommand records a reviewer decision on a
// technician's onboarding: the activation gate and the KYC verdict together.
type ReviewTechnicianOnboardingCommand struct { //nolint:recvcheck //using for validation
	orgID        kernel.OrgID
	technicianID kernel.UUID
	isActive     bool
	kycStatus    kernel.KycStatus

	guard guard.ConstructorGuard
}

func NewReviewTechnicianOnboardingCommand(
	orgID kernel.OrgID,
	technicianID kernel.UUID,
	isActive bool,
	kycStatus kernel.KycStatus,
) (ReviewTechnicianOnboardingCommand, error) {
	cmd := ReviewTechnicianOnboardingCommand{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrgID(orgID),
		cmd.setTechnicianID(technicianID),
		cmd.setKycStatus(kycStatus),
	); err != nil {
		return ReviewTechnicianOnboardingCommand{}, err
	}

	return cmd, nil
}

func (c ReviewTechnicianOnboardingCommand) Validate() error {
	return c.guard.Validate(ErrReviewTechnicianOnboardingCommandIsNotConstructed)
}

func (c ReviewTechnicianOnboardingCommand) OrgID() kernel.OrgID {
	return c.orgID
}

func (c ReviewTechnicianOnboardingCommand) TechnicianID() kernel.UUID {
	return c.technicianID
}

func (c ReviewTechnicianOnboardingCommand) IsActive() bool {
	return c.isActive
}

func (c ReviewTechnicianOnboardingCommand) KycStatus() kernel.KycStatus {
	return c.kycStatus
}

func (c *ReviewTechnicianOnboardingCommand) setOrgID(orgID kernel.OrgID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ReviewTechnicianOnboardingCommand) setTechnicianID(technicianID kernel.UUID) error {
	if err := technicianID.Validate(); err != nil {
		return err
	}
	c.technicianID = technicianID
	return nil
}

func (c *ReviewTechnicianOnboardingCommand) setKycStatus(kycStatus kernel.KycStatus) error {
	if err := kycStatus.Validate(); err != nil {
		return err
	}
	c.kycStatus = kycStatus
	return nil
}
