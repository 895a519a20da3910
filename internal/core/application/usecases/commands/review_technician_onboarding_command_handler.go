package commands

import (
	"context"
)

type ReviewTechnicianOnboardingCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

func NewReviewTechnicianOnboardingCommandHandler(uowFactory TechnicianUoWFactory) ReviewTechnicianOnboardingCommandHandler {
	return ReviewTechnicianOnboardingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReviewTechnicianOnboardingCommandHandler) Handle(
	ctx context.Context,
	cmd ReviewTechnicianOnboardingCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	technician, err := uow.TechnicianRepository().Get(ctx, cmd.OrgID(), cmd.TechnicianID())
	if err != nil {
		return err
	}

	if err := technician.ReviewOnboarding(cmd.IsActive(), cmd.KycStatus()); err != nil {
		return err
	}

	if err := uow.TechnicianRepository().Update(ctx, technician); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
