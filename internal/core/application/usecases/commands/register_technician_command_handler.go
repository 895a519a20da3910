package commands

import (
	"context"

	"aquaserve/internal/core/domain/model/technician"
)

// RegisterTechnicianCommandHandler handles technician enrollment.
type RegisterTechnicianCommandHandler struct {
	uowFactory TechnicianUoWFactory
}

func NewRegisterTechnicianCommandHandler(uowFactory TechnicianUoWFactory) RegisterTechnicianCommandHandler {
	return RegisterTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterTechnicianCommandHandler) Handle(ctx context.Context, cmd RegisterTechnicianCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	newTechnician, err := technician.NewTechnician(cmd.TechnicianID(), cmd.OrgID(), cmd.UserID(), cmd.Name())
	if err != nil {
		return err
	}

	if err := uow.TechnicianRepository().Add(ctx, newTechnician); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
