package commands

import (
	"context"
)

type UpdateServiceRequestStatusCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewUpdateServiceRequestStatusCommandHandler(uowFactory RequestUoWFactory) UpdateServiceRequestStatusCommandHandler {
	return UpdateServiceRequestStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle transitions the request. When the transition releases a technician
// the free flip is written in the same transaction as the request, so a
// closed request can never leave its technician stuck busy.
func (h UpdateServiceRequestStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateServiceRequestStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	request, err := uow.ServiceRequestRepository().Get(ctx, cmd.OrgID(), cmd.RequestID())
	if err != nil {
		return err
	}

	released, err := request.ChangeStatus(cmd.NewStatus())
	if err != nil {
		return err
	}

	if released != nil {
		technician, err := uow.TechnicianRepository().Get(ctx, cmd.OrgID(), *released)
		if err != nil {
			return err
		}

		technician.MarkFree()

		if err := uow.TechnicianRepository().Update(ctx, technician); err != nil {
			return err
		}
	}

	if err := uow.ServiceRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
