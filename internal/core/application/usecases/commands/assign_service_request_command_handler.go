package commands

import (
	"context"
)

type AssignServiceRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewAssignServiceRequestCommandHandler(uowFactory RequestUoWFactory) AssignServiceRequestCommandHandler {
	return AssignServiceRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle claims the technician and assigns the request in one transaction.
// The availability re-check happens on the technician aggregate itself:
// MarkBusy rejects a non-free technician with a conflict, so a stale
// "available" listing cannot produce a double claim.
func (h AssignServiceRequestCommandHandler) Handle(ctx context.Context, cmd AssignServiceRequestCommand) error {
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

	technician, err := uow.TechnicianRepository().Get(ctx, cmd.OrgID(), cmd.TechnicianID())
	if err != nil {
		return err
	}

	if err := technician.MarkBusy(); err != nil {
		return err
	}

	if err := request.AssignTechnician(cmd.TechnicianID()); err != nil {
		return err
	}

	if err := uow.TechnicianRepository().Update(ctx, technician); err != nil {
		return err
	}

	if err := uow.ServiceRequestRepository().Update(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
