package commands

import (
	"context"

	"aquaserve/internal/pkg/errs"
)

type AssignTechnicianCommandHandler struct {
	uowFactory AssignOrderUoWFactory
}

func NewAssignTechnicianCommandHandler(uowFactory AssignOrderUoWFactory) AssignTechnicianCommandHandler {
	return AssignTechnicianCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle offers an order to a technician. The order must pass its
// assignment guards and the technician must exist in the tenant and be
// active before the offer is persisted. The technician's work status is
// not touched here; it belongs to the service request assignment flow.
func (h AssignTechnicianCommandHandler) Handle(ctx context.Context, cmd AssignTechnicianCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	order, err := uow.OrderRepository().Get(ctx, cmd.OrgID(), cmd.OrderID())
	if err != nil {
		return err
	}

	technician, err := uow.TechnicianRepository().Get(ctx, cmd.OrgID(), cmd.TechnicianID())
	if err != nil {
		return err
	}

	if !technician.IsActive() {
		return errs.NewPreconditionFailedError("technician must be active")
	}

	if err := order.AssignTechnician(cmd.TechnicianID()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
