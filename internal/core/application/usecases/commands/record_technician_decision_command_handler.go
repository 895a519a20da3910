package commands

import (
	"context"
)

type RecordTechnicianDecisionCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRecordTechnicianDecisionCommandHandler(uowFactory OrderUoWFactory) RecordTechnicianDecisionCommandHandler {
	return RecordTechnicianDecisionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordTechnicianDecisionCommandHandler) Handle(
	ctx context.Context,
	cmd RecordTechnicianDecisionCommand,
) error {
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

	if err := order.RecordTechnicianDecision(cmd.Approved()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
