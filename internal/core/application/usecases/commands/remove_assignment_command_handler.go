package commands

import (
	"context"
)

type RemoveAssignmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveAssignmentCommandHandler(uowFactory OrderUoWFactory) RemoveAssignmentCommandHandler {
	return RemoveAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveAssignmentCommandHandler) Handle(ctx context.Context, cmd RemoveAssignmentCommand) error {
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

	if err := order.RemoveAssignment(); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
