package commands

import (
	"context"
	"time"
)

type CompleteInstallationCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteInstallationCommandHandler(uowFactory OrderUoWFactory) CompleteInstallationCommandHandler {
	return CompleteInstallationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CompleteInstallationCommandHandler) Handle(ctx context.Context, cmd CompleteInstallationCommand) error {
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

	if err := order.CompleteInstallation(time.Now().UTC()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
