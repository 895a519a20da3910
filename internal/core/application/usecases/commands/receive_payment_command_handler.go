package commands

import (
	"context"
)

type ReceivePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReceivePaymentCommandHandler(uowFactory OrderUoWFactory) ReceivePaymentCommandHandler {
	return ReceivePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReceivePaymentCommandHandler) Handle(ctx context.Context, cmd ReceivePaymentCommand) error {
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

	if err := order.ReceivePayment(cmd.Amount()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
