package commands

import (
	"context"
)

type ReviewOrderKycCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReviewOrderKycCommandHandler(uowFactory OrderUoWFactory) ReviewOrderKycCommandHandler {
	return ReviewOrderKycCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ReviewOrderKycCommandHandler) Handle(ctx context.Context, cmd ReviewOrderKycCommand) error {
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

	if err := order.ReviewKyc(cmd.Verdict()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
