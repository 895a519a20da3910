package commands

import (
	"context"

	"aquaserve/internal/core/domain/model/customer"
)

// RegisterCustomerCommandHandler handles customer registration.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	newCustomer, err := customer.NewCustomer(cmd.UserID(), cmd.OrgID(), cmd.Name(), cmd.Email(), cmd.Phone())
	if err != nil {
		return err
	}

	if err := uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
