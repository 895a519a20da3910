package commands

import (
	"context"

	"aquaserve/internal/core/domain/model/servicerequest"
)

type CreateServiceRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewCreateServiceRequestCommandHandler(uowFactory RequestUoWFactory) CreateServiceRequestCommandHandler {
	return CreateServiceRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateServiceRequestCommandHandler) Handle(ctx context.Context, cmd CreateServiceRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	request, err := servicerequest.NewRequest(
		cmd.RequestID(),
		cmd.OrgID(),
		cmd.CustomerID(),
		cmd.DeviceID(),
		cmd.Issue(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.ServiceRequestRepository().Add(ctx, request); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
