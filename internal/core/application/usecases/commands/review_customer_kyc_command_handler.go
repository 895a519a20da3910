package commands

import (
	"context"
	"fmt"

	"aquaserve/internal/core/ports"
)

type ReviewCustomerKycCommandHandler struct {
	uowFactory KycUoWFactory
	fileStore  ports.FileStore
	notifier   ports.NotificationDispatcher
}

func NewReviewCustomerKycCommandHandler(
	uowFactory KycUoWFactory,
	fileStore ports.FileStore,
	notifier ports.NotificationDispatcher,
) ReviewCustomerKycCommandHandler {
	return ReviewCustomerKycCommandHandler{
		uowFactory: uowFactory,
		fileStore:  fileStore,
		notifier:   notifier,
	}
}

// Handle applies the reviewer verdict to the customer record and then
// propagates the derived kyc_verified flag to every order of that customer
// in the same tenant, regardless of the orders' status. Both writes share
// one transaction.
func (h ReviewCustomerKycCommandHandler) Handle(ctx context.Context, cmd ReviewCustomerKycCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	documentRef := ""
	if len(cmd.Document()) > 0 {
		ref, err := h.fileStore.Store(ctx, fmt.Sprintf("kyc/%s", cmd.CustomerID()), cmd.Document())
		if err != nil {
			return err
		}
		documentRef = ref
	}

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	customer, err := uow.CustomerRepository().Get(ctx, cmd.OrgID(), cmd.CustomerID())
	if err != nil {
		return err
	}

	if err := customer.ReviewKyc(cmd.Verdict(), documentRef); err != nil {
		return err
	}

	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		return err
	}

	err = uow.OrderRepository().SyncKycVerifiedByCustomer(ctx, cmd.OrgID(), cmd.CustomerID(), cmd.Verdict().IsApproved())
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(customer.Email(), "KYC review", fmt.Sprintf("your KYC status is now %s", cmd.Verdict()))

	return nil
}
