package commands

import (
	"context"
	"errors"

	"aquaserve/internal/pkg/errs"
)

type ReconcileWorkStatusCommandHandler struct {
	uowFactory RequestUoWFactory
}

func NewReconcileWorkStatusCommandHandler(uowFactory RequestUoWFactory) ReconcileWorkStatusCommandHandler {
	return ReconcileWorkStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle scans busy technicians across all tenants and frees the ones whose
// assignment no longer exists. Each technician is fixed in its own
// transaction; on a mid-scan storage failure the error reports which
// technicians were already freed so the next run can resume safely.
func (h ReconcileWorkStatusCommandHandler) Handle(ctx context.Context, cmd ReconcileWorkStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	scanUow := h.uowFactory.Create()

	busy, err := scanUow.TechnicianRepository().GetAllBusy(ctx)
	if err != nil {
		return err
	}

	var freed []string

	for _, technician := range busy {
		assigned, err := scanUow.ServiceRequestRepository().ExistsAssignedTo(ctx, technician.ID())
		if err != nil {
			return errs.NewStorageUnavailableError(err, freed...)
		}
		if assigned {
			continue
		}

		uow := h.uowFactory.Create()

		if err := uow.Begin(ctx); err != nil {
			return errs.NewStorageUnavailableError(err, freed...)
		}

		technician.MarkFree()

		if err := uow.TechnicianRepository().Update(ctx, technician); err != nil {
			_ = uow.Rollback(ctx)
			if errors.Is(err, errs.ErrConflict) {
				// Someone claimed the technician mid-scan; the busy flag
				// is legitimate again.
				continue
			}
			return errs.NewStorageUnavailableError(err, freed...)
		}

		if err := uow.Commit(ctx); err != nil {
			return errs.NewStorageUnavailableError(err, freed...)
		}

		freed = append(freed, technician.ID().String())
	}

	return nil
}
