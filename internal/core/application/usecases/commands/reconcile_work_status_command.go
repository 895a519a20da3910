package commands

import (
	"errors"

	"aquaserve/internal/pkg/guard"
)

var ErrReconcileWorkStatusCommandIsNotConstructed = errors.New(
	"ReconcileWorkStatusCommand must be created via NewReconcileWorkStatusCommand constructor",
)

// ReconcileWorkStatusCommand frees technicians that are marked busy but no
// longer hold an assignment. Drift can appear when a release write is lost
// after its request write committed; the periodic reconciliation job issues
// this command across all tenants.
type ReconcileWorkStatusCommand struct {
	guard guard.ConstructorGuard
}

func NewReconcileWorkStatusCommand() ReconcileWorkStatusCommand {
	return ReconcileWorkStatusCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ReconcileWorkStatusCommand) Validate() error {
	return c.guard.Validate(ErrReconcileWorkStatusCommandIsNotConstructed)
}
