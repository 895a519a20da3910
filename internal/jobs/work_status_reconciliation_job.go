package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"aquaserve/internal/core/application/usecases/commands"
)

// WorkStatusReconciliationJob periodically frees technicians that stayed
// marked busy after their assignment disappeared, repairing drift between
// the request store and the availability store.
type WorkStatusReconciliationJob struct {
	handler commands.ReconcileWorkStatusCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkStatusReconciliationJob creates the reconciliation job. It runs
// every minute; drift is rare and the scan touches every busy technician.
func NewWorkStatusReconciliationJob(
	handler commands.ReconcileWorkStatusCommandHandler,
	logger *slog.Logger,
) *WorkStatusReconciliationJob {
	return &WorkStatusReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "work_status_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *WorkStatusReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileWorkStatusCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Work status reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Work status reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *WorkStatusReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Work status reconciliation job stopped")
}
