// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. WorkStatusReconciliationJob - Runs every minute to free technicians
// whose busy flag outlived the assignment that set it.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reconciliation job logs every failure; a mid-scan storage error
// carries the already-freed technicians, and the next run picks up where
// the failed one stopped.
package jobs
