// Package jobs provides scheduled background tasks for the order lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the system.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every minute to cancel pending orders that exceeded
// their time-to-live without being confirmed or paid.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, ttl, systemActor, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed sweep never
// leaves a partial batch behind because the cancellation command commits all
// of its mutations in one transaction.
package jobs
