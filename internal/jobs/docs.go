// Package jobs provides scheduled background tasks for the route admin
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping.
//
// # Available Jobs
//
// 1. SessionJanitorJob - Runs every minute to prune assignment sessions
// that have been idle longer than the configured TTL
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the assignment store
//	jobManager := jobs.NewJobManager(store, sessionTTL, logger)
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
// Pruning cannot fail; committed assignments also live in the database, so
// a pruned session loses nothing durable.
package jobs
