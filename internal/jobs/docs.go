// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the matching service.
//
// # Available Jobs
//
// 1. OfferIndexRefreshJob - Runs every minute to rebuild the offer index from
// the entity store, bounding how stale the index can get between the
// incremental updates applied after each offer change.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshOfferIndexHandler, logger)
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
// A failed rebuild is logged and retried on the next tick; the index keeps
// serving its previous contents in the meantime, and the dispatch path
// re-validates offers against the entity store regardless.
package jobs
