// Package jobs provides scheduled background tasks for the ordering system.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingBacklogJob - Runs every minute and logs stores whose Pending
// orders have been waiting longer than a configured threshold. It is
// read-only observability: no order state is touched.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(backlogHandler, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
