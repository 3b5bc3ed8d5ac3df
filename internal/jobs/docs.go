// Package jobs provides scheduled background tasks for the fulfillment system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(assignCouriersHandler, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is AssignmentJob, the courier-assignment sweep. It runs
// on a configurable six-field cron schedule (once a minute by default) and
// delegates each tick to AssignCouriersCommandHandler. Expected idle outcomes
// of a tick, no orders awaiting assignment or no free couriers, are not
// logged as errors.
package jobs
