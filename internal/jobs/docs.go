// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field) and call the
// same application command handlers as the HTTP adapter.
//
// # Available Jobs
//
// DispatchJob assigns the oldest Pending order to a free, active driver with verified
// documents. Each run repeats until there is nothing left to assign.
//
// # Usage
//
//	jobManager := jobs.NewJobManager("*/5 * * * * *", dispatchHandler, metrics, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Running out of pending orders or free drivers ends a run quietly. Any other failure,
// including a write conflict with a concurrent request, is logged and ends the run;
// the next tick tries again.
package jobs
