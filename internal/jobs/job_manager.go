package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob *DispatchJob
}

// NewJobManager creates a job manager. An empty dispatchSchedule disables auto dispatch.
func NewJobManager(
	dispatchSchedule string,
	dispatcher Dispatcher,
	observer DispatchObserver,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if dispatchSchedule != "" {
		jm.dispatchJob = NewDispatchJob(dispatchSchedule, dispatcher, observer, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.dispatchJob == nil {
		return nil
	}
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.dispatchJob != nil {
		jm.dispatchJob.Stop()
	}
}
