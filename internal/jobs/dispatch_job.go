package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/observability"

	"github.com/robfig/cron/v3"
)

// maxDispatchesPerRun bounds how many orders a single run may assign.
const maxDispatchesPerRun = 50

// Dispatcher assigns the oldest Pending order to a free eligible driver.
type Dispatcher interface {
	Handle(ctx context.Context, command commands.DispatchPendingOrderCommand) error
}

// DispatchObserver counts dispatch runs by outcome.
type DispatchObserver interface {
	ObserveDispatch(outcome string)
}

// DispatchJob periodically hands Pending orders to free eligible drivers.
// Runs never overlap: a tick that fires while the previous run is still busy is skipped.
type DispatchJob struct {
	handler  Dispatcher
	observer DispatchObserver
	schedule string
	cron     *cron.Cron
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *slog.Logger
}

// NewDispatchJob creates a job running on schedule, a cron spec with a seconds field.
func NewDispatchJob(schedule string, handler Dispatcher, observer DispatchObserver, logger *slog.Logger) *DispatchJob {
	ctx, cancel := context.WithCancel(context.Background())
	return &DispatchJob{
		handler:  handler,
		observer: observer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger.With("component", "dispatch_job"),
	}
}

func (j *DispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(j.ctx) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(j.ctx, "Dispatch job started", "schedule", j.schedule)
	return nil
}

// Run dispatches orders until none is pending, no driver is free or the per-run
// limit is reached.
func (j *DispatchJob) Run(ctx context.Context) {
	for range maxDispatchesPerRun {
		err := j.handler.Handle(ctx, commands.NewDispatchPendingOrderCommand())
		switch {
		case err == nil:
			j.observer.ObserveDispatch(observability.DispatchAssigned)
		case errors.Is(err, commands.ErrNoPendingOrder), errors.Is(err, commands.ErrNoEligibleDriver):
			j.observer.ObserveDispatch(observability.DispatchIdle)
			return
		case errors.Is(err, context.Canceled):
			return
		default:
			j.observer.ObserveDispatch(observability.DispatchFailed)
			j.logger.ErrorContext(ctx, "Dispatch failed", "error", err)
			return
		}
	}
}

// Stop cancels a run in progress and waits for it to return.
func (j *DispatchJob) Stop() {
	j.cancel()
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
