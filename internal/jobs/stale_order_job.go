package jobs

import (
	"context"
	"log/slog"
	"time"

	"stockflow/internal/core/application/usecases/commands"
	"stockflow/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob cancels orders that sat in the pending status longer than the
// configured time-to-live. Runs once a minute; each sweep is a single
// transaction executed on behalf of the system actor.
type StaleOrderJob struct {
	handler     commands.CancelStaleOrdersCommandHandler
	cron        *cron.Cron
	ttl         time.Duration
	systemActor kernel.ActorID
	logger      *slog.Logger
}

// NewStaleOrderJob creates a job that sweeps stale pending orders.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	ttl time.Duration,
	systemActor kernel.ActorID,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		ttl:         ttl,
		systemActor: systemActor,
		logger:      logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order sweep, running every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.ttl, j.systemActor)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pending orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
