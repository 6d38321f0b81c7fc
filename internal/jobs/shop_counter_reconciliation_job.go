package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs every ten minutes.
const DefaultReconcileSchedule = "0 */10 * * * *"

const runTimeout = time.Minute

// CounterReconciler is satisfied by *commands.ReconcileShopCountersCommandHandler.
type CounterReconciler interface {
	Handle(ctx context.Context) (commands.ReconcileResult, error)
}

// ShopCounterReconciliationJob periodically repairs shop order counters.
type ShopCounterReconciliationJob struct {
	handler  CounterReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShopCounterReconciliationJob creates the job. An empty schedule falls
// back to DefaultReconcileSchedule and a nil logger to slog.Default.
func NewShopCounterReconciliationJob(
	handler CounterReconciler, schedule string, logger *slog.Logger,
) *ShopCounterReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ShopCounterReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "shop_counter_reconciliation_job"),
	}
}

// Start registers the schedule and starts the scheduler.
func (j *ShopCounterReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shop counter reconciliation job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single reconciliation. Failures are logged, not returned.
func (j *ShopCounterReconciliationJob) RunOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	result, err := j.handler.Handle(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Shop counter reconciliation failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Shop counter reconciliation finished",
		"counters_fixed", result.CountersFixed, "shops_indexed", result.ShopsIndexed)
}

// Stop waits for a running reconciliation to finish.
func (j *ShopCounterReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Shop counter reconciliation job stopped")
}
