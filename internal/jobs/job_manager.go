package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	reconciliationJob *ShopCounterReconciliationJob
}

// NewJobManager wires the jobs. reconcileSchedule uses the six-field cron
// syntax; empty means DefaultReconcileSchedule.
func NewJobManager(reconciler CounterReconciler, reconcileSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		reconciliationJob: NewShopCounterReconciliationJob(reconciler, reconcileSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.reconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start shop counter reconciliation job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconciliationJob.Stop()
}

// RunAllOnce runs every job immediately, outside of its schedule.
func (jm *JobManager) RunAllOnce(ctx context.Context) {
	jm.reconciliationJob.RunOnce(ctx)
}
