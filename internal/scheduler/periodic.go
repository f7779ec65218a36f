package scheduler

import (
	"context"
	"fmt"

	"salesspark_backend/platform/config"
	"salesspark_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Periodic enqueues the weekly report on its cron spec.
type Periodic struct {
	scheduler *asynq.Scheduler
	entryID   string
	log       *logger.Logger
}

func NewPeriodic(cfg config.SchedulerConfig, log *logger.Logger) (*Periodic, error) {
	opt, err := connection(cfg)
	if err != nil {
		return nil, err
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{})

	task, err := NewWeeklyReportTask(WeeklyReportPayload{Trigger: TriggerCron})
	if err != nil {
		return nil, err
	}

	spec := cfg.GetWeeklyReportCron()
	entryID, err := scheduler.Register(spec, task, asynq.Queue(queueName(cfg)), asynq.MaxRetry(3))
	if err != nil {
		return nil, fmt.Errorf("register weekly report %q: %w", spec, err)
	}

	log.Info("weekly report scheduled", "cron", spec, "entryId", entryID)
	return &Periodic{scheduler: scheduler, entryID: entryID, log: log}, nil
}

// Run starts the scheduler and blocks until ctx is cancelled.
func (p *Periodic) Run(ctx context.Context) {
	if p == nil || p.scheduler == nil {
		return
	}

	if err := p.scheduler.Start(); err != nil {
		p.log.Error("periodic scheduler stopped", "error", err)
		return
	}
	<-ctx.Done()
	p.scheduler.Shutdown()
}
