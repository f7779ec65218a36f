package scheduler

import (
	"context"
	"fmt"

	"salesspark_backend/platform/config"
	"salesspark_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// ReportGenerator builds and publishes the weekly report.
type ReportGenerator interface {
	GenerateWeeklyReport(ctx context.Context) error
}

// TaskRecorder counts processed tasks.
type TaskRecorder interface {
	RecordTask(task string, err error)
}

type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	reports ReportGenerator
	tasks   TaskRecorder
	log     *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, reports ReportGenerator, tasks TaskRecorder, log *logger.Logger) (*Worker, error) {
	opt, err := connection(cfg)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 5
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	return newWorker(server, reports, tasks, log), nil
}

func newWorker(server *asynq.Server, reports ReportGenerator, tasks TaskRecorder, log *logger.Logger) *Worker {
	w := &Worker{
		server:  server,
		mux:     asynq.NewServeMux(),
		reports: reports,
		tasks:   tasks,
		log:     log,
	}
	w.mux.HandleFunc(TaskWeeklyReport, w.handleWeeklyReport)
	return w
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleWeeklyReport(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseWeeklyReportPayload(task)
	if err != nil {
		w.record(task.Type(), err)
		return fmt.Errorf("parse weekly report payload: %w: %w", err, asynq.SkipRetry)
	}

	err = w.reports.GenerateWeeklyReport(ctx)
	w.record(task.Type(), err)
	if err != nil {
		w.log.Error("weekly report failed", "trigger", payload.Trigger, "error", err)
		return err
	}

	w.log.Info("weekly report generated", "trigger", payload.Trigger)
	return nil
}

func (w *Worker) record(task string, err error) {
	if w.tasks != nil {
		w.tasks.RecordTask(task, err)
	}
}
