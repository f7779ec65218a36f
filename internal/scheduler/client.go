package scheduler

import (
	"context"
	"errors"
	"time"

	"salesspark_backend/platform/config"

	"github.com/hibiken/asynq"
)

// manualRunWindow collapses repeated admin triggers into one queued run.
const manualRunWindow = 5 * time.Minute

// Client enqueues on-demand report runs from the api process.
type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
	opt, err := connection(cfg)
	if err != nil {
		return nil, err
	}
	return &Client{client: asynq.NewClient(opt), queue: queueName(cfg)}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueWeeklyReport queues a manual weekly report run. A trigger while an
// earlier manual run is still queued is accepted without a second task.
func (c *Client) EnqueueWeeklyReport(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewWeeklyReportTask(WeeklyReportPayload{Trigger: TriggerManual})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(c.queue),
		asynq.MaxRetry(3),
		asynq.Unique(manualRunWindow),
	)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	return err
}
