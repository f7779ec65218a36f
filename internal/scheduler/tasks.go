package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskWeeklyReport = "analytics.weekly_report"

// Weekly report triggers.
const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

type WeeklyReportPayload struct {
	Trigger string `json:"trigger"`
}

func NewWeeklyReportTask(payload WeeklyReportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWeeklyReport, data), nil
}

func ParseWeeklyReportPayload(task *asynq.Task) (WeeklyReportPayload, error) {
	var payload WeeklyReportPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return WeeklyReportPayload{}, err
	}
	return payload, nil
}
