// Package telemetry turns domain events into Prometheus samples.
package telemetry

import (
	"context"

	"salesspark_backend/internal/events"
)

// Sink is the subset of platform/metrics the recorder writes to.
type Sink interface {
	RecordLeadScored(category string, score int)
	RecordCampaignCreated(platform string)
	RecordChatTurn(intent string)
	RecordWeeklyReport(dataSource string)
}

// Recorder subscribes to domain events and records them.
type Recorder struct {
	sink Sink
}

func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

func (r *Recorder) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadScored{}.EventName(), r)
	bus.Subscribe(events.CampaignCreated{}.EventName(), r)
	bus.Subscribe(events.ChatTurnCompleted{}.EventName(), r)
	bus.Subscribe(events.WeeklyReportGenerated{}.EventName(), r)
}

func (r *Recorder) Handle(_ context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadScored:
		r.sink.RecordLeadScored(e.Category, e.Score)
	case events.CampaignCreated:
		r.sink.RecordCampaignCreated(e.Platform)
	case events.ChatTurnCompleted:
		r.sink.RecordChatTurn(e.Intent)
	case events.WeeklyReportGenerated:
		r.sink.RecordWeeklyReport(e.DataSource)
	}
	return nil
}
