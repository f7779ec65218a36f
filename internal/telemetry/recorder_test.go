package telemetry

import (
	"context"
	"testing"

	"salesspark_backend/internal/events"
	"salesspark_backend/platform/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCountsEvents(t *testing.T) {
	m := metrics.New()
	r := NewRecorder(m)
	ctx := context.Background()

	for _, e := range []events.Event{
		events.LeadScored{LeadID: 1, Score: 100, Category: "Hot"},
		events.LeadScored{LeadID: 2, Score: 30, Category: "Cold"},
		events.LeadScored{LeadID: 3, Score: 85, Category: "Hot"},
		events.CampaignCreated{CampaignID: 1, Platform: "LinkedIn"},
		events.ChatTurnCompleted{SessionID: "s", Intent: "general", HistoryLen: 1},
		events.WeeklyReportGenerated{DataSource: "Live Database"},
	} {
		if err := r.Handle(ctx, e); err != nil {
			t.Fatalf("handle %s: %v", e.EventName(), err)
		}
	}

	if got := testutil.ToFloat64(m.LeadsScored.WithLabelValues("Hot")); got != 2 {
		t.Fatalf("expected 2 hot leads, got %v", got)
	}
	if got := testutil.ToFloat64(m.Campaigns.WithLabelValues("LinkedIn")); got != 1 {
		t.Fatalf("expected 1 campaign, got %v", got)
	}
	if got := testutil.ToFloat64(m.ChatTurns.WithLabelValues("general")); got != 1 {
		t.Fatalf("expected 1 chat turn, got %v", got)
	}
	if got := testutil.ToFloat64(m.WeeklyReports.WithLabelValues("Live Database")); got != 1 {
		t.Fatalf("expected 1 weekly report, got %v", got)
	}
}

func TestRecorderSubscribesOnBus(t *testing.T) {
	m := metrics.New()
	bus := events.NewInMemoryBus(nil)
	NewRecorder(m).RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), events.ChatTurnCompleted{Intent: "explain"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if got := testutil.ToFloat64(m.ChatTurns.WithLabelValues("explain")); got != 1 {
		t.Fatalf("expected subscribed recorder to count the turn, got %v", got)
	}
}
