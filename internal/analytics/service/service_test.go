package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"salesspark_backend/internal/analytics/ports"
	"salesspark_backend/internal/events"
	"salesspark_backend/internal/leads/domain"
	"salesspark_backend/platform/logger"
)

// fakeReader keeps leads in insertion order and campaigns as platform names.
type fakeReader struct {
	leads     []domain.Lead
	platforms []string
	err       error
	calls     atomic.Int32
}

func (f *fakeReader) addLead(budget int64, interest int) {
	r := domain.ScoreLead(budget, interest)
	f.leads = append(f.leads, domain.Lead{
		ID: int64(len(f.leads) + 1), Budget: budget, Interest: interest, Score: r.Score, Category: r.Category,
	})
}

func (f *fakeReader) addLeadWithScore(score int) {
	f.leads = append(f.leads, domain.Lead{
		ID: int64(len(f.leads) + 1), Interest: 5, Score: score, Category: domain.CategoryForScore(score),
	})
}

func (f *fakeReader) CountLeads(_ context.Context, filter ports.LeadFilter) (int, error) {
	f.calls.Add(1)
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, l := range f.leads {
		switch {
		case filter.Category != "" && string(l.Category) != filter.Category:
		case filter.MinScore != nil && l.Score < *filter.MinScore:
		case filter.BelowScore != nil && l.Score >= *filter.BelowScore:
		case filter.MinInterest != nil && l.Interest < *filter.MinInterest:
		case filter.BelowBudget != nil && l.Budget >= *filter.BelowBudget:
		default:
			n++
		}
	}
	return n, nil
}

func (f *fakeReader) AverageScore(context.Context) (float64, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	if len(f.leads) == 0 {
		return 0, false, nil
	}
	sum := 0
	for _, l := range f.leads {
		sum += l.Score
	}
	return float64(sum) / float64(len(f.leads)), true, nil
}

func (f *fakeReader) NewestScores(_ context.Context, n int) ([]int, error) {
	out := []int{}
	for i := len(f.leads) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, f.leads[i].Score)
	}
	return out, nil
}

func (f *fakeReader) OldestScores(_ context.Context, n int) ([]int, error) {
	out := []int{}
	for i := 0; i < len(f.leads) && len(out) < n; i++ {
		out = append(out, f.leads[i].Score)
	}
	return out, nil
}

func (f *fakeReader) CountCampaigns(_ context.Context, platform string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if platform == "" {
		return len(f.platforms), nil
	}
	n := 0
	for _, p := range f.platforms {
		if p == platform {
			n++
		}
	}
	return n, nil
}

func (f *fakeReader) TopPlatform(context.Context) (string, bool, error) {
	counts := map[string]int{}
	best, bestN := "", 0
	for _, p := range f.platforms {
		counts[p]++
		if counts[p] > bestN {
			best, bestN = p, counts[p]
		}
	}
	return best, bestN > 0, nil
}

type syncBus struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (b *syncBus) Publish(ctx context.Context, event events.Event) { _ = b.PublishSync(ctx, event) }
func (b *syncBus) PublishSync(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
	return b.err
}
func (b *syncBus) Subscribe(string, events.Handler) {}

func newService(reader *fakeReader) (*Service, *syncBus) {
	bus := &syncBus{}
	svc := New(reader, bus, domain.DefaultSyntheticMinLeads, logger.Discard())
	svc.SetClock(func() time.Time { return time.Date(2026, 10, 12, 8, 30, 0, 0, time.UTC) })
	return svc, bus
}

func TestDashboardFallsBackToDemoData(t *testing.T) {
	reader := &fakeReader{}
	for i := 0; i < 12; i++ {
		reader.addLead(60000, 9)
	}
	svc, _ := newService(reader)

	// Enough leads but no campaigns.
	resp, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if resp.DataSource != domain.DataSourceSynthetic || resp.Metrics.TotalLeads != 20 || resp.Metrics.AvgLeadScore != 56.5 {
		t.Fatalf("expected demo dashboard, got %+v", resp)
	}

	reader.platforms = []string{"Email", "LinkedIn", "LinkedIn"}
	resp, err = svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if resp.DataSource != domain.DataSourceLive {
		t.Fatalf("expected live data, got %s", resp.DataSource)
	}
	m := resp.Metrics
	if m.TotalLeads != 12 || m.HotLeads != 12 || m.TotalCampaigns != 3 || m.BestPlatform != "LinkedIn" || m.LeadQualityTrend != "Improving" {
		t.Fatalf("unexpected live metrics %+v", m)
	}
}

func TestDashboardThresholdIsShared(t *testing.T) {
	reader := &fakeReader{platforms: []string{"LinkedIn"}}
	for i := 0; i < 9; i++ {
		reader.addLead(1000, 1)
	}
	svc, _ := newService(reader)

	dash, _ := svc.Dashboard(context.Background())
	pred, _ := svc.PredictCampaign(context.Background(), "LinkedIn")
	if dash.DataSource != domain.DataSourceSynthetic || pred.DataSource != domain.DataSourceSynthetic {
		t.Fatalf("9 leads should be synthetic everywhere: %s / %s", dash.DataSource, pred.DataSource)
	}

	reader.addLead(1000, 1)
	dash, _ = svc.Dashboard(context.Background())
	pred, _ = svc.PredictCampaign(context.Background(), "LinkedIn")
	if dash.DataSource != domain.DataSourceLive || pred.DataSource != domain.DataSourceLive {
		t.Fatalf("10 leads should be live everywhere: %s / %s", dash.DataSource, pred.DataSource)
	}
}

func TestPredictCampaignLive(t *testing.T) {
	reader := &fakeReader{platforms: []string{"LinkedIn", "Email"}}
	for i := 0; i < 10; i++ {
		reader.addLead(60000, 9) // score 100
	}
	svc, _ := newService(reader)

	resp, err := svc.PredictCampaign(context.Background(), "LinkedIn")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	// 40 + 100*0.6 = 100, clamped to 90; 90*0.15 = 13.5 rounds to 14.
	if resp.EngagementProb != 90 || resp.ConversionProb != 14 || resp.RiskLevel != "Low" {
		t.Fatalf("unexpected prediction %+v", resp)
	}
	if resp.MetricsUsed.PlatformCampaigns != 1 || resp.MetricsUsed.TotalLeads != 10 {
		t.Fatalf("unexpected metrics used %+v", resp.MetricsUsed)
	}
	if resp.Explanation != "Based on 10 leads (avg: 100.0/100) and 1 LinkedIn campaigns. Low risk." {
		t.Fatalf("unexpected explanation %q", resp.Explanation)
	}

	resp, _ = svc.PredictCampaign(context.Background(), "TikTok")
	if resp.DataSource != domain.DataSourceSynthetic || resp.MetricsUsed.PlatformCampaigns != 3 {
		t.Fatalf("unused platform should use demo data, got %+v", resp)
	}
}

func TestSalesTrend(t *testing.T) {
	t.Run("insufficient", func(t *testing.T) {
		reader := &fakeReader{}
		for i := 0; i < 4; i++ {
			reader.addLeadWithScore(70)
		}
		svc, _ := newService(reader)

		resp, err := svc.SalesTrend(context.Background())
		if err != nil {
			t.Fatalf("trend: %v", err)
		}
		if resp.Trend != domain.TrendInsufficient || resp.Metrics != nil || len(resp.RiskFlags) != 0 {
			t.Fatalf("unexpected insufficient trend %+v", resp)
		}
		if resp.Reason != "Only 4 leads. Need at least 5 for trend analysis." {
			t.Fatalf("unexpected reason %q", resp.Reason)
		}
	})

	t.Run("declining", func(t *testing.T) {
		reader := &fakeReader{}
		for _, s := range []int{90, 90, 90, 90, 90, 40, 40, 40, 40, 40} {
			reader.addLeadWithScore(s)
		}
		svc, _ := newService(reader)

		resp, err := svc.SalesTrend(context.Background())
		if err != nil {
			t.Fatalf("trend: %v", err)
		}
		if resp.Trend != domain.TrendDeclining || resp.TrendDirection != "↓ Lead quality down 50 points" {
			t.Fatalf("unexpected trend %+v", resp)
		}
		if resp.Metrics == nil || resp.Metrics.RecentAvg != 40 || resp.Metrics.OlderAvg != 90 {
			t.Fatalf("unexpected metrics %+v", resp.Metrics)
		}
		found := false
		for _, f := range resp.RiskFlags {
			if f.Alert == "⚠️ Quality trending downward" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected downward risk flag, got %+v", resp.RiskFlags)
		}
	})
}

func TestPipelineHealthAndAlerts(t *testing.T) {
	reader := &fakeReader{}
	svc, _ := newService(reader)

	health, err := svc.PipelineHealth(context.Background())
	if err != nil || health.Health != domain.HealthEmpty {
		t.Fatalf("expected Empty, got %+v (%v)", health, err)
	}

	for i := 0; i < 3; i++ {
		reader.addLead(1000, 1)
	}
	health, _ = svc.PipelineHealth(context.Background())
	if health.Health != domain.HealthAtRisk {
		t.Fatalf("expected At Risk, got %s", health.Health)
	}

	alerts, err := svc.Alerts(context.Background())
	if err != nil {
		t.Fatalf("alerts: %v", err)
	}
	if len(alerts.Alerts) != 2 {
		t.Fatalf("expected no-hot and quality alerts, got %+v", alerts.Alerts)
	}
	if alerts.Alerts[1].Reason != "Current avg score: 30.0/100 (target: 50+)" {
		t.Fatalf("unexpected reason %q", alerts.Alerts[1].Reason)
	}
}

func TestSegments(t *testing.T) {
	reader := &fakeReader{}
	reader.addLead(60000, 9) // 100, high value, high intent
	reader.addLead(15000, 8) // 80, high value, high intent, price sensitive
	reader.addLead(1000, 1)  // 30, price sensitive, low intent
	svc, _ := newService(reader)

	resp, err := svc.Segments(context.Background())
	if err != nil {
		t.Fatalf("segments: %v", err)
	}
	if resp.HighValue != 2 || resp.HighIntent != 2 || resp.PriceSensitive != 2 || resp.LowIntent != 1 {
		t.Fatalf("unexpected segments %+v", resp)
	}
}

func TestRecommendationsDefaultPlatform(t *testing.T) {
	reader := &fakeReader{}
	reader.addLead(60000, 9)
	svc, _ := newService(reader)

	resp, err := svc.Recommendations(context.Background())
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if resp.Action != "Increase hot lead pipeline" || resp.Platform != domain.DefaultPlatform {
		t.Fatalf("unexpected recommendation %+v", resp)
	}
}

func TestWeeklyReport(t *testing.T) {
	reader := &fakeReader{}
	for i := 0; i < 6; i++ {
		reader.addLead(60000, 9)
	}
	svc, bus := newService(reader)

	resp, err := svc.WeeklyReport(context.Background())
	if err != nil {
		t.Fatalf("weekly report: %v", err)
	}
	if resp.GeneratedAt != "2026-10-12 08:30" {
		t.Fatalf("unexpected generated_at %q", resp.GeneratedAt)
	}
	if !strings.HasPrefix(resp.Summary, "This week: 6 total leads with 6 hot prospects.") {
		t.Fatalf("unexpected summary %q", resp.Summary)
	}

	out, err := svc.TriggerWeeklyReport(context.Background())
	if err != nil || out.Status != "generated" {
		t.Fatalf("expected inline generation, got %+v (%v)", out, err)
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected report event, got %d", len(bus.published))
	}
	report := bus.published[0].(events.WeeklyReportGenerated)
	if report.Week != "2026-W42" || report.TotalLeads != 6 || report.Trend != domain.TrendStable {
		t.Fatalf("unexpected report %+v", report)
	}
}

type fakeScheduler struct{ calls int }

func (f *fakeScheduler) EnqueueWeeklyReport(context.Context) error {
	f.calls++
	return nil
}

func TestTriggerWeeklyReportEnqueues(t *testing.T) {
	svc, bus := newService(&fakeReader{})
	sched := &fakeScheduler{}
	svc.SetReportScheduler(sched)

	out, err := svc.TriggerWeeklyReport(context.Background())
	if err != nil || out.Status != "queued" || sched.calls != 1 {
		t.Fatalf("expected queued, got %+v (%v) calls=%d", out, err, sched.calls)
	}
	if len(bus.published) != 0 {
		t.Fatal("queued trigger must not publish inline")
	}
}

func TestStoreErrorsPropagate(t *testing.T) {
	reader := &fakeReader{err: errors.New("store down")}
	svc, _ := newService(reader)

	if _, err := svc.Dashboard(context.Background()); err == nil {
		t.Fatal("expected error from dashboard")
	}
	if _, err := svc.Segments(context.Background()); err == nil {
		t.Fatal("expected error from segments")
	}
}

// gatedReader holds every lead count until gate is closed or the read's
// context ends.
type gatedReader struct {
	*fakeReader
	gate    chan struct{}
	entered chan struct{}
}

func (g *gatedReader) CountLeads(ctx context.Context, filter ports.LeadFilter) (int, error) {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	select {
	case <-g.gate:
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	return g.fakeReader.CountLeads(ctx, filter)
}

func TestSharedSnapshotSurvivesCallerCancel(t *testing.T) {
	base := &fakeReader{platforms: []string{"LinkedIn"}}
	base.addLeadWithScore(90)
	base.addLeadWithScore(60)
	reader := &gatedReader{fakeReader: base, gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	svc := New(reader, &syncBus{}, domain.DefaultSyntheticMinLeads, logger.Discard())

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := svc.PipelineHealth(leaderCtx)
		leaderErr <- err
	}()
	<-reader.entered

	type result struct {
		total int
		err   error
	}
	follower := make(chan result, 1)
	go func() {
		out, err := svc.PipelineHealth(context.Background())
		follower <- result{out.TotalLeads, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller: expected context.Canceled, got %v", err)
	}

	close(reader.gate)
	got := <-follower
	if got.err != nil {
		t.Fatalf("live caller failed after another caller cancelled: %v", got.err)
	}
	if got.total != 2 {
		t.Fatalf("expected 2 leads, got %d", got.total)
	}
}
