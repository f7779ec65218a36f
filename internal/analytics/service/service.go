// Package service computes pipeline analytics from live store aggregates.
package service

import (
	"context"
	"fmt"
	"time"

	"salesspark_backend/internal/analytics/ports"
	"salesspark_backend/internal/analytics/transport"
	"salesspark_backend/internal/events"
	"salesspark_backend/internal/leads/domain"
	"salesspark_backend/platform/logger"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	bestPlatformNone = "N/A"
	reportTimeLayout = "2006-01-02 15:04"
	snapshotKey      = "pipeline"
	snapshotTimeout  = 10 * time.Second
)

// pipelineStats holds the headline aggregates. Each field comes from its own
// query, so under concurrent inserts Total, Hot and AvgScore may describe
// slightly different moments. AvgScore is unrounded; it is 0 when the store
// is empty.
type pipelineStats struct {
	Total     int
	Hot       int
	Warm      int
	Campaigns int
	AvgScore  float64
}

func (p pipelineStats) snapshot() domain.PipelineSnapshot {
	return domain.NewPipelineSnapshot(p.Total, p.Hot, p.Warm, p.Campaigns, p.AvgScore)
}

// Service provides analytics over the lead pipeline.
type Service struct {
	reader    ports.PipelineReader
	eventBus  events.Bus
	scheduler ports.ReportScheduler
	log       *logger.Logger
	minLeads  int
	now       func() time.Time

	flight singleflight.Group
}

// New creates an analytics service. minLeads is the demo-data threshold
// shared by the dashboard and campaign prediction.
func New(reader ports.PipelineReader, eventBus events.Bus, minLeads int, log *logger.Logger) *Service {
	return &Service{
		reader:   reader,
		eventBus: eventBus,
		log:      log,
		minLeads: minLeads,
		now:      time.Now,
	}
}

// SetReportScheduler makes the admin trigger enqueue instead of generating inline.
func (s *Service) SetReportScheduler(scheduler ports.ReportScheduler) {
	s.scheduler = scheduler
}

// SetClock overrides the report timestamp source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// stats fans out the aggregate reads. Concurrent callers share one read,
// which runs detached from any single caller so one disconnect does not
// fail the others; each caller still stops waiting on its own ctx.
func (s *Service) stats(ctx context.Context) (pipelineStats, error) {
	ch := s.flight.DoChan(snapshotKey, func() (interface{}, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotTimeout)
		defer cancel()
		return s.loadStats(readCtx)
	})

	select {
	case <-ctx.Done():
		return pipelineStats{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return pipelineStats{}, res.Err
		}
		return res.Val.(pipelineStats), nil
	}
}

func (s *Service) loadStats(ctx context.Context) (pipelineStats, error) {
	var stats pipelineStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.reader.CountLeads(gctx, ports.LeadFilter{})
		stats.Total = n
		return err
	})
	g.Go(func() error {
		n, err := s.reader.CountLeads(gctx, ports.LeadFilter{Category: string(domain.CategoryHot)})
		stats.Hot = n
		return err
	})
	g.Go(func() error {
		n, err := s.reader.CountLeads(gctx, ports.LeadFilter{Category: string(domain.CategoryWarm)})
		stats.Warm = n
		return err
	})
	g.Go(func() error {
		n, err := s.reader.CountCampaigns(gctx, "")
		stats.Campaigns = n
		return err
	})
	g.Go(func() error {
		avg, _, err := s.reader.AverageScore(gctx)
		stats.AvgScore = avg
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithContext(ctx).DatabaseError("analytics.stats", err)
		return pipelineStats{}, err
	}
	return stats, nil
}

// Snapshot returns the live pipeline aggregates.
func (s *Service) Snapshot(ctx context.Context) (domain.PipelineSnapshot, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return domain.PipelineSnapshot{}, err
	}
	return stats.snapshot(), nil
}

// Dashboard returns the headline metrics, or the demo dataset when there
// is not enough live data.
func (s *Service) Dashboard(ctx context.Context) (transport.DashboardResponse, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return transport.DashboardResponse{}, err
	}

	if domain.UseSynthetic(domain.DataCounts{Leads: stats.Total, Campaigns: stats.Campaigns}, s.minLeads) {
		demo := domain.DemoDashboard()
		return transport.DashboardResponse{
			DataSource: domain.DataSourceSynthetic,
			Metrics:    dashboardMetrics(demo),
		}, nil
	}

	best, ok, err := s.reader.TopPlatform(ctx)
	if err != nil {
		return transport.DashboardResponse{}, err
	}
	if !ok {
		best = bestPlatformNone
	}

	return transport.DashboardResponse{
		DataSource: domain.DataSourceLive,
		Metrics: dashboardMetrics(domain.DashboardMetrics{
			TotalLeads:       stats.Total,
			HotLeads:         stats.Hot,
			AvgLeadScore:     domain.Round1(stats.AvgScore),
			TotalCampaigns:   stats.Campaigns,
			BestPlatform:     best,
			LeadQualityTrend: domain.DashboardTrend(stats.AvgScore),
		}),
	}, nil
}

func dashboardMetrics(m domain.DashboardMetrics) transport.DashboardMetrics {
	return transport.DashboardMetrics{
		TotalLeads:       m.TotalLeads,
		HotLeads:         m.HotLeads,
		AvgLeadScore:     m.AvgLeadScore,
		TotalCampaigns:   m.TotalCampaigns,
		BestPlatform:     m.BestPlatform,
		LeadQualityTrend: m.LeadQualityTrend,
	}
}

// SalesTrend compares the newest and oldest leads.
func (s *Service) SalesTrend(ctx context.Context) (transport.TrendResponse, error) {
	report, err := s.trend(ctx)
	if err != nil {
		return transport.TrendResponse{}, err
	}

	resp := transport.TrendResponse{
		Trend:            report.Trend,
		TrendDirection:   report.Direction,
		TrendReason:      report.TrendReason,
		Reason:           report.Reason,
		RiskFlags:        flags(report.RiskFlags),
		OpportunityFlags: flags(report.OpportunityFlags),
	}
	if m := report.Metrics; m != nil {
		resp.Metrics = &transport.TrendMetrics{
			TotalLeads: m.TotalLeads,
			RecentAvg:  m.RecentAvg,
			OlderAvg:   m.OlderAvg,
			HotLeads:   m.HotLeads,
			AvgScore:   m.AvgScore,
		}
	}
	return resp, nil
}

func (s *Service) trend(ctx context.Context) (domain.TrendReport, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return domain.TrendReport{}, err
	}

	in := domain.TrendInput{Total: stats.Total, Hot: stats.Hot, AvgScore: stats.AvgScore}
	if stats.Total >= domain.MinTrendLeads {
		window := domain.TrendWindow(stats.Total)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			scores, err := s.reader.NewestScores(gctx, window)
			in.Recent = scores
			return err
		})
		g.Go(func() error {
			scores, err := s.reader.OldestScores(gctx, window)
			in.Older = scores
			return err
		})
		if err := g.Wait(); err != nil {
			return domain.TrendReport{}, err
		}
	}
	return domain.AnalyzeTrend(in), nil
}

func flags(in []domain.Flag) []transport.Flag {
	out := make([]transport.Flag, 0, len(in))
	for _, f := range in {
		out = append(out, transport.Flag{Alert: f.Alert, Reason: f.Reason})
	}
	return out
}

// PipelineHealth classifies the pipeline.
func (s *Service) PipelineHealth(ctx context.Context) (transport.PipelineHealthResponse, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return transport.PipelineHealthResponse{}, err
	}
	return transport.PipelineHealthResponse{
		Health:         snap.Health,
		TotalLeads:     snap.TotalLeads,
		HotLeads:       snap.HotLeads,
		WarmLeads:      snap.WarmLeads,
		AvgScore:       snap.AvgScore,
		TotalCampaigns: snap.TotalCampaigns,
	}, nil
}

// Alerts lists the current pipeline warnings.
func (s *Service) Alerts(ctx context.Context) (transport.AlertsResponse, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return transport.AlertsResponse{}, err
	}

	alerts := domain.PipelineAlerts(stats.Total, stats.Hot, stats.AvgScore)
	out := make([]transport.Alert, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, transport.Alert{Level: a.Level, Message: a.Message, Reason: a.Reason})
	}
	return transport.AlertsResponse{Alerts: out}, nil
}

// PredictCampaign forecasts engagement for a campaign on platform.
func (s *Service) PredictCampaign(ctx context.Context, platform string) (transport.PredictCampaignResponse, error) {
	var (
		stats             pipelineStats
		platformCampaigns int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.stats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		platformCampaigns, err = s.reader.CountCampaigns(gctx, platform)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.PredictCampaignResponse{}, err
	}

	in := domain.PredictionInput{
		Platform:          platform,
		TotalLeads:        stats.Total,
		HotLeads:          stats.Hot,
		AvgScore:          stats.AvgScore,
		PlatformCampaigns: platformCampaigns,
	}
	source := domain.DataSourceLive
	if domain.UseSynthetic(domain.DataCounts{Leads: stats.Total, Campaigns: platformCampaigns}, s.minLeads) {
		in = domain.DemoPrediction(platform)
		source = domain.DataSourceSynthetic
	}

	p := domain.PredictCampaign(in, source)
	return transport.PredictCampaignResponse{
		EngagementProb: p.EngagementProb,
		ConversionProb: p.ConversionProb,
		RiskLevel:      p.RiskLevel,
		DataSource:     p.DataSource,
		MetricsUsed: transport.PredictionMetrics{
			TotalLeads:        p.Input.TotalLeads,
			AvgLeadScore:      domain.Round1(p.Input.AvgScore),
			PlatformCampaigns: p.Input.PlatformCampaigns,
			HotLeads:          p.Input.HotLeads,
		},
		Explanation: p.Explanation,
	}, nil
}

// Recommendations returns the next strategic move.
func (s *Service) Recommendations(ctx context.Context) (transport.RecommendationResponse, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return transport.RecommendationResponse{}, err
	}
	best, _, err := s.reader.TopPlatform(ctx)
	if err != nil {
		return transport.RecommendationResponse{}, err
	}

	r := domain.Recommend(stats.AvgScore, stats.Hot, best)
	return transport.RecommendationResponse{Action: r.Action, Tip: r.Tip, Platform: r.Platform}, nil
}

// Segments counts leads per audience segment.
func (s *Service) Segments(ctx context.Context) (transport.SegmentsResponse, error) {
	highValue := domain.HighValueMinScore
	highIntent := domain.HighIntentMinInterest
	priceSensitive := int64(domain.PriceSensitiveMaxBudget)
	lowIntent := domain.LowIntentMaxScore

	var resp transport.SegmentsResponse

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int, filter ports.LeadFilter) {
		g.Go(func() error {
			n, err := s.reader.CountLeads(gctx, filter)
			*dst = n
			return err
		})
	}
	count(&resp.HighValue, ports.LeadFilter{MinScore: &highValue})
	count(&resp.HighIntent, ports.LeadFilter{MinInterest: &highIntent})
	count(&resp.PriceSensitive, ports.LeadFilter{BelowBudget: &priceSensitive})
	count(&resp.LowIntent, ports.LeadFilter{BelowScore: &lowIntent})

	if err := g.Wait(); err != nil {
		return transport.SegmentsResponse{}, err
	}
	return resp, nil
}

// WeeklyReport renders the weekly summary on demand.
func (s *Service) WeeklyReport(ctx context.Context) (transport.WeeklyReportResponse, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return transport.WeeklyReportResponse{}, err
	}
	return transport.WeeklyReportResponse{
		Summary:     domain.WeeklySummary(stats.Total, stats.Hot, stats.AvgScore),
		GeneratedAt: s.now().Format(reportTimeLayout),
	}, nil
}

// BuildWeeklyReport assembles the full weekly report event.
func (s *Service) BuildWeeklyReport(ctx context.Context) (events.WeeklyReportGenerated, error) {
	stats, err := s.stats(ctx)
	if err != nil {
		return events.WeeklyReportGenerated{}, err
	}
	trend, err := s.trend(ctx)
	if err != nil {
		return events.WeeklyReportGenerated{}, err
	}

	highlights := make([]string, 0, 4)
	highlights = append(highlights, trend.Direction)
	for _, a := range domain.PipelineAlerts(stats.Total, stats.Hot, stats.AvgScore) {
		highlights = append(highlights, a.Message+": "+a.Reason)
	}
	for _, f := range trend.OpportunityFlags {
		highlights = append(highlights, f.Alert+": "+f.Reason)
	}

	now := s.now()
	year, week := now.ISOWeek()
	snap := stats.snapshot()
	return events.WeeklyReportGenerated{
		BaseEvent:    events.NewBaseEvent(),
		Week:         fmt.Sprintf("%d-W%02d", year, week),
		GeneratedAt:  now,
		TotalLeads:   stats.Total,
		HotLeads:     stats.Hot,
		AvgScore:     snap.AvgScore,
		Trend:        trend.Trend,
		DataSource:   domain.DataSourceLive,
		Summary:      domain.WeeklySummary(stats.Total, stats.Hot, stats.AvgScore),
		Highlights:   highlights,
		PipelineNote: fmt.Sprintf("Pipeline health: %s (%d hot, %d warm)", snap.Health, snap.HotLeads, snap.WarmLeads),
	}, nil
}

// GenerateWeeklyReport builds the report and delivers it to every
// subscriber, returning their combined failures.
func (s *Service) GenerateWeeklyReport(ctx context.Context) error {
	report, err := s.BuildWeeklyReport(ctx)
	if err != nil {
		return err
	}
	s.log.WithContext(ctx).Info("weekly report generated", "week", report.Week, "totalLeads", report.TotalLeads)
	return s.eventBus.PublishSync(ctx, report)
}

// TriggerWeeklyReport queues the report when a scheduler is configured and
// generates it inline otherwise.
func (s *Service) TriggerWeeklyReport(ctx context.Context) (transport.TriggerReportResponse, error) {
	if s.scheduler != nil {
		if err := s.scheduler.EnqueueWeeklyReport(ctx); err != nil {
			return transport.TriggerReportResponse{}, err
		}
		return transport.TriggerReportResponse{Status: "queued"}, nil
	}
	if err := s.GenerateWeeklyReport(ctx); err != nil {
		return transport.TriggerReportResponse{}, err
	}
	return transport.TriggerReportResponse{Status: "generated"}, nil
}
