package domain

import (
	"strings"
	"testing"
)

func TestUseSynthetic(t *testing.T) {
	cases := []struct {
		counts DataCounts
		want   bool
	}{
		{DataCounts{Leads: 9, Campaigns: 3}, true},
		{DataCounts{Leads: 10, Campaigns: 0}, true},
		{DataCounts{Leads: 10, Campaigns: 1}, false},
		{DataCounts{Leads: 50, Campaigns: 2}, false},
	}
	for _, tc := range cases {
		if got := UseSynthetic(tc.counts, DefaultSyntheticMinLeads); got != tc.want {
			t.Errorf("UseSynthetic(%+v) = %v, want %v", tc.counts, got, tc.want)
		}
	}
}

func TestPipelineAlerts(t *testing.T) {
	alerts := PipelineAlerts(2, 0, 30)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %+v", alerts)
	}
	if alerts[2].Level != "info" || alerts[2].Reason != "Only 2 leads in database" {
		t.Errorf("unexpected activity alert %+v", alerts[2])
	}
	if got := PipelineAlerts(10, 2, 65); len(got) != 0 {
		t.Fatalf("expected no alerts, got %+v", got)
	}
}

func TestPredictCampaign(t *testing.T) {
	cases := []struct {
		name       string
		in         PredictionInput
		engagement int
		conversion int
		risk       string
	}{
		{"demo", DemoPrediction("LinkedIn"), 74, 11, "Medium"},
		{"no platform history", PredictionInput{Platform: "TikTok", TotalLeads: 12, AvgScore: 50}, 60, 9, "High"},
		{"clamped high", PredictionInput{Platform: "Email", TotalLeads: 12, AvgScore: 100, PlatformCampaigns: 2}, 90, 14, "Low"},
		{"clamped low", PredictionInput{Platform: "Email", TotalLeads: 12, AvgScore: 0}, 30, 4, "High"},
		{"half rounds to even", PredictionInput{Platform: "Email", TotalLeads: 12, AvgScore: 50, PlatformCampaigns: 1}, 70, 10, "Medium"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PredictCampaign(tc.in, DataSourceLive)
			if got.EngagementProb != tc.engagement || got.ConversionProb != tc.conversion || got.RiskLevel != tc.risk {
				t.Fatalf("PredictCampaign = %d/%d/%s, want %d/%d/%s",
					got.EngagementProb, got.ConversionProb, got.RiskLevel, tc.engagement, tc.conversion, tc.risk)
			}
		})
	}

	got := PredictCampaign(DemoPrediction("LinkedIn"), DataSourceSynthetic)
	want := "Based on 20 leads (avg: 58.0/100) and 3 LinkedIn campaigns. Medium risk."
	if got.Explanation != want {
		t.Fatalf("explanation = %q, want %q", got.Explanation, want)
	}
}

func TestRecommend(t *testing.T) {
	if got := Recommend(40, 10, ""); got.Action != "Focus on lead quality improvement" || got.Platform != DefaultPlatform {
		t.Fatalf("unexpected low-quality recommendation %+v", got)
	}
	if got := Recommend(60, 2, "Email"); got.Tip != "Only 2 hot leads in pipeline. Launch targeted campaigns on Email." {
		t.Fatalf("unexpected pipeline tip %q", got.Tip)
	}
	if got := Recommend(60, 5, "Email"); got.Action != "Optimize conversion process" {
		t.Fatalf("unexpected strong-pipeline action %q", got.Action)
	}
}

func TestWeeklySummary(t *testing.T) {
	got := WeeklySummary(15, 2, 52.4)
	if !strings.HasPrefix(got, "This week: 15 total leads with 2 hot prospects. Average lead quality: 52/100. ") {
		t.Fatalf("unexpected summary %q", got)
	}
	if !strings.HasSuffix(got, "continue nurturing warm leads.") {
		t.Fatalf("expected moderate pipeline note, got %q", got)
	}
	if !strings.Contains(WeeklySummary(20, 6, 40), "Strong pipeline") {
		t.Fatal("five or more hot leads should read as a strong pipeline")
	}
	if !strings.Contains(WeeklySummary(20, 1, 40), "below target") {
		t.Fatal("low average should be flagged")
	}
}

func TestDashboardTrend(t *testing.T) {
	if DashboardTrend(60) != "Stable" || DashboardTrend(60.1) != "Improving" {
		t.Fatal("dashboard trend flips strictly above 60")
	}
}
