package domain

import "testing"

func repeat(score, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = score
	}
	return out
}

func TestPipelineHealthRuleOrder(t *testing.T) {
	cases := []struct {
		total, hot int
		avg        float64
		want       string
	}{
		{0, 0, 0, HealthEmpty},
		{10, 3, 50.1, HealthHealthy},
		{10, 3, 50, HealthNeedsNurturing},
		{10, 2, 90, HealthNeedsNurturing},
		{10, 0, 70, HealthAtRisk},
		{10, 0, 40, HealthAtRisk},
	}
	for _, tc := range cases {
		if got := PipelineHealth(tc.total, tc.hot, tc.avg); got != tc.want {
			t.Errorf("PipelineHealth(%d, %d, %v) = %q, want %q", tc.total, tc.hot, tc.avg, got, tc.want)
		}
	}
}

func TestTrendWindow(t *testing.T) {
	cases := map[int]int{5: 2, 9: 4, 14: 7, 15: 7, 100: 7}
	for total, want := range cases {
		if got := TrendWindow(total); got != want {
			t.Errorf("TrendWindow(%d) = %d, want %d", total, got, want)
		}
	}
}

func TestAnalyzeTrendBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		recent int
		older  int
		want   string
	}{
		{"diff 11", 61, 50, TrendImproving},
		{"diff 10", 60, 50, TrendStable},
		{"diff -10", 40, 50, TrendStable},
		{"diff -11", 39, 50, TrendDeclining},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := AnalyzeTrend(TrendInput{
				Total:    14,
				Hot:      1,
				AvgScore: 55,
				Recent:   repeat(tc.recent, 7),
				Older:    repeat(tc.older, 7),
			})
			if report.Trend != tc.want {
				t.Fatalf("trend = %q, want %q", report.Trend, tc.want)
			}
		})
	}
}

func TestAnalyzeTrendInsufficientData(t *testing.T) {
	report := AnalyzeTrend(TrendInput{Total: 3, Recent: repeat(0, 1), Older: repeat(100, 1)})
	if report.Trend != TrendInsufficient {
		t.Fatalf("trend = %q, want insufficient", report.Trend)
	}
	if report.Metrics != nil {
		t.Fatal("insufficient report must not carry metrics")
	}
	if report.RiskFlags == nil || len(report.RiskFlags) != 0 {
		t.Fatal("risk flags should be an empty list")
	}
	if report.Reason != "Only 3 leads. Need at least 5 for trend analysis." {
		t.Errorf("unexpected reason %q", report.Reason)
	}
}

func TestAnalyzeTrendFlags(t *testing.T) {
	declining := AnalyzeTrend(TrendInput{
		Total:    10,
		Hot:      0,
		AvgScore: 42,
		Recent:   repeat(30, 5),
		Older:    repeat(55, 5),
	})
	if len(declining.RiskFlags) != 3 {
		t.Fatalf("expected 3 risk flags, got %+v", declining.RiskFlags)
	}
	if declining.RiskFlags[0].Reason != "0 Hot leads out of 10 total" {
		t.Errorf("unexpected hot-lead reason %q", declining.RiskFlags[0].Reason)
	}
	if declining.RiskFlags[2].Reason != "Recent leads 25 points lower than older leads" {
		t.Errorf("unexpected declining reason %q", declining.RiskFlags[2].Reason)
	}
	if declining.Direction != "↓ Lead quality down 25 points" {
		t.Errorf("unexpected direction %q", declining.Direction)
	}
	if len(declining.OpportunityFlags) != 0 {
		t.Errorf("expected no opportunities, got %+v", declining.OpportunityFlags)
	}

	improving := AnalyzeTrend(TrendInput{
		Total:    20,
		Hot:      6,
		AvgScore: 70,
		Recent:   repeat(90, 7),
		Older:    repeat(60, 7),
	})
	if len(improving.RiskFlags) != 0 {
		t.Errorf("expected no risks, got %+v", improving.RiskFlags)
	}
	if len(improving.OpportunityFlags) != 2 {
		t.Fatalf("expected 2 opportunities, got %+v", improving.OpportunityFlags)
	}
	if improving.Metrics.RecentAvg != 90 || improving.Metrics.OlderAvg != 60 {
		t.Errorf("unexpected metrics %+v", improving.Metrics)
	}
}

func TestAnalyzeTrendNoHotRiskNeedsMoreThanFive(t *testing.T) {
	report := AnalyzeTrend(TrendInput{Total: 5, Hot: 0, AvgScore: 60, Recent: repeat(60, 2), Older: repeat(60, 2)})
	if len(report.RiskFlags) != 0 {
		t.Fatalf("five leads should not trigger the no-hot flag, got %+v", report.RiskFlags)
	}
}
