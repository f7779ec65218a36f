package domain

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	baselines, err := DefaultBaselines()
	if err != nil {
		t.Fatalf("load baselines: %v", err)
	}
	return NewAnalyzer(baselines, rand.NewPCG(7, 11))
}

func assertClose(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAnalyzeLongHorizonIsDeterministic(t *testing.T) {
	a := newTestAnalyzer(t)
	got := a.Analyze(MarketQuery{Industry: "SaaS", Region: "Global", Horizon: "Long"})

	assertClose(t, got.Demand, 100)
	assertClose(t, got.Competition, 85)
	assertClose(t, got.Opportunity, 90)
	if got.Matrix != (MarketMatrix{Competition: 85, Opportunity: 90, Saturation: 48}) {
		t.Fatalf("unexpected matrix %+v", got.Matrix)
	}

	want := []float64{60, 66, 72.6, 79.86, 87.846, 96.6306}
	if len(got.DemandTrend) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got.DemandTrend))
	}
	for i := range want {
		assertClose(t, got.DemandTrend[i], want[i])
	}

	if !strings.HasPrefix(got.Insight, "🚀 **High-Growth Opportunity:** SaaS in Global") {
		t.Fatalf("unexpected insight %q", got.Insight)
	}
	if got.Channels["LinkedIn"] != 90 {
		t.Fatalf("unexpected channels %v", got.Channels)
	}
}

func TestAnalyzeHealthcareAsiaPacificLong(t *testing.T) {
	a := newTestAnalyzer(t)

	for _, region := range []string{"APAC", "Asia Pacific"} {
		got := a.Analyze(MarketQuery{Industry: "healthcare", Region: region, Horizon: "Long"})
		if !strings.HasPrefix(got.Insight, "🔥 **Strategic Unicorn Logic:**") {
			t.Fatalf("%s: expected unicorn insight, got %q", region, got.Insight)
		}
		assertClose(t, got.DemandTrend[1], 69)
		assertClose(t, got.DemandTrend[5], 100)
	}

	mid := a.Analyze(MarketQuery{Industry: "healthcare", Region: "APAC", Horizon: "Mid"})
	if strings.HasPrefix(mid.Insight, "🔥") {
		t.Fatalf("unicorn insight is only for the long horizon")
	}
}

func TestAnalyzeInsightTone(t *testing.T) {
	a := newTestAnalyzer(t)

	tests := []struct {
		name   string
		query  MarketQuery
		prefix string
	}{
		{"cautious", MarketQuery{Industry: "finance", Region: "Europe", Horizon: "Mid"}, "⚠️ **Saturated Market:** finance in Europe"},
		{"neutral", MarketQuery{Industry: "technology", Region: "Global", Horizon: "Mid"}, "⚖️ **Stable Market:** technology in Global"},
		{"unknown industry uses saas", MarketQuery{Industry: "mining", Region: "Global", Horizon: "Mid"}, "⚠️ **Saturated Market:** mining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.query)
			if !strings.HasPrefix(got.Insight, tt.prefix) {
				t.Fatalf("expected prefix %q, got %q", tt.prefix, got.Insight)
			}
		})
	}
}

func TestAnalyzeNoiseStaysInBand(t *testing.T) {
	a := newTestAnalyzer(t)

	for run := 0; run < 20; run++ {
		flat := a.Analyze(MarketQuery{Industry: "ecommerce", Region: "Global", Horizon: "Short"})
		for _, v := range flat.DemandTrend {
			// 60 * 0.85 = 51 with +-8 noise.
			if v < 51-8-1e-9 || v > 51+8+1e-9 {
				t.Fatalf("flat point %v outside noise band", v)
			}
		}

		linear := a.Analyze(MarketQuery{Industry: "technology", Region: "Global", Horizon: "Mid"})
		for i, v := range linear.DemandTrend {
			center := 60 + 3.75*float64(i)
			if v < center-2-1e-9 || v > center+2+1e-9 {
				t.Fatalf("linear point %d = %v outside noise band around %v", i, v, center)
			}
		}
	}
}

func TestParseBaselinesRejectsMissingDefault(t *testing.T) {
	doc := []byte(`
default_industry: saas
default_region: Global
default_horizon: Mid
industries: {}
regions: {Global: {demand: 1, competition: 1}}
horizons: {Mid: {demand: 1, opportunity: 1, curve: linear}}
`)
	if _, err := ParseBaselines(doc); err == nil {
		t.Fatal("expected error for undefined default industry")
	}
}
