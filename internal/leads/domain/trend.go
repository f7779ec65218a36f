package domain

import (
	"fmt"
	"math"
)

// Trend labels.
const (
	TrendInsufficient = "insufficient"
	TrendImproving    = "improving"
	TrendStable       = "stable"
	TrendDeclining    = "declining"
)

const (
	// MinTrendLeads is the smallest population the trend is computed for.
	MinTrendLeads = 5
	// MaxTrendWindow caps how many leads each side of the comparison uses.
	MaxTrendWindow = 7
	trendDelta     = 10.0
)

// Flag is a human-readable risk or opportunity signal.
type Flag struct {
	Alert  string
	Reason string
}

// TrendInput carries the aggregates and the two score windows. Recent holds
// the newest leads' scores, Older the earliest ones.
type TrendInput struct {
	Total    int
	Hot      int
	AvgScore float64
	Recent   []int
	Older    []int
}

// TrendMetrics are the numbers behind a computed trend.
type TrendMetrics struct {
	TotalLeads int
	RecentAvg  float64
	OlderAvg   float64
	HotLeads   int
	AvgScore   float64
}

// TrendReport is the outcome of AnalyzeTrend. Metrics is nil when there
// were too few leads.
type TrendReport struct {
	Trend            string
	Direction        string
	TrendReason      string
	Reason           string
	RiskFlags        []Flag
	OpportunityFlags []Flag
	Metrics          *TrendMetrics
}

// TrendWindow is how many leads to sample from each end: min(7, total/2).
func TrendWindow(total int) int {
	return min(MaxTrendWindow, total/2)
}

// AnalyzeTrend compares the recent and older windows and collects flags.
func AnalyzeTrend(in TrendInput) TrendReport {
	if in.Total < MinTrendLeads {
		return TrendReport{
			Trend:     TrendInsufficient,
			Direction: "Insufficient data - add more leads",
			Reason:    fmt.Sprintf("Only %d leads. Need at least %d for trend analysis.", in.Total, MinTrendLeads),
			RiskFlags: []Flag{},
			OpportunityFlags: []Flag{{
				Alert:  "Build your pipeline to unlock trend analysis",
				Reason: fmt.Sprintf("Only %d leads", in.Total),
			}},
		}
	}

	window := TrendWindow(in.Total)
	recentAvg := average(in.Recent)
	olderAvg := average(in.Older)
	diff := recentAvg - olderAvg

	report := TrendReport{
		RiskFlags:        []Flag{},
		OpportunityFlags: []Flag{},
		Metrics: &TrendMetrics{
			TotalLeads: in.Total,
			RecentAvg:  Round1(recentAvg),
			OlderAvg:   Round1(olderAvg),
			HotLeads:   in.Hot,
			AvgScore:   Round1(in.AvgScore),
		},
	}

	switch {
	case diff > trendDelta:
		report.Trend = TrendImproving
		report.Direction = fmt.Sprintf("↑ Lead quality up %.0f points", diff)
		report.TrendReason = fmt.Sprintf("Recent %d leads avg %.1f vs older %d avg %.1f", window, recentAvg, window, olderAvg)
	case diff < -trendDelta:
		report.Trend = TrendDeclining
		report.Direction = fmt.Sprintf("↓ Lead quality down %.0f points", math.Abs(diff))
		report.TrendReason = fmt.Sprintf("Recent %d leads avg %.1f vs older %d avg %.1f", window, recentAvg, window, olderAvg)
	default:
		report.Trend = TrendStable
		report.Direction = "→ Consistent lead quality"
		report.TrendReason = fmt.Sprintf("Recent avg %.1f ~= older avg %.1f (diff: %.1f)", recentAvg, olderAvg, diff)
	}

	if in.Hot == 0 && in.Total > MinTrendLeads {
		report.RiskFlags = append(report.RiskFlags, Flag{
			Alert:  "⚠️ No hot leads in pipeline",
			Reason: fmt.Sprintf("0 Hot leads out of %d total", in.Total),
		})
	}
	if in.AvgScore < QualityFloor {
		report.RiskFlags = append(report.RiskFlags, Flag{
			Alert:  "⚠️ Average lead quality below target",
			Reason: fmt.Sprintf("Current avg score: %.1f/100 (target: %d+)", in.AvgScore, QualityFloor),
		})
	}
	if report.Trend == TrendDeclining {
		report.RiskFlags = append(report.RiskFlags, Flag{
			Alert:  "⚠️ Quality trending downward",
			Reason: fmt.Sprintf("Recent leads %.0f points lower than older leads", math.Abs(diff)),
		})
	}

	if in.Hot >= StrongPipelineHot {
		report.OpportunityFlags = append(report.OpportunityFlags, Flag{
			Alert:  "🎯 Strong pipeline - prioritize closures",
			Reason: fmt.Sprintf("%d Hot leads ready for immediate action", in.Hot),
		})
	}
	if report.Trend == TrendImproving {
		report.OpportunityFlags = append(report.OpportunityFlags, Flag{
			Alert:  "📈 Quality improving - scale campaigns",
			Reason: fmt.Sprintf("Lead quality up %.0f points - campaigns are working", diff),
		})
	}

	return report
}

func average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}
