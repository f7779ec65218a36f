package domain

import (
	"fmt"
	"math"
)

// Data source labels reported next to analytics figures.
const (
	DataSourceSynthetic = "Simulated (Demo)"
	DataSourceLive      = "Live Database"
)

// DefaultSyntheticMinLeads is the lead count below which analytics fall
// back to the demo dataset.
const DefaultSyntheticMinLeads = 10

// DataCounts are the store sizes the demo fallback decision looks at.
type DataCounts struct {
	Leads     int
	Campaigns int
}

// UseSynthetic is the single demo-fallback predicate. Every analytics
// surface that offers demo data calls it with the same minimum.
func UseSynthetic(counts DataCounts, minLeads int) bool {
	return counts.Leads < minLeads || counts.Campaigns == 0
}

// Alert is an entry of the real-time alerts feed.
type Alert struct {
	Level   string
	Message string
	Reason  string
}

const lowActivityLeads = 3

// PipelineAlerts lists the warnings for the current aggregates.
func PipelineAlerts(total, hot int, avgScore float64) []Alert {
	alerts := make([]Alert, 0, 3)
	if hot == 0 {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Message: "⚠️ No hot leads in pipeline",
			Reason:  fmt.Sprintf("0 leads with score ≥ %d", HotThreshold),
		})
	}
	if avgScore < QualityFloor {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Message: "⚠️ Average lead quality below target",
			Reason:  fmt.Sprintf("Current avg score: %.1f/100 (target: %d+)", avgScore, QualityFloor),
		})
	}
	if total < lowActivityLeads {
		alerts = append(alerts, Alert{
			Level:   "info",
			Message: "📊 Low recent inbound activity",
			Reason:  fmt.Sprintf("Only %d leads in database", total),
		})
	}
	return alerts
}

// DashboardMetrics are the headline numbers of the dashboard.
type DashboardMetrics struct {
	TotalLeads       int
	HotLeads         int
	AvgLeadScore     float64
	TotalCampaigns   int
	BestPlatform     string
	LeadQualityTrend string
}

// DemoDashboard is the fixed demo dataset shown when UseSynthetic fires.
func DemoDashboard() DashboardMetrics {
	return DashboardMetrics{
		TotalLeads:       20,
		HotLeads:         5,
		AvgLeadScore:     56.5,
		TotalCampaigns:   12,
		BestPlatform:     "LinkedIn",
		LeadQualityTrend: "Stable",
	}
}

// DashboardTrend is the coarse quality label shown on the live dashboard.
func DashboardTrend(avgScore float64) string {
	if avgScore > 60 {
		return "Improving"
	}
	return "Stable"
}

// PredictionInput is what the campaign prediction is computed from.
type PredictionInput struct {
	Platform          string
	TotalLeads        int
	HotLeads          int
	AvgScore          float64
	PlatformCampaigns int
}

// DemoPrediction replaces the live input when UseSynthetic fires.
func DemoPrediction(platform string) PredictionInput {
	return PredictionInput{
		Platform:          platform,
		TotalLeads:        20,
		HotLeads:          5,
		AvgScore:          58.0,
		PlatformCampaigns: 3,
	}
}

// CampaignPrediction is the heuristic engagement forecast.
type CampaignPrediction struct {
	EngagementProb int
	ConversionProb int
	RiskLevel      string
	DataSource     string
	Input          PredictionInput
	Explanation    string
}

// PredictCampaign estimates engagement from lead quality and platform history.
func PredictCampaign(in PredictionInput, dataSource string) CampaignPrediction {
	base := 40 + in.AvgScore*0.6
	if in.PlatformCampaigns == 0 {
		base -= 10
	}
	engagement := int(math.Max(30, math.Min(90, base)))
	conversion := int(math.RoundToEven(float64(engagement) * 0.15))

	risk := "Medium"
	switch {
	case in.PlatformCampaigns == 0:
		risk = "High"
	case in.AvgScore >= 60:
		risk = "Low"
	}

	return CampaignPrediction{
		EngagementProb: engagement,
		ConversionProb: conversion,
		RiskLevel:      risk,
		DataSource:     dataSource,
		Input:          in,
		Explanation: fmt.Sprintf("Based on %d leads (avg: %.1f/100) and %d %s campaigns. %s risk.",
			in.TotalLeads, in.AvgScore, in.PlatformCampaigns, in.Platform, risk),
	}
}

// DefaultPlatform is suggested when no campaign has been recorded yet.
const DefaultPlatform = "LinkedIn"

// Recommendation is the single strategic suggestion for the pipeline.
type Recommendation struct {
	Action   string
	Tip      string
	Platform string
}

// Recommend picks the next strategic move from quality and hot-lead count.
func Recommend(avgScore float64, hot int, bestPlatform string) Recommendation {
	if bestPlatform == "" {
		bestPlatform = DefaultPlatform
	}
	switch {
	case avgScore < QualityFloor:
		return Recommendation{
			Action:   "Focus on lead quality improvement",
			Tip:      fmt.Sprintf("Current average score is below %d. Implement better targeting and qualification criteria.", QualityFloor),
			Platform: bestPlatform,
		}
	case hot < StrongPipelineHot:
		return Recommendation{
			Action:   "Increase hot lead pipeline",
			Tip:      fmt.Sprintf("Only %d hot leads in pipeline. Launch targeted campaigns on %s.", hot, bestPlatform),
			Platform: bestPlatform,
		}
	default:
		return Recommendation{
			Action:   "Optimize conversion process",
			Tip:      fmt.Sprintf("Strong pipeline detected. Focus on closing hot leads and scaling %s campaigns.", bestPlatform),
			Platform: bestPlatform,
		}
	}
}

// Segment boundaries for GET /segments.
const (
	HighValueMinScore       = HotThreshold
	HighIntentMinInterest   = 8
	PriceSensitiveMaxBudget = 20000
	LowIntentMaxScore       = 40
)

// WeeklySummary renders the one-paragraph weekly digest.
func WeeklySummary(total, hot int, avgScore float64) string {
	summary := fmt.Sprintf("This week: %d total leads with %d hot prospects. Average lead quality: %.0f/100. ", total, hot, avgScore)
	switch {
	case hot >= StrongPipelineHot:
		summary += "Strong pipeline — prioritize immediate outreach to hot leads."
	case avgScore < QualityFloor:
		summary += "Lead quality below target — review targeting criteria."
	default:
		summary += "Moderate pipeline — continue nurturing warm leads."
	}
	return summary
}
