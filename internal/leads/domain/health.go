package domain

import "math"

// Pipeline health labels.
const (
	HealthEmpty          = "Empty"
	HealthHealthy        = "Healthy"
	HealthAtRisk         = "At Risk"
	HealthNeedsNurturing = "Needs Nurturing"
)

const (
	// HealthyMinHot is the hot-lead target for a healthy pipeline.
	HealthyMinHot = 3
	// QualityFloor is the average score below which quality is flagged.
	QualityFloor = 50
	// StrongPipelineHot is the hot-lead count treated as a strong pipeline.
	StrongPipelineHot = 5
)

// PipelineHealth classifies the lead population. Rules are checked in order.
func PipelineHealth(total, hot int, avgScore float64) string {
	switch {
	case total == 0:
		return HealthEmpty
	case hot >= HealthyMinHot && avgScore > QualityFloor:
		return HealthHealthy
	case hot == 0:
		return HealthAtRisk
	default:
		return HealthNeedsNurturing
	}
}

// PipelineSnapshot is the live aggregate the assistant and the health
// endpoint render from.
type PipelineSnapshot struct {
	TotalLeads     int
	HotLeads       int
	WarmLeads      int
	AvgScore       float64
	TotalCampaigns int
	Health         string
}

// NewPipelineSnapshot rounds the average and derives health.
func NewPipelineSnapshot(total, hot, warm, campaigns int, avgScore float64) PipelineSnapshot {
	return PipelineSnapshot{
		TotalLeads:     total,
		HotLeads:       hot,
		WarmLeads:      warm,
		AvgScore:       Round1(avgScore),
		TotalCampaigns: campaigns,
		Health:         PipelineHealth(total, hot, avgScore),
	}
}

// Round1 rounds to one decimal place, halves to even.
func Round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
