// Package ports defines what the analytics domain reads from the lead and
// campaign stores. Implementations live in internal/adapters so analytics
// never imports another module's repository.
package ports

import "context"

// LeadFilter narrows a lead count. Zero values are ignored; set fields
// are ANDed.
type LeadFilter struct {
	Category    string
	MinScore    *int
	BelowScore  *int
	MinInterest *int
	BelowBudget *int64
}

// PipelineReader is the read model behind every analytics surface.
type PipelineReader interface {
	CountLeads(ctx context.Context, filter LeadFilter) (int, error)
	// AverageScore reports ok=false when there are no leads.
	AverageScore(ctx context.Context) (avg float64, ok bool, err error)
	// NewestScores returns up to n scores, most recently created first.
	NewestScores(ctx context.Context, n int) ([]int, error)
	// OldestScores returns up to n scores, earliest created first.
	OldestScores(ctx context.Context, n int) ([]int, error)

	// CountCampaigns counts campaigns; an empty platform counts all of them.
	CountCampaigns(ctx context.Context, platform string) (int, error)
	TopPlatform(ctx context.Context) (platform string, ok bool, err error)
}

// ReportScheduler queues the weekly report on the background worker.
type ReportScheduler interface {
	EnqueueWeeklyReport(ctx context.Context) error
}
