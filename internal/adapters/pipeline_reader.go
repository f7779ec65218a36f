package adapters

import (
	"context"

	"salesspark_backend/internal/analytics/ports"
	camprepo "salesspark_backend/internal/campaigns/repository"
	"salesspark_backend/internal/leads/domain"
	leadrepo "salesspark_backend/internal/leads/repository"
)

// PipelineReader adapts the lead and campaign stores for analytics,
// satisfying ports.PipelineReader.
type PipelineReader struct {
	leads     leadrepo.LeadReader
	campaigns camprepo.CampaignReader
}

func NewPipelineReader(leads leadrepo.LeadReader, campaigns camprepo.CampaignReader) *PipelineReader {
	return &PipelineReader{leads: leads, campaigns: campaigns}
}

var _ ports.PipelineReader = (*PipelineReader)(nil)

func (a *PipelineReader) CountLeads(ctx context.Context, filter ports.LeadFilter) (int, error) {
	f := leadrepo.CountFilter{
		MinScore:    filter.MinScore,
		BelowScore:  filter.BelowScore,
		MinInterest: filter.MinInterest,
		BelowBudget: filter.BelowBudget,
	}
	if filter.Category != "" {
		category, ok := domain.ParseCategory(filter.Category)
		if !ok {
			return 0, nil
		}
		f.Category = &category
	}
	return a.leads.Count(ctx, f)
}

func (a *PipelineReader) AverageScore(ctx context.Context) (float64, bool, error) {
	return a.leads.AverageScore(ctx)
}

func (a *PipelineReader) NewestScores(ctx context.Context, n int) ([]int, error) {
	return a.scores(ctx, leadrepo.Descending, n)
}

func (a *PipelineReader) OldestScores(ctx context.Context, n int) ([]int, error) {
	return a.scores(ctx, leadrepo.Ascending, n)
}

func (a *PipelineReader) scores(ctx context.Context, dir leadrepo.SortDirection, n int) ([]int, error) {
	if n <= 0 {
		return []int{}, nil
	}
	leads, err := a.leads.List(ctx, leadrepo.ListParams{OrderBy: leadrepo.OrderByCreatedAt, Direction: dir, Limit: n})
	if err != nil {
		return nil, err
	}
	scores := make([]int, 0, len(leads))
	for _, lead := range leads {
		scores = append(scores, lead.Score)
	}
	return scores, nil
}

func (a *PipelineReader) CountCampaigns(ctx context.Context, platform string) (int, error) {
	if platform == "" {
		return a.campaigns.Count(ctx, nil)
	}
	return a.campaigns.Count(ctx, &platform)
}

func (a *PipelineReader) TopPlatform(ctx context.Context) (string, bool, error) {
	return a.campaigns.TopPlatform(ctx)
}
