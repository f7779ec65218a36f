package adapters

import (
	"context"

	assistantdomain "salesspark_backend/internal/assistant/domain"
	"salesspark_backend/internal/assistant/ports"
	leadrepo "salesspark_backend/internal/leads/repository"
)

// TopLeads serves the assistant's focus list from the lead store.
type TopLeads struct {
	leads leadrepo.LeadReader
}

func NewTopLeads(leads leadrepo.LeadReader) *TopLeads {
	return &TopLeads{leads: leads}
}

var _ ports.TopLeadsReader = (*TopLeads)(nil)

func (a *TopLeads) TopLeads(ctx context.Context, n int) ([]assistantdomain.TopLead, error) {
	leads, err := a.leads.List(ctx, leadrepo.ListParams{
		OrderBy:   leadrepo.OrderByScore,
		Direction: leadrepo.Descending,
		Limit:     n,
	})
	if err != nil {
		return nil, err
	}

	out := make([]assistantdomain.TopLead, 0, len(leads))
	for _, lead := range leads {
		out = append(out, assistantdomain.TopLead{ID: lead.ID, Company: lead.Company, Score: lead.Score})
	}
	return out, nil
}
