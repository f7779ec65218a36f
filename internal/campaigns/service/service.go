// Package service implements campaign intake.
package service

import (
	"context"
	"strings"
	"time"

	"salesspark_backend/internal/campaigns/repository"
	"salesspark_backend/internal/campaigns/transport"
	"salesspark_backend/internal/events"
	"salesspark_backend/platform/logger"
)

// Service provides business logic for campaigns.
type Service struct {
	repo     repository.Repository
	eventBus events.Bus
	log      *logger.Logger
}

func New(repo repository.Repository, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, eventBus: eventBus, log: log}
}

// Create stores the campaign and returns its brief.
func (s *Service) Create(ctx context.Context, req transport.CreateCampaignRequest) (transport.CampaignBriefResponse, error) {
	campaign, err := s.repo.Create(ctx, repository.CreateParams{
		Product:  strings.TrimSpace(req.Product),
		Platform: strings.TrimSpace(req.Platform),
		Goal:     strings.TrimSpace(req.Goal),
	})
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("campaigns.create", err)
		return transport.CampaignBriefResponse{}, err
	}

	s.log.WithContext(ctx).Info("campaign created", "campaignId", campaign.ID, "platform", campaign.Platform)
	s.eventBus.Publish(ctx, events.CampaignCreated{
		BaseEvent:  events.NewBaseEvent(),
		CampaignID: campaign.ID,
		Product:    campaign.Product,
		Platform:   campaign.Platform,
	})

	brief := BuildBrief(campaign.Product, campaign.Platform, campaign.Goal)
	return transport.CampaignBriefResponse{
		CampaignID: campaign.ID,
		Objective:  brief.Objective,
		Theme:      brief.Theme,
		CTA:        brief.CTA,
		Outcome:    brief.Outcome,
		AIInsight:  brief.Insight,
	}, nil
}

// List returns stored campaigns, newest first.
func (s *Service) List(ctx context.Context) (transport.CampaignListResponse, error) {
	campaigns, err := s.repo.List(ctx, 0)
	if err != nil {
		return transport.CampaignListResponse{}, err
	}

	items := make([]transport.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, transport.CampaignResponse{
			ID:        c.ID,
			Product:   c.Product,
			Platform:  c.Platform,
			Goal:      c.Goal,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return transport.CampaignListResponse{Campaigns: items}, nil
}
