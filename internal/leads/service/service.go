// Package service implements lead intake, ranking and per-lead playbooks.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"salesspark_backend/internal/events"
	"salesspark_backend/internal/leads/domain"
	"salesspark_backend/internal/leads/repository"
	"salesspark_backend/internal/leads/transport"
	"salesspark_backend/platform/logger"
)

const msgNoLeads = "No leads available. Generate leads to see prioritized actions."

// Service provides business logic for leads.
type Service struct {
	repo     repository.Repository
	eventBus events.Bus
	log      *logger.Logger
}

// New creates a new leads service.
func New(repo repository.Repository, eventBus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, eventBus: eventBus, log: log}
}

// Score scores a prospective lead and stores it. The response always
// carries the values that were persisted.
func (s *Service) Score(ctx context.Context, req transport.ScoreLeadRequest) (transport.ScoreLeadResponse, error) {
	result := domain.ScoreLead(*req.Budget, *req.Interest)

	lead, err := s.repo.Insert(ctx, repository.CreateParams{
		Company:  strings.TrimSpace(req.Company),
		Budget:   *req.Budget,
		Interest: *req.Interest,
		Score:    result.Score,
		Category: result.Category,
	})
	if err != nil {
		s.log.WithContext(ctx).DatabaseError("leads.insert", err)
		return transport.ScoreLeadResponse{}, err
	}

	s.log.WithContext(ctx).LeadScored(lead.ID, lead.Score, string(lead.Category))
	s.eventBus.Publish(ctx, events.LeadScored{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Company:   lead.Company,
		Score:     lead.Score,
		Category:  string(lead.Category),
	})

	return transport.ScoreLeadResponse{
		LeadID:         lead.ID,
		Score:          lead.Score,
		Category:       string(lead.Category),
		Recommendation: result.Recommendation,
		Explanation:    result.Explanation,
	}, nil
}

// List returns every lead, best score first.
func (s *Service) List(ctx context.Context) (transport.LeadListResponse, error) {
	leads, err := s.repo.List(ctx, repository.ListParams{OrderBy: repository.OrderByScore, Direction: repository.Descending})
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	items := make([]transport.LeadSummary, 0, len(leads))
	for _, lead := range leads {
		items = append(items, transport.LeadSummary{
			ID:       lead.ID,
			Company:  lead.Company,
			Category: string(lead.Category),
			Score:    lead.Score,
		})
	}
	return transport.LeadListResponse{Leads: items}, nil
}

// Get returns a single lead.
func (s *Service) Get(ctx context.Context, id int64) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return transport.LeadResponse{
		ID:        lead.ID,
		Company:   lead.Company,
		Budget:    lead.Budget,
		Interest:  lead.Interest,
		Score:     lead.Score,
		Category:  string(lead.Category),
		CreatedAt: lead.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// NextActions ranks leads in insertion order with the given mode so ties
// keep store order.
func (s *Service) NextActions(ctx context.Context, mode domain.RankingMode) (transport.NextActionsResponse, error) {
	leads, err := s.repo.List(ctx, repository.ListParams{OrderBy: repository.OrderByCreatedAt, Direction: repository.Ascending})
	if err != nil {
		return transport.NextActionsResponse{}, err
	}

	resp := transport.NextActionsResponse{Mode: string(mode), Actions: []transport.ActionResponse{}}
	if len(leads) == 0 {
		resp.Message = msgNoLeads
		return resp, nil
	}

	for _, action := range domain.RankActions(leads, mode, domain.MaxActions) {
		resp.Actions = append(resp.Actions, transport.ActionResponse{
			LeadID:        action.LeadID,
			Company:       action.Company,
			Category:      string(action.Category),
			Action:        action.Action,
			Reason:        action.Reason,
			Score:         action.Score,
			Interest:      action.Interest,
			PriorityScore: action.PriorityScore,
			Priority:      action.Priority,
		})
	}
	return resp, nil
}

// DealAssist returns the closing playbook for a lead.
func (s *Service) DealAssist(ctx context.Context, leadID int64) (transport.DealAssistResponse, error) {
	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return transport.DealAssistResponse{}, err
	}

	advice := domain.AdviseDeal(lead)
	return transport.DealAssistResponse{
		LeadID:          lead.ID,
		ClosingStrategy: advice.ClosingStrategy,
		DiscountRange:   advice.DiscountRange,
		ObjectionFocus:  advice.ObjectionFocus,
		UrgencyLevel:    advice.UrgencyLevel,
		Explanation:     advice.Explanation,
	}, nil
}

// FollowupPlan returns the outreach sequence for a lead.
func (s *Service) FollowupPlan(ctx context.Context, leadID int64) (transport.FollowupPlanResponse, error) {
	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return transport.FollowupPlanResponse{}, err
	}

	plan := domain.PlanFollowup(lead)
	steps := make([]transport.FollowupStep, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		steps = append(steps, transport.FollowupStep{
			Day:    step.Day,
			Label:  fmt.Sprintf("day %d", step.Day),
			Action: step.Action,
		})
	}
	return transport.FollowupPlanResponse{
		LeadID:   lead.ID,
		Category: string(plan.Category),
		Score:    plan.Score,
		Plan:     steps,
		Note:     plan.Note,
	}, nil
}
