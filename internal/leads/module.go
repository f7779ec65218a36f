// Package leads provides the lead scoring bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"salesspark_backend/internal/events"
	apphttp "salesspark_backend/internal/http"
	"salesspark_backend/internal/leads/handler"
	"salesspark_backend/internal/leads/repository"
	"salesspark_backend/internal/leads/service"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule wires the leads module on top of an already opened store.
func NewModule(repo repository.Repository, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, eventBus, log)

	return &Module{
		handler: handler.New(svc, val),
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the lead service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the lead store for read-side consumers.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/leads", m.handler.ScoreLead)
	ctx.V1.GET("/leads", m.handler.ListLeads)
	ctx.V1.GET("/leads/:id", m.handler.GetLead)

	ctx.V1.GET("/actions/next", m.handler.NextActions)
	ctx.V1.GET("/copilot/actions", m.handler.CopilotActions)

	ctx.V1.POST("/deal/assist", m.handler.DealAssist)
	ctx.V1.POST("/followup/plan", m.handler.FollowupPlan)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
