// Package campaigns provides the campaign bounded context module.
package campaigns

import (
	"salesspark_backend/internal/campaigns/handler"
	"salesspark_backend/internal/campaigns/repository"
	"salesspark_backend/internal/campaigns/service"
	"salesspark_backend/internal/events"
	apphttp "salesspark_backend/internal/http"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/validator"
)

// Module is the campaigns bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

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
	return "campaigns"
}

// Repository returns the campaign store for read-side consumers.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts campaign routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/campaigns", m.handler.CreateCampaign)
	ctx.V1.GET("/campaigns", m.handler.ListCampaigns)
}

var _ apphttp.Module = (*Module)(nil)
