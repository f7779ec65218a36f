// Package assistant provides the conversational sales analyst.
package assistant

import (
	"salesspark_backend/internal/assistant/handler"
	"salesspark_backend/internal/assistant/ports"
	"salesspark_backend/internal/assistant/service"
	"salesspark_backend/internal/assistant/sessions"
	"salesspark_backend/internal/events"
	apphttp "salesspark_backend/internal/http"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/validator"
)

// Module is the assistant module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(store sessions.Store, pipeline ports.PipelineSnapshotter, leads ports.TopLeadsReader, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(store, pipeline, leads, eventBus, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

func (m *Module) Name() string {
	return "assistant"
}

func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts assistant routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/chat", m.handler.Chat)

	if ctx.Admin != nil {
		ctx.Admin.GET("/chat/sessions/:id", m.handler.GetSession)
	}
}

var _ apphttp.Module = (*Module)(nil)
