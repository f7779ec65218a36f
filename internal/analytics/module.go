// Package analytics provides the pipeline analytics module: dashboard,
// trends, health, alerts, predictions and the weekly report.
package analytics

import (
	"salesspark_backend/internal/analytics/handler"
	"salesspark_backend/internal/analytics/ports"
	"salesspark_backend/internal/analytics/service"
	"salesspark_backend/internal/events"
	apphttp "salesspark_backend/internal/http"
	"salesspark_backend/platform/config"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/validator"
)

// Module is the analytics module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

func NewModule(reader ports.PipelineReader, eventBus events.Bus, cfg config.AnalyticsConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(reader, eventBus, cfg.GetSyntheticMinLeads(), log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

func (m *Module) Name() string {
	return "analytics"
}

// Service returns the analytics service for the assistant and the scheduler.
func (m *Module) Service() *service.Service {
	return m.service
}

// SetReportScheduler routes the admin trigger through the background queue.
func (m *Module) SetReportScheduler(scheduler ports.ReportScheduler) {
	m.service.SetReportScheduler(scheduler)
}

// RegisterRoutes mounts analytics routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/dashboard", m.handler.Dashboard)
	ctx.V1.GET("/trends/sales", m.handler.SalesTrend)
	ctx.V1.GET("/pipeline/health", m.handler.PipelineHealth)
	ctx.V1.GET("/alerts", m.handler.Alerts)
	ctx.V1.POST("/predict/campaign", m.handler.PredictCampaign)
	ctx.V1.GET("/recommendations", m.handler.Recommendations)
	ctx.V1.GET("/segments", m.handler.Segments)
	ctx.V1.GET("/weekly-report", m.handler.WeeklyReport)

	if ctx.Admin != nil {
		ctx.Admin.POST("/reports/weekly", m.handler.TriggerWeeklyReport)
	}
}

var _ apphttp.Module = (*Module)(nil)
