package handler

import (
	"net/http"

	"salesspark_backend/internal/analytics/service"
	"salesspark_backend/internal/analytics/transport"
	"salesspark_backend/platform/httpkit"
	"salesspark_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for analytics.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Dashboard GET /api/v1/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	result, err := h.svc.Dashboard(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// SalesTrend GET /api/v1/trends/sales
func (h *Handler) SalesTrend(c *gin.Context) {
	result, err := h.svc.SalesTrend(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// PipelineHealth GET /api/v1/pipeline/health
func (h *Handler) PipelineHealth(c *gin.Context) {
	result, err := h.svc.PipelineHealth(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Alerts GET /api/v1/alerts
func (h *Handler) Alerts(c *gin.Context) {
	result, err := h.svc.Alerts(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// PredictCampaign POST /api/v1/predict/campaign
func (h *Handler) PredictCampaign(c *gin.Context) {
	var req transport.PredictCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	result, err := h.svc.PredictCampaign(c.Request.Context(), req.Platform)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Recommendations GET /api/v1/recommendations
func (h *Handler) Recommendations(c *gin.Context) {
	result, err := h.svc.Recommendations(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Segments GET /api/v1/segments
func (h *Handler) Segments(c *gin.Context) {
	result, err := h.svc.Segments(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// WeeklyReport GET /api/v1/weekly-report
func (h *Handler) WeeklyReport(c *gin.Context) {
	result, err := h.svc.WeeklyReport(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// TriggerWeeklyReport POST /api/v1/admin/reports/weekly
func (h *Handler) TriggerWeeklyReport(c *gin.Context) {
	result, err := h.svc.TriggerWeeklyReport(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusAccepted, result)
}
