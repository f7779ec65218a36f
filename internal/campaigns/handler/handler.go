package handler

import (
	"net/http"

	"salesspark_backend/internal/campaigns/service"
	"salesspark_backend/internal/campaigns/transport"
	"salesspark_backend/platform/httpkit"
	"salesspark_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for campaigns.
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

// CreateCampaign stores a campaign and returns its brief.
// POST /api/v1/campaigns
func (h *Handler) CreateCampaign(c *gin.Context) {
	var req transport.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	result, err := h.svc.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// ListCampaigns lists stored campaigns.
// GET /api/v1/campaigns
func (h *Handler) ListCampaigns(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
