package handler

import (
	"net/http"
	"strconv"

	"salesspark_backend/internal/leads/domain"
	"salesspark_backend/internal/leads/service"
	"salesspark_backend/internal/leads/transport"
	"salesspark_backend/platform/httpkit"
	"salesspark_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid lead id"
)

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ScoreLead scores and stores a new lead.
// POST /api/v1/leads
func (h *Handler) ScoreLead(c *gin.Context) {
	var req transport.ScoreLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	result, err := h.svc.Score(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// ListLeads lists leads by score.
// GET /api/v1/leads
func (h *Handler) ListLeads(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetLead retrieves a lead by ID.
// GET /api/v1/leads/:id
func (h *Handler) GetLead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// NextActions ranks the top leads. Priority ranking unless ?mode=category_tier.
// GET /api/v1/actions/next
func (h *Handler) NextActions(c *gin.Context) {
	var req transport.NextActionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}
	mode, _ := domain.ParseRankingMode(req.Mode)

	result, err := h.svc.NextActions(c.Request.Context(), mode)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CopilotActions ranks the top leads by category tier.
// GET /api/v1/copilot/actions
func (h *Handler) CopilotActions(c *gin.Context) {
	result, err := h.svc.NextActions(c.Request.Context(), domain.RankByCategoryTier)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// DealAssist returns a closing strategy for a lead.
// POST /api/v1/deal/assist
func (h *Handler) DealAssist(c *gin.Context) {
	leadID, ok := h.bindLeadRef(c)
	if !ok {
		return
	}

	result, err := h.svc.DealAssist(c.Request.Context(), leadID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// FollowupPlan returns the outreach schedule for a lead.
// POST /api/v1/followup/plan
func (h *Handler) FollowupPlan(c *gin.Context) {
	leadID, ok := h.bindLeadRef(c)
	if !ok {
		return
	}

	result, err := h.svc.FollowupPlan(c.Request.Context(), leadID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) bindLeadRef(c *gin.Context) (int64, bool) {
	var req transport.LeadRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return 0, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return 0, false
	}
	return *req.LeadID, true
}
