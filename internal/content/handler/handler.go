package handler

import (
	"net/http"

	"salesspark_backend/internal/content/service"
	"salesspark_backend/internal/content/transport"
	"salesspark_backend/platform/httpkit"
	"salesspark_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the content generators.
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

// Pitch POST /api/v1/pitch
func (h *Handler) Pitch(c *gin.Context) {
	var req transport.PitchRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Pitch(req))
}

// Social POST /api/v1/social
func (h *Handler) Social(c *gin.Context) {
	var req transport.SocialRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Social(req))
}

// Email POST /api/v1/email
func (h *Handler) Email(c *gin.Context) {
	var req transport.EmailRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Email(req))
}

// Market POST /api/v1/market
func (h *Handler) Market(c *gin.Context) {
	var req transport.MarketRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.Market(req))
}

// AnalyzeMarket POST /api/v1/market/analyze
func (h *Handler) AnalyzeMarket(c *gin.Context) {
	var req transport.MarketAnalysisRequest
	if !h.bind(c, &req) {
		return
	}
	httpkit.OK(c, h.svc.AnalyzeMarket(c.Request.Context(), req))
}

func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return false
	}
	return true
}
