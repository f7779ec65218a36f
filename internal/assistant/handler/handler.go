package handler

import (
	"net/http"

	"salesspark_backend/internal/assistant/service"
	"salesspark_backend/internal/assistant/transport"
	"salesspark_backend/platform/httpkit"
	"salesspark_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the assistant.
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

// Chat POST /api/v1/chat
func (h *Handler) Chat(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Fields(err))
		return
	}

	result, err := h.svc.Chat(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetSession GET /api/v1/admin/chat/sessions/:id
func (h *Handler) GetSession(c *gin.Context) {
	result, err := h.svc.Session(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
