package http

import (
	"salesspark_backend/platform/config"

	"github.com/gin-gonic/gin"
)

// Module is a feature area (leads, campaigns, content, analytics, assistant)
// that mounts its own routes.
type Module interface {
	Name() string
	RegisterRoutes(ctx *RouterContext)
}

// RouterContext is handed to every module during route registration.
type RouterContext struct {
	Engine *gin.Engine
	// V1 is /api/v1, rate limited when RATE_LIMIT_RPS > 0.
	V1     *gin.RouterGroup
	// Admin is /api/v1/admin behind AuthRequired and the admin role. Nil
	// when JWT_ACCESS_SECRET is unset, so modules must check it.
	Admin  *gin.RouterGroup
	Config config.JWTConfig
}
