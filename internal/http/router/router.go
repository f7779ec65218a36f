package router

import (
	"context"
	"net/http"
	"time"

	apphttp "salesspark_backend/internal/http"
	"salesspark_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	serviceStatus  = "SalesSpark AI Backend Running"
	serviceVersion = "3.0"
	readyTimeout   = 2 * time.Second
)

// New builds the gin engine: shared middleware, probes, /api/v1 and the
// optional admin group, then every module's routes.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	if app.Metrics != nil {
		engine.Use(app.Metrics.GinMiddleware())
	}
	if corsCfg, ok := corsConfig(app.Config); ok {
		engine.Use(cors.New(corsCfg))
	}

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": serviceStatus, "version": serviceVersion})
	})
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/ready", readyHandler(app.Health))
	if app.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(app.Metrics.Handler()))
	}

	v1 := engine.Group("/api/v1")
	if rps := app.Config.GetRateLimitRPS(); rps > 0 {
		limiter := httpkit.NewIPRateLimiter(rate.Limit(rps), app.Config.GetRateLimitBurst(), app.Logger)
		v1.Use(limiter.RateLimit())
	}

	var admin *gin.RouterGroup
	if app.Config.IsAdminEnabled() {
		admin = v1.Group("/admin")
		admin.Use(httpkit.AuthRequired(app.Config), httpkit.RequireRole("admin"))
	}

	ctx := &apphttp.RouterContext{
		Engine: engine,
		V1:     v1,
		Admin:  admin,
		Config: app.Config,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Debug("module routes registered", "module", module.Name())
	}

	return engine
}

func readyHandler(health apphttp.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := health.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "store unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// corsConfig reports false when no origin is allowed at all.
func corsConfig(cfg apphttp.RouterConfig) (cors.Config, bool) {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", httpkit.HeaderRequestID},
		ExposeHeaders:    []string{httpkit.HeaderRequestID},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}

	switch {
	case cfg.GetCORSAllowAll():
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	case len(cfg.GetCORSOrigins()) > 0:
		c.AllowOrigins = cfg.GetCORSOrigins()
	default:
		return cors.Config{}, false
	}
	return c, true
}
