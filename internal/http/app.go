// Package http holds the types shared between the composition root and the
// gin router: the Module contract and the App bundle.
package http

import (
	"context"

	"salesspark_backend/internal/events"
	"salesspark_backend/platform/config"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/metrics"
)

// RouterConfig is the slice of configuration the router reads.
type RouterConfig interface {
	config.HTTPConfig
	config.JWTConfig
}

// HealthChecker backs GET /ready.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// App is assembled in cmd/api and consumed by router.New.
type App struct {
	Config   RouterConfig
	Logger   *logger.Logger
	// Health is the lead store; /ready answers 503 when its ping fails.
	Health   HealthChecker
	// Metrics may be nil, which disables /metrics and request instrumentation.
	Metrics  *metrics.Metrics
	EventBus events.Bus
	Modules  []Module
}
