// Package content provides the sales content generator module: pitches,
// social posts, outreach emails and market analysis.
package content

import (
	"math/rand/v2"

	"salesspark_backend/internal/content/domain"
	"salesspark_backend/internal/content/handler"
	"salesspark_backend/internal/content/service"
	apphttp "salesspark_backend/internal/http"
	"salesspark_backend/platform/logger"
	"salesspark_backend/platform/validator"
)

// Module is the content module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule loads the embedded market baselines. src seeds the market
// noise; nil means a fresh random seed.
func NewModule(src rand.Source, val *validator.Validator, log *logger.Logger) (*Module, error) {
	baselines, err := domain.DefaultBaselines()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	svc := service.New(domain.NewAnalyzer(baselines, src), log)
	return &Module{handler: handler.New(svc, val)}, nil
}

func (m *Module) Name() string {
	return "content"
}

// RegisterRoutes mounts generator routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/pitch", m.handler.Pitch)
	ctx.V1.POST("/social", m.handler.Social)
	ctx.V1.POST("/email", m.handler.Email)
	ctx.V1.POST("/market", m.handler.Market)
	ctx.V1.POST("/market/analyze", m.handler.AnalyzeMarket)
}

var _ apphttp.Module = (*Module)(nil)
