// Package service exposes the content generators to transport.
package service

import (
	"context"
	"strings"

	"salesspark_backend/internal/content/domain"
	"salesspark_backend/internal/content/transport"
	"salesspark_backend/platform/logger"
)

const (
	defaultRegion  = "Global"
	defaultHorizon = "Mid"
)

// Service provides content generation.
type Service struct {
	analyzer *domain.Analyzer
	log      *logger.Logger
}

func New(analyzer *domain.Analyzer, log *logger.Logger) *Service {
	return &Service{analyzer: analyzer, log: log}
}

func (s *Service) Pitch(req transport.PitchRequest) transport.PitchResponse {
	p := domain.GeneratePitch(req.Product, req.Target)
	return transport.PitchResponse{
		Problem:   p.Problem,
		ValueProp: p.ValueProp,
		Objection: p.Objection,
		Closing:   p.Closing,
		AIInsight: p.Insight,
	}
}

func (s *Service) Social(req transport.SocialRequest) transport.SocialResponse {
	p := domain.GenerateSocialPost(req.Product, req.Platform)
	return transport.SocialResponse{Caption: p.Caption, Hashtags: p.Hashtags, AIInsight: p.Insight}
}

func (s *Service) Email(req transport.EmailRequest) transport.EmailResponse {
	e := domain.GenerateEmail(req.Recipient, req.Context, req.Product)
	return transport.EmailResponse{Subject: e.Subject, Body: e.Body, FollowUpTip: e.FollowUpTip}
}

func (s *Service) Market(req transport.MarketRequest) transport.MarketResponse {
	m := domain.QuickMarketSnapshot(req.Industry)
	return transport.MarketResponse{
		Trend:       m.Trend,
		Demand:      m.Demand,
		Competition: m.Competition,
		Opportunity: m.Opportunity,
		AIInsight:   m.Insight,
	}
}

// AnalyzeMarket runs the market intelligence model.
func (s *Service) AnalyzeMarket(ctx context.Context, req transport.MarketAnalysisRequest) transport.MarketAnalysisResponse {
	region := strings.TrimSpace(req.Region)
	if region == "" {
		region = defaultRegion
	}
	horizon := req.TimeHorizon
	if horizon == "" {
		horizon = defaultHorizon
	}

	a := s.analyzer.Analyze(domain.MarketQuery{Industry: req.Industry, Region: region, Horizon: horizon})
	s.log.WithContext(ctx).Debug("market analyzed", "industry", req.Industry, "region", region, "horizon", horizon)

	return transport.MarketAnalysisResponse{
		Insight:     a.Insight,
		DemandTrend: a.DemandTrend,
		MarketMatrix: transport.MarketMatrix{
			Competition: a.Matrix.Competition,
			Opportunity: a.Matrix.Opportunity,
			Saturation:  a.Matrix.Saturation,
		},
		Channels: a.Channels,
		Meta: transport.MarketMeta{
			Industry: req.Industry,
			Horizon:  horizon,
			Scores: transport.MarketScores{
				Demand:      a.Demand,
				Competition: a.Competition,
				Opportunity: a.Opportunity,
			},
		},
	}
}
