// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"time"

	"salesspark_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadScored is published after a lead has been scored and stored.
type LeadScored struct {
	BaseEvent
	LeadID   int64  `json:"leadId"`
	Company  string `json:"company"`
	Score    int    `json:"score"`
	Category string `json:"category"`
}

func (e LeadScored) EventName() string { return "leads.lead.scored" }

// =============================================================================
// Campaign Domain Events
// =============================================================================

// CampaignCreated is published after a campaign brief has been stored.
type CampaignCreated struct {
	BaseEvent
	CampaignID int64  `json:"campaignId"`
	Product    string `json:"product"`
	Platform   string `json:"platform"`
}

func (e CampaignCreated) EventName() string { return "campaigns.campaign.created" }

// =============================================================================
// Assistant Domain Events
// =============================================================================

// ChatTurnCompleted is published after the assistant answered a message.
type ChatTurnCompleted struct {
	BaseEvent
	SessionID  string `json:"sessionId"`
	Intent     string `json:"intent"`
	HistoryLen int    `json:"historyLen"`
}

func (e ChatTurnCompleted) EventName() string { return "assistant.chat.turn_completed" }

// =============================================================================
// Analytics Domain Events
// =============================================================================

// WeeklyReportGenerated is published by the scheduler once the weekly
// summary has been built. Delivery (mail, archive) subscribes to it.
type WeeklyReportGenerated struct {
	BaseEvent
	Week         string    `json:"week"`
	GeneratedAt  time.Time `json:"generatedAt"`
	TotalLeads   int       `json:"totalLeads"`
	HotLeads     int       `json:"hotLeads"`
	AvgScore     float64   `json:"avgScore"`
	Trend        string    `json:"trend"`
	DataSource   string    `json:"dataSource"`
	Summary      string    `json:"summary"`
	Highlights   []string  `json:"highlights"`
	PipelineNote string    `json:"pipelineNote"`
}

func (e WeeklyReportGenerated) EventName() string { return "analytics.weekly_report.generated" }
