package transport

type DashboardMetrics struct {
	TotalLeads       int     `json:"total_leads"`
	HotLeads         int     `json:"hot_leads"`
	AvgLeadScore     float64 `json:"avg_lead_score"`
	TotalCampaigns   int     `json:"total_campaigns"`
	BestPlatform     string  `json:"best_platform"`
	LeadQualityTrend string  `json:"lead_quality_trend"`
}

type DashboardResponse struct {
	DataSource string           `json:"data_source"`
	Metrics    DashboardMetrics `json:"metrics"`
}

type Flag struct {
	Alert  string `json:"alert"`
	Reason string `json:"reason"`
}

type TrendMetrics struct {
	TotalLeads int     `json:"total_leads"`
	RecentAvg  float64 `json:"recent_avg"`
	OlderAvg   float64 `json:"older_avg"`
	HotLeads   int     `json:"hot_leads"`
	AvgScore   float64 `json:"avg_score"`
}

type TrendResponse struct {
	Trend            string        `json:"trend"`
	TrendDirection   string        `json:"trend_direction"`
	TrendReason      string        `json:"trend_reason,omitempty"`
	Reason           string        `json:"reason,omitempty"`
	RiskFlags        []Flag        `json:"risk_flags"`
	OpportunityFlags []Flag        `json:"opportunity_flags"`
	Metrics          *TrendMetrics `json:"metrics,omitempty"`
}

type PipelineHealthResponse struct {
	Health         string  `json:"health"`
	TotalLeads     int     `json:"total_leads"`
	HotLeads       int     `json:"hot_leads"`
	WarmLeads      int     `json:"warm_leads"`
	AvgScore       float64 `json:"avg_score"`
	TotalCampaigns int     `json:"total_campaigns"`
}

type Alert struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

type AlertsResponse struct {
	Alerts []Alert `json:"alerts"`
}

type PredictCampaignRequest struct {
	Platform string `json:"platform" validate:"required,notblank,max=100"`
	Goal     string `json:"goal" validate:"max=200"`
}

type PredictionMetrics struct {
	TotalLeads        int     `json:"total_leads"`
	AvgLeadScore      float64 `json:"avg_lead_score"`
	PlatformCampaigns int     `json:"platform_campaigns"`
	HotLeads          int     `json:"hot_leads"`
}

type PredictCampaignResponse struct {
	EngagementProb int               `json:"engagement_prob"`
	ConversionProb int               `json:"conversion_prob"`
	RiskLevel      string            `json:"risk_level"`
	DataSource     string            `json:"data_source"`
	MetricsUsed    PredictionMetrics `json:"metrics_used"`
	Explanation    string            `json:"explanation"`
}

type RecommendationResponse struct {
	Action   string `json:"action"`
	Tip      string `json:"tip"`
	Platform string `json:"platform"`
}

type SegmentsResponse struct {
	HighValue      int `json:"high_value"`
	HighIntent     int `json:"high_intent"`
	PriceSensitive int `json:"price_sensitive"`
	LowIntent      int `json:"low_intent"`
}

type WeeklyReportResponse struct {
	Summary     string `json:"summary"`
	GeneratedAt string `json:"generated_at"`
}

// TriggerReportResponse is returned by the admin trigger.
type TriggerReportResponse struct {
	Status string `json:"status"`
}
