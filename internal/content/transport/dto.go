package transport

type PitchRequest struct {
	Product string `json:"product" validate:"required,notblank,max=200"`
	Target  string `json:"target" validate:"required,notblank,max=200"`
}

type PitchResponse struct {
	Problem   string `json:"problem"`
	ValueProp string `json:"value_prop"`
	Objection string `json:"objection"`
	Closing   string `json:"closing"`
	AIInsight string `json:"ai_insight"`
}

type SocialRequest struct {
	Product  string `json:"product" validate:"required,notblank,max=200"`
	Platform string `json:"platform" validate:"required,notblank,max=100"`
}

type SocialResponse struct {
	Caption   string `json:"caption"`
	Hashtags  string `json:"hashtags"`
	AIInsight string `json:"ai_insight"`
}

type EmailRequest struct {
	Recipient string `json:"recipient" validate:"required,notblank,max=200"`
	Context   string `json:"context" validate:"required,notblank,max=500"`
	Product   string `json:"product" validate:"required,notblank,max=200"`
}

type EmailResponse struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	FollowUpTip string `json:"follow_up_tip"`
}

type MarketRequest struct {
	Industry string `json:"industry" validate:"required,notblank,max=100"`
}

type MarketResponse struct {
	Trend       string `json:"trend"`
	Demand      string `json:"demand"`
	Competition string `json:"competition"`
	Opportunity string `json:"opportunity"`
	AIInsight   string `json:"ai_insight"`
}

// MarketAnalysisRequest is the body of POST /market/analyze. Region and
// time_horizon default to Global and Mid.
type MarketAnalysisRequest struct {
	Industry    string `json:"industry" validate:"required,notblank,max=100"`
	Region      string `json:"region" validate:"max=100"`
	TimeHorizon string `json:"time_horizon" validate:"omitempty,oneof=Short Mid Long"`
}

type MarketMatrix struct {
	Competition int `json:"competition"`
	Opportunity int `json:"opportunity"`
	Saturation  int `json:"saturation"`
}

type MarketScores struct {
	Demand      float64 `json:"d"`
	Competition float64 `json:"c"`
	Opportunity float64 `json:"o"`
}

type MarketMeta struct {
	Industry string       `json:"industry"`
	Horizon  string       `json:"horizon"`
	Scores   MarketScores `json:"scores"`
}

type MarketAnalysisResponse struct {
	Insight      string         `json:"insight"`
	DemandTrend  []float64      `json:"demand_trend"`
	MarketMatrix MarketMatrix   `json:"market_matrix"`
	Channels     map[string]int `json:"channels"`
	Meta         MarketMeta     `json:"meta"`
}
