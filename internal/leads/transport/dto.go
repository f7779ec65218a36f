package transport

// ScoreLeadRequest is the body of POST /leads.
type ScoreLeadRequest struct {
	Company  string `json:"company" validate:"required,notblank,max=200"`
	Budget   *int64 `json:"budget" validate:"required,min=0"`
	Interest *int   `json:"interest" validate:"required,min=1,max=10"`
}

type ScoreLeadResponse struct {
	LeadID         int64  `json:"lead_id"`
	Score          int    `json:"score"`
	Category       string `json:"category"`
	Recommendation string `json:"recommendation"`
	Explanation    string `json:"explanation"`
}

type LeadSummary struct {
	ID       int64  `json:"id"`
	Company  string `json:"company"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}

type LeadListResponse struct {
	Leads []LeadSummary `json:"leads"`
}

type LeadResponse struct {
	ID        int64  `json:"id"`
	Company   string `json:"company"`
	Budget    int64  `json:"budget"`
	Interest  int    `json:"interest"`
	Score     int    `json:"score"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

// NextActionsRequest selects the ranking for GET /actions/next.
type NextActionsRequest struct {
	Mode string `form:"mode" validate:"omitempty,oneof=priority category_tier"`
}

type ActionResponse struct {
	LeadID        int64    `json:"lead_id"`
	Company       string   `json:"company"`
	Category      string   `json:"category"`
	Action        string   `json:"action"`
	Reason        string   `json:"reason,omitempty"`
	Score         int      `json:"score"`
	Interest      int      `json:"interest"`
	PriorityScore *float64 `json:"priority_score,omitempty"`
	Priority      string   `json:"priority,omitempty"`
}

type NextActionsResponse struct {
	Mode    string           `json:"mode"`
	Actions []ActionResponse `json:"actions"`
	Message string           `json:"message,omitempty"`
}

// LeadRefRequest identifies the lead for deal assist and follow-up planning.
type LeadRefRequest struct {
	LeadID *int64 `json:"lead_id" validate:"required"`
}

type DealAssistResponse struct {
	LeadID          int64  `json:"lead_id"`
	ClosingStrategy string `json:"closing_strategy"`
	DiscountRange   string `json:"discount_range"`
	ObjectionFocus  string `json:"objection_focus"`
	UrgencyLevel    string `json:"urgency_level"`
	Explanation     string `json:"explanation"`
}

type FollowupStep struct {
	Day    int    `json:"day"`
	Label  string `json:"label"`
	Action string `json:"action"`
}

type FollowupPlanResponse struct {
	LeadID   int64          `json:"lead_id"`
	Category string         `json:"category"`
	Score    int            `json:"score"`
	Plan     []FollowupStep `json:"plan"`
	Note     string         `json:"note"`
}
