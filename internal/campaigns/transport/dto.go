package transport

type CreateCampaignRequest struct {
	Product  string `json:"product" validate:"required,notblank,max=200"`
	Platform string `json:"platform" validate:"required,notblank,max=100"`
	Goal     string `json:"goal" validate:"required,notblank,max=200"`
}

// CampaignBriefResponse is the generated brief for a stored campaign.
type CampaignBriefResponse struct {
	CampaignID int64  `json:"campaign_id"`
	Objective  string `json:"objective"`
	Theme      string `json:"theme"`
	CTA        string `json:"cta"`
	Outcome    string `json:"outcome"`
	AIInsight  string `json:"ai_insight"`
}

type CampaignResponse struct {
	ID        int64  `json:"id"`
	Product   string `json:"product"`
	Platform  string `json:"platform"`
	Goal      string `json:"goal"`
	CreatedAt string `json:"created_at"`
}

type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}
