package domain

import (
	"fmt"
	"strings"

	leaddomain "salesspark_backend/internal/leads/domain"
)

// TopLead is a lead referenced by the leads_focus reply.
type TopLead struct {
	ID      int64
	Company string
	Score   int
}

// Reply is one assistant answer.
type Reply struct {
	Text        string
	FollowUp    string
	Suggestions []string
}

// ReplyInput is everything a reply may render from. LastIntent is the
// intent stored by the previous turn of the session, empty on a new one.
type ReplyInput struct {
	Intent     Intent
	LastIntent Intent
	Pipeline   leaddomain.PipelineSnapshot
	TopLeads   []TopLead
}

// Respond renders the reply for a classified message.
func Respond(in ReplyInput) Reply {
	switch in.Intent {
	case IntentLeadsFocus:
		return leadsFocusReply(in.TopLeads)
	case IntentPipelineHealth:
		return pipelineHealthReply(in.Pipeline)
	case IntentExplain:
		return explainReply(in.LastIntent, in.Pipeline)
	case IntentMarketingStrategy:
		return Reply{
			Text: fmt.Sprintf("You currently have %d active campaigns. To grow, I recommend a 'Competitor Conquesting' campaign on LinkedIn to target dissatisfied users in your sector.",
				in.Pipeline.TotalCampaigns),
			FollowUp:    "Do you want me to draft the ad copy?",
			Suggestions: []string{"Draft ad copy", "Predict campaign ROI", "Analyze market"},
		}
	default:
		return Reply{
			Text: fmt.Sprintf("I'm your SalesSpark Analyst. I track your %d leads and %d campaigns in real-time.",
				in.Pipeline.TotalLeads, in.Pipeline.TotalCampaigns),
			FollowUp:    "Ask me: 'Who should I call today?' or 'How is my pipeline?'",
			Suggestions: []string{"Who to call?", "Pipeline risks", "Draft cold email"},
		}
	}
}

func leadsFocusReply(top []TopLead) Reply {
	if len(top) == 0 {
		return Reply{
			Text:        "Your lead list is currently empty. I can't recommend a focus until we generate some leads.",
			FollowUp:    "Should I simulate some demo leads for you?",
			Suggestions: []string{"Generate demo leads", "How does scoring work?", "Campaign strategy"},
		}
	}

	details := make([]string, 0, len(top))
	for _, lead := range top {
		details = append(details, fmt.Sprintf("Lead #%d (%s, %d/100)", lead.ID, lead.Company, lead.Score))
	}
	return Reply{
		Text: fmt.Sprintf("Based on score and intent, your top priorities are: %s. These have the highest probability of closing this week.",
			strings.Join(details, ", ")),
		FollowUp:    "Would you like a closing strategy for the top lead?",
		Suggestions: []string{"Get closing strategy", "Draft email to Lead #1", "Pipeline health"},
	}
}

func pipelineHealthReply(p leaddomain.PipelineSnapshot) Reply {
	switch p.Health {
	case leaddomain.HealthAtRisk:
		return Reply{
			Text: fmt.Sprintf("⚠️ **Alert:** Your pipeline is At Risk. You have 0 Hot leads and an average score of %.1f. You need to refill the top of the funnel immediately.",
				p.AvgScore),
			FollowUp:    "Shall I recommend a lead generation campaign?",
			Suggestions: []string{"Generate campaign", "Why is score low?", "Show all leads"},
		}
	case leaddomain.HealthEmpty:
		return Reply{
			Text:        "Your pipeline is empty. We need to launch campaigns to generate initial data.",
			FollowUp:    "Ready to create your first campaign?",
			Suggestions: []string{"Create campaign", "Run simulation", "Market trends"},
		}
	default:
		return Reply{
			Text: fmt.Sprintf("✅ **Healthy:** You have %d Hot leads and %d Warm leads. Average lead quality is %.1f/100.",
				p.HotLeads, p.WarmLeads, p.AvgScore),
			FollowUp:    "Do you want to focus on closing the hot leads?",
			Suggestions: []string{"Closing tips", "Nurture warm leads", "Market analysis"},
		}
	}
}

func explainReply(last Intent, p leaddomain.PipelineSnapshot) Reply {
	switch last {
	case IntentLeadsFocus:
		return Reply{
			Text:        "I prioritized those leads because they combine high Budget fit (> $50k) with strong Intent signals (web visits, email opens). In our model, Score = Budget(40%) + Interest(40%) + Baseline(20%).",
			FollowUp:    "Want to see the full score breakdown?",
			Suggestions: []string{"Score breakdown", "Contact Lead #1", "Next actions"},
		}
	case IntentPipelineHealth:
		return Reply{
			Text: fmt.Sprintf("I flagged the pipeline because 'Hot Leads' (Score > %d) are the strongest predictor of revenue. You currently have %d, and our target is at least %d.",
				leaddomain.HotThreshold, p.HotLeads, leaddomain.HealthyMinHot),
			FollowUp:    "Should we draft a campaign to fix this?",
			Suggestions: []string{},
		}
	default:
		return Reply{
			Text:        "I base my recommendations on your real-time database metrics: Lead Scores, Campaign Performance, and Pipeline Volume. I look for the path of highest revenue probability.",
			FollowUp:    "Ask me to analyze your top lead.",
			Suggestions: []string{"Analyze top lead", "Pipeline summary", "Campaign ideas"},
		}
	}
}
