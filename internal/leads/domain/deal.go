package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// amounts groups budget digits the way the explanation text shows them.
var amounts = message.NewPrinter(language.English)

// DealAdvice is the closing playbook for a single lead.
type DealAdvice struct {
	ClosingStrategy string
	DiscountRange   string
	ObjectionFocus  string
	UrgencyLevel    string
	Explanation     string
}

// AdviseDeal applies the score x budget closing table.
func AdviseDeal(lead Lead) DealAdvice {
	advice := DealAdvice{UrgencyLevel: lead.Category.Urgency()}

	switch {
	case lead.Score >= 70 && lead.Budget >= 50000:
		advice.ClosingStrategy = "Executive ROI-driven close"
		advice.ObjectionFocus = "ROI and long-term value"
	case lead.Score >= 60 && lead.Budget >= 30000:
		advice.ClosingStrategy = "Value-based competitive close"
		advice.ObjectionFocus = "Feature comparison and pricing"
	case lead.Score >= 50:
		advice.ClosingStrategy = "Consultative relationship-building"
		advice.ObjectionFocus = "Trust and implementation support"
	default:
		advice.ClosingStrategy = "Nurture-first soft approach"
		advice.ObjectionFocus = "Education and use case alignment"
	}

	switch {
	case lead.Score >= 80:
		advice.DiscountRange = "0–5%"
	case lead.Score >= 60:
		advice.DiscountRange = "5–10%"
	case lead.Score >= 40:
		advice.DiscountRange = "10–15%"
	default:
		advice.DiscountRange = "15–20% (nurture pricing)"
	}

	advice.Explanation = amounts.Sprintf(
		"Score=%d, Budget=$%d, Interest=%d/10, Category=%s. Strategy tailored to lead profile.",
		lead.Score, lead.Budget, lead.Interest, lead.Category,
	)
	return advice
}

// FollowupStep is one touchpoint in an outreach sequence.
type FollowupStep struct {
	Day    int
	Action string
}

// FollowupPlan is the day-by-day outreach sequence for a lead.
type FollowupPlan struct {
	Category Category
	Score    int
	Steps    []FollowupStep
	Note     string
}

var followupSequences = map[Category]struct {
	steps []FollowupStep
	note  string
}{
	CategoryHot: {
		steps: []FollowupStep{
			{Day: 1, Action: "Call lead immediately - high close probability"},
			{Day: 2, Action: "Send detailed proposal with ROI breakdown"},
			{Day: 3, Action: "Follow-up call to address questions and close"},
		},
		note: "Hot lead sequence optimized for fast closure",
	},
	CategoryWarm: {
		steps: []FollowupStep{
			{Day: 1, Action: "Send personalized email with value proposition"},
			{Day: 3, Action: "Share relevant case study"},
			{Day: 7, Action: "Follow-up call to discuss next steps"},
		},
		note: "Warm lead sequence focused on building trust",
	},
	CategoryCold: {
		steps: []FollowupStep{
			{Day: 3, Action: "Send educational content"},
			{Day: 7, Action: "Share industry insights"},
			{Day: 14, Action: "Soft check-in to gauge interest"},
		},
		note: "Cold lead sequence for gentle nurturing",
	},
}

// PlanFollowup returns the fixed sequence for the lead's category. Anything
// that is not Hot or Warm gets the Cold sequence.
func PlanFollowup(lead Lead) FollowupPlan {
	seq, ok := followupSequences[lead.Category]
	if !ok {
		seq = followupSequences[CategoryCold]
	}
	steps := make([]FollowupStep, len(seq.steps))
	copy(steps, seq.steps)
	return FollowupPlan{
		Category: lead.Category,
		Score:    lead.Score,
		Steps:    steps,
		Note:     seq.note,
	}
}
