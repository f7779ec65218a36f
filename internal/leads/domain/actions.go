package domain

import (
	"fmt"
	"slices"
)

// MaxActions caps every next-action list.
const MaxActions = 5

// RankingMode selects how leads are ordered for next actions.
type RankingMode string

const (
	// RankByPriority orders by the weighted priority score. Used by
	// GET /actions/next and the assistant's focus answer.
	RankByPriority RankingMode = "priority"
	// RankByCategoryTier orders by tier, then score, then interest. Used by
	// GET /copilot/actions.
	RankByCategoryTier RankingMode = "category_tier"
)

// ParseRankingMode resolves a query value; empty means RankByPriority.
func ParseRankingMode(value string) (RankingMode, bool) {
	switch RankingMode(value) {
	case "", RankByPriority:
		return RankByPriority, true
	case RankByCategoryTier:
		return RankByCategoryTier, true
	}
	return "", false
}

// Action is one recommended next step for a lead.
type Action struct {
	LeadID        int64
	Company       string
	Category      Category
	Action        string
	Reason        string
	Score         int
	Interest      int
	PriorityScore *float64
	Priority      string
}

// priorityTenths is score*0.7 + interest*3.0 scaled by ten so equal
// priorities compare equal.
func priorityTenths(score, interest int) int {
	return score*7 + interest*30
}

// PriorityScore is score*0.7 + interest*3.0, rounded to one decimal.
func PriorityScore(score, interest int) float64 {
	return float64(priorityTenths(score, interest)) / 10
}

// RankActions orders leads by mode and returns at most limit actions.
// Ties keep the order the leads were passed in.
func RankActions(leads []Lead, mode RankingMode, limit int) []Action {
	ordered := slices.Clone(leads)
	switch mode {
	case RankByCategoryTier:
		slices.SortStableFunc(ordered, func(a, b Lead) int {
			if d := b.Category.Tier() - a.Category.Tier(); d != 0 {
				return d
			}
			if d := b.Score - a.Score; d != 0 {
				return d
			}
			return b.Interest - a.Interest
		})
	default:
		slices.SortStableFunc(ordered, func(a, b Lead) int {
			return priorityTenths(b.Score, b.Interest) - priorityTenths(a.Score, a.Interest)
		})
	}

	if limit <= 0 || limit > MaxActions {
		limit = MaxActions
	}
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}

	actions := make([]Action, 0, len(ordered))
	for _, lead := range ordered {
		if mode == RankByCategoryTier {
			actions = append(actions, tierAction(lead))
			continue
		}
		actions = append(actions, priorityAction(lead))
	}
	return actions
}

func priorityAction(lead Lead) Action {
	text, reason := priorityRule(lead.Score, lead.Interest)
	priority := PriorityScore(lead.Score, lead.Interest)
	return Action{
		LeadID:        lead.ID,
		Company:       lead.Company,
		Category:      lead.Category,
		Action:        text,
		Reason:        reason,
		Score:         lead.Score,
		Interest:      lead.Interest,
		PriorityScore: &priority,
	}
}

// priorityRule is evaluated top-down; the first matching row wins.
func priorityRule(score, interest int) (string, string) {
	switch {
	case score >= 80:
		return "🔥 Call immediately — high close probability",
			fmt.Sprintf("Score %d/100, ready to close", score)
	case score >= 60:
		return "📧 Send follow-up email with ROI case study",
			fmt.Sprintf("Score %d/100, interest %d/10 — strong engagement", score, interest)
	case score >= 45 && interest >= 7:
		return "📞 Schedule discovery call",
			fmt.Sprintf("Score %d/100 with high interest (%d/10)", score, interest)
	case score >= 35:
		return "🧠 Send value-based insight email",
			fmt.Sprintf("Score %d/100 — build credibility first", score)
	default:
		return "⏳ Deprioritize — monitor for future intent",
			fmt.Sprintf("Score %d/100, low priority", score)
	}
}

func tierAction(lead Lead) Action {
	var text string
	switch {
	case lead.Category == CategoryHot:
		text = fmt.Sprintf("🔥 Call today - High conversion probability (Score: %d)", lead.Score)
	case lead.Category == CategoryWarm && lead.Interest >= 7:
		text = "📧 Send follow-up email with case study"
	case lead.Category == CategoryWarm:
		text = "📞 Schedule discovery call"
	default:
		text = "🌱 Nurture with educational content"
	}
	return Action{
		LeadID:   lead.ID,
		Company:  lead.Company,
		Category: lead.Category,
		Action:   text,
		Score:    lead.Score,
		Interest: lead.Interest,
		Priority: string(lead.Category),
	}
}
