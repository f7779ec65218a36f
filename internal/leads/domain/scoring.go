// Package domain holds the lead scoring, ranking and pipeline analysis rules.
// Every consumer (lead intake, analytics, the assistant) calls into this
// package so thresholds exist in exactly one place.
package domain

import (
	"fmt"
	"time"
)

const baseScore = 20

// Lead is a stored, already-scored lead.
type Lead struct {
	ID        int64
	Company   string
	Budget    int64
	Interest  int
	Score     int
	Category  Category
	CreatedAt time.Time
}

// ScoreResult is the outcome of scoring a prospective lead.
type ScoreResult struct {
	Score          int
	Category       Category
	Recommendation string
	Explanation    string
}

var recommendations = map[Category]string{
	CategoryHot:  "Schedule a discovery call within 3 days",
	CategoryWarm: "Send a personalized nurture email with a relevant case study",
	CategoryCold: "Add to monthly newsletter for long-term brand awareness",
}

// ScoreLead applies the fixed budget/interest rule table. The result is
// deterministic and is persisted unchanged with the lead.
func ScoreLead(budget int64, interest int) ScoreResult {
	score := baseScore + budgetPoints(budget) + interestPoints(interest)
	if score > MaxScore {
		score = MaxScore
	}

	category := CategoryForScore(score)
	return ScoreResult{
		Score:          score,
		Category:       category,
		Recommendation: recommendations[category],
		Explanation:    explainScore(category, budget, interest),
	}
}

func budgetPoints(budget int64) int {
	switch {
	case budget >= 50000:
		return 40
	case budget >= 10000:
		return 30
	case budget >= 5000:
		return 15
	default:
		return 5
	}
}

func interestPoints(interest int) int {
	switch {
	case interest >= 9:
		return 40
	case interest >= 7:
		return 30
	case interest >= 5:
		return 15
	default:
		return 5
	}
}

func explainScore(category Category, budget int64, interest int) string {
	switch category {
	case CategoryHot:
		return fmt.Sprintf("High interest (%d/10) and strong budget indicates immediate readiness.", interest)
	case CategoryCold:
		return fmt.Sprintf("Low interest (%d/10) suggests long-term nurturing is required.", interest)
	default:
		return fmt.Sprintf("Moderate interest (%d/10) combined with budget of $%d results in a %s score.", interest, budget, category)
	}
}
