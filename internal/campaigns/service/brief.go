package service

import "fmt"

const (
	briefTheme   = "Authority & Trust Building"
	briefCTA     = "Schedule Your Free Strategic Consultation"
	briefOutcome = "20-30% increase in qualified inbound leads within Q1."
)

// Brief is the templated campaign plan returned on creation.
type Brief struct {
	Objective string
	Theme     string
	CTA       string
	Outcome   string
	Insight   string
}

func BuildBrief(product, platform, goal string) Brief {
	return Brief{
		Objective: fmt.Sprintf("Launch a high-impact %s campaign to drive %s for %s.", platform, goal, product),
		Theme:     briefTheme,
		CTA:       briefCTA,
		Outcome:   briefOutcome,
		Insight:   fmt.Sprintf("Data indicates %s algorithms are currently prioritizing educational content for %s campaigns.", platform, goal),
	}
}
