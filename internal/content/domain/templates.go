// Package domain holds the sales content generators: templated copy for
// pitches, social posts and emails, plus market analysis.
package domain

import (
	"fmt"
	"strings"
)

type Pitch struct {
	Problem   string
	ValueProp string
	Objection string
	Closing   string
	Insight   string
}

func GeneratePitch(product, target string) Pitch {
	return Pitch{
		Problem:   fmt.Sprintf("%s often face fragmented processes that kill team productivity and slow down revenue cycles.", target),
		ValueProp: fmt.Sprintf("%s unifies your workflow, automating manual tasks to recover 15+ hours per week per rep.", product),
		Objection: "Implementation takes less than 24 hours with zero downtime, unlike legacy competitors.",
		Closing:   "If we could show you a 3x ROI in the first month, would you be open to a 15-minute walkthrough?",
		Insight:   fmt.Sprintf("Emphasize speed to value—%s care most about immediate efficiency gains right now.", target),
	}
}

type SocialPost struct {
	Caption  string
	Hashtags string
	Insight  string
}

func GenerateSocialPost(product, platform string) SocialPost {
	tag := strings.ReplaceAll(product, " ", "")
	return SocialPost{
		Caption:  fmt.Sprintf("Struggling to scale your operations? 🚀\n\n%s empowers teams to break through bottlenecks and achieve predictable growth. Stop guessing and start scaling today.\n\n👇 Drop a comment for a free playbook.", product),
		Hashtags: fmt.Sprintf("#%s #%s #GrowthHacking #SaaS #Productivity", tag, platform),
		Insight:  fmt.Sprintf("Posts with questions in the first line see 2x higher engagement on %s.", platform),
	}
}

type Email struct {
	Subject     string
	Body        string
	FollowUpTip string
}

const emailFollowUpTip = "If there’s no reply, send a short follow-up after 3 days referencing this email."

// GenerateEmail builds a cold outreach email. Inputs are trimmed.
func GenerateEmail(recipient, context, product string) Email {
	recipient = strings.TrimSpace(recipient)
	context = strings.TrimSpace(context)
	product = strings.TrimSpace(product)

	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", recipient)
	fmt.Fprintf(&body, "I noticed that teams dealing with %s often struggle with manual follow-ups and low-quality engagement.\n\n", context)
	fmt.Fprintf(&body, "%s helps automate outreach, prioritize high-intent leads, and improve response rates—without increasing workload.\n\n", product)
	body.WriteString("Would you be open to a quick 10-minute conversation this week to see if this could help your team?\n\n")
	body.WriteString("Best regards,\nSalesSpark AI Team\n")

	return Email{
		Subject:     fmt.Sprintf("Quick idea to improve your %s", context),
		Body:        body.String(),
		FollowUpTip: emailFollowUpTip,
	}
}

// MarketSnapshot is the quick, static market read.
type MarketSnapshot struct {
	Trend       string
	Demand      string
	Competition string
	Opportunity string
	Insight     string
}

func QuickMarketSnapshot(industry string) MarketSnapshot {
	return MarketSnapshot{
		Trend:       "Rapid Upward Growth",
		Demand:      "High Demand (85/100)",
		Competition: "Moderate Saturation",
		Opportunity: "Expansion into Enterprise Niche",
		Insight:     fmt.Sprintf("%s markets are currently rewarding vertical integration and specialized service providers.", industry),
	}
}
