// Package domain holds the assistant's intent dispatch table and reply
// templates.
package domain

import "strings"

// Intent is the classified purpose of a chat message.
type Intent string

const (
	IntentLeadsFocus        Intent = "leads_focus"
	IntentPipelineHealth    Intent = "pipeline_health"
	IntentExplain           Intent = "explain"
	IntentMarketingStrategy Intent = "marketing_strategy"
	IntentGeneral           Intent = "general"
)

type intentRule struct {
	keywords []string
	intent   Intent
}

// Rules are evaluated top-down and the first match wins, so a message that
// mentions both "lead" and "pipeline" is a leads_focus message.
var intentTable = []intentRule{
	{keywords: []string{"focus", "prioritize", "start", "lead"}, intent: IntentLeadsFocus},
	{keywords: []string{"health", "pipeline", "risk", "status"}, intent: IntentPipelineHealth},
	{keywords: []string{"why", "explain", "reason", "how"}, intent: IntentExplain},
	{keywords: []string{"strategy", "campaign", "marketing", "grow"}, intent: IntentMarketingStrategy},
}

// Classify maps a message to an intent by substring keyword membership.
// The match is case-insensitive.
func Classify(message string) Intent {
	msg := strings.ToLower(message)
	for _, rule := range intentTable {
		for _, keyword := range rule.keywords {
			if strings.Contains(msg, keyword) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}

// StoredIntent is the intent remembered after a turn. An explain turn is
// remembered as general so a second "why" falls back to the generic answer.
func StoredIntent(intent Intent) Intent {
	if intent == IntentExplain {
		return IntentGeneral
	}
	return intent
}
