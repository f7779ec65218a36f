package domain

import "testing"

func lead(id int64, score, interest int) Lead {
	return Lead{ID: id, Score: score, Interest: interest, Category: CategoryForScore(score)}
}

func TestRankActionsPriorityOrderAndStability(t *testing.T) {
	leads := []Lead{
		lead(1, 60, 9), // 69.0
		lead(2, 30, 2), // 27.0
		lead(3, 90, 2), // 69.0, ties with 1
		lead(4, 100, 10),
	}

	actions := RankActions(leads, RankByPriority, MaxActions)
	want := []int64{4, 1, 3, 2}
	if len(actions) != len(want) {
		t.Fatalf("expected %d actions, got %d", len(want), len(actions))
	}
	for i, id := range want {
		if actions[i].LeadID != id {
			t.Fatalf("position %d: got lead %d, want %d", i, actions[i].LeadID, id)
		}
	}
	for i := 1; i < len(actions); i++ {
		if *actions[i].PriorityScore > *actions[i-1].PriorityScore {
			t.Fatalf("actions not sorted by priority at %d", i)
		}
	}
	if *actions[1].PriorityScore != 69.0 {
		t.Errorf("priority score = %v, want 69", *actions[1].PriorityScore)
	}
}

func TestRankActionsCapsAtFive(t *testing.T) {
	leads := make([]Lead, 0, 8)
	for i := int64(1); i <= 8; i++ {
		leads = append(leads, lead(i, 50, 5))
	}
	actions := RankActions(leads, RankByPriority, 0)
	if len(actions) != MaxActions {
		t.Fatalf("expected %d actions, got %d", MaxActions, len(actions))
	}
	if actions[0].LeadID != 1 || actions[4].LeadID != 5 {
		t.Fatalf("equal priorities must keep input order, got %d..%d", actions[0].LeadID, actions[4].LeadID)
	}
}

func TestPriorityRuleTable(t *testing.T) {
	cases := []struct {
		score, interest int
		action          string
	}{
		{80, 1, "🔥 Call immediately — high close probability"},
		{60, 1, "📧 Send follow-up email with ROI case study"},
		{45, 7, "📞 Schedule discovery call"},
		{45, 6, "🧠 Send value-based insight email"},
		{35, 1, "🧠 Send value-based insight email"},
		{34, 10, "⏳ Deprioritize — monitor for future intent"},
	}
	for _, tc := range cases {
		got, _ := priorityRule(tc.score, tc.interest)
		if got != tc.action {
			t.Errorf("priorityRule(%d, %d) = %q, want %q", tc.score, tc.interest, got, tc.action)
		}
	}
}

func TestRankActionsCategoryTier(t *testing.T) {
	leads := []Lead{
		lead(1, 40, 10),
		lead(2, 70, 8),
		lead(3, 85, 1),
		lead(4, 70, 9),
		lead(5, 60, 3),
	}

	actions := RankActions(leads, RankByCategoryTier, MaxActions)
	want := []int64{3, 4, 2, 5, 1}
	for i, id := range want {
		if actions[i].LeadID != id {
			t.Fatalf("position %d: got lead %d, want %d", i, actions[i].LeadID, id)
		}
		if actions[i].PriorityScore != nil {
			t.Fatal("category tier mode must not carry a numeric priority")
		}
	}
	if actions[0].Action != "🔥 Call today - High conversion probability (Score: 85)" {
		t.Errorf("unexpected hot action %q", actions[0].Action)
	}
	if actions[1].Action != "📧 Send follow-up email with case study" {
		t.Errorf("unexpected warm/high-interest action %q", actions[1].Action)
	}
	if actions[3].Action != "📞 Schedule discovery call" {
		t.Errorf("unexpected warm action %q", actions[3].Action)
	}
	if actions[4].Priority != "Cold" {
		t.Errorf("priority label = %q, want Cold", actions[4].Priority)
	}
}

func TestParseRankingMode(t *testing.T) {
	if mode, ok := ParseRankingMode(""); !ok || mode != RankByPriority {
		t.Fatal("empty mode should default to priority")
	}
	if mode, ok := ParseRankingMode("category_tier"); !ok || mode != RankByCategoryTier {
		t.Fatal("category_tier should parse")
	}
	if _, ok := ParseRankingMode("random"); ok {
		t.Fatal("unknown mode should be rejected")
	}
}

func TestScenarioAcmeRanksFirst(t *testing.T) {
	acme := ScoreLead(60000, 10)
	small := ScoreLead(2000, 2)
	leads := []Lead{
		{ID: 2, Company: "Small", Score: small.Score, Interest: 2, Category: small.Category},
		{ID: 1, Company: "Acme", Score: acme.Score, Interest: 10, Category: acme.Category},
	}
	actions := RankActions(leads, RankByPriority, MaxActions)
	if actions[0].Company != "Acme" {
		t.Fatalf("expected Acme first, got %s", actions[0].Company)
	}
}
