package domain

import "testing"

func TestScoreLeadRuleTable(t *testing.T) {
	cases := []struct {
		name     string
		budget   int64
		interest int
		score    int
		category Category
	}{
		{"max budget and interest", 60000, 10, 100, CategoryHot},
		{"floor", 2000, 2, 30, CategoryCold},
		{"budget boundary 50000", 50000, 1, 65, CategoryWarm},
		{"budget boundary 10000", 10000, 7, 80, CategoryHot},
		{"budget boundary 5000", 5000, 5, 50, CategoryCold},
		{"just under 5000", 4999, 9, 65, CategoryWarm},
		{"interest 7 mid budget", 12000, 7, 80, CategoryHot},
		{"warm lower edge", 5000, 7, 65, CategoryWarm},
		{"zero everything", 0, 0, 30, CategoryCold},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreLead(tc.budget, tc.interest)
			if got.Score != tc.score || got.Category != tc.category {
				t.Fatalf("ScoreLead(%d, %d) = %d/%s, want %d/%s", tc.budget, tc.interest, got.Score, got.Category, tc.score, tc.category)
			}
			if got.Recommendation != recommendations[tc.category] {
				t.Errorf("unexpected recommendation %q", got.Recommendation)
			}
		})
	}
}

func TestScoreLeadHighInputsAlwaysHot(t *testing.T) {
	for _, budget := range []int64{50000, 75000, 1_000_000} {
		for interest := 9; interest <= 10; interest++ {
			got := ScoreLead(budget, interest)
			if got.Score != 100 || got.Category != CategoryHot {
				t.Fatalf("ScoreLead(%d, %d) = %d/%s, want 100/Hot", budget, interest, got.Score, got.Category)
			}
		}
	}
}

func TestScoreLeadLowInputsAlwaysCold(t *testing.T) {
	for _, budget := range []int64{0, 1000, 4999} {
		for interest := 0; interest < 5; interest++ {
			got := ScoreLead(budget, interest)
			if got.Score != 30 || got.Category != CategoryCold {
				t.Fatalf("ScoreLead(%d, %d) = %d/%s, want 30/Cold", budget, interest, got.Score, got.Category)
			}
		}
	}
}

func TestCategoryMonotonicInScore(t *testing.T) {
	prev := CategoryForScore(0).Tier()
	for score := 1; score <= MaxScore; score++ {
		tier := CategoryForScore(score).Tier()
		if tier < prev {
			t.Fatalf("category tier dropped at score %d", score)
		}
		prev = tier
	}
	if CategoryForScore(79) != CategoryWarm || CategoryForScore(80) != CategoryHot {
		t.Fatal("hot boundary must be 80")
	}
	if CategoryForScore(54) != CategoryCold || CategoryForScore(55) != CategoryWarm {
		t.Fatal("warm boundary must be 55")
	}
}

func TestExplanationMentionsInputs(t *testing.T) {
	got := ScoreLead(20000, 5).Explanation
	want := "Moderate interest (5/10) combined with budget of $20000 results in a Warm score."
	if got != want {
		t.Fatalf("explanation = %q, want %q", got, want)
	}
}

func TestCategoryUrgency(t *testing.T) {
	cases := map[Category]string{
		CategoryHot:  "High",
		CategoryWarm: "Medium",
		CategoryCold: "Low",
		"Unknown":    "Medium",
	}
	for category, want := range cases {
		if got := category.Urgency(); got != want {
			t.Errorf("%q.Urgency() = %q, want %q", category, got, want)
		}
	}
}
