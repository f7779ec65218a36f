package repository

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"salesspark_backend/internal/leads/domain"
	"salesspark_backend/platform/apperr"
	"salesspark_backend/platform/db"
)

func newTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	ctx := context.Background()
	conn, err := db.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.MigrateSQLite(ctx, conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	repo := NewSQLite(conn)
	base := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	tick := 0
	repo.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	})
	return repo
}

func insertScored(t *testing.T, repo Repository, company string, budget int64, interest int) domain.Lead {
	t.Helper()
	result := domain.ScoreLead(budget, interest)
	lead, err := repo.Insert(context.Background(), CreateParams{
		Company:  company,
		Budget:   budget,
		Interest: interest,
		Score:    result.Score,
		Category: result.Category,
	})
	if err != nil {
		t.Fatalf("insert %s: %v", company, err)
	}
	return lead
}

func TestInsertReturnsStoredRow(t *testing.T) {
	repo := newTestRepo(t)
	lead := insertScored(t, repo, "Acme", 60000, 10)

	if lead.ID == 0 || lead.Score != 100 || lead.Category != domain.CategoryHot {
		t.Fatalf("unexpected stored lead %+v", lead)
	}

	got, err := repo.GetByID(context.Background(), lead.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != lead {
		t.Fatalf("GetByID = %+v, want %+v", got, lead)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.GetByID(context.Background(), 9999)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "Lead ID 9999 not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestListOrdering(t *testing.T) {
	repo := newTestRepo(t)
	a := insertScored(t, repo, "A", 2000, 2)   // 30
	b := insertScored(t, repo, "B", 60000, 10) // 100
	c := insertScored(t, repo, "C", 2000, 2)   // 30
	d := insertScored(t, repo, "D", 20000, 5)  // 65
	ctx := context.Background()

	byScore, err := repo.List(ctx, ListParams{OrderBy: OrderByScore, Direction: Descending})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	assertIDs(t, byScore, b.ID, d.ID, a.ID, c.ID)

	newest, err := repo.List(ctx, ListParams{OrderBy: OrderByCreatedAt, Direction: Descending, Limit: 2})
	if err != nil {
		t.Fatalf("list newest: %v", err)
	}
	assertIDs(t, newest, d.ID, c.ID)

	oldest, err := repo.List(ctx, ListParams{OrderBy: OrderByCreatedAt, Direction: Ascending, Limit: 2})
	if err != nil {
		t.Fatalf("list oldest: %v", err)
	}
	assertIDs(t, oldest, a.ID, b.ID)
}

func TestCountFilters(t *testing.T) {
	repo := newTestRepo(t)
	insertScored(t, repo, "A", 60000, 10) // 100 Hot
	insertScored(t, repo, "B", 20000, 8)  // 80 Hot
	insertScored(t, repo, "C", 20000, 5)  // 65 Warm
	insertScored(t, repo, "D", 2000, 2)   // 30 Cold
	ctx := context.Background()

	hot := domain.CategoryHot
	minScore, belowScore, minInterest := 80, 40, 8
	belowBudget := int64(20000)

	cases := []struct {
		name   string
		filter CountFilter
		want   int
	}{
		{"all", CountFilter{}, 4},
		{"hot", CountFilter{Category: &hot}, 2},
		{"high value", CountFilter{MinScore: &minScore}, 2},
		{"low intent", CountFilter{BelowScore: &belowScore}, 1},
		{"high intent", CountFilter{MinInterest: &minInterest}, 2},
		{"price sensitive", CountFilter{BelowBudget: &belowBudget}, 1},
		{"combined", CountFilter{Category: &hot, MinInterest: &minInterest}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Count(ctx, tc.filter)
			if err != nil {
				t.Fatalf("count: %v", err)
			}
			if got != tc.want {
				t.Fatalf("count = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAverageScore(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, ok, err := repo.AverageScore(ctx); err != nil || ok {
		t.Fatalf("empty store should report no average, got ok=%v err=%v", ok, err)
	}

	insertScored(t, repo, "A", 60000, 10) // 100
	insertScored(t, repo, "B", 2000, 2)   // 30
	avg, ok, err := repo.AverageScore(ctx)
	if err != nil || !ok {
		t.Fatalf("average: ok=%v err=%v", ok, err)
	}
	if avg != 65 {
		t.Fatalf("average = %v, want 65", avg)
	}
}

func TestSeedDemoLeads(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(1, 2))

	n, err := SeedDemoLeads(ctx, repo, rng)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != len(demoCompanies) {
		t.Fatalf("seeded %d leads, want %d", n, len(demoCompanies))
	}

	leads, err := repo.List(ctx, ListParams{OrderBy: OrderByCreatedAt, Direction: Ascending})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	counts := map[domain.Category]int{}
	for _, lead := range leads {
		want := domain.ScoreLead(lead.Budget, lead.Interest)
		if lead.Score != want.Score || lead.Category != want.Category {
			t.Fatalf("seed row %s breaks scoring: %+v", lead.Company, lead)
		}
		counts[lead.Category]++
	}
	if counts[domain.CategoryHot] != 2 || counts[domain.CategoryWarm] != 5 || counts[domain.CategoryCold] != 8 {
		t.Fatalf("unexpected category split %v", counts)
	}

	again, err := SeedDemoLeads(ctx, repo, rng)
	if err != nil || again != 0 {
		t.Fatalf("second seed should be a no-op, got %d, %v", again, err)
	}
}

func TestStoreFailureIsUnavailable(t *testing.T) {
	repo := newTestRepo(t)
	_ = repo.db.Close()

	_, err := repo.Count(context.Background(), CountFilter{})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func assertIDs(t *testing.T, leads []domain.Lead, want ...int64) {
	t.Helper()
	if len(leads) != len(want) {
		t.Fatalf("got %d leads, want %d", len(leads), len(want))
	}
	for i, id := range want {
		if leads[i].ID != id {
			t.Fatalf("position %d: got id %d, want %d", i, leads[i].ID, id)
		}
	}
}
