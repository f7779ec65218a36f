package repository

import (
	"context"
	"math/rand/v2"

	"salesspark_backend/internal/leads/domain"
)

var demoCompanies = []string{
	"TechCorp", "Innovate Ltd", "BlueSky Inc", "Quantum Systems", "Nexus AI",
	"Alpha Solutions", "CyberDyan", "Global Tech", "FutureSoft", "DataFlow",
	"SmartComm", "EcoEnergy", "FinTech Pro", "MediCare Plus", "EduLearning",
}

// seedBand is an input range that always scores into one category.
type seedBand struct {
	count                    int
	minBudget, maxBudget     int64
	minInterest, maxInterest int
}

// 2 Hot, 5 Warm, 8 Cold.
var seedBands = []seedBand{
	{count: 2, minBudget: 50000, maxBudget: 100000, minInterest: 8, maxInterest: 10},
	{count: 5, minBudget: 10000, maxBudget: 40000, minInterest: 5, maxInterest: 6},
	{count: 8, minBudget: 1000, maxBudget: 9000, minInterest: 1, maxInterest: 4},
}

// SeedDemoLeads fills an empty store with the demo companies. Every row is
// scored by domain.ScoreLead so stored categories match the rule table.
// Returns how many leads were inserted; a non-empty store is left alone.
func SeedDemoLeads(ctx context.Context, repo Repository, rng *rand.Rand) (int, error) {
	existing, err := repo.Count(ctx, CountFilter{})
	if err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	inserted := 0
	companies := demoCompanies
	for _, band := range seedBands {
		for i := 0; i < band.count && len(companies) > 0; i++ {
			budget := band.minBudget + rng.Int64N(band.maxBudget-band.minBudget+1)
			interest := band.minInterest + rng.IntN(band.maxInterest-band.minInterest+1)
			result := domain.ScoreLead(budget, interest)

			if _, err := repo.Insert(ctx, CreateParams{
				Company:  companies[0],
				Budget:   budget,
				Interest: interest,
				Score:    result.Score,
				Category: result.Category,
			}); err != nil {
				return inserted, err
			}
			companies = companies[1:]
			inserted++
		}
	}
	return inserted, nil
}
