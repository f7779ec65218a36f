package repository

import (
	"context"

	"salesspark_backend/internal/leads/domain"
)

// OrderField is a sortable lead column.
type OrderField string

const (
	OrderByScore     OrderField = "score"
	OrderByCreatedAt OrderField = "created_at"
)

// SortDirection is ASC or DESC.
type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// ListParams controls List ordering. Ties on score are broken by id
// ascending; ties on created_at follow the requested direction on id.
// Limit <= 0 returns every row.
type ListParams struct {
	OrderBy   OrderField
	Direction SortDirection
	Limit     int
}

// CountFilter narrows Count. Nil fields are ignored; set fields are ANDed.
type CountFilter struct {
	Category    *domain.Category
	MinScore    *int
	BelowScore  *int
	MinInterest *int
	BelowBudget *int64
}

// CreateParams is a lead that has already been scored.
type CreateParams struct {
	Company  string
	Budget   int64
	Interest int
	Score    int
	Category domain.Category
}

// =====================================
// Segregated Interfaces (Interface Segregation Principle)
// =====================================

// LeadReader provides read-only access to lead data.
type LeadReader interface {
	GetByID(ctx context.Context, id int64) (domain.Lead, error)
	List(ctx context.Context, params ListParams) ([]domain.Lead, error)
	Count(ctx context.Context, filter CountFilter) (int, error)
	// AverageScore reports false when there are no leads.
	AverageScore(ctx context.Context) (float64, bool, error)
}

// LeadWriter provides write operations for lead intake.
type LeadWriter interface {
	Insert(ctx context.Context, params CreateParams) (domain.Lead, error)
}

// Repository is the full lead store.
type Repository interface {
	LeadReader
	LeadWriter
}
