package repository

import (
	"fmt"
	"strconv"
	"strings"

	"salesspark_backend/internal/leads/domain"
	"salesspark_backend/platform/apperr"
)

const leadColumns = "id, company, budget, interest, score, category, created_at"

// placeholder renders the n-th (1-based) bind parameter for a dialect.
type placeholder func(n int) string

func dollarPlaceholder(n int) string { return "$" + strconv.Itoa(n) }

func questionPlaceholder(int) string { return "?" }

func buildListQuery(params ListParams, ph placeholder) (string, []any) {
	direction := Descending
	if params.Direction == Ascending {
		direction = Ascending
	}

	var order string
	switch params.OrderBy {
	case OrderByCreatedAt:
		order = fmt.Sprintf("created_at %s, id %s", direction, direction)
	default:
		order = fmt.Sprintf("score %s, id ASC", direction)
	}

	query := "SELECT " + leadColumns + " FROM leads ORDER BY " + order
	var args []any
	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += " LIMIT " + ph(len(args))
	}
	return query, args
}

func buildCountQuery(filter CountFilter, ph placeholder) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(expr string, value any) {
		args = append(args, value)
		clauses = append(clauses, expr+" "+ph(len(args)))
	}

	if filter.Category != nil {
		add("category =", string(*filter.Category))
	}
	if filter.MinScore != nil {
		add("score >=", *filter.MinScore)
	}
	if filter.BelowScore != nil {
		add("score <", *filter.BelowScore)
	}
	if filter.MinInterest != nil {
		add("interest >=", *filter.MinInterest)
	}
	if filter.BelowBudget != nil {
		add("budget <", *filter.BelowBudget)
	}

	query := "SELECT COUNT(*) FROM leads"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	return query, args
}

func notFound(id int64) error {
	return apperr.NotFound(fmt.Sprintf("Lead ID %d not found", id))
}

func unavailable(op string, err error) error {
	return apperr.Unavailable("lead store unavailable", err).WithOp(op)
}

func categoryOrCold(value string) domain.Category {
	if category, ok := domain.ParseCategory(value); ok {
		return category
	}
	return domain.CategoryCold
}
