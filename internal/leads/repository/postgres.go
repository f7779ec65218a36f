package repository

import (
	"context"
	"errors"

	"salesspark_backend/internal/leads/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo stores leads in PostgreSQL.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

var _ Repository = (*PostgresRepo)(nil)

func NewPostgres(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

// Insert writes the scored lead in its own transaction and returns the row
// exactly as stored.
func (r *PostgresRepo) Insert(ctx context.Context, params CreateParams) (domain.Lead, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Lead{}, unavailable("leads.insert", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO leads (company, budget, interest, score, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+leadColumns,
		params.Company, params.Budget, params.Interest, params.Score, string(params.Category),
	)
	lead, err := scanPGLead(row)
	if err != nil {
		return domain.Lead{}, unavailable("leads.insert", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Lead{}, unavailable("leads.insert", err)
	}
	return lead, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (domain.Lead, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+leadColumns+" FROM leads WHERE id = $1", id)
	lead, err := scanPGLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, notFound(id)
	}
	if err != nil {
		return domain.Lead{}, unavailable("leads.get", err)
	}
	return lead, nil
}

func (r *PostgresRepo) List(ctx context.Context, params ListParams) ([]domain.Lead, error) {
	query, args := buildListQuery(params, dollarPlaceholder)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, unavailable("leads.list", err)
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		lead, err := scanPGLead(rows)
		if err != nil {
			return nil, unavailable("leads.list", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("leads.list", err)
	}
	return leads, nil
}

func (r *PostgresRepo) Count(ctx context.Context, filter CountFilter) (int, error) {
	query, args := buildCountQuery(filter, dollarPlaceholder)
	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, unavailable("leads.count", err)
	}
	return count, nil
}

func (r *PostgresRepo) AverageScore(ctx context.Context) (float64, bool, error) {
	var avg *float64
	if err := r.pool.QueryRow(ctx, "SELECT AVG(score)::float8 FROM leads").Scan(&avg); err != nil {
		return 0, false, unavailable("leads.average_score", err)
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

func scanPGLead(row pgx.Row) (domain.Lead, error) {
	var (
		lead     domain.Lead
		category string
	)
	if err := row.Scan(&lead.ID, &lead.Company, &lead.Budget, &lead.Interest, &lead.Score, &category, &lead.CreatedAt); err != nil {
		return domain.Lead{}, err
	}
	lead.Category = categoryOrCold(category)
	return lead, nil
}
