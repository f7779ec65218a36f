package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo stores campaigns in PostgreSQL.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// Compile-time check that PostgresRepo implements Repository.
var _ Repository = (*PostgresRepo)(nil)

func NewPostgres(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

func (r *PostgresRepo) Create(ctx context.Context, params CreateParams) (Campaign, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Campaign{}, unavailable("campaigns.create", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var c Campaign
	if err := tx.QueryRow(ctx, `
		INSERT INTO campaigns (product, platform, goal)
		VALUES ($1, $2, $3)
		RETURNING `+campaignColumns,
		params.Product, params.Platform, params.Goal,
	).Scan(&c.ID, &c.Product, &c.Platform, &c.Goal, &c.CreatedAt); err != nil {
		return Campaign{}, unavailable("campaigns.create", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Campaign{}, unavailable("campaigns.create", err)
	}
	return c, nil
}

func (r *PostgresRepo) List(ctx context.Context, limit int) ([]Campaign, error) {
	query, args := buildListQuery(limit, dollar)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, unavailable("campaigns.list", err)
	}
	defer rows.Close()

	campaigns := make([]Campaign, 0)
	for rows.Next() {
		var c Campaign
		if err := rows.Scan(&c.ID, &c.Product, &c.Platform, &c.Goal, &c.CreatedAt); err != nil {
			return nil, unavailable("campaigns.list", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("campaigns.list", err)
	}
	return campaigns, nil
}

func (r *PostgresRepo) Count(ctx context.Context, platform *string) (int, error) {
	query, args := buildCountQuery(platform, dollar)
	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, unavailable("campaigns.count", err)
	}
	return count, nil
}

func (r *PostgresRepo) TopPlatform(ctx context.Context) (string, bool, error) {
	var platform string
	err := r.pool.QueryRow(ctx, topPlatformQuery).Scan(&platform)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("campaigns.top_platform", err)
	}
	return platform, true, nil
}
