package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// timeLayout matches the leads table so both sort lexically by time.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteRepo stores campaigns in an embedded SQLite database.
type SQLiteRepo struct {
	db  *sql.DB
	now func() time.Time
}

var _ Repository = (*SQLiteRepo)(nil)

func NewSQLite(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{db: db, now: time.Now}
}

// SetClock overrides the creation timestamp source.
func (r *SQLiteRepo) SetClock(now func() time.Time) {
	r.now = now
}

func (r *SQLiteRepo) Create(ctx context.Context, params CreateParams) (Campaign, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Campaign{}, unavailable("campaigns.create", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO campaigns (product, platform, goal, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING `+campaignColumns,
		params.Product, params.Platform, params.Goal, r.now().UTC().Format(timeLayout),
	)
	c, err := scanCampaign(row)
	if err != nil {
		return Campaign{}, unavailable("campaigns.create", err)
	}

	if err := tx.Commit(); err != nil {
		return Campaign{}, unavailable("campaigns.create", err)
	}
	return c, nil
}

func (r *SQLiteRepo) List(ctx context.Context, limit int) ([]Campaign, error) {
	query, args := buildListQuery(limit, question)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("campaigns.list", err)
	}
	defer rows.Close()

	campaigns := make([]Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, unavailable("campaigns.list", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("campaigns.list", err)
	}
	return campaigns, nil
}

func (r *SQLiteRepo) Count(ctx context.Context, platform *string) (int, error) {
	query, args := buildCountQuery(platform, question)
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, unavailable("campaigns.count", err)
	}
	return count, nil
}

func (r *SQLiteRepo) TopPlatform(ctx context.Context) (string, bool, error) {
	var platform string
	err := r.db.QueryRowContext(ctx, topPlatformQuery).Scan(&platform)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable("campaigns.top_platform", err)
	}
	return platform, true, nil
}

func scanCampaign(row interface{ Scan(dest ...any) error }) (Campaign, error) {
	var (
		c         Campaign
		createdAt string
	)
	if err := row.Scan(&c.ID, &c.Product, &c.Platform, &c.Goal, &createdAt); err != nil {
		return Campaign{}, err
	}
	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return Campaign{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	c.CreatedAt = ts
	return c, nil
}
