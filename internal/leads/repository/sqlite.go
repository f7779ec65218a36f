package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"salesspark_backend/internal/leads/domain"
)

// TimeLayout is how created_at is stored in SQLite. Fixed width so that
// lexical order matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteRepo stores leads in an embedded SQLite database.
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

// Insert writes the scored lead in its own transaction and returns the row
// exactly as stored.
func (r *SQLiteRepo) Insert(ctx context.Context, params CreateParams) (domain.Lead, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Lead{}, unavailable("leads.insert", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := r.now().UTC().Format(TimeLayout)
	row := tx.QueryRowContext(ctx, `
		INSERT INTO leads (company, budget, interest, score, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+leadColumns,
		params.Company, params.Budget, params.Interest, params.Score, string(params.Category), createdAt,
	)
	lead, err := scanSQLiteLead(row)
	if err != nil {
		return domain.Lead{}, unavailable("leads.insert", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Lead{}, unavailable("leads.insert", err)
	}
	return lead, nil
}

func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (domain.Lead, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+leadColumns+" FROM leads WHERE id = ?", id)
	lead, err := scanSQLiteLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Lead{}, notFound(id)
	}
	if err != nil {
		return domain.Lead{}, unavailable("leads.get", err)
	}
	return lead, nil
}

func (r *SQLiteRepo) List(ctx context.Context, params ListParams) ([]domain.Lead, error) {
	query, args := buildListQuery(params, questionPlaceholder)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("leads.list", err)
	}
	defer rows.Close()

	leads := make([]domain.Lead, 0)
	for rows.Next() {
		lead, err := scanSQLiteLead(rows)
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

func (r *SQLiteRepo) Count(ctx context.Context, filter CountFilter) (int, error) {
	query, args := buildCountQuery(filter, questionPlaceholder)
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, unavailable("leads.count", err)
	}
	return count, nil
}

func (r *SQLiteRepo) AverageScore(ctx context.Context) (float64, bool, error) {
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, "SELECT AVG(score) FROM leads").Scan(&avg); err != nil {
		return 0, false, unavailable("leads.average_score", err)
	}
	return avg.Float64, avg.Valid, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteLead(row rowScanner) (domain.Lead, error) {
	var (
		lead      domain.Lead
		category  string
		createdAt string
	)
	if err := row.Scan(&lead.ID, &lead.Company, &lead.Budget, &lead.Interest, &lead.Score, &category, &createdAt); err != nil {
		return domain.Lead{}, err
	}
	ts, err := time.Parse(TimeLayout, createdAt)
	if err != nil {
		return domain.Lead{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	lead.CreatedAt = ts
	lead.Category = categoryOrCold(category)
	return lead, nil
}
