// Package store opens the configured database and builds the lead and
// campaign repositories on top of it.
package store

import (
	"context"
	"database/sql"
	"fmt"

	camprepo "salesspark_backend/internal/campaigns/repository"
	leadrepo "salesspark_backend/internal/leads/repository"
	"salesspark_backend/platform/config"
	"salesspark_backend/platform/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthChecker pings the underlying database.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Stores bundles the repositories of one database.
type Stores struct {
	Driver    string
	Leads     leadrepo.Repository
	Campaigns camprepo.Repository
	Health    HealthChecker
	close     func()
}

// Open connects to DATABASE_URL with the configured driver and applies
// the embedded migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Stores, error) {
	switch cfg.GetDatabaseDriver() {
	case config.DriverPostgres:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return postgresStores(pool), nil
	case config.DriverSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.GetDatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := db.MigrateSQLite(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return sqliteStores(conn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.GetDatabaseDriver())
	}
}

func postgresStores(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Driver:    config.DriverPostgres,
		Leads:     leadrepo.NewPostgres(pool),
		Campaigns: camprepo.NewPostgres(pool),
		Health:    pool,
		close:     pool.Close,
	}
}

func sqliteStores(conn *sql.DB) *Stores {
	return &Stores{
		Driver:    config.DriverSQLite,
		Leads:     leadrepo.NewSQLite(conn),
		Campaigns: camprepo.NewSQLite(conn),
		Health:    db.NewSQLHealth(conn),
		close:     func() { _ = conn.Close() },
	}
}

// Close releases the database connection.
func (s *Stores) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}
