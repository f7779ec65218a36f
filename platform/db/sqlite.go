package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteDriverName is the database/sql driver registered by modernc.org/sqlite.
const SQLiteDriverName = "sqlite"

// OpenSQLite opens an embedded SQLite database. SQLite serializes writers,
// so the handle is limited to a single connection; this also keeps
// ":memory:" databases shared across every query.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(SQLiteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	if !isMemoryDSN(dsn) {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("sqlite %s: %w", pragma, err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return conn, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}

// SQLHealth adapts a *sql.DB to the readiness checker used by the router.
type SQLHealth struct {
	db *sql.DB
}

// NewSQLHealth wraps db for readiness checks.
func NewSQLHealth(db *sql.DB) *SQLHealth {
	return &SQLHealth{db: db}
}

// Ping checks the connection.
func (h *SQLHealth) Ping(ctx context.Context) error {
	return h.db.PingContext(ctx)
}
