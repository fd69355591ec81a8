package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewDB opens a connection pool for driver ("mysql" or "sqlite3") and verifies it.
func NewDB(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite3" {
		// SQLite allows one writer, and each connection to ":memory:" is its own database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", driver, err)
	}

	return db, nil
}

// Migrate creates the tables the service needs if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := mysqlSchema
	if isSQLite(db) {
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func isSQLite(db *sqlx.DB) bool {
	return db.DriverName() == "sqlite3"
}

// now returns the timestamp stored in created_at/updated_at columns. It is
// generated here instead of with NOW() so both dialects store the same value.
func now() time.Time {
	return time.Now().UTC()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
