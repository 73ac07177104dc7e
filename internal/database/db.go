package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresConnection opens a Postgres connection pool and verifies it
func NewPostgresConnection(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates the schema if it does not exist yet.
// The unique index on (tenant_id, related_id, type) is what turns a
// concurrent duplicate-notification race into a harmless no-op insert.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS payables (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			counterparty_id TEXT,
			counterparty_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			document_number TEXT,
			due_date DATE,
			status TEXT NOT NULL,
			original_amount BIGINT NOT NULL,
			outstanding_amount BIGINT,
			category_id TEXT,
			category_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS receivables (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			counterparty_id TEXT,
			counterparty_name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			document_number TEXT,
			due_date DATE,
			status TEXT NOT NULL,
			original_amount BIGINT NOT NULL,
			outstanding_amount BIGINT,
			category_id TEXT,
			category_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id TEXT PRIMARY KEY,
			tenant_id TEXT NOT NULL,
			related_id TEXT NOT NULL,
			type TEXT NOT NULL,
			message TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			icon_class TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS notifications_tenant_related_type_idx
			ON notifications (tenant_id, related_id, type)`,
		`CREATE INDEX IF NOT EXISTS payables_tenant_due_idx ON payables (tenant_id, due_date)`,
		`CREATE INDEX IF NOT EXISTS receivables_tenant_due_idx ON receivables (tenant_id, due_date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
