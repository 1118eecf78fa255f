package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS site_domains (
  id INTEGER PRIMARY KEY,
  user_id TEXT NOT NULL,
  template TEXT NOT NULL CHECK (template IN ('card', 'website')),
  domain TEXT NOT NULL UNIQUE,
  verified INTEGER NOT NULL DEFAULT 0,
  verified_at TEXT,
  verification_token TEXT,
  txt_verified_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  UNIQUE (user_id, template)
);

CREATE INDEX IF NOT EXISTS idx_site_domains_user_id ON site_domains(user_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: track when the jobs last looked at a row
	exists, err := hasColumn(db, "site_domains", "last_checked_at")
	if err != nil {
		return fmt.Errorf("check last_checked_at column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE site_domains ADD COLUMN last_checked_at TEXT`); err != nil {
			return fmt.Errorf("add last_checked_at column: %w", err)
		}
	}

	// Migration 2: jobs scan unverified rows oldest first
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_site_domains_verified_created ON site_domains(verified, created_at)`); err != nil {
		return fmt.Errorf("create idx_site_domains_verified_created: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
