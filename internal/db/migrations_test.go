package db_test

import (
	"database/sql"
	"testing"

	"dbc/backend/internal/db"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func columnNames(t *testing.T, database *sql.DB, table string) []string {
	t.Helper()
	rows, err := database.Query(`SELECT name FROM pragma_table_info('` + table + `')`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestMigrate_AddsLastCheckedAtToLegacyTable(t *testing.T) {
	database, err := sql.Open("sqlite", "file:legacy_site_domains?mode=memory&cache=shared")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`
		CREATE TABLE site_domains (
			id INTEGER PRIMARY KEY,
			user_id TEXT NOT NULL,
			template TEXT NOT NULL,
			domain TEXT NOT NULL UNIQUE,
			verified INTEGER NOT NULL DEFAULT 0,
			verified_at TEXT,
			verification_token TEXT,
			txt_verified_at TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE (user_id, template)
		);
		INSERT INTO site_domains (id, user_id, template, domain, created_at, updated_at)
		VALUES (1, 'u1', 'card', 'example.com', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z');
	`)
	require.NoError(t, err)
	require.NotContains(t, columnNames(t, database, "site_domains"), "last_checked_at")

	require.NoError(t, db.Migrate(database))
	require.Contains(t, columnNames(t, database, "site_domains"), "last_checked_at")

	var domain string
	require.NoError(t, database.QueryRow(`SELECT domain FROM site_domains WHERE id = 1`).Scan(&domain))
	require.Equal(t, "example.com", domain)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := sql.Open("sqlite", "file:idempotent_site_domains?mode=memory&cache=shared")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name='idx_site_domains_verified_created'`,
	).Scan(&count))
	require.Equal(t, 1, count)
}

func TestMigrate_TemplateConstraints(t *testing.T) {
	database, err := sql.Open("sqlite", "file:constraints_site_domains?mode=memory&cache=shared")
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, db.Migrate(database))

	insert := `INSERT INTO site_domains (id, user_id, template, domain, created_at, updated_at) VALUES (?, ?, ?, ?, 'x', 'x')`
	_, err = database.Exec(insert, 1, "u1", "card", "a.example.com")
	require.NoError(t, err)

	_, err = database.Exec(insert, 2, "u1", "blog", "b.example.com")
	require.Error(t, err)

	_, err = database.Exec(insert, 3, "u1", "card", "c.example.com")
	require.Error(t, err, "one domain per user and template")

	_, err = database.Exec(insert, 4, "u2", "card", "a.example.com")
	require.Error(t, err, "domain is globally unique")
}
