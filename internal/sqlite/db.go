package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the local state schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Single live client identity. rowid is pinned so there is never more
-- than one row.
CREATE TABLE IF NOT EXISTS client_identity (
    rowid INTEGER PRIMARY KEY CHECK(rowid = 1),
    client_id TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Donation sittings
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    client_id TEXT NOT NULL,
    started_at TIMESTAMP NOT NULL,
    ended_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_client_sessions ON sessions(client_id);

-- Log of successfully uploaded recordings; source of the aggregate
-- duration total
CREATE TABLE IF NOT EXISTS recordings (
    id TEXT PRIMARY KEY,
    client_id TEXT NOT NULL,
    session_id TEXT,
    duration_seconds REAL NOT NULL,
    uploaded_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_client_recordings ON recordings(client_id);
CREATE INDEX IF NOT EXISTS idx_session_recordings ON recordings(session_id);

-- Consent flags
CREATE TABLE IF NOT EXISTS consent_flags (
    name TEXT PRIMARY KEY,
    granted INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
