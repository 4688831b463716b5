package storage

import (
	"database/sql"
	"fmt"
)

// schemaVersion is bumped whenever InitDB's schema changes shape.
const schemaVersion = 3

// LatestSchemaVersion reports the schema version this binary expects.
func LatestSchemaVersion() int {
	return schemaVersion
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		profile_complete INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT,
		password_change_required INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS community_user (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		approval_status TEXT NOT NULL DEFAULT 'pending',
		decided_by TEXT,
		decided_at TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS community (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		target_audience TEXT NOT NULL DEFAULT '',
		welcome_message TEXT NOT NULL DEFAULT '',
		plan_id TEXT NOT NULL,
		plan_name TEXT NOT NULL DEFAULT '',
		plan_price INTEGER NOT NULL DEFAULT 0,
		plan_period TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		created_by TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plan (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price INTEGER NOT NULL,
		period TEXT NOT NULL,
		features TEXT NOT NULL DEFAULT '[]',
		limits TEXT NOT NULL DEFAULT '',
		max_academies INTEGER NOT NULL,
		max_students_per_academy INTEGER NOT NULL,
		popular INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS academy (
		id TEXT PRIMARY KEY,
		community_id TEXT NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (community_id) REFERENCES community(id)
	);

	CREATE INDEX IF NOT EXISTS idx_community_user_status ON community_user(approval_status);
	CREATE INDEX IF NOT EXISTS idx_community_status ON community(status);
	CREATE INDEX IF NOT EXISTS idx_academy_community ON academy(community_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
