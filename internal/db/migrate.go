package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// The degree is a singleton per plan database.
	`CREATE TABLE IF NOT EXISTS degrees (
		id                     TEXT PRIMARY KEY DEFAULT 'default',
		name                   TEXT NOT NULL,
		total_credits_required REAL NOT NULL
		                       CHECK(total_credits_required BETWEEN 60 AND 200),
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS semesters (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		year        INTEGER NOT NULL,
		season      TEXT NOT NULL
		            CHECK(season IN ('autumn','spring','summer')),
		is_active   INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_semesters_order ON semesters(order_index)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id          TEXT PRIMARY KEY,
		semester_id TEXT NOT NULL REFERENCES semesters(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		credits     REAL NOT NULL CHECK(credits BETWEEN 0 AND 6),
		grade       REAL,
		days        TEXT NOT NULL DEFAULT '',
		start_time  TEXT NOT NULL DEFAULT '',
		end_time    TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_courses_semester ON courses(semester_id)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		body       TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,
}
