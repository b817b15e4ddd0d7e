package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id                     TEXT PRIMARY KEY,
		user_id                TEXT NOT NULL,
		title                  TEXT NOT NULL,
		description            TEXT NOT NULL DEFAULT '',
		target_minutes_per_day INTEGER NOT NULL CHECK(target_minutes_per_day >= 1),
		start_date             TEXT NOT NULL,
		end_date               TEXT,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS progress_entries (
		id            TEXT PRIMARY KEY,
		goal_id       TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		date          TEXT NOT NULL,
		minutes_spent INTEGER NOT NULL CHECK(minutes_spent >= 0),
		note          TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_goal_date ON progress_entries(goal_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_date ON progress_entries(date)`,

	// Columns added after the first release. Re-running these fails with
	// "duplicate column name", which Migrate tolerates.
	`ALTER TABLE goals ADD COLUMN tags TEXT NOT NULL DEFAULT '[]'`,
	`ALTER TABLE progress_entries ADD COLUMN target_met INTEGER NOT NULL DEFAULT 0`,
}

// Migrate brings the schema up to date. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillTargetMet(db); err != nil {
		return fmt.Errorf("backfilling target_met: %w", err)
	}
	return nil
}

// migrateBackfillTargetMet recomputes the stored target_met flag from the
// owning goal's current target. Rows written before the column existed hold
// the default 0 and goals edited outside the service may leave stale flags.
func migrateBackfillTargetMet(db *sql.DB) error {
	ctx := context.Background()
	query := `UPDATE progress_entries
		SET target_met = CASE
			WHEN minutes_spent >= (SELECT g.target_minutes_per_day FROM goals g WHERE g.id = progress_entries.goal_id) THEN 1
			ELSE 0
		END
		WHERE target_met != CASE
			WHEN minutes_spent >= (SELECT g.target_minutes_per_day FROM goals g WHERE g.id = progress_entries.goal_id) THEN 1
			ELSE 0
		END`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("updating progress rows: %w", err)
	}
	return nil
}
