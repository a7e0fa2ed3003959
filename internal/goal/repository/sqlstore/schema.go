package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Timestamps are stored as RFC 3339 text in UTC so that both dialects
// compare them lexically and scan them the same way.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		emoji       TEXT NOT NULL DEFAULT '',
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user_status ON goals (user_id, status)`,
	`CREATE TABLE IF NOT EXISTS goal_schedules (
		id               TEXT PRIMARY KEY,
		goal_id          TEXT NOT NULL REFERENCES goals (id) ON DELETE CASCADE,
		day_number       INTEGER NOT NULL,
		date             TEXT NOT NULL,
		start_time       TEXT NOT NULL,
		end_time         TEXT NOT NULL,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		emoji            TEXT NOT NULL DEFAULT '',
		progress_percent DOUBLE PRECISION NOT NULL,
		best_effort      BOOLEAN NOT NULL DEFAULT FALSE,
		warning          TEXT NOT NULL DEFAULT '',
		UNIQUE (goal_id, day_number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goal_schedules_start ON goal_schedules (start_time)`,
}

// Migrate creates the tables when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
