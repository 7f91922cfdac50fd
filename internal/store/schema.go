package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Timestamps are stored as Unix milliseconds so that ordering and
// round-trips do not depend on the driver's time formatting.
var schema = []struct {
	name string
	ddl  string
}{
	{"answer_logs", `CREATE TABLE IF NOT EXISTS answer_logs (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id TEXT NOT NULL,
		category TEXT NOT NULL,
		correct INTEGER NOT NULL,
		timestamp_ms INTEGER NOT NULL,
		minutes_spent INTEGER NOT NULL DEFAULT 0
	)`},
	{"vocabulary", `CREATE TABLE IF NOT EXISTS vocabulary (
		word TEXT PRIMARY KEY COLLATE NOCASE,
		definition TEXT NOT NULL,
		difficulty INTEGER NOT NULL,
		week_introduced INTEGER NOT NULL DEFAULT 0,
		related_words TEXT NOT NULL DEFAULT '[]',
		contexts TEXT NOT NULL DEFAULT '[]',
		position INTEGER NOT NULL
	)`},
	{"vocabulary_progress", `CREATE TABLE IF NOT EXISTS vocabulary_progress (
		word TEXT PRIMARY KEY COLLATE NOCASE,
		mastery_level REAL NOT NULL DEFAULT 0,
		last_encountered_ms INTEGER NOT NULL DEFAULT 0,
		error_count INTEGER NOT NULL DEFAULT 0,
		success_rate REAL NOT NULL DEFAULT 0
	)`},
	{"template_stats", `CREATE TABLE IF NOT EXISTS template_stats (
		template_id TEXT PRIMARY KEY,
		times_served INTEGER NOT NULL,
		times_correct INTEGER NOT NULL,
		average_time_ms REAL NOT NULL
	)`},
}

// migrate creates the tables if they do not exist.
func migrate(db *sqlx.DB) error {
	for _, t := range schema {
		if _, err := db.Exec(t.ddl); err != nil {
			return fmt.Errorf("create %s table: %w", t.name, err)
		}
	}
	return nil
}
