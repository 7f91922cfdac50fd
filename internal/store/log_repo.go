package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/studyplan/qengine/internal/skill"
)

// LogRepo stores the learner's answer history. Logs are append-only.
type LogRepo struct {
	db     *sqlx.DB
	window int
}

type logRow struct {
	TaskID       string `db:"task_id"`
	Category     string `db:"category"`
	Correct      bool   `db:"correct"`
	TimestampMs  int64  `db:"timestamp_ms"`
	MinutesSpent int    `db:"minutes_spent"`
}

func (r logRow) toLog() skill.AnswerLog {
	return skill.AnswerLog{
		TaskID:       r.TaskID,
		Category:     r.Category,
		Correct:      r.Correct,
		Timestamp:    time.UnixMilli(r.TimestampMs).UTC(),
		MinutesSpent: r.MinutesSpent,
	}
}

// Append records one answer.
func (r *LogRepo) Append(ctx context.Context, l skill.AnswerLog) error {
	ts := l.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO answer_logs (task_id, category, correct, timestamp_ms, minutes_spent)
		VALUES (:task_id, :category, :correct, :timestamp_ms, :minutes_spent)`,
		logRow{
			TaskID:       l.TaskID,
			Category:     l.Category,
			Correct:      l.Correct,
			TimestampMs:  ts.UnixMilli(),
			MinutesSpent: l.MinutesSpent,
		})
	if err != nil {
		return fmt.Errorf("append answer log: %w", err)
	}
	return nil
}

// Recent returns the latest n logs, oldest first. n <= 0 returns all.
func (r *LogRepo) Recent(ctx context.Context, n int) ([]skill.AnswerLog, error) {
	query := `SELECT task_id, category, correct, timestamp_ms, minutes_spent
		FROM answer_logs ORDER BY seq DESC`
	args := []any{}
	if n > 0 {
		query += ` LIMIT ?`
		args = append(args, n)
	}

	var rows []logRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query answer logs: %w", err)
	}
	logs := lo.Map(rows, func(row logRow, _ int) skill.AnswerLog { return row.toLog() })
	return lo.Reverse(logs), nil
}

// RecentLogs returns the repo's window of recent logs, oldest first.
func (r *LogRepo) RecentLogs(ctx context.Context) ([]skill.AnswerLog, error) {
	return r.Recent(ctx, r.window)
}

// CategorySummary is the answer count and accuracy for one log label.
type CategorySummary struct {
	Category string `db:"category"`
	Total    int    `db:"total"`
	Correct  int    `db:"correct"`
}

// Accuracy returns the fraction answered correctly, 0 if none.
func (s CategorySummary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Summary aggregates all logs by lowercased label.
func (r *LogRepo) Summary(ctx context.Context) ([]CategorySummary, error) {
	var out []CategorySummary
	err := r.db.SelectContext(ctx, &out, `
		SELECT lower(category) AS category, COUNT(*) AS total, SUM(correct) AS correct
		FROM answer_logs GROUP BY lower(category) ORDER BY MIN(seq)`)
	if err != nil {
		return nil, fmt.Errorf("summarize answer logs: %w", err)
	}
	return out, nil
}
