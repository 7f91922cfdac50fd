package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/studyplan/qengine/internal/perf"
)

// PerformanceRepo keeps template stats in an in-memory aggregator and
// writes each updated row through to the database.
type PerformanceRepo struct {
	db  *sqlx.DB
	agg *perf.Aggregator
}

type statsRow struct {
	TemplateID string `db:"template_id"`
	perf.TemplateStats
}

// PerformanceRepo loads persisted stats and returns a repo serving them.
func (s *Store) PerformanceRepo(ctx context.Context) (*PerformanceRepo, error) {
	var rows []statsRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT template_id, times_served, times_correct, average_time_ms FROM template_stats`)
	if err != nil {
		return nil, fmt.Errorf("load template stats: %w", err)
	}
	stats := make(map[string]perf.TemplateStats, len(rows))
	for _, row := range rows {
		stats[row.TemplateID] = row.TemplateStats
	}

	agg := perf.NewAggregator()
	agg.Load(stats)
	return &PerformanceRepo{db: s.db, agg: agg}, nil
}

// RecordOutcome folds one answer into the template's stats and persists
// the updated row. An empty templateID is ignored.
func (r *PerformanceRepo) RecordOutcome(ctx context.Context, templateID string, correct bool, responseTimeMs int) error {
	st, ok := r.agg.RecordOutcome(templateID, correct, responseTimeMs)
	if !ok {
		return nil
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO template_stats (template_id, times_served, times_correct, average_time_ms)
		VALUES (:template_id, :times_served, :times_correct, :average_time_ms)
		ON CONFLICT(template_id) DO UPDATE SET
			times_served = excluded.times_served,
			times_correct = excluded.times_correct,
			average_time_ms = excluded.average_time_ms`,
		statsRow{TemplateID: templateID, TemplateStats: st})
	if err != nil {
		return fmt.Errorf("save stats for %s: %w", templateID, err)
	}
	return nil
}

// TemplateStats returns a snapshot of all template stats.
func (r *PerformanceRepo) TemplateStats(context.Context) (map[string]perf.TemplateStats, error) {
	return r.agg.Stats(), nil
}

// Reset clears all stats, in memory and on disk.
func (r *PerformanceRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM template_stats`); err != nil {
		return fmt.Errorf("reset template stats: %w", err)
	}
	r.agg.Reset()
	return nil
}
