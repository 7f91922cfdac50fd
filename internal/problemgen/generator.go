package problemgen

import (
	"context"

	"github.com/studyplan/qengine/internal/perf"
	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
	"github.com/studyplan/qengine/internal/vocab"
)

// AnyWeek disables week filtering in template selection.
const AnyWeek = 0

// Generator produces batches of personalized questions.
type Generator interface {
	// Generate returns up to count questions weighted toward the learner's
	// weak categories. week restricts templates to those applicable to
	// that study week; AnyWeek disables the filter. Fewer than count
	// questions are returned when the data cannot back more.
	Generate(ctx context.Context, count int, week int) []*Question
}

// LogSource supplies the learner's answer history, oldest first.
type LogSource interface {
	RecentLogs(ctx context.Context) ([]skill.AnswerLog, error)
}

// VocabularySource supplies vocabulary already merged with the learner's
// progress overlay.
type VocabularySource interface {
	AllVocabulary(ctx context.Context) ([]vocab.Entry, error)
}

// TemplateBank supplies the static template pool. Implementations fail
// soft: a bank that cannot be read returns no templates.
type TemplateBank interface {
	LoadTemplates() []templates.Template
}

// PerformanceStore aggregates per-template outcomes durably.
type PerformanceStore interface {
	RecordOutcome(ctx context.Context, templateID string, correct bool, responseTimeMs int) error
	TemplateStats(ctx context.Context) (map[string]perf.TemplateStats, error)
}
