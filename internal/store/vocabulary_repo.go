package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"github.com/studyplan/qengine/internal/vocab"
)

// VocabularyRepo stores the static vocabulary and the learner's progress
// on each word. The two live in separate tables; reads merge them.
type VocabularyRepo struct {
	db *sqlx.DB
}

type vocabRow struct {
	Word           string `db:"word"`
	Definition     string `db:"definition"`
	Difficulty     int    `db:"difficulty"`
	WeekIntroduced int    `db:"week_introduced"`
	RelatedWords   string `db:"related_words"`
	Contexts       string `db:"contexts"`
	Position       int    `db:"position"`
}

type progressRow struct {
	Word              string  `db:"word"`
	MasteryLevel      float64 `db:"mastery_level"`
	LastEncounteredMs int64   `db:"last_encountered_ms"`
	ErrorCount        int     `db:"error_count"`
	SuccessRate       float64 `db:"success_rate"`
}

func toVocabRow(e vocab.Entry, pos int) (vocabRow, error) {
	related, err := json.Marshal(lo.Ternary(e.RelatedWords == nil, []string{}, e.RelatedWords))
	if err != nil {
		return vocabRow{}, fmt.Errorf("marshal related words: %w", err)
	}
	contexts, err := json.Marshal(lo.Ternary(e.Contexts == nil, []string{}, e.Contexts))
	if err != nil {
		return vocabRow{}, fmt.Errorf("marshal contexts: %w", err)
	}
	return vocabRow{
		Word:           e.Word,
		Definition:     e.Definition,
		Difficulty:     e.Difficulty,
		WeekIntroduced: e.WeekIntroduced,
		RelatedWords:   string(related),
		Contexts:       string(contexts),
		Position:       pos,
	}, nil
}

func (r vocabRow) toEntry() (vocab.Entry, error) {
	e := vocab.Entry{
		Word:           r.Word,
		Definition:     r.Definition,
		Difficulty:     r.Difficulty,
		WeekIntroduced: r.WeekIntroduced,
	}
	if err := json.Unmarshal([]byte(r.RelatedWords), &e.RelatedWords); err != nil {
		return vocab.Entry{}, fmt.Errorf("unmarshal related words for %q: %w", r.Word, err)
	}
	if err := json.Unmarshal([]byte(r.Contexts), &e.Contexts); err != nil {
		return vocab.Entry{}, fmt.Errorf("unmarshal contexts for %q: %w", r.Word, err)
	}
	return e, nil
}

func (r progressRow) toProgress() vocab.Progress {
	p := vocab.Progress{
		Word:         r.Word,
		MasteryLevel: r.MasteryLevel,
		ErrorCount:   r.ErrorCount,
		SuccessRate:  r.SuccessRate,
	}
	if r.LastEncounteredMs != 0 {
		p.LastEncountered = time.UnixMilli(r.LastEncounteredMs).UTC()
	}
	return p
}

// UpsertEntries inserts or replaces static entries in one transaction.
// New words are appended after existing ones; progress is untouched.
func (r *VocabularyRepo) UpsertEntries(ctx context.Context, entries []vocab.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin vocabulary import: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.GetContext(ctx, &next, `SELECT COALESCE(MAX(position), -1) + 1 FROM vocabulary`); err != nil {
		return fmt.Errorf("read vocabulary position: %w", err)
	}

	for i, e := range entries {
		if e.Word == "" {
			return fmt.Errorf("vocabulary entry %d: word is empty", i)
		}
		row, err := toVocabRow(e, next+i)
		if err != nil {
			return err
		}
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO vocabulary (word, definition, difficulty, week_introduced, related_words, contexts, position)
			VALUES (:word, :definition, :difficulty, :week_introduced, :related_words, :contexts, :position)
			ON CONFLICT(word) DO UPDATE SET
				definition = excluded.definition,
				difficulty = excluded.difficulty,
				week_introduced = excluded.week_introduced,
				related_words = excluded.related_words,
				contexts = excluded.contexts`, row)
		if err != nil {
			return fmt.Errorf("upsert word %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vocabulary import: %w", err)
	}
	return nil
}

// Entries returns the static vocabulary in import order, without progress.
func (r *VocabularyRepo) Entries(ctx context.Context) ([]vocab.Entry, error) {
	var rows []vocabRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM vocabulary ORDER BY position`); err != nil {
		return nil, fmt.Errorf("query vocabulary: %w", err)
	}
	out := make([]vocab.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEntry()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Progress returns the learner's stored progress for every word.
func (r *VocabularyRepo) Progress(ctx context.Context) ([]vocab.Progress, error) {
	var rows []progressRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM vocabulary_progress`); err != nil {
		return nil, fmt.Errorf("query vocabulary progress: %w", err)
	}
	return lo.Map(rows, func(row progressRow, _ int) vocab.Progress { return row.toProgress() }), nil
}

// SaveProgress inserts or replaces the learner's progress on one word.
func (r *VocabularyRepo) SaveProgress(ctx context.Context, p vocab.Progress) error {
	row := progressRow{
		Word:         p.Word,
		MasteryLevel: p.MasteryLevel,
		ErrorCount:   p.ErrorCount,
		SuccessRate:  p.SuccessRate,
	}
	if !p.LastEncountered.IsZero() {
		row.LastEncounteredMs = p.LastEncountered.UnixMilli()
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO vocabulary_progress (word, mastery_level, last_encountered_ms, error_count, success_rate)
		VALUES (:word, :mastery_level, :last_encountered_ms, :error_count, :success_rate)
		ON CONFLICT(word) DO UPDATE SET
			mastery_level = excluded.mastery_level,
			last_encountered_ms = excluded.last_encountered_ms,
			error_count = excluded.error_count,
			success_rate = excluded.success_rate`, row)
	if err != nil {
		return fmt.Errorf("save progress for %q: %w", p.Word, err)
	}
	return nil
}

// AllVocabulary returns the static vocabulary merged with progress.
func (r *VocabularyRepo) AllVocabulary(ctx context.Context) ([]vocab.Entry, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := r.Progress(ctx)
	if err != nil {
		return nil, err
	}
	return vocab.ApplyProgress(entries, progress), nil
}
