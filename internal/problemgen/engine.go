package problemgen

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/studyplan/qengine/internal/difficulty"
	"github.com/studyplan/qengine/internal/perf"
	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
	"github.com/studyplan/qengine/internal/vocab"
)

// Options configures a new Engine. Logs, Vocabulary and Templates are
// required; the rest have defaults.
type Options struct {
	Logs        LogSource
	Vocabulary  VocabularySource
	Templates   TemplateBank
	Performance PerformanceStore

	// Config defaults to DefaultConfig() when zero.
	Config *Config

	// Rand defaults to a clock-seeded source.
	Rand *rand.Rand

	// Logger defaults to a logger that discards everything.
	Logger logrus.FieldLogger
}

// Engine generates personalized question batches from the learner's
// history, the vocabulary pool and the template bank.
type Engine struct {
	logs  LogSource
	vocab VocabularySource
	perf  PerformanceStore

	templates []templates.Template
	cfg       Config
	rng       *rand.Rand
	log       logrus.FieldLogger

	selector Selector
	filler   *Filler
}

var _ Generator = (*Engine)(nil)

// New creates an Engine. The template bank is read once here.
func New(opts Options) *Engine {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if cfg.Labels == nil {
		cfg.Labels = skill.DefaultLabels()
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	var tmpls []templates.Template
	if opts.Templates != nil {
		tmpls = opts.Templates.LoadTemplates()
	}

	return &Engine{
		logs:      opts.Logs,
		vocab:     opts.Vocabulary,
		perf:      opts.Performance,
		templates: tmpls,
		cfg:       cfg,
		rng:       rng,
		log:       log.WithField("component", "problemgen"),
		selector:  Selector{Zone: cfg.LearningZone},
		filler:    NewFiller(rng, cfg),
	}
}

// inputs is everything one generation call reads from the collaborators.
type inputs struct {
	logs  []skill.AnswerLog
	pool  []vocab.Entry
	stats map[string]perf.TemplateStats
}

// fetch reads all collaborator data once. Failures are logged and leave
// the corresponding input empty.
func (e *Engine) fetch(ctx context.Context) inputs {
	in := inputs{stats: map[string]perf.TemplateStats{}}

	if e.logs != nil {
		logs, err := e.logs.RecentLogs(ctx)
		if err != nil {
			e.log.WithError(err).Warn("answer logs unavailable")
		} else {
			in.logs = logs
		}
	}
	in.pool = e.fetchVocabulary(ctx)
	if e.perf != nil {
		stats, err := e.perf.TemplateStats(ctx)
		if err != nil {
			e.log.WithError(err).Warn("template stats unavailable")
		} else if stats != nil {
			in.stats = stats
		}
	}
	return in
}

func (e *Engine) fetchVocabulary(ctx context.Context) []vocab.Entry {
	if e.vocab == nil {
		return nil
	}
	pool, err := e.vocab.AllVocabulary(ctx)
	if err != nil {
		e.log.WithError(err).Warn("vocabulary unavailable")
		return nil
	}
	return pool
}

// Generate returns up to count questions. About WeakShare of the batch
// targets weak categories along a progression from the learner's level;
// the rest is a general sweep across all categories.
func (e *Engine) Generate(ctx context.Context, count, week int) []*Question {
	if count <= 0 {
		return []*Question{}
	}
	in := e.fetch(ctx)
	recent := skill.Recent(in.logs, e.cfg.RecentWindow)

	var out []*Question
	weak := WeakCategories(in.logs, e.cfg.WeakThreshold, e.cfg.Labels)
	if len(weak) > 0 {
		weakTarget := max(1, int(math.Round(float64(count)*e.cfg.WeakShare)))
		perCategory := max(1, int(math.Round(float64(weakTarget)/float64(len(weak)))))
		for _, c := range weak {
			level := difficulty.EstimateLevel(c, recent, e.cfg.Labels)
			out = append(out, e.produce(c, difficulty.BuildProgression(level, perCategory), week, in)...)
		}
	}

	if need := count - len(out); need > 0 {
		mix := skill.AllCategories()
		shuffle(e.rng, mix)
		for i, d := range difficulty.BuildProgression(e.cfg.GeneralStartDifficulty, need) {
			if q, ok := e.one(mix[i%len(mix)], d, week, in); ok {
				out = append(out, q)
			}
		}
	}

	e.log.WithFields(logrus.Fields{
		"requested": count,
		"weak":      weak,
		"produced":  len(out),
	}).Debug("generated question batch")
	return e.finish(out, count)
}

// GenerateForCategory returns up to count questions in category c along a
// progression from the learner's level in c.
func (e *Engine) GenerateForCategory(ctx context.Context, c skill.Category, count, week int) []*Question {
	if count <= 0 {
		return []*Question{}
	}
	in := e.fetch(ctx)
	level := difficulty.EstimateLevel(c, skill.Recent(in.logs, e.cfg.RecentWindow), e.cfg.Labels)
	return e.finish(e.produce(c, difficulty.BuildProgression(level, count), week, in), count)
}

// WeakAreaQuestions returns a short drill for category c, ignoring weeks.
func (e *Engine) WeakAreaQuestions(ctx context.Context, c skill.Category) []*Question {
	return e.GenerateForCategory(ctx, c, e.cfg.WeakAreaDrillSize, AnyWeek)
}

// CreateVocabularyQuestions builds one definition drill per word, skipping
// words that are unknown or lack enough distinct definitions nearby.
func (e *Engine) CreateVocabularyQuestions(ctx context.Context, words []string) []*Question {
	pool := e.fetchVocabulary(ctx)
	out := []*Question{}
	for _, item := range vocab.FindByWords(pool, words) {
		q, ok := e.filler.Drill(item, pool)
		if !ok || !e.valid(q) {
			e.log.WithField("word", item.Word).Debug("skipped vocabulary drill")
			continue
		}
		out = append(out, q)
	}
	return out
}

// RecordOutcome reports the learner's answer to q to the performance
// store. Questions without a source template are not tracked.
func (e *Engine) RecordOutcome(ctx context.Context, q *Question, correct bool, responseTime time.Duration) error {
	if e.perf == nil || q == nil || q.SourceTemplateID == "" {
		return nil
	}
	if err := e.perf.RecordOutcome(ctx, q.SourceTemplateID, correct, int(responseTime.Milliseconds())); err != nil {
		return fmt.Errorf("record outcome for %s: %w", q.SourceTemplateID, err)
	}
	return nil
}

// produce selects and fills one question per difficulty step.
func (e *Engine) produce(c skill.Category, steps []int, week int, in inputs) []*Question {
	var out []*Question
	for _, d := range steps {
		if q, ok := e.one(c, d, week, in); ok {
			out = append(out, q)
		}
	}
	return out
}

func (e *Engine) one(c skill.Category, d, week int, in inputs) (*Question, bool) {
	t, ok := e.selector.Select(c, d, week, e.templates, in.stats)
	if !ok {
		return nil, false
	}
	q, ok := e.filler.Fill(t, in.pool)
	if !ok {
		e.log.WithField("template_id", t.ID).Debug("template produced no usable question")
		return nil, false
	}
	if !e.valid(q) {
		return nil, false
	}
	return q, true
}

func (e *Engine) valid(q *Question) bool {
	if verr := runValidators(e.cfg.Validators, q); verr != nil {
		e.log.WithFields(logrus.Fields{
			"question_id": q.ID,
			"validator":   verr.Validator,
		}).Warn(verr.Message)
		return false
	}
	return true
}

// finish removes duplicate ids, shuffles and truncates to count.
func (e *Engine) finish(qs []*Question, count int) []*Question {
	out := lo.UniqBy(qs, func(q *Question) string { return q.ID })
	shuffle(e.rng, out)
	if len(out) > count {
		out = out[:count]
	}
	return out
}
