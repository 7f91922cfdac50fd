package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/studyplan/qengine/internal/difficulty"
	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
	"github.com/studyplan/qengine/internal/vocab"
)

const (
	blank      = "____"
	shortBlank = "__"

	// drillPrompt is the prompt of a definition drill.
	drillPrompt = "The word '%s' most nearly means _____."
)

// Filler turns templates and vocabulary entries into concrete questions.
type Filler struct {
	rng *rand.Rand
	cfg Config
}

// NewFiller creates a filler drawing randomness from rng.
func NewFiller(rng *rand.Rand, cfg Config) *Filler {
	return &Filler{rng: rng, cfg: cfg}
}

// Fill instantiates t. Vocabulary templates draw their answer and
// distractors from pool. ok is false when the template cannot yield at
// least two usable options.
func (f *Filler) Fill(t templates.Template, pool []vocab.Entry) (*Question, bool) {
	var q *Question
	switch t.Category {
	case skill.CategoryVocab:
		q = f.fillVocab(t, pool)
	default:
		q = f.fillComprehension(t)
	}
	if q == nil || len(q.Options) < 2 {
		return nil, false
	}
	return q, true
}

// fillComprehension serves the template's own patterns as options, used
// for grammar, reading and listening templates.
func (f *Filler) fillComprehension(t templates.Template) *Question {
	correct, ok := t.CorrectAnswer()
	if !ok {
		return nil
	}
	others := lo.Filter(lo.Uniq(t.DistractorPatterns), func(p string, _ int) bool { return p != correct })
	options := f.assemble(correct, others)

	return &Question{
		ID:               newQuestionID(t.ID),
		Category:         t.Category,
		Prompt:           t.Pattern,
		Options:          options,
		CorrectIndex:     correctIndex(options, correct),
		Difficulty:       difficulty.Clamp(t.Difficulty),
		Explanation:      t.Explanation,
		GrammarFocus:     t.GrammarFocus,
		VocabularyFocus:  t.VocabularyFocus,
		SourceTemplateID: t.ID,
	}
}

// fillVocab resolves a target word for the template and surrounds it with
// suggested distractors, padding from the template's own patterns.
func (f *Filler) fillVocab(t templates.Template, pool []vocab.Entry) *Question {
	target, found := f.resolveTarget(t, pool)

	var correct string
	var distractors []string
	if found {
		correct = target.Word
		distractors = vocab.Suggest(target, pool, f.cfg.VocabDistractors)
	} else {
		ans, ok := t.CorrectAnswer()
		if !ok {
			return nil
		}
		correct = ans
	}
	if correct == "" {
		return nil
	}

	padding := lo.Filter(t.DistractorPatterns, func(p string, _ int) bool { return p != correct })
	options := f.assemble(correct, append(distractors, padding...))

	prompt := t.Pattern
	if !strings.Contains(prompt, blank) {
		prompt = strings.ReplaceAll(prompt, shortBlank, blank)
	}

	explanation := t.Explanation
	focus := t.VocabularyFocus
	if found {
		if strings.TrimSpace(explanation) == "" {
			explanation = target.Definition
		}
		focus = []string{target.Word}
	}

	return &Question{
		ID:               newQuestionID(t.ID),
		Category:         t.Category,
		Prompt:           prompt,
		Options:          options,
		CorrectIndex:     correctIndex(options, correct),
		Difficulty:       difficulty.Clamp(t.Difficulty),
		Explanation:      explanation,
		GrammarFocus:     t.GrammarFocus,
		VocabularyFocus:  focus,
		SourceTemplateID: t.ID,
	}
}

// resolveTarget finds the vocabulary entry a template is about: its focus
// word when it names one, otherwise a random mid-difficulty word.
func (f *Filler) resolveTarget(t templates.Template, pool []vocab.Entry) (vocab.Entry, bool) {
	if len(t.VocabularyFocus) > 0 {
		focus := t.VocabularyFocus[0]
		return lo.Find(pool, func(e vocab.Entry) bool { return strings.EqualFold(e.Word, focus) })
	}
	mid := lo.Filter(pool, func(e vocab.Entry, _ int) bool { return e.Difficulty >= 2 && e.Difficulty <= 4 })
	if len(mid) == 0 {
		return vocab.Entry{}, false
	}
	return mid[f.rng.IntN(len(mid))], true
}

// Drill builds a definition question for item: the correct option is the
// item's definition, distractors are definitions of suggested words. ok is
// false when fewer than two distinct definitions are available.
func (f *Filler) Drill(item vocab.Entry, pool []vocab.Entry) (*Question, bool) {
	correct := item.Definition
	if correct == "" {
		return nil, false
	}
	words := vocab.Suggest(item, pool, f.cfg.DrillDistractorWords)
	defs := lo.Map(vocab.FindByWords(pool, words), func(e vocab.Entry, _ int) string { return e.Definition })
	defs = lo.Filter(defs, func(d string, _ int) bool { return d != "" && d != correct })

	options := f.assemble(correct, defs)
	if len(options) < 2 {
		return nil, false
	}

	return &Question{
		ID:              newQuestionID("vocab-" + item.Word),
		Category:        skill.CategoryVocab,
		Prompt:          fmt.Sprintf(drillPrompt, item.Word),
		Options:         options,
		CorrectIndex:    correctIndex(options, correct),
		Difficulty:      difficulty.Clamp(item.Difficulty),
		Explanation:     item.Definition,
		VocabularyFocus: []string{item.Word},
	}, true
}

// assemble puts correct first, appends distinct others up to MaxOptions and
// shuffles the result.
func (f *Filler) assemble(correct string, others []string) []string {
	options := lo.Uniq(append([]string{correct}, others...))
	options = lo.Filter(options, func(o string, _ int) bool { return o != "" })
	if max := f.maxOptions(); len(options) > max {
		options = options[:max]
	}
	shuffle(f.rng, options)
	return options
}

func (f *Filler) maxOptions() int {
	if f.cfg.MaxOptions <= 1 {
		return 4
	}
	return f.cfg.MaxOptions
}

// correctIndex locates correct in options, or 0 if it is missing.
func correctIndex(options []string, correct string) int {
	if i := lo.IndexOf(options, correct); i >= 0 {
		return i
	}
	return 0
}

func newQuestionID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
