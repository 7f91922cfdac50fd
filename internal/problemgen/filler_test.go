package problemgen

import (
	"slices"
	"strings"
	"testing"

	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
	"github.com/studyplan/qengine/internal/vocab"
)

func testFiller(seed uint64) *Filler {
	return NewFiller(NewRand(seed), DefaultConfig())
}

func beTemplate() templates.Template {
	return templates.Template{
		ID:                 "g-be-2",
		Category:           skill.CategoryGrammar,
		Difficulty:         2,
		Pattern:            "They ____ happy.",
		CorrectAnswerSlot:  1,
		DistractorPatterns: []string{"is", "are", "was", "were"},
		GrammarFocus:       "to be",
	}
}

func vocabPool() []vocab.Entry {
	return []vocab.Entry{
		{Word: "abundant", Definition: "existing in large quantities", Difficulty: 3,
			RelatedWords: []string{"plentiful", "ample"}},
		{Word: "plentiful", Definition: "more than enough", Difficulty: 2, RelatedWords: []string{"ample"}},
		{Word: "scarce", Definition: "insufficient for the demand", Difficulty: 4},
		{Word: "brisk", Definition: "active and energetic", Difficulty: 3},
		{Word: "candid", Definition: "truthful and straightforward", Difficulty: 3},
	}
}

func assertBounds(t *testing.T, q *Question) {
	t.Helper()
	if q.Difficulty < 1 || q.Difficulty > 5 {
		t.Errorf("difficulty %d out of range", q.Difficulty)
	}
	if len(q.Options) < 2 || len(q.Options) > 4 {
		t.Errorf("got %d options: %v", len(q.Options), q.Options)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		t.Errorf("correct index %d out of range for %v", q.CorrectIndex, q.Options)
	}
	seen := map[string]bool{}
	for _, o := range q.Options {
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
}

func TestFill_EndToEndGrammar(t *testing.T) {
	bank := []templates.Template{beTemplate()}
	sel, ok := Selector{Zone: 0.6}.Select(skill.CategoryGrammar, 2, AnyWeek, bank, nil)
	if !ok || sel.ID != "g-be-2" {
		t.Fatalf("Select = %q, %v", sel.ID, ok)
	}

	for seed := uint64(1); seed <= 20; seed++ {
		q, ok := testFiller(seed).Fill(sel, nil)
		if !ok {
			t.Fatal("expected a question")
		}
		assertBounds(t, q)
		got := slices.Clone(q.Options)
		slices.Sort(got)
		if !slices.Equal(got, []string{"are", "is", "was", "were"}) {
			t.Fatalf("options %v are not a permutation of the patterns", q.Options)
		}
		if q.Options[q.CorrectIndex] != "are" {
			t.Fatalf("correct option = %q, want are", q.Options[q.CorrectIndex])
		}
		if q.Prompt != "They ____ happy." || q.SourceTemplateID != "g-be-2" || q.GrammarFocus != "to be" {
			t.Errorf("unexpected question fields: %+v", q)
		}
		if !strings.HasPrefix(q.ID, "g-be-2-") {
			t.Errorf("id %q should carry the template id", q.ID)
		}
	}
}

func TestFill_SlotOutOfRangeUsesFirstPattern(t *testing.T) {
	tm := beTemplate()
	tm.CorrectAnswerSlot = 7
	q, ok := testFiller(3).Fill(tm, nil)
	if !ok {
		t.Fatal("expected a question")
	}
	if q.CorrectAnswer() != "is" {
		t.Errorf("correct = %q, want first pattern", q.CorrectAnswer())
	}
}

func TestFill_EmptyPatterns(t *testing.T) {
	tm := beTemplate()
	tm.DistractorPatterns = nil
	if _, ok := testFiller(1).Fill(tm, nil); ok {
		t.Error("template with no patterns must not produce a question")
	}
	tm.DistractorPatterns = []string{"only"}
	if _, ok := testFiller(1).Fill(tm, nil); ok {
		t.Error("single-option question must be dropped")
	}
}

func TestFill_CapsOptionsKeepingCorrect(t *testing.T) {
	tm := beTemplate()
	tm.Category = skill.CategoryReading
	tm.DistractorPatterns = []string{"a", "b", "c", "d", "e", "f"}
	tm.CorrectAnswerSlot = 5
	q, ok := testFiller(9).Fill(tm, nil)
	if !ok {
		t.Fatal("expected a question")
	}
	assertBounds(t, q)
	if len(q.Options) != 4 || q.CorrectAnswer() != "f" {
		t.Errorf("options %v, correct %q", q.Options, q.CorrectAnswer())
	}
}

func TestFill_VocabFocusWord(t *testing.T) {
	tm := templates.Template{
		ID:                 "v-abundant",
		Category:           skill.CategoryVocab,
		Difficulty:         3,
		Pattern:            "The region has __ natural resources.",
		DistractorPatterns: []string{"abundant", "rare"},
		VocabularyFocus:    []string{"ABUNDANT"},
	}
	q, ok := testFiller(5).Fill(tm, vocabPool())
	if !ok {
		t.Fatal("expected a question")
	}
	assertBounds(t, q)
	if q.CorrectAnswer() != "abundant" {
		t.Errorf("correct = %q", q.CorrectAnswer())
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %v, want 4", q.Options)
	}
	if q.Prompt != "The region has ____ natural resources." {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.Explanation != "existing in large quantities" {
		t.Errorf("explanation should default to the definition, got %q", q.Explanation)
	}
}

func TestFill_VocabRandomMidDifficultyWord(t *testing.T) {
	tm := templates.Template{
		ID:         "v-any",
		Category:   skill.CategoryVocab,
		Difficulty: 3,
		Pattern:    "Choose the best word: ____",
	}
	// scarce has neither related nor same-difficulty neighbours.
	pool := slices.DeleteFunc(vocabPool(), func(e vocab.Entry) bool { return e.Word == "scarce" })
	q, ok := testFiller(11).Fill(tm, pool)
	if !ok {
		t.Fatal("expected a question")
	}
	assertBounds(t, q)
	if len(q.VocabularyFocus) != 1 || q.VocabularyFocus[0] != q.CorrectAnswer() {
		t.Errorf("focus %v should be the chosen word %q", q.VocabularyFocus, q.CorrectAnswer())
	}
}

func TestFill_VocabWithoutBacking(t *testing.T) {
	tm := templates.Template{
		ID:                 "v-bare",
		Category:           skill.CategoryVocab,
		Difficulty:         2,
		Pattern:            "Pick: __",
		CorrectAnswerSlot:  0,
		DistractorPatterns: []string{"swift", "slow", "late"},
		VocabularyFocus:    []string{"swift"},
	}
	q, ok := testFiller(2).Fill(tm, vocabPool())
	if !ok {
		t.Fatal("expected a question")
	}
	if q.CorrectAnswer() != "swift" || len(q.Options) != 3 {
		t.Errorf("options %v correct %q", q.Options, q.CorrectAnswer())
	}

	tm.DistractorPatterns = nil
	if _, ok := testFiller(2).Fill(tm, nil); ok {
		t.Error("vocabulary template with no backing and no patterns must be dropped")
	}
}

func TestDrill(t *testing.T) {
	pool := vocabPool()
	q, ok := testFiller(4).Drill(pool[0], pool)
	if !ok {
		t.Fatal("expected a drill")
	}
	assertBounds(t, q)
	if q.Prompt != "The word 'abundant' most nearly means _____." {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.CorrectAnswer() != "existing in large quantities" {
		t.Errorf("correct = %q", q.CorrectAnswer())
	}
	if q.SourceTemplateID != "" || q.Category != skill.CategoryVocab {
		t.Errorf("unexpected drill fields: %+v", q)
	}
	if !strings.HasPrefix(q.ID, "vocab-abundant-") {
		t.Errorf("id = %q", q.ID)
	}
}

func TestDrill_NotEnoughDefinitions(t *testing.T) {
	lonely := vocab.Entry{Word: "zeal", Definition: "great energy", Difficulty: 1}
	if _, ok := testFiller(1).Drill(lonely, []vocab.Entry{lonely}); ok {
		t.Error("drill with a single definition must be dropped")
	}
}

func TestFill_SameSeedSameQuestion(t *testing.T) {
	a, _ := testFiller(42).Fill(beTemplate(), nil)
	b, _ := testFiller(42).Fill(beTemplate(), nil)
	if !slices.Equal(a.Options, b.Options) {
		t.Errorf("seeded fills differ: %v vs %v", a.Options, b.Options)
	}
}
