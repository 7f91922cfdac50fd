package templates

import "github.com/studyplan/qengine/internal/skill"

// Template is a parameterized question with a fixed correct-answer slot and
// a set of alternative fill-ins. Templates are immutable once loaded.
type Template struct {
	ID                 string         `json:"id"`
	Category           skill.Category `json:"category"`
	Difficulty         int            `json:"difficulty"`
	Pattern            string         `json:"pattern"`
	CorrectAnswerSlot  int            `json:"correct_answer_slot"`
	DistractorPatterns []string       `json:"distractor_patterns"`
	GrammarFocus       string         `json:"grammar_focus,omitempty"`
	VocabularyFocus    []string       `json:"vocabulary_focus,omitempty"`
	Explanation        string         `json:"explanation,omitempty"`

	// StartWeek and EndWeek bound the study weeks the template applies to.
	// Zero EndWeek means no upper bound.
	StartWeek int `json:"start_week,omitempty"`
	EndWeek   int `json:"end_week,omitempty"`
}

// AppliesToWeek reports whether week falls in the template's week range.
func (t Template) AppliesToWeek(week int) bool {
	if week < t.StartWeek {
		return false
	}
	return t.EndWeek == 0 || week <= t.EndWeek
}

// CorrectAnswer returns the pattern at CorrectAnswerSlot, falling back to
// the first pattern when the slot is out of range. ok is false only when
// there are no patterns at all.
func (t Template) CorrectAnswer() (answer string, ok bool) {
	if len(t.DistractorPatterns) == 0 {
		return "", false
	}
	if t.SlotInRange() {
		return t.DistractorPatterns[t.CorrectAnswerSlot], true
	}
	return t.DistractorPatterns[0], true
}

// SlotInRange reports whether CorrectAnswerSlot indexes DistractorPatterns.
func (t Template) SlotInRange() bool {
	return t.CorrectAnswerSlot >= 0 && t.CorrectAnswerSlot < len(t.DistractorPatterns)
}

// StaticBank serves a fixed set of templates.
type StaticBank []Template

// LoadTemplates returns the bank contents.
func (b StaticBank) LoadTemplates() []Template {
	return b
}
