package problemgen

import "github.com/studyplan/qengine/internal/skill"

// Question is a generated multiple-choice question ready for display.
// Questions are transient: each generation call produces fresh instances.
type Question struct {
	// ID is unique per instantiation, not per template.
	ID string `json:"id"`

	Category skill.Category `json:"category"`

	// Prompt is the question text, with "____" marking the blank when
	// the question has one.
	Prompt string `json:"prompt"`

	// Options holds 2-4 distinct answer choices.
	Options []string `json:"options"`

	// CorrectIndex indexes the correct entry in Options.
	CorrectIndex int `json:"correct_index"`

	// Difficulty is 1 (easiest) to 5 (hardest).
	Difficulty int `json:"difficulty"`

	Explanation     string   `json:"explanation,omitempty"`
	GrammarFocus    string   `json:"grammar_focus,omitempty"`
	VocabularyFocus []string `json:"vocabulary_focus,omitempty"`

	// SourceTemplateID is empty for vocabulary drills that are not backed
	// by a template.
	SourceTemplateID string `json:"source_template_id,omitempty"`
}

// CorrectAnswer returns the text of the correct option.
func (q *Question) CorrectAnswer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}
