package templates

import "fmt"

// Warning is a data-quality problem found in a loaded template. Warnings do
// not stop a template from being served.
type Warning struct {
	TemplateID string
	Message    string
}

func (w Warning) String() string {
	return fmt.Sprintf("template %q: %s", w.TemplateID, w.Message)
}

// Validate reports data-quality problems in a template set. An out-of-range
// correct_answer_slot is served with the first pattern marked correct, which
// is almost certainly wrong, so it is surfaced here at load time.
func Validate(tmpls []Template) []Warning {
	var warns []Warning
	seen := make(map[string]bool, len(tmpls))

	for _, t := range tmpls {
		if seen[t.ID] {
			warns = append(warns, Warning{t.ID, "duplicate template id"})
		}
		seen[t.ID] = true

		if len(t.DistractorPatterns) == 0 {
			warns = append(warns, Warning{t.ID, "no distractor patterns; template can never be filled"})
		} else if !t.SlotInRange() {
			warns = append(warns, Warning{t.ID, fmt.Sprintf(
				"correct_answer_slot %d out of range for %d patterns; first pattern will be treated as correct",
				t.CorrectAnswerSlot, len(t.DistractorPatterns))})
		}
		if len(t.DistractorPatterns) == 1 {
			warns = append(warns, Warning{t.ID, "only one pattern; needs at least two options"})
		}
		if t.EndWeek != 0 && t.StartWeek > t.EndWeek {
			warns = append(warns, Warning{t.ID, fmt.Sprintf("start_week %d after end_week %d", t.StartWeek, t.EndWeek)})
		}
		if t.Difficulty < 1 || t.Difficulty > 5 {
			warns = append(warns, Warning{t.ID, fmt.Sprintf("difficulty %d outside 1-5", t.Difficulty)})
		}
	}
	return warns
}
