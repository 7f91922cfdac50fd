package vocab

import (
	"strings"
	"time"
)

// Entry is a vocabulary item plus the learner's progress overlay.
type Entry struct {
	Word           string   `json:"word" yaml:"word"`
	Definition     string   `json:"definition" yaml:"definition"`
	Difficulty     int      `json:"difficulty" yaml:"difficulty"`
	WeekIntroduced int      `json:"week_introduced" yaml:"week_introduced"`
	RelatedWords   []string `json:"related_words,omitempty" yaml:"related_words"`
	Contexts       []string `json:"contexts,omitempty" yaml:"contexts"`

	// Per-user overlay, merged in at read time.
	MasteryLevel    float64   `json:"mastery_level" yaml:"-"`
	LastEncountered time.Time `json:"last_encountered" yaml:"-"`
	ErrorCount      int       `json:"error_count" yaml:"-"`
	SuccessRate     float64   `json:"success_rate" yaml:"-"`
}

// Progress is a learner's stored progress on one word.
type Progress struct {
	Word            string    `db:"word"`
	MasteryLevel    float64   `db:"mastery_level"`
	LastEncountered time.Time `db:"last_encountered"`
	ErrorCount      int       `db:"error_count"`
	SuccessRate     float64   `db:"success_rate"`
}

// ApplyProgress returns copies of entries with the matching progress merged
// in. Words are matched case-insensitively. The input slice is not modified.
func ApplyProgress(entries []Entry, progress []Progress) []Entry {
	byWord := make(map[string]Progress, len(progress))
	for _, p := range progress {
		byWord[strings.ToLower(p.Word)] = p
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		if p, ok := byWord[strings.ToLower(e.Word)]; ok {
			e.MasteryLevel = p.MasteryLevel
			e.LastEncountered = p.LastEncountered
			e.ErrorCount = p.ErrorCount
			e.SuccessRate = p.SuccessRate
		}
		// Slices are shared with the static entry, so give the view its own.
		e.RelatedWords = append([]string(nil), e.RelatedWords...)
		e.Contexts = append([]string(nil), e.Contexts...)
		out[i] = e
	}
	return out
}

// ProgressOf extracts the overlay fields of e.
func ProgressOf(e Entry) Progress {
	return Progress{
		Word:            e.Word,
		MasteryLevel:    e.MasteryLevel,
		LastEncountered: e.LastEncountered,
		ErrorCount:      e.ErrorCount,
		SuccessRate:     e.SuccessRate,
	}
}

// FindByWords returns the entries whose word appears in words, in the order
// of words. Unknown words are skipped.
func FindByWords(entries []Entry, words []string) []Entry {
	byWord := make(map[string]Entry, len(entries))
	for _, e := range entries {
		key := strings.ToLower(e.Word)
		if _, dup := byWord[key]; !dup {
			byWord[key] = e
		}
	}
	var out []Entry
	for _, w := range words {
		if e, ok := byWord[strings.ToLower(w)]; ok {
			out = append(out, e)
		}
	}
	return out
}
