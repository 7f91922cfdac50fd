package skill

import (
	"fmt"
	"strings"
)

// Category is a practice skill area.
type Category string

const (
	CategoryGrammar   Category = "GRAMMAR"
	CategoryReading   Category = "READING"
	CategoryListening Category = "LISTENING"
	CategoryVocab     Category = "VOCAB"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryGrammar,
		CategoryReading,
		CategoryListening,
		CategoryVocab,
	}
}

// DisplayName returns a human-readable name for a category.
func DisplayName(c Category) string {
	switch c {
	case CategoryGrammar:
		return "Grammar"
	case CategoryReading:
		return "Reading"
	case CategoryListening:
		return "Listening"
	case CategoryVocab:
		return "Vocabulary"
	default:
		return string(c)
	}
}

// ParseCategory accepts a category name in any case, e.g. "grammar" or "VOCAB".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AllCategories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// LabelMap maps each category to the lowercase label tokens that identify it
// in free-text answer log labels.
type LabelMap map[Category][]string

// DefaultLabels returns the stock label map.
func DefaultLabels() LabelMap {
	return LabelMap{
		CategoryGrammar:   {"grammar"},
		CategoryReading:   {"reading"},
		CategoryListening: {"listening"},
		CategoryVocab:     {"vocab", "vocabulary", "kelime"},
	}
}

// Resolve maps a free-text label to a category by substring containment.
// Categories are tried in AllCategories order and tokens in map order, so the
// first hit wins.
func (m LabelMap) Resolve(label string) (Category, bool) {
	l := strings.ToLower(label)
	for _, c := range AllCategories() {
		for _, tok := range m[c] {
			if tok != "" && strings.Contains(l, strings.ToLower(tok)) {
				return c, true
			}
		}
	}
	return "", false
}

// Matches reports whether label belongs to category c. Containment is
// checked in either direction, so "Grammar Drill" and "gram" both match
// GRAMMAR.
func (m LabelMap) Matches(c Category, label string) bool {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return false
	}
	for _, tok := range m[c] {
		t := strings.ToLower(tok)
		if t == "" {
			continue
		}
		if strings.Contains(l, t) || strings.Contains(t, l) {
			return true
		}
	}
	return false
}
