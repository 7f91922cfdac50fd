package templates

import (
	"strings"
	"testing"
)

func TestAppliesToWeek(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		week       int
		want       bool
	}{
		{"inside", 2, 5, 3, true},
		{"lower bound", 2, 5, 2, true},
		{"upper bound", 2, 5, 5, true},
		{"before", 2, 5, 1, false},
		{"after", 2, 5, 6, false},
		{"open ended", 3, 0, 30, true},
		{"unbounded", 0, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := Template{StartWeek: tt.start, EndWeek: tt.end}
			if got := tmpl.AppliesToWeek(tt.week); got != tt.want {
				t.Errorf("AppliesToWeek(%d) = %v, want %v", tt.week, got, tt.want)
			}
		})
	}
}

func TestCorrectAnswer(t *testing.T) {
	tmpl := Template{CorrectAnswerSlot: 1, DistractorPatterns: []string{"is", "are"}}
	if got, ok := tmpl.CorrectAnswer(); !ok || got != "are" {
		t.Errorf("CorrectAnswer = %q,%v want are,true", got, ok)
	}

	tmpl.CorrectAnswerSlot = 5
	if got, ok := tmpl.CorrectAnswer(); !ok || got != "is" {
		t.Errorf("out-of-range slot: CorrectAnswer = %q,%v want is,true", got, ok)
	}

	tmpl.DistractorPatterns = nil
	if _, ok := tmpl.CorrectAnswer(); ok {
		t.Error("expected ok=false with no patterns")
	}
}

func TestValidate(t *testing.T) {
	tmpls := []Template{
		{ID: "ok", Difficulty: 2, CorrectAnswerSlot: 0, DistractorPatterns: []string{"a", "b"}},
		{ID: "slot", Difficulty: 2, CorrectAnswerSlot: 4, DistractorPatterns: []string{"a", "b"}},
		{ID: "empty", Difficulty: 2},
		{ID: "weeks", Difficulty: 2, DistractorPatterns: []string{"a", "b"}, StartWeek: 6, EndWeek: 2},
		{ID: "ok", Difficulty: 2, DistractorPatterns: []string{"a", "b"}},
	}
	warns := Validate(tmpls)

	byID := make(map[string][]string)
	for _, w := range warns {
		byID[w.TemplateID] = append(byID[w.TemplateID], w.Message)
	}
	if len(byID["slot"]) != 1 || !strings.Contains(byID["slot"][0], "out of range") {
		t.Errorf("slot warnings = %v", byID["slot"])
	}
	if len(byID["empty"]) != 1 {
		t.Errorf("empty warnings = %v", byID["empty"])
	}
	if len(byID["weeks"]) != 1 {
		t.Errorf("weeks warnings = %v", byID["weeks"])
	}
	if len(byID["ok"]) != 1 || !strings.Contains(byID["ok"][0], "duplicate") {
		t.Errorf("ok warnings = %v", byID["ok"])
	}
}
