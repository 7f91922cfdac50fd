package skill

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"grammar", CategoryGrammar, false},
		{" VOCAB ", CategoryVocab, false},
		{"Listening", CategoryListening, false},
		{"math", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabelMap_Resolve(t *testing.T) {
	m := DefaultLabels()
	tests := []struct {
		label string
		want  Category
		ok    bool
	}{
		{"grammar", CategoryGrammar, true},
		{"Reading Practice", CategoryReading, true},
		{"kelime testi", CategoryVocab, true},
		{"Vocabulary", CategoryVocab, true},
		{"mock exam", "", false},
	}
	for _, tt := range tests {
		got, ok := m.Resolve(tt.label)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Resolve(%q) = %q,%v want %q,%v", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLabelMap_MatchesEitherDirection(t *testing.T) {
	m := DefaultLabels()
	if !m.Matches(CategoryGrammar, "Grammar Drill") {
		t.Error("expected label containing token to match")
	}
	if !m.Matches(CategoryGrammar, "gram") {
		t.Error("expected token containing label to match")
	}
	if m.Matches(CategoryGrammar, "") {
		t.Error("empty label must not match")
	}
	if m.Matches(CategoryReading, "listening") {
		t.Error("listening must not match reading")
	}
}

func TestLabelMap_Custom(t *testing.T) {
	m := LabelMap{CategoryGrammar: {"gramer"}}
	got, ok := m.Resolve("Gramer Quiz")
	if !ok || got != CategoryGrammar {
		t.Errorf("Resolve = %q,%v want GRAMMAR", got, ok)
	}
	if _, ok := m.Resolve("grammar"); ok {
		t.Error("custom map should not know the default token")
	}
}
