package difficulty

import (
	"reflect"
	"testing"

	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
)

func logsWithAccuracy(label string, correct, total int) []skill.AnswerLog {
	logs := make([]skill.AnswerLog, 0, total)
	for i := 0; i < total; i++ {
		logs = append(logs, skill.AnswerLog{Category: label, Correct: i < correct})
	}
	return logs
}

func TestEstimateLevel(t *testing.T) {
	labels := skill.DefaultLabels()
	tests := []struct {
		name string
		logs []skill.AnswerLog
		want int
	}{
		{"no logs", nil, 3},
		{"0.85 accuracy", logsWithAccuracy("Grammar", 17, 20), 4},
		{"perfect", logsWithAccuracy("grammar", 10, 10), 5},
		{"exactly 0.9", logsWithAccuracy("grammar", 9, 10), 5},
		{"exactly 0.7", logsWithAccuracy("grammar", 7, 10), 3},
		{"0.6", logsWithAccuracy("grammar", 6, 10), 2},
		{"0.5", logsWithAccuracy("grammar", 5, 10), 1},
		{"only other categories", logsWithAccuracy("reading", 0, 10), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateLevel(skill.CategoryGrammar, tt.logs, labels)
			if got != tt.want {
				t.Errorf("EstimateLevel = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEstimateLevel_IgnoresOtherCategories(t *testing.T) {
	logs := append(logsWithAccuracy("grammar", 10, 10), logsWithAccuracy("listening", 0, 10)...)
	if got := EstimateLevel(skill.CategoryGrammar, logs, skill.DefaultLabels()); got != 5 {
		t.Errorf("EstimateLevel = %d, want 5", got)
	}
	if got := EstimateLevel(skill.CategoryListening, logs, skill.DefaultLabels()); got != 1 {
		t.Errorf("EstimateLevel(listening) = %d, want 1", got)
	}
}

func TestBuildProgression(t *testing.T) {
	tests := []struct {
		start, count int
		want         []int
	}{
		{1, 5, []int{1, 2, 3, 3, 4}},
		{5, 3, []int{5, 5, 5}},
		{3, 0, []int{}},
		{1, -2, []int{}},
		{3, 6, []int{3, 3, 4, 4, 5, 5}},
		{0, 3, []int{1, 2, 3}},
		{9, 2, []int{5, 5}},
		{2, 1, []int{2}},
	}
	for _, tt := range tests {
		got := BuildProgression(tt.start, tt.count)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BuildProgression(%d, %d) = %v, want %v", tt.start, tt.count, got, tt.want)
		}
	}
}

func TestBuildProgression_Bounded(t *testing.T) {
	for start := -1; start <= 7; start++ {
		for _, d := range BuildProgression(start, 20) {
			if d < MinLevel || d > MaxLevel {
				t.Fatalf("start %d produced out-of-range difficulty %d", start, d)
			}
		}
	}
}

func TestAdjustToUserLevel(t *testing.T) {
	tests := []struct {
		name       string
		difficulty int
		level      int
		want       int
	}{
		{"in band", 3, 3, 3},
		{"edge of band", 4, 3, 4},
		{"too hard", 5, 2, 3},
		{"too easy", 1, 4, 3},
		{"level 1 band", 4, 1, 2},
		{"level 5 band", 2, 5, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := templates.Template{ID: "t", Difficulty: tt.difficulty}
			got := AdjustToUserLevel(orig, tt.level)
			if got.Difficulty != tt.want {
				t.Errorf("Difficulty = %d, want %d", got.Difficulty, tt.want)
			}
			if orig.Difficulty != tt.difficulty {
				t.Error("original template was mutated")
			}
		})
	}
}
