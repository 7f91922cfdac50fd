package difficulty

import (
	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
)

const (
	// MinLevel and MaxLevel bound every difficulty and skill level.
	MinLevel = 1
	MaxLevel = 5

	// DefaultLevel is assumed when there is no history for a category.
	DefaultLevel = 3

	// midLevel is where progressions stop climbing every step.
	midLevel = 3
)

// levelThresholds maps minimum accuracy to skill level, highest first.
var levelThresholds = []struct {
	minAccuracy float64
	level       int
}{
	{0.90, 5},
	{0.80, 4},
	{0.70, 3},
	{0.60, 2},
}

// EstimateLevel returns the learner's level (1-5) in category c from the
// logs whose label matches c. With no matching logs it returns DefaultLevel.
func EstimateLevel(c skill.Category, logs []skill.AnswerLog, labels skill.LabelMap) int {
	var total, correct int
	for _, l := range logs {
		if !labels.Matches(c, l.Category) {
			continue
		}
		total++
		if l.Correct {
			correct++
		}
	}
	if total == 0 {
		return DefaultLevel
	}
	return LevelForAccuracy(float64(correct) / float64(total))
}

// LevelForAccuracy maps an accuracy in [0,1] to a level.
func LevelForAccuracy(acc float64) int {
	for _, th := range levelThresholds {
		if acc >= th.minAccuracy {
			return th.level
		}
	}
	return MinLevel
}

// BuildProgression returns count difficulties starting at start (clamped to
// 1-5). Below the mid band the sequence climbs every step; from there it
// climbs on odd steps only, and it never exceeds MaxLevel.
//
//	BuildProgression(1, 5) == [1 2 3 3 4]
func BuildProgression(start, count int) []int {
	if count <= 0 {
		return []int{}
	}
	cur := Clamp(start)
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, cur)
		if cur < MaxLevel && (i%2 == 1 || cur < midLevel) {
			cur++
		}
	}
	return out
}

// AdjustToUserLevel keeps a template within one level of userLevel. A
// template already in the band is returned unchanged; otherwise a copy with
// the difficulty clamped into the band is returned.
func AdjustToUserLevel(t templates.Template, userLevel int) templates.Template {
	lo := Clamp(userLevel - 1)
	hi := Clamp(userLevel + 1)
	if t.Difficulty >= lo && t.Difficulty <= hi {
		return t
	}
	adjusted := t
	switch {
	case t.Difficulty < lo:
		adjusted.Difficulty = lo
	default:
		adjusted.Difficulty = hi
	}
	return adjusted
}

// Clamp bounds a level to [MinLevel, MaxLevel].
func Clamp(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
