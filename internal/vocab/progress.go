package vocab

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// ReviewDifficulty is how hard the learner found a review.
type ReviewDifficulty string

const (
	ReviewEasy   ReviewDifficulty = "easy"
	ReviewMedium ReviewDifficulty = "medium"
	ReviewHard   ReviewDifficulty = "hard"
)

const (
	// successRateWeight is how much one attempt moves the success rate.
	successRateWeight = 0.1

	// MasteredThreshold is the mastery level at which a word counts as mastered.
	MasteredThreshold = 0.8
)

// reviewIntervals are the spaced-repetition intervals indexed by mastery.
var reviewIntervals = []time.Duration{
	1 * 24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
	30 * 24 * time.Hour,
	60 * 24 * time.Hour,
	120 * 24 * time.Hour,
}

// UpdateProgress returns e with its overlay updated for one review at now.
func UpdateProgress(e Entry, correct bool, difficulty ReviewDifficulty, now time.Time) Entry {
	e.MasteryLevel = nextMastery(e.MasteryLevel, correct, difficulty)
	if !correct {
		e.ErrorCount++
	}
	if correct {
		e.SuccessRate += successRateWeight * (1 - e.SuccessRate)
	} else {
		e.SuccessRate *= 1 - successRateWeight
	}
	e.LastEncountered = now
	return e
}

func nextMastery(level float64, correct bool, difficulty ReviewDifficulty) float64 {
	var delta float64
	switch difficulty {
	case ReviewEasy:
		delta = lo.Ternary(correct, 0.15, -0.05)
	case ReviewHard:
		delta = lo.Ternary(correct, 0.05, -0.15)
	default:
		delta = lo.Ternary(correct, 0.10, -0.10)
	}
	// Gains shrink near full mastery.
	if correct && level > 0.7 {
		delta *= 1 - level
	}
	return lo.Clamp(level+delta, 0, 1)
}

// ReviewInterval returns how long to wait before reviewing e again.
// Each recorded error shortens the interval by 10%, down to 30%.
func ReviewInterval(e Entry) time.Duration {
	idx := int(e.MasteryLevel * float64(len(reviewIntervals)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(reviewIntervals) {
		idx = len(reviewIntervals) - 1
	}
	penalty := 1 - float64(e.ErrorCount)*0.1
	if penalty < 0.3 {
		penalty = 0.3
	}
	return time.Duration(float64(reviewIntervals[idx]) * penalty)
}

// Due returns up to max entries due for review at now, most urgent first.
// Words never encountered are always due.
func Due(entries []Entry, now time.Time, max int) []Entry {
	type dueEntry struct {
		entry    Entry
		priority float64
	}
	var due []dueEntry
	for _, e := range entries {
		if e.LastEncountered.IsZero() {
			due = append(due, dueEntry{e, 1e9 * (1 - e.MasteryLevel)})
			continue
		}
		elapsed := now.Sub(e.LastEncountered)
		interval := ReviewInterval(e)
		if elapsed < interval {
			continue
		}
		overdueDays := (elapsed - interval).Hours() / 24
		due = append(due, dueEntry{e, overdueDays * (1 - e.MasteryLevel)})
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].priority > due[j].priority
	})

	var out []Entry
	for i := 0; i < len(due) && (max <= 0 || i < max); i++ {
		out = append(out, due[i].entry)
	}
	return out
}
