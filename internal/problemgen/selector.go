package problemgen

import (
	"math"

	"github.com/samber/lo"

	"github.com/studyplan/qengine/internal/perf"
	"github.com/studyplan/qengine/internal/skill"
	"github.com/studyplan/qengine/internal/templates"
)

// Selector picks templates using the learning-zone heuristic: templates
// whose historical accuracy sits closest to Zone are preferred over ones
// learners almost always or almost never get right.
type Selector struct {
	Zone float64
}

// Score rates a template by its stats. Templates with no stats score as if
// they sat exactly in the zone.
func (s Selector) Score(t templates.Template, stats map[string]perf.TemplateStats) float64 {
	acc := s.Zone
	if st, ok := stats[t.ID]; ok {
		acc = st.Accuracy()
	}
	return 1 - math.Abs(acc-s.Zone)
}

// Select returns the best template for the category at the given difficulty
// and week (AnyWeek disables the week filter). When nothing matches exactly
// it falls back to the category template with the nearest difficulty,
// ignoring the week. Ties go to the earlier template in pool. ok is false
// only when the category has no templates at all.
func (s Selector) Select(c skill.Category, difficulty, week int, pool []templates.Template, stats map[string]perf.TemplateStats) (t templates.Template, ok bool) {
	inCategory := lo.Filter(pool, func(t templates.Template, _ int) bool { return t.Category == c })
	if len(inCategory) == 0 {
		return templates.Template{}, false
	}

	exact := lo.Filter(inCategory, func(t templates.Template, _ int) bool {
		return t.Difficulty == difficulty && (week == AnyWeek || t.AppliesToWeek(week))
	})
	if len(exact) > 0 {
		best := exact[0]
		bestScore := s.Score(best, stats)
		for _, cand := range exact[1:] {
			if score := s.Score(cand, stats); score > bestScore {
				best, bestScore = cand, score
			}
		}
		return best, true
	}

	nearest := lo.MinBy(inCategory, func(a, b templates.Template) bool {
		return distance(a.Difficulty, difficulty) < distance(b.Difficulty, difficulty)
	})
	return nearest, true
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
