package problemgen

import (
	"strings"

	"github.com/samber/lo"

	"github.com/studyplan/qengine/internal/skill"
)

// WeakCategories returns the categories whose accuracy in logs is below
// threshold. Logs are grouped by lowercased label; each weak group is mapped
// to a category through labels. The result follows the order in which the
// labels first appear and holds no duplicates.
func WeakCategories(logs []skill.AnswerLog, threshold float64, labels skill.LabelMap) []skill.Category {
	norm := func(l skill.AnswerLog) string { return strings.ToLower(strings.TrimSpace(l.Category)) }
	groups := lo.GroupBy(logs, norm)
	order := lo.Uniq(lo.Map(logs, func(l skill.AnswerLog, _ int) string { return norm(l) }))

	var weak []skill.Category
	for _, label := range order {
		group := groups[label]
		correct := lo.CountBy(group, func(l skill.AnswerLog) bool { return l.Correct })
		if float64(correct)/float64(len(group)) >= threshold {
			continue
		}
		if c, ok := labels.Resolve(label); ok {
			weak = append(weak, c)
		}
	}
	return lo.Uniq(weak)
}
