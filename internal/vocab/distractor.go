package vocab

import (
	"strings"

	"github.com/samber/lo"
)

// Suggest returns up to max words from pool that make plausible wrong
// answers for target. Semantically related words come first, then words of
// the same difficulty. The target itself is never suggested.
func Suggest(target Entry, pool []Entry, max int) []string {
	if max <= 0 {
		return []string{}
	}
	notTarget := func(e Entry) bool { return !strings.EqualFold(e.Word, target.Word) }

	tokens := relatedTokens(target)
	related := lo.Filter(pool, func(e Entry, _ int) bool {
		return notTarget(e) && isRelated(e, tokens)
	})
	sameDifficulty := lo.Filter(pool, func(e Entry, _ int) bool {
		return notTarget(e) && e.Difficulty == target.Difficulty
	})

	merged := lo.UniqBy(append(related, sameDifficulty...), func(e Entry) string { return e.Word })
	words := lo.Map(merged, func(e Entry, _ int) string { return e.Word })
	if len(words) > max {
		words = words[:max]
	}
	return words
}

// relatedTokens builds the lowercase token set from the target's related
// words and usage contexts.
func relatedTokens(target Entry) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, src := range [][]string{target.RelatedWords, target.Contexts} {
		for _, phrase := range src {
			for _, tok := range strings.Fields(phrase) {
				tokens[strings.ToLower(tok)] = struct{}{}
			}
		}
	}
	return tokens
}

func isRelated(e Entry, tokens map[string]struct{}) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, rw := range e.RelatedWords {
		if _, ok := tokens[strings.ToLower(rw)]; ok {
			return true
		}
	}
	def := strings.ToLower(e.Definition)
	for tok := range tokens {
		if strings.Contains(def, tok) {
			return true
		}
	}
	return false
}
