package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatch returns the index of the label that best matches query, or -1
// when nothing matches. Exact matches win over prefixes, prefixes over
// substrings, and substrings over fuzzy matches.
func BestMatch(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.EqualFold(strings.TrimSpace(label), trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}
