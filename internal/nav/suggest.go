package nav

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a misspelling may be from a label or
// keyword before it stops being a plausible "did you mean".
const suggestMaxDistance = 2

// Suggest proposes the closest page for a query that scored zero in Search,
// using edit distance over labels and keywords ("invstors" -> Investors).
// It is a fallback helper, not part of the Search contract: callers should
// only consult it after Search returns nothing. The second return is false
// when no page is close enough.
func Suggest(query string, registry Registry) (PageDescriptor, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return PageDescriptor{}, false
	}
	if ClassifyIntent(q) {
		q = ExtractTarget(q)
		if q == "" {
			return PageDescriptor{}, false
		}
	}

	best := -1
	bestDist := suggestMaxDistance + 1
	for i, page := range registry {
		dist := pageDistance(q, page)
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	if best < 0 {
		return PageDescriptor{}, false
	}
	return registry[best], true
}

// pageDistance returns the minimum edit distance between the query and the
// page's label or any keyword.
func pageDistance(query string, page PageDescriptor) int {
	min := levenshtein.ComputeDistance(query, strings.ToLower(page.Label))
	for _, k := range page.Keywords {
		if d := levenshtein.ComputeDistance(query, strings.ToLower(k)); d < min {
			min = d
		}
	}
	return min
}
