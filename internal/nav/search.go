package nav

import (
	"sort"
	"strings"
)

// Scoring weights. A label hit is the strongest signal of intent, keywords
// are curated so they rank above prose, descriptions are weaker, and the
// catch-all blob awards partial credit so near-miss tokens still contribute.
// Tiers are additive: one word can score under all four rules at once.
const (
	weightLabel       = 10
	weightKeyword     = 5
	weightDescription = 2
	weightCatchAll    = 1
)

// maxResults caps how many pages a single query may return.
const maxResults = 5

// minSubstringLen is the shortest query word allowed to match as a substring.
// One- and two-letter words ("I", "on", "a") are substrings of almost every
// descriptor and would make open-ended questions match the whole registry,
// so they only count as whole-token matches.
const minSubstringLen = 3

// MatchResult pairs a page descriptor with its relevance score for one query
// evaluation. It is discarded after ranking.
type MatchResult struct {
	Page  PageDescriptor `json:"page"`
	Score int            `json:"score"`
}

// Search ranks registry pages against a free-text query and returns at most
// five matches, best first. Navigation commands are reduced to their target
// before scoring. Ties keep registry order. The function is pure: it never
// mutates the registry, never errors, and degrades to an empty result for
// any input.
func Search(query string, registry Registry) []PageDescriptor {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	if ClassifyIntent(q) {
		q = ExtractTarget(q)
		if q == "" {
			return nil
		}
	}

	words := strings.Fields(q)

	matches := make([]MatchResult, 0, len(registry))
	for _, page := range registry {
		if score := scorePage(words, page); score > 0 {
			matches = append(matches, MatchResult{Page: page, Score: score})
		}
	}

	// Stable so equal scores keep registry order (product priority).
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	results := make([]PageDescriptor, len(matches))
	for i, m := range matches {
		results[i] = m.Page
	}
	return results
}

// scorePage sums per-word weights for one descriptor.
func scorePage(words []string, page PageDescriptor) int {
	label := strings.ToLower(page.Label)
	description := strings.ToLower(page.Description)
	keywords := make([]string, len(page.Keywords))
	for i, k := range page.Keywords {
		keywords[i] = strings.ToLower(k)
	}
	blob := label + " " + description + " " + strings.Join(keywords, " ")

	score := 0
	for _, word := range words {
		if containsWord(label, word) {
			score += weightLabel
		}
		for _, k := range keywords {
			if containsWord(k, word) {
				score += weightKeyword
				break
			}
		}
		if containsWord(description, word) {
			score += weightDescription
		}
		if containsWord(blob, word) {
			score += weightCatchAll
		}
	}
	return score
}

// containsWord reports whether a case-folded haystack matches a query word:
// substring matching for words of minSubstringLen or longer, whole-token
// matching below that.
func containsWord(haystack, word string) bool {
	if len(word) >= minSubstringLen {
		return strings.Contains(haystack, word)
	}
	for _, tok := range strings.Fields(haystack) {
		if tok == word {
			return true
		}
	}
	return false
}
