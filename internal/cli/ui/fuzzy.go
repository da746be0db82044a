package ui

import "strings"

const (
	maxEditDistance = 3
	maxSuggestions  = 3
)

// FindSimilar returns up to three candidates within a small edit distance
// of target, nearest first. Matching is case-insensitive. Used for "did
// you mean" hints when a model nickname does not resolve.
func FindSimilar(target string, candidates []string) []string {
	type scored struct {
		name     string
		distance int
	}

	lowered := strings.ToLower(target)
	var matches []scored
	for _, candidate := range candidates {
		d := editDistance(lowered, strings.ToLower(candidate))
		if d <= maxEditDistance {
			matches = append(matches, scored{name: candidate, distance: d})
		}
	}

	// Insertion sort keeps registry order among equal distances.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].distance < matches[j-1].distance; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	if len(matches) == 0 {
		return nil
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// editDistance is the Levenshtein distance between a and b, computed with
// two rolling rows.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = prev[j-1] + cost
			if curr[j-1]+1 < curr[j] {
				curr[j] = curr[j-1] + 1
			}
			if prev[j]+1 < curr[j] {
				curr[j] = prev[j] + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
