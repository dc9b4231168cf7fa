package suggest

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// String suggests the candidate that most closely matches want. Matching is
// case-insensitive; the returned value is the candidate as given.
//
//	The maximum difference depends on the input string. Users of the package
//	should not rely on this heuristic as it may change.
//
// Ties are resolved by picking the lexically smallest candidate, so the result
// does not depend on the order of candidates. If no close match is found, an
// empty string is returned.
func String(want string, candidates []string) string {
	maxDist := len(want) / 5
	if maxDist == 0 {
		maxDist = 1
	}

	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	lower := strings.ToLower(want)
	var str string
	dist := maxDist + 1
	for _, cand := range sorted {
		c := strings.ToLower(cand)
		if lower == c {
			return cand
		}
		d := levenshtein.Distance(lower, c, nil)
		if d < dist {
			str = cand
			dist = d
		}
	}

	if dist > maxDist {
		return ""
	}
	return str
}

// Message returns " Did you mean %q?" when a suggestion exists, or an empty
// string. It is meant to be appended to error messages.
func Message(want string, candidates []string) string {
	s := String(want, candidates)
	if s == "" {
		return ""
	}
	return ` Did you mean "` + s + `"?`
}
