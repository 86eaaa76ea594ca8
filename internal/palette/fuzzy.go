package palette

import (
	"strings"
	"unicode/utf8"
)

// Scoring weights
const (
	ScorePerMatch      = 10
	ScoreContiguous    = 7
	ScoreStartOfString = 6
	ScoreWordBoundary  = 4
)

// Normalize trims surrounding whitespace and lowercases s
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// isWordSeparator reports whether r starts a new word after it
func isWordSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}

// Score rates how well query matches candidate as an in-order subsequence.
// Both inputs are expected to be normalized. The second result is false when
// either input is empty or query is not a subsequence of candidate.
//
// Matching is leftmost-greedy: each query rune binds to the first unconsumed
// occurrence in candidate and the scan never backtracks, so the alignment is
// not necessarily the best scoring one.
func Score(query, candidate string) (int, bool) {
	if query == "" || candidate == "" {
		return 0, false
	}

	c := []rune(candidate)
	score := 0
	pos := 0
	prev := -1

	for _, qr := range query {
		found := -1
		for ; pos < len(c); pos++ {
			if c[pos] == qr {
				found = pos
				pos++
				break
			}
		}
		if found < 0 {
			return 0, false
		}

		score += ScorePerMatch

		if prev >= 0 {
			if found == prev+1 {
				score += ScoreContiguous
			} else {
				score -= found - prev - 1
			}
		}

		if found == 0 {
			score += ScoreStartOfString
		} else if isWordSeparator(c[found-1]) {
			score += ScoreWordBoundary
		}

		prev = found
	}

	if excess := len(c) - utf8.RuneCountInString(query); excess > 0 {
		score -= excess
	}

	return score, true
}

// bestTermScore returns the highest score of query across all terms
func bestTermScore(query string, terms []string) (int, bool) {
	best := 0
	matched := false
	for _, term := range terms {
		s, ok := Score(query, Normalize(term))
		if !ok {
			continue
		}
		if !matched || s > best {
			best = s
			matched = true
		}
	}
	return best, matched
}
