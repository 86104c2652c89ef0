package quiz

import "strings"

// Normalize prepares an answer for comparison: surrounding whitespace is
// trimmed and letters are lower-cased.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Grade reports whether submitted matches answer after normalization.
// Matching is exact: "Oryza sativa" does not match "Oryza sativa L.".
func Grade(submitted, answer string) bool {
	return Normalize(submitted) == Normalize(answer)
}
