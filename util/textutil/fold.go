// Package textutil holds the case-insensitive matching used for place names,
// directory search and suggestions.
package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold trims s and applies Unicode case folding. A Caser is stateful, so a
// fresh one is built per call.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// EqualFold reports whether a and b are the same place name ignoring case and
// surrounding whitespace.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// ContainsFold reports whether needle occurs in haystack ignoring case.
// An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	return strings.Contains(cases.Fold().String(haystack), n)
}

// HasPrefixFold reports whether s starts with prefix ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(Fold(s), Fold(prefix))
}
