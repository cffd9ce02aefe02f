// Package sanitize is the input boundary for free-text query
// parameters: control characters are stripped and length is constrained
// before values reach the search logic, which assumes pre-sanitized
// strings.
package sanitize

import (
	"strings"
	"unicode"
)

// DefaultMaxLen bounds a sanitized query parameter, in runes.
const DefaultMaxLen = 120

// Query cleans one free-text query parameter: control characters are
// dropped, surrounding whitespace trimmed and the result capped at
// maxLen runes (DefaultMaxLen when maxLen is not positive).
func Query(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)

	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) > maxLen {
		cleaned = strings.TrimSpace(string(runes[:maxLen]))
	}
	return cleaned
}
