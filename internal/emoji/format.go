package emoji

import (
	"strings"
	"unicode"
)

// Format inserts a space every groupSize symbols for display. A groupSize
// below 1 returns the input unchanged. Pure and reversible via Unformat.
func Format(s string, groupSize int) string {
	if groupSize < 1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/(groupSize*4) + 1)

	count := 0
	for _, r := range s {
		if count > 0 && count%groupSize == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		count++
	}

	return b.String()
}

// Unformat strips all whitespace from display text and normalizes the
// result, so Unformat(Format(s, g)) == Normalize(s) for any group size.
func Unformat(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return Normalize(b.String())
}
