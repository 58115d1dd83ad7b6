package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips active markup (scripts, event handlers, dangerous tags)
// from free-text input and trims surrounding whitespace.
func Sanitize(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}

// WeightedLength measures a string with a CJK-aware metric: characters above
// code point 255 count double, approximating visual width.
func WeightedLength(s string) int {
	length := 0
	for _, r := range s {
		if r > 255 {
			length += 2
		} else {
			length++
		}
	}
	return length
}
