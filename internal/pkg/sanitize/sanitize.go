// Package sanitize turns untrusted free text into plain text safe to store and render.
package sanitize

import (
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows no elements at all. script, style and similar elements are
// dropped together with their content.
var policy = bluemonday.StrictPolicy()

// quotes undoes the escaping of quote characters, which are harmless in text content.
var quotes = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

// Text strips every tag from raw and trims surrounding whitespace. Ampersands and
// angle brackets that survive are left HTML-escaped. Text(Text(s)) == Text(s).
func Text(raw string) string {
	return strings.TrimSpace(quotes.Replace(policy.Sanitize(raw)))
}

// Len counts the characters (code points) of s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}
