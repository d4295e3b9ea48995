package sanitize

import (
	"strings"
	"unicode"
)

// TextField strips control characters, collapses internal whitespace
// runs to single spaces, and trims the result. Single-line fields go
// through this before being stored or matched against.
func TextField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// TextareaField keeps newlines but strips other control characters and
// trims surrounding whitespace. Used for multi-line descriptions.
func TextareaField(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
