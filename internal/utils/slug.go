// internal/utils/slug.go
package utils

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a title or category name.
// Non-alphanumeric runs collapse to a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // avoid a leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
