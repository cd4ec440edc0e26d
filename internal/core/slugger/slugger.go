// Package slugger derives URL-safe slugs from human titles
package slugger

import "strings"

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming hyphens at both ends.
// Non-ASCII letters are dropped rather than transliterated
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
