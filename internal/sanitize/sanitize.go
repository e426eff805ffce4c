package sanitize

import "strings"

// Sanitize returns s with disallowed control characters removed.
//
// Removed: 0x00-0x08, 0x0b, 0x0c, 0x0e-0x1f, 0x7f.
// Kept: \t (0x09), \n (0x0a), \r (0x0d), and everything >= 0x20 except DEL.
//
// The function is pure and idempotent. Applying it to already-clean text
// returns the text unchanged.
func Sanitize(s string) string {
	// Fast path: most responses are clean, avoid allocating
	if !strings.ContainsFunc(s, isDisallowed) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isDisallowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDisallowed(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return r < 0x20 || r == 0x7f
}
