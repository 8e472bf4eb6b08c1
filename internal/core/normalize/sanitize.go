package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sanitize drops invalid UTF-8 bytes, U+FFFD and control characters other
// than '\n', '\r' and '\t'. It returns s unchanged when nothing needs cleaning
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if dropRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !dropRune(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// dropRune reports invalid bytes (ranging yields RuneError) and unwanted controls
func dropRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	case utf8.RuneError:
		return true
	}
	return unicode.IsControl(r)
}
