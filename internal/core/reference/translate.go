package reference

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"biblia/internal/core/normalize"
)

// Resolution is the outcome of translating one raw reference
// Matched is false when no table entry applied; Canonical then equals Input
type Resolution struct {
	Input     string
	Canonical string
	Book      string
	Remainder string
	Matched   bool
}

// token is a whitespace separated run of s, with byte offsets into s
type token struct {
	text       string
	start, end int
}

func tokenize(s string) []token {
	var out []token
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, token{text: s[start:i], start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, token{text: s[start:], start: start, end: len(s)})
	}
	return out
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		if r >= '0' && r <= '9' {
			return true
		}
		i += w
	}
	return false
}

func isNumeral(s string) bool { return s == "1" || s == "2" || s == "3" }

// Translate rewrites the book part of raw into its canonical name
// The chapter and verse fragment is carried over untouched
func (t *Table) Translate(raw string) Resolution {
	res := Resolution{Input: raw, Canonical: raw}

	toks := tokenize(raw)
	if len(toks) == 0 {
		return res
	}

	i := 0
	prefix := ""
	if isNumeral(toks[0].text) {
		prefix = toks[0].text
		i = 1
	}

	first := i
	for i < len(toks) && !hasDigit(toks[i].text) {
		i++
	}
	if i == first {
		// nothing but numbers (or a bare numeral)
		return res
	}

	words := make([]string, 0, i-first+1)
	if prefix != "" {
		words = append(words, prefix)
	}
	for _, tk := range toks[first:i] {
		words = append(words, tk.text)
	}

	canonical, ok := t.Lookup(normalize.Normalize(strings.Join(words, " ")))
	if !ok {
		return res
	}

	rest := strings.TrimSpace(raw[toks[i-1].end:])
	res.Book = canonical
	res.Remainder = rest
	res.Matched = true
	if rest == "" {
		res.Canonical = canonical
	} else {
		res.Canonical = canonical + " " + rest
	}
	return res
}

// Translate resolves raw against the default Portuguese table
func Translate(raw string) Resolution { return defaultTable.Translate(raw) }
