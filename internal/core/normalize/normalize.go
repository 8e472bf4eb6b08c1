// Package normalize turns localized scripture references and catalog names
// into comparison keys.
//
// Pipeline order
// 1 drop invalid UTF-8 and control characters (Sanitize)
// 2 case folding and width folding
// 3 NFD decomposition, combining marks removed, NFC recomposition
// 4 case folding again, so the output is a fixed point of the pipeline
// 5 trim surrounding whitespace
//
// Digits, ':', '-', '.' and internal spaces are left as they are.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is concurrency safe; transformer chains are pooled
type Normalizer struct{}

// folding runs before decomposition so marks introduced by case folding
// (U+0130 folds to i + U+0307) are stripped in the same pass. The trailing
// fold is for Cherokee, where Fold maps U+13A0 to U+AB70 and back
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			cases.Fold(),
			width.Fold,
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), // accents
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF etc
			norm.NFC,
			cases.Fold(),
		)
	},
}

var std = New()

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the comparison key for s using the shared Normalizer
func Normalize(s string) string { return std.Normalize(s) }

// Normalize returns the comparison key for s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// x/text only fails on malformed input, which Sanitize already removed
		out = s
	}
	return strings.TrimSpace(out)
}

// Contains reports whether the normalized form of s contains the normalized form of sub
func Contains(s, sub string) bool {
	return strings.Contains(Normalize(s), Normalize(sub))
}
