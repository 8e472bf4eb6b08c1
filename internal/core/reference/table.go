// Package reference maps localized (Portuguese) scripture references onto the
// canonical English naming the text provider understands
package reference

import (
	"sort"

	"biblia/internal/core/normalize"
	perr "biblia/internal/platform/errors"
)

// Table is an immutable lookup from normalized localized book key to
// canonical book name. Keys go through the same normalization as user input
type Table struct {
	entries map[string]string
}

// NewTable normalizes every key of m. Two keys that normalize to the same
// value must agree on the canonical name
func NewTable(m map[string]string) (*Table, error) {
	entries := make(map[string]string, len(m))
	for k, canonical := range m {
		key := normalize.Normalize(k)
		if key == "" || canonical == "" {
			return nil, perr.InvalidArgf("reference table: empty key or name for %q", k)
		}
		if prev, ok := entries[key]; ok && prev != canonical {
			return nil, perr.InvalidArgf("reference table: %q maps to both %q and %q", key, prev, canonical)
		}
		entries[key] = canonical
	}
	return &Table{entries: entries}, nil
}

// MustTable is NewTable for package level literals
func MustTable(m map[string]string) *Table {
	t, err := NewTable(m)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the canonical name for an already normalized key
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[key]
	return v, ok
}

// Len is the number of keys
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Keys returns the normalized keys in sorted order
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.entries))
	for k := range t.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var defaultTable = MustTable(map[string]string{
	"genesis":              "Genesis",
	"exodo":                "Exodus",
	"exodo.":               "Exodus",
	"exodos":               "Exodus",
	"levitico":             "Leviticus",
	"numeros":              "Numbers",
	"deuteronomio":         "Deuteronomy",
	"josue":                "Joshua",
	"juizes":               "Judges",
	"rute":                 "Ruth",
	"1 samuel":             "1 Samuel",
	"2 samuel":             "2 Samuel",
	"1 reis":               "1 Kings",
	"2 reis":               "2 Kings",
	"1 cronicas":           "1 Chronicles",
	"2 cronicas":           "2 Chronicles",
	"esdras":               "Ezra",
	"neemias":              "Nehemiah",
	"ester":                "Esther",
	"jo":                   "Job",
	"salmos":               "Psalms",
	"salmo":                "Psalms",
	"proverbios":           "Proverbs",
	"eclesiastes":          "Ecclesiastes",
	"cantares":             "Song of Songs",
	"cantico dos canticos": "Song of Songs",
	"isaias":               "Isaiah",
	"jeremias":             "Jeremiah",
	"lamentacoes":          "Lamentations",
	"ezequiel":             "Ezekiel",
	"daniel":               "Daniel",
	"oseias":               "Hosea",
	"joel":                 "Joel",
	"amos":                 "Amos",
	"obadias":              "Obadiah",
	"jonas":                "Jonah",
	"miqueias":             "Micah",
	"naum":                 "Nahum",
	"habacuque":            "Habakkuk",
	"sofonias":             "Zephaniah",
	"ageu":                 "Haggai",
	"zacarias":             "Zechariah",
	"malaquias":            "Malachi",
	"mateus":               "Matthew",
	"marcos":               "Mark",
	"lucas":                "Luke",
	"joao":                 "John",
	"atos":                 "Acts",
	"romanos":              "Romans",
	"1 corintios":          "1 Corinthians",
	"2 corintios":          "2 Corinthians",
	"corintios":            "Corinthians",
	"galatas":              "Galatians",
	"efesios":              "Ephesians",
	"filipenses":           "Philippians",
	"colossenses":          "Colossians",
	"1 tessalonicenses":    "1 Thessalonians",
	"2 tessalonicenses":    "2 Thessalonians",
	"tessalonicenses":      "Thessalonians",
	"1 timoteo":            "1 Timothy",
	"2 timoteo":            "2 Timothy",
	"timoteo":              "Timothy",
	"tito":                 "Titus",
	"filemom":              "Philemon",
	"filemon":              "Philemon",
	"hebreus":              "Hebrews",
	"tiago":                "James",
	"1 pedro":              "1 Peter",
	"2 pedro":              "2 Peter",
	"pedro":                "Peter",
	"1 joao":               "1 John",
	"2 joao":               "2 John",
	"3 joao":               "3 John",
	"judas":                "Jude",
	"apocalipse":           "Revelation",
})

// DefaultTable is the Portuguese table
func DefaultTable() *Table { return defaultTable }
