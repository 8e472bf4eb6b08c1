package bibleapi

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Body is a decoded provider payload: Consolidated, VerseList or Malformed
type Body interface{ isBody() }

// Consolidated carries the whole passage in one text field
type Consolidated struct {
	Text      string
	Reference string
}

// Verse is one entry of a VerseList. Number is 0 when the provider sent
// no usable verse number
type Verse struct {
	Number int
	Text   string
}

// VerseList carries the passage verse by verse, in provider order
type VerseList struct {
	Verses    []Verse
	Reference string
}

// Malformed is a 2xx payload with neither shape. Reason says why
type Malformed struct {
	Reason string
	Raw    string
}

func (Consolidated) isBody() {}
func (VerseList) isBody()    {}
func (Malformed) isBody()    {}

type wireVerse struct {
	Verse json.Number `json:"verse"`
	Text  string      `json:"text"`
}

type wireBody struct {
	Reference string          `json:"reference"`
	Text      *string         `json:"text"`
	Verses    json.RawMessage `json:"verses"`
}

const rawKeep = 256

// Decode classifies a provider payload. A non empty text field wins over
// the verse array
func Decode(b []byte) Body {
	var w wireBody
	if err := json.Unmarshal(b, &w); err != nil {
		return Malformed{Reason: "invalid json: " + err.Error(), Raw: clip(b)}
	}
	if w.Text != nil && *w.Text != "" {
		return Consolidated{Text: *w.Text, Reference: w.Reference}
	}
	if len(w.Verses) == 0 || string(w.Verses) == "null" {
		return Malformed{Reason: "neither text nor verses", Raw: clip(b)}
	}
	var vs []wireVerse
	if err := json.Unmarshal(w.Verses, &vs); err != nil {
		return Malformed{Reason: "verses is not a list: " + err.Error(), Raw: clip(b)}
	}
	out := VerseList{Verses: make([]Verse, 0, len(vs)), Reference: w.Reference}
	for _, v := range vs {
		out.Verses = append(out.Verses, Verse{Number: verseNumber(v.Verse), Text: v.Text})
	}
	return out
}

// Flatten renders any Body as the single display string
// Verse lists become "{n}. {text}" lines, or bare text for an unnumbered
// verse; Malformed yields ""
func Flatten(b Body) string {
	switch v := b.(type) {
	case Consolidated:
		return v.Text
	case VerseList:
		lines := make([]string, len(v.Verses))
		for i, vs := range v.Verses {
			if vs.Number <= 0 {
				lines[i] = vs.Text
				continue
			}
			lines[i] = strconv.Itoa(vs.Number) + ". " + vs.Text
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

// verseNumber accepts positive integers only, as a number or a string
func verseNumber(n json.Number) int {
	v, err := strconv.Atoi(strings.TrimSpace(n.String()))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func clip(b []byte) string {
	if len(b) > rawKeep {
		b = b[:rawKeep]
	}
	return string(b)
}
