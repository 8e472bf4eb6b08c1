package reference

import (
	"fmt"
	"sync"
	"testing"

	"biblia/internal/platform/testkit"
)

func TestDefaultTableRoundTrip(t *testing.T) {
	tbl := DefaultTable()
	if tbl.Len() < 66 {
		t.Fatalf("default table too small: %d", tbl.Len())
	}
	for _, key := range tbl.Keys() {
		want, _ := tbl.Lookup(key)
		raw := key + " 3:16"
		got := tbl.Translate(raw)
		if !got.Matched || got.Canonical != want+" 3:16" {
			t.Fatalf("Translate(%q) = %+v, want %q", raw, got, want+" 3:16")
		}
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		matched bool
		rest    string
	}{
		{"João 3:16", "John 3:16", true, "3:16"},
		{"joao 3:16", "John 3:16", true, "3:16"},
		{"JOÃO 3:16", "John 3:16", true, "3:16"},
		{"1 Joao 1:1", "1 John 1:1", true, "1:1"},
		{"3 João 1", "3 John 1", true, "1"},
		{"1 Coríntios 13", "1 Corinthians 13", true, "13"},
		{"Gênesis 1", "Genesis 1", true, "1"},
		{"Êxodo. 20", "Exodus 20", true, "20"},
		{"Cântico dos Cânticos 2:4", "Song of Songs 2:4", true, "2:4"},
		{"Salmos", "Psalms", true, ""},
		{"  Apocalipse   22:20-21  ", "Revelation 22:20-21", true, "22:20-21"},
		{"Jo 1 e 2", "Job 1 e 2", true, "1 e 2"},
		{"Xyz 1:1", "Xyz 1:1", false, ""},
		{"John 3:16", "John 3:16", false, ""},
		{"4 Reis 1", "4 Reis 1", false, ""},
		{"3:16", "3:16", false, ""},
		{"1", "1", false, ""},
		{"2 3", "2 3", false, ""},
		{"", "", false, ""},
		{"   ", "   ", false, ""},
	}
	for _, c := range cases {
		got := Translate(c.in)
		if got.Canonical != c.want || got.Matched != c.matched || got.Remainder != c.rest {
			t.Fatalf("Translate(%q) = %+v, want canonical %q matched %v rest %q", c.in, got, c.want, c.matched, c.rest)
		}
		if got.Input != c.in {
			t.Fatalf("input not preserved: %q", got.Input)
		}
	}
}

func TestTranslateMissKeepsInputVerbatim(t *testing.T) {
	in := "  Livro Perdido 4:2 "
	if got := Translate(in); got.Canonical != in || got.Book != "" {
		t.Fatalf("miss mangled input: %+v", got)
	}
}

func TestTranslateNeverPanics(t *testing.T) {
	for _, in := range []string{"\xff\xfe", "1 ", "\u200b 3", "Jo\x00ao 1", ":", "3 3 3"} {
		testkit.MustNotPanic(t, func() { _ = Translate(in) })
	}
}

func TestNewTable(t *testing.T) {
	if _, err := NewTable(map[string]string{"João": "John", "joao": "John"}); err != nil {
		t.Fatalf("agreeing aliases rejected: %v", err)
	}
	if _, err := NewTable(map[string]string{"João": "John", "joao": "Jonah"}); err == nil {
		t.Fatalf("conflicting aliases accepted")
	}
	if _, err := NewTable(map[string]string{" ": "John"}); err == nil {
		t.Fatalf("blank key accepted")
	}
	if _, err := NewTable(map[string]string{"joao": ""}); err == nil {
		t.Fatalf("blank name accepted")
	}
	testkit.MustPanic(t, func() { MustTable(map[string]string{"": "x"}) })

	tbl := MustTable(map[string]string{"Ação": "Action"})
	if v, ok := tbl.Lookup("acao"); !ok || v != "Action" {
		t.Fatalf("key not normalized: %v %q", ok, v)
	}

	var nilTbl *Table
	if _, ok := nilTbl.Lookup("x"); ok || nilTbl.Len() != 0 || nilTbl.Keys() != nil {
		t.Fatalf("nil table should be empty")
	}
}

func TestComposer(t *testing.T) {
	var c Composer = NewComposer(nil)
	if got := c.Compose("Romanos 8:28"); got != "Romans 8:28" {
		t.Fatalf("compose: %q", got)
	}
	if got := Compose("Romanos 8:28"); got != Translate("Romanos 8:28").Canonical {
		t.Fatalf("Compose differs from Translate: %q", got)
	}

	custom := NewComposer(MustTable(map[string]string{"joao": "Jean"}))
	if got := custom.Compose("João 1"); got != "Jean 1" {
		t.Fatalf("custom table: %q", got)
	}
	if got := (TableComposer{}).Compose("Atos 2"); got != "Acts 2" {
		t.Fatalf("zero composer: %q", got)
	}

	up := ComposerFunc(func(raw string) string { return "[" + raw + "]" })
	if got := up.Compose("x"); got != "[x]" {
		t.Fatalf("func composer: %q", got)
	}
}

func TestComposerResolve(t *testing.T) {
	var r Resolver = NewComposer(nil)
	res := r.Resolve("Daniel 3")
	if !res.Matched || res.Canonical != "Daniel 3" {
		t.Fatalf("same-name book: %+v", res)
	}
	if res := r.Resolve("Xyz 1"); res.Matched || res.Canonical != "Xyz 1" {
		t.Fatalf("miss: %+v", res)
	}
	if got := (TableComposer{}).Resolve("Atos 2"); !got.Matched || got.Canonical != "Acts 2" {
		t.Fatalf("zero composer: %+v", got)
	}
}

func TestTranslateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			raw := fmt.Sprintf("Mateus %d:1", n+1)
			if got := Translate(raw).Canonical; got != fmt.Sprintf("Matthew %d:1", n+1) {
				t.Errorf("concurrent translate: %q", got)
			}
		}(i)
	}
	wg.Wait()
}
