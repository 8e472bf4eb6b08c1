package service

import (
	"context"
	"testing"

	"biblia/internal/core/catalog"
	perr "biblia/internal/platform/errors"
	"biblia/internal/platform/testkit"
	"biblia/internal/services/api/catalog/domain"
)

func small() catalog.Catalog {
	return catalog.MustNew(
		catalog.BookGroup{Name: "Pentateuco", Books: []catalog.BookEntry{
			{ID: "Genesis", DisplayName: "Gênesis", ChapterCount: 50},
			{ID: "Exodus", DisplayName: "Êxodo", ChapterCount: 40},
		}},
		catalog.BookGroup{Name: "Evangelhos", Books: []catalog.BookEntry{
			{ID: "John", DisplayName: "João", ChapterCount: 21},
		}},
	)
}

func TestSearch(t *testing.T) {
	s := New(small())
	cases := []struct {
		name    string
		q       string
		noMatch bool
		groups  []string
		books   int
	}{
		{"blank", "  ", false, []string{"Pentateuco", "Evangelhos"}, 3},
		{"accent insensitive", "exo", false, []string{"Pentateuco"}, 1},
		{"case insensitive", "JOÃO", false, []string{"Evangelhos"}, 1},
		{"no match falls back", "zzz", true, []string{"Pentateuco", "Evangelhos"}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := s.Search(context.Background(), domain.SearchInput{Q: tc.q})
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if v.NoMatch != tc.noMatch {
				t.Fatalf("no_match = %v", v.NoMatch)
			}
			var names []string
			n := 0
			for _, g := range v.Groups {
				names = append(names, g.Name)
				n += len(g.Books)
			}
			testkit.MustEqual(t, tc.groups, names)
			if n != tc.books {
				t.Fatalf("books = %d want %d", n, tc.books)
			}
		})
	}
}

func TestBook(t *testing.T) {
	s := New(small())
	d, err := s.Book(context.Background(), "John")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if d.Group != "Evangelhos" || d.Name != "João" || len(d.ChapterLinks) != 21 {
		t.Fatalf("detail %+v", d)
	}
	testkit.MustEqual(t, domain.Chapter{Number: 3, Label: "João 3", Ref: "John 3"}, d.ChapterLinks[2])

	_, err = s.Book(context.Background(), "Enoch")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestNew_EmptyUsesDefault(t *testing.T) {
	var empty catalog.Catalog
	v, _ := New(empty).Search(context.Background(), domain.SearchInput{})
	n := 0
	for _, g := range v.Groups {
		n += len(g.Books)
	}
	if n != 66 {
		t.Fatalf("books = %d", n)
	}
}
