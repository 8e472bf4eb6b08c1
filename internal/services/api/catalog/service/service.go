// Package service serves the book catalog
package service

import (
	"context"
	"strconv"
	"strings"

	"biblia/internal/core/catalog"
	perr "biblia/internal/platform/errors"
	"biblia/internal/services/api/catalog/domain"
)

// Service defines the service contract for the catalog
type Service interface{ domain.ServicePort }

// Svc implements Service over an immutable catalog
type Svc struct{ cat catalog.Catalog }

// New creates the service. An empty catalog falls back to the built in one
func New(c catalog.Catalog) *Svc {
	if c.Empty() {
		c = catalog.Default()
	}
	return &Svc{cat: c}
}

// Search filters by display name
func (s *Svc) Search(_ context.Context, in domain.SearchInput) (domain.View, error) {
	q := strings.TrimSpace(in.Q)
	view, noMatch := s.cat.Search(q)
	out := domain.View{Query: q, NoMatch: noMatch, Groups: []domain.Group{}}
	for _, g := range view.Groups() {
		dg := domain.Group{Name: g.Name, Books: make([]domain.Book, 0, len(g.Books))}
		for _, b := range g.Books {
			dg.Books = append(dg.Books, toBook(b))
		}
		out.Groups = append(out.Groups, dg)
	}
	return out, nil
}

// Book returns one book with its chapter list
func (s *Svc) Book(_ context.Context, id string) (domain.BookDetail, error) {
	b, ok := s.cat.Book(id)
	if !ok {
		return domain.BookDetail{}, perr.WithField(perr.NotFoundf("book %q not found", id), "id")
	}
	group, _ := s.cat.GroupOf(b.ID)
	links := make([]domain.Chapter, b.ChapterCount)
	for i := range links {
		n := strconv.Itoa(i + 1)
		links[i] = domain.Chapter{Number: i + 1, Label: b.DisplayName + " " + n, Ref: b.ID + " " + n}
	}
	return domain.BookDetail{Book: toBook(b), Group: group, ChapterLinks: links}, nil
}

func toBook(b catalog.BookEntry) domain.Book {
	return domain.Book{ID: b.ID, Name: b.DisplayName, Chapters: b.ChapterCount}
}
