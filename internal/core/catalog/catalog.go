// Package catalog holds the grouped, ordered list of books a reader can browse
package catalog

import (
	"strings"

	"biblia/internal/core/normalize"
	perr "biblia/internal/platform/errors"
)

// BookEntry is one book of the catalog
// ID is the canonical name sent to the text provider; DisplayName is localized
type BookEntry struct {
	ID           string
	DisplayName  string
	ChapterCount int
}

// BookGroup is a named, ordered run of books (Pentateuco, Evangelhos, ...)
type BookGroup struct {
	Name  string
	Books []BookEntry
}

type position struct{ group, book int }

// Catalog is an ordered list of groups. The zero value is an empty catalog.
// A Catalog is never mutated after construction; every accessor hands out copies
type Catalog struct {
	groups []BookGroup
	index  map[string]position
	folded map[string]string
}

// New validates and indexes groups. IDs must be unique and non empty and
// every book needs at least one chapter
func New(groups ...BookGroup) (Catalog, error) {
	c := Catalog{
		groups: make([]BookGroup, 0, len(groups)),
		index:  map[string]position{},
		folded: map[string]string{},
	}
	for gi, g := range groups {
		if g.Name == "" {
			return Catalog{}, perr.InvalidArgf("catalog: group %d has no name", gi)
		}
		books := make([]BookEntry, len(g.Books))
		copy(books, g.Books)
		for bi, b := range books {
			switch {
			case b.ID == "":
				return Catalog{}, perr.InvalidArgf("catalog: %s book %d has no id", g.Name, bi)
			case b.ChapterCount < 1:
				return Catalog{}, perr.InvalidArgf("catalog: %s has %d chapters", b.ID, b.ChapterCount)
			}
			if _, dup := c.index[b.ID]; dup {
				return Catalog{}, perr.InvalidArgf("catalog: duplicate book id %s", b.ID)
			}
			if b.DisplayName == "" {
				books[bi].DisplayName = b.ID
			}
			c.index[b.ID] = position{group: len(c.groups), book: bi}
			c.folded[b.ID] = normalize.Normalize(books[bi].DisplayName)
		}
		c.groups = append(c.groups, BookGroup{Name: g.Name, Books: books})
	}
	return c, nil
}

// MustNew is New for package level data
func MustNew(groups ...BookGroup) Catalog {
	c, err := New(groups...)
	if err != nil {
		panic(err)
	}
	return c
}

// Groups returns a copy of the groups in order
func (c Catalog) Groups() []BookGroup {
	out := make([]BookGroup, len(c.groups))
	for i, g := range c.groups {
		out[i] = BookGroup{Name: g.Name, Books: append([]BookEntry(nil), g.Books...)}
	}
	return out
}

// Books flattens the catalog in display order
func (c Catalog) Books() []BookEntry {
	out := make([]BookEntry, 0, len(c.index))
	for _, g := range c.groups {
		out = append(out, g.Books...)
	}
	return out
}

// Len is the number of books
func (c Catalog) Len() int { return len(c.index) }

// Empty reports whether there is nothing to show
func (c Catalog) Empty() bool { return len(c.index) == 0 }

// Book looks a book up by id
func (c Catalog) Book(id string) (BookEntry, bool) {
	p, ok := c.index[id]
	if !ok {
		return BookEntry{}, false
	}
	return c.groups[p.group].Books[p.book], true
}

// GroupOf returns the group name a book lives in, for breadcrumbs
func (c Catalog) GroupOf(id string) (string, bool) {
	p, ok := c.index[id]
	if !ok {
		return "", false
	}
	return c.groups[p.group].Name, true
}

// ValidChapter reports whether n is a chapter of book id
func (c Catalog) ValidChapter(id string, n int) bool {
	b, ok := c.Book(id)
	return ok && n >= 1 && n <= b.ChapterCount
}

// Filter keeps the books whose normalized display name contains the
// normalized query, preserving order and dropping groups left empty.
// A blank query returns the whole catalog
func (c Catalog) Filter(query string) Catalog {
	term := normalize.Normalize(query)
	if term == "" {
		return c.clone(func(BookEntry) bool { return true })
	}
	return c.clone(func(b BookEntry) bool { return strings.Contains(c.folded[b.ID], term) })
}

// Search is Filter with a fallback: when nothing matches, the full catalog
// comes back and noMatch is set
func (c Catalog) Search(query string) (view Catalog, noMatch bool) {
	view = c.Filter(query)
	if view.Empty() && !c.Empty() {
		return c.Filter(""), true
	}
	return view, false
}

func (c Catalog) clone(keep func(BookEntry) bool) Catalog {
	out := Catalog{index: map[string]position{}, folded: map[string]string{}}
	for _, g := range c.groups {
		var books []BookEntry
		for _, b := range g.Books {
			if !keep(b) {
				continue
			}
			out.index[b.ID] = position{group: len(out.groups), book: len(books)}
			out.folded[b.ID] = c.folded[b.ID]
			books = append(books, b)
		}
		if len(books) > 0 {
			out.groups = append(out.groups, BookGroup{Name: g.Name, Books: books})
		}
	}
	return out
}
