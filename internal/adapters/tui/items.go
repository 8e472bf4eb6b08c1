package tui

import (
	"fmt"
	"strings"

	"biblia/internal/core/browser"
	"biblia/internal/core/catalog"
)

const gridCols = 10

type itemKind int

const (
	kindGroup itemKind = iota
	kindBook
	kindChapter
)

// item is one navigable (or header) entry of the list pane
type item struct {
	kind    itemKind
	group   string
	book    catalog.BookEntry
	chapter int
}

func (it item) selectable() bool { return it.kind != kindGroup }

// buildItems flattens the current view; only the expanded book lists chapters
func buildItems(b *browser.Browser) []item {
	var out []item
	for _, g := range b.View().Groups() {
		out = append(out, item{kind: kindGroup, group: g.Name})
		for _, bk := range g.Books {
			out = append(out, item{kind: kindBook, book: bk})
			if !b.IsExpanded(bk.ID) {
				continue
			}
			for n := 1; n <= bk.ChapterCount; n++ {
				out = append(out, item{kind: kindChapter, book: bk, chapter: n})
			}
		}
	}
	return out
}

// helpFor is the label read out for the entry under the cursor
func helpFor(it item) string {
	switch it.kind {
	case kindChapter:
		return fmt.Sprintf("Abrir estudo de %s capítulo %d", it.book.DisplayName, it.chapter)
	case kindBook:
		return fmt.Sprintf("%s · %d capítulos", it.book.DisplayName, it.book.ChapterCount)
	default:
		return ""
	}
}

// renderList draws items as lines and reports the line the cursor sits on
func renderList(items []item, cursor int, b *browser.Browser, st styles) ([]string, int) {
	var (
		lines      []string
		cursorLine int
		row        []string
	)
	flush := func() {
		if len(row) > 0 {
			lines = append(lines, "    "+strings.Join(row, " "))
			row = row[:0]
		}
	}
	for i, it := range items {
		switch it.kind {
		case kindGroup:
			flush()
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, st.group.Render(it.group))
		case kindBook:
			flush()
			chevron := "▸"
			if b.IsExpanded(it.book.ID) {
				chevron = "▾"
			}
			s := st.book.Render(chevron + " " + it.book.DisplayName)
			if i == cursor {
				s = st.cursor.Render(chevron + " " + it.book.DisplayName)
				cursorLine = len(lines)
			}
			lines = append(lines, "  "+s)
		case kindChapter:
			if len(row) == gridCols {
				flush()
			}
			cell := fmt.Sprintf("%3d", it.chapter)
			switch {
			case i == cursor:
				cell = st.cursor.Render(cell)
				cursorLine = len(lines)
			case b.IsActive(it.book.ID, it.chapter):
				cell = st.active.Render(cell)
			default:
				cell = st.chapter.Render(cell)
			}
			row = append(row, cell)
		}
	}
	flush()
	return lines, cursorLine
}
