package browser

import (
	"context"
	"errors"
	"fmt"

	"biblia/internal/core/catalog"
	perr "biblia/internal/platform/errors"
	"biblia/internal/platform/logger"
)

// Panel messages shown in place of passage text
const (
	MsgLoading   = "Carregando capítulo..."
	MsgNoContent = "Nenhum conteúdo disponível."
	msgErrPrefix = "Erro: "
)

// PanelState is what the output panel currently shows
type PanelState int

const (
	PanelIdle PanelState = iota
	PanelLoading
	PanelReady
	PanelFailed
)

func (s PanelState) String() string {
	switch s {
	case PanelLoading:
		return "loading"
	case PanelReady:
		return "ready"
	case PanelFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Panel is the output area
type Panel struct {
	State PanelState
	Text  string
	Ref   string
	Err   error

	// Retryable marks a failure that may clear up on its own (provider down,
	// rate limited, timed out, database busy)
	Retryable bool
}

// Ticket identifies one retrieval. Seq grows with every Select or Restore
type Ticket struct {
	Seq uint64
	Selection
	restored bool
}

// Ref is the raw reference sent to the retriever. Book ids are canonical
// already so the translator leaves it untouched
func (t Ticket) Ref() string { return fmt.Sprintf("%s %d", t.BookID, t.Chapter) }

// Outcome is a finished retrieval waiting to be applied
type Outcome struct {
	Ticket
	Passage Passage
	Err     error
}

// Option tweaks a Browser
type Option func(*Browser)

// WithLogger overrides the component logger
func WithLogger(l logger.Logger) Option { return func(b *Browser) { b.log = l } }

// Browser holds the per-session browsing state. It is not safe for
// concurrent use; Fetch is the one method that reads nothing mutable
type Browser struct {
	full      catalog.Catalog
	retriever Retriever
	store     SelectionStore
	log       logger.Logger

	query    string
	view     catalog.Catalog
	noMatch  bool
	expanded string
	active   Selection
	panel    Panel

	issued  uint64
	applied uint64
}

// New builds a browser showing the full catalog. store may be nil, in which
// case nothing is persisted
func New(c catalog.Catalog, r Retriever, store SelectionStore, opts ...Option) *Browser {
	b := &Browser{
		full:      c,
		retriever: r,
		store:     store,
		log:       *logger.Named("browser"),
		view:      c,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Catalog is the full catalog
func (b *Browser) Catalog() catalog.Catalog { return b.full }

// View is the catalog as currently filtered
func (b *Browser) View() catalog.Catalog { return b.view }

// Query is the current filter text
func (b *Browser) Query() string { return b.query }

// NoMatch is set when the query matched nothing and the full catalog is shown
func (b *Browser) NoMatch() bool { return b.noMatch }

// Expanded returns the expanded book id, or "" when all are collapsed
func (b *Browser) Expanded() string { return b.expanded }

// IsExpanded reports the state of one book
func (b *Browser) IsExpanded(bookID string) bool {
	return bookID != "" && b.expanded == bookID
}

// Active is the highlighted chapter, zero when none
func (b *Browser) Active() Selection { return b.active }

// IsActive reports whether chapter n of bookID is the highlighted one
func (b *Browser) IsActive(bookID string, n int) bool {
	return b.active.BookID == bookID && b.active.Chapter == n
}

// Panel is the output area
func (b *Browser) Panel() Panel { return b.panel }

// Toggle flips a visible book between collapsed and expanded. Expanding
// collapses whichever book was open. It returns the new expanded state
func (b *Browser) Toggle(bookID string) bool {
	if _, ok := b.view.Book(bookID); !ok {
		return false
	}
	if b.expanded == bookID {
		b.expanded = ""
		return false
	}
	b.expanded = bookID
	return true
}

// Reveal forces a book open, clearing the filter first when it hides the
// book. It reports whether the book exists at all
func (b *Browser) Reveal(bookID string) bool {
	if _, ok := b.full.Book(bookID); !ok {
		return false
	}
	if _, ok := b.view.Book(bookID); !ok {
		b.SetQuery("")
	}
	b.expanded = bookID
	return true
}

// SetQuery re-renders the view for q. Every render starts collapsed
func (b *Browser) SetQuery(q string) {
	b.query = q
	b.view, b.noMatch = b.full.Search(q)
	b.expanded = ""
}

// Select highlights chapter n of bookID, stores it as the last selection and
// puts the panel in the loading state. A failed save is logged, not returned
func (b *Browser) Select(ctx context.Context, bookID string, n int) (Ticket, error) {
	if _, ok := b.full.Book(bookID); !ok {
		return Ticket{}, perr.NotFoundf("book %q not in catalog", bookID)
	}
	if !b.full.ValidChapter(bookID, n) {
		return Ticket{}, perr.InvalidArgf("%s has no chapter %d", bookID, n)
	}
	sel := Selection{BookID: bookID, Chapter: n}
	if b.store != nil {
		if err := b.store.Save(ctx, sel); err != nil {
			b.log.Warn().Err(err).Str("book", bookID).Int("chapter", n).Msg("save last selection")
		}
	}
	return b.begin(sel, false), nil
}

// Restore reloads the last selection once, highlights it and starts its
// retrieval. A corrupt or unreadable record counts as no selection
func (b *Browser) Restore(ctx context.Context) (Ticket, bool) {
	if b.store == nil {
		return Ticket{}, false
	}
	sel, ok, err := b.store.Load(ctx)
	switch {
	case errors.Is(err, ErrStorageCorruption):
		b.log.Debug().Err(err).Msg("ignoring stored selection")
		return Ticket{}, false
	case err != nil:
		b.log.Warn().Err(err).Msg("load last selection")
		return Ticket{}, false
	case !ok:
		return Ticket{}, false
	}
	if _, known := b.full.Book(sel.BookID); known {
		b.expanded = sel.BookID
	}
	return b.begin(sel, true), true
}

func (b *Browser) begin(sel Selection, restored bool) Ticket {
	b.issued++
	b.active = sel
	b.panel = Panel{State: PanelLoading, Text: MsgLoading}
	return Ticket{Seq: b.issued, Selection: sel, restored: restored}
}

// Fetch runs the retrieval for t. It touches no browser state and may be
// called from any goroutine
func (b *Browser) Fetch(ctx context.Context, t Ticket) Outcome {
	out := Outcome{Ticket: t}
	if b.retriever == nil {
		out.Err = perr.Unavailablef("no retriever configured")
		return out
	}
	out.Passage, out.Err = b.retriever.Retrieve(ctx, t.Ref())
	return out
}

// Apply puts a finished retrieval on the panel. Results of superseded
// tickets are dropped and Apply returns false
func (b *Browser) Apply(o Outcome) bool {
	if o.Seq == 0 || o.Seq <= b.applied || o.Seq < b.issued {
		b.log.Debug().Uint64("seq", o.Seq).Uint64("latest", b.issued).Msg("dropping stale passage")
		return false
	}
	b.applied = o.Seq

	switch {
	case o.Err != nil && o.restored:
		b.log.Warn().Err(o.Err).Str("ref", o.Ref()).Msg("restore retrieval failed")
		b.panel = Panel{State: PanelFailed, Text: MsgNoContent, Err: o.Err, Retryable: perr.Retryable(o.Err)}
	case o.Err != nil:
		b.log.Warn().Err(o.Err).Str("ref", o.Ref()).Msg("retrieval failed")
		b.panel = Panel{State: PanelFailed, Text: msgErrPrefix + displayMessage(o.Err), Err: o.Err, Retryable: perr.Retryable(o.Err)}
	case o.Passage.Text == "":
		b.panel = Panel{State: PanelReady, Text: MsgNoContent, Ref: o.Passage.Ref}
	default:
		b.panel = Panel{State: PanelReady, Text: o.Passage.Text, Ref: o.Passage.Ref}
	}
	return true
}

// Open is Select, Fetch and Apply in one call for non interactive callers
func (b *Browser) Open(ctx context.Context, bookID string, n int) (Panel, error) {
	t, err := b.Select(ctx, bookID, n)
	if err != nil {
		return b.panel, err
	}
	o := b.Fetch(ctx, t)
	b.Apply(o)
	return b.panel, o.Err
}

// displayMessage prefers the human message of platform errors
func displayMessage(err error) string {
	if e, ok := perr.As(err); ok {
		return e.Message()
	}
	return err.Error()
}
