// Package browser is the chapter browser state machine: a filtered catalog
// view, one expanded book at a time, the active chapter and the passage panel.
// It is driven from a single event loop; only Fetch may run elsewhere
package browser

import "context"

// Passage is retrieved text plus the reference the provider resolved
type Passage struct {
	Ref  string
	Text string
}

// Retriever fetches the passage for a raw reference
type Retriever interface {
	Retrieve(ctx context.Context, ref string) (Passage, error)
}

// RetrieverFunc adapts a function
type RetrieverFunc func(ctx context.Context, ref string) (Passage, error)

// Retrieve implements Retriever
func (f RetrieverFunc) Retrieve(ctx context.Context, ref string) (Passage, error) {
	return f(ctx, ref)
}

// Selection is a book id and a chapter number
type Selection struct {
	BookID  string
	Chapter int
}

// IsZero reports an empty selection
func (s Selection) IsZero() bool { return s.BookID == "" && s.Chapter == 0 }

// SelectionStore persists the last chapter the user opened
// Load returns ok=false when nothing was stored yet
type SelectionStore interface {
	Load(ctx context.Context) (sel Selection, ok bool, err error)
	Save(ctx context.Context, sel Selection) error
}
