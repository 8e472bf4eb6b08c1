package reference

// Composer turns a raw reference into the canonical reference sent upstream
type Composer interface {
	Compose(raw string) string
}

// ComposerFunc adapts a plain function
type ComposerFunc func(raw string) string

// Compose implements Composer
func (f ComposerFunc) Compose(raw string) string { return f(raw) }

// Resolver is implemented by composers that can report how a reference
// was resolved, not only the resulting string
type Resolver interface {
	Resolve(raw string) Resolution
}

// TableComposer composes through a translation table
type TableComposer struct {
	Table *Table
}

// NewComposer returns a composer over t, or the default table when t is nil
func NewComposer(t *Table) TableComposer {
	if t == nil {
		t = defaultTable
	}
	return TableComposer{Table: t}
}

// Compose implements Composer
func (c TableComposer) Compose(raw string) string { return c.Resolve(raw).Canonical }

// Resolve implements Resolver
func (c TableComposer) Resolve(raw string) Resolution {
	t := c.Table
	if t == nil {
		t = defaultTable
	}
	return t.Translate(raw)
}

// Compose is the default composer as a function
func Compose(raw string) string { return defaultTable.Translate(raw).Canonical }
