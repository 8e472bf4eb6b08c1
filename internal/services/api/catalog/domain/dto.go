// Package domain holds DTOs for the catalog http and service contracts
package domain

// SearchInput filters books by name
type SearchInput struct {
	Q string `query:"q" validate:"max=60" example:"co"`
}

// Book is one catalog entry
type Book struct {
	ID       string `json:"id" example:"1 Corinthians"`
	Name     string `json:"name" example:"1 Coríntios"`
	Chapters int    `json:"chapters" example:"16"`
}

// Group is a named section of the catalog in display order
type Group struct {
	Name  string `json:"name" example:"Cartas Paulinas"`
	Books []Book `json:"books"`
}

// View is a filtered catalog. NoMatch means the query hid every book and the
// full catalog is returned instead
type View struct {
	Query   string  `json:"query"`
	NoMatch bool    `json:"no_match"`
	Groups  []Group `json:"groups"`
}

// Chapter is one selectable chapter with the reference it opens
type Chapter struct {
	Number int    `json:"number" example:"13"`
	Label  string `json:"label" example:"1 Coríntios 13"`
	Ref    string `json:"ref" example:"1 Corinthians 13"`
}

// BookDetail is a single book with its group and chapters
type BookDetail struct {
	Book
	Group        string    `json:"group"`
	ChapterLinks []Chapter `json:"chapter_list"`
}
