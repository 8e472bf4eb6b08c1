// Package domain holds DTOs for the bible lookup http and service contracts
package domain

// LookupInput is a free text reference; empty means the configured default
type LookupInput struct {
	Ref string `json:"ref" query:"ref" validate:"omitempty,max=120,scripture_ref" example:"João 3:16"`
}

// Passage is what the caller displays
type Passage struct {
	Text        string `json:"text" example:"Porque Deus amou o mundo de tal maneira..."`
	Ref         string `json:"ref" example:"John 3:16"`
	Source      string `json:"source" example:"bible-api.com"`
	Translation string `json:"translation" example:"almeida"`
	Matched     bool   `json:"matched" example:"true"`
}
