package bibleapi

import (
	"errors"
	"fmt"
)

// ProviderError is a non-2xx answer from the text provider
type ProviderError struct {
	Status int
	Body   string
	Ref    string
}

// Error implements error
func (e *ProviderError) Error() string {
	return fmt.Sprintf("bible provider returned %d for %q", e.Status, e.Ref)
}

// HTTPStatus lets the API layer pass the provider status through
func (e *ProviderError) HTTPStatus() int { return e.Status }

// AsProviderError unwraps a *ProviderError from err
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
