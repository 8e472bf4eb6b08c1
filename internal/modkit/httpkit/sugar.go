package httpkit

import (
	"net/http"

	phttp "biblia/internal/platform/net/http"
)

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// GetQuery binds the query string into T before calling h
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.GetQuery(r, path, h)
}

// PostJSON mounts a pure JSON handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}
