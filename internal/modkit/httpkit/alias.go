// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "biblia/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// WithHeader returns data as a 200 response carrying one extra header
func WithHeader(data any, key, value string) Response {
	resp := phttp.OK(data)
	resp.Header = http.Header{}
	resp.Header.Set(key, value)
	return resp
}

// Param reads a path parameter
func Param(r *http.Request, key string) string { return phttp.URLParam(r, key) }

// Handle adapts a Response returning func to a handler
func Handle(h func(*http.Request) Response) http.HandlerFunc { return phttp.Handle(h) }
