// Package http provides http transport for the book catalog
package http

import (
	stdhttp "net/http"
	"net/url"

	"biblia/internal/modkit/httpkit"
	"biblia/internal/services/api/catalog/domain"
)

// the catalog is fixed for the life of the process
const cacheControl = "public, max-age=3600"

// Register mounts the catalog endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.SearchInput](r, "/", h.search)
	httpkit.Get(r, "/books/{id}", h.book)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /catalog Catalog catalogSearch
// @Summary List books grouped by section, optionally filtered by name
// @Tags Catalog
// @Produce json
// @Param q query string false "Case and accent insensitive name filter"
// @Success 200 {object} domain.View "ok"
// @Router /catalog [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	v, err := h.svc.Search(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.WithHeader(v, "Cache-Control", cacheControl), nil
}

// swagger:route GET /catalog/books/{id} Catalog catalogBook
// @Summary Get one book with its chapters
// @Tags Catalog
// @Produce json
// @Param id path string true "Book id" example(1 Corinthians)
// @Success 200 {object} domain.BookDetail "ok"
// @Failure 404 {object} httpkit.Envelope "unknown book"
// @Router /catalog/books/{id} [get]
func (h *handlers) book(r *stdhttp.Request) (any, error) {
	id := httpkit.Param(r, "id")
	if u, err := url.PathUnescape(id); err == nil {
		id = u
	}
	return h.svc.Book(r.Context(), id)
}
