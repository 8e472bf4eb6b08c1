// Package http provides http transport for bible lookups
package http

import (
	stdhttp "net/http"

	"biblia/internal/modkit/httpkit"
	"biblia/internal/services/api/bible/domain"
)

// Register mounts the lookup endpoints
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.GetQuery[domain.LookupInput](r, "/", h.get)
	httpkit.PostJSON[domain.LookupInput](r, "/lookup", h.lookup)
}

type handlers struct{ svc domain.ServicePort }

// swagger:route GET /bible Bible bibleGet
// @Summary Resolve a reference and fetch its text
// @Tags Bible
// @Produce json
// @Param ref query string false "Reference in Portuguese or English" default(Joao 3:16)
// @Success 200 {object} domain.Passage "ok"
// @Failure 404 {object} httpkit.Envelope "provider did not find the reference"
// @Router /bible [get]
func (h *handlers) get(r *stdhttp.Request, in domain.LookupInput) (any, error) {
	return h.svc.Lookup(r.Context(), in)
}

// swagger:route POST /bible/lookup Bible bibleLookup
// @Summary Resolve a reference sent as JSON
// @Tags Bible
// @Accept json
// @Produce json
// @Param payload body domain.LookupInput true "Reference"
// @Success 200 {object} domain.Passage "ok"
// @Router /bible/lookup [post]
func (h *handlers) lookup(r *stdhttp.Request, in domain.LookupInput) (any, error) {
	return h.svc.Lookup(r.Context(), in)
}
