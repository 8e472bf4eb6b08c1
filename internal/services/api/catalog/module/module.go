// Package module wires the book catalog into the API using modkit
package module

import (
	modkit "biblia/internal/modkit"
	"biblia/internal/modkit/httpkit"

	"biblia/internal/core/catalog"
	cathttp "biblia/internal/services/api/catalog/http"
	catsvc "biblia/internal/services/api/catalog/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc catsvc.Service
}

// New constructs the module over the built in catalog
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	return NewWithCatalog(deps, catalog.Default(), opts...)
}

// NewWithCatalog constructs the module over c
func NewWithCatalog(_ modkit.Deps, c catalog.Catalog, opts ...modkit.Option) *Module {
	m := &Module{
		Base: modkit.NewBase([]modkit.Option{
			modkit.WithName("catalog"),
			modkit.WithPrefix("/catalog"),
		}, opts...),
		svc: catsvc.New(c),
	}
	m.Routes = func(r httpkit.Router) { cathttp.Register(r, m.svc) }
	m.Export(Ports{Catalog: m.svc})
	return m
}
