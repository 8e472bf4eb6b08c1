// Package module wires bible lookups into the API using modkit
package module

import (
	modkit "biblia/internal/modkit"
	"biblia/internal/modkit/httpkit"

	"biblia/internal/adapters/provider/bibleapi"
	biblehttp "biblia/internal/services/api/bible/http"
	biblesvc "biblia/internal/services/api/bible/service"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	svc    biblesvc.Service
	client *bibleapi.Client
}

// New constructs the module. The provider client is built from BIBLE_ config
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	client := bibleapi.MustNew(bibleapi.FromConfig(deps.Cfg))
	return NewWithClient(deps, client, opts...)
}

// NewWithClient lets callers share one provider client
func NewWithClient(deps modkit.Deps, client *bibleapi.Client, opts ...modkit.Option) *Module {
	m := &Module{
		Base: modkit.NewBase([]modkit.Option{
			modkit.WithName("bible"),
			modkit.WithPrefix("/bible"),
		}, opts...),
		client: client,
		svc:    biblesvc.New(client, deps.Cfg.MayString("BIBLE_DEFAULT_REF", biblesvc.DefaultRef)),
	}
	m.Routes = func(r httpkit.Router) { biblehttp.Register(r, m.svc) }
	m.Export(Ports{Lookup: m.svc, Provider: client})
	return m
}
