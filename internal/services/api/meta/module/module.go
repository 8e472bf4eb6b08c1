// Package module wires meta endpoints into the API using modkit
package module

import (
	"time"

	modkit "biblia/internal/modkit"
	"biblia/internal/modkit/httpkit"

	"biblia/internal/adapters/provider/bibleapi"
	"biblia/internal/core/version"
	metahttp "biblia/internal/services/api/meta/http"
)

// Ports are injected by the composer via modkit.WithPorts
type Ports struct {
	// Provider is the bible module's provider port, optional
	Provider interface {
		metahttp.Pinger
		Status() bibleapi.ConfigStatus
	}
}

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{
		Base: modkit.NewBase([]modkit.Option{
			modkit.WithName("meta"),
			modkit.WithPrefix("/meta"),
		}, opts...),
		startedAt: time.Now(),
	}

	d := metahttp.Deps{
		ServiceName: version.Service,
		StartedAt:   m.startedAt,
	}
	if deps.HasDB() {
		d.DB = deps.DB
	}
	if p, ok := m.Injected().(Ports); ok && p.Provider != nil {
		d.Provider = p.Provider
		d.Config = p.Provider.Status
	}

	m.Routes = func(r httpkit.Router) { metahttp.Register(r, d) }
	return m
}
