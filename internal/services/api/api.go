// Package api provides the HTTP API for the application
package api

import (
	"biblia/internal/platform/config"
	phttp "biblia/internal/platform/net/http"
	"biblia/internal/platform/store"

	"biblia/internal/adapters/provider/bibleapi"
	"biblia/internal/core/catalog"

	"biblia/internal/modkit"
	"biblia/internal/modkit/httpkit"
	"biblia/internal/modkit/module"
	"biblia/internal/modkit/swaggerkit"

	biblemod "biblia/internal/services/api/bible/module"
	catalogmod "biblia/internal/services/api/catalog/module"
	metamod "biblia/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config config.Conf

	// Store is optional; when it carries a database the readiness probe checks it
	Store *store.Store

	// Client is the provider client; nil builds one from BIBLE_ config
	Client *bibleapi.Client

	// Catalog defaults to the built in one when empty
	Catalog catalog.Catalog

	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Store != nil {
		deps.Log = opt.Store.Log
		deps.DB = opt.Store.DB
	}

	// bible owns the provider client; meta reads its health and settings
	var bible *biblemod.Module
	if opt.Client != nil {
		bible = biblemod.NewWithClient(deps, opt.Client)
	} else {
		bible = biblemod.New(deps)
	}
	provider := module.MustPortsOf[biblemod.ProviderPort](bible)

	cat := opt.Catalog
	if cat.Empty() {
		cat = catalog.Default()
	}

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Provider: provider})),
		bible,
		catalogmod.NewWithCatalog(deps, cat),
	}

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config.Prefix("CORE_API_")), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
