// @title         biblia API
// @version       0.1.0
// @description   Resolves Portuguese scripture references and serves the book catalog

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biblia/internal/core/version"
	"biblia/internal/platform/config"
	"biblia/internal/platform/logger"
	phttp "biblia/internal/platform/net/http"
	"biblia/internal/platform/store"

	"biblia/internal/adapters/provider/bibleapi"
	"biblia/internal/services/api"
)

func main() {
	// bring up logging early
	lo := logger.FromEnv()
	if lo.Service == "" {
		lo.Service = version.Service
	}
	logger.Init(lo)

	if err := run(); err != nil {
		logger.Get().Error().Err(err).Msg("biblia-api stopped")
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	l := logger.Get()

	// root config layered over BIBLIA_CONFIG; CORE_API_* is the http scope
	root, err := config.Load("")
	if err != nil {
		return err
	}
	apiCfg := root.Prefix("CORE_API_")

	// the prefs database is optional here; when present /meta/ready checks it
	st, err := store.Open(ctx, store.Config{
		AppName: version.Service,
		SQLite: store.SQLiteConfig{
			Path:      root.MayString("BIBLIA_PREFS_PATH", ""),
			SlowQuery: 250 * time.Millisecond,
		},
	}, store.WithLogger(*l))
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	client, err := bibleapi.New(bibleapi.FromConfig(root))
	if err != nil {
		return err
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Client:         client,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	l.Info().Str("provider", client.Provider()).Str("version", version.Info().Version).Msg("starting")

	// run until a signal arrives
	return srv.Run(ctx)
}
