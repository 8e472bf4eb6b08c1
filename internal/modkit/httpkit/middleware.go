package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"biblia/internal/platform/config"
	"biblia/internal/platform/net/middleware"
)

// CommonStack returns the middleware every API scope mounts. cfg is the
// CORE_API_ scoped view; CORS_ORIGINS and REQUEST_TIMEOUT are read from it
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RealIP(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		// safety
		middleware.RecoverJSON,
		// observability
		middleware.AccessLog(middleware.AccessLogOptions{Slow: cfg.MayDuration("SLOW_REQUEST", 2*time.Second)}),
		// freshness; passages are cheap to refetch and the provider caches anyway
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil)}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second)),
	}
}
