package middleware

import (
	"net/http"

	"biblia/internal/platform/logger"
	pnet "biblia/internal/platform/net"
)

// RequestLogger copies the chi request id into the logger context so logger.C
// tags every line a handler writes. It also mirrors the id on the response
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := pnet.RequestID(r.Context())
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), id)))
		})
	}
}
