// Package swaggerkit serves the OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	phttp "biblia/internal/platform/net/http"
)

const (
	docsPrefix = "/api/docs"
	docPath    = docsPrefix + "/doc.json"
)

// Mount the Swagger UI and JSON doc if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(docsPrefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPrefix+"/index.html", http.StatusPermanentRedirect)
	})
	r.Get(docPath, serveDocJSON)
	phttp.MountSwagger(r, docsPrefix, docPath, true)
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(doc))
}
