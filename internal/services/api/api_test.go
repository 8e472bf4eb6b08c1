package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"biblia/internal/adapters/provider/bibleapi"
	"biblia/internal/modkit/module"
	"biblia/internal/platform/config"
	phttp "biblia/internal/platform/net/http"
	"biblia/internal/platform/testkit"
	catmod "biblia/internal/services/api/catalog/module"
)

func newAPI(t *testing.T, upstream string, swagger bool) http.Handler {
	t.Helper()
	module.Reset()
	t.Cleanup(module.Reset)

	client, err := bibleapi.New(bibleapi.Options{BaseURL: upstream, APIKey: "secret-key-123"})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{
		Config:        config.New(),
		Client:        client,
		EnableSwagger: swagger,
	})
	return mux
}

func call(t *testing.T, h http.Handler, target string) (*httptest.ResponseRecorder, phttp.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env phttp.Envelope
	if rec.Header().Get("Content-Type") != "" && rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func TestMount_Routes(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{"reference":"John 3:16","text":"Porque Deus amou o mundo"}`)
	h := newAPI(t, up.URL, false)

	cases := []struct {
		target string
		status int
	}{
		{"/api/v1/bible?ref=" + url.QueryEscape("João 3:16"), http.StatusOK},
		{"/api/v1/catalog?q=joao", http.StatusOK},
		{"/api/v1/catalog/books/Ruth", http.StatusOK},
		{"/api/v1/catalog/books/Tobit", http.StatusNotFound},
		{"/api/v1/meta/health", http.StatusOK},
		{"/api/v1/meta/config", http.StatusOK},
		{"/api/docs/doc.json", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			rec, env := call(t, h, tc.target)
			if rec.Code != tc.status {
				t.Fatalf("status %d want %d: %s", rec.Code, tc.status, rec.Body.String())
			}
			if tc.status == http.StatusOK && env.RequestID == "" {
				t.Fatalf("missing request id: %s", rec.Body.String())
			}
		})
	}
}

func TestMount_ConfigMasksKey(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{}`)
	rec, _ := call(t, newAPI(t, up.URL, false), "/api/v1/meta/config")
	body := rec.Body.String()
	if !json.Valid(rec.Body.Bytes()) {
		t.Fatalf("body %s", body)
	}
	testkit.MustContain(t, body, `"hasKey":true`)
	if strings.Contains(body, "secret-key-123") {
		t.Fatalf("key leaked: %s", body)
	}
}

func TestMount_RegistersPorts(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{}`)
	_ = newAPI(t, up.URL, false)
	if _, ok := module.PortsAs[catmod.Ports]("catalog"); !ok {
		t.Fatalf("catalog ports not registered")
	}
}

func TestMount_Swagger(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{}`)
	rec, _ := call(t, newAPI(t, up.URL, true), "/api/docs/doc.json")
	if rec.Code != http.StatusOK || !json.Valid(rec.Body.Bytes()) {
		t.Fatalf("doc %d", rec.Code)
	}
}
