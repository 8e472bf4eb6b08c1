package httpkit_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"biblia/internal/modkit/httpkit"
	"biblia/internal/platform/config"
	phttp "biblia/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type lookup struct {
	Ref string `json:"ref" validate:"required"`
}

type search struct {
	Q string `query:"q"`
}

func TestMountAPIV1_WithCommonStack(t *testing.T) {
	cfg := config.New().WithValues(map[string]string{"CORS_ORIGINS": "https://app.example"})
	mux := chi.NewRouter()
	httpkit.MountAPIV1(phttp.AdaptChi(mux), httpkit.CommonStack(cfg), func(api httpkit.Router) {
		httpkit.Get(api, "/ping", func(*http.Request) (any, error) { return "pong", nil })
		httpkit.GetQuery(api, "/search", func(_ *http.Request, in search) (any, error) { return in.Q, nil })
		httpkit.PostJSON(api, "/lookup", func(_ *http.Request, in lookup) (any, error) {
			return httpkit.WithHeader(in.Ref, "X-Ref", in.Ref), nil
		})
		api.Get("/books/{id}", httpkit.Handle(func(r *http.Request) httpkit.Response {
			return httpkit.OK(httpkit.Param(r, "id"))
		}))
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("ping = %d", rec.Code)
	}
	var env httpkit.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data != "pong" || env.RequestID == "" || rec.Header().Get("X-Request-ID") != env.RequestID {
		t.Fatalf("envelope %+v header %q", env, rec.Header().Get("X-Request-ID"))
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search?q=sal", nil))
	if !strings.Contains(rec.Body.String(), `"data":"sal"`) {
		t.Fatalf("search body %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/lookup", strings.NewReader(`{"ref":"Jo 1"}`)))
	if rec.Code != http.StatusOK || rec.Header().Get("X-Ref") != "Jo 1" {
		t.Fatalf("lookup %d %v", rec.Code, rec.Header())
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/books/John", nil))
	if !strings.Contains(rec.Body.String(), `"data":"John"`) {
		t.Fatalf("param body %s", rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ping", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Header().Get("Access-Control-Allow-Origin") != "https://app.example" {
		t.Fatalf("cors headers %v", rec.Header())
	}
}

func TestMountAPI_TrimsVersion(t *testing.T) {
	mux := chi.NewRouter()
	httpkit.MountAPI(phttp.AdaptChi(mux), "/v2/", nil, func(api httpkit.Router) {
		api.Get("/x", httpkit.Handle(func(*http.Request) httpkit.Response { return httpkit.NoContent() }))
	})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/x", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestError_UsesErrorStatus(t *testing.T) {
	h := httpkit.Handle(func(*http.Request) httpkit.Response { return httpkit.Error(http.ErrNoCookie) })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rec.Code)
	}
}
