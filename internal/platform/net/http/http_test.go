package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"biblia/internal/platform/config"
	perr "biblia/internal/platform/errors"
	pnet "biblia/internal/platform/net"
	phttp "biblia/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestRouterAdapterAndHelpers(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req.WithContext(pnet.WithRequest(req.Context(), "rid-7")))
		})
	})

	type in struct {
		Ref string `json:"ref" validate:"required"`
	}
	type q struct {
		Q string `query:"q"`
	}

	r.Route("/api", func(api phttp.Router) {
		api.Group(func(g phttp.Router) {
			phttp.GetJSON(g, "/ok", func(*http.Request) (any, error) { return map[string]string{"a": "b"}, nil })
			phttp.GetJSON(g, "/missing", func(*http.Request) (any, error) { return nil, perr.NotFoundf("no such book") })
			phttp.GetJSON(g, "/books/{id}", func(r *http.Request) (any, error) { return phttp.URLParam(r, "id"), nil })
			phttp.GetQuery(g, "/search", func(_ *http.Request, v q) (any, error) { return v.Q, nil })
			phttp.PostJSON(g, "/lookup", func(_ *http.Request, v in) (any, error) { return v.Ref, nil })
			g.Get("/empty", phttp.Handle(func(*http.Request) phttp.Response { return phttp.NoContent() }))
			g.Options("/opt", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
		})
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "raw") }))

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		var rd io.Reader
		if body != "" {
			rd = strings.NewReader(body)
		}
		r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, rd))
		return rec
	}

	rec := serve(http.MethodGet, "/api/ok", "")
	env := decode(t, rec)
	if rec.Code != http.StatusOK || env.RequestID != "rid-7" || rec.Header().Get("X-MW") != "yes" {
		t.Fatalf("ok route: %d %+v", rec.Code, env)
	}

	rec = serve(http.MethodGet, "/api/missing", "")
	env = decode(t, rec)
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.Error != "no such book" {
		t.Fatalf("missing route: %d %+v", rec.Code, env)
	}

	if env = decode(t, serve(http.MethodGet, "/api/books/John", "")); env.Data != "John" {
		t.Fatalf("url param: %+v", env)
	}
	if env = decode(t, serve(http.MethodGet, "/api/search?q=jo", "")); env.Data != "jo" {
		t.Fatalf("query bind: %+v", env)
	}
	if env = decode(t, serve(http.MethodPost, "/api/lookup", `{"ref":"Jo 1"}`)); env.Data != "Jo 1" {
		t.Fatalf("json bind: %+v", env)
	}
	rec = serve(http.MethodPost, "/api/lookup", `{}`)
	if rec.Code != http.StatusBadRequest || decode(t, rec).Field != "ref" {
		t.Fatalf("validation: %d %s", rec.Code, rec.Body.String())
	}
	if rec = serve(http.MethodGet, "/api/empty", ""); rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("no content: %d %q", rec.Code, rec.Body.String())
	}
	if rec = serve(http.MethodOptions, "/api/opt", ""); rec.Code != http.StatusAccepted {
		t.Fatalf("options: %d", rec.Code)
	}
	if rec = serve(http.MethodGet, "/raw", ""); rec.Body.String() != "raw" {
		t.Fatalf("handle: %q", rec.Body.String())
	}
}

type carrier struct{}

func (carrier) Error() string   { return "upstream said no" }
func (carrier) HTTPStatus() int { return http.StatusNotFound }

func TestResponseHeadersAndErrors(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{
			Body:   perr.Wrap(carrier{}, perr.ErrorCodeUpstream, "Bible API error"),
			Header: http.Header{"X-Source": []string{"bible-api.com"}},
		}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	env := decode(t, rec)
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeUpstream || env.Error != "Bible API error" {
		t.Fatalf("carrier status not used: %d %+v", rec.Code, env)
	}
	if rec.Header().Get("X-Source") != "bible-api.com" {
		t.Fatalf("header missing")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	phttp.RespondError(rec, req, perr.InvalidArgf("bad"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("RespondError = %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	phttp.RespondOK(rec, req, 1)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("RespondOK = %d", rec.Code)
	}
}

func TestProfilerAndSwaggerToggles(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	phttp.MountProfiler(r, "/debug", false)
	phttp.MountSwagger(r, "/docs", "/docs/doc.json", false)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("profiler mounted while disabled: %d", rec.Code)
	}

	m2 := chi.NewRouter()
	phttp.MountProfiler(phttp.AdaptChi(m2), "/debug", true)
	rec = httptest.NewRecorder()
	m2.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("profiler index = %d", rec.Code)
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	addr := freeAddr(t)
	t.Setenv("SRV_ADDR", addr)
	t.Setenv("SRV_SHUTDOWN_GRACE", "1s")

	called := false
	srv := phttp.NewServer(config.New().Prefix("SRV_"), func(*chi.Mux) { called = true })
	if !called || srv.Addr() != addr {
		t.Fatalf("option not called or addr mismatch: %v %s", called, srv.Addr())
	}
	phttp.GetJSON(srv.Router(), "/ping", func(*http.Request) (any, error) { return "pong", nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var res *http.Response
	var err error
	for i := 0; i < 50; i++ {
		res, err = http.Get("http://" + addr + "/ping")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never came up: %v", err)
	}
	_ = res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("ping = %d", res.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServer_DefaultPort(t *testing.T) {
	t.Setenv("DEF_PORT", "")
	t.Setenv("DEF_ADDR", "")
	if got := phttp.NewServer(config.New().Prefix("DEF_")).Addr(); got != ":4000" {
		t.Fatalf("default addr = %q", got)
	}
}
