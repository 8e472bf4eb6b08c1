package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "biblia/internal/modkit"
	mod "biblia/internal/modkit/module"
	"biblia/internal/platform/config"
	perr "biblia/internal/platform/errors"
	phttp "biblia/internal/platform/net/http"
	"biblia/internal/platform/testkit"
	"biblia/internal/services/api/bible/domain"
)

type envelope struct {
	StatusCode int            `json:"status_code"`
	Code       perr.ErrorCode `json:"code"`
	Error      string         `json:"error"`
	Field      string         `json:"field"`
	Data       domain.Passage `json:"data"`
}

func mount(t *testing.T, base string, vals map[string]string) (*Module, http.Handler) {
	t.Helper()
	cfg := map[string]string{"BIBLE_API_BASE_URL": base}
	for k, v := range vals {
		cfg[k] = v
	}
	m := New(modkit.Deps{Cfg: config.New().WithValues(cfg)})
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	return m, mux
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env
}

func TestGet_ResolvesPortuguese(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{"reference":"John 3:16","text":"Porque Deus amou o mundo"}`)
	_, h := mount(t, up.URL, nil)

	code, env := do(t, h, http.MethodGet, "/bible?ref="+url.QueryEscape("João 3:16"), "")
	if code != http.StatusOK {
		t.Fatalf("status %d %+v", code, env)
	}
	if env.Data.Text != "Porque Deus amou o mundo" || env.Data.Ref != "John 3:16" || !env.Data.Matched {
		t.Fatalf("data %+v", env.Data)
	}
	if got := up.Last(t).RawPath; got != "/John%203:16" {
		t.Fatalf("upstream path %q", got)
	}
}

func TestGet_EmptyRefUsesConfiguredDefault(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{"reference":"Psalms 23","text":"O Senhor é o meu pastor"}`)
	_, h := mount(t, up.URL, map[string]string{"BIBLE_DEFAULT_REF": "Salmos 23"})

	code, _ := do(t, h, http.MethodGet, "/bible", "")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if got := up.Last(t).RawPath; got != "/Psalms%2023" {
		t.Fatalf("upstream path %q", got)
	}
}

func TestPostLookup(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{"verses":[{"verse":1,"text":"No princípio"},{"verse":2,"text":"A terra"}]}`)
	_, h := mount(t, up.URL, nil)

	code, env := do(t, h, http.MethodPost, "/bible/lookup", `{"ref":"Gênesis 1:1-2"}`)
	if code != http.StatusOK {
		t.Fatalf("status %d %+v", code, env)
	}
	if env.Data.Text != "1. No princípio\n2. A terra" {
		t.Fatalf("text %q", env.Data.Text)
	}
}

func TestProviderStatusPassesThrough(t *testing.T) {
	up := testkit.NewUpstream(t, 404, `{"error":"not found"}`)
	_, h := mount(t, up.URL, nil)

	code, env := do(t, h, http.MethodGet, "/bible?ref=Xyz+1", "")
	if code != http.StatusNotFound || env.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d %+v", code, env)
	}
	testkit.MustContain(t, env.Error, "404")
}

func TestValidation(t *testing.T) {
	up := testkit.NewUpstream(t, 200, `{}`)
	_, h := mount(t, up.URL, nil)

	code, env := do(t, h, http.MethodPost, "/bible/lookup", `{"ref":"`+strings.Repeat("a", 121)+`"}`)
	if code != http.StatusBadRequest || env.Field == "" {
		t.Fatalf("status %d %+v", code, env)
	}
	if n := len(up.Requests()); n != 0 {
		t.Fatalf("upstream called %d times", n)
	}
}

func TestPortsExported(t *testing.T) {
	m, _ := mount(t, "http://example.test", nil)
	if m.Name() != "bible" {
		t.Fatalf("name %q", m.Name())
	}
	if _, ok := mod.PortsOf[domain.ServicePort](m); !ok {
		t.Fatalf("lookup port missing")
	}
	p := mod.MustPortsOf[ProviderPort](m)
	if st := p.Status(); st.BaseURL != "http://example.test" {
		t.Fatalf("status %+v", st)
	}
}
