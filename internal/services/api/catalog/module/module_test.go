package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "biblia/internal/modkit"
	perr "biblia/internal/platform/errors"
	phttp "biblia/internal/platform/net/http"
	"biblia/internal/services/api/catalog/domain"
)

func serve(t *testing.T, target string, into any) (*httptest.ResponseRecorder, perr.ErrorCode) {
	t.Helper()
	m := New(modkit.Deps{})
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	env := struct {
		Code perr.ErrorCode `json:"code"`
		Data any            `json:"data"`
	}{Data: into}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec, env.Code
}

func TestCatalogSearch(t *testing.T) {
	var v domain.View
	rec, _ := serve(t, "/catalog?q=salmo", &v)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("missing cache header")
	}
	if v.NoMatch || len(v.Groups) != 1 || v.Groups[0].Books[0].ID != "Psalms" || v.Groups[0].Books[0].Chapters != 150 {
		t.Fatalf("view %+v", v)
	}
}

func TestCatalogBook(t *testing.T) {
	var d domain.BookDetail
	rec, _ := serve(t, "/catalog/books/1%20Corinthians", &d)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d %s", rec.Code, rec.Body.String())
	}
	if d.ID != "1 Corinthians" || d.Chapters != 16 || len(d.ChapterLinks) != 16 || d.ChapterLinks[12].Ref != "1 Corinthians 13" {
		t.Fatalf("detail %+v", d)
	}
}

func TestCatalogBookMissing(t *testing.T) {
	rec, code := serve(t, "/catalog/books/Enoch", nil)
	if rec.Code != http.StatusNotFound || code != perr.ErrorCodeNotFound {
		t.Fatalf("status %d code %v", rec.Code, code)
	}
}
