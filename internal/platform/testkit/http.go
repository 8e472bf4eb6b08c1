package testkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Recorded is one request captured by a Upstream fake
type Recorded struct {
	Method   string
	Path     string
	RawPath  string
	RawQuery string
	Header   http.Header
	Body     string
}

// Upstream is an httptest server that replies with a canned status and body
// and remembers every request it saw
type Upstream struct {
	*httptest.Server

	mu     sync.Mutex
	status int
	body   string
	seen   []Recorded
}

// NewUpstream starts a fake upstream, closed automatically when the test ends
func NewUpstream(t *testing.T, status int, body string) *Upstream {
	t.Helper()
	u := &Upstream{status: status, body: body}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	u.mu.Lock()
	u.seen = append(u.seen, Recorded{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawPath:  r.URL.EscapedPath(),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     string(b),
	})
	status, body := u.status, u.body
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// Reply swaps the canned answer for subsequent requests
func (u *Upstream) Reply(status int, body string) {
	u.mu.Lock()
	u.status, u.body = status, body
	u.mu.Unlock()
}

// Requests returns a copy of the captured requests
func (u *Upstream) Requests() []Recorded {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Recorded(nil), u.seen...)
}

// Last returns the most recent request, failing the test when there was none
func (u *Upstream) Last(t *testing.T) Recorded {
	t.Helper()
	reqs := u.Requests()
	if len(reqs) == 0 {
		t.Fatalf("upstream saw no requests")
	}
	return reqs[len(reqs)-1]
}

// MustEqual fails with a readable diff when want and got differ
func MustEqual[T any](t *testing.T, want, got T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
