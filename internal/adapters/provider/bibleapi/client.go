// Package bibleapi is the HTTP client for the scripture text provider
// (bible-api.com or any host speaking the same shape)
package bibleapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"biblia/internal/core/browser"
	"biblia/internal/core/reference"
	perr "biblia/internal/platform/errors"
	"biblia/internal/platform/logger"
	str "biblia/internal/platform/strings"

	"github.com/google/uuid"
)

const maxBody = 4 << 20

// Result is one resolved passage
type Result struct {
	Text string `json:"text"`
	// SourceRef is the canonical reference actually sent upstream
	SourceRef    string `json:"ref"`
	ProviderName string `json:"source"`
	Translation  string `json:"translation"`
	// Matched is true when a book name table entry applied
	Matched bool `json:"matched"`
}

// Client talks to the provider. Safe for concurrent use
type Client struct {
	http *http.Client
	opts Options
	base *url.URL
	log  logger.Logger
	now  func() time.Time
}

// New creates a client. A base URL that does not parse is rejected
func New(o Options) (*Client, error) {
	o = o.withDefaults()
	u, err := url.Parse(o.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, perr.InvalidArgf("bible provider base url %q is not absolute", o.BaseURL)
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		base: u,
		log:  *logger.Named("bibleapi"),
		now:  time.Now,
	}, nil
}

// MustNew panics on bad options, for main wiring
func MustNew(o Options) *Client {
	c, err := New(o)
	if err != nil {
		panic(err)
	}
	return c
}

// Provider is the host name reported as the passage source
func (c *Client) Provider() string { return c.base.Host }

// endpoint builds {base}/{escaped ref}?translation={id}
func (c *Client) endpoint(canonical string) string {
	u := *c.base
	u.Path = c.base.Path + "/" + canonical
	u.RawPath = c.base.EscapedPath() + "/" + url.PathEscape(canonical)
	u.RawQuery = url.Values{"translation": {c.opts.Translation}}.Encode()
	return u.String()
}

// compose reports the table's own match when the composer can resolve,
// otherwise whether the reference was rewritten
func (c *Client) compose(rawRef string) (string, bool) {
	if r, ok := c.opts.Composer.(reference.Resolver); ok {
		res := r.Resolve(rawRef)
		return res.Canonical, res.Matched
	}
	canonical := c.opts.Composer.Compose(rawRef)
	return canonical, canonical != rawRef
}

// Fetch composes rawRef, asks the provider once and flattens the answer
func (c *Client) Fetch(ctx context.Context, rawRef string) (Result, error) {
	canonical, matched := c.compose(rawRef)
	res := Result{
		SourceRef:    canonical,
		ProviderName: c.Provider(),
		Translation:  c.opts.Translation,
		Matched:      matched,
	}
	log := logger.C(logger.WithRef(ctx, canonical)).With().Str("component", "bibleapi").Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(canonical), nil)
	if err != nil {
		return res, perr.Wrapf(err, perr.ErrorCodeUnknown, "bible provider request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("X-Request-ID", str.FirstNonEmpty(logger.RequestID(ctx), uuid.NewString()))
	if k, v := c.opts.authHeader(); k != "" {
		req.Header.Set(k, v)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		log.Warn().Err(err).Dur("latency", lat).Msg("bible provider unreachable")
		if errors.Is(err, context.DeadlineExceeded) {
			return res, perr.Wrapf(err, perr.ErrorCodeTimeout, "bible provider timed out")
		}
		return res, perr.Wrapf(err, perr.ErrorCodeUnavailable, "bible provider unreachable")
	}
	defer resp.Body.Close()

	log.Debug().
		Str("translation", c.opts.Translation).
		Bool("matched", matched).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("bible provider response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		pe := &ProviderError{Status: resp.StatusCode, Body: string(tail), Ref: canonical}
		return res, perr.Wrapf(pe, perr.CodeForStatus(resp.StatusCode), "Bible API error (%d)", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return res, perr.Wrapf(err, perr.ErrorCodeUnavailable, "bible provider body")
	}
	body := Decode(b)
	if m, ok := body.(Malformed); ok {
		log.Warn().Str("reason", m.Reason).Str("raw", str.Truncate(m.Raw, 120)).Msg("malformed provider payload")
	}
	res.Text = Flatten(body)
	return res, nil
}

// Retrieve adapts Fetch to the chapter browser
func (c *Client) Retrieve(ctx context.Context, ref string) (browser.Passage, error) {
	r, err := c.Fetch(ctx, ref)
	if err != nil {
		return browser.Passage{Ref: r.SourceRef}, err
	}
	return browser.Passage{Ref: r.SourceRef, Text: r.Text}, nil
}
