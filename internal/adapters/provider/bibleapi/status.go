package bibleapi

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "biblia/internal/platform/errors"
	str "biblia/internal/platform/strings"
)

// ConfigStatus describes the provider settings without exposing secrets
type ConfigStatus struct {
	BaseURL     string `json:"baseUrl"`
	Translation string `json:"translation"`
	HasKey      bool   `json:"hasKey"`
	MaskedKey   string `json:"maskedKey"`
	HeaderName  string `json:"headerName"`
}

// Status reports the effective configuration
func (c *Client) Status() ConfigStatus { return c.opts.Status() }

// Status reports the effective configuration of o after defaults
func (o Options) Status() ConfigStatus {
	o = o.withDefaults()
	header := o.AuthHeader
	if header == "" && o.APIKey != "" {
		header = bearerHeaderName
	}
	return ConfigStatus{
		BaseURL:     o.BaseURL,
		Translation: o.Translation,
		HasKey:      o.APIKey != "",
		MaskedKey:   str.Mask(o.APIKey),
		HeaderName:  header,
	}
}

// Ping checks the provider answers at all. Any status below 500 counts
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.base.String(), nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "bible provider ping")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "bible provider unreachable")
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
	_ = resp.Body.Close()
	if resp.StatusCode >= 500 {
		return perr.Newf(perr.ErrorCodeUnavailable, "bible provider ping status %d", resp.StatusCode)
	}
	return nil
}
