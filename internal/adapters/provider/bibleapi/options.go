package bibleapi

import (
	"net/http"
	"strings"
	"time"

	"biblia/internal/core/reference"
	"biblia/internal/platform/config"
)

const (
	baseURLDefault     = "https://bible-api.com"
	translationDefault = "almeida"
	defaultUA          = "biblia/1 (+https://bible-api.com)"

	// shown in the status probe when a key goes out as a bearer token
	bearerHeaderName = "Authorization (Bearer)"
)

// Options configures the Client
type Options struct {
	BaseURL     string
	Translation string

	// APIKey is optional. With AuthHeader set it is sent under that header,
	// otherwise as Authorization: Bearer
	APIKey     string
	AuthHeader string

	UserAgent string

	// Timeout caps each request when positive. Zero leaves the caller's
	// context as the only deadline
	Timeout time.Duration

	// Composer rewrites raw references; the Portuguese table when nil
	Composer reference.Composer

	// HTTPClient overrides the transport, mostly for tests
	HTTPClient *http.Client
}

// FromConfig reads the BIBLE_ scoped settings from the root conf
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("BIBLE_")
	return Options{
		BaseURL:     c.MayString("API_BASE_URL", baseURLDefault),
		Translation: c.MayString("TRANSLATION", translationDefault),
		APIKey:      c.MayString("API_KEY", ""),
		AuthHeader:  c.MayString("API_HOST_HEADER", ""),
		Timeout:     c.MayDuration("API_TIMEOUT", 0),
	}
}

func (o Options) withDefaults() Options {
	o.BaseURL = strings.TrimRight(strings.TrimSpace(o.BaseURL), "/")
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if strings.TrimSpace(o.Translation) == "" {
		o.Translation = translationDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout < 0 {
		o.Timeout = 0
	}
	if o.Composer == nil {
		o.Composer = reference.NewComposer(nil)
	}
	return o
}

// authHeader returns the header name and value to send, or "" for none
func (o Options) authHeader() (string, string) {
	switch {
	case o.APIKey != "" && o.AuthHeader != "":
		return o.AuthHeader, o.APIKey
	case o.APIKey != "":
		return "Authorization", "Bearer " + o.APIKey
	default:
		return "", ""
	}
}
