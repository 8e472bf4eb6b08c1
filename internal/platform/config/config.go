// Package config handles application configuration via environment variables,
// optionally layered over values loaded from a YAML or JSON file
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"biblia/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g., "BIBLE_", "CORE_API_")
// Use New() for global access, or Prefix("BIBLE_") for module scopes.
// Environment always wins; file values only fill keys the environment leaves empty.
type Conf struct {
	prefix string
	file   map[string]string
}

// New creates a root Conf (no prefix, no file layer)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("BIBLE_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, file: c.file} }

// WithValues returns a copy whose lookups fall back to vals (fully-qualified keys)
func (c Conf) WithValues(vals map[string]string) Conf {
	merged := make(map[string]string, len(c.file)+len(vals))
	for k, v := range c.file {
		merged[k] = v
	}
	for k, v := range vals {
		merged[strings.ToUpper(k)] = v
	}
	return Conf{prefix: c.prefix, file: merged}
}

// key composes the fully-qualified env var name
func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed env value, then the file value, then ""
func (c Conf) lookup(key string) string {
	k := c.key(key)
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return strings.TrimSpace(c.file[k])
}

// Has reports whether key resolves to a non-empty value in either layer
func (c Conf) Has(key string) bool { return c.lookup(key) != "" }

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required config")
	}
	return v
}

// MustURL panics if the given key is missing, empty, or not a valid absolute URL
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid absolute URL")
	}
	return u
}

// MayURL returns the parsed value or def; panics on a present but invalid URL
func (c Conf) MayURL(key, def string) *url.URL {
	if !c.Has(key) {
		u, err := url.Parse(def)
		if err != nil {
			logger.Get().Panic().Str("key", c.key(key)).Str("value", def).Msg("invalid default URL")
		}
		return u
	}
	return c.MustURL(key)
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayPort returns a net/http addr like ":4000"; accepts "4000" or ":4000"
// invalid values log and fall back to def
func (c Conf) MayPort(key, def string) string {
	s := strings.TrimPrefix(c.lookup(key), ":")
	if s == "" {
		return def
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Str("default", def).Msg("invalid TCP port; using default")
		return def
	}
	return ":" + s
}

// MayCSV returns a slice of strings from a comma-separated value; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum ensures value is one of allowed; returns def if empty; panics if invalid.
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return "" // unreachable
}
