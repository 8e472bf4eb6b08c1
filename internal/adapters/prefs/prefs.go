// Package prefs persists small client side values (the last opened chapter)
package prefs

import (
	"context"
	"os"
	"path/filepath"

	"biblia/internal/core/browser"
	"biblia/internal/platform/config"
)

// KV is the key/value port. It matches browser.KV so either backend can hold
// the last selection
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

var (
	_ KV         = (*Memory)(nil)
	_ KV         = (*SQLite)(nil)
	_ browser.KV = KV(nil)
)

// DefaultPath resolves BIBLIA_PREFS_PATH, falling back to the user config dir
// An empty result means no writable location was found
func DefaultPath(cfg config.Conf) string {
	if p := cfg.MayString("BIBLIA_PREFS_PATH", ""); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "biblia", "prefs.db")
}
