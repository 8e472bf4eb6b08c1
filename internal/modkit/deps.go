package modkit

import (
	"biblia/internal/modkit/repokit"
	"biblia/internal/platform/config"
	"biblia/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// DB is the prefs database, nil when persistence is disabled
	DB repokit.TxRunner
}

// HasDB reports whether a database seam was wired
func (d Deps) HasDB() bool { return d.DB != nil }
