package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	perr "biblia/internal/platform/errors"
	"biblia/internal/platform/logger"

	// registers the "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// dsn builds a modernc connection string with pragmas applied per connection
func dsn(c SQLiteConfig) string {
	busy := c.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))
	q.Add("_pragma", "foreign_keys(1)")
	if c.Path == memoryPath {
		return "file::memory:?" + q.Encode()
	}
	q.Add("_pragma", "journal_mode(WAL)")
	return "file:" + c.Path + "?" + q.Encode()
}

// openSQLite opens the database, creating its directory first, and pings it once
func openSQLite(ctx context.Context, c SQLiteConfig, log logger.Logger) (*sqliteAdapter, error) {
	if c.Path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeStorage, "create %s", filepath.Dir(c.Path))
		}
	}
	db, err := sql.Open("sqlite", dsn(c))
	if err != nil {
		return nil, perr.FromSQLite(err, "open sqlite")
	}
	// one writer at a time; a private in-memory db also needs a single connection
	db.SetMaxOpenConns(1)

	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, perr.FromSQLite(err, "ping sqlite")
	}
	log.Debug().Str("path", c.Path).Msg("sqlite opened")
	return newSQLiteAdapter(db, log, c.SlowQuery, c.LogSQL), nil
}
