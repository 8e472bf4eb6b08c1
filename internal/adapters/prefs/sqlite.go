package prefs

import (
	"context"
	"errors"
	"time"

	"biblia/internal/modkit/repokit"
	perr "biblia/internal/platform/errors"
	"biblia/internal/platform/logger"
	"biblia/internal/platform/store"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS prefs (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

const (
	getSQL = `SELECT value FROM prefs WHERE key = ?`
	setSQL = `INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

// queries is the repo bound to one Queryer
type queries struct{ q repokit.Queryer }

var binder repokit.Binder[queries] = repokit.BindFunc[queries](func(q repokit.Queryer) queries {
	return queries{q: q}
})

func (r queries) get(ctx context.Context, key string) (string, bool, error) {
	v, err := store.Scalar[string](ctx, r.q, getSQL, key)
	switch {
	case errors.Is(err, perr.ErrNotFound):
		return "", false, nil
	case err != nil:
		return "", false, perr.FromSQLite(err, "read pref "+key)
	}
	return v, true, nil
}

// set upserts one row; sqlite counts the conflict update as one change too
func (r queries) set(ctx context.Context, key, value string, at time.Time) error {
	if err := store.ExecOne(ctx, r.q, setSQL, key, value, at.UTC().Format(time.RFC3339Nano)); err != nil {
		return perr.FromSQLite(err, "write pref "+key)
	}
	return nil
}

// SQLite keeps prefs in the embedded database
type SQLite struct {
	db  repokit.TxRunner
	now func() time.Time
}

// NewSQLite migrates the prefs table on db
func NewSQLite(ctx context.Context, db repokit.TxRunner) (*SQLite, error) {
	if db == nil {
		return nil, perr.Storagef("prefs: nil database")
	}
	if err := repokit.Migrate(ctx, db, schema...); err != nil {
		return nil, perr.FromSQLite(err, "migrate prefs")
	}
	return &SQLite{db: db, now: time.Now}, nil
}

// Open opens (creating if needed) the database file at path and migrates it.
// The returned close func releases the file
func Open(ctx context.Context, path string, log logger.Logger) (*SQLite, func(context.Context) error, error) {
	st, err := store.Open(ctx, store.Config{
		AppName: "biblia",
		SQLite:  store.SQLiteConfig{Path: path, SlowQuery: 250 * time.Millisecond},
	}, store.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	if st.DB == nil {
		return nil, nil, perr.Storagef("prefs: no database path")
	}
	kv, err := NewSQLite(ctx, st.DB)
	if err != nil {
		_ = st.Close(ctx)
		return nil, nil, err
	}
	return kv, st.Close, nil
}

// Get implements KV
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	return repokit.MustBind(binder, s.db).get(ctx, key)
}

// Set implements KV as an upsert
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return binder.Bind(q).set(ctx, key, value, s.now())
	})
}
