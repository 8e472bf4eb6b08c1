// Package store provides the local persistence seam. The only backend is an
// embedded SQLite database used for user preferences
package store

import (
	"context"
	"errors"

	"biblia/internal/platform/logger"
)

// Store is the facade for optional backends
// zero value is safe but does nothing
type Store struct {
	// Log is the logger used by subclients
	// zero means a no op zerolog logger
	Log logger.Logger

	// DB is the sqlite seam, nil when no path is configured
	DB TxRunner
}

// Row exposes the minimal scan contract a single row needs
type Row interface {
	Scan(dest ...any) error
}

// Rows exposes the minimal iteration and scan for a result set
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
	Columns() []string
}

// CommandTag is a tiny interface to inspect command results
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier is the read and write surface repos use for sql
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner wraps transaction execution around a function
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Pinger is any seam that can report readiness
type Pinger interface{ Ping(context.Context) error }

// Open constructs a Store with the requested backends
// backends not enabled in cfg remain nil on the Store
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{}
	for _, o := range opts {
		if err := o(s); err != nil {
			return nil, err
		}
	}
	s.Log = s.Log.With().Str("component", "store").Logger()

	if cfg.SQLite.Path != "" {
		db, err := openSQLite(ctx, cfg.SQLite, s.Log)
		if err != nil {
			return nil, err
		}
		s.DB = db
	}
	return s, nil
}

// Guard pings every configured seam
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("nil store")
	}
	if p, ok := s.DB.(Pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return errors.Join(errors.New("sqlite"), err)
		}
	}
	return nil
}

// Close closes all initialized backends
// nil backends are ignored
func (s *Store) Close(context.Context) error {
	if s == nil {
		return nil
	}
	if c, ok := s.DB.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
