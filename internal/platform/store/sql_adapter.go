package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"biblia/internal/platform/logger"
)

// sqliteAdapter wraps *sql.DB and implements RowQuerier + TxRunner
// statements are logged at debug when LogSQL is set and at warn when slow
type sqliteAdapter struct {
	db     *sql.DB
	log    logger.Logger
	slow   time.Duration
	logSQL bool
}

func newSQLiteAdapter(db *sql.DB, log logger.Logger, slow time.Duration, logSQL bool) *sqliteAdapter {
	return &sqliteAdapter{db: db, log: log, slow: slow, logSQL: logSQL}
}

func (a *sqliteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.db == nil {
		return errors.New("sqlite: nil adapter")
	}
	return a.db.PingContext(ctx)
}

func (a *sqliteAdapter) Close() error { return a.db.Close() }

func (a *sqliteAdapter) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	return execOn(ctx, a, a.db, q, args)
}

func (a *sqliteAdapter) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	return queryOn(ctx, a, a.db, q, args)
}

func (a *sqliteAdapter) QueryRow(ctx context.Context, q string, args ...any) Row {
	return queryRowOn(ctx, a, a.db, q, args)
}

func (a *sqliteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(txQuerier{a: a, tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// emit logs one statement
func (a *sqliteAdapter) emit(q string, start time.Time, err error) {
	if a == nil {
		return
	}
	elapsed := time.Since(start)
	slow := a.slow > 0 && elapsed >= a.slow
	if !a.logSQL && !slow && err == nil {
		return
	}
	evt := a.log.Debug()
	switch {
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		evt = a.log.Warn().Err(err)
	case slow:
		evt = a.log.Warn().Bool("slow", true)
	}
	evt.Str("sql", q).Dur("elapsed", elapsed).Msg("sql")
}

// execer is the surface shared by *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func execOn(ctx context.Context, a *sqliteAdapter, e execer, q string, args []any) (CommandTag, error) {
	start := time.Now()
	res, err := e.ExecContext(ctx, q, args...)
	a.emit(q, start, err)
	if err != nil {
		return nil, err
	}
	n, _ := res.RowsAffected()
	return tag{n: n}, nil
}

func queryOn(ctx context.Context, a *sqliteAdapter, e execer, q string, args []any) (Rows, error) {
	start := time.Now()
	rs, err := e.QueryContext(ctx, q, args...)
	a.emit(q, start, err)
	if err != nil {
		return nil, err
	}
	return rows{r: rs}, nil
}

func queryRowOn(ctx context.Context, a *sqliteAdapter, e execer, q string, args []any) Row {
	start := time.Now()
	r := e.QueryRowContext(ctx, q, args...)
	return row{
		r: r,
		after: func(scanErr error) {
			a.emit(q, start, scanErr)
		},
	}
}

// adapters for database/sql to our tiny Row/Rows/CommandTag

type row struct {
	r     *sql.Row
	after func(error)
}

func (x row) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return err
}

type rows struct{ r *sql.Rows }

func (x rows) Next() bool            { return x.r.Next() }
func (x rows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x rows) Err() error            { return x.r.Err() }
func (x rows) Close()                { _ = x.r.Close() }
func (x rows) Columns() []string {
	cols, _ := x.r.Columns()
	return cols
}

type tag struct{ n int64 }

func (t tag) String() string      { return fmt.Sprintf("OK %d", t.n) }
func (t tag) RowsAffected() int64 { return t.n }

// txQuerier satisfies RowQuerier inside a Tx and logs like the adapter does
type txQuerier struct {
	a  *sqliteAdapter
	tx *sql.Tx
}

func (t txQuerier) Exec(ctx context.Context, q string, args ...any) (CommandTag, error) {
	return execOn(ctx, t.a, t.tx, q, args)
}

func (t txQuerier) Query(ctx context.Context, q string, args ...any) (Rows, error) {
	return queryOn(ctx, t.a, t.tx, q, args)
}

func (t txQuerier) QueryRow(ctx context.Context, q string, args ...any) Row {
	return queryRowOn(ctx, t.a, t.tx, q, args)
}
