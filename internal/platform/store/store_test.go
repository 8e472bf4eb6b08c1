package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	perr "biblia/internal/platform/errors"

	"github.com/rs/zerolog"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")
	s, err := Open(context.Background(), Config{SQLite: SQLiteConfig{Path: path, LogSQL: true}}, WithLogger(zerolog.Nop()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestOpen_NoPathLeavesDBNil(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.DB != nil {
		t.Fatalf("expected nil DB, got %T", s.DB)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close on empty store: %v", err)
	}
}

func TestGuard_NilStore(t *testing.T) {
	var s *Store
	if err := s.Guard(context.Background()); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestOpen_OptionErrorBubbles(t *testing.T) {
	boom := errors.New("boom")
	_, err := Open(context.Background(), Config{}, func(*Store) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected option error, got %v", err)
	}
}

func TestSQLite_ExecQueryAndTx(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	if err := s.Guard(ctx); err != nil {
		t.Fatalf("Guard: %v", err)
	}

	if _, err := s.DB.Exec(ctx, `CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := ExecOne(ctx, s.DB, `INSERT INTO kv (k, v) VALUES (?, ?)`, "a", "1"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := Scalar[string](ctx, s.DB, `SELECT v FROM kv WHERE k = ?`, "a")
	if err != nil || got != "1" {
		t.Fatalf("Scalar = %q, %v", got, err)
	}
	if _, err := Scalar[string](ctx, s.DB, `SELECT v FROM kv WHERE k = ?`, "missing"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// a failing tx leaves nothing behind
	boom := errors.New("boom")
	err = s.DB.Tx(ctx, func(q RowQuerier) error {
		if _, err := q.Exec(ctx, `INSERT INTO kv (k, v) VALUES ('b', '2')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected tx error, got %v", err)
	}
	if _, err := Scalar[string](ctx, s.DB, `SELECT v FROM kv WHERE k = 'b'`); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("rolled back row visible: %v", err)
	}

	err = s.DB.Tx(ctx, func(q RowQuerier) error {
		return ExecOne(ctx, q, `INSERT INTO kv (k, v) VALUES ('c', '3')`)
	})
	if err != nil {
		t.Fatalf("commit tx: %v", err)
	}

	n, err := Scalar[int](ctx, s.DB, `SELECT COUNT(*) FROM kv`)
	if err != nil || n != 2 {
		t.Fatalf("rows = %d, %v", n, err)
	}

	rs, err := s.DB.Query(ctx, `SELECT k, v FROM kv`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if cols := rs.Columns(); len(cols) != 2 || cols[0] != "k" {
		t.Fatalf("columns = %v", cols)
	}
	rs.Close()
}

func TestExecOne_RejectsZeroRows(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	if _, err := s.DB.Exec(ctx, `CREATE TABLE t (id INTEGER)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := ExecOne(ctx, s.DB, `UPDATE t SET id = 2 WHERE id = 1`); err == nil {
		t.Fatal("expected error for zero rows affected")
	}
}

func TestSQLite_ConstraintMapsToInvalidArgument(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	if _, err := s.DB.Exec(ctx, `CREATE TABLE u (k TEXT PRIMARY KEY)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.DB.Exec(ctx, `INSERT INTO u VALUES ('x')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	_, err := s.DB.Exec(ctx, `INSERT INTO u VALUES ('x')`)
	if err == nil {
		t.Fatal("expected constraint error")
	}
	if got := perr.CodeOf(perr.FromSQLite(err, "insert")); got != perr.ErrorCodeInvalidArgument {
		t.Fatalf("code = %v", got)
	}
}

func TestDSN(t *testing.T) {
	if got := dsn(SQLiteConfig{Path: ":memory:"}); !strings.HasPrefix(got, "file::memory:?") || strings.Contains(got, "journal_mode") {
		t.Fatalf("memory dsn = %q", got)
	}
	got := dsn(SQLiteConfig{Path: "/tmp/x.db"})
	if !strings.HasPrefix(got, "file:/tmp/x.db?") || !strings.Contains(got, "busy_timeout%285000%29") {
		t.Fatalf("file dsn = %q", got)
	}
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), Config{SQLite: SQLiteConfig{Path: ":memory:"}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = s.Close(context.Background()) }()
	n, err := Scalar[int](context.Background(), s.DB, `SELECT 1`)
	if err != nil || n != 1 {
		t.Fatalf("SELECT 1 = %d, %v", n, err)
	}
}
