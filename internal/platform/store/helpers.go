package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	perr "biblia/internal/platform/errors"
)

// ExecOne runs a write and asserts exactly 1 row affected
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		return fmt.Errorf("expected exactly one row affected, got %d", n)
	}
	return nil
}

// Scalar queries the first row, first column into T
// a missing row maps to perr.ErrNotFound
func Scalar[T any](ctx context.Context, q RowQuerier, query string, args ...any) (T, error) {
	var v T
	if err := q.QueryRow(ctx, query, args...).Scan(&v); err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, perr.ErrNotFound
		}
		return zero, err
	}
	return v, nil
}
