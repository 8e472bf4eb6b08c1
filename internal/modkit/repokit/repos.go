// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"biblia/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction using the provided TxRunner
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// Migrate runs schema statements in order inside one transaction
func Migrate(ctx context.Context, tx TxRunner, stmts ...string) error {
	return WithTx(ctx, tx, func(q Queryer) error {
		for _, s := range stmts {
			if _, err := q.Exec(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
}
