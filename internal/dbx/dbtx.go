// Package dbx holds the database plumbing shared by the client (SQLite) and
// server (Postgres) repositories.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is implemented by both *sql.DB and *sql.Tx, so a repository bound to
// it works the same inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFunc is the body of a transaction. Repositories must be bound to tx,
// not to the outer *sql.DB.
type TxFunc func(ctx context.Context, tx DBTX) error

// ReadOnly is the option set for snapshot reads such as a pull.
var ReadOnly = &sql.TxOptions{ReadOnly: true}

// WithTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back when fn fails or panics. A panic is re-raised after the rollback.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return repo(tx).Insert(ctx, n)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn TxFunc) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	done := false
	defer func() {
		if done {
			return
		}
		rbErr := tx.Rollback()
		if err != nil && rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	done = true
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// WithReadTx is WithTx with ReadOnly options.
func WithReadTx(ctx context.Context, db *sql.DB, fn TxFunc) error {
	return WithTx(ctx, db, ReadOnly, fn)
}
