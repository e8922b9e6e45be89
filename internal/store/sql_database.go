package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/migrations"
)

// DB wraps a [sql.DB] opened by one of the NewConnect* functions.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// querier is the subset of [sql.DB] and [sql.Tx] the repositories read with,
// so the same loaders run inside and outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Migrate applies the Postgres server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the SQLite session schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// inTx runs fn in a transaction that is committed when fn returns nil and
// rolled back otherwise.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
