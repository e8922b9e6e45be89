package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

//go:embed client/*.sql
var embedClientMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies the server schema to a Postgres database.
func Migrate(db *sql.DB) error {
	return up(db, embedMigrations, "pgx", ".")
}

// MigrateClient applies the terminal client's session schema to SQLite.
func MigrateClient(db *sql.DB) error {
	return up(db, embedClientMigrations, "sqlite3", "client")
}

// goose keeps dialect and FS in package globals, so migrations must not run concurrently.
func up(db *sql.DB, fsys fs.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(fsys)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
