package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Names of the unique constraints declared in migrations/.
const (
	constraintUsersEmail     = "users_email_key"
	constraintProfilesHandle = "profiles_handle_key"
	constraintProfilesUser   = "profiles_user_id_key"
)

// postgresError returns the SQLSTATE code of err when it came from Postgres.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translatePgError maps the Postgres errors the repositories can provoke to
// domain sentinels. A foreign key violation or a malformed uuid means the
// referenced row does not exist, so both become notFound. It returns nil
// for anything it does not recognise.
func translatePgError(err error, notFound error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return ErrEmailAlreadyExists
		case constraintProfilesHandle:
			return ErrHandleAlreadyExists
		case constraintProfilesUser:
			return ErrProfileAlreadyExists
		}
	case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
		return notFound
	}

	return nil
}
