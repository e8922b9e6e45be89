package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration hits the unique
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrHandleAlreadyExists is returned when a profile is saved with a handle
	// taken by another user.
	ErrHandleAlreadyExists = errors.New("handle already exists")

	// ErrProfileAlreadyExists is returned when a second profile is created
	// for the same user.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	ErrUserNotFound       = errors.New("user was not found")
	ErrProfileNotFound    = errors.New("profile was not found")
	ErrExperienceNotFound = errors.New("experience entry was not found")
	ErrEducationNotFound  = errors.New("education entry was not found")
	ErrPostNotFound       = errors.New("post was not found")
	ErrCommentNotFound    = errors.New("comment was not found")

	// ErrAlreadyLiked is returned when the (post, user) like pair already exists.
	ErrAlreadyLiked = errors.New("post already liked by user")

	// ErrNotLiked is returned when removing a like that does not exist.
	ErrNotLiked = errors.New("post not liked by user")

	// ErrNoSession is returned by the client session store when nobody is logged in.
	ErrNoSession = errors.New("no saved session")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
