package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// sessionRepository is the SQLite-backed [SessionRepository].
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] over the client DB.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSession replaces the stored session. A zero SavedAt is set to now.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now().UTC()
	}

	query, args, err := buildSaveSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildLoadSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&s.Token, &s.User.ID, &s.User.Name, &s.User.Email, &s.User.Avatar, &s.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := buildClearSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
