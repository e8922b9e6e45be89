package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, now: time.Now, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	a.logger.Info().Str("user_id", user.ID).Msg("registered new account")
	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	token, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.Session{}, mapAdapterError(err)
	}
	a.adapter.SetToken(token)

	user, err := a.adapter.CurrentUser(ctx)
	if err != nil {
		a.adapter.SetToken("")
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{Token: token, User: user, SavedAt: a.now()}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		// the session still works for this run
		a.logger.Err(err).Msg("failed to save session")
	}

	return session, nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrNoSession) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !session.Valid() {
		return models.Session{}, ErrNotLoggedIn
	}

	if a.expired(session.Token) {
		if err = a.sessions.ClearSession(ctx); err != nil {
			a.logger.Err(err).Msg("failed to clear expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// expired reports whether token is unreadable or past its exp claim.
func (a *clientAuthService) expired(token string) bool {
	claims, err := utils.ParseUnverifiedJWT(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !a.now().Before(claims.ExpiresAt.Time)
}
