package store

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the logged-in session of the terminal client in
// the local SQLite file. At most one session is stored.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrNoSession] when nothing is stored.
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}
