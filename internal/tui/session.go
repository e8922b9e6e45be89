package tui

import (
	"sync/atomic"

	"github.com/MKhiriev/dev-connector/models"
)

// sessionState is the logged-in session shared by all pages. It is written
// by the root model and read by commands running in their own goroutines.
type sessionState struct {
	current atomic.Pointer[models.Session]
}

func (s *sessionState) set(session models.Session) {
	s.current.Store(&session)
}

func (s *sessionState) get() models.Session {
	if session := s.current.Load(); session != nil {
		return *session
	}
	return models.Session{}
}

func (s *sessionState) clear() {
	s.current.Store(nil)
}

func (s *sessionState) userID() string {
	return s.get().User.ID
}
