package models

import "time"

// Session is what the terminal client remembers between runs: the bearer
// token returned by login and a snapshot of the user it belongs to.
type Session struct {
	Token   string
	User    CurrentUser
	SavedAt time.Time
}

// Valid reports whether the session carries a token and a user id.
func (s Session) Valid() bool {
	return s.Token != "" && s.User.ID != ""
}
