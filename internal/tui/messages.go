package tui

import (
	"github.com/MKhiriev/dev-connector/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names registered in [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
	pagePosts     = "posts"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form.
type LoginResult struct {
	Session models.Session
	Err     error
}

// LogoutResult is produced when the user logs out from the dashboard.
type LogoutResult struct {
	Err error
}

// LoggedOutNotice is delivered to the menu after a logout.
type LoggedOutNotice struct {
	Err error
}

// RegisterResult is produced by the registration form.
type RegisterResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is delivered to the menu after a registration.
type RegisterSuccessNotice struct {
	Email string
}

// SessionExpiredNotice is delivered to the menu when the API rejects the
// saved token.
type SessionExpiredNotice struct{}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

// entryDeletedMsg carries the profile returned by an experience or
// education delete.
type entryDeletedMsg struct {
	kind    entryKind
	id      string
	profile models.Profile
	err     error
}

type postsLoadedMsg struct {
	posts []models.Post
	err   error
}

// postChangedMsg carries the post returned by like, unlike, comment and
// comment removal.
type postChangedMsg struct {
	action string
	post   models.Post
	err    error
}

type postCreatedMsg struct {
	post models.Post
	err  error
}

type postDeletedMsg struct {
	id  string
	err error
}

type serverVersionMsg struct {
	info models.AppBuildInfo
	err  error
}
