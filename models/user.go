package models

import "time"

// User represents a registered developer account.
// The password hash never leaves the server.
type User struct {
	// ID is the unique identifier of the user (UUID).
	ID string `json:"_id"`

	// Name is the display name shown next to posts and comments.
	Name string `json:"name"`

	// Email is unique across all users and used as the login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Avatar is the Gravatar URL derived from the email at registration.
	Avatar string `json:"avatar"`

	// Date is the registration timestamp.
	Date time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CurrentUser is the public view of the authenticated user.
type CurrentUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// UserRef is the owner reference embedded in profiles: the user id plus
// the user's public fields.
type UserRef struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
