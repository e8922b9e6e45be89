package service

import "errors"

var (
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrNotPostOwner is returned when a user deletes a post written by
	// someone else.
	ErrNotPostOwner = errors.New("user is not the author of the post")

	// ErrNoProfiles is returned by the profile listing when nobody has a
	// profile yet.
	ErrNoProfiles = errors.New("there are no profiles")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors, produced by mapping the API's responses.
var (
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrSessionExpired     = errors.New("session expired, log in again")
	ErrServerUnavailable  = errors.New("server is unavailable")
	ErrUnexpectedResponse = errors.New("unexpected server response")
)
