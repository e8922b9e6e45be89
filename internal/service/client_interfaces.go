package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the terminal client's account flows. The
// session it produces is persisted locally so the next run starts logged in.
type ClientAuthService interface {
	// Register sends the form exactly as entered. Field errors reported by
	// the server are returned as [validators.FieldErrors].
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login exchanges credentials for a token, resolves the current user and
	// saves the session.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Restore loads the saved session and hands its token to the adapter.
	// It returns [ErrNotLoggedIn] when nothing is saved and
	// [ErrSessionExpired] when the saved token has expired.
	Restore(ctx context.Context) (models.Session, error)

	// Logout forgets the token and clears the saved session.
	Logout(ctx context.Context) error
}

// ClientProfileService reads and edits the logged-in user's profile.
type ClientProfileService interface {
	CurrentProfile(ctx context.Context) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	SaveProfile(ctx context.Context, req models.ProfileRequest) (models.Profile, error)
	AddExperience(ctx context.Context, req models.ExperienceRequest) (models.Profile, error)
	DeleteExperience(ctx context.Context, expID string) (models.Profile, error)
	AddEducation(ctx context.Context, req models.EducationRequest) (models.Profile, error)
	DeleteEducation(ctx context.Context, eduID string) (models.Profile, error)
}

// ClientPostService drives the posts feed.
type ClientPostService interface {
	Feed(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, text string) (models.Post, error)
	Delete(ctx context.Context, postID string) error
	Like(ctx context.Context, postID string) (models.Post, error)
	Unlike(ctx context.Context, postID string) (models.Post, error)
	Comment(ctx context.Context, postID, text string) (models.Post, error)
	DeleteComment(ctx context.Context, postID, commentID string) (models.Post, error)
}

// ClientAppInfoService reports the build of the server the client talks to.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (models.AppBuildInfo, error)
}
