package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

// AuthService registers and authenticates users and issues bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	CurrentUser(ctx context.Context, userID string) (models.CurrentUser, error)
}

// ProfileService manages developer profiles. Methods taking userID act on
// that user's own profile.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	GetProfileByHandle(ctx context.Context, handle string) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	// SaveProfile creates the profile of userID or updates it when it exists.
	SaveProfile(ctx context.Context, userID string, req models.ProfileRequest) (models.Profile, error)
	// DeleteAccount removes the profile and the user account.
	DeleteAccount(ctx context.Context, userID string) error

	AddExperience(ctx context.Context, userID string, req models.ExperienceRequest) (models.Profile, error)
	DeleteExperience(ctx context.Context, userID, expID string) (models.Profile, error)
	AddEducation(ctx context.Context, userID string, req models.EducationRequest) (models.Profile, error)
	DeleteEducation(ctx context.Context, userID, eduID string) (models.Profile, error)
}

// PostService manages the posts feed. userID is the caller, passed
// explicitly by the handler.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error)
	DeletePost(ctx context.Context, userID, postID string) error

	LikePost(ctx context.Context, userID, postID string) (models.Post, error)
	UnlikePost(ctx context.Context, userID, postID string) (models.Post, error)

	AddComment(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error)
	DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper, ProfileServiceWrapper and PostServiceWrapper decorate
// a service with extra behaviour such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
