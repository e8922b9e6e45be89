package store

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the creation date filled in.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// DeleteUser removes the account. Profile, posts, likes and comments of
	// the user go with it.
	DeleteUser(ctx context.Context, userID string) error
}

// ProfileRepository persists profiles with their experience and education
// entries. Profiles are addressed by owner except for the public lookups.
type ProfileRepository interface {
	FindProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	FindProfileByHandle(ctx context.Context, handle string) (models.Profile, error)
	FindAllProfiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) error
	UpdateProfile(ctx context.Context, profile models.Profile) error
	DeleteProfile(ctx context.Context, userID string) error

	AddExperience(ctx context.Context, userID string, exp models.Experience) error
	DeleteExperience(ctx context.Context, userID, expID string) error
	AddEducation(ctx context.Context, userID string, edu models.Education) error
	DeleteEducation(ctx context.Context, userID, eduID string) error
}

// PostRepository persists posts, the set of users liking each post and the
// comments under it.
type PostRepository interface {
	// ListPosts returns every post newest first with likes and comments.
	ListPosts(ctx context.Context) ([]models.Post, error)
	FindPostByID(ctx context.Context, postID string) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// DeletePost removes the post only when it is owned by userID.
	DeletePost(ctx context.Context, postID, userID string) error

	// AddLike and RemoveLike are atomic: a concurrent duplicate like yields
	// [ErrAlreadyLiked], a concurrent duplicate unlike [ErrNotLiked].
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error

	AddComment(ctx context.Context, postID string, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}
