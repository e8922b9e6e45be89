package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	authorID = "0195f0c2-0000-7000-8000-00000000000a"
	readerID = "0195f0c2-0000-7000-8000-00000000000b"
	postID   = "0195f0c2-0000-7000-8000-0000000000f1"
)

func authorRepo() *fakeUserRepository {
	return &fakeUserRepository{
		findByIDFn: func(ctx context.Context, userID string) (models.User, error) {
			return models.User{ID: userID, Name: "Stored " + userID[len(userID)-1:], Avatar: "//stored"}, nil
		},
	}
}

func newTestPostService(mode string, posts ...models.Post) (PostService, *memPostRepository) {
	repo := newMemPostRepository(posts...)
	cfg := config.Posts{CommentRemoval: mode, TextMaxLength: 300}
	svc := NewPostValidationService(cfg).Wrap(NewPostService(repo, authorRepo(), cfg, logger.Nop()))
	return svc, repo
}

func seededPost() models.Post {
	return models.Post{ID: postID, User: authorID, Text: "hello", Name: "Ada", Avatar: "//a", Date: time.Now()}
}

func TestPostService_CreatePost(t *testing.T) {
	svc, _ := newTestPostService(config.CommentRemovalLegacy)
	ctx := context.Background()

	t.Run("snapshot from request", func(t *testing.T) {
		p, err := svc.CreatePost(ctx, authorID, models.PostRequest{Text: "hi", Name: "Ada", Avatar: "//a"})
		require.NoError(t, err)
		assert.True(t, utils.IsUUID(p.ID))
		assert.Equal(t, authorID, p.User)
		assert.Equal(t, "Ada", p.Name)
		assert.Empty(t, p.Likes)
	})

	t.Run("snapshot falls back to the account", func(t *testing.T) {
		p, err := svc.CreatePost(ctx, authorID, models.PostRequest{Text: "hi"})
		require.NoError(t, err)
		assert.Equal(t, "Stored a", p.Name)
		assert.Equal(t, "//stored", p.Avatar)
	})

	t.Run("text too long", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, authorID, models.PostRequest{Text: strings.Repeat("x", 301)})
		assert.ErrorIs(t, err, validators.ErrValidation)
	})
}

func TestPostService_GetPost(t *testing.T) {
	svc, _ := newTestPostService(config.CommentRemovalLegacy, seededPost())
	ctx := context.Background()

	p, err := svc.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "hello", p.Text)

	_, err = svc.GetPost(ctx, "0195f0c2-0000-7000-8000-0000000000ff")
	assert.ErrorIs(t, err, store.ErrPostNotFound)

	_, err = svc.GetPost(ctx, "123")
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_DeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("someone else's post stays", func(t *testing.T) {
		svc, repo := newTestPostService(config.CommentRemovalLegacy, seededPost())

		err := svc.DeletePost(ctx, readerID, postID)
		assert.ErrorIs(t, err, ErrNotPostOwner)
		_, err = repo.FindPostByID(ctx, postID)
		assert.NoError(t, err)
	})

	t.Run("owner deletes", func(t *testing.T) {
		svc, repo := newTestPostService(config.CommentRemovalLegacy, seededPost())

		require.NoError(t, svc.DeletePost(ctx, authorID, postID))
		_, err := repo.FindPostByID(ctx, postID)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})

	t.Run("missing post", func(t *testing.T) {
		svc, _ := newTestPostService(config.CommentRemovalLegacy)
		assert.ErrorIs(t, svc.DeletePost(ctx, authorID, postID), store.ErrPostNotFound)
	})
}

func TestPostService_LikeUnlike(t *testing.T) {
	svc, _ := newTestPostService(config.CommentRemovalLegacy, seededPost())
	ctx := context.Background()

	p, err := svc.LikePost(ctx, readerID, postID)
	require.NoError(t, err)
	assert.Len(t, p.Likes, 1)
	assert.True(t, p.LikedBy(readerID))

	_, err = svc.LikePost(ctx, readerID, postID)
	assert.ErrorIs(t, err, store.ErrAlreadyLiked)

	p, err = svc.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Len(t, p.Likes, 1, "a second like must not change the count")

	p, err = svc.UnlikePost(ctx, readerID, postID)
	require.NoError(t, err)
	assert.Empty(t, p.Likes)

	_, err = svc.UnlikePost(ctx, readerID, postID)
	assert.ErrorIs(t, err, store.ErrNotLiked)

	_, err = svc.LikePost(ctx, readerID, "bogus")
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_AddComment(t *testing.T) {
	svc, _ := newTestPostService(config.CommentRemovalLegacy, seededPost())
	ctx := context.Background()

	p, err := svc.AddComment(ctx, readerID, postID, models.PostRequest{Text: "first"})
	require.NoError(t, err)
	p, err = svc.AddComment(ctx, readerID, postID, models.PostRequest{Text: "second"})
	require.NoError(t, err)

	require.Len(t, p.Comments, 2)
	assert.Equal(t, "second", p.Comments[0].Text, "new comments are prepended")
	assert.Equal(t, readerID, p.Comments[0].User)
	assert.NotEqual(t, p.Comments[0].ID, p.Comments[1].ID)

	_, err = svc.AddComment(ctx, readerID, postID, models.PostRequest{Text: " "})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.AddComment(ctx, readerID, "0195f0c2-0000-7000-8000-0000000000ff", models.PostRequest{Text: "x"})
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

// A comment "hi" added to a post without comments and then deleted.
func TestPostService_DeleteComment_Legacy_KeepsComment(t *testing.T) {
	svc, repo := newTestPostService(config.CommentRemovalLegacy, seededPost())
	ctx := context.Background()

	p, err := svc.AddComment(ctx, readerID, postID, models.PostRequest{Text: "hi"})
	require.NoError(t, err)
	require.Len(t, p.Comments, 1)
	commentID := p.Comments[0].ID

	p, err = svc.DeleteComment(ctx, readerID, postID, commentID)
	require.NoError(t, err, "legacy removal answers with success")
	assert.Len(t, p.Comments, 1, "legacy removal leaves the comment in place")

	stored, err := repo.FindPostByID(ctx, postID)
	require.NoError(t, err)
	assert.Len(t, stored.Comments, 1)
}

func TestPostService_DeleteComment_Strict_RemovesComment(t *testing.T) {
	svc, repo := newTestPostService(config.CommentRemovalStrict, seededPost())
	ctx := context.Background()

	p, err := svc.AddComment(ctx, readerID, postID, models.PostRequest{Text: "hi"})
	require.NoError(t, err)
	commentID := p.Comments[0].ID

	p, err = svc.DeleteComment(ctx, readerID, postID, commentID)
	require.NoError(t, err)
	assert.Empty(t, p.Comments)

	stored, err := repo.FindPostByID(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, stored.Comments)
}

func TestPostService_DeleteComment_NotFound(t *testing.T) {
	for _, mode := range []string{config.CommentRemovalLegacy, config.CommentRemovalStrict} {
		t.Run(mode, func(t *testing.T) {
			svc, _ := newTestPostService(mode, seededPost())
			ctx := context.Background()

			_, err := svc.DeleteComment(ctx, readerID, postID, "0195f0c2-0000-7000-8000-0000000000c1")
			assert.ErrorIs(t, err, store.ErrCommentNotFound)

			_, err = svc.DeleteComment(ctx, readerID, "0195f0c2-0000-7000-8000-0000000000ff", "c1")
			assert.ErrorIs(t, err, store.ErrPostNotFound)
		})
	}
}

// The fake repository prepends, like the SQL ordering; the service must
// not reorder what it gets.
func TestPostService_ListPosts_KeepsRepositoryOrder(t *testing.T) {
	older := seededPost()
	newer := seededPost()
	newer.ID = "0195f0c2-0000-7000-8000-0000000000f2"

	svc, repo := newTestPostService(config.CommentRemovalLegacy, older, newer)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)

	stored, err := repo.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stored, posts)
	assert.Equal(t, newer.ID, posts[0].ID)
}
