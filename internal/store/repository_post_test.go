package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postRowColumns    = []string{"id", "user_id", "text", "name", "avatar", "created_at"}
	likeRowColumns    = []string{"post_id", "user_id"}
	commentRowColumns = []string{"id", "post_id", "user_id", "text", "name", "avatar", "created_at"}
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &postRepository{DB: db, logger: db.logger}, mock
}

func TestPostRepository_ListPosts(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	newer := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts ORDER BY created_at DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow("p2", "u1", "second", "Ada", "//a", newer).
			AddRow("p1", "u2", "first", "Bob", "//b", older))
	mock.ExpectQuery(regexp.QuoteMeta("FROM post_likes WHERE post_id IN ($1,$2)")).
		WithArgs("p2", "p1").
		WillReturnRows(sqlmock.NewRows(likeRowColumns).
			AddRow("p1", "u1").
			AddRow("p1", "u2"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM post_comments WHERE post_id IN ($1,$2)")).
		WithArgs("p2", "p1").
		WillReturnRows(sqlmock.NewRows(commentRowColumns).
			AddRow("c1", "p2", "u2", "hi", "Bob", "//b", newer))

	posts, err := repo.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "p2", posts[0].ID)
	assert.Empty(t, posts[0].Likes)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "hi", posts[0].Comments[0].Text)

	assert.Equal(t, []models.Like{{User: "u1"}, {User: "u2"}}, posts[1].Likes)
	assert.NotNil(t, posts[1].Comments)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListPosts_QueryFails(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("FROM posts").WillReturnError(errors.New("connection reset"))

	_, err := repo.ListPosts(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestPostRepository_FindPostByID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM posts WHERE id = $1")).
			WithArgs("p9").
			WillReturnRows(sqlmock.NewRows(postRowColumns))

		_, err := repo.FindPostByID(context.Background(), "p9")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("FROM posts").WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

		_, err := repo.FindPostByID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostRepository_CreatePost(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	now := time.Now()
	post := models.Post{ID: "p1", User: "u1", Text: "hello", Name: "Ada", Avatar: "//a"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO posts (id,user_id,text,name,avatar)")).
		WithArgs("p1", "u1", "hello", "Ada", "//a").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.CreatePost(context.Background(), post)
	require.NoError(t, err)
	assert.True(t, created.Date.Equal(now))
	assert.NotNil(t, created.Likes)
	assert.NotNil(t, created.Comments)
}

func TestPostRepository_DeletePost(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE id = $1 AND user_id = $2")).
		WithArgs("p1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeletePost(context.Background(), "p1", "u1"), ErrPostNotFound)
}

func TestPostRepository_AddLike(t *testing.T) {
	lock := regexp.QuoteMeta("SELECT id FROM posts WHERE id = $1 FOR SHARE")

	t.Run("first like", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WithArgs("p1").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
		mock.ExpectExec("INSERT INTO post_likes").WithArgs("p1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.AddLike(context.Background(), "p1", "u1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second like is rejected", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
		mock.ExpectExec("ON CONFLICT").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.AddLike(context.Background(), "p1", "u1"), ErrAlreadyLiked)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("post missing", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lock).WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.AddLike(context.Background(), "p1", "u1"), ErrPostNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		assert.ErrorIs(t, repo.AddLike(context.Background(), "p1", "u1"), ErrBeginningTransaction)
	})
}

func TestPostRepository_RemoveLike(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FOR SHARE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2")).
			WithArgs("p1", "u1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.RemoveLike(context.Background(), "p1", "u1"))
	})

	t.Run("never liked", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("FOR SHARE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1"))
		mock.ExpectExec("DELETE FROM post_likes").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.RemoveLike(context.Background(), "p1", "u1"), ErrNotLiked)
	})
}

func TestPostRepository_Comments(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		now := time.Now()
		mock.ExpectQuery("INSERT INTO post_comments").
			WithArgs("c1", "p1", "u1", "hi", "Ada", "//a").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		c, err := repo.AddComment(context.Background(), "p1", models.Comment{ID: "c1", User: "u1", Text: "hi", Name: "Ada", Avatar: "//a"})
		require.NoError(t, err)
		assert.True(t, c.Date.Equal(now))
	})

	t.Run("add to missing post", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectQuery("INSERT INTO post_comments").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.AddComment(context.Background(), "p1", models.Comment{ID: "c1"})
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("delete missing comment", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM post_comments WHERE id = $1 AND post_id = $2")).
			WithArgs("c1", "p1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteComment(context.Background(), "p1", "c1"), ErrCommentNotFound)
	})
}
