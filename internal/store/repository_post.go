package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Likes are rows of "post_likes" keyed by (post_id, user_id), so the set
// property of likes is enforced by the primary key rather than by a scan.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository].
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	return r.loadPosts(ctx, nil)
}

// FindPostByID returns the post with its likes and comments, or
// [ErrPostNotFound]. A malformed id is reported as not found as well.
func (r *postRepository) FindPostByID(ctx context.Context, postID string) (models.Post, error) {
	posts, err := r.loadPosts(ctx, sq.Eq{"id": postID})
	if err != nil {
		if mapped := translatePgError(err, ErrPostNotFound); mapped != nil {
			return models.Post{}, mapped
		}
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}
	return posts[0], nil
}

// loadPosts selects posts, then the likes and comments of all of them in
// two more queries, and stitches them together.
func (r *postRepository) loadPosts(ctx context.Context, where sq.Sqlizer) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.loadPosts").Msg("failed to query posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	byID := make(map[string]int)

	for rows.Next() {
		var p models.Post
		if scanErr := rows.Scan(&p.ID, &p.User, &p.Text, &p.Name, &p.Avatar, &p.Date); scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.loadPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		p.Likes = []models.Like{}
		p.Comments = []models.Comment{}

		byID[p.ID] = len(posts)
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(posts) == 0 {
		return posts, nil
	}

	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	if err = r.attachLikes(ctx, ids, posts, byID); err != nil {
		return nil, err
	}
	if err = r.attachComments(ctx, ids, posts, byID); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) attachLikes(ctx context.Context, ids []string, posts []models.Post, byID map[string]int) error {
	query, args, err := buildSelectLikesQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID, userID string
		if err = rows.Scan(&postID, &userID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if idx, ok := byID[postID]; ok {
			posts[idx].Likes = append(posts[idx].Likes, models.Like{User: userID})
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (r *postRepository) attachComments(ctx context.Context, ids []string, posts []models.Post, byID map[string]int) error {
	query, args, err := buildSelectCommentsQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c      models.Comment
			postID string
		)
		if err = rows.Scan(&c.ID, &postID, &c.User, &c.Text, &c.Name, &c.Avatar, &c.Date); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if idx, ok := byID[postID]; ok {
			posts[idx].Comments = append(posts[idx].Comments, c)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// CreatePost inserts post and returns it with the database creation date.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(post)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&post.Date); err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Str("user_id", post.User).Msg("failed to insert post")
		if mapped := translatePgError(err, ErrUserNotFound); mapped != nil {
			return models.Post{}, mapped
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if post.Likes == nil {
		post.Likes = []models.Like{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	return post, nil
}

// DeletePost deletes the post only when userID owns it. Zero affected rows
// are reported as [ErrPostNotFound]; the caller checks ownership beforehand.
func (r *postRepository) DeletePost(ctx context.Context, postID, userID string) error {
	query, args, err := buildDeletePostQuery(postID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := translatePgError(err, ErrPostNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return expectAffected(res, ErrPostNotFound)
}

// AddLike locks the post and inserts the (post, user) pair. A pair that
// already exists is left untouched and reported as [ErrAlreadyLiked].
func (r *postRepository) AddLike(ctx context.Context, postID, userID string) error {
	return r.changeLike(ctx, postID, userID, buildInsertLikeQuery, ErrAlreadyLiked)
}

// RemoveLike locks the post and deletes the (post, user) pair, or reports
// [ErrNotLiked] when there was none.
func (r *postRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	return r.changeLike(ctx, postID, userID, buildDeleteLikeQuery, ErrNotLiked)
}

func (r *postRepository) changeLike(
	ctx context.Context,
	postID, userID string,
	build func(postID, userID string) (string, []any, error),
	unchanged error,
) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPost(ctx, tx, postID); err != nil {
			return err
		}

		query, args, err := build(postID, userID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			if mapped := translatePgError(err, ErrPostNotFound); mapped != nil {
				return mapped
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return expectAffected(res, unchanged)
	})
	if err != nil {
		log.Debug().Err(err).
			Str("func", "postRepository.changeLike").
			Str("post_id", postID).
			Str("user_id", userID).
			Msg("like not changed")
	}
	return err
}

func lockPost(ctx context.Context, q querier, postID string) error {
	query, args, err := buildLockPostQuery(postID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id string
	err = q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPostNotFound
	}
	if err != nil {
		if mapped := translatePgError(err, ErrPostNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// AddComment inserts comment under postID. An unknown post surfaces as a
// foreign key violation and is reported as [ErrPostNotFound].
func (r *postRepository) AddComment(ctx context.Context, postID string, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCommentQuery(postID, comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&comment.Date); err != nil {
		log.Err(err).Str("func", "postRepository.AddComment").Str("post_id", postID).Msg("failed to insert comment")
		if mapped := translatePgError(err, ErrPostNotFound); mapped != nil {
			return models.Comment{}, mapped
		}
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return comment, nil
}

// DeleteComment removes the comment with commentID from postID, or reports
// [ErrCommentNotFound].
func (r *postRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	query, args, err := buildDeleteCommentQuery(postID, commentID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := translatePgError(err, ErrCommentNotFound); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return expectAffected(res, ErrCommentNotFound)
}
