package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	ids            *utils.UUIDGenerator

	// commentRemoval is config.CommentRemovalLegacy or config.CommentRemovalStrict.
	commentRemoval string

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, cfg config.Posts, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		commentRemoval: cfg.CommentRemoval,
		logger:         logger,
	}
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepository.ListPosts(ctx)
}

func (s *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if !utils.IsUUID(postID) {
		return models.Post{}, store.ErrPostNotFound
	}
	return s.postRepository.FindPostByID(ctx, postID)
}

// CreatePost stores a post authored by userID. Name and avatar are a
// snapshot: taken from the request, or from the author's account when the
// request leaves them out.
func (s *postService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	name, avatar, err := s.authorSnapshot(ctx, userID, req)
	if err != nil {
		return models.Post{}, err
	}

	post, err := s.postRepository.CreatePost(ctx, models.Post{
		ID:     s.ids.Generate(),
		User:   userID,
		Text:   req.Text,
		Name:   name,
		Avatar: avatar,
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("creating post failed: %w", err)
	}
	return post, nil
}

// DeletePost removes postID if userID wrote it; otherwise ErrNotPostOwner
// and the post stays.
func (s *postService) DeletePost(ctx context.Context, userID, postID string) error {
	log := logger.FromContext(ctx)

	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.User != userID {
		log.Warn().
			Str("func", "postService.DeletePost").
			Str("post_id", postID).
			Str("user_id", userID).
			Msg("attempt to delete a post of another user")
		return ErrNotPostOwner
	}

	return s.postRepository.DeletePost(ctx, postID, userID)
}

func (s *postService) LikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	if !utils.IsUUID(postID) {
		return models.Post{}, store.ErrPostNotFound
	}
	if err := s.postRepository.AddLike(ctx, postID, userID); err != nil {
		return models.Post{}, err
	}
	return s.postRepository.FindPostByID(ctx, postID)
}

func (s *postService) UnlikePost(ctx context.Context, userID, postID string) (models.Post, error) {
	if !utils.IsUUID(postID) {
		return models.Post{}, store.ErrPostNotFound
	}
	if err := s.postRepository.RemoveLike(ctx, postID, userID); err != nil {
		return models.Post{}, err
	}
	return s.postRepository.FindPostByID(ctx, postID)
}

func (s *postService) AddComment(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error) {
	if !utils.IsUUID(postID) {
		return models.Post{}, store.ErrPostNotFound
	}

	name, avatar, err := s.authorSnapshot(ctx, userID, req)
	if err != nil {
		return models.Post{}, err
	}

	_, err = s.postRepository.AddComment(ctx, postID, models.Comment{
		ID:     s.ids.Generate(),
		User:   userID,
		Text:   req.Text,
		Name:   name,
		Avatar: avatar,
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("adding comment failed: %w", err)
	}
	return s.postRepository.FindPostByID(ctx, postID)
}

// DeleteComment checks that commentID exists under postID and then removes
// it according to the configured removal mode.
//
// In legacy mode the comment is kept and the post is returned unchanged,
// which is how the API has always answered this route. Strict mode deletes
// the comment.
func (s *postService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	if !hasComment(post, commentID) {
		return models.Post{}, store.ErrCommentNotFound
	}

	if s.commentRemoval != config.CommentRemovalStrict {
		log.Warn().
			Str("func", "postService.DeleteComment").
			Str("post_id", postID).
			Str("comment_id", commentID).
			Str("user_id", userID).
			Msg("legacy comment removal: comment kept")
		return post, nil
	}

	if err = s.postRepository.DeleteComment(ctx, postID, commentID); err != nil {
		return models.Post{}, fmt.Errorf("deleting comment failed: %w", err)
	}
	return s.postRepository.FindPostByID(ctx, postID)
}

func (s *postService) authorSnapshot(ctx context.Context, userID string, req models.PostRequest) (string, string, error) {
	name, avatar := strings.TrimSpace(req.Name), strings.TrimSpace(req.Avatar)
	if name != "" && avatar != "" {
		return name, avatar, nil
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("author lookup failed: %w", err)
	}
	if name == "" {
		name = user.Name
	}
	if avatar == "" {
		avatar = user.Avatar
	}
	return name, avatar, nil
}

func hasComment(post models.Post, commentID string) bool {
	for _, c := range post.Comments {
		if c.ID == commentID {
			return true
		}
	}
	return false
}
