package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/models"
)

type clientPostService struct {
	adapter adapter.ServerAdapter
}

func NewClientPostService(serverAdapter adapter.ServerAdapter) ClientPostService {
	return &clientPostService{adapter: serverAdapter}
}

// Feed returns all posts, newest first. An empty feed is not an error.
func (p *clientPostService) Feed(ctx context.Context) ([]models.Post, error) {
	posts, err := p.adapter.ListPosts(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// Create posts text. The author snapshot is left to the server.
func (p *clientPostService) Create(ctx context.Context, text string) (models.Post, error) {
	post, err := p.adapter.CreatePost(ctx, models.PostRequest{Text: text})
	return post, mapAdapterError(err)
}

func (p *clientPostService) Delete(ctx context.Context, postID string) error {
	return mapAdapterError(p.adapter.DeletePost(ctx, postID))
}

func (p *clientPostService) Like(ctx context.Context, postID string) (models.Post, error) {
	post, err := p.adapter.LikePost(ctx, postID)
	return post, mapAdapterError(err)
}

func (p *clientPostService) Unlike(ctx context.Context, postID string) (models.Post, error) {
	post, err := p.adapter.UnlikePost(ctx, postID)
	return post, mapAdapterError(err)
}

func (p *clientPostService) Comment(ctx context.Context, postID, text string) (models.Post, error) {
	post, err := p.adapter.AddComment(ctx, postID, models.PostRequest{Text: text})
	return post, mapAdapterError(err)
}

func (p *clientPostService) DeleteComment(ctx context.Context, postID, commentID string) (models.Post, error) {
	post, err := p.adapter.DeleteComment(ctx, postID, commentID)
	return post, mapAdapterError(err)
}
