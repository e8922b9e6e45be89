package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
)

// PostValidationService validates post and comment bodies before they reach
// the wrapped PostService.
type PostValidationService struct {
	PostService
	validator validators.Validator
}

func NewPostValidationService(cfg config.Posts) PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(cfg.TextMaxLength),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, err
	}
	return v.PostService.CreatePost(ctx, userID, req)
}

func (v *PostValidationService) AddComment(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Post{}, err
	}
	return v.PostService.AddComment(ctx, userID, postID, req)
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.PostService = inner
	return v
}
