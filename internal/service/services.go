package service

import (
	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/models"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	PostService    PostService
	AppInfoService AppInfoService
}

// NewServices builds the server services over storages. Every service that
// accepts request bodies is wrapped in its validation layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, cfg.Auth, logger),
	)
	profiles := NewProfileValidationService().Wrap(
		NewProfileService(storages.ProfileRepository, storages.UserRepository, logger),
	)
	posts := NewPostValidationService(cfg.Posts).Wrap(
		NewPostService(storages.PostRepository, storages.UserRepository, cfg.Posts, logger),
	)

	return &Services{
		AuthService:    auth,
		ProfileService: profiles,
		PostService:    posts,
		AppInfoService: appInfo,
	}, nil
}
