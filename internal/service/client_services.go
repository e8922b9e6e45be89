package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/models"
)

// ClientServices groups the services the terminal client is built from.
type ClientServices struct {
	AuthService    ClientAuthService
	ProfileService ClientProfileService
	PostService    ClientPostService
	AppInfoService ClientAppInfoService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(storages.SessionRepository, serverAdapter, logger),
		ProfileService: NewClientProfileService(serverAdapter),
		PostService:    NewClientPostService(serverAdapter),
		AppInfoService: &clientAppInfoService{adapter: serverAdapter},
	}
}

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
}

func (c *clientAppInfoService) ServerVersion(ctx context.Context) (models.AppBuildInfo, error) {
	info, err := c.adapter.Version(ctx)
	return info, mapAdapterError(err)
}
