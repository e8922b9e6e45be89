package grpc

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name the API reports its health under. The empty
// service name reports the health of the whole server.
const ServiceName = "devconnector.API"

// Handler is the root gRPC transport handler.
//
// DevConnector speaks REST to its clients; over gRPC it only exposes the
// standard health service, so that orchestrators can probe the process
// without knowing the HTTP routes.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as
// NOT_SERVING until [Handler.SetServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// SetServing marks the server and the API as SERVING. The build version is
// logged so probes can be matched with a release.
func (h *Handler) SetServing() {
	if h.services != nil && h.services.AppInfoService != nil {
		h.logger.Info().
			Str("version", h.services.AppInfoService.GetAppVersion(context.Background()).BuildVersion()).
			Msg("health: serving")
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("health: not serving")
	h.health.Shutdown()
}
