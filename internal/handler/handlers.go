// Package handler assembles the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/handler/grpc"
	"github.com/MKhiriev/dev-connector/internal/handler/http"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
)

// Handlers holds the REST handler and, when a gRPC address is configured,
// the gRPC health handler.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	return handlers, nil
}
