package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/handler"
	myGRPC "github.com/MKhiriev/dev-connector/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/dev-connector/internal/handler/http"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNilHandlers)
}

func TestNewServer_GRPCPortBusy(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(&service.Services{}, logger.Nop())}
	_, err = NewServer(handlers, config.Server{GRPCAddress: lis.Addr().String()}, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunUntilCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     freeAddr(t),
		GRPCAddress:     freeAddr(t),
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
	services := &service.Services{}
	handlers := &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.(*server).run(ctx)
		close(done)
	}()

	url := fmt.Sprintf("http://%s/api/posts/test", cfg.HTTPAddress)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
