package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/tui"
)

type App struct {
	ui      UI
	closers []Closer
	logger  *logger.Logger
}

// NewApp builds the client runtime. closers are closed in order when Run
// returns.
func NewApp(ui UI, logger *logger.Logger, closers ...Closer) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: nil ui")
	}
	return &App{ui: ui, closers: closers, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.close()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}

func (a *App) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Err(err).Msg("error closing client resource")
		}
	}
}
