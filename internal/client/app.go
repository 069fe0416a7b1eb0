package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cipher-lab/internal/adapter"
	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/MKhiriev/go-cipher-lab/internal/store"
)

var errNoUI = errors.New("client: ui is not configured")

type App struct {
	ui     UI
	jobs   BackgroundJobs
	logger *logger.Logger
}

func NewApp(ui UI, jobs BackgroundJobs, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, jobs: jobs, logger: logger}, nil
}

// Run starts the background jobs, blocks in the UI and stops the jobs once
// the UI returns.
func (a *App) Run(ctx context.Context) error {
	if a.jobs != nil {
		a.jobs.Start(ctx)
		defer a.jobs.Stop()
	}

	if err := a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Msg("ui stopped with error")
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

// NewBackend returns the services the UI talks to. With an adapter address
// configured every call goes to the remote server; otherwise the cipher core
// and an in-memory history run in this process.
func NewBackend(cfg config.StructuredConfig, logger *logger.Logger) (*service.Services, error) {
	if cfg.Adapter.HTTPAddress != "" {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
		if err != nil {
			return nil, fmt.Errorf("create server adapter: %w", err)
		}
		logger.Info().Str("address", cfg.Adapter.HTTPAddress).Msg("using remote cipher server")
		return service.NewRemoteServices(serverAdapter), nil
	}

	storages := store.NewStorages(cfg.App, logger)
	services, err := service.NewServices(storages, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create local services: %w", err)
	}
	logger.Info().Msg("using local cipher core")
	return services, nil
}
