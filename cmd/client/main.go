package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cipher-lab/internal/client"
	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/tui"
	"github.com/MKhiriev/go-cipher-lab/internal/workers"
	"github.com/MKhiriev/go-cipher-lab/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}
	if cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("cipher-client", cfg.App.LogFile)

	services, err := client.NewBackend(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewWorkers(services, cfg.Workers, log), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
