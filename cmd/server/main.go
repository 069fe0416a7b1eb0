package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cipher-lab/internal/config"
	"github.com/MKhiriev/go-cipher-lab/internal/handler"
	"github.com/MKhiriev/go-cipher-lab/internal/logger"
	"github.com/MKhiriev/go-cipher-lab/internal/server"
	"github.com/MKhiriev/go-cipher-lab/internal/service"
	"github.com/MKhiriev/go-cipher-lab/internal/store"
	"github.com/MKhiriev/go-cipher-lab/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cipher-server")
	cfg, err := config.ServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == config.DefaultVersion && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.App, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(services, cfg.Workers, log)
	jobs.Start(context.Background())
	defer jobs.Stop()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
