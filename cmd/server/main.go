package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/handler"
	"github.com/MKhiriev/go-empanadas/internal/logger"
	"github.com/MKhiriev/go-empanadas/internal/server"
	"github.com/MKhiriev/go-empanadas/internal/service"
	"github.com/MKhiriev/go-empanadas/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("empanadas-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// secrets and seeded credentials are never logged
	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages := store.NewStorages(*cfg, log)
	services := service.NewServices(storages, *cfg, buildVersion, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
