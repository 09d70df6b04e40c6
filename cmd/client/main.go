package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-empanadas/internal/adapter"
	"github.com/MKhiriev/go-empanadas/internal/client"
	"github.com/MKhiriev/go-empanadas/internal/config"
	"github.com/MKhiriev/go-empanadas/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("empanadas-client")
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if len(args) > 0 && args[0] == "build-info" {
		printBuildInfo()
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(serverAdapter, cfg.Auth, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, client.Usage)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
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
