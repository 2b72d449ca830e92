package main

import (
	"fmt"

	"github.com/MKhiriev/go-config-gate/internal/config"
	httphandler "github.com/MKhiriev/go-config-gate/internal/handler/http"
	"github.com/MKhiriev/go-config-gate/internal/logger"
	"github.com/MKhiriev/go-config-gate/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("config-gate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Version == "" {
		cfg.Version = buildVersion
	}

	// The secret itself must never reach the log, only whether it is set.
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("requestTimeout", cfg.Server.RequestTimeout).
		Strs("corsOrigins", cfg.CORS.AllowedOrigins).
		Str("configDocument", cfg.Server.ConfigDocument).
		Bool("masterKeySet", cfg.Auth.MasterAPIKey != "").
		Msg("received configs")

	if cfg.Auth.MasterAPIKey == "" {
		log.Warn().Msg("MASTER_API_KEY is not set, every protected request will be rejected")
	}

	handlers := httphandler.NewHandler(cfg, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
