package http

import (
	"github.com/MKhiriev/go-config-gate/internal/config"
	"github.com/MKhiriev/go-config-gate/internal/logger"
)

type Handler struct {
	masterAPIKey       string
	version            string
	configDocumentPath string
	allowedOrigins     []string

	logger *logger.Logger
}

func NewHandler(cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		masterAPIKey:       cfg.Auth.MasterAPIKey,
		version:            cfg.Version,
		configDocumentPath: cfg.Server.ConfigDocument,
		allowedOrigins:     cfg.CORS.AllowedOrigins,
		logger:             logger,
	}
}
