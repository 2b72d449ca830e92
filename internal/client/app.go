package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-gate/internal/adapter"
	"github.com/MKhiriev/go-config-gate/internal/bootstrap"
	"github.com/MKhiriev/go-config-gate/internal/config"
	"github.com/MKhiriev/go-config-gate/internal/logger"
)

type App struct {
	cfg    *config.ClientConfig
	loader *bootstrap.Loader
	logger *logger.Logger

	// newBackend builds the authenticated backend client once the document
	// endpoint and credential are known.
	newBackend func(adapter.BackendConfig, *logger.Logger) (adapter.BackendClient, error)
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	source, err := adapter.NewConfigDocumentSource(cfg.Bootstrap, logger)
	if err != nil {
		return nil, fmt.Errorf("create config document source: %w", err)
	}

	return &App{
		cfg:        cfg,
		loader:     bootstrap.NewLoader(source, cfg.Bootstrap.LoadTimeout, logger),
		logger:     logger,
		newBackend: adapter.NewBackendClient,
	}, nil
}

// Run performs the two bootstrap phases in order: load the configuration
// document, then talk to the backend the document names with the credential
// it carries. The backend client is never built before a load has settled,
// so its endpoint and credential always come from the document (fallback
// included), not from anything baked into the binary.
func (a *App) Run(ctx context.Context) error {
	document, err := a.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config document: %w", err)
	}

	if !document.HasCredential() {
		a.logger.Warn().
			Str("endpoint", document.Endpoint).
			Msg("config document carries no credential, backend calls will be rejected")
	}

	backend, err := a.newBackend(adapter.BackendConfig{
		BaseURL:    document.Endpoint,
		Credential: document.Credential,
		Timeout:    a.cfg.Bootstrap.RequestTimeout,
	}, a.logger)
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}

	hello, err := backend.Hello(ctx)
	if err != nil {
		return fmt.Errorf("hello request: %w", err)
	}

	a.logger.Info().
		Str("endpoint", document.Endpoint).
		Bool("authenticated", hello.Authenticated).
		Msg("backend greeted us")
	fmt.Println(hello.Message)

	return nil
}
