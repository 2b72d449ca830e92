package config

import (
	"fmt"
	"time"
)

// ClientBootstrap holds the settings the client transport needs to fetch
// the remote configuration document.
type ClientBootstrap struct {
	// ConfigURL is the absolute URL of the configuration document.
	ConfigURL string
	// LoadTimeout bounds a single load attempt end to end.
	LoadTimeout time.Duration
	// RequestTimeout is the timeout for the underlying HTTP fetch.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Bootstrap contains the configuration document fetch settings.
	Bootstrap ClientBootstrap
	// Version is the build version reported by the client.
	Version string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Bootstrap: ClientBootstrap{
			ConfigURL:      cfg.Bootstrap.ConfigURL,
			LoadTimeout:    cfg.Bootstrap.LoadTimeout,
			RequestTimeout: cfg.Bootstrap.RequestTimeout,
		},
		Version: cfg.Version,
	}

	return clientCfg, clientCfg.validate()
}
