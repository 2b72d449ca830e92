package config

import "time"

// Built-in defaults applied as the lowest-priority configuration source.
// They mirror what a bare local deployment expects: a backend on
// localhost:8000 publishing its own configuration document.
const (
	defaultServerAddress  = "localhost:8000"
	defaultRequestTimeout = 30 * time.Second
	defaultConfigURL      = "http://localhost:8000/config.json"
	defaultLoadTimeout    = 10 * time.Second
	defaultFetchTimeout   = 15 * time.Second
)

// defaultConfig returns the built-in defaults as a configuration source.
// It is appended after all explicit sources, so any value set through the
// environment, flags, or the JSON file takes precedence.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    defaultServerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
		},
		Bootstrap: Bootstrap{
			ConfigURL:      defaultConfigURL,
			LoadTimeout:    defaultLoadTimeout,
			RequestTimeout: defaultFetchTimeout,
		},
	}
}
