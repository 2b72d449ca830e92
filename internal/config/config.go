// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-config-gate application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the server-side credential settings. The group carries no
	// env prefix: the master key variable is looked up as MASTER_API_KEY,
	// matching the name operators already export for the backend.
	Auth Auth

	// Server holds network address, timeout and served-document settings
	// for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the cross-origin settings applied to every HTTP response.
	CORS CORS `envPrefix:"CORS_"`

	// Bootstrap holds the client-side settings for fetching the remote
	// configuration document before any authenticated call is made.
	Bootstrap Bootstrap `envPrefix:"BOOTSTRAP_"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the credential the server compares inbound bearer tokens
// against. The key is read once at startup and never logged.
type Auth struct {
	// MasterAPIKey is the shared secret expected in the Authorization
	// header of every protected request. When empty, protected routes
	// answer with a configuration error instead of authenticating anyone.
	// Env: MASTER_API_KEY
	MasterAPIKey string `env:"MASTER_API_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfigDocument is the optional path to the JSON configuration
	// document published at GET /config.json. When empty the route is
	// not registered.
	// Env: SERVER_CONFIG_DOCUMENT
	ConfigDocument string `env:"CONFIG_DOCUMENT"`
}

// CORS holds cross-origin resource sharing settings.
type CORS struct {
	// AllowedOrigins lists the origins allowed to call the API from a
	// browser. A single "*" entry allows any origin.
	// Env: CORS_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// Bootstrap holds the settings the client needs before it has fetched the
// remote configuration document.
type Bootstrap struct {
	// ConfigURL is the absolute URL of the configuration document.
	// Env: BOOTSTRAP_CONFIG_URL
	ConfigURL string `env:"CONFIG_URL"`

	// LoadTimeout bounds a single load attempt, fetch and decode
	// included. On expiry the loader falls back to built-in defaults.
	// Env: BOOTSTRAP_LOAD_TIMEOUT
	LoadTimeout time.Duration `env:"LOAD_TIMEOUT"`

	// RequestTimeout is the timeout applied to the underlying HTTP
	// request that fetches the document.
	// Env: BOOTSTRAP_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
