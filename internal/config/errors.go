package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after merging all sources.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidBootstrapConfigs indicates invalid client bootstrap settings
	// (for example, missing config document URL or non-positive timeouts).
	ErrInvalidBootstrapConfigs = errors.New("invalid bootstrap configuration")
)
