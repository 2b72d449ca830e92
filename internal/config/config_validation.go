// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server needs before it starts listening.
//
// An empty master API key is deliberately not an error here: the server
// boots without one and reports the misconfiguration on each protected
// request instead.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Bootstrap.ConfigURL == "" || cfg.Bootstrap.LoadTimeout <= 0 || cfg.Bootstrap.RequestTimeout <= 0 {
		return ErrInvalidBootstrapConfigs
	}

	return nil
}
