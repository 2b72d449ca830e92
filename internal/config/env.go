// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping lives in
// the `env`/`envPrefix` tags on [StructuredConfig]: the secret comes
// from the unprefixed MASTER_API_KEY, everything else is grouped under
// SERVER_, CORS_ and BOOTSTRAP_ prefixes.
//
// A malformed value (say, an unparseable duration) surfaces as a
// wrapped error; variables that are simply absent leave their fields at
// zero for later merge stages to fill.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
