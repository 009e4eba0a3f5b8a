package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with the CRM_* environment variables that are set.
func parseEnv(cfg *Config) error {
	return env.Parse(cfg)
}
