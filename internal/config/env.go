package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with values from the environment via the `env`
// struct tags. Unset variables leave the earlier values intact.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
