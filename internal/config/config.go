// Package config holds the runtime settings of the CourseMate client.
//
// Sources are applied in order, later ones winning: built-in defaults, a JSON
// config file (-c/-config), environment variables, command-line flags.
package config

import "time"

// Config holds runtime settings for the CourseMate client.
//
// Fields:
//   - DatabaseDSN: path/DSN of the on-device SQLite database.
//   - CatalogBaseURL: base URL of the remote course-search service.
//   - CatalogTimeout: per-request timeout for catalog searches.
//   - DefaultQuery: search query used when the user gives none.
type Config struct {
	DatabaseDSN    string        `env:"COURSEMATE_DB"`
	CatalogBaseURL string        `env:"COURSEMATE_CATALOG_URL"`
	CatalogTimeout time.Duration `env:"COURSEMATE_CATALOG_TIMEOUT"`
	DefaultQuery   string        `env:"COURSEMATE_QUERY"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "coursemate.db"
	c.CatalogBaseURL = "https://openlibrary.org"
	c.CatalogTimeout = 5 * time.Second
	c.DefaultQuery = "programming"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), the environment, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
