package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/coursemate/coursemate/internal/flagx"
	"github.com/coursemate/coursemate/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "5s" or as integer nanoseconds.
type jsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	CatalogBaseURL string         `json:"catalog_base_url"`
	CatalogTimeout timex.Duration `json:"catalog_timeout"`
	DefaultQuery   string         `json:"default_query"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. When no file is given the function is a no-op. Read or
// unmarshal errors panic; configuration is resolved before anything else
// starts, so there is nothing to clean up.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.CatalogBaseURL != "" {
		cfg.CatalogBaseURL = jc.CatalogBaseURL
	}
	if jc.CatalogTimeout.Duration != 0 {
		cfg.CatalogTimeout = time.Duration(jc.CatalogTimeout.Duration)
	}
	if jc.DefaultQuery != "" {
		cfg.DefaultQuery = jc.DefaultQuery
	}
}
