package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "coursemate.db", c.DatabaseDSN)
	assert.Equal(t, "https://openlibrary.org", c.CatalogBaseURL)
	assert.Equal(t, 5*time.Second, c.CatalogTimeout)
	assert.Equal(t, "programming", c.DefaultQuery)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "coursemate.db", cfg.DatabaseDSN)
	assert.Equal(t, "https://openlibrary.org", cfg.CatalogBaseURL)
}

func TestParseEnv_OverridesValues(t *testing.T) {
	t.Setenv("COURSEMATE_DB", "/tmp/env.db")
	t.Setenv("COURSEMATE_CATALOG_TIMEOUT", "9s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "/tmp/env.db", cfg.DatabaseDSN)
	assert.Equal(t, 9*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, "https://openlibrary.org", cfg.CatalogBaseURL, "unset variables leave defaults intact")
}
