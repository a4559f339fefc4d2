package config

import (
	"flag"
	"os"
	"time"

	"github.com/coursemate/coursemate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   on-device database path/DSN
//	-r string   base URL of the catalog service
//	-t int      catalog request timeout in seconds
//	-q string   default search query
//
// os.Args is filtered down to these flags with flagx.FilterArgs so parsing
// does not interfere with flags owned by other components (notably the
// -c/-config flag consumed during JSON loading).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-t", "-q"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "on-device database path")
	fs.StringVar(&cfg.CatalogBaseURL, "r", cfg.CatalogBaseURL, "catalog service base URL")
	timeout := fs.Int("t", int(cfg.CatalogTimeout.Seconds()), "catalog request timeout (in seconds)")
	fs.StringVar(&cfg.DefaultQuery, "q", cfg.DefaultQuery, "default search query")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CatalogTimeout = time.Duration(*timeout) * time.Second
}
