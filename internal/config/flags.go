package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/paybook/internal/flagx"
)

// parseFlags overlays cfg with the flags it knows about (-d, -o, -l, -s);
// other arguments are filtered out first so they cannot break parsing.
// It panics on malformed values and on a non-positive session lifetime.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-o", "-l", "-s"})

	fs := flag.NewFlagSet("paybook", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "directory for exported reports")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	ttl := fs.String("s", cfg.SessionTTL.String(), "session lifetime")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	d, err := time.ParseDuration(*ttl)
	if err != nil {
		panic(err)
	}
	if d <= 0 {
		panic(fmt.Sprintf("session lifetime must be positive, got %s", d))
	}
	cfg.SessionTTL = d
}
