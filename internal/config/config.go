package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the paybook CLI.
//
// SessionSecret signs persisted login sessions; when empty a random secret
// is generated on first start and kept in the local database.
type Config struct {
	DatabasePath  string
	ExportDir     string
	LogLevel      string
	LogFormat     string
	SessionSecret string
	SessionTTL    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "paybook.db"
	c.ExportDir = "exports"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.SessionSecret = ""
	c.SessionTTL = 12 * time.Hour
}

// LoadConfig applies defaults, then the JSON file, the environment and the
// command-line flags, later sources taking precedence. Malformed input in any
// source panics, the same way flag.PanicOnError would.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, os.Args[1:])
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
