package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// envConfig carries no env-default tags on purpose: unset variables leave
// the field zero, so they never override earlier sources.
type envConfig struct {
	DatabasePath  string        `env:"PAYBOOK_DB_PATH"`
	ExportDir     string        `env:"PAYBOOK_EXPORT_DIR"`
	LogLevel      string        `env:"PAYBOOK_LOG_LEVEL"`
	LogFormat     string        `env:"PAYBOOK_LOG_FORMAT"`
	SessionSecret string        `env:"PAYBOOK_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"PAYBOOK_SESSION_TTL"`
}

// dotenvPath is a test seam.
var dotenvPath = ".env"

// parseEnv loads .env (when present) into the process environment and then
// overlays cfg with any PAYBOOK_* variables that are set.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		panic(err)
	}

	setString(&cfg.DatabasePath, ec.DatabasePath)
	setString(&cfg.ExportDir, ec.ExportDir)
	setString(&cfg.LogLevel, ec.LogLevel)
	setString(&cfg.LogFormat, ec.LogFormat)
	setString(&cfg.SessionSecret, ec.SessionSecret)
	if ec.SessionTTL > 0 {
		cfg.SessionTTL = ec.SessionTTL
	}
}
