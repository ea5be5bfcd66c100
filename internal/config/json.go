package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/paybook/internal/flagx"
	"github.com/dmitrijs2005/paybook/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "12h" and integer nanoseconds.
type JsonConfig struct {
	DatabasePath  string         `json:"database_path"`
	ExportDir     string         `json:"export_dir"`
	LogLevel      string         `json:"log_level"`
	LogFormat     string         `json:"log_format"`
	SessionSecret string         `json:"session_secret"`
	SessionTTL    timex.Duration `json:"session_ttl"`
}

// parseJson overlays cfg with the non-empty values of the JSON file named by
// -c/-config in args (or $PAYBOOK_CONFIG). It panics if the file cannot be
// read or parsed.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.ExportDir, jc.ExportDir)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.SessionSecret, jc.SessionSecret)
	if jc.SessionTTL.Duration > 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
