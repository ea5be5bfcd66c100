package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Setenv("PAYBOOK_CONFIG", "")

	t.Run("overlays set fields only", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"database_path": "/tmp/pay.db",
			"session_ttl":   "30m",
		})

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "/tmp/pay.db", cfg.DatabasePath)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, "exports", cfg.ExportDir)
	})

	t.Run("no file selected leaves config alone", func(t *testing.T) {
		cfg := &Config{DatabasePath: "keep.db"}
		parseJson(cfg, nil)
		assert.Equal(t, "keep.db", cfg.DatabasePath)
	})

	t.Run("path from environment", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"log_format": "json"})
		t.Setenv("PAYBOOK_CONFIG", path)

		cfg := &Config{}
		parseJson(cfg, nil)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.json")
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", missing}) })
	})
}
