package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/idkeeper/internal/validation"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_http":    "www.example:8000",
		"endpoint_addr_grpc":    "www.example:9000",
		"database_dsn":          "postgres://db",
		"password_hasher":       "argon2id",
		"hash_pepper":           "0123456789abcdef",
		"token_bytes":           24,
		"shutdown_timeout":      "3s",
		"health_check_interval": 2000000000,
		"log_level":             "debug",
		"validation": map[string]any{
			"password_min_len":        12,
			"password_require_symbol": false,
		},
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-config", pathFlag}))

		assert.Equal(t, "www.example:8000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "argon2id", cfg.PasswordHasher)
		assert.Equal(t, "0123456789abcdef", cfg.HashPepper)
		assert.Equal(t, 24, cfg.TokenBytes)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, 2*time.Second, cfg.HealthCheckInterval)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("partial validation keeps other defaults", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", pathFlag}))

		want := validation.DefaultPolicy()
		want.PasswordMinLen = 12
		want.PasswordRequireSymbol = false
		assert.Equal(t, want, cfg.Validation)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		p := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "warn"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", p}))

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{
			EndpointAddrHTTP: "defaults:1234",
			TokenBytes:       8,
			ShutdownTimeout:  time.Minute,
		}
		require.NoError(t, parseJson(cfg, []string{"-a", ":1"}))

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, 8, cfg.TokenBytes)
		assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-config", bad}))
	})

	t.Run("invalid duration → error", func(t *testing.T) {
		p := writeTempJSON(t, dir, "dur.json", map[string]any{"shutdown_timeout": "soon"})

		cfg := &Config{}
		require.Error(t, parseJson(cfg, []string{"-c", p}))
	})
}
