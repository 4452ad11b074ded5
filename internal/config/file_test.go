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

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_JSON(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"backend":     "postgres",
		"dsn":         "postgres://u:p@localhost/db",
		"generic_ttl": "48h",
		"session_ttl": int64(time.Hour),
		"encrypt":     false,
	})

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseFile(cfg, path))

	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "postgres://u:p@localhost/db", cfg.DatabaseDSN)
	assert.Equal(t, 48*time.Hour, cfg.GenericTTL)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.Encrypt)
	// untouched keys keep defaults
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
}

func Test_parseFile_YAML(t *testing.T) {
	for _, name := range []string{"cfg.yaml", "cfg.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeTempFile(t, name, `
backend: redis
redis_addr: cache:6379
redis_db: 2
namespace: alice
session_ttl: 30m
`)
			cfg := &Config{}
			cfg.LoadDefaults()
			require.NoError(t, parseFile(cfg, path))

			assert.Equal(t, BackendRedis, cfg.Backend)
			assert.Equal(t, "cache:6379", cfg.RedisAddr)
			assert.Equal(t, 2, cfg.RedisDB)
			assert.Equal(t, "alice", cfg.Namespace)
			assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
			assert.Equal(t, 30*24*time.Hour, cfg.GenericTTL)
		})
	}
}

func Test_parseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := &Config{}
		err := parseFile(cfg, filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("bad json", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", "{not json")
		assert.ErrorContains(t, parseFile(&Config{}, path), "parse config file")
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeTempFile(t, "cfg.json", `{"generic_ttl":"forever"}`)
		assert.Error(t, parseFile(&Config{}, path))
	})
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"backend":   "memory",
		"namespace": "file-ns",
		"log_level": "debug",
	})

	cfg, err := LoadConfig(newFlagSet(t, "-c", path, "--namespace", "flag-ns"))
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Backend, "file overrides defaults")
	assert.Equal(t, "flag-ns", cfg.Namespace, "flags override file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL, "defaults survive")
}
