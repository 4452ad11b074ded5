package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	defaults := func(mut func(*Config)) *Config {
		c := &Config{}
		c.LoadDefaults()
		mut(c)
		return c
	}

	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name:     "no flags keeps defaults",
			args:     nil,
			expected: defaults(func(*Config) {}),
		},
		{
			name: "short and long flags",
			args: []string{"-b", "redis", "--redis-addr", "10.0.0.1:6380", "--redis-db", "3", "-n", "alice"},
			expected: defaults(func(c *Config) {
				c.Backend = BackendRedis
				c.RedisAddr = "10.0.0.1:6380"
				c.RedisDB = 3
				c.Namespace = "alice"
			}),
		},
		{
			name: "durations and bools",
			args: []string{"--generic-ttl", "1h", "--session-ttl", "15m", "--encrypt=false"},
			expected: defaults(func(c *Config) {
				c.GenericTTL = time.Hour
				c.SessionTTL = 15 * time.Minute
				c.Encrypt = false
			}),
		},
		{name: "bad duration", args: []string{"--session-ttl", "abc"}, expectErr: true},
		{name: "bad int", args: []string{"--redis-db", "x"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			RegisterFlags(fs)

			err := fs.Parse(tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			cfg := &Config{}
			cfg.LoadDefaults()
			require.NoError(t, parseFlags(cfg, fs))
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_OnlyChangedOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--dsn", "other.db"}))

	cfg := &Config{Backend: BackendPostgres, Namespace: "from-file"}
	require.NoError(t, parseFlags(cfg, fs))

	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "from-file", cfg.Namespace)
	assert.Equal(t, "other.db", cfg.DatabaseDSN)
}
