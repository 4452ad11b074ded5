package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrInvalidTTL     = errors.New("ttl must be positive")
)

// Config holds runtime settings for the securestore CLI.
//
// Fields:
//   - Backend: vault implementation (sqlite, postgres, redis, memory).
//   - DatabaseDSN: SQLite file path or PostgreSQL DSN.
//   - RedisAddr / RedisPassword / RedisDB / RedisPrefix: Redis connection.
//   - Namespace: optional prefix applied to every storage key.
//   - GenericTTL / SessionTTL: expiration policies of the store.
//   - Encrypt: seal values with a passphrase-derived key before writing.
//   - LogLevel / LogFormat: slog handler settings.
type Config struct {
	Backend       string
	DatabaseDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	Namespace     string
	GenericTTL    time.Duration
	SessionTTL    time.Duration
	Encrypt       bool
	LogLevel      string
	LogFormat     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DatabaseDSN = "securestore.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RedisPrefix = "securestore:"
	c.Namespace = ""
	c.GenericTTL = 30 * 24 * time.Hour
	c.SessionTTL = 24 * time.Hour
	c.Encrypt = true
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendPostgres, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.GenericTTL <= 0 || c.SessionTTL <= 0 {
		return ErrInvalidTTL
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file named by the "config" flag (if any) and from flags set in
// fs. fs must have been populated by RegisterFlags and parsed.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
