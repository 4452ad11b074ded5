package config

import (
	"github.com/spf13/pflag"
)

const (
	flagConfig        = "config"
	flagBackend       = "backend"
	flagDSN           = "dsn"
	flagRedisAddr     = "redis-addr"
	flagRedisPassword = "redis-password"
	flagRedisDB       = "redis-db"
	flagRedisPrefix   = "redis-prefix"
	flagNamespace     = "namespace"
	flagGenericTTL    = "generic-ttl"
	flagSessionTTL    = "session-ttl"
	flagEncrypt       = "encrypt"
	flagLogLevel      = "log-level"
	flagLogFormat     = "log-format"
)

// RegisterFlags declares the configuration flags on fs, using the built-in
// defaults for help output.
//
//	-c, --config string       path to a JSON or YAML config file
//	-b, --backend string      sqlite | postgres | redis | memory
//	-d, --dsn string          SQLite path or PostgreSQL DSN
//	    --redis-addr string   Redis host:port
//	-n, --namespace string    storage key namespace
//	    --generic-ttl dur     maximum age of any entry
//	    --session-ttl dur     maximum session age
//	    --encrypt             seal values with a passphrase-derived key
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagConfig, "c", "", "path to a JSON or YAML config file")
	fs.StringP(flagBackend, "b", d.Backend, "storage backend: sqlite, postgres, redis or memory")
	fs.StringP(flagDSN, "d", d.DatabaseDSN, "SQLite file path or PostgreSQL DSN")
	fs.String(flagRedisAddr, d.RedisAddr, "Redis address (host:port)")
	fs.String(flagRedisPassword, d.RedisPassword, "Redis password")
	fs.Int(flagRedisDB, d.RedisDB, "Redis database number")
	fs.String(flagRedisPrefix, d.RedisPrefix, "prefix for Redis keys")
	fs.StringP(flagNamespace, "n", d.Namespace, "namespace prepended to every storage key")
	fs.Duration(flagGenericTTL, d.GenericTTL, "maximum age of any stored entry")
	fs.Duration(flagSessionTTL, d.SessionTTL, "maximum user session age, measured from login")
	fs.Bool(flagEncrypt, d.Encrypt, "encrypt values at rest with a passphrase-derived key")
	fs.String(flagLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(flagLogFormat, d.LogFormat, "log format: text or json")
}

// parseFlags copies every explicitly set flag from fs into cfg.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetString(name)
		}
	}

	str(flagBackend, &cfg.Backend)
	str(flagDSN, &cfg.DatabaseDSN)
	str(flagRedisAddr, &cfg.RedisAddr)
	str(flagRedisPassword, &cfg.RedisPassword)
	str(flagRedisPrefix, &cfg.RedisPrefix)
	str(flagNamespace, &cfg.Namespace)
	str(flagLogLevel, &cfg.LogLevel)
	str(flagLogFormat, &cfg.LogFormat)
	if err != nil {
		return err
	}

	if fs.Changed(flagRedisDB) {
		if cfg.RedisDB, err = fs.GetInt(flagRedisDB); err != nil {
			return err
		}
	}
	if fs.Changed(flagGenericTTL) {
		if cfg.GenericTTL, err = fs.GetDuration(flagGenericTTL); err != nil {
			return err
		}
	}
	if fs.Changed(flagSessionTTL) {
		if cfg.SessionTTL, err = fs.GetDuration(flagSessionTTL); err != nil {
			return err
		}
	}
	if fs.Changed(flagEncrypt) {
		if cfg.Encrypt, err = fs.GetBool(flagEncrypt); err != nil {
			return err
		}
	}
	return nil
}
