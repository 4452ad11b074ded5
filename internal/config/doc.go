// Package config loads runtime configuration for the securestore CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config. Files ending in .yaml
//     or .yml are read as YAML, anything else as JSON. Only keys present in
//     the file override defaults.
//  3. Command-line flags, of which only those explicitly set override.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "720h" or
// integer nanoseconds:
//
//	{
//	  "backend": "sqlite",
//	  "dsn": "securestore.db",
//	  "namespace": "",
//	  "generic_ttl": "720h",
//	  "session_ttl": "24h",
//	  "encrypt": true,
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables; use the file or
// flags to configure values.
package config
