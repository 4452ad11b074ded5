package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/securestore/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for decoding config files. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type fileConfig struct {
	Backend       *string         `json:"backend" yaml:"backend"`
	DatabaseDSN   *string         `json:"dsn" yaml:"dsn"`
	RedisAddr     *string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword *string         `json:"redis_password" yaml:"redis_password"`
	RedisDB       *int            `json:"redis_db" yaml:"redis_db"`
	RedisPrefix   *string         `json:"redis_prefix" yaml:"redis_prefix"`
	Namespace     *string         `json:"namespace" yaml:"namespace"`
	GenericTTL    *timex.Duration `json:"generic_ttl" yaml:"generic_ttl"`
	SessionTTL    *timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	Encrypt       *bool           `json:"encrypt" yaml:"encrypt"`
	LogLevel      *string         `json:"log_level" yaml:"log_level"`
	LogFormat     *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the values found in the file at path.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setIf(&cfg.Backend, fc.Backend)
	setIf(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setIf(&cfg.RedisAddr, fc.RedisAddr)
	setIf(&cfg.RedisPassword, fc.RedisPassword)
	setIf(&cfg.RedisDB, fc.RedisDB)
	setIf(&cfg.RedisPrefix, fc.RedisPrefix)
	setIf(&cfg.Namespace, fc.Namespace)
	setIf(&cfg.Encrypt, fc.Encrypt)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.LogFormat, fc.LogFormat)
	if fc.GenericTTL != nil {
		cfg.GenericTTL = fc.GenericTTL.Duration
	}
	if fc.SessionTTL != nil {
		cfg.SessionTTL = fc.SessionTTL.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
