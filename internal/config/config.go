// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Inkpost Contributors

// Package config loads Inkpost configuration from defaults, an optional YAML
// file, and command-line flags, in increasing order of precedence.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds the full server configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Session  SessionConfig  `koanf:"session"`
	Log      LogConfig      `koanf:"log"`
}

// ServerConfig configures the HTTP listeners.
type ServerConfig struct {
	Addr        string `koanf:"addr"`
	MetricsAddr string `koanf:"metrics_addr"`
}

// DatabaseConfig configures PostgreSQL connectivity.
type DatabaseConfig struct {
	URL string `koanf:"url"`
}

// SessionConfig configures the cookie-signing secret.
type SessionConfig struct {
	Secret string `koanf:"secret"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Format string `koanf:"format"`
}

// Validate checks invariants required to start serving.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return oops.Code("CONFIG_INVALID").Errorf("server.addr is required")
	}
	if c.Database.URL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database.url is required (flag, config file, or DATABASE_URL)")
	}
	if c.Session.Secret == "" {
		return oops.Code("CONFIG_INVALID").Errorf("session.secret is required (flag, config file, or INKPOST_SECRET)")
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return oops.Code("CONFIG_INVALID").Errorf("log.format must be 'json' or 'text', got %q", c.Log.Format)
	}
	return nil
}

// Load assembles configuration. Flag defaults provide the base values, the
// YAML file (if path is non-empty and exists) overrides them, and explicitly
// set flags win over everything. DATABASE_URL and INKPOST_SECRET environment
// variables fill the two secrets when nothing else set them.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, oops.Code("CONFIG_LOAD_FAILED").
					With("path", path).
					Wrap(err)
			}
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").
				With("operation", "merge flags").
				Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_PARSE_FAILED").Wrap(err)
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = os.Getenv("DATABASE_URL")
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = os.Getenv("INKPOST_SECRET")
	}

	return &cfg, nil
}
